package fields

// BuildExtractedDataSchema returns a JSON-Schema (draft 2020-12 subset)
// for the serialized ExtractedData shape as a generic map. The
// repository validates extracted JSON against it before persisting.
func BuildExtractedDataSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"patient_demographics": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties": map[string]any{
					"name":          map[string]any{"type": "string", "minLength": 1},
					"date_of_birth": map[string]any{"type": "string", "pattern": `^\d{2}/\d{2}/\d{4}$`},
					"address":       map[string]any{"type": "string"},
					"phone":         map[string]any{"type": "string"},
					"confidence":    confidenceProp(),
				},
				"required": []string{"confidence"},
			},
			"provider_information": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties": map[string]any{
					"name":       map[string]any{"type": "string", "minLength": 1},
					"specialty":  map[string]any{"type": "string"},
					"address":    map[string]any{"type": "string"},
					"phone":      map[string]any{"type": "string"},
					"confidence": confidenceProp(),
				},
				"required": []string{"name", "confidence"},
			},
			"service_dates": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"properties": map[string]any{
						"date":         map[string]any{"type": "string", "pattern": `^\d{2}/\d{2}/\d{4}$`},
						"service_type": map[string]any{"type": "string"},
						"confidence":   confidenceProp(),
					},
					"required": []string{"date", "confidence"},
				},
			},
			"diagnosis_codes": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"properties": map[string]any{
						"code":        map[string]any{"type": "string", "pattern": `^[A-TV-Z]\d{2}(\.\d{1,4})?$`},
						"description": map[string]any{"type": "string"},
						"type":        map[string]any{"type": "string"},
						"confidence":  confidenceProp(),
					},
					"required": []string{"code", "confidence"},
				},
			},
			"billing_amounts": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"properties": map[string]any{
						"charge_description": map[string]any{"type": "string"},
						"amount":             map[string]any{"type": "number", "minimum": 0},
						"date_of_service":    map[string]any{"type": "string"},
						"confidence":         confidenceProp(),
					},
					"required": []string{"charge_description", "amount", "confidence"},
				},
			},
		},
	}
}

func confidenceProp() map[string]any {
	return map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0}
}
