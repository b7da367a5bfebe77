package fields

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/medintake/docpipeline/constants"
	"github.com/medintake/docpipeline/internal/entity"
)

var (
	rePatientName = regexp.MustCompile(`(?i)Patient(?:\s+Name)?:\s*([A-Za-z][A-Za-z .,'-]*[A-Za-z.])`)
	reDateOfBirth = regexp.MustCompile(`(?i)DOB:\s*(\d{2}/\d{2}/\d{4})`)
	reAddress     = regexp.MustCompile(`(?i)Address:\s*([^\r\n]+)`)
	rePhone       = regexp.MustCompile(`(?i)(?:Phone|Tel(?:ephone)?):\s*(\(?\d{3}\)?[ .-]?\d{3}[ .-]?\d{4})`)

	// Provider names must end in a credential suffix; a bare name after
	// the label is too ambiguous to extract.
	reProvider  = regexp.MustCompile(`(?i)(?:Provider|Physician|Doctor):\s*([A-Za-z][A-Za-z .,'-]*?(?:,\s*|\s+)(?:M\.?D\.?|D\.?O\.?|N\.?P\.?|P\.?A\.?))(?:[^A-Za-z0-9]|$)`)
	reSpecialty = regexp.MustCompile(`(?i)Specialty:\s*([^\r\n]+)`)

	reServiceDate = regexp.MustCompile(`(?i)(Date of Service|Study Date|Date Collected):\s*(\d{2}/\d{2}/\d{4})`)

	// ICD-10 shape: letter (no U), two digits, optional decimal part.
	reDiagnosisCode = regexp.MustCompile(`\b[A-TV-Z]\d{2}(?:\.\d{1,4})?\b`)

	reBillingAmount = regexp.MustCompile(`\$(\d{1,3}(?:,\d{3})*\.\d{2}|\d+\.\d{2})`)
)

// serviceTypeForLabel maps the matched date label to a service type tag.
func serviceTypeForLabel(label string) string {
	switch strings.ToLower(label) {
	case "study date":
		return "imaging-study"
	case "date collected":
		return "specimen-collection"
	default:
		return "office-visit"
	}
}

// Extractor runs category-aware pattern extraction over document text.
type Extractor struct {
	logger *slog.Logger
}

func NewExtractor(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{logger: logger}
}

// Extract populates structured fields from classified text. Patterns
// that do not match leave their sub-record absent entirely — consumers
// distinguish "not found" from "found but empty".
func (e *Extractor) Extract(text string, category constants.Category) entity.ExtractedData {
	var data entity.ExtractedData

	data.PatientDemographics = e.extractDemographics(text)
	data.ProviderInformation = e.extractProvider(text)
	data.ServiceDates = e.extractServiceDates(text)

	if constants.IsClinical(category) {
		data.DiagnosisCodes = e.extractDiagnosisCodes(text)
	}
	if category == constants.BillingStatements {
		data.BillingAmounts = e.extractBillingAmounts(text)
	}

	return data
}

// extractDemographics always runs regardless of category. Returns nil
// when no demographic pattern matched at all.
func (e *Extractor) extractDemographics(text string) *entity.PatientDemographics {
	d := entity.PatientDemographics{Confidence: constants.DemographicsConfidence}
	found := false

	if m := rePatientName.FindStringSubmatch(text); m != nil {
		d.Name = strings.TrimSpace(m[1])
		found = true
	}
	if m := reDateOfBirth.FindStringSubmatch(text); m != nil {
		d.DateOfBirth = m[1]
		found = true
	}
	if m := reAddress.FindStringSubmatch(text); m != nil {
		d.Address = strings.TrimSpace(m[1])
		found = true
	}
	if m := rePhone.FindStringSubmatch(text); m != nil {
		d.Phone = m[1]
		found = true
	}

	if !found {
		return nil
	}
	return &d
}

func (e *Extractor) extractProvider(text string) *entity.ProviderInformation {
	m := reProvider.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	p := entity.ProviderInformation{
		Name:       strings.TrimSpace(m[1]),
		Confidence: constants.ProviderConfidence,
	}
	if sm := reSpecialty.FindStringSubmatch(text); sm != nil {
		p.Specialty = strings.TrimSpace(sm[1])
	}
	return &p
}

func (e *Extractor) extractServiceDates(text string) []entity.ServiceDate {
	ms := reServiceDate.FindAllStringSubmatch(text, -1)
	if len(ms) == 0 {
		return nil
	}
	dates := make([]entity.ServiceDate, 0, len(ms))
	for _, m := range ms {
		dates = append(dates, entity.ServiceDate{
			Date:        m[2],
			ServiceType: serviceTypeForLabel(m[1]),
			Confidence:  constants.ServiceDateConfidence,
		})
	}
	return dates
}

func (e *Extractor) extractDiagnosisCodes(text string) []entity.DiagnosisCode {
	ms := reDiagnosisCode.FindAllString(text, -1)
	if len(ms) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(ms))
	codes := make([]entity.DiagnosisCode, 0, len(ms))
	for _, code := range ms {
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		codes = append(codes, entity.DiagnosisCode{
			Code:       code,
			Type:       "ICD-10",
			Confidence: constants.DiagnosisCodeConfidence,
		})
	}
	return codes
}

func (e *Extractor) extractBillingAmounts(text string) []entity.BillingAmount {
	ms := reBillingAmount.FindAllStringSubmatch(text, -1)
	if len(ms) == 0 {
		return nil
	}
	amounts := make([]entity.BillingAmount, 0, len(ms))
	for _, m := range ms {
		raw := strings.ReplaceAll(m[1], ",", "")
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			e.logger.Warn("unparseable billing amount", "token", m[0])
			continue
		}
		amounts = append(amounts, entity.BillingAmount{
			ChargeDescription: "Medical service charge",
			Amount:            v,
			Confidence:        constants.BillingAmountConfidence,
		})
	}
	return amounts
}
