package constants

import "strings"

// AllowedExtensions holds the default allowed file extensions for
// document ingestion.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"tif":  {},
	"tiff": {},
	"txt":  {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// ContentTypeForExt maps a (normalized or raw) file extension to a MIME
// type for the processed record. Unrecognized extensions fall back to
// application/octet-stream.
func ContentTypeForExt(ext string) string {
	switch NormalizeExt(ext) {
	case "pdf":
		return "application/pdf"
	case "jpg", "jpeg":
		return "image/jpeg"
	case "png":
		return "image/png"
	case "tif", "tiff":
		return "image/tiff"
	case "txt":
		return "text/plain"
	default:
		return "application/octet-stream"
	}
}
