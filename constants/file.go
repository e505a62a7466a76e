package constants

import "strings"

// PDFMimeType is the only document type eligible for screening.
const PDFMimeType = "application/pdf"

// AllowedExtensions holds the default allowed file extensions for local
// folder screening. Plain text is accepted so pre-extracted resumes can be
// fed straight to the scorer.
var AllowedExtensions = map[string]struct{}{
	"pdf": {},
	"txt": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
