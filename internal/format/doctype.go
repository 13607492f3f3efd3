package format

import "strings"

// DocType identifies a supported office document format.
type DocType string

const (
	TypeDOCX    DocType = "docx"
	TypeDOC     DocType = "doc"
	TypePDF     DocType = "pdf"
	TypeUnknown DocType = "unknown"
)

// DetectType infers the document type from a file name extension.
func DetectType(fileName string) DocType {
	idx := strings.LastIndexByte(fileName, '.')
	if idx < 0 {
		return TypeUnknown
	}
	switch strings.ToLower(fileName[idx+1:]) {
	case "docx":
		return TypeDOCX
	case "doc":
		return TypeDOC
	case "pdf":
		return TypePDF
	default:
		return TypeUnknown
	}
}

// MIME returns the content type for a document type, defaulting to an
// opaque octet stream.
func (t DocType) MIME() string {
	switch t {
	case TypeDOCX:
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case TypeDOC:
		return "application/msword"
	case TypePDF:
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}
