package document

import (
	"strings"

	"github.com/kit-start/kitstart/internal/format"
)

// MaxUploadSize is the upload limit enforced before a file reaches the
// data layer.
const MaxUploadSize = 5 * 1024 * 1024

var allowedMIMEs = map[string]struct{}{
	"application/msword": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
}

// ValidateUpload checks a candidate file before any store operation.
// Only DOC/DOCX files up to 5 MB are accepted; everything else is a
// validation failure that must never reach a collection.
func ValidateUpload(name, mime string, size int64) error {
	if strings.TrimSpace(name) == "" {
		return ErrInvalidInput
	}
	if mime != "" {
		if _, ok := allowedMIMEs[mime]; !ok {
			return ErrUnsupportedFile
		}
	}
	switch format.DetectType(name) {
	case format.TypeDOC, format.TypeDOCX:
	default:
		return ErrUnsupportedFile
	}
	if size > MaxUploadSize {
		return ErrFileTooLarge
	}
	return nil
}
