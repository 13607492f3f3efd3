package docview

import "errors"

var (
	// ErrUnsupportedType marks a document whose extension has no text
	// extractor.
	ErrUnsupportedType = errors.New("неподдерживаемый тип файла")
	// ErrEmptyExtraction marks a document that decoded but yielded no
	// visible text.
	ErrEmptyExtraction = errors.New("не удалось извлечь текст из документа")
	// ErrNoContent marks a binary record with no payload bytes.
	ErrNoContent = errors.New("содержимое документа отсутствует")
	// ErrWrongState marks a transition the state machine does not allow.
	ErrWrongState = errors.New("операция недоступна в текущем состоянии")
)
