package document

import "errors"

var (
	// ErrDocumentNotFound indicates the document doesn't exist.
	ErrDocumentNotFound = errors.New("документ не найден")
	// ErrInvalidInput indicates invalid document input.
	ErrInvalidInput = errors.New("invalid document input")
	// ErrBadContent indicates wire content that carries a binary marker
	// but cannot be decoded.
	ErrBadContent = errors.New("некорректный формат содержимого документа")
	// ErrUnsupportedFile indicates an upload that is not a DOC/DOCX
	// document.
	ErrUnsupportedFile = errors.New("можно загружать только документы формата DOC или DOCX")
	// ErrFileTooLarge indicates an upload over the 5 MB limit.
	ErrFileTooLarge = errors.New("размер файла не должен превышать 5MB")
)
