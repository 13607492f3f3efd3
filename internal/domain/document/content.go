package document

import (
	"fmt"
	"strings"

	"github.com/kit-start/kitstart/internal/format"
)

// ContentKind discriminates the two interpretations a stored document
// body can have.
type ContentKind string

const (
	// KindNone marks absent content; the viewer substitutes a
	// placeholder for it.
	KindNone ContentKind = "none"
	// KindBinary is an encoded office-document payload.
	KindBinary ContentKind = "binary"
	// KindText is plain text produced by an in-place edit.
	KindText ContentKind = "text"
)

// wireDemoSentinel is the legacy placeholder value some records carry
// instead of real content.
const wireDemoSentinel = "demo"

// Content is a tagged variant over a document body. The wire format is
// a single string whose interpretation used to be guessed all over the
// client; here the guess happens exactly once, in DecodeWireContent.
type Content struct {
	Kind ContentKind `json:"kind"`
	Data []byte      `json:"data,omitempty"`
	MIME string      `json:"mime,omitempty"`
	Text string      `json:"text,omitempty"`
}

// BinaryContent builds binary content from raw bytes.
func BinaryContent(data []byte, mime string) Content {
	return Content{Kind: KindBinary, Data: data, MIME: mime}
}

// TextContent builds plain-text content.
func TextContent(text string) Content {
	return Content{Kind: KindText, Text: text}
}

// IsZero reports whether no content is present.
func (c Content) IsZero() bool {
	return c.Kind == "" || c.Kind == KindNone
}

// ByteSize returns the stored size of the content.
func (c Content) ByteSize() int64 {
	switch c.Kind {
	case KindBinary:
		return int64(len(c.Data))
	case KindText:
		return int64(len(c.Text))
	default:
		return 0
	}
}

// EncodeWire renders the content back into the single-string wire
// form: a data URL for binary payloads, the verbatim text otherwise.
func (c Content) EncodeWire() string {
	switch c.Kind {
	case KindBinary:
		return format.EncodeDataURL(c.Data, c.MIME)
	case KindText:
		return c.Text
	default:
		return ""
	}
}

// DecodeWireContent classifies a wire content string. Empty strings and
// the legacy "demo" sentinel decode to no content. Strings carrying a
// data URL prefix or a base64 marker decode to binary; an undecodable
// payload yields binary content with no bytes alongside the error, so
// callers can keep the record and let the viewer degrade gracefully.
// Everything else is plain text.
func DecodeWireContent(s string) (Content, error) {
	if s == "" || s == wireDemoSentinel {
		return Content{Kind: KindNone}, nil
	}
	if !format.HasBinaryMarker(s) {
		return TextContent(s), nil
	}

	// Tolerate a bare "base64," marker without the data URL prefix.
	payload := s
	if !strings.HasPrefix(s, "data:") {
		if i := strings.Index(s, "base64,"); i >= 0 {
			payload = s[i+len("base64,"):]
		}
	}

	data, mime, err := format.DecodeBase64(payload)
	if err != nil {
		return Content{Kind: KindBinary, MIME: mime}, fmt.Errorf("%w: %v", ErrBadContent, err)
	}
	return BinaryContent(data, mime), nil
}
