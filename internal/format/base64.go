package format

import (
	"encoding/base64"
	"fmt"
	"io"
	"strings"
)

// decodeChunkSize bounds per-read allocation when decoding payloads of
// arbitrary length.
const decodeChunkSize = 512

// HasBinaryMarker reports whether a wire content string carries an
// encoded binary payload (a data URL prefix or an explicit base64
// marker). This is the only sniffing convention the wire format offers.
func HasBinaryMarker(s string) bool {
	return strings.HasPrefix(s, "data:") || strings.Contains(s, "base64")
}

// DecodeBase64 decodes a base64 payload, optionally wrapped in a data
// URL. It returns the raw bytes and the MIME type taken from the data
// URL prefix, empty when no prefix is present. Decoding runs through a
// fixed-size buffer so large documents never require a second
// full-size allocation of the encoded form.
func DecodeBase64(s string) ([]byte, string, error) {
	payload := s
	mime := ""

	if strings.HasPrefix(s, "data:") {
		comma := strings.IndexByte(s, ',')
		if comma < 0 {
			return nil, "", fmt.Errorf("data URL without payload")
		}
		header := s[len("data:"):comma]
		payload = s[comma+1:]
		if semi := strings.IndexByte(header, ';'); semi >= 0 {
			mime = header[:semi]
		} else {
			mime = header
		}
	}

	dec := base64.NewDecoder(base64.StdEncoding, strings.NewReader(payload))
	out := make([]byte, 0, len(payload)/4*3)
	buf := make([]byte, decodeChunkSize)
	for {
		n, err := dec.Read(buf)
		out = append(out, buf[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, "", fmt.Errorf("decode base64: %w", err)
		}
	}

	return out, mime, nil
}

// EncodeDataURL wraps raw bytes into a base64 data URL with the given
// MIME type.
func EncodeDataURL(data []byte, mime string) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}
