package docview

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// documentEntry is the OOXML part that holds the document body.
const documentEntry = "word/document.xml"

// ExtractDOCX pulls the visible text out of a .docx payload. The
// payload is a zip archive; paragraphs in word/document.xml become
// lines, tabs and explicit breaks are preserved.
func ExtractDOCX(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("открытие docx: %w", err)
	}

	var body *zip.File
	for _, f := range zr.File {
		if f.Name == documentEntry {
			body = f
			break
		}
	}
	if body == nil {
		return "", fmt.Errorf("открытие docx: нет %s", documentEntry)
	}

	rc, err := body.Open()
	if err != nil {
		return "", fmt.Errorf("чтение docx: %w", err)
	}
	defer rc.Close()

	text, err := extractWordML(rc)
	if err != nil {
		return "", fmt.Errorf("разбор docx: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyExtraction
	}
	return text, nil
}

// extractWordML walks WordprocessingML, collecting the character data
// of w:t runs. Paragraph ends become newlines, w:tab a tab, w:br a
// line break.
func extractWordML(r io.Reader) (string, error) {
	dec := xml.NewDecoder(r)
	var sb strings.Builder
	inText := false

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				sb.WriteByte('\t')
			case "br":
				sb.WriteByte('\n')
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				sb.WriteByte('\n')
			}
		case xml.CharData:
			if inText {
				sb.Write(t)
			}
		}
	}

	return strings.TrimRight(sb.String(), "\n"), nil
}
