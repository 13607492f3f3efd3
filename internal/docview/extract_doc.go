package docview

import (
	"html"
	"strings"
	"unicode"
	"unicode/utf16"

	xhtml "golang.org/x/net/html"
)

// minRunLength filters out the short printable fragments that binary
// .doc structures produce by accident.
const minRunLength = 4

// ExtractDOC pulls visible text out of a legacy .doc payload. There is
// no full OLE parser here: the payload is converted to HTML markup by
// collecting printable text runs, then the markup is reduced to its
// visible text.
func ExtractDOC(data []byte) (string, error) {
	markup := docToHTML(data)
	text := visibleText(markup)
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyExtraction
	}
	return text, nil
}

// docToHTML renders the printable runs of a .doc payload as paragraph
// markup. Word stores body text UTF-16LE, so the scan walks the bytes
// pairwise.
func docToHTML(data []byte) string {
	var sb strings.Builder
	sb.WriteString("<html><body>")

	var run []uint16
	flush := func() {
		if len(run) == 0 {
			return
		}
		text := strings.TrimSpace(string(utf16.Decode(run)))
		run = run[:0]
		if len([]rune(text)) < minRunLength {
			return
		}
		sb.WriteString("<p>")
		sb.WriteString(html.EscapeString(text))
		sb.WriteString("</p>")
	}

	for i := 0; i+1 < len(data); i += 2 {
		u := uint16(data[i]) | uint16(data[i+1])<<8
		r := rune(u)
		if unicode.IsPrint(r) || r == '\t' {
			run = append(run, u)
			continue
		}
		flush()
	}
	flush()

	sb.WriteString("</body></html>")
	return sb.String()
}

// visibleText reduces HTML markup to the text a reader would see.
// Script and style subtrees are skipped; paragraphs become lines.
func visibleText(markup string) string {
	root, err := xhtml.Parse(strings.NewReader(markup))
	if err != nil {
		return ""
	}

	var sb strings.Builder
	var walk func(n *xhtml.Node)
	walk = func(n *xhtml.Node) {
		switch n.Type {
		case xhtml.ElementNode:
			if n.Data == "script" || n.Data == "style" {
				return
			}
		case xhtml.TextNode:
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if n.Type == xhtml.ElementNode {
			switch n.Data {
			case "p", "div", "br", "li", "tr":
				sb.WriteByte('\n')
			}
		}
	}
	walk(root)

	return strings.TrimRight(sb.String(), "\n")
}
