package cms

import (
	"bytes"
	"fmt"
	"html"
	"strings"
	"unicode/utf8"
)

const excerptLength = 200

// Render converts markdown (raw HTML allowed) into sanitized HTML.
func (m *Manager) Render(src string) (string, error) {
	var buf bytes.Buffer
	if err := m.markdown.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}

	return m.sanitizer.Sanitize(buf.String()), nil
}

// PlainText strips all markup from rendered content.
func (m *Manager) PlainText(src string) string {
	rendered, err := m.Render(src)
	if err != nil {
		rendered = src
	}

	text := html.UnescapeString(m.stripper.Sanitize(rendered))
	return strings.Join(strings.Fields(text), " ")
}

// excerptOf returns at most excerptLength runes of plain text, cut at a word boundary.
// A cut excerpt ends with "…", which is not counted in the length.
func (m *Manager) excerptOf(content string) string {
	text := m.PlainText(content)
	if utf8.RuneCountInString(text) <= excerptLength {
		return text
	}

	runes := []rune(text)
	cut := string(runes[:excerptLength])
	if runes[excerptLength] != ' ' {
		if i := strings.LastIndexByte(cut, ' '); i > 0 {
			cut = cut[:i]
		}
	}

	return cut + "…"
}
