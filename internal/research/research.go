// Package research pulls plain text out of background research documents
// (press clippings, prior interviews, bios exported as PDF) so the subject
// summarization prompt can draw on them.
package research

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

var extraneousWhitespace = regexp.MustCompile(`\s+`)

// ExtractText returns the raw plain text of the PDF at path, paragraph
// breaks intact so Condense can work on it. A file the parser cannot read is
// an error; the caller treats missing background material as optional.
func ExtractText(path string) (string, error) {
	file, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open pdf: %w", err)
	}
	defer file.Close()

	content, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to extract pdf text: %w", err)
	}

	var builder strings.Builder
	if _, err := io.Copy(&builder, content); err != nil {
		return "", err
	}
	return builder.String(), nil
}

// Normalize collapses runs of whitespace to single spaces and trims the
// result, the form the prompt builders expect.
func Normalize(text string) string {
	return strings.TrimSpace(extraneousWhitespace.ReplaceAllString(text, " "))
}
