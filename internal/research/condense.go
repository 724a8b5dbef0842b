package research

import (
	"crypto/sha1"
	"encoding/hex"
	"regexp"
	"strings"
	"unicode"
)

// Press clippings and exported bios repeat headers, bylines, and legal
// footers on every page. Condense strips those and deduplicates repeated
// paragraphs so the budget goes to actual subject material.

const defaultBudget = 40_000

var paragraphSplit = regexp.MustCompile(`\n{2,}`)

// Condense trims the extracted document down to at most budget runes of
// deduplicated, boilerplate-free paragraphs. A budget of zero or less uses
// the default sized for the subject summary prompt.
func Condense(content string, budget int) string {
	if budget <= 0 {
		budget = defaultBudget
	}
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	seen := map[string]bool{}
	var paragraphs []string
	for _, paragraph := range paragraphSplit.Split(content, -1) {
		trimmed := strings.TrimSpace(paragraph)
		if trimmed == "" || isBoilerplate(trimmed) {
			continue
		}
		hash := hashParagraph(Normalize(trimmed))
		if seen[hash] {
			continue
		}
		seen[hash] = true
		paragraphs = append(paragraphs, trimmed)
	}
	return clipParagraphs(paragraphs, budget)
}

func isBoilerplate(paragraph string) bool {
	lower := strings.ToLower(strings.TrimSpace(paragraph))
	if lower == "" {
		return true
	}
	switch {
	case strings.HasPrefix(lower, "copyright"):
		return true
	case strings.Contains(lower, "all rights reserved"):
		return true
	case strings.Contains(lower, "license"):
		return true
	case strings.HasPrefix(lower, "advertisement"):
		return true
	case strings.HasPrefix(lower, "subscribe"):
		return true
	case strings.HasPrefix(lower, "photo:"), strings.HasPrefix(lower, "photograph:"):
		return true
	}
	alpha := 0
	for _, r := range lower {
		if unicode.IsLetter(r) {
			alpha++
		}
	}
	// Page numbers, running headers, and other short non-prose fragments.
	if len(lower) <= 12 && !strings.Contains(lower, " ") {
		return true
	}
	if alpha*5 < len(lower) {
		return true
	}
	return false
}

func hashParagraph(text string) string {
	sum := sha1.Sum([]byte(text))
	return hex.EncodeToString(sum[:])
}

func clipParagraphs(paragraphs []string, budget int) string {
	var builder strings.Builder
	remaining := budget
	for idx, paragraph := range paragraphs {
		if remaining <= 0 {
			break
		}
		if idx > 0 && builder.Len() > 0 {
			if remaining <= 2 {
				break
			}
			builder.WriteString("\n\n")
			remaining -= 2
		}
		runes := []rune(paragraph)
		if len(runes) > remaining {
			builder.WriteString(string(runes[:remaining]))
			break
		}
		builder.WriteString(paragraph)
		remaining -= len(runes)
	}
	return builder.String()
}
