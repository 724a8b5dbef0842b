package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

func clipText(text string, limit int) string {
	text = strings.TrimSpace(text)
	if limit <= 0 || len(text) <= limit {
		return text
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}

func buildFollowUpPrompt(answer string, count int) string {
	plural := "s"
	if count == 1 {
		plural = ""
	}
	return fmt.Sprintf(
		"You are a documentary interview producer. "+
			"Given the answer below, ask %d deep follow-up question%s. "+
			"Return only a JSON array of strings.\n\n"+
			"Answer: %s", count, plural, answer)
}

func buildSubjectSummaryPrompt(notes, background string) string {
	builder := strings.Builder{}
	builder.WriteString("You are a documentary researcher. ")
	builder.WriteString("Summarize the subject into JSON with keys: ")
	builder.WriteString("background_summary (string), key_life_events (array), ")
	builder.WriteString("values_and_beliefs (array), current_challenges (array), strengths_and_skills (array). ")
	builder.WriteString("Return only valid JSON.\n\n")
	builder.WriteString("Interview notes:\n")
	builder.WriteString(notes)
	if background != "" {
		builder.WriteString("\n\nBackground research:\n")
		builder.WriteString(background)
	}
	return builder.String()
}

func buildGuidePrompt(briefJSON, profileJSON string) string {
	return "You are a documentary interview producer. " +
		"Create an interview guide with 4-6 sections. " +
		"Return only a JSON array of sections, each with: " +
		"section_title, intent, primary_questions (array), follow_ups (array).\n\n" +
		"Project brief: " + briefJSON + "\n" +
		"Subject profile: " + profileJSON
}

// parseFollowUps reads the response as a JSON array of strings. Anything
// that is not a JSON array degrades to a single follow-up built from the
// whole raw response. Entries are trimmed and lose one layer of surrounding
// quotes; blanks are dropped.
func parseFollowUps(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	var items []any
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		if text := stripQuotes(raw); text != "" {
			return []string{text}
		}
		return nil
	}
	var followUps []string
	for _, item := range items {
		text, ok := item.(string)
		if !ok {
			text = fmt.Sprint(item)
		}
		text = stripQuotes(text)
		if text == "" {
			continue
		}
		followUps = append(followUps, text)
	}
	return followUps
}

func parseSubjectSummary(raw string) (SubjectSummary, error) {
	var summary SubjectSummary
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &summary); err != nil {
		return SubjectSummary{}, fmt.Errorf("subject summary was not valid JSON: %w", err)
	}
	return summary, nil
}

// parseGuideSections accepts only a JSON array. Valid JSON of any other
// shape is reported as ErrUnexpectedShape so the caller leaves the guide
// untouched.
func parseGuideSections(raw string) ([]GuideSection, error) {
	raw = strings.TrimSpace(raw)
	var probe any
	if err := json.Unmarshal([]byte(raw), &probe); err != nil {
		return nil, fmt.Errorf("guide response was not valid JSON: %w", err)
	}
	if _, ok := probe.([]any); !ok {
		return nil, ErrUnexpectedShape
	}
	var sections []GuideSection
	if err := json.Unmarshal([]byte(raw), &sections); err != nil {
		return nil, ErrUnexpectedShape
	}
	return sections, nil
}

func stripQuotes(text string) string {
	text = strings.TrimSpace(text)
	if len(text) >= 2 && strings.HasPrefix(text, `"`) && strings.HasSuffix(text, `"`) {
		text = strings.TrimSpace(text[1 : len(text)-1])
	}
	return text
}
