package llm

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestParseFollowUps(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "json array",
			raw:  `["Why then?", "Who else was there?"]`,
			want: []string{"Why then?", "Who else was there?"},
		},
		{
			name: "plain text falls back to single question",
			raw:  "What made you stay?",
			want: []string{"What made you stay?"},
		},
		{
			name: "quoted entries lose one layer of quotes",
			raw:  `["\"Why did you leave?\""]`,
			want: []string{"Why did you leave?"},
		},
		{
			name: "blank entries dropped",
			raw:  `["", "  ", "Keep me"]`,
			want: []string{"Keep me"},
		},
		{
			name: "non-string entries stringified",
			raw:  `[42]`,
			want: []string{"42"},
		},
		{
			name: "empty response",
			raw:  "   ",
			want: nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := parseFollowUps(tc.raw)
			if len(got) != len(tc.want) {
				t.Fatalf("parseFollowUps(%q) = %#v, want %#v", tc.raw, got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("parseFollowUps(%q)[%d] = %q, want %q", tc.raw, i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestParseSubjectSummaryOmittedKeysStayEmpty(t *testing.T) {
	t.Parallel()

	summary, err := parseSubjectSummary(`{"background_summary":"A quiet organizer."}`)
	if err != nil {
		t.Fatalf("parseSubjectSummary error = %v", err)
	}
	if summary.BackgroundSummary != "A quiet organizer." {
		t.Fatalf("unexpected background: %q", summary.BackgroundSummary)
	}
	if len(summary.KeyLifeEvents) != 0 || len(summary.ValuesAndBeliefs) != 0 ||
		len(summary.CurrentChallenges) != 0 || len(summary.StrengthsAndSkills) != 0 {
		t.Fatalf("omitted keys should decode empty: %#v", summary)
	}
}

func TestParseSubjectSummaryInvalidJSON(t *testing.T) {
	t.Parallel()

	if _, err := parseSubjectSummary("Sure! Here is the summary:"); err == nil {
		t.Fatal("expected error for non-JSON response")
	}
}

func TestParseGuideSections(t *testing.T) {
	t.Parallel()

	sections, err := parseGuideSections(`[{"section_title":"Origins","primary_questions":["Q1"]}, {"section_title":"Turning Point"}]`)
	if err != nil {
		t.Fatalf("parseGuideSections error = %v", err)
	}
	if len(sections) != 2 || sections[0].SectionTitle != "Origins" || sections[1].SectionTitle != "Turning Point" {
		t.Fatalf("unexpected sections: %#v", sections)
	}

	if _, err := parseGuideSections(`{"not":"an array"}`); !errors.Is(err, ErrUnexpectedShape) {
		t.Fatalf("expected ErrUnexpectedShape for object, got %v", err)
	}
	if _, err := parseGuideSections(`["just", "strings"]`); !errors.Is(err, ErrUnexpectedShape) {
		t.Fatalf("expected ErrUnexpectedShape for array of strings, got %v", err)
	}
	if _, err := parseGuideSections("not json at all"); err == nil || errors.Is(err, ErrUnexpectedShape) {
		t.Fatalf("invalid JSON should be a plain error, got %v", err)
	}
}

func TestClipTextRespectsRuneBoundaries(t *testing.T) {
	t.Parallel()

	clipped := clipText("ångström measurements", 8)
	if clipped != "ångström" {
		t.Fatalf("unexpected clip: %q", clipped)
	}
	if clipText("  short  ", 100) != "short" {
		t.Fatal("expected trim without clipping")
	}
}

func TestBuildSubjectSummaryPromptOmitsEmptyBackground(t *testing.T) {
	t.Parallel()

	prompt := buildSubjectSummaryPrompt("Q: A?\nA: B.", "")
	if strings.Contains(prompt, "Background research:") {
		t.Fatal("empty background should not appear in prompt")
	}
}

func TestResolveModel(t *testing.T) {
	t.Setenv("OLLAMA_MODEL", "")
	if got := ResolveModel("custom:1b"); got != "custom:1b" {
		t.Fatalf("explicit model ignored: %s", got)
	}
	if got := ResolveModel(""); got != defaultOllamaModel {
		t.Fatalf("expected default model, got %s", got)
	}
	t.Setenv("OLLAMA_MODEL", "env-model")
	if got := ResolveModel(""); got != "env-model" {
		t.Fatalf("expected env model, got %s", got)
	}
}

func TestPickHTTPClient(t *testing.T) {
	t.Parallel()

	if got := pickHTTPClient(nil, 0); got.Timeout != defaultLLMHTTPTimeout {
		t.Fatalf("expected default timeout, got %s", got.Timeout)
	}
	if got := pickHTTPClient(nil, 42*time.Second); got.Timeout != 42*time.Second {
		t.Fatalf("expected custom timeout, got %s", got.Timeout)
	}
}
