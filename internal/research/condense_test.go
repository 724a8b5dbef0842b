package research

import (
	"strings"
	"testing"
)

func TestNormalizeCollapsesWhitespace(t *testing.T) {
	t.Parallel()

	got := Normalize("  Maya   was born\n\tby the   sea.  ")
	if got != "Maya was born by the sea." {
		t.Fatalf("unexpected normalize: %q", got)
	}
}

func TestCondenseDeduplicatesParagraphs(t *testing.T) {
	t.Parallel()

	doc := strings.Join([]string{
		"Maya Lindqvist grew up in a harbour town on the west coast.",
		"She organized the first dockworkers strike of the decade.",
		"Maya Lindqvist grew up in a harbour   town on the west coast.",
	}, "\n\n")

	got := Condense(doc, 0)
	if strings.Count(got, "harbour") != 1 {
		t.Fatalf("repeated paragraph should be dropped:\n%s", got)
	}
	if !strings.Contains(got, "dockworkers strike") {
		t.Fatalf("unique paragraph missing:\n%s", got)
	}
}

func TestCondenseStripsBoilerplate(t *testing.T) {
	t.Parallel()

	doc := strings.Join([]string{
		"Copyright 2024 Coastal Press.",
		"All content licensed under restrictive terms.",
		"Advertisement",
		"14",
		"Maya spent a decade at sea before coming home.",
	}, "\n\n")

	got := Condense(doc, 0)
	if got != "Maya spent a decade at sea before coming home." {
		t.Fatalf("boilerplate survived:\n%q", got)
	}
}

func TestCondenseRespectsBudget(t *testing.T) {
	t.Parallel()

	doc := "First paragraph about the subject's early life.\n\nSecond paragraph about the later years."
	got := Condense(doc, 20)
	if len([]rune(got)) > 20 {
		t.Fatalf("budget exceeded: %d runes", len([]rune(got)))
	}
	if !strings.HasPrefix(got, "First paragraph") {
		t.Fatalf("clip should keep the head of the document: %q", got)
	}
}
