package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/interviewer/internal/enrich"
	"github.com/csheth/interviewer/internal/llm"
)

// The enrichment jobs only carry plain inputs captured on the UI goroutine;
// merging the payload back into the session happens in Update.

func followUpsJob(adapter *enrich.Adapter, answer string, count int, timeout time.Duration) jobRunner {
	return func(parent context.Context) (tea.Msg, error) {
		ctx, cancel := context.WithTimeout(parent, timeout)
		defer cancel()
		texts, err := adapter.GenerateFollowUps(ctx, answer, count)
		return followUpsResultMsg{texts: texts, err: err}, err
	}
}

func summaryJob(adapter *enrich.Adapter, notes, background string, timeout time.Duration) jobRunner {
	return func(parent context.Context) (tea.Msg, error) {
		ctx, cancel := context.WithTimeout(parent, timeout)
		defer cancel()
		summary, err := adapter.SummarizeSubject(ctx, notes, background)
		return summaryResultMsg{summary: summary, err: err}, err
	}
}

func guideJob(adapter *enrich.Adapter, briefJSON, profileJSON string, timeout time.Duration) jobRunner {
	return func(parent context.Context) (tea.Msg, error) {
		ctx, cancel := context.WithTimeout(parent, timeout)
		defer cancel()
		sections, err := adapter.GenerateGuide(ctx, briefJSON, profileJSON)
		return guideResultMsg{sections: sections, err: err}, err
	}
}

type followUpsResultMsg struct {
	texts []string
	err   error
}

type summaryResultMsg struct {
	summary llm.SubjectSummary
	err     error
}

type guideResultMsg struct {
	sections []llm.GuideSection
	err      error
}
