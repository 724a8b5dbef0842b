// Package enrich coordinates the AI-assisted operations: it builds prompt
// inputs from session state, calls the model service, and merges parsed
// results back into the session. Failures at any step leave the session and
// its documents exactly as they were; there is never a partial merge.
package enrich

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync/atomic"

	"github.com/csheth/interviewer/internal/docs"
	"github.com/csheth/interviewer/internal/llm"
	"github.com/csheth/interviewer/internal/session"
)

// Precondition and concurrency conditions. Each aborts the operation with no
// state change.
var (
	ErrNoAnswers = errors.New("answer a few questions first")
	ErrBusy      = errors.New("an enrichment request is already running")
)

// Adapter runs enrichment operations against a model client. Only one
// operation may be in flight at a time; a second request is rejected with
// ErrBusy rather than interleaved, since the operations read and write
// overlapping document fields.
type Adapter struct {
	client llm.Client
	busy   atomic.Bool
}

// New returns an adapter around the given client.
func New(client llm.Client) *Adapter {
	return &Adapter{client: client}
}

// Begin reserves the single enrichment slot. Callers that split the service
// round-trip from the merge (the UI does) hold the slot across both phases
// and release it with End.
func (a *Adapter) Begin() bool {
	return a.busy.CompareAndSwap(false, true)
}

// End releases the enrichment slot.
func (a *Adapter) End() {
	a.busy.Store(false)
}

// InsertFollowUps asks the model for count follow-up questions to the
// current answer and splices them in after the current question. The current
// question must already be answered. Returns how many follow-ups landed.
func (a *Adapter) InsertFollowUps(ctx context.Context, s *session.Session, count int) (int, error) {
	if !a.Begin() {
		return 0, ErrBusy
	}
	defer a.End()

	record, err := s.Current()
	if err != nil {
		return 0, err
	}
	texts, err := a.GenerateFollowUps(ctx, record.Answer, count)
	if err != nil {
		return 0, err
	}
	return s.InsertFollowUps(s.Index(), texts), nil
}

// GenerateFollowUps is the service half of InsertFollowUps: precondition
// check plus round-trip, no session access. Safe to run off the UI
// goroutine; apply the result with Session.InsertFollowUps.
func (a *Adapter) GenerateFollowUps(ctx context.Context, answer string, count int) ([]string, error) {
	if strings.TrimSpace(answer) == "" {
		return nil, session.ErrAnswerRequired
	}
	return a.client.FollowUps(ctx, answer, count)
}

// RefreshSubjectProfile summarizes every answered question into the subject
// profile. All five summary fields are overwritten, so keys the model omits
// reset the corresponding field to empty. Background is optional research
// text folded into the prompt.
func (a *Adapter) RefreshSubjectProfile(ctx context.Context, s *session.Session, background string) error {
	if !a.Begin() {
		return ErrBusy
	}
	defer a.End()

	summary, err := a.SummarizeSubject(ctx, s.AnsweredBlob(), background)
	if err != nil {
		return err
	}
	ApplySubjectSummary(s.SubjectProfile, summary)
	return nil
}

// SummarizeSubject is the service half of RefreshSubjectProfile. Notes is
// the joined answered Q/A text; it must not be empty.
func (a *Adapter) SummarizeSubject(ctx context.Context, notes, background string) (llm.SubjectSummary, error) {
	if strings.TrimSpace(notes) == "" {
		return llm.SubjectSummary{}, ErrNoAnswers
	}
	return a.client.SubjectSummary(ctx, notes, background)
}

// RebuildGuide asks the model for a fresh section list built from the
// project brief and subject profile, replacing the guide's sections wholesale
// on success.
func (a *Adapter) RebuildGuide(ctx context.Context, s *session.Session) error {
	if !a.Begin() {
		return ErrBusy
	}
	defer a.End()

	briefJSON, profileJSON, err := MarshalGuideInputs(s)
	if err != nil {
		return err
	}
	sections, err := a.GenerateGuide(ctx, briefJSON, profileJSON)
	if err != nil {
		return err
	}
	s.ReplaceSections(MapGuideSections(sections))
	return nil
}

// GenerateGuide is the service half of RebuildGuide. The documents are
// passed pre-serialized so callers can snapshot them on the UI goroutine.
func (a *Adapter) GenerateGuide(ctx context.Context, briefJSON, profileJSON string) ([]llm.GuideSection, error) {
	return a.client.GuideSections(ctx, briefJSON, profileJSON)
}

// MarshalGuideInputs serializes the brief and profile for the guide prompt.
func MarshalGuideInputs(s *session.Session) (string, string, error) {
	briefJSON, err := json.Marshal(s.ProjectBrief)
	if err != nil {
		return "", "", err
	}
	profileJSON, err := json.Marshal(s.SubjectProfile)
	if err != nil {
		return "", "", err
	}
	return string(briefJSON), string(profileJSON), nil
}

// ApplySubjectSummary overwrites the five summarized profile fields. This is
// deliberately a full overwrite, matching the summarization contract: fields
// the response omitted go back to their empty defaults.
func ApplySubjectSummary(profile *docs.SubjectProfile, summary llm.SubjectSummary) {
	profile.BackgroundSummary = summary.BackgroundSummary
	profile.KeyLifeEvents = orEmpty(summary.KeyLifeEvents)
	profile.ValuesAndBeliefs = orEmpty(summary.ValuesAndBeliefs)
	profile.CurrentChallenges = orEmpty(summary.CurrentChallenges)
	profile.StrengthsAndSkills = orEmpty(summary.StrengthsAndSkills)
}

// MapGuideSections converts model guide sections into document sections.
func MapGuideSections(sections []llm.GuideSection) []docs.GuideSection {
	mapped := make([]docs.GuideSection, 0, len(sections))
	for _, sec := range sections {
		mapped = append(mapped, docs.GuideSection{
			SectionTitle:     strings.TrimSpace(sec.SectionTitle),
			Intent:           strings.TrimSpace(sec.Intent),
			PrimaryQuestions: orEmpty(sec.PrimaryQuestions),
			FollowUps:        orEmpty(sec.FollowUps),
		})
	}
	return mapped
}

func orEmpty(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
