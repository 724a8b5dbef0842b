package enrich

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/csheth/interviewer/internal/bank"
	"github.com/csheth/interviewer/internal/docs"
	"github.com/csheth/interviewer/internal/llm"
	"github.com/csheth/interviewer/internal/session"
)

type fakeClient struct {
	followUps    []string
	followUpsErr error
	summary      llm.SubjectSummary
	summaryErr   error
	sections     []llm.GuideSection
	sectionsErr  error

	lastNotes      string
	lastBackground string
	lastBrief      string
	calls          int
}

func (f *fakeClient) FollowUps(ctx context.Context, answer string, count int) ([]string, error) {
	f.calls++
	return f.followUps, f.followUpsErr
}

func (f *fakeClient) SubjectSummary(ctx context.Context, notes, background string) (llm.SubjectSummary, error) {
	f.calls++
	f.lastNotes = notes
	f.lastBackground = background
	return f.summary, f.summaryErr
}

func (f *fakeClient) GuideSections(ctx context.Context, briefJSON, profileJSON string) ([]llm.GuideSection, error) {
	f.calls++
	f.lastBrief = briefJSON
	return f.sections, f.sectionsErr
}

func (f *fakeClient) Name() string { return "fake" }

func testSession(questions ...string) *session.Session {
	records := make([]bank.Record, 0, len(questions))
	for _, q := range questions {
		records = append(records, bank.Record{Category: "opening", Question: q, Source: bank.SourceBank})
	}
	return session.New(records, session.Documents{
		ProjectBrief:     docs.DefaultProjectBrief(),
		SubjectProfile:   docs.DefaultSubjectProfile(),
		InterviewGuide:   docs.DefaultInterviewGuide(),
		DirectorProducer: docs.DefaultDirectorNotes(),
	}, "test-model")
}

func TestInsertFollowUps(t *testing.T) {
	t.Parallel()

	client := &fakeClient{followUps: []string{"Why?", "And then?"}}
	adapter := New(client)
	s := testSession("First?", "Second?")
	s.CommitAnswer("Because of the drought.")

	inserted, err := adapter.InsertFollowUps(context.Background(), s, 2)
	if err != nil {
		t.Fatalf("InsertFollowUps() error = %v", err)
	}
	if inserted != 2 || len(s.Questions) != 4 {
		t.Fatalf("inserted = %d, len = %d", inserted, len(s.Questions))
	}
	if s.Questions[1].Question != "Why?" || s.Questions[1].Source != bank.SourceAI {
		t.Fatalf("unexpected spliced record: %+v", s.Questions[1])
	}
	if s.Index() != 1 {
		t.Fatalf("index should land on the first follow-up, got %d", s.Index())
	}
}

func TestInsertFollowUpsRequiresAnswer(t *testing.T) {
	t.Parallel()

	client := &fakeClient{}
	adapter := New(client)
	s := testSession("First?")

	if _, err := adapter.InsertFollowUps(context.Background(), s, 1); !errors.Is(err, session.ErrAnswerRequired) {
		t.Fatalf("expected ErrAnswerRequired, got %v", err)
	}
	if client.calls != 0 {
		t.Fatal("client should not be called without an answer")
	}
}

func TestInsertFollowUpsServiceFailureLeavesSessionUntouched(t *testing.T) {
	t.Parallel()

	client := &fakeClient{followUpsErr: errors.New("model offline")}
	adapter := New(client)
	s := testSession("First?", "Second?")
	s.CommitAnswer("An answer.")

	if _, err := adapter.InsertFollowUps(context.Background(), s, 1); err == nil {
		t.Fatal("expected service error")
	}
	if len(s.Questions) != 2 || s.Index() != 0 {
		t.Fatalf("session mutated on failure: len=%d index=%d", len(s.Questions), s.Index())
	}
}

func TestRefreshSubjectProfileFullOverwrite(t *testing.T) {
	t.Parallel()

	client := &fakeClient{summary: llm.SubjectSummary{BackgroundSummary: "A fisherman turned organizer."}}
	adapter := New(client)
	s := testSession("Where were you born?")
	s.CommitAnswer("By the sea.")
	s.SubjectProfile.KeyLifeEvents = []string{"left town", "came back"}
	s.SubjectProfile.ValuesAndBeliefs = []string{"stubbornness"}

	if err := adapter.RefreshSubjectProfile(context.Background(), s, "old press clipping"); err != nil {
		t.Fatalf("RefreshSubjectProfile() error = %v", err)
	}
	profile := s.SubjectProfile
	if profile.BackgroundSummary != "A fisherman turned organizer." {
		t.Fatalf("unexpected background: %q", profile.BackgroundSummary)
	}
	if len(profile.KeyLifeEvents) != 0 || len(profile.ValuesAndBeliefs) != 0 {
		t.Fatalf("omitted summary keys should reset fields: %#v", profile)
	}
	if profile.KeyLifeEvents == nil {
		t.Fatal("reset fields should still be non-nil")
	}
	if client.lastNotes != "Q: Where were you born?\nA: By the sea." {
		t.Fatalf("unexpected notes sent: %q", client.lastNotes)
	}
	if client.lastBackground != "old press clipping" {
		t.Fatalf("unexpected background sent: %q", client.lastBackground)
	}
}

func TestRefreshSubjectProfileRequiresAnswers(t *testing.T) {
	t.Parallel()

	client := &fakeClient{}
	adapter := New(client)
	s := testSession("First?")

	if err := adapter.RefreshSubjectProfile(context.Background(), s, ""); !errors.Is(err, ErrNoAnswers) {
		t.Fatalf("expected ErrNoAnswers, got %v", err)
	}
	if client.calls != 0 {
		t.Fatal("client should not be called without answers")
	}
}

func TestRefreshSubjectProfileFailureKeepsProfile(t *testing.T) {
	t.Parallel()

	client := &fakeClient{summaryErr: errors.New("timeout")}
	adapter := New(client)
	s := testSession("First?")
	s.CommitAnswer("yes")
	s.SubjectProfile.BackgroundSummary = "untouched"

	if err := adapter.RefreshSubjectProfile(context.Background(), s, ""); err == nil {
		t.Fatal("expected error")
	}
	if s.SubjectProfile.BackgroundSummary != "untouched" {
		t.Fatal("profile mutated on failure")
	}
}

func TestRebuildGuide(t *testing.T) {
	t.Parallel()

	client := &fakeClient{sections: []llm.GuideSection{
		{SectionTitle: "  Origins  ", Intent: " Establish place ", PrimaryQuestions: []string{"Where?"}},
	}}
	adapter := New(client)
	s := testSession()
	s.ProjectBrief.ProjectName = "Roots"
	s.AddSection(docs.GuideSection{SectionTitle: "Old section"})

	if err := adapter.RebuildGuide(context.Background(), s); err != nil {
		t.Fatalf("RebuildGuide() error = %v", err)
	}
	sections := s.InterviewGuide.Sections
	if len(sections) != 1 || sections[0].SectionTitle != "Origins" || sections[0].Intent != "Establish place" {
		t.Fatalf("unexpected sections: %#v", sections)
	}
	if sections[0].FollowUps == nil {
		t.Fatal("mapped sections should have non-nil lists")
	}
	if !strings.Contains(client.lastBrief, `"project_name": "Roots"`) && !strings.Contains(client.lastBrief, `"project_name":"Roots"`) {
		t.Fatalf("brief JSON not sent: %q", client.lastBrief)
	}
	if _, ok := s.SelectedSection(); ok {
		t.Fatal("rebuild should clear the section selection")
	}
}

func TestRebuildGuideFailureKeepsSections(t *testing.T) {
	t.Parallel()

	client := &fakeClient{sectionsErr: llm.ErrUnexpectedShape}
	adapter := New(client)
	s := testSession()
	s.AddSection(docs.GuideSection{SectionTitle: "Keep me"})

	if err := adapter.RebuildGuide(context.Background(), s); !errors.Is(err, llm.ErrUnexpectedShape) {
		t.Fatalf("expected ErrUnexpectedShape, got %v", err)
	}
	if len(s.InterviewGuide.Sections) != 1 || s.InterviewGuide.Sections[0].SectionTitle != "Keep me" {
		t.Fatalf("sections mutated on failure: %#v", s.InterviewGuide.Sections)
	}
}

func TestSingleFlight(t *testing.T) {
	t.Parallel()

	adapter := New(&fakeClient{})
	if !adapter.Begin() {
		t.Fatal("first Begin should win the slot")
	}
	s := testSession("First?")
	s.CommitAnswer("yes")

	if _, err := adapter.InsertFollowUps(context.Background(), s, 1); !errors.Is(err, ErrBusy) {
		t.Fatalf("expected ErrBusy while slot held, got %v", err)
	}
	if err := adapter.RefreshSubjectProfile(context.Background(), s, ""); !errors.Is(err, ErrBusy) {
		t.Fatalf("expected ErrBusy while slot held, got %v", err)
	}
	adapter.End()
	if _, err := adapter.InsertFollowUps(context.Background(), s, 1); err != nil {
		t.Fatalf("slot should be free after End: %v", err)
	}
}

