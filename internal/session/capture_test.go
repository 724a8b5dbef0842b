package session

import (
	"errors"
	"testing"

	"github.com/csheth/interviewer/internal/docs"
)

func TestCaptureRequiresAnswer(t *testing.T) {
	t.Parallel()

	s := testSession("First?")
	if err := s.Capture(CaptureSubjectNotes); !errors.Is(err, ErrAnswerRequired) {
		t.Fatalf("expected ErrAnswerRequired, got %v", err)
	}
}

func TestCaptureToDocumentSequences(t *testing.T) {
	t.Parallel()

	cases := []struct {
		destination string
		sequence    func(s *Session) []string
	}{
		{CaptureSubjectNotes, func(s *Session) []string { return s.SubjectProfile.PreInterviewNotes }},
		{CaptureProjectOpenQuestions, func(s *Session) []string { return s.ProjectBrief.OpenQuestions }},
		{CaptureDirectorSceneBeats, func(s *Session) []string { return s.DirectorProducer.SceneBeats }},
		{CaptureDirectorOpenQuestions, func(s *Session) []string { return s.DirectorProducer.OpenQuestions }},
	}

	for _, tc := range cases {
		t.Run(tc.destination, func(t *testing.T) {
			s := testSession("Where did it begin?")
			s.CommitAnswer("In the valley.")
			if err := s.Capture(tc.destination); err != nil {
				t.Fatalf("Capture() error = %v", err)
			}
			got := tc.sequence(s)
			if len(got) != 1 || got[0] != "Q: Where did it begin?\nA: In the valley." {
				t.Fatalf("unexpected capture: %#v", got)
			}
		})
	}
}

func TestCaptureDoesNotTouchOtherSequences(t *testing.T) {
	t.Parallel()

	s := testSession("Where did it begin?")
	s.CommitAnswer("In the valley.")
	if err := s.Capture(CaptureDirectorSceneBeats); err != nil {
		t.Fatalf("Capture() error = %v", err)
	}
	if len(s.DirectorProducer.OpenQuestions) != 0 || len(s.SubjectProfile.PreInterviewNotes) != 0 {
		t.Fatal("capture leaked into other sequences")
	}
	if s.DirectorProducer.StoryArc != "" {
		t.Fatal("capture should not alter scalar fields")
	}
}

func TestCaptureToGuideSection(t *testing.T) {
	t.Parallel()

	s := testSession("Where did it begin?")
	s.CommitAnswer("In the valley.")

	if err := s.Capture(CaptureGuideSection); !errors.Is(err, ErrNoSectionSelected) {
		t.Fatalf("expected ErrNoSectionSelected, got %v", err)
	}

	s.AddSection(docs.GuideSection{SectionTitle: "Origins"})
	if err := s.Capture(CaptureGuideSection); err != nil {
		t.Fatalf("Capture() error = %v", err)
	}
	section := s.InterviewGuide.Sections[0]
	if len(section.PrimaryQuestions) != 1 || section.PrimaryQuestions[0] != "Q: Where did it begin?\nA: In the valley." {
		t.Fatalf("unexpected guide capture: %#v", section.PrimaryQuestions)
	}
}

func TestCaptureUnknownDestination(t *testing.T) {
	t.Parallel()

	s := testSession("First?")
	s.CommitAnswer("yes")
	if err := s.Capture("Nowhere: at_all"); err == nil {
		t.Fatal("expected error for unknown destination")
	}
}

func TestSectionSelectionLifecycle(t *testing.T) {
	t.Parallel()

	s := testSession()
	s.AddSection(docs.GuideSection{})
	if s.InterviewGuide.Sections[0].SectionTitle != "New section" {
		t.Fatalf("empty title should default: %q", s.InterviewGuide.Sections[0].SectionTitle)
	}
	if i, ok := s.SelectedSection(); !ok || i != 0 {
		t.Fatalf("AddSection should select the new section, got %d/%v", i, ok)
	}

	s.AddSection(docs.GuideSection{SectionTitle: "Second"})
	if err := s.UpdateSection(docs.GuideSection{SectionTitle: "Renamed"}); err != nil {
		t.Fatalf("UpdateSection() error = %v", err)
	}
	if s.InterviewGuide.Sections[1].SectionTitle != "Renamed" {
		t.Fatalf("update landed wrong: %#v", s.InterviewGuide.Sections)
	}

	s.SelectSection(99)
	if _, ok := s.SelectedSection(); ok {
		t.Fatal("out-of-range select should clear the selection")
	}
	if err := s.RemoveSection(); !errors.Is(err, ErrNoSectionSelected) {
		t.Fatalf("expected ErrNoSectionSelected, got %v", err)
	}

	s.SelectSection(0)
	if err := s.RemoveSection(); err != nil {
		t.Fatalf("RemoveSection() error = %v", err)
	}
	if len(s.InterviewGuide.Sections) != 1 || s.InterviewGuide.Sections[0].SectionTitle != "Renamed" {
		t.Fatalf("unexpected sections after remove: %#v", s.InterviewGuide.Sections)
	}
	if _, ok := s.SelectedSection(); ok {
		t.Fatal("remove should clear the selection")
	}
}

func TestReplaceSectionsClearsSelection(t *testing.T) {
	t.Parallel()

	s := testSession()
	s.AddSection(docs.GuideSection{SectionTitle: "Old"})
	s.ReplaceSections([]docs.GuideSection{
		{SectionTitle: "A"},
		{SectionTitle: "B"},
	})
	if len(s.InterviewGuide.Sections) != 2 {
		t.Fatalf("unexpected sections: %#v", s.InterviewGuide.Sections)
	}
	if s.InterviewGuide.Sections[0].PrimaryQuestions == nil {
		t.Fatal("replaced sections should have non-nil lists")
	}
	if _, ok := s.SelectedSection(); ok {
		t.Fatal("replace should clear the selection")
	}
	s.ReplaceSections(nil)
	if s.InterviewGuide.Sections == nil || len(s.InterviewGuide.Sections) != 0 {
		t.Fatal("nil replacement should yield an empty list")
	}
}
