package docs

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/csheth/interviewer/internal/store"
)

func TestLoadProjectBriefMissingFileYieldsDefault(t *testing.T) {
	t.Parallel()

	got, err := LoadProjectBrief(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("LoadProjectBrief() error = %v", err)
	}
	if !reflect.DeepEqual(got, DefaultProjectBrief()) {
		t.Fatalf("expected default brief, got %#v", got)
	}
	if got.Format != "documentary" {
		t.Fatalf("unexpected default format: %q", got.Format)
	}
}

func TestLoadSubjectProfileBackfillsOlderFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "subject_profile.json")
	older := `{"subject_name":"Maya Lindqvist","key_life_events":["moved abroad"]}`
	if err := os.WriteFile(path, []byte(older), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	got, err := LoadSubjectProfile(path)
	if err != nil {
		t.Fatalf("LoadSubjectProfile() error = %v", err)
	}
	if got.SubjectName != "Maya Lindqvist" {
		t.Fatalf("unexpected subject: %q", got.SubjectName)
	}
	if len(got.KeyLifeEvents) != 1 || got.KeyLifeEvents[0] != "moved abroad" {
		t.Fatalf("unexpected life events: %#v", got.KeyLifeEvents)
	}
	if got.Version != "1.0" {
		t.Fatalf("version should be backfilled: %q", got.Version)
	}
	if got.PreInterviewNotes == nil || got.ValuesAndBeliefs == nil {
		t.Fatal("missing lists should normalize to empty, not nil")
	}
}

func TestLoadInterviewGuideNormalizesSectionLists(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "interview_guide.json")
	raw := `{"sections":[{"section_title":"Origins"}]}`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	got, err := LoadInterviewGuide(path)
	if err != nil {
		t.Fatalf("LoadInterviewGuide() error = %v", err)
	}
	if len(got.Sections) != 1 {
		t.Fatalf("unexpected sections: %#v", got.Sections)
	}
	section := got.Sections[0]
	if section.PrimaryQuestions == nil || section.FollowUps == nil {
		t.Fatal("section lists should normalize to empty, not nil")
	}
}

func TestDirectorNotesRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "director_producer.json")
	notes := DefaultDirectorNotes()
	notes.StoryArc = "From departure to reunion"
	notes.SceneBeats = append(notes.SceneBeats, "Opening at the harbour — наутро")

	if err := store.Save(path, notes); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got, err := LoadDirectorNotes(path)
	if err != nil {
		t.Fatalf("LoadDirectorNotes() error = %v", err)
	}
	if !reflect.DeepEqual(got, notes) {
		t.Fatalf("round trip mismatch:\nwant %#v\ngot  %#v", notes, got)
	}
}

func TestLoadProjectBriefRejectsCorruptFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "project_brief.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := LoadProjectBrief(path); err == nil {
		t.Fatal("expected error for corrupt file")
	}
}
