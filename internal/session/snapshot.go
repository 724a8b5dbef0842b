package session

import (
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/csheth/interviewer/internal/docs"
	"github.com/csheth/interviewer/internal/store"
)

// SnapshotFilename builds the session file name for a subject at a point in
// time: session_<subject>_<YYYYMMDD_HHMMSS>.json, keeping only alphanumerics,
// '-' and '_' from the subject name.
func SnapshotFilename(subject string, at time.Time) string {
	safe := sanitizeSubject(subject)
	return "session_" + safe + "_" + at.Format("20060102_150405") + ".json"
}

func sanitizeSubject(subject string) string {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return "unknown_subject"
	}
	var b strings.Builder
	for _, r := range subject {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "unknown_subject"
	}
	return b.String()
}

// SaveSnapshot writes the full session aggregate to a timestamped file in
// dir and returns the path. The in-memory session is untouched on failure.
func (s *Session) SaveSnapshot(dir string) (string, error) {
	path := filepath.Join(dir, SnapshotFilename(s.SubjectName, time.Now()))
	if err := store.Save(path, s); err != nil {
		return "", err
	}
	return path, nil
}

// DocumentPaths names the canonical file for each planning document.
type DocumentPaths struct {
	ProjectBrief   string
	SubjectProfile string
	InterviewGuide string
	DirectorNotes  string
}

// SaveDocuments writes the four documents back to their canonical paths.
// The first failure stops the pass; documents already written stay written
// and in-memory state is preserved for a retry.
func (s *Session) SaveDocuments(paths DocumentPaths) error {
	targets := []struct {
		path string
		doc  any
	}{
		{paths.ProjectBrief, s.ProjectBrief},
		{paths.SubjectProfile, s.SubjectProfile},
		{paths.InterviewGuide, s.InterviewGuide},
		{paths.DirectorNotes, s.DirectorProducer},
	}
	for _, target := range targets {
		if err := store.Save(target.path, target.doc); err != nil {
			return err
		}
	}
	return nil
}

// LoadDocuments reads the four documents, falling back to defaults for any
// that do not exist yet.
func LoadDocuments(paths DocumentPaths) (Documents, error) {
	brief, err := docs.LoadProjectBrief(paths.ProjectBrief)
	if err != nil {
		return Documents{}, err
	}
	profile, err := docs.LoadSubjectProfile(paths.SubjectProfile)
	if err != nil {
		return Documents{}, err
	}
	guide, err := docs.LoadInterviewGuide(paths.InterviewGuide)
	if err != nil {
		return Documents{}, err
	}
	director, err := docs.LoadDirectorNotes(paths.DirectorNotes)
	if err != nil {
		return Documents{}, err
	}
	return Documents{
		ProjectBrief:     brief,
		SubjectProfile:   profile,
		InterviewGuide:   guide,
		DirectorProducer: director,
	}, nil
}
