package docs

import "github.com/csheth/interviewer/internal/store"

// LoadProjectBrief returns the brief at path, or a default brief when the
// file does not exist yet. Fields missing from an older file are backfilled
// from the default.
func LoadProjectBrief(path string) (*ProjectBrief, error) {
	doc := DefaultProjectBrief()
	if err := store.LoadOrDefault(path, doc); err != nil {
		return nil, err
	}
	doc.Normalize()
	return doc, nil
}

// LoadSubjectProfile returns the profile at path, defaulting when absent.
func LoadSubjectProfile(path string) (*SubjectProfile, error) {
	doc := DefaultSubjectProfile()
	if err := store.LoadOrDefault(path, doc); err != nil {
		return nil, err
	}
	doc.Normalize()
	return doc, nil
}

// LoadInterviewGuide returns the guide at path, defaulting when absent.
func LoadInterviewGuide(path string) (*InterviewGuide, error) {
	doc := DefaultInterviewGuide()
	if err := store.LoadOrDefault(path, doc); err != nil {
		return nil, err
	}
	doc.Normalize()
	return doc, nil
}

// LoadDirectorNotes returns the notes at path, defaulting when absent.
func LoadDirectorNotes(path string) (*DirectorNotes, error) {
	doc := DefaultDirectorNotes()
	if err := store.LoadOrDefault(path, doc); err != nil {
		return nil, err
	}
	doc.Normalize()
	return doc, nil
}
