package session

import "github.com/csheth/interviewer/internal/docs"

// SelectSection marks the guide section at i as the editing target. Out of
// range indexes clear the selection instead.
func (s *Session) SelectSection(i int) {
	if i < 0 || i >= len(s.InterviewGuide.Sections) {
		s.selectedSection = -1
		return
	}
	s.selectedSection = i
}

// ClearSectionSelection drops the current guide section selection.
func (s *Session) ClearSectionSelection() {
	s.selectedSection = -1
}

// SelectedSection reports the selected guide section index, if any.
func (s *Session) SelectedSection() (int, bool) {
	if s.selectedSection < 0 || s.selectedSection >= len(s.InterviewGuide.Sections) {
		return 0, false
	}
	return s.selectedSection, true
}

// AddSection appends a section to the guide and selects it.
func (s *Session) AddSection(section docs.GuideSection) {
	if section.SectionTitle == "" {
		section.SectionTitle = "New section"
	}
	if section.PrimaryQuestions == nil {
		section.PrimaryQuestions = []string{}
	}
	if section.FollowUps == nil {
		section.FollowUps = []string{}
	}
	s.InterviewGuide.Sections = append(s.InterviewGuide.Sections, section)
	s.selectedSection = len(s.InterviewGuide.Sections) - 1
	s.touch()
}

// UpdateSection replaces the section at the selected index.
func (s *Session) UpdateSection(section docs.GuideSection) error {
	i, ok := s.SelectedSection()
	if !ok {
		return ErrNoSectionSelected
	}
	if section.PrimaryQuestions == nil {
		section.PrimaryQuestions = []string{}
	}
	if section.FollowUps == nil {
		section.FollowUps = []string{}
	}
	s.InterviewGuide.Sections[i] = section
	s.touch()
	return nil
}

// RemoveSection deletes the selected section and clears the selection.
func (s *Session) RemoveSection() error {
	i, ok := s.SelectedSection()
	if !ok {
		return ErrNoSectionSelected
	}
	s.InterviewGuide.Sections = append(s.InterviewGuide.Sections[:i], s.InterviewGuide.Sections[i+1:]...)
	s.selectedSection = -1
	s.touch()
	return nil
}

// ReplaceSections swaps in a whole new section list, as the AI guide builder
// does, and clears any selection pointing into the old list.
func (s *Session) ReplaceSections(sections []docs.GuideSection) {
	if sections == nil {
		sections = []docs.GuideSection{}
	}
	for i := range sections {
		if sections[i].PrimaryQuestions == nil {
			sections[i].PrimaryQuestions = []string{}
		}
		if sections[i].FollowUps == nil {
			sections[i].FollowUps = []string{}
		}
	}
	s.InterviewGuide.Sections = sections
	s.selectedSection = -1
	s.touch()
}
