package session

import "fmt"

// Capture destinations. Each maps a menu label to one sequence inside the
// four documents; the guide destination targets the selected section.
const (
	CaptureSubjectNotes          = "Subject: pre_interview_notes"
	CaptureProjectOpenQuestions  = "Project: open_questions"
	CaptureDirectorSceneBeats    = "Director: scene_beats"
	CaptureDirectorOpenQuestions = "Director: open_questions"
	CaptureGuideSection          = "Guide: current section questions"
)

// CaptureDestinations lists every destination in menu order.
var CaptureDestinations = []string{
	CaptureSubjectNotes,
	CaptureProjectOpenQuestions,
	CaptureDirectorSceneBeats,
	CaptureDirectorOpenQuestions,
	CaptureGuideSection,
}

// Capture appends the current question and answer, formatted as
// "Q: <question>\nA: <answer>", to the destination's sequence. The current
// question must already be answered; the guide destination additionally
// requires a selected section.
func (s *Session) Capture(destination string) error {
	record, err := s.Current()
	if err != nil {
		return err
	}
	if record.Answer == "" {
		return ErrAnswerRequired
	}
	text := fmt.Sprintf("Q: %s\nA: %s", record.Question, record.Answer)

	switch destination {
	case CaptureSubjectNotes:
		s.SubjectProfile.PreInterviewNotes = append(s.SubjectProfile.PreInterviewNotes, text)
	case CaptureProjectOpenQuestions:
		s.ProjectBrief.OpenQuestions = append(s.ProjectBrief.OpenQuestions, text)
	case CaptureDirectorSceneBeats:
		s.DirectorProducer.SceneBeats = append(s.DirectorProducer.SceneBeats, text)
	case CaptureDirectorOpenQuestions:
		s.DirectorProducer.OpenQuestions = append(s.DirectorProducer.OpenQuestions, text)
	case CaptureGuideSection:
		i, ok := s.SelectedSection()
		if !ok {
			return ErrNoSectionSelected
		}
		section := &s.InterviewGuide.Sections[i]
		section.PrimaryQuestions = append(section.PrimaryQuestions, text)
	default:
		return fmt.Errorf("unknown capture destination %q", destination)
	}
	s.touch()
	return nil
}
