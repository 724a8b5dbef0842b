// Package session owns the in-memory interview state: the ordered question
// list, the four planning documents, and the metadata persisted with every
// snapshot. All mutation happens through its methods on a single goroutine;
// the documents are held by pointer so edits made here are visible to
// whoever else holds them until the next save serializes them by value.
package session

import (
	"errors"
	"fmt"
	"iter"
	"strings"
	"time"

	"github.com/csheth/interviewer/internal/bank"
	"github.com/csheth/interviewer/internal/docs"
)

// Sentinel conditions for navigation and capture preconditions. They abort
// the operation without touching any state.
var (
	ErrNoQuestions       = errors.New("no questions available")
	ErrAnswerRequired    = errors.New("answer the current question first")
	ErrNoSectionSelected = errors.New("select an interview guide section first")
)

const schemaVersion = "1.0"

// Category assigned to AI-generated follow-up questions.
const followUpCategory = "ai_follow_up"

// Session is the aggregate persisted as a timestamped snapshot.
type Session struct {
	Version          string               `json:"version"`
	CreatedAt        time.Time            `json:"created_at"`
	UpdatedAt        time.Time            `json:"updated_at"`
	SubjectName      string               `json:"subject_name"`
	Model            string               `json:"model"`
	Questions        []bank.Record        `json:"questions"`
	ProjectBrief     *docs.ProjectBrief   `json:"project_brief"`
	SubjectProfile   *docs.SubjectProfile `json:"subject_profile"`
	InterviewGuide   *docs.InterviewGuide `json:"interview_guide"`
	DirectorProducer *docs.DirectorNotes  `json:"director_producer"`

	index           int
	selectedSection int
}

// Documents bundles the four planning documents for session construction.
type Documents struct {
	ProjectBrief     *docs.ProjectBrief
	SubjectProfile   *docs.SubjectProfile
	InterviewGuide   *docs.InterviewGuide
	DirectorProducer *docs.DirectorNotes
}

// New composes a session from the expanded question list and the loaded (or
// defaulted) documents. The session keeps the documents by reference.
func New(questions []bank.Record, d Documents, model string) *Session {
	now := time.Now().UTC()
	return &Session{
		Version:          schemaVersion,
		CreatedAt:        now,
		UpdatedAt:        now,
		Model:            model,
		Questions:        questions,
		ProjectBrief:     d.ProjectBrief,
		SubjectProfile:   d.SubjectProfile,
		InterviewGuide:   d.InterviewGuide,
		DirectorProducer: d.DirectorProducer,
		selectedSection:  -1,
	}
}

// Index reports the current position in the question list.
func (s *Session) Index() int {
	return s.index
}

// Current returns the question record at the current index.
func (s *Session) Current() (*bank.Record, error) {
	if len(s.Questions) == 0 {
		return nil, ErrNoQuestions
	}
	return &s.Questions[s.index], nil
}

// CommitAnswer stores the trimmed text into the current record's answer and
// refreshes the session's updated_at stamp.
func (s *Session) CommitAnswer(text string) {
	if len(s.Questions) == 0 {
		return
	}
	s.Questions[s.index].Answer = strings.TrimSpace(text)
	s.touch()
}

// Advance commits the given answer, then moves to the next question. It
// reports false when already at the last question; the index stays put.
func (s *Session) Advance(answer string) bool {
	s.CommitAnswer(answer)
	if s.index < len(s.Questions)-1 {
		s.index++
		return true
	}
	return false
}

// Retreat commits the given answer, then moves to the previous question,
// clamped at the start of the list.
func (s *Session) Retreat(answer string) {
	s.CommitAnswer(answer)
	if s.index > 0 {
		s.index--
	}
}

// Skip clears the current answer and advances. It reports false at the end
// of the list.
func (s *Session) Skip() bool {
	if len(s.Questions) == 0 {
		return false
	}
	return s.Advance("")
}

// InsertFollowUps splices one AI-sourced record per non-empty trimmed string
// in texts, in order, immediately after the record at after. Blank strings
// are dropped silently. The current index moves to after+1, clamped to the
// list. Returns the number of records inserted.
func (s *Session) InsertFollowUps(after int, texts []string) int {
	insertAt := after + 1
	if insertAt > len(s.Questions) {
		insertAt = len(s.Questions)
	}
	inserted := 0
	for _, text := range texts {
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		record := bank.Record{
			ID:        fmt.Sprintf("ai-%d", len(s.Questions)+1),
			Category:  followUpCategory,
			Question:  text,
			Answer:    "",
			Source:    bank.SourceAI,
			CreatedAt: time.Now().UTC(),
		}
		s.Questions = append(s.Questions, bank.Record{})
		copy(s.Questions[insertAt+1:], s.Questions[insertAt:])
		s.Questions[insertAt] = record
		insertAt++
		inserted++
	}
	if len(s.Questions) > 0 {
		s.index = after + 1
		if s.index > len(s.Questions)-1 {
			s.index = len(s.Questions) - 1
		}
		if s.index < 0 {
			s.index = 0
		}
	}
	if inserted > 0 {
		s.touch()
	}
	return inserted
}

// AnsweredText yields a "Q: ...\nA: ..." block for every record with a
// non-empty answer, in list order. The sequence is restartable and reads the
// live list, so build the prompt before mutating the session.
func (s *Session) AnsweredText() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, record := range s.Questions {
			answer := strings.TrimSpace(record.Answer)
			if answer == "" {
				continue
			}
			if !yield(fmt.Sprintf("Q: %s\nA: %s", record.Question, answer)) {
				return
			}
		}
	}
}

// HasAnswers reports whether at least one question has a non-empty answer.
func (s *Session) HasAnswers() bool {
	for range s.AnsweredText() {
		return true
	}
	return false
}

// AnsweredBlob joins all answered Q/A blocks with blank lines, the form the
// enrichment prompts consume.
func (s *Session) AnsweredBlob() string {
	var parts []string
	for block := range s.AnsweredText() {
		parts = append(parts, block)
	}
	return strings.Join(parts, "\n\n")
}

func (s *Session) touch() {
	s.UpdatedAt = time.Now().UTC()
}
