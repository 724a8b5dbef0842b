// Package tui is the interactive form surface over the interview session.
// It never owns field values itself: every keystroke that commits lands in
// the session or one of its documents, and every frame renders from them.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/interviewer/internal/docs"
	"github.com/csheth/interviewer/internal/enrich"
	"github.com/csheth/interviewer/internal/session"
)

// Config wires runtime options into the TUI program.
type Config struct {
	Session     *session.Session
	Adapter     *enrich.Adapter
	LLMName     string
	DocPaths    session.DocumentPaths
	SessionsDir string
	Background  string
	Timeout     time.Duration
	BankWarning string
}

// New returns a tea.Model ready to be mounted into a Program.
func New(config Config) tea.Model {
	composer := textinput.New()
	composer.Placeholder = composerAnswerPlaceholder
	composer.CharLimit = 0
	composer.Width = 70

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	vp := viewport.New(80, 20)
	vp.MouseWheelEnabled = true

	if config.Timeout <= 0 {
		config.Timeout = 3 * time.Minute
	}

	m := &model{
		config:         config,
		tab:            tabInterview,
		composer:       composer,
		composerTarget: composerIdle,
		spinner:        spin,
		viewport:       vp,
		jobs:           newJobBus(),
		viewportDirty:  true,
		infoMessage:    "Press e to answer, ? for keys.",
	}
	if config.BankWarning != "" {
		m.errorMessage = config.BankWarning
	}
	return m
}

type model struct {
	config Config
	tab    tab

	composer       textinput.Model
	composerTarget composerTarget
	spinner        spinner.Model
	viewport       viewport.Model

	captureIdx    int
	pending       jobKind
	jobs          *jobBus
	infoMessage   string
	errorMessage  string
	helpVisible   bool
	viewportDirty bool
}

func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.pending != "" {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case tea.WindowSizeMsg:
		newWidth := msg.Width - viewportHorizontalPadding
		if newWidth < minViewportWidth {
			newWidth = minViewportWidth
		}
		m.viewport.Width = newWidth
		m.composer.Width = newWidth - 4
		height := msg.Height - 10
		if height < 5 {
			height = 5
		}
		m.viewport.Height = height
		m.markViewportDirty()
		return m, nil
	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.composerTarget != composerIdle {
			return m.handleComposerKey(msg)
		}
		return m.handleKey(msg)
	case jobSignalMsg:
		return m, nil
	case jobResultEnvelope:
		m.pending = ""
		m.config.Adapter.End()
		if msg.Payload == nil {
			return m, nil
		}
		return m.Update(msg.Payload)
	case followUpsResultMsg:
		return m.applyFollowUps(msg)
	case summaryResultMsg:
		return m.applySummary(msg)
	case guideResultMsg:
		return m.applyGuide(msg)
	}
	return m, nil
}

func (m *model) handleComposerKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.Type {
	case tea.KeyEsc:
		m.closeComposer()
		m.infoMessage = "Edit canceled."
		return m, nil
	case tea.KeyEnter:
		m.commitComposer()
		return m, nil
	}
	var cmd tea.Cmd
	m.composer, cmd = m.composer.Update(key)
	return m, cmd
}

func (m *model) commitComposer() {
	value := strings.TrimSpace(m.composer.Value())
	s := m.config.Session
	switch m.composerTarget {
	case composerAnswer:
		s.CommitAnswer(value)
		m.infoMessage = "Answer saved. n for the next question, c to capture."
	case composerSubject:
		s.SubjectName = value
		m.infoMessage = "Subject updated."
	case composerModel:
		s.Model = value
		m.infoMessage = "Model name recorded for the session snapshot."
	case composerSectionTitle:
		s.AddSection(docs.GuideSection{SectionTitle: value})
		m.infoMessage = "Section added and selected."
	}
	m.closeComposer()
	m.markViewportDirty()
}

func (m *model) closeComposer() {
	m.composerTarget = composerIdle
	m.composer.SetValue("")
	m.composer.Blur()
}

func (m *model) openComposer(target composerTarget, placeholder, prefill string) {
	m.composerTarget = target
	m.composer.Placeholder = placeholder
	m.composer.SetValue(prefill)
	m.composer.CursorEnd()
	m.composer.Focus()
}

func (m *model) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.config.Session
	switch key.String() {
	case "q", "esc":
		return m, tea.Quit
	case "?":
		m.helpVisible = !m.helpVisible
		return m, nil
	case "tab":
		m.tab = (m.tab + 1) % tab(len(tabTitles))
		m.markViewportDirty()
		return m, nil
	case "shift+tab":
		m.tab = (m.tab + tab(len(tabTitles)) - 1) % tab(len(tabTitles))
		m.markViewportDirty()
		return m, nil
	case "1", "2", "3", "4", "5":
		m.tab = tab(int(key.String()[0] - '1'))
		m.markViewportDirty()
		return m, nil
	case "up", "down", "pgup", "pgdown":
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(key)
		return m, cmd
	case "e", "enter":
		record, err := s.Current()
		if err != nil {
			m.errorMessage = err.Error()
			return m, nil
		}
		m.tab = tabInterview
		m.openComposer(composerAnswer, composerAnswerPlaceholder, record.Answer)
		m.markViewportDirty()
		return m, textinput.Blink
	case "n":
		if record, err := s.Current(); err == nil {
			if !s.Advance(record.Answer) {
				m.infoMessage = "End of questions."
			} else {
				m.infoMessage = ""
			}
			m.markViewportDirty()
		}
		return m, nil
	case "p":
		if record, err := s.Current(); err == nil {
			s.Retreat(record.Answer)
			m.infoMessage = ""
			m.markViewportDirty()
		}
		return m, nil
	case "k":
		if !s.Skip() {
			m.infoMessage = "End of questions."
		} else {
			m.infoMessage = "Question skipped."
		}
		m.markViewportDirty()
		return m, nil
	case "d":
		m.captureIdx = (m.captureIdx + 1) % len(session.CaptureDestinations)
		m.infoMessage = "Capture to " + session.CaptureDestinations[m.captureIdx]
		m.markViewportDirty()
		return m, nil
	case "c":
		destination := session.CaptureDestinations[m.captureIdx]
		if err := s.Capture(destination); err != nil {
			m.errorMessage = err.Error()
			return m, nil
		}
		m.errorMessage = ""
		m.infoMessage = "Captured to " + destination
		m.markViewportDirty()
		return m, nil
	case "f":
		return m, m.startFollowUps(1)
	case "F":
		return m, m.startFollowUps(5)
	case "u":
		return m, m.startSummary()
	case "g":
		return m, m.startGuide()
	case "w":
		path, err := s.SaveSnapshot(m.config.SessionsDir)
		if err != nil {
			m.errorMessage = "Save failed: " + err.Error()
			return m, nil
		}
		m.errorMessage = ""
		m.infoMessage = "Saved: " + path
		return m, nil
	case "W":
		if err := s.SaveDocuments(m.config.DocPaths); err != nil {
			m.errorMessage = "Save failed: " + err.Error()
			return m, nil
		}
		m.errorMessage = ""
		m.infoMessage = "Saved all documents."
		return m, nil
	case "S":
		m.openComposer(composerSubject, composerSubjectPlaceholder, s.SubjectName)
		return m, textinput.Blink
	case "M":
		m.openComposer(composerModel, composerModelPlaceholder, s.Model)
		return m, textinput.Blink
	case "a":
		m.tab = tabGuide
		m.openComposer(composerSectionTitle, composerSectionPlaceholder, "")
		m.markViewportDirty()
		return m, textinput.Blink
	case "]":
		m.cycleSection(1)
		return m, nil
	case "[":
		m.cycleSection(-1)
		return m, nil
	case "x":
		if err := s.RemoveSection(); err != nil {
			m.errorMessage = err.Error()
			return m, nil
		}
		m.errorMessage = ""
		m.infoMessage = "Section removed."
		m.markViewportDirty()
		return m, nil
	}
	return m, nil
}

func (m *model) cycleSection(delta int) {
	s := m.config.Session
	total := len(s.InterviewGuide.Sections)
	if total == 0 {
		m.errorMessage = session.ErrNoSectionSelected.Error()
		return
	}
	current, ok := s.SelectedSection()
	if !ok {
		if delta >= 0 {
			current = -1
		} else {
			current = total
		}
	}
	next := (current + delta + total) % total
	s.SelectSection(next)
	m.errorMessage = ""
	m.infoMessage = fmt.Sprintf("Selected section %d/%d.", next+1, total)
	m.markViewportDirty()
}

func (m *model) startFollowUps(count int) tea.Cmd {
	s := m.config.Session
	record, err := s.Current()
	if err != nil {
		m.errorMessage = err.Error()
		return nil
	}
	if strings.TrimSpace(record.Answer) == "" {
		m.errorMessage = session.ErrAnswerRequired.Error()
		return nil
	}
	if !m.config.Adapter.Begin() {
		m.errorMessage = enrich.ErrBusy.Error()
		return nil
	}
	m.pending = jobKindFollowUps
	m.errorMessage = ""
	m.infoMessage = fmt.Sprintf("Asking %s for %d follow-up(s)…", m.config.LLMName, count)
	return tea.Batch(
		m.jobs.Start(jobKindFollowUps, followUpsJob(m.config.Adapter, record.Answer, count, m.config.Timeout)),
		m.spinner.Tick,
	)
}

func (m *model) startSummary() tea.Cmd {
	notes := m.config.Session.AnsweredBlob()
	if notes == "" {
		m.errorMessage = enrich.ErrNoAnswers.Error()
		return nil
	}
	if !m.config.Adapter.Begin() {
		m.errorMessage = enrich.ErrBusy.Error()
		return nil
	}
	m.pending = jobKindSummary
	m.errorMessage = ""
	m.infoMessage = "Summarizing subject…"
	return tea.Batch(
		m.jobs.Start(jobKindSummary, summaryJob(m.config.Adapter, notes, m.config.Background, m.config.Timeout)),
		m.spinner.Tick,
	)
}

func (m *model) startGuide() tea.Cmd {
	briefJSON, profileJSON, err := enrich.MarshalGuideInputs(m.config.Session)
	if err != nil {
		m.errorMessage = err.Error()
		return nil
	}
	if !m.config.Adapter.Begin() {
		m.errorMessage = enrich.ErrBusy.Error()
		return nil
	}
	m.pending = jobKindGuide
	m.errorMessage = ""
	m.infoMessage = "Building guide…"
	return tea.Batch(
		m.jobs.Start(jobKindGuide, guideJob(m.config.Adapter, briefJSON, profileJSON, m.config.Timeout)),
		m.spinner.Tick,
	)
}

func (m *model) applyFollowUps(msg followUpsResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.errorMessage = "Ollama error: " + msg.err.Error()
		m.infoMessage = "Ready."
		return m, nil
	}
	s := m.config.Session
	inserted := s.InsertFollowUps(s.Index(), msg.texts)
	if inserted == 0 {
		m.infoMessage = "No follow-up generated."
		return m, nil
	}
	m.errorMessage = ""
	m.infoMessage = fmt.Sprintf("Inserted %d follow-up(s).", inserted)
	m.markViewportDirty()
	return m, nil
}

func (m *model) applySummary(msg summaryResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.errorMessage = "AI summary failed: " + msg.err.Error()
		m.infoMessage = "Ready."
		return m, nil
	}
	enrich.ApplySubjectSummary(m.config.Session.SubjectProfile, msg.summary)
	m.errorMessage = ""
	m.infoMessage = "Subject summary updated."
	m.markViewportDirty()
	return m, nil
}

func (m *model) applyGuide(msg guideResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.errorMessage = "AI guide failed: " + msg.err.Error()
		m.infoMessage = "Ready."
		return m, nil
	}
	m.config.Session.ReplaceSections(enrich.MapGuideSections(msg.sections))
	m.errorMessage = ""
	m.infoMessage = fmt.Sprintf("Guide updated with %d section(s).", len(msg.sections))
	m.markViewportDirty()
	return m, nil
}

func (m *model) markViewportDirty() {
	m.viewportDirty = true
}

func (m *model) refreshViewportIfDirty() {
	if !m.viewportDirty {
		return
	}
	m.viewport.SetContent(m.buildTabContent())
	m.viewportDirty = false
}
