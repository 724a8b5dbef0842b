package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"github.com/csheth/interviewer/internal/session"
)

// buildTabContent renders the body of the active tab. All content comes
// straight from the session and its documents so the viewport is always a
// faithful picture of what a save would write.
func (m *model) buildTabContent() string {
	switch m.tab {
	case tabInterview:
		return m.interviewContent()
	case tabProject:
		return m.projectContent()
	case tabSubject:
		return m.subjectContent()
	case tabGuide:
		return m.guideContent()
	case tabDirector:
		return m.directorContent()
	default:
		return ""
	}
}

func (m *model) wrapWidth() int {
	width := m.viewport.Width - 2
	if width < 20 {
		width = 20
	}
	return width
}

func (m *model) interviewContent() string {
	s := m.config.Session
	var b strings.Builder
	if len(s.Questions) == 0 {
		b.WriteString(helperStyle.Render("No questions loaded."))
		b.WriteString("\n")
		b.WriteString(helperStyle.Render("Add a question bank file and restart, or generate a guide with g."))
		return b.String()
	}
	record, err := s.Current()
	if err != nil {
		return errorStyle.Render(err.Error())
	}
	b.WriteString(subtitleStyle.Render(fmt.Sprintf("Question %d of %d", s.Index()+1, len(s.Questions))))
	b.WriteString("  ")
	b.WriteString(helperStyle.Render("[" + record.Category + "]"))
	b.WriteString("\n\n")
	b.WriteString(wordwrap.String(record.Question, m.wrapWidth()))
	b.WriteString("\n\n")
	b.WriteString(sectionHeaderStyle.Render("Answer"))
	b.WriteString("\n")
	if strings.TrimSpace(record.Answer) == "" {
		b.WriteString(helperStyle.Render("(not answered yet — press e)"))
	} else {
		b.WriteString(wordwrap.String(record.Answer, m.wrapWidth()))
	}
	b.WriteString("\n\n")
	b.WriteString(helperStyle.Render("Capture target: " + session.CaptureDestinations[m.captureIdx]))
	return b.String()
}

func (m *model) projectContent() string {
	brief := m.config.Session.ProjectBrief
	var b strings.Builder
	m.writeField(&b, "Project", brief.ProjectName)
	m.writeField(&b, "Working title", brief.WorkingTitle)
	m.writeField(&b, "Logline", brief.Logline)
	m.writeField(&b, "Purpose", brief.Purpose)
	m.writeField(&b, "Audience", brief.Audience)
	m.writeField(&b, "Format", brief.Format)
	if brief.EstimatedRuntimeMinutes > 0 {
		m.writeField(&b, "Runtime", fmt.Sprintf("%d min", brief.EstimatedRuntimeMinutes))
	}
	m.writeList(&b, "Story goals", brief.StoryGoals)
	m.writeList(&b, "Core themes", brief.CoreThemes)
	m.writeList(&b, "In scope", brief.ScopeBoundaries.InScope)
	m.writeList(&b, "Out of scope", brief.ScopeBoundaries.OutOfScope)
	m.writeField(&b, "Tone", brief.ToneAndStyle.Tone)
	m.writeField(&b, "Visual style", brief.ToneAndStyle.VisualStyle)
	m.writeList(&b, "Reference titles", brief.ToneAndStyle.ReferenceTitles)
	m.writeList(&b, "Sensitive topics", brief.EthicsAndSafety.SensitiveTopics)
	m.writeList(&b, "Consent requirements", brief.EthicsAndSafety.ConsentRequirements)
	m.writeList(&b, "Risk mitigation", brief.EthicsAndSafety.RiskMitigation)
	m.writeField(&b, "Budget", brief.ProductionConstraints.BudgetRange)
	m.writeField(&b, "Schedule", brief.ProductionConstraints.Schedule)
	m.writeList(&b, "Locations", brief.ProductionConstraints.Locations)
	m.writeList(&b, "Deliverables", brief.Deliverables)
	m.writeList(&b, "Open questions", brief.OpenQuestions)
	return b.String()
}

func (m *model) subjectContent() string {
	profile := m.config.Session.SubjectProfile
	var b strings.Builder
	m.writeField(&b, "Subject", profile.SubjectName)
	m.writeField(&b, "Preferred name", profile.PreferredName)
	m.writeField(&b, "Email", profile.Contact.Email)
	m.writeField(&b, "Phone", profile.Contact.Phone)
	m.writeField(&b, "Agent/Rep", profile.Contact.AgentOrRep)
	m.writeField(&b, "Background", profile.BackgroundSummary)
	m.writeList(&b, "Key life events", profile.KeyLifeEvents)
	m.writeList(&b, "Values and beliefs", profile.ValuesAndBeliefs)
	m.writeList(&b, "Current challenges", profile.CurrentChallenges)
	m.writeList(&b, "Strengths and skills", profile.StrengthsAndSkills)
	m.writeList(&b, "Topics to avoid", profile.SensitiveAreas.TopicsToAvoid)
	m.writeList(&b, "Phrasing to avoid", profile.SensitiveAreas.PhrasingToAvoid)
	m.writeField(&b, "Best times", profile.AccessAndAvailability.BestTimes)
	m.writeField(&b, "Preferred location", profile.AccessAndAvailability.PreferredLocation)
	if profile.Consent.ReleaseSigned {
		m.writeField(&b, "Release", "signed")
	} else {
		m.writeField(&b, "Release", "not signed")
	}
	m.writeField(&b, "Usage limits", profile.Consent.UsageLimits)
	m.writeList(&b, "Pre-interview notes", profile.PreInterviewNotes)
	m.writeField(&b, "AI intake summary", profile.AIIntakeSummary)
	return b.String()
}

func (m *model) guideContent() string {
	s := m.config.Session
	guide := s.InterviewGuide
	var b strings.Builder
	m.writeField(&b, "Project", guide.ProjectName)
	m.writeField(&b, "Date", guide.InterviewDate)
	m.writeField(&b, "Location", guide.Location)
	m.writeField(&b, "Interviewer", guide.Interviewer)
	m.writeField(&b, "Director notes", guide.DirectorNotes)
	if len(guide.Sections) == 0 {
		b.WriteString("\n")
		b.WriteString(helperStyle.Render("No sections yet. Press a to add one, or g to build a guide with AI."))
		return b.String()
	}
	selected, hasSelection := s.SelectedSection()
	for i, section := range guide.Sections {
		marker := "  "
		title := section.SectionTitle
		if title == "" {
			title = "(untitled)"
		}
		header := fmt.Sprintf("%d. %s", i+1, title)
		if hasSelection && i == selected {
			marker = "▸ "
			header = subtitleStyle.Render(header)
		}
		b.WriteString("\n")
		b.WriteString(marker + header)
		b.WriteString("\n")
		if section.Intent != "" {
			b.WriteString(helperStyle.Render("   " + section.Intent))
			b.WriteString("\n")
		}
		for _, q := range section.PrimaryQuestions {
			b.WriteString(wordwrap.String("   • "+q, m.wrapWidth()))
			b.WriteString("\n")
		}
		for _, q := range section.FollowUps {
			b.WriteString(helperStyle.Render(wordwrap.String("   ↳ "+q, m.wrapWidth())))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m *model) directorContent() string {
	notes := m.config.Session.DirectorProducer
	var b strings.Builder
	m.writeField(&b, "Story arc", notes.StoryArc)
	m.writeList(&b, "Scene beats", notes.SceneBeats)
	m.writeList(&b, "Visual motifs", notes.VisualMotifs)
	m.writeList(&b, "Risks and ethics", notes.RisksAndEthics)
	m.writeField(&b, "Consent notes", notes.ConsentNotes)
	m.writeField(&b, "Production notes", notes.ProductionNotes)
	m.writeList(&b, "Open questions", notes.OpenQuestions)
	return b.String()
}

func (m *model) writeField(b *strings.Builder, label, value string) {
	b.WriteString(subtitleStyle.Render(label + ":"))
	b.WriteString(" ")
	if strings.TrimSpace(value) == "" {
		b.WriteString(helperStyle.Render("—"))
	} else {
		b.WriteString(wordwrap.String(value, m.wrapWidth()))
	}
	b.WriteString("\n")
}

func (m *model) writeList(b *strings.Builder, label string, items []string) {
	b.WriteString(subtitleStyle.Render(label + ":"))
	if len(items) == 0 {
		b.WriteString(" ")
		b.WriteString(helperStyle.Render("—"))
		b.WriteString("\n")
		return
	}
	b.WriteString("\n")
	for _, item := range items {
		b.WriteString(wordwrap.String("  • "+item, m.wrapWidth()))
		b.WriteString("\n")
	}
}

func questionPosition(s *session.Session) int {
	if len(s.Questions) == 0 {
		return 0
	}
	return s.Index() + 1
}

func countAnswered(s *session.Session) int {
	answered := 0
	for _, record := range s.Questions {
		if strings.TrimSpace(record.Answer) != "" {
			answered++
		}
	}
	return answered
}

func captureShortLabel(idx int) string {
	return session.CaptureDestinations[idx]
}
