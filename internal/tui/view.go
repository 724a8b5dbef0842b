package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m *model) View() string {
	m.refreshViewportIfDirty()
	parts := []string{m.heroView(), m.tabBarView(), m.viewport.View()}
	if m.errorMessage != "" {
		parts = append(parts, errorStyle.Render(m.errorMessage))
	}
	if m.infoMessage != "" {
		message := m.infoMessage
		if m.pending != "" {
			message = fmt.Sprintf("%s %s", m.spinner.View(), message)
		}
		parts = append(parts, helperStyle.Render(message))
	}
	if panel := m.composerPanel(); panel != "" {
		parts = append(parts, panel)
	}
	parts = append(parts, m.sessionMeterView())
	if m.helpVisible {
		parts = append(parts, m.keyLegendView())
	}
	return joinNonEmpty(parts)
}

func (m *model) heroView() string {
	title := heroTitleStyle.Render("Interviewer")
	meta := []string{helperStyle.Render("Model: " + m.config.LLMName)}
	if subject := strings.TrimSpace(m.config.Session.SubjectName); subject != "" {
		meta = append(meta, subjectStyle.Render("Subject: "+subject))
	} else {
		meta = append(meta, helperStyle.Render("Subject: (press S to set)"))
	}
	box := heroBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, append([]string{title}, meta...)...))
	return lipgloss.JoinVertical(lipgloss.Left, box, taglineStyle.Render(heroTagline))
}

func (m *model) tabBarView() string {
	cells := make([]string, 0, len(tabTitles))
	for i, tabTitle := range tabTitles {
		label := fmt.Sprintf(" %d %s ", i+1, tabTitle)
		if tab(i) == m.tab {
			cells = append(cells, tabActiveStyle.Render(label))
		} else {
			cells = append(cells, tabInactiveStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (m *model) composerPanel() string {
	if m.composerTarget == composerIdle {
		return ""
	}
	var label string
	switch m.composerTarget {
	case composerAnswer:
		label = "Answer"
	case composerSubject:
		label = "Subject name"
	case composerModel:
		label = "Model"
	case composerSectionTitle:
		label = "New guide section"
	}
	return strings.Join([]string{
		sectionHeaderStyle.Render(label),
		m.composer.View(),
		helperStyle.Render("Enter to commit, Esc to cancel."),
	}, "\n")
}

func (m *model) sessionMeterView() string {
	s := m.config.Session
	stats := []string{
		fmt.Sprintf("Question %d/%d", questionPosition(s), len(s.Questions)),
		fmt.Sprintf("Answered %d", countAnswered(s)),
		"Capture → " + captureShortLabel(m.captureIdx),
		fmt.Sprintf("Guide %d", len(s.InterviewGuide.Sections)),
	}
	if m.pending != "" {
		stats = append(stats, "AI working…")
	}
	return statusBarStyle.Render(strings.Join(stats, "  •  "))
}

type keyHint struct {
	Key         string
	Description string
}

func (m *model) keyLegendView() string {
	hints := []keyHint{
		{"e/Enter", "Edit answer"},
		{"n/p", "Next/prev question"},
		{"k", "Skip"},
		{"c", "Capture answer"},
		{"d", "Cycle capture target"},
		{"f/F", "1 or 5 follow-ups"},
		{"u", "Summarize subject"},
		{"g", "Build guide"},
		{"[/]", "Select guide section"},
		{"a/x", "Add/remove section"},
		{"w/W", "Save session / all docs"},
		{"S/M", "Subject / model"},
		{"Tab, 1-5", "Switch tabs"},
		{"?", "Toggle cheatsheet"},
		{"q", "Quit"},
	}
	rows := []string{sectionHeaderStyle.Render("Key Cheatsheet")}
	const columns = 3
	for i := 0; i < len(hints); i += columns {
		end := i + columns
		if end > len(hints) {
			end = len(hints)
		}
		var cells []string
		for _, hint := range hints[i:end] {
			key := keyStyle.Render(hint.Key)
			desc := keyDescStyle.Render(" " + hint.Description)
			cells = append(cells, lipgloss.JoinHorizontal(lipgloss.Top, key, desc))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return legendBoxStyle.Render(strings.Join(rows, "\n"))
}

func joinNonEmpty(parts []string) string {
	filtered := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		filtered = append(filtered, part)
	}
	return strings.Join(filtered, "\n\n")
}

var (
	sectionHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
	subtitleStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("147"))
	subjectStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("110"))
	errorStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helperStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

	heroAccentColor        = lipgloss.Color("#ff8c00")
	heroEmberColor         = lipgloss.Color("#2b1400")
	heroTextColor          = lipgloss.Color("#fff4d0")
	heroSecondaryTextColor = lipgloss.Color("#ffb347")

	heroTitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(heroAccentColor)
	heroBoxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(heroAccentColor).Foreground(heroTextColor).Background(heroEmberColor).Padding(0, 2)
	taglineStyle     = lipgloss.NewStyle().Foreground(heroSecondaryTextColor).Italic(true)
	tabActiveStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#8ecae6"))
	tabInactiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	statusBarStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#8ecae6")).Padding(0, 1)
	keyStyle         = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#ffd166")).Padding(0, 1)
	keyDescStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#e0def4"))
	legendBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#56526e")).Padding(1, 2)
)
