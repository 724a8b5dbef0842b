package tui

type tab int

const (
	tabInterview tab = iota
	tabProject
	tabSubject
	tabGuide
	tabDirector
)

var tabTitles = []string{
	"Interview Flow",
	"Project Brief",
	"Subject Profile",
	"Interview Guide",
	"Director/Producer",
}

const heroTagline = "Run documentary interviews with a local model."

const (
	minViewportWidth          = 40
	viewportHorizontalPadding = 4
)

type composerTarget int

const (
	composerIdle composerTarget = iota
	composerAnswer
	composerSubject
	composerModel
	composerSectionTitle
)

const (
	composerAnswerPlaceholder  = "Type the subject's answer, Enter to commit…"
	composerSubjectPlaceholder = "Subject name…"
	composerModelPlaceholder   = "Ollama model (blank keeps the default)…"
	composerSectionPlaceholder = "New section title…"
)
