// Package docs defines the four planning documents that travel with an
// interview session: the project brief, the subject profile, the interview
// guide, and the director/producer notes. Each document carries a versioned
// schema and a documented default; loading always starts from the default so
// fields missing from older files are backfilled rather than dropped.
package docs

// ScopeBoundaries splits the project scope into explicit in/out lists.
type ScopeBoundaries struct {
	InScope    []string `json:"in_scope"`
	OutOfScope []string `json:"out_of_scope"`
}

// ToneAndStyle captures the creative direction for the piece.
type ToneAndStyle struct {
	Tone            string   `json:"tone"`
	VisualStyle     string   `json:"visual_style"`
	ReferenceTitles []string `json:"reference_titles"`
}

// EthicsAndSafety lists the consent and risk framing for the project.
type EthicsAndSafety struct {
	SensitiveTopics     []string `json:"sensitive_topics"`
	ConsentRequirements []string `json:"consent_requirements"`
	RiskMitigation      []string `json:"risk_mitigation"`
}

// ProductionConstraints records budget, schedule, and logistics boundaries.
type ProductionConstraints struct {
	BudgetRange     string   `json:"budget_range"`
	Schedule        string   `json:"schedule"`
	Locations       []string `json:"locations"`
	CrewSize        string   `json:"crew_size"`
	LegalClearances []string `json:"legal_clearances"`
}

// ProjectBrief is the top-level description of the documentary project.
type ProjectBrief struct {
	Version                 string                `json:"version"`
	ProjectName             string                `json:"project_name"`
	WorkingTitle            string                `json:"working_title"`
	Logline                 string                `json:"logline"`
	Purpose                 string                `json:"purpose"`
	Audience                string                `json:"audience"`
	Format                  string                `json:"format"`
	EstimatedRuntimeMinutes int                   `json:"estimated_runtime_minutes"`
	StoryGoals              []string              `json:"story_goals"`
	CoreThemes              []string              `json:"core_themes"`
	ScopeBoundaries         ScopeBoundaries       `json:"scope_boundaries"`
	ToneAndStyle            ToneAndStyle          `json:"tone_and_style"`
	EthicsAndSafety         EthicsAndSafety       `json:"ethics_and_safety"`
	ProductionConstraints   ProductionConstraints `json:"production_constraints"`
	Deliverables            []string              `json:"deliverables"`
	OpenQuestions           []string              `json:"open_questions"`
}

// Contact holds how to reach the subject or their representative.
type Contact struct {
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	AgentOrRep string `json:"agent_or_rep"`
}

// SensitiveAreas lists topics and phrasings to steer around on camera.
type SensitiveAreas struct {
	TopicsToAvoid   []string `json:"topics_to_avoid"`
	PhrasingToAvoid []string `json:"phrasing_to_avoid"`
	TriggerWarnings []string `json:"trigger_warnings"`
}

// AccessAndAvailability records when and where the subject can be filmed.
type AccessAndAvailability struct {
	BestTimes         string `json:"best_times"`
	PreferredLocation string `json:"preferred_location"`
	TravelConstraints string `json:"travel_constraints"`
}

// Consent tracks the release status and any usage limits the subject set.
type Consent struct {
	ReleaseSigned     bool   `json:"release_signed"`
	UsageLimits       string `json:"usage_limits"`
	AnonymityRequests string `json:"anonymity_requests"`
}

// SubjectProfile is everything the production knows about the interviewee.
type SubjectProfile struct {
	Version               string                `json:"version"`
	SubjectName           string                `json:"subject_name"`
	PreferredName         string                `json:"preferred_name"`
	Contact               Contact               `json:"contact"`
	BackgroundSummary     string                `json:"background_summary"`
	KeyLifeEvents         []string              `json:"key_life_events"`
	ValuesAndBeliefs      []string              `json:"values_and_beliefs"`
	CurrentChallenges     []string              `json:"current_challenges"`
	StrengthsAndSkills    []string              `json:"strengths_and_skills"`
	SensitiveAreas        SensitiveAreas        `json:"sensitive_areas"`
	AccessAndAvailability AccessAndAvailability `json:"access_and_availability"`
	Consent               Consent               `json:"consent"`
	PreInterviewNotes     []string              `json:"pre_interview_notes"`
	AIIntakeSummary       string                `json:"ai_intake_summary"`
}

// GuideSection is one ordered block of the interview guide.
type GuideSection struct {
	SectionTitle     string   `json:"section_title"`
	Intent           string   `json:"intent"`
	PrimaryQuestions []string `json:"primary_questions"`
	FollowUps        []string `json:"follow_ups"`
}

// InterviewGuide is the running order handed to the interviewer on the day.
type InterviewGuide struct {
	Version       string         `json:"version"`
	ProjectName   string         `json:"project_name"`
	InterviewDate string         `json:"interview_date"`
	Location      string         `json:"location"`
	Interviewer   string         `json:"interviewer"`
	DirectorNotes string         `json:"director_notes"`
	Sections      []GuideSection `json:"sections"`
}

// DirectorNotes collects the director/producer view of the session.
type DirectorNotes struct {
	Version         string   `json:"version"`
	StoryArc        string   `json:"story_arc"`
	SceneBeats      []string `json:"scene_beats"`
	VisualMotifs    []string `json:"visual_motifs"`
	RisksAndEthics  []string `json:"risks_and_ethics"`
	ConsentNotes    string   `json:"consent_notes"`
	ProductionNotes string   `json:"production_notes"`
	OpenQuestions   []string `json:"open_questions"`
}

const schemaVersion = "1.0"

// DefaultProjectBrief returns a fresh brief with every field present.
func DefaultProjectBrief() *ProjectBrief {
	return &ProjectBrief{
		Version:    schemaVersion,
		Format:     "documentary",
		StoryGoals: []string{},
		CoreThemes: []string{},
		ScopeBoundaries: ScopeBoundaries{
			InScope:    []string{},
			OutOfScope: []string{},
		},
		ToneAndStyle: ToneAndStyle{
			ReferenceTitles: []string{},
		},
		EthicsAndSafety: EthicsAndSafety{
			SensitiveTopics:     []string{},
			ConsentRequirements: []string{},
			RiskMitigation:      []string{},
		},
		ProductionConstraints: ProductionConstraints{
			Locations:       []string{},
			LegalClearances: []string{},
		},
		Deliverables:  []string{},
		OpenQuestions: []string{},
	}
}

// DefaultSubjectProfile returns an empty profile with every field present.
func DefaultSubjectProfile() *SubjectProfile {
	return &SubjectProfile{
		Version:            schemaVersion,
		KeyLifeEvents:      []string{},
		ValuesAndBeliefs:   []string{},
		CurrentChallenges:  []string{},
		StrengthsAndSkills: []string{},
		SensitiveAreas: SensitiveAreas{
			TopicsToAvoid:   []string{},
			PhrasingToAvoid: []string{},
			TriggerWarnings: []string{},
		},
		PreInterviewNotes: []string{},
	}
}

// DefaultInterviewGuide returns a guide with no sections yet.
func DefaultInterviewGuide() *InterviewGuide {
	return &InterviewGuide{
		Version:  schemaVersion,
		Sections: []GuideSection{},
	}
}

// DefaultDirectorNotes returns empty director/producer notes.
func DefaultDirectorNotes() *DirectorNotes {
	return &DirectorNotes{
		Version:        schemaVersion,
		SceneBeats:     []string{},
		VisualMotifs:   []string{},
		RisksAndEthics: []string{},
		OpenQuestions:  []string{},
	}
}

// Normalize replaces nil sequences with empty ones so a loaded brief always
// serializes lists as [] and callers can append without nil checks.
func (b *ProjectBrief) Normalize() {
	fillList(&b.StoryGoals)
	fillList(&b.CoreThemes)
	fillList(&b.ScopeBoundaries.InScope)
	fillList(&b.ScopeBoundaries.OutOfScope)
	fillList(&b.ToneAndStyle.ReferenceTitles)
	fillList(&b.EthicsAndSafety.SensitiveTopics)
	fillList(&b.EthicsAndSafety.ConsentRequirements)
	fillList(&b.EthicsAndSafety.RiskMitigation)
	fillList(&b.ProductionConstraints.Locations)
	fillList(&b.ProductionConstraints.LegalClearances)
	fillList(&b.Deliverables)
	fillList(&b.OpenQuestions)
}

// Normalize replaces nil sequences with empty ones.
func (p *SubjectProfile) Normalize() {
	fillList(&p.KeyLifeEvents)
	fillList(&p.ValuesAndBeliefs)
	fillList(&p.CurrentChallenges)
	fillList(&p.StrengthsAndSkills)
	fillList(&p.SensitiveAreas.TopicsToAvoid)
	fillList(&p.SensitiveAreas.PhrasingToAvoid)
	fillList(&p.SensitiveAreas.TriggerWarnings)
	fillList(&p.PreInterviewNotes)
}

// Normalize replaces nil sequences with empty ones, including inside sections.
func (g *InterviewGuide) Normalize() {
	if g.Sections == nil {
		g.Sections = []GuideSection{}
	}
	for i := range g.Sections {
		fillList(&g.Sections[i].PrimaryQuestions)
		fillList(&g.Sections[i].FollowUps)
	}
}

// Normalize replaces nil sequences with empty ones.
func (n *DirectorNotes) Normalize() {
	fillList(&n.SceneBeats)
	fillList(&n.VisualMotifs)
	fillList(&n.RisksAndEthics)
	fillList(&n.OpenQuestions)
}

func fillList(items *[]string) {
	if *items == nil {
		*items = []string{}
	}
}
