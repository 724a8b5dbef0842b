package llm

import (
	"context"
	"errors"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	defaultOllamaModel = "llama3.1:8b"
	// Interview answers are short, but the optional background research text
	// can be a whole PDF. Clip prompt inputs well under typical local-model
	// context windows (roughly 4 chars/token).
	maxNotesChars      = 60_000
	maxBackgroundChars = 40_000
	maxAnswerChars     = 20_000
	maxDocumentChars   = 30_000
)

const defaultLLMHTTPTimeout = 3 * time.Minute

// ErrUnexpectedShape reports a response that parsed as JSON but did not have
// the structure the operation asked for. Nothing is merged in that case.
var ErrUnexpectedShape = errors.New("model response was not a section list")

// Config describes how to build an LLM client.
type Config struct {
	Model      string
	Endpoint   string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client exposes the three enrichment round-trips the session runs against
// the local model service.
type Client interface {
	FollowUps(ctx context.Context, answer string, count int) ([]string, error)
	SubjectSummary(ctx context.Context, notes, background string) (SubjectSummary, error)
	GuideSections(ctx context.Context, briefJSON, profileJSON string) ([]GuideSection, error)
	Name() string
}

// SubjectSummary is the structured response of the subject summarization
// prompt. Keys the model omits stay at their zero values; the merge into the
// profile overwrites every field, so omitted keys reset the profile to empty.
type SubjectSummary struct {
	BackgroundSummary  string   `json:"background_summary"`
	KeyLifeEvents      []string `json:"key_life_events"`
	ValuesAndBeliefs   []string `json:"values_and_beliefs"`
	CurrentChallenges  []string `json:"current_challenges"`
	StrengthsAndSkills []string `json:"strengths_and_skills"`
}

// GuideSection is one proposed interview guide section.
type GuideSection struct {
	SectionTitle     string   `json:"section_title"`
	Intent           string   `json:"intent"`
	PrimaryQuestions []string `json:"primary_questions"`
	FollowUps        []string `json:"follow_ups"`
}

// ResolveModel applies the OLLAMA_MODEL fallback chain to an explicit model
// choice. Exposed so callers can record the effective model in session
// metadata without re-deriving the chain.
func ResolveModel(model string) string {
	if model != "" {
		return model
	}
	if env := os.Getenv("OLLAMA_MODEL"); env != "" {
		return env
	}
	return defaultOllamaModel
}

// NewFromEnv inspects CLI arguments & environment variables to build a client.
func NewFromEnv(cfg Config) (Client, error) {
	host := cfg.Endpoint
	if host == "" {
		if env := os.Getenv("OLLAMA_HOST"); env != "" {
			host = strings.TrimRight(env, "/")
		} else {
			host = "http://localhost:11434"
		}
	}
	model := ResolveModel(cfg.Model)
	return &ollamaClient{
		host:   host,
		model:  model,
		client: pickHTTPClient(cfg.HTTPClient, cfg.Timeout),
	}, nil
}

func pickHTTPClient(custom *http.Client, timeout time.Duration) *http.Client {
	if custom != nil {
		return custom
	}
	if timeout <= 0 {
		timeout = defaultLLMHTTPTimeout
	}
	// Allow longer-running generations (Ollama often needs >60s) and rely on the caller's context for cancellation.
	return &http.Client{Timeout: timeout}
}
