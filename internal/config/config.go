// Package config handles reading and writing interviewer.yaml and knowing
// where the data files live.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the top-level structure for interviewer.yaml.
type Config struct {
	Model          string `yaml:"model"`
	Endpoint       string `yaml:"endpoint"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	DataDir        string `yaml:"data_dir"`
}

// DefaultConfig returns a Config populated with sensible defaults. Model and
// endpoint are left blank so the LLM client can fall back to its own
// environment-variable defaults.
func DefaultConfig() *Config {
	return &Config{
		TimeoutSeconds: 180,
		DataDir:        "interviewer_data",
	}
}

// Load reads the config file at path. A missing file yields the defaults so
// first runs work without any setup.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = DefaultConfig().TimeoutSeconds
	}
	if cfg.DataDir == "" {
		cfg.DataDir = DefaultConfig().DataDir
	}
	return cfg, nil
}

// Write marshals cfg to path, creating parent directories as needed.
func Write(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Paths resolves the data file layout under the configured data directory.
type Paths struct {
	Dir string
}

// DataPaths returns the file layout rooted at the config's data dir.
func (c *Config) DataPaths() Paths {
	return Paths{Dir: c.DataDir}
}

// QuestionBank is the static question bank file.
func (p Paths) QuestionBank() string { return filepath.Join(p.Dir, "question_bank.json") }

// ProjectBrief is the canonical project brief file.
func (p Paths) ProjectBrief() string { return filepath.Join(p.Dir, "project_brief.json") }

// SubjectProfile is the canonical subject profile file.
func (p Paths) SubjectProfile() string { return filepath.Join(p.Dir, "subject_profile.json") }

// InterviewGuide is the canonical interview guide file.
func (p Paths) InterviewGuide() string { return filepath.Join(p.Dir, "interview_guide.json") }

// DirectorNotes is the canonical director/producer notes file.
func (p Paths) DirectorNotes() string { return filepath.Join(p.Dir, "director_producer.json") }

// SessionsDir holds the timestamped session snapshots.
func (p Paths) SessionsDir() string { return filepath.Join(p.Dir, "sessions") }
