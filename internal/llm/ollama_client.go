package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

type ollamaClient struct {
	host   string
	model  string
	client *http.Client
}

func (c *ollamaClient) Name() string {
	return fmt.Sprintf("Ollama (%s)", c.model)
}

func (c *ollamaClient) FollowUps(ctx context.Context, answer string, count int) ([]string, error) {
	answer = clipText(answer, maxAnswerChars)
	if answer == "" {
		return nil, fmt.Errorf("answer empty; cannot generate follow-ups")
	}
	prompt := buildFollowUpPrompt(answer, count)
	raw, err := c.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}
	return parseFollowUps(raw), nil
}

func (c *ollamaClient) SubjectSummary(ctx context.Context, notes, background string) (SubjectSummary, error) {
	notes = clipText(notes, maxNotesChars)
	if notes == "" {
		return SubjectSummary{}, fmt.Errorf("no interview notes; cannot summarize subject")
	}
	prompt := buildSubjectSummaryPrompt(notes, clipText(background, maxBackgroundChars))
	raw, err := c.generate(ctx, prompt)
	if err != nil {
		return SubjectSummary{}, err
	}
	return parseSubjectSummary(raw)
}

func (c *ollamaClient) GuideSections(ctx context.Context, briefJSON, profileJSON string) ([]GuideSection, error) {
	prompt := buildGuidePrompt(clipText(briefJSON, maxDocumentChars), clipText(profileJSON, maxDocumentChars))
	raw, err := c.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}
	return parseGuideSections(raw)
}

func (c *ollamaClient) generate(ctx context.Context, prompt string) (string, error) {
	payload := map[string]any{
		"model":  c.model,
		"prompt": prompt,
		"stream": false,
	}
	buf, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.host+"/api/generate", bytes.NewReader(buf))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("ollama API error: %s (%s)", resp.Status, string(body))
	}

	var parsed struct {
		Response string `json:"response"`
		Done     bool   `json:"done"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", err
	}
	if parsed.Response == "" {
		return "", fmt.Errorf("ollama returned an empty response")
	}
	return strings.TrimSpace(parsed.Response), nil
}
