package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/interviewer/internal/bank"
	"github.com/csheth/interviewer/internal/config"
	"github.com/csheth/interviewer/internal/enrich"
	"github.com/csheth/interviewer/internal/llm"
	"github.com/csheth/interviewer/internal/research"
	"github.com/csheth/interviewer/internal/session"
	"github.com/csheth/interviewer/internal/tui"
)

func main() {
	configPath := flag.String("config", "interviewer.yaml", "path to the config file")
	dataDir := flag.String("data-dir", "", "override the data directory from the config")
	llmModel := flag.String("llm-model", "", "override the default Ollama model (llama3.1:8b)")
	llmEndpoint := flag.String("llm-endpoint", "", "custom Ollama host (eg. http://localhost:11434)")
	researchPDF := flag.String("research", "", "optional PDF with background research on the subject")
	noAltScreen := flag.Bool("no-alt-screen", false, "disable the alternate screen buffer")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Println("failed to load config:", err)
		os.Exit(1)
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}
	if *llmModel != "" {
		cfg.Model = *llmModel
	}
	if *llmEndpoint != "" {
		cfg.Endpoint = *llmEndpoint
	}
	paths := cfg.DataPaths()

	questionBank, err := bank.Load(paths.QuestionBank())
	var bankWarning string
	if errors.Is(err, bank.ErrMissingBank) {
		bankWarning = "Question bank not found at " + paths.QuestionBank() + "; starting with an empty list."
	} else if err != nil {
		fmt.Println("failed to load question bank:", err)
		os.Exit(1)
	}

	docPaths := session.DocumentPaths{
		ProjectBrief:   paths.ProjectBrief(),
		SubjectProfile: paths.SubjectProfile(),
		InterviewGuide: paths.InterviewGuide(),
		DirectorNotes:  paths.DirectorNotes(),
	}
	documents, err := session.LoadDocuments(docPaths)
	if err != nil {
		fmt.Println("failed to load documents:", err)
		os.Exit(1)
	}

	model := llm.ResolveModel(cfg.Model)
	s := session.New(bank.Expand(questionBank), documents, model)
	s.SubjectName = documents.SubjectProfile.SubjectName

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	client, err := llm.NewFromEnv(llm.Config{
		Model:    cfg.Model,
		Endpoint: cfg.Endpoint,
		Timeout:  timeout,
	})
	if err != nil {
		fmt.Println("failed to configure LLM client:", err)
		os.Exit(1)
	}

	var background string
	if *researchPDF != "" {
		text, err := research.ExtractText(*researchPDF)
		if err != nil {
			fmt.Println("failed to read research PDF:", err)
			os.Exit(1)
		}
		background = research.Condense(text, 0)
	}

	opts := []tea.ProgramOption{}
	if !*noAltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	program := tea.NewProgram(
		tui.New(tui.Config{
			Session:     s,
			Adapter:     enrich.New(client),
			LLMName:     client.Name(),
			DocPaths:    docPaths,
			SessionsDir: paths.SessionsDir(),
			Background:  background,
			Timeout:     timeout,
			BankWarning: bankWarning,
		}),
		opts...,
	)

	if _, err := program.Run(); err != nil {
		fmt.Println("program error:", err)
		os.Exit(1)
	}
}
