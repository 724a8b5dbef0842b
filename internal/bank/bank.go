// Package bank loads the static question bank and expands it into the flat,
// ordered question list an interview session starts from.
package bank

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// ErrMissingBank reports that the question bank file could not be found. The
// loader still returns a usable (empty) bank so the session can start.
var ErrMissingBank = errors.New("question bank file not found")

// Record is one question in the session's flat list. Answers start empty and
// are only filled by explicit capture or navigation-away events.
type Record struct {
	ID        string    `json:"id"`
	Category  string    `json:"category"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"created_at"`
}

// Sources for question records.
const (
	SourceBank = "bank"
	SourceAI   = "ai"
)

// Reserved category handled as a schema tag, not a question list.
const versionKey = "version"

// Category whose entries are rendered with a literal prefix at load time.
const scopeIdeasCategory = "scope_ideas"

// Category is one named, ordered group of bank questions.
type Category struct {
	Name      string
	Questions []string
}

// Bank is the parsed question bank with categories in file order.
type Bank struct {
	Version    string
	Categories []Category
}

// Load reads and parses the bank at path. A missing file returns a minimal
// empty bank together with ErrMissingBank so callers can warn and carry on.
func Load(path string) (Bank, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Bank{Version: "1.0"}, ErrMissingBank
	}
	if err != nil {
		return Bank{}, err
	}
	return Parse(data)
}

// Parse decodes a bank document. The top level must be a JSON object whose
// "version" key is a schema tag; every other key maps to an ordered list of
// questions. Non-list values are skipped. Category order follows the file.
func Parse(data []byte) (Bank, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return Bank{}, fmt.Errorf("invalid question bank: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return Bank{}, fmt.Errorf("invalid question bank: expected an object, got %v", tok)
	}

	var b Bank
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return Bank{}, fmt.Errorf("invalid question bank: %w", err)
		}
		key := keyTok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return Bank{}, fmt.Errorf("invalid question bank entry %q: %w", key, err)
		}
		if key == versionKey {
			_ = json.Unmarshal(raw, &b.Version)
			continue
		}
		var items []any
		if err := json.Unmarshal(raw, &items); err != nil {
			continue
		}
		questions := make([]string, 0, len(items))
		for _, item := range items {
			questions = append(questions, stringify(item))
		}
		b.Categories = append(b.Categories, Category{Name: key, Questions: questions})
	}
	return b, nil
}

// Expand flattens the bank into question records, 1-indexed per category.
// Entries under the scope_ideas category get the "Scope idea: " prefix once,
// here at load time.
func Expand(b Bank) []Record {
	now := time.Now().UTC()
	var records []Record
	for _, category := range b.Categories {
		for i, question := range category.Questions {
			text := question
			if category.Name == scopeIdeasCategory {
				text = "Scope idea: " + question
			}
			records = append(records, Record{
				ID:        fmt.Sprintf("%s-%d", category.Name, i+1),
				Category:  category.Name,
				Question:  text,
				Answer:    "",
				Source:    SourceBank,
				CreatedAt: now,
			})
		}
	}
	return records
}

func stringify(item any) string {
	switch v := item.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return ""
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(data)
	}
}
