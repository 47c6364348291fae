package quiz

import (
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

//go:embed data/levels.yaml data/quiz.schema.json
var dataFS embed.FS

// Question is a single multiple-choice question.
type Question struct {
	ID          string   `yaml:"id" json:"id"`
	Question    string   `yaml:"question" json:"question"`
	Options     []string `yaml:"options" json:"options"`
	Correct     int      `yaml:"correct" json:"-"`
	Explanation string   `yaml:"explanation" json:"-"`
}

// Level is one quiz level with its questions and pass threshold.
type Level struct {
	Level       int        `yaml:"level" json:"level"`
	Title       string     `yaml:"title" json:"title"`
	Description string     `yaml:"description" json:"description"`
	PassScore   int        `yaml:"pass_score" json:"passScore"`
	Questions   []Question `yaml:"questions" json:"-"`
}

// Bank is the immutable question bank loaded from the embedded data file.
type Bank struct {
	levels []Level
	byID   map[string]*Question
}

// LoadBank parses and validates the embedded question bank.
func LoadBank() (*Bank, error) {
	data, err := dataFS.ReadFile("data/levels.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading question bank: %w", err)
	}
	if err := validateBankSchema(data); err != nil {
		return nil, fmt.Errorf("validating question bank: %w", err)
	}

	var doc struct {
		Levels []Level `yaml:"levels"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing question bank: %w", err)
	}

	b := &Bank{levels: doc.Levels, byID: make(map[string]*Question)}
	if err := b.check(); err != nil {
		return nil, err
	}

	slog.Info("question bank loaded", "levels", len(b.levels), "questions", b.TotalQuestions())
	return b, nil
}

func validateBankSchema(yamlData []byte) error {
	schemaData, err := dataFS.ReadFile("data/quiz.schema.json")
	if err != nil {
		return fmt.Errorf("reading schema: %w", err)
	}

	var doc any
	if err := yaml.Unmarshal(yamlData, &doc); err != nil {
		return fmt.Errorf("parsing document: %w", err)
	}
	jsonDoc, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("converting document: %w", err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaData),
		gojsonschema.NewBytesLoader(jsonDoc),
	)
	if err != nil {
		return fmt.Errorf("running schema validation: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return fmt.Errorf("schema violations: %s", strings.Join(msgs, "; "))
	}
	return nil
}

func (b *Bank) check() error {
	for i := range b.levels {
		lvl := &b.levels[i]
		// Levels are addressed by ordinal, so the numbering must be dense.
		if lvl.Level != i+1 {
			return fmt.Errorf("level %d at position %d, want %d", lvl.Level, i, i+1)
		}
		if lvl.PassScore < 1 || lvl.PassScore > len(lvl.Questions) {
			return fmt.Errorf("level %d: pass score %d out of range for %d questions", lvl.Level, lvl.PassScore, len(lvl.Questions))
		}
		for j := range lvl.Questions {
			q := &lvl.Questions[j]
			if q.Correct < 0 || q.Correct >= len(q.Options) {
				return fmt.Errorf("question %s: correct option %d out of range", q.ID, q.Correct)
			}
			if _, dup := b.byID[q.ID]; dup {
				return fmt.Errorf("duplicate question id %s", q.ID)
			}
			b.byID[q.ID] = q
		}
	}
	return nil
}

// Levels returns all levels in ascending order.
func (b *Bank) Levels() []Level {
	return b.levels
}

// Level returns one level by its number.
func (b *Bank) Level(n int) (Level, bool) {
	if n < 1 || n > len(b.levels) {
		return Level{}, false
	}
	return b.levels[n-1], true
}

// MaxLevel returns the highest level number.
func (b *Bank) MaxLevel() int {
	return len(b.levels)
}

// TotalQuestions counts the questions across all levels.
func (b *Bank) TotalQuestions() int {
	total := 0
	for _, lvl := range b.levels {
		total += len(lvl.Questions)
	}
	return total
}

// QuestionByID looks up a question anywhere in the bank.
func (b *Bank) QuestionByID(id string) (Question, bool) {
	q, ok := b.byID[id]
	if !ok {
		return Question{}, false
	}
	return *q, true
}
