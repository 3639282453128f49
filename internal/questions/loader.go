// Package questions loads and validates the board's question set from JSON.
package questions

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/SAMIC97/Christmas-Jeopardy/engine"
)

// File is the on-disk shape of a question set.
type File struct {
	Categories []CategoryEntry `json:"categories"`
}

// CategoryEntry is one named column of the board.
type CategoryEntry struct {
	Name      string          `json:"name"`
	Questions []QuestionEntry `json:"questions"`
}

// QuestionEntry is a single multiple-choice question.
type QuestionEntry struct {
	Text          string   `json:"text"`
	Choices       []string `json:"choices"`
	CorrectAnswer string   `json:"correctAnswer"`
	Points        int      `json:"points"`
}

// LoadFile reads and validates a question set from path.
func LoadFile(path string) ([]engine.Category, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question set: %w", err)
	}
	return Parse(raw)
}

// Parse decodes raw JSON into a validated category list ready for a game.
func Parse(raw []byte) ([]engine.Category, error) {
	var f File
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("decode question set: %w", err)
	}
	if err := f.validate(); err != nil {
		return nil, err
	}

	cats := make([]engine.Category, 0, len(f.Categories))
	for _, c := range f.Categories {
		cat := engine.Category{Name: c.Name}
		for _, q := range c.Questions {
			cat.Questions = append(cat.Questions, engine.Question{
				Text:    q.Text,
				Choices: append([]string(nil), q.Choices...),
				Answer:  q.CorrectAnswer,
				Points:  q.Points,
			})
		}
		cats = append(cats, cat)
	}
	return cats, nil
}

func (f *File) validate() error {
	if len(f.Categories) == 0 {
		return fmt.Errorf("question set has no categories")
	}
	seen := map[string]bool{}
	for ci, c := range f.Categories {
		if strings.TrimSpace(c.Name) == "" {
			return fmt.Errorf("category %d has no name", ci)
		}
		key := strings.ToLower(c.Name)
		if seen[key] {
			return fmt.Errorf("duplicate category %q", c.Name)
		}
		seen[key] = true
		if len(c.Questions) == 0 {
			return fmt.Errorf("category %q has no questions", c.Name)
		}
		for qi, q := range c.Questions {
			if err := q.validate(); err != nil {
				return fmt.Errorf("category %q question %d: %w", c.Name, qi, err)
			}
		}
	}
	return nil
}

func (q *QuestionEntry) validate() error {
	if strings.TrimSpace(q.Text) == "" {
		return fmt.Errorf("empty question text")
	}
	if len(q.Choices) < 2 {
		return fmt.Errorf("needs at least 2 choices, has %d", len(q.Choices))
	}
	if !validPoints(q.Points) {
		return fmt.Errorf("invalid point value %d", q.Points)
	}

	// Choices must be distinct and must include the correct answer, both
	// compared the way answers are judged in play: case-insensitively.
	choiceSet := map[string]bool{}
	answerFound := false
	for _, choice := range q.Choices {
		if strings.TrimSpace(choice) == "" {
			return fmt.Errorf("empty choice")
		}
		key := strings.ToLower(choice)
		if choiceSet[key] {
			return fmt.Errorf("duplicate choice %q", choice)
		}
		choiceSet[key] = true
		if strings.EqualFold(choice, q.CorrectAnswer) {
			answerFound = true
		}
	}
	if !answerFound {
		return fmt.Errorf("correct answer %q is not among the choices", q.CorrectAnswer)
	}
	return nil
}

func validPoints(points int) bool {
	for _, v := range engine.PointValues {
		if points == v {
			return true
		}
	}
	return false
}
