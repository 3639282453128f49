package questions

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEntry() QuestionEntry {
	return QuestionEntry{
		Text:          "¿De qué color es el traje de Santa?",
		Choices:       []string{"Rojo", "Verde", "Azul"},
		CorrectAnswer: "Rojo",
		Points:        200,
	}
}

func TestLoadFile(t *testing.T) {
	cats, err := LoadFile(filepath.Join("testdata", "questions.json"))
	require.NoError(t, err)
	require.Len(t, cats, 2)

	assert.Equal(t, "Villancicos", cats[0].Name)
	assert.Len(t, cats[0].Questions, 2)
	assert.Equal(t, "Rodolfo el Reno", cats[0].Questions[0].Answer)
	assert.Equal(t, 200, cats[0].Questions[0].Points)

	assert.Equal(t, "Tradiciones", cats[1].Name)
	assert.Equal(t, 600, cats[1].Questions[0].Points)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join("testdata", "nope.json"))
	require.Error(t, err)
}

func TestParseMalformedJSON(t *testing.T) {
	_, err := Parse([]byte(`{"categories": [`))
	require.Error(t, err)
}

func TestParseValidation(t *testing.T) {
	brokenSets := map[string]func(*File){
		"no categories": func(f *File) {
			f.Categories = nil
		},
		"unnamed category": func(f *File) {
			f.Categories[0].Name = "  "
		},
		"duplicate category": func(f *File) {
			f.Categories = append(f.Categories, CategoryEntry{
				Name:      "villancicos",
				Questions: []QuestionEntry{validEntry()},
			})
		},
		"empty category": func(f *File) {
			f.Categories[0].Questions = nil
		},
		"empty question text": func(f *File) {
			f.Categories[0].Questions[0].Text = ""
		},
		"single choice": func(f *File) {
			f.Categories[0].Questions[0].Choices = []string{"Rojo"}
			f.Categories[0].Questions[0].CorrectAnswer = "Rojo"
		},
		"duplicate choice": func(f *File) {
			f.Categories[0].Questions[0].Choices = []string{"Rojo", "rojo", "Azul"}
		},
		"answer not a choice": func(f *File) {
			f.Categories[0].Questions[0].CorrectAnswer = "Dorado"
		},
		"off-grid points": func(f *File) {
			f.Categories[0].Questions[0].Points = 300
		},
	}

	for name, corrupt := range brokenSets {
		t.Run(name, func(t *testing.T) {
			f := File{Categories: []CategoryEntry{{
				Name:      "Villancicos",
				Questions: []QuestionEntry{validEntry()},
			}}}
			corrupt(&f)
			raw, err := json.Marshal(&f)
			require.NoError(t, err)
			_, err = Parse(raw)
			assert.Error(t, err)
		})
	}
}

func TestParseAnswerCaseInsensitive(t *testing.T) {
	entry := validEntry()
	entry.CorrectAnswer = "ROJO"
	f := File{Categories: []CategoryEntry{{
		Name:      "Villancicos",
		Questions: []QuestionEntry{entry},
	}}}
	raw, err := json.Marshal(&f)
	require.NoError(t, err)
	_, err = Parse(raw)
	assert.NoError(t, err)
}
