package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mansoorceksport/p90xcheck/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const singleTemplateYAML = `
name: Ab Ripper X
category: 5
difficulty: 2
duration_minutes: 16
equipment: Mat
is_p90x: true
sections:
  - name: Ab Sequence
    type: 3
    order: 1
    exercises:
      - exercise_id: ex-in-and-outs
        order: 1
        sets: 1
        reps_min: 25
        reps_max: 25
`

func TestParseTemplates_Single(t *testing.T) {
	templates, err := ParseTemplates([]byte(singleTemplateYAML))
	require.NoError(t, err)
	require.Len(t, templates, 1)

	tmpl := templates[0]
	assert.Equal(t, "Ab Ripper X", tmpl.Name)
	assert.Equal(t, domain.TemplateCategoryCore, tmpl.Category)
	assert.True(t, tmpl.IsP90X)
	require.Len(t, tmpl.Sections, 1)
	assert.Equal(t, domain.SectionTypeCircuit, tmpl.Sections[0].Type)
	require.Len(t, tmpl.Sections[0].Exercises, 1)
	ex := tmpl.Sections[0].Exercises[0]
	assert.Equal(t, "ex-in-and-outs", ex.ExerciseID)
	require.NotNil(t, ex.RepsMax)
	assert.Equal(t, 25, *ex.RepsMax)
	assert.Nil(t, ex.Weight)
}

func TestParseTemplates_List(t *testing.T) {
	data := []byte(`
templates:
  - name: Yoga X
    duration_minutes: 90
  - name: X Stretch
    duration_minutes: 55
`)
	templates, err := ParseTemplates(data)
	require.NoError(t, err)
	require.Len(t, templates, 2)
	assert.Equal(t, "Yoga X", templates[0].Name)
	assert.Equal(t, 55, templates[1].DurationMinutes)
}

func TestParseTemplates_JSON(t *testing.T) {
	templates, err := ParseTemplates([]byte(`{"name": "Kenpo X", "duration_minutes": 55, "sections": []}`))
	require.NoError(t, err)
	require.Len(t, templates, 1)
	assert.Equal(t, "Kenpo X", templates[0].Name)
}

func TestParseTemplates_Errors(t *testing.T) {
	_, err := ParseTemplates([]byte("   \n"))
	assert.ErrorContains(t, err, "empty")

	_, err = ParseTemplates([]byte("name: [unterminated"))
	assert.Error(t, err)
}

func TestLoadTemplateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ab.yaml")
	require.NoError(t, os.WriteFile(path, []byte(singleTemplateYAML), 0o600))

	templates, err := LoadTemplateFile(path)
	require.NoError(t, err)
	assert.Len(t, templates, 1)

	_, err = LoadTemplateFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "nope.yaml")
}
