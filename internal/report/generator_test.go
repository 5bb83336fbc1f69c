package report

import (
	"encoding/json"
	"testing"
	"time"

	"fjacquet/event-budget/internal/logging"
	"fjacquet/event-budget/internal/models"
	"fjacquet/event-budget/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var generatedAt = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func sampleSession(t *testing.T) *session.Session {
	t.Helper()
	s := session.New(session.WithProject(models.ProjectInfo{Name: "Sommerfest 2024", Location: "Oslo"}))
	_, err := s.ApplySuggestions(session.SampleDrafts(), false)
	require.NoError(t, err)
	return s
}

func TestBuild(t *testing.T) {
	r, err := Build(sampleSession(t), generatedAt)
	require.NoError(t, err)

	assert.Equal(t, "Budsjett - Sommerfest 2024", r.Title)
	assert.Equal(t, "30000", r.Totals.Net.String())
	assert.Equal(t, "surplus", string(r.Totals.Outcome))
	require.Len(t, r.Sections, 4)
	assert.Equal(t, "Faste inntekter", r.Sections[0].Title)
	assert.True(t, r.Sensitivity.Available)
	assert.Equal(t, "Deltakeravgift", r.Sensitivity.DriverName)
	assert.Equal(t, []string{"Mat og drikke"}, r.Sensitivity.LinkedExpenses)
	require.Len(t, r.Sensitivity.Matrix, 5)
	assert.Equal(t, "30000", r.Sensitivity.Matrix[2][2].Result.String())
}

func TestBuild_NoDriver(t *testing.T) {
	s := session.New()
	s.AddItem(models.CategoryExpense, models.CostTypeFixed)

	r, err := Build(s, generatedAt)
	require.NoError(t, err)
	assert.False(t, r.Sensitivity.Available)
	assert.Equal(t, InsufficientData, r.Sensitivity.Message)
	assert.Nil(t, r.Sensitivity.Matrix)
}

func TestReportGenerator_GenerateReport_JSON(t *testing.T) {
	generator := NewReportGenerator(logging.NewMockLogger())
	r, err := Build(sampleSession(t), generatedAt)
	require.NoError(t, err)

	out, err := generator.GenerateReport(r, "json")
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, "Budsjett - Sommerfest 2024", decoded["title"])
	totals := decoded["totals"].(map[string]interface{})
	assert.Equal(t, "30000", totals["net"])
}

func TestReportGenerator_GenerateReport_YAML(t *testing.T) {
	generator := NewReportGenerator(nil)
	r, err := Build(sampleSession(t), generatedAt)
	require.NoError(t, err)

	out, err := generator.GenerateReport(r, "yaml")
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	assert.Equal(t, "Budsjett - Sommerfest 2024", decoded["title"])
	assert.Contains(t, string(out), "Deltakeravgift")
}

func TestReportGenerator_GenerateReport_Text(t *testing.T) {
	generator := NewReportGenerator(nil)
	r, err := Build(sampleSession(t), generatedAt)
	require.NoError(t, err)

	out, err := generator.GenerateReport(r, "text")
	require.NoError(t, err)

	text := string(out)
	assert.Contains(t, text, "Budsjett - Sommerfest 2024")
	assert.Contains(t, text, "Oslo")
	assert.Contains(t, text, "Budsjettoversikt")
	assert.Contains(t, text, "Sensitivitetsanalyse: Deltakeravgift")
	assert.Contains(t, text, "Generert 2024-06-01 12:00")
}

func TestReportGenerator_GenerateReport_TextWithoutDriver(t *testing.T) {
	r, err := Build(session.New(), generatedAt)
	require.NoError(t, err)

	out, err := NewReportGenerator(nil).GenerateReport(r, "text")
	require.NoError(t, err)
	assert.Contains(t, string(out), "mangler data")
}

func TestReportGenerator_GenerateReport_UnsupportedFormat(t *testing.T) {
	r, err := Build(session.New(), generatedAt)
	require.NoError(t, err)

	_, err = NewReportGenerator(nil).GenerateReport(r, "xml")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported report format: xml")
}
