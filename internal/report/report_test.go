package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/Harshitk-cp/evidence/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleResult() *domain.FusionResult {
	return &domain.FusionResult{
		ID:       uuid.MustParse("7f1c1c2e-8b44-4b5e-9d0c-6c1e7a0d9a11"),
		Rule:     "pcr5",
		Sources:  []string{"s1", "s2", "s3"},
		Combined: domain.FromLabels(map[string]float64{"A": 0.25, "B": 0.7, "A,B": 0.05}),
		Conflict: 0,
		Steps: []domain.FusionStep{
			{Step: 1, Source: "s2", Conflict: 0.4},
			{Step: 2, Source: "s3", Conflict: 0.1},
		},
	}
}

func TestWriter_Text(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, FormatText, 3)
	require.NoError(t, err)

	require.NoError(t, w.Result(sampleResult()))

	want := "\nPCR5 (DSmT):\n" +
		"  {B} -> 0.700\n" +
		"  {A} -> 0.250\n" +
		"  {A,B} -> 0.050\n" +
		"  conflict: 0.000\n" +
		"  step 1 (+s2) conflict: 0.400\n" +
		"  step 2 (+s3) conflict: 0.100\n"
	assert.Equal(t, want, buf.String())
}

func TestWriter_Sources(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, FormatText, 0)
	require.NoError(t, err)

	require.NoError(t, w.Sources([]domain.Source{
		{Name: "e1", Belief: domain.FromLabels(map[string]float64{"A": 1})},
	}))
	assert.Equal(t, "Sources:\n  1: e1 BeliefMass{{A}: 1}\n", buf.String())

	buf.Reset()
	jw, err := NewWriter(&buf, FormatJSON, 0)
	require.NoError(t, err)
	require.NoError(t, jw.Sources(nil))
	assert.Empty(t, buf.String())
}

func TestWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, FormatJSON, 4)
	require.NoError(t, err)

	require.NoError(t, w.Result(sampleResult()))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "pcr5", got["rule"])
	combined, ok := got["combined"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 0.7, combined["B"])
	assert.Equal(t, 0.05, combined["A,B"])
}

func TestWriter_YAML(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, FormatYAML, 4)
	require.NoError(t, err)

	require.NoError(t, w.Result(sampleResult()))

	var got struct {
		ID       string             `yaml:"id"`
		Rule     string             `yaml:"rule"`
		Combined map[string]float64 `yaml:"combined"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "7f1c1c2e-8b44-4b5e-9d0c-6c1e7a0d9a11", got.ID)
	assert.Equal(t, 0.25, got.Combined["A"])
}

func TestWriter_Failure(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, FormatText, 4)
	require.NoError(t, err)

	require.NoError(t, w.Failure("dempster", errors.New("total conflict")))
	assert.Equal(t, "\nDempster (DST): error: total conflict\n", buf.String())
}

func TestNewWriter_UnknownFormat(t *testing.T) {
	_, err := NewWriter(&bytes.Buffer{}, "xml", 4)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestByMass(t *testing.T) {
	items := ByMass(domain.FromLabels(map[string]float64{"C": 0.2, "A": 0.2, "B": 0.6}))

	require.Len(t, items, 3)
	assert.Equal(t, "{B}", items[0].Hypothesis.String())
	assert.Equal(t, "{A}", items[1].Hypothesis.String())
	assert.Equal(t, "{C}", items[2].Hypothesis.String())
}

func TestWriter_YAMLStream(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, FormatYAML, 4)
	require.NoError(t, err)

	require.NoError(t, w.Result(sampleResult()))
	require.NoError(t, w.Failure("dempster", errors.New("total conflict")))
	require.NoError(t, w.Close())
	assert.Contains(t, buf.String(), "\n---\n")

	dec := yaml.NewDecoder(&buf)
	var rules []string
	for {
		var doc struct {
			Rule  string `yaml:"rule"`
			Error string `yaml:"error"`
		}
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		rules = append(rules, doc.Rule)
	}
	assert.Equal(t, []string{"pcr5", "dempster"}, rules)
}

func TestWriter_CloseWithoutOutput(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, FormatText, 4)
	require.NoError(t, err)

	assert.NoError(t, w.Close())
	assert.Empty(t, buf.String())
}
