// Package scenario loads fusion runs described in YAML (or JSON) files.
package scenario

import (
	"errors"
	"fmt"
	"os"

	"github.com/Harshitk-cp/evidence/internal/domain"
	"github.com/Harshitk-cp/evidence/internal/fusion"
	"gopkg.in/yaml.v3"
)

var (
	ErrNoSources       = errors.New("scenario has no sources")
	ErrDuplicateSource = errors.New("duplicate source name")
	ErrInvalidMass     = errors.New("mass must be within [0, 1]")
	ErrEmptyHypothesis = errors.New("hypothesis has no labels")
)

// Scenario is a named set of sources plus an optional rule.
type Scenario struct {
	Name    string         `yaml:"name"`
	Rule    string         `yaml:"rule,omitempty"`
	Sources []SourceConfig `yaml:"sources"`
}

// SourceConfig is one source as written in the file. Hypotheses are keys
// such as "A" or "A,B".
type SourceConfig struct {
	Name   string             `yaml:"name"`
	Masses map[string]float64 `yaml:"masses"`
}

// Load reads and validates the scenario at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading scenario file: %w", err)
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// Parse decodes and validates a scenario document.
func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("error parsing scenario: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Validate checks the scenario without fusing it. Unnamed sources are
// named source-1, source-2, ... in place.
func (sc *Scenario) Validate() error {
	if len(sc.Sources) == 0 {
		return ErrNoSources
	}
	if sc.Rule != "" {
		if _, err := fusion.ParseRule(sc.Rule); err != nil {
			return err
		}
	}

	seen := make(map[string]bool, len(sc.Sources))
	for i := range sc.Sources {
		src := &sc.Sources[i]
		if src.Name == "" {
			src.Name = fmt.Sprintf("source-%d", i+1)
		}
		if seen[src.Name] {
			return fmt.Errorf("%w: %q", ErrDuplicateSource, src.Name)
		}
		seen[src.Name] = true

		for h, m := range src.Masses {
			if domain.ParseHypothesis(h).IsEmpty() {
				return fmt.Errorf("source %q: %w: %q", src.Name, ErrEmptyHypothesis, h)
			}
			if m < 0 || m > 1 {
				return fmt.Errorf("source %q, hypothesis %q: %w (got %g)", src.Name, h, ErrInvalidMass, m)
			}
		}
	}
	return nil
}

// RuleOr returns the scenario's rule, or fallback when none is set.
func (sc *Scenario) RuleOr(fallback fusion.Rule) (fusion.Rule, error) {
	if sc.Rule == "" {
		return fallback, nil
	}
	return fusion.ParseRule(sc.Rule)
}

// DomainSources converts the file representation into fusion inputs.
func (sc *Scenario) DomainSources() []domain.Source {
	out := make([]domain.Source, 0, len(sc.Sources))
	for _, src := range sc.Sources {
		out = append(out, domain.Source{
			Name:   src.Name,
			Belief: domain.FromLabels(src.Masses),
		})
	}
	return out
}

// Beliefs returns only the mass assignments, in source order.
func (sc *Scenario) Beliefs() []domain.BeliefMass {
	out := make([]domain.BeliefMass, 0, len(sc.Sources))
	for _, src := range sc.Sources {
		out = append(out, domain.FromLabels(src.Masses))
	}
	return out
}
