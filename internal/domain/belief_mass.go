package domain

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// NoiseThreshold is the smallest mass kept by a BeliefMass. Anything at or
// below it is floating-point residue from combination and is dropped.
const NoiseThreshold = 1e-10

// Focal is one (hypothesis, mass) entry of a BeliefMass.
type Focal struct {
	Hypothesis Hypothesis `json:"hypothesis" yaml:"hypothesis"`
	Mass       float64    `json:"mass" yaml:"mass"`
}

// BeliefMass is a basic belief assignment: a mapping from hypotheses to
// masses in (NoiseThreshold, 1]. Masses need not sum to one.
//
// A BeliefMass is never modified after construction. Normalize and the
// fusion rules return new values, so instances can be shared freely.
type BeliefMass struct {
	masses map[Hypothesis]float64
}

// NewBeliefMass copies masses, dropping noise and empty hypotheses.
func NewBeliefMass(masses map[Hypothesis]float64) BeliefMass {
	clean := make(map[Hypothesis]float64, len(masses))
	for h, m := range masses {
		if h.IsEmpty() || !(m > NoiseThreshold) {
			continue
		}
		clean[h] = m
	}
	return BeliefMass{masses: clean}
}

// FromLabels builds a BeliefMass from textual hypotheses such as "A" or
// "A,B". Keys that canonicalize to the same set are summed.
func FromLabels(masses map[string]float64) BeliefMass {
	raw := make(map[Hypothesis]float64, len(masses))
	for s, m := range masses {
		raw[ParseHypothesis(s)] += m
	}
	return NewBeliefMass(raw)
}

// Normalize returns a copy whose masses sum to one. A zero total yields an
// empty BeliefMass.
func (b BeliefMass) Normalize() BeliefMass {
	total := b.Total()
	if total == 0 {
		return BeliefMass{}
	}
	scaled := make(map[Hypothesis]float64, len(b.masses))
	for h, m := range b.masses {
		scaled[h] = m / total
	}
	return NewBeliefMass(scaled)
}

// Mass returns the mass assigned to hypothesis, or 0 when it is absent.
// The hypothesis may be given as a single label string, a []string or a
// []any of strings, a map[string]struct{} or map[string]bool set, or a
// Hypothesis (or *Hypothesis); all equivalent forms return the same value.
// Any other type, including arrays and named slice or map types, returns 0.
func (b BeliefMass) Mass(hypothesis any) float64 {
	h, ok := canonicalHypothesis(hypothesis)
	if !ok {
		return 0
	}
	return b.masses[h]
}

// Items returns every focal element ordered by hypothesis.
func (b BeliefMass) Items() []Focal {
	out := make([]Focal, 0, len(b.masses))
	for h, m := range b.masses {
		out = append(out, Focal{Hypothesis: h, Mass: m})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Hypothesis.key < out[j].Hypothesis.key
	})
	return out
}

// Total is the sum of all masses.
func (b BeliefMass) Total() float64 {
	var total float64
	for _, m := range b.masses {
		total += m
	}
	return total
}

// Len is the number of focal elements.
func (b BeliefMass) Len() int {
	return len(b.masses)
}

func (b BeliefMass) IsEmpty() bool {
	return len(b.masses) == 0
}

// Map returns a copy of the underlying mapping.
func (b BeliefMass) Map() map[Hypothesis]float64 {
	out := make(map[Hypothesis]float64, len(b.masses))
	for h, m := range b.masses {
		out[h] = m
	}
	return out
}

func (b BeliefMass) String() string {
	parts := make([]string, 0, len(b.masses))
	for _, f := range b.Items() {
		parts = append(parts, fmt.Sprintf("%s: %g", f.Hypothesis, f.Mass))
	}
	return "BeliefMass{" + strings.Join(parts, ", ") + "}"
}

func (b BeliefMass) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.Map())
}

func (b *BeliefMass) UnmarshalJSON(data []byte) error {
	var raw map[Hypothesis]float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*b = NewBeliefMass(raw)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (b BeliefMass) MarshalYAML() (any, error) {
	out := make(map[string]float64, len(b.masses))
	for h, m := range b.masses {
		out[h.key] = m
	}
	return out, nil
}
