package domain

import (
	"time"

	"github.com/google/uuid"
)

// Source is a named piece of evidence.
type Source struct {
	Name   string     `json:"name" yaml:"name"`
	Belief BeliefMass `json:"masses" yaml:"masses"`
}

// FusionStep records the pairwise conflict at one step of a left fold.
// Step 1 combines sources 0 and 1, step 2 combines that result with
// source 2, and so on.
type FusionStep struct {
	Step     int     `json:"step" yaml:"step"`
	Source   string  `json:"source" yaml:"source"`
	Conflict float64 `json:"conflict" yaml:"conflict"`
}

// FusionResult is the outcome of running one rule over a set of sources.
type FusionResult struct {
	ID       uuid.UUID     `json:"id" yaml:"id"`
	Rule     string        `json:"rule" yaml:"rule"`
	Sources  []string      `json:"sources" yaml:"sources"`
	Combined BeliefMass    `json:"combined" yaml:"combined"`
	Conflict float64       `json:"conflict" yaml:"conflict"`
	Steps    []FusionStep  `json:"steps,omitempty" yaml:"steps,omitempty"`
	Duration time.Duration `json:"duration_ns" yaml:"duration"`
}
