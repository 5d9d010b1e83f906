// Package fusion implements combination rules for belief mass assignments:
// Dempster's rule from Dempster-Shafer theory and the PCR5 proportional
// conflict redistribution rule from Dezert-Smarandache theory.
package fusion

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrTotalConflict means two sources contradict each other completely
	// and Dempster's normalization is undefined.
	ErrTotalConflict = errors.New("total conflict: dempster fusion impossible")

	// ErrInsufficientSources is returned when fewer than two sources are
	// passed to a multi-source combination.
	ErrInsufficientSources = errors.New("at least 2 sources are required for fusion")

	ErrUnknownRule = errors.New("unknown fusion rule")
)

// totalConflictTolerance is how close the conflict may get to one before
// Dempster's rule gives up.
const totalConflictTolerance = 1e-10

type Rule string

const (
	RuleDempster Rule = "dempster"
	RulePCR5     Rule = "pcr5"
)

// Rules lists every supported rule in a stable order.
func Rules() []Rule {
	return []Rule{RuleDempster, RulePCR5}
}

func ValidRule(r string) bool {
	switch Rule(r) {
	case RuleDempster, RulePCR5:
		return true
	}
	return false
}

// ParseRule accepts a rule name case-insensitively. "dst" and "pcr" are
// accepted as aliases.
func ParseRule(s string) (Rule, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dempster", "dst":
		return RuleDempster, nil
	case "pcr5", "pcr", "dsmt":
		return RulePCR5, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRule, s)
}
