package fusion

import (
	"math"

	"github.com/Harshitk-cp/evidence/internal/domain"
)

// Dempster combines two mass assignments with Dempster's rule: products of
// intersecting hypotheses are kept, products of disjoint ones form the
// conflict K, and the result is scaled by 1/(1-K).
//
// Strongly disagreeing sources concentrate all belief on whatever small
// agreement remains (Zadeh's paradox). That is the rule, not a bug.
func Dempster(a, b domain.BeliefMass) (domain.BeliefMass, float64, error) {
	combined := make(map[domain.Hypothesis]float64)
	var conflict float64

	for _, f1 := range a.Items() {
		for _, f2 := range b.Items() {
			prod := f1.Mass * f2.Mass
			inter := f1.Hypothesis.Intersect(f2.Hypothesis)
			if inter.IsEmpty() {
				conflict += prod
				continue
			}
			combined[inter] += prod
		}
	}

	if conflict >= 1.0-totalConflictTolerance {
		return domain.BeliefMass{}, conflict, ErrTotalConflict
	}

	// Rounding in the conflict sum can push a near-certain mass a few ulps
	// past one; masses never exceed one.
	factor := 1.0 / (1.0 - conflict)
	for h, m := range combined {
		combined[h] = math.Min(m*factor, 1)
	}
	return domain.NewBeliefMass(combined), conflict, nil
}

// DempsterMultiple folds Dempster left to right over sources. With exactly
// two sources the conflict of that combination is returned; with more the
// reported conflict is 0.
func DempsterMultiple(sources []domain.BeliefMass) (domain.BeliefMass, float64, error) {
	if len(sources) < 2 {
		return domain.BeliefMass{}, 0, ErrInsufficientSources
	}
	if len(sources) == 2 {
		return Dempster(sources[0], sources[1])
	}

	result := sources[0]
	for _, next := range sources[1:] {
		var err error
		result, _, err = Dempster(result, next)
		if err != nil {
			return domain.BeliefMass{}, 0, err
		}
	}
	return result, 0, nil
}
