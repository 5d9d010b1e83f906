package fusion

import "github.com/Harshitk-cp/evidence/internal/domain"

// PCR5 combines two mass assignments with the fifth proportional conflict
// redistribution rule. Agreeing products go to the intersection as in
// Dempster's rule. Each conflicting product m1*m2 is handed back to the two
// hypotheses that produced it, split in proportion to m1 and m2.
//
// The returned conflict is the total mass that was redistributed.
func PCR5(a, b domain.BeliefMass) (domain.BeliefMass, float64) {
	combined := make(map[domain.Hypothesis]float64)
	var conflict float64

	for _, f1 := range a.Items() {
		for _, f2 := range b.Items() {
			m1, m2 := f1.Mass, f2.Mass
			prod := m1 * m2
			inter := f1.Hypothesis.Intersect(f2.Hypothesis)
			if !inter.IsEmpty() {
				combined[inter] += prod
				continue
			}
			if prod <= 0 {
				continue
			}
			conflict += prod
			sum := m1 + m2
			if sum > 0 {
				combined[f1.Hypothesis] += m1 * prod / sum
				combined[f2.Hypothesis] += m2 * prod / sum
			}
		}
	}

	return domain.NewBeliefMass(combined).Normalize(), conflict
}

// PCR5Multiple folds PCR5 left to right over sources and returns the final
// assignment. Intermediate conflicts are not reported.
func PCR5Multiple(sources []domain.BeliefMass) (domain.BeliefMass, error) {
	if len(sources) < 2 {
		return domain.BeliefMass{}, ErrInsufficientSources
	}
	result := sources[0]
	for _, next := range sources[1:] {
		result, _ = PCR5(result, next)
	}
	return result, nil
}
