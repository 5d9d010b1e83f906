package fusion_test

import (
	"fmt"

	"github.com/Harshitk-cp/evidence/internal/domain"
	"github.com/Harshitk-cp/evidence/internal/fusion"
)

// Two experts diagnosing meningitis (A) or concussion (B) each give a
// tumour (C) 1%.
func zadehExperts() (domain.BeliefMass, domain.BeliefMass) {
	m1 := domain.NewBeliefMass(map[domain.Hypothesis]float64{
		domain.NewHypothesis("A"): 0.99,
		domain.NewHypothesis("C"): 0.01,
	})
	m2 := domain.NewBeliefMass(map[domain.Hypothesis]float64{
		domain.NewHypothesis("B"): 0.99,
		domain.NewHypothesis("C"): 0.01,
	})
	return m1, m2
}

func ExampleDempster() {
	m1, m2 := zadehExperts()

	result, conflict, err := fusion.Dempster(m1, m2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, f := range result.Items() {
		fmt.Printf("%s: %.5f\n", f.Hypothesis, f.Mass)
	}
	fmt.Printf("conflict: %.4f\n", conflict)
	// Output:
	// {C}: 1.00000
	// conflict: 0.9999
}

func ExamplePCR5() {
	m1, m2 := zadehExperts()

	result, _ := fusion.PCR5(m1, m2)
	for _, f := range result.Items() {
		fmt.Printf("%s: %.5f\n", f.Hypothesis, f.Mass)
	}
	// Output:
	// {A}: 0.49985
	// {B}: 0.49985
	// {C}: 0.00030
}

func ExamplePCR5Multiple() {
	sources := []domain.BeliefMass{
		domain.FromLabels(map[string]float64{"A": 0.7, "B": 0.3}),
		domain.FromLabels(map[string]float64{"A": 1.0}),
		domain.FromLabels(map[string]float64{"A": 1.0}),
	}

	result, err := fusion.PCR5Multiple(sources)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("A: %.3f\n", result.Mass("A"))
	fmt.Printf("B: %.3f\n", result.Mass("B"))
	// Output:
	// A: 1.000
	// B: 0.000
}
