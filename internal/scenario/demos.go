package scenario

// Zadeh is the classic counter-example to Dempster's rule. Two experts
// diagnose meningitis (A) and concussion (B) with 99% belief and both give
// a tumour (T) only 1%.
func Zadeh() *Scenario {
	return &Scenario{
		Name: "zadeh",
		Sources: []SourceConfig{
			{Name: "expert-1", Masses: map[string]float64{"A": 0.99, "T": 0.01}},
			{Name: "expert-2", Masses: map[string]float64{"B": 0.99, "T": 0.01}},
		},
	}
}

// Consensus has three sources that mostly agree on A.
func Consensus() *Scenario {
	return &Scenario{
		Name: "consensus",
		Sources: []SourceConfig{
			{Name: "source-1", Masses: map[string]float64{"A": 0.7, "B": 0.3}},
			{Name: "source-2", Masses: map[string]float64{"A": 1.0}},
			{Name: "source-3", Masses: map[string]float64{"A": 1.0}},
		},
	}
}

// Demo returns the built-in scenario called name.
func Demo(name string) (*Scenario, bool) {
	switch name {
	case "zadeh":
		return Zadeh(), true
	case "consensus", "multiple":
		return Consensus(), true
	}
	return nil, false
}

// DemoNames lists the built-in scenarios.
func DemoNames() []string {
	return []string{"zadeh", "consensus"}
}
