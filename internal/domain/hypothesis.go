package domain

import (
	"sort"
	"strings"
)

// textSpecial lists the characters escaped with a backslash inside a
// label's text form.
const textSpecial = `\,{}`

// Hypothesis is a finite set of atomic labels. The zero value is the empty
// set. Two hypotheses with the same labels compare equal regardless of the
// order the labels were given in, so a Hypothesis can be used as a map key.
type Hypothesis struct {
	key string
}

// NewHypothesis builds the canonical set of the given labels. Blank labels
// are ignored and duplicates collapse.
func NewHypothesis(labels ...string) Hypothesis {
	set := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		set[l] = struct{}{}
	}
	return fromSet(set)
}

func fromSet(set map[string]struct{}) Hypothesis {
	if len(set) == 0 {
		return Hypothesis{}
	}
	sorted := make([]string, 0, len(set))
	for l := range set {
		sorted = append(sorted, l)
	}
	sort.Strings(sorted)
	return Hypothesis{key: joinLabels(sorted)}
}

// joinLabels renders sorted labels in text form. The result is also the
// canonical key, so labels containing separators cannot collide.
func joinLabels(sorted []string) string {
	var b strings.Builder
	for i, l := range sorted {
		if i > 0 {
			b.WriteByte(',')
		}
		for _, r := range l {
			if strings.ContainsRune(textSpecial, r) {
				b.WriteByte('\\')
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}

// splitLabels splits text form on unescaped commas and removes escapes.
func splitLabels(s string) []string {
	var (
		out     []string
		cur     strings.Builder
		escaped bool
	)
	for _, r := range s {
		switch {
		case escaped:
			cur.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == ',':
			out = append(out, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	if escaped {
		cur.WriteByte('\\')
	}
	return append(out, cur.String())
}

// ParseHypothesis reads the textual form used in scenario files:
// "A", "A,B" or "{A, B}". A backslash escapes a literal ',', '{', '}' or
// '\' inside a label.
func ParseHypothesis(s string) Hypothesis {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "{")
	if strings.HasSuffix(s, "}") && !escapedAt(s, len(s)-1) {
		s = s[:len(s)-1]
	}
	return NewHypothesis(splitLabels(s)...)
}

// escapedAt reports whether the byte at i is preceded by an odd number of
// backslashes.
func escapedAt(s string, i int) bool {
	n := 0
	for j := i - 1; j >= 0 && s[j] == '\\'; j-- {
		n++
	}
	return n%2 == 1
}

// Labels returns the sorted labels of h.
func (h Hypothesis) Labels() []string {
	if h.key == "" {
		return nil
	}
	return splitLabels(h.key)
}

func (h Hypothesis) Len() int {
	return len(h.Labels())
}

func (h Hypothesis) IsEmpty() bool {
	return h.key == ""
}

// Contains reports whether label is a member of h.
func (h Hypothesis) Contains(label string) bool {
	for _, l := range h.Labels() {
		if l == label {
			return true
		}
	}
	return false
}

// Intersect returns the set intersection of h and other.
func (h Hypothesis) Intersect(other Hypothesis) Hypothesis {
	if h == other {
		return h
	}
	a, b := h.Labels(), other.Labels()
	out := make([]string, 0, min(len(a), len(b)))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			out = append(out, a[i])
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	// Both inputs are sorted and unique, so out already is.
	return Hypothesis{key: joinLabels(out)}
}

// String renders h as {A,B}.
func (h Hypothesis) String() string {
	return "{" + h.key + "}"
}

// MarshalText encodes h in the form accepted by ParseHypothesis, which lets
// a Hypothesis key JSON and YAML maps.
func (h Hypothesis) MarshalText() ([]byte, error) {
	return []byte(h.key), nil
}

func (h *Hypothesis) UnmarshalText(text []byte) error {
	*h = ParseHypothesis(string(text))
	return nil
}

// canonicalHypothesis converts any supported hypothesis representation to
// its canonical form. ok is false for unsupported types, and for a []any
// holding anything but strings.
func canonicalHypothesis(v any) (h Hypothesis, ok bool) {
	switch t := v.(type) {
	case Hypothesis:
		return t, true
	case *Hypothesis:
		if t == nil {
			return Hypothesis{}, true
		}
		return *t, true
	case string:
		return NewHypothesis(t), true
	case []string:
		return NewHypothesis(t...), true
	case []any:
		labels := make([]string, 0, len(t))
		for _, e := range t {
			l, isStr := e.(string)
			if !isStr {
				return Hypothesis{}, false
			}
			labels = append(labels, l)
		}
		return NewHypothesis(labels...), true
	case map[string]struct{}:
		return NewHypothesis(keys(t)...), true
	case map[string]bool:
		labels := make([]string, 0, len(t))
		for l, in := range t {
			if in {
				labels = append(labels, l)
			}
		}
		return NewHypothesis(labels...), true
	default:
		return Hypothesis{}, false
	}
}

func keys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
