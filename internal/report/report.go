// Package report renders fusion results for humans and machines.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/Harshitk-cp/evidence/internal/domain"
	"gopkg.in/yaml.v3"
)

var ErrUnknownFormat = errors.New("unknown output format")

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func ValidFormat(f string) bool {
	switch Format(f) {
	case FormatText, FormatJSON, FormatYAML:
		return true
	}
	return false
}

// Writer renders results to an io.Writer. YAML output is a stream of
// documents and must be finished with Close.
type Writer struct {
	out       io.Writer
	format    Format
	precision int
	yaml      *yaml.Encoder
}

func NewWriter(out io.Writer, format Format, precision int) (*Writer, error) {
	if !ValidFormat(string(format)) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if precision <= 0 {
		precision = 4
	}
	return &Writer{out: out, format: format, precision: precision}, nil
}

// Sources prints the inputs of a run. Only the text format shows them.
func (w *Writer) Sources(sources []domain.Source) error {
	if w.format != FormatText {
		return nil
	}
	if _, err := fmt.Fprintln(w.out, "Sources:"); err != nil {
		return err
	}
	for i, src := range sources {
		if _, err := fmt.Fprintf(w.out, "  %d: %s %s\n", i+1, src.Name, src.Belief); err != nil {
			return err
		}
	}
	return nil
}

// Result prints one fusion result.
func (w *Writer) Result(res *domain.FusionResult) error {
	switch w.format {
	case FormatJSON:
		enc := json.NewEncoder(w.out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case FormatYAML:
		return w.yamlEncoder().Encode(res)
	default:
		return w.text(res)
	}
}

// Failure prints a rule that could not fuse its sources.
func (w *Writer) Failure(rule string, err error) error {
	switch w.format {
	case FormatJSON:
		return json.NewEncoder(w.out).Encode(map[string]string{"rule": rule, "error": err.Error()})
	case FormatYAML:
		return w.yamlEncoder().Encode(map[string]string{"rule": rule, "error": err.Error()})
	default:
		_, werr := fmt.Fprintf(w.out, "\n%s: error: %v\n", ruleTitle(rule), err)
		return werr
	}
}

// Close flushes any pending YAML output. It is a no-op for other formats.
func (w *Writer) Close() error {
	if w.yaml == nil {
		return nil
	}
	err := w.yaml.Close()
	w.yaml = nil
	return err
}

// yamlEncoder returns the shared encoder, so consecutive results are
// separated by "---".
func (w *Writer) yamlEncoder() *yaml.Encoder {
	if w.yaml == nil {
		w.yaml = yaml.NewEncoder(w.out)
	}
	return w.yaml
}

func (w *Writer) text(res *domain.FusionResult) error {
	var b strings.Builder
	fmt.Fprintf(&b, "\n%s:\n", ruleTitle(res.Rule))
	for _, f := range ByMass(res.Combined) {
		fmt.Fprintf(&b, "  %s -> %.*f\n", f.Hypothesis, w.precision, f.Mass)
	}
	fmt.Fprintf(&b, "  conflict: %.*f\n", w.precision, res.Conflict)
	if len(res.Steps) > 1 {
		for _, s := range res.Steps {
			fmt.Fprintf(&b, "  step %d (+%s) conflict: %.*f\n", s.Step, s.Source, w.precision, s.Conflict)
		}
	}
	_, err := io.WriteString(w.out, b.String())
	return err
}

// ByMass returns the focal elements of bm, largest mass first. Ties are
// broken by hypothesis.
func ByMass(bm domain.BeliefMass) []domain.Focal {
	items := bm.Items()
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Mass > items[j].Mass
	})
	return items
}

func ruleTitle(rule string) string {
	switch rule {
	case "dempster":
		return "Dempster (DST)"
	case "pcr5":
		return "PCR5 (DSmT)"
	}
	return rule
}
