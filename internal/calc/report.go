package calc

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Report lists every relation between two intervals, along with the results
// of the operations on them that have a single-interval answer.
type Report struct {
	A                   string `json:"a" yaml:"a"`
	B                   string `json:"b" yaml:"b"`
	Relation            string `json:"relation" yaml:"relation"`
	Includes            bool   `json:"includes" yaml:"includes"`
	IncludedBy          bool   `json:"included_by" yaml:"included_by"`
	Disjoint            bool   `json:"disjoint" yaml:"disjoint"`
	Overlaps            bool   `json:"overlaps" yaml:"overlaps"`
	Consecutive         bool   `json:"consecutive" yaml:"consecutive"`
	StrictlyConsecutive bool   `json:"strictly_consecutive" yaml:"strictly_consecutive"`
	CanUnify            bool   `json:"can_unify" yaml:"can_unify"`
	CanSubtract         bool   `json:"can_subtract" yaml:"can_subtract"`
	Intersection        string `json:"intersection" yaml:"intersection"`
	Union               string `json:"union,omitempty" yaml:"union,omitempty"`
	Difference          string `json:"difference,omitempty" yaml:"difference,omitempty"`
}

// OutputFormats lists the formats accepted by Report.Write.
var OutputFormats = []string{"text", "yaml", "json"}

// Holds returns the names of the relations that hold, in Relations order.
func (r *Report) Holds() []string {
	var names []string
	for _, h := range []struct {
		name string
		ok   bool
	}{
		{"includes", r.Includes},
		{"included-by", r.IncludedBy},
		{"disjoint", r.Disjoint},
		{"overlaps", r.Overlaps},
		{"consecutive", r.Consecutive},
		{"strictly-consecutive", r.StrictlyConsecutive},
		{"can-unify", r.CanUnify},
		{"can-subtract", r.CanSubtract},
	} {
		if h.ok {
			names = append(names, h.name)
		}
	}
	return names
}

// Write renders r to w in the given format.
func (r *Report) Write(w io.Writer, format string) error {
	switch format {
	case "", "text":
		return r.writeText(w)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return errors.Wrap(err, "encode yaml report")
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return errors.Wrap(enc.Encode(r), "encode json report")
	}
	return errors.Newf("unknown output format %q, expected one of %s", format, strings.Join(OutputFormats, ", "))
}

func (r *Report) writeText(w io.Writer) error {
	orNone := func(s string) string {
		if s == "" {
			return "unrepresentable"
		}
		return s
	}
	holds := "none"
	if names := r.Holds(); len(names) > 0 {
		holds = strings.Join(names, ", ")
	}
	_, err := fmt.Fprintf(w, "%s %s %s\nholds:        %s\nintersection: %s\nunion:        %s\ndifference:   %s\n",
		r.A, r.Relation, r.B, holds, r.Intersection, orNone(r.Union), orNone(r.Difference))
	return err
}
