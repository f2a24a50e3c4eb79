// internal/resolve/feature.go
package resolve

import (
	"strings"

	"ganflu/internal/gff3"
)

// Feature types emitted by the resolver and the translation pass.
const (
	TypeCDS  = "CDS"
	TypeMisc = "misc_feature"
)

// Span is one genomic interval of a feature, 0-based half-open.
type Span struct {
	Start  int
	End    int
	Strand gff3.Strand
}

// Len returns the number of bases covered by s.
func (s Span) Len() int { return s.End - s.Start }

// Feature is one resolved gene on one sequence. A feature with more than
// one span has a compound location (spliced or slippage genes).
type Feature struct {
	Type     string
	Spans    []Span
	Product  string
	Slippage bool // ribosomal_slippage qualifier
	Notes    []string

	Translation string // set by the translation pass
}

// Compound reports whether f is made of several spans.
func (f *Feature) Compound() bool { return len(f.Spans) > 1 }

// AddNote appends a free-text note.
func (f *Feature) AddNote(n string) { f.Notes = append(f.Notes, n) }

// Note returns the first note whose text starts with prefix, without it.
func (f *Feature) Note(prefix string) (string, bool) {
	for _, n := range f.Notes {
		if rest, ok := strings.CutPrefix(n, prefix); ok {
			return rest, true
		}
	}
	return "", false
}

// Clone returns a deep copy of f.
func (f *Feature) Clone() *Feature {
	c := *f
	c.Spans = append([]Span(nil), f.Spans...)
	c.Notes = append([]string(nil), f.Notes...)
	return &c
}

func newFeature(product string, rec gff3.Record, sp Span) *Feature {
	return &Feature{
		Type:    rec.Type,
		Spans:   []Span{sp},
		Product: product,
		Notes:   []string{},
	}
}

// appendSpan merges sp into f's location: a single span becomes a
// two-part compound location, a compound one grows by one part.
func (f *Feature) appendSpan(sp Span) {
	f.Spans = append(f.Spans, sp)
}
