// internal/record/record.go
package record

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"ganflu/internal/fasta"
	"ganflu/internal/reference"
	"ganflu/internal/resolve"
)

// UnknownSubtype is used for an antigen feature without a subtype call.
const UnknownSubtype = "Unknown"

// ErrMissingSegment is returned when a sequence id has no segment entry in
// the reference.
var ErrMissingSegment = errors.New("no segment")

// Annotations are the record-level metadata of one output record.
type Annotations struct {
	MoleculeType     string
	Isolate          string
	Topology         string
	Taxonomy         []string
	DataFileDivision string
	Serotype         string
	Source           string
	Organism         string
	Date             string // DD-MON-YYYY
}

// Genome is one annotated input sequence.
type Genome struct {
	ID          string
	Name        string
	Description string
	Seq         []byte
	Annotations Annotations
	Features    []*resolve.Feature
}

// Assembler combines resolved features with reference metadata.
type Assembler struct {
	Ref     *reference.Config
	Isolate string
	Now     func() time.Time // defaults to time.Now
	Logger  *log.Logger
}

// Build returns one Genome per input sequence, in input order. Features are
// copied so the resolver result stays untouched by later passes.
func (a Assembler) Build(seqs []fasta.Record, res *resolve.Result) ([]Genome, error) {
	now := a.Now
	if now == nil {
		now = time.Now
	}
	serotype := Serotype(res, a.Ref.AntigenNames())
	organism := reference.Expand(a.Ref.Annotations.Organism, "isolate", a.Isolate, "subtype", serotype)
	ann := Annotations{
		MoleculeType:     a.Ref.Annotations.MoleculeType,
		Isolate:          a.Isolate,
		Topology:         a.Ref.Annotations.Topology,
		Taxonomy:         append([]string(nil), a.Ref.Annotations.Taxonomy...),
		DataFileDivision: a.Ref.Annotations.DataFileDivision,
		Serotype:         serotype,
		Source:           organism,
		Organism:         organism,
		Date:             FormatDate(now()),
	}

	out := make([]Genome, 0, len(seqs))
	for _, s := range seqs {
		seg, key, ok := a.Ref.SegmentFor(s.ID)
		if !ok {
			return nil, fmt.Errorf("%s: %w %q in reference %s", s.ID, ErrMissingSegment, key, a.Ref.Path)
		}
		feats := res.For(s.ID)
		if len(feats) == 0 && a.Logger != nil {
			a.Logger.Warn("no CDS features for sequence", "seq", s.ID)
		}
		g := Genome{
			ID:          s.ID,
			Name:        s.ID,
			Description: reference.Expand(seg.Description, "organism", organism, "subtype", serotype),
			Seq:         s.Seq,
			Annotations: ann,
			Features:    make([]*resolve.Feature, 0, len(feats)),
		}
		for _, f := range feats {
			g.Features = append(g.Features, f.Clone())
		}
		out = append(out, g)
	}
	return out, nil
}

// Serotype builds the serotype string (e.g. H3N2) from the antigen features
// of all sequences. An antigen with more than one distinct subtype call is
// reported as its first letter followed by X.
func Serotype(res *resolve.Result, antigens []string) string {
	isAntigen := make(map[string]bool, len(antigens))
	for _, a := range antigens {
		isAntigen[a] = true
	}
	var order []string
	calls := map[string][]string{}
	for _, id := range res.SeqIDs {
		for _, f := range res.For(id) {
			if !isAntigen[f.Product] {
				continue
			}
			sub, ok := f.Note(resolve.SubtypeNotePrefix)
			if !ok {
				sub = UnknownSubtype
			}
			if _, seen := calls[f.Product]; !seen {
				order = append(order, f.Product)
			}
			calls[f.Product] = appendUnique(calls[f.Product], sub)
		}
	}
	var b strings.Builder
	for _, p := range order {
		if subs := calls[p]; len(subs) == 1 {
			b.WriteString(subs[0])
		} else {
			b.WriteString(p[:1] + "X")
		}
	}
	return b.String()
}

func appendUnique(list []string, s string) []string {
	for _, x := range list {
		if x == s {
			return list
		}
	}
	return append(list, s)
}

// FormatDate renders t as 14-OCT-2026.
func FormatDate(t time.Time) string { return strings.ToUpper(t.Format("02-Jan-2006")) }
