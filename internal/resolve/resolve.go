// internal/resolve/resolve.go
package resolve

import (
	"ganflu/internal/gff3"
)

// SubtypeNotePrefix starts the note recording the winning antigen subtype.
const SubtypeNotePrefix = "subtype: "

// Rules names the products that get special treatment.
type Rules struct {
	Antigens []string // e.g. HA, NA; best-identity subtype wins
	Slippage []string // e.g. PA-X; spans merge and ribosomal_slippage is set
}

// Result maps each sequence to its resolved features.
type Result struct {
	SeqIDs   []string // first-seen order
	Features map[string][]*Feature
}

// For returns the features of one sequence, nil when none were resolved.
func (r *Result) For(seqID string) []*Feature { return r.Features[seqID] }

type category int

const (
	plain category = iota
	antigen
	slippage
)

type seqState struct {
	order     []string
	byProduct map[string]*Feature
	antigens  map[string]*registry
}

// Resolve groups CDS records by sequence and product name and merges them
// into one feature per product. Non-CDS records are ignored. Records are
// consumed in order, so first-seen decides feature order and tie-breaks.
func Resolve(recs []gff3.Record, rules Rules) (*Result, error) {
	antigenSet := toSet(rules.Antigens)
	slipSet := toSet(rules.Slippage)

	var seqOrder []string
	states := map[string]*seqState{}

	for _, rec := range recs {
		if rec.Type != TypeCDS {
			continue
		}
		attrs, err := gff3.ParseAttributes(rec.Attributes)
		if err != nil {
			return nil, &gff3.MalformedRecordError{Line: rec.Line, Reason: err.Error()}
		}
		if attrs.Target == "" {
			return nil, &MissingAttributeError{SeqID: rec.SeqID, Line: rec.Line, Key: "Target"}
		}
		sp, err := spanOf(rec)
		if err != nil {
			return nil, err
		}

		st, ok := states[rec.SeqID]
		if !ok {
			st = &seqState{byProduct: map[string]*Feature{}, antigens: map[string]*registry{}}
			states[rec.SeqID] = st
			seqOrder = append(seqOrder, rec.SeqID)
		}

		product, subtype := gff3.SplitProduct(attrs.Target)
		switch classify(product, subtype, antigenSet, slipSet) {
		case antigen:
			if attrs.Identity == nil {
				return nil, &MissingAttributeError{SeqID: rec.SeqID, Line: rec.Line, Key: "Identity"}
			}
			st.putAntigen(product, subtype, call{identity: *attrs.Identity, rec: rec, span: sp})
		case slippage:
			st.merge(product, rec, sp, true)
		default:
			st.merge(product, rec, sp, false)
		}
	}

	res := &Result{SeqIDs: seqOrder, Features: make(map[string][]*Feature, len(seqOrder))}
	for _, id := range seqOrder {
		st := states[id]
		list := make([]*Feature, 0, len(st.order))
		for _, p := range st.order {
			list = append(list, st.byProduct[p])
		}
		res.Features[id] = list
	}
	return res, nil
}

// classify checks antigen first, so a product listed as both is an antigen.
func classify(product, subtype string, antigens, slip map[string]struct{}) category {
	if _, ok := antigens[product]; ok && subtype != "" {
		return antigen
	}
	if _, ok := slip[product]; ok {
		return slippage
	}
	return plain
}

func (st *seqState) put(product string, f *Feature) {
	if _, ok := st.byProduct[product]; !ok {
		st.order = append(st.order, product)
	}
	st.byProduct[product] = f
}

// merge adds sp to the product's feature. Once an antigen has a subtype
// call on this sequence, its subtype-less calls are dropped so the antigen
// keeps a single location.
func (st *seqState) merge(product string, rec gff3.Record, sp Span, slip bool) {
	if _, ok := st.antigens[product]; ok {
		return
	}
	if f, ok := st.byProduct[product]; ok {
		f.appendSpan(sp)
		if slip {
			f.Slippage = true
		}
		return
	}
	f := newFeature(product, rec, sp)
	f.Slippage = slip
	st.put(product, f)
}

// putAntigen records the call and rebuilds the antigen feature from the
// best subtype seen so far. Earlier notes and spans are discarded.
func (st *seqState) putAntigen(product, subtype string, c call) {
	reg, ok := st.antigens[product]
	if !ok {
		reg = newRegistry()
		st.antigens[product] = reg
	}
	reg.put(subtype, c)

	winner := subtype
	if _, seen := st.byProduct[product]; seen {
		winner = reg.best()
	}
	w := reg.calls[winner]
	f := newFeature(product, w.rec, w.span)
	f.AddNote(SubtypeNotePrefix + winner)
	st.put(product, f)
}

func spanOf(rec gff3.Record) (Span, error) {
	start := rec.Start - 1
	if start < 0 || start >= rec.End {
		return Span{}, &DegenerateSpanError{SeqID: rec.SeqID, Line: rec.Line, Start: rec.Start, End: rec.End}
	}
	return Span{Start: start, End: rec.End, Strand: rec.Strand}, nil
}

func toSet(names []string) map[string]struct{} {
	m := make(map[string]struct{}, len(names))
	for _, n := range names {
		m[n] = struct{}{}
	}
	return m
}
