package resolve

import "ganflu/internal/gff3"

type call struct {
	identity float64
	rec      gff3.Record
	span     Span
}

// registry keeps the latest call per subtype of one antigen on one sequence,
// remembering the order in which subtypes were first seen.
type registry struct {
	order []string
	calls map[string]call
}

func newRegistry() *registry { return &registry{calls: map[string]call{}} }

func (r *registry) put(subtype string, c call) {
	if _, ok := r.calls[subtype]; !ok {
		r.order = append(r.order, subtype)
	}
	r.calls[subtype] = c
}

// best returns the subtype with the highest identity; ties go to the one
// seen first.
func (r *registry) best() string {
	var win string
	for i, s := range r.order {
		if i == 0 || r.calls[s].identity > r.calls[win].identity {
			win = s
		}
	}
	return win
}
