package genbank

import (
	"strconv"
	"strings"

	"ganflu/internal/gff3"
	"ganflu/internal/resolve"
)

// Location renders spans in INSDC location syntax: 10..300,
// complement(10..300), join(10..300,299..800). A compound location lying
// wholly on the minus strand is written as complement(join(...)) with its
// parts in ascending order.
func Location(spans []resolve.Span) string {
	if len(spans) == 1 {
		return part(spans[0], true)
	}
	allRev := true
	for _, s := range spans {
		if s.Strand != gff3.Reverse {
			allRev = false
			break
		}
	}
	parts := make([]string, 0, len(spans))
	if allRev {
		for i := len(spans) - 1; i >= 0; i-- {
			parts = append(parts, part(spans[i], false))
		}
		return "complement(join(" + strings.Join(parts, ",") + "))"
	}
	for _, s := range spans {
		parts = append(parts, part(s, true))
	}
	return "join(" + strings.Join(parts, ",") + ")"
}

func part(s resolve.Span, strand bool) string {
	var r string
	if s.Len() == 1 {
		r = strconv.Itoa(s.End)
	} else {
		r = strconv.Itoa(s.Start+1) + ".." + strconv.Itoa(s.End)
	}
	if strand && s.Strand == gff3.Reverse {
		return "complement(" + r + ")"
	}
	return r
}
