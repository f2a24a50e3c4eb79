// internal/output/json.go
package output

import (
	"io"

	"ganflu/internal/genbank"
	"ganflu/internal/jsonutil"
	"ganflu/internal/record"
	"ganflu/pkg/api"
)

// ToAPIGenome converts an annotated record to the stable wire schema (v1).
func ToAPIGenome(g record.Genome) api.GenomeV1 {
	a := g.Annotations
	v := api.GenomeV1{
		ID:               g.ID,
		Description:      g.Description,
		Length:           len(g.Seq),
		MoleculeType:     a.MoleculeType,
		Topology:         a.Topology,
		DataFileDivision: a.DataFileDivision,
		Date:             a.Date,
		Organism:         a.Organism,
		Isolate:          a.Isolate,
		Serotype:         a.Serotype,
		Taxonomy:         append([]string(nil), a.Taxonomy...),
		Features:         make([]api.FeatureV1, 0, len(g.Features)),
		Seq:              string(g.Seq),
	}
	for _, f := range g.Features {
		fv := api.FeatureV1{
			Type:        f.Type,
			Product:     f.Product,
			Location:    genbank.Location(f.Spans),
			Spans:       make([]api.SpanV1, 0, len(f.Spans)),
			Slippage:    f.Slippage,
			Notes:       append([]string(nil), f.Notes...),
			Translation: f.Translation,
		}
		for _, s := range f.Spans {
			fv.Spans = append(fv.Spans, api.SpanV1{Start: s.Start + 1, End: s.End, Strand: s.Strand.String()})
		}
		v.Features = append(v.Features, fv)
	}
	return v
}

func toAPIGenomes(list []record.Genome) []api.GenomeV1 {
	out := make([]api.GenomeV1, 0, len(list))
	for _, g := range list {
		out = append(out, ToAPIGenome(g))
	}
	return out
}

// WriteJSON writes a single JSON array of v1 genomes (pretty-indented).
func WriteJSON(w io.Writer, list []record.Genome) error {
	return jsonutil.EncodePretty(w, toAPIGenomes(list))
}
