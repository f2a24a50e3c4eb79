package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"ganflu/internal/gff3"
	"ganflu/internal/record"
	"ganflu/internal/resolve"
	"ganflu/pkg/api"
)

func TestToAPIGenome(t *testing.T) {
	g := record.Genome{
		ID: "seg2", Description: "segment 2", Seq: []byte("ATGCCC"),
		Annotations: record.Annotations{MoleculeType: "RNA", Topology: "linear", Date: "14-OCT-2026",
			Organism: "Influenza A virus", Serotype: "H1N1"},
		Features: []*resolve.Feature{{
			Type: resolve.TypeMisc, Product: "PB1-F2", Notes: []string{"nonfunctional due to mutation"},
			Spans: []resolve.Span{{Start: 2, End: 6, Strand: gff3.Reverse}},
		}},
	}
	want := api.GenomeV1{
		ID: "seg2", Description: "segment 2", Length: 6, MoleculeType: "RNA", Topology: "linear",
		Date: "14-OCT-2026", Organism: "Influenza A virus", Serotype: "H1N1", Seq: "ATGCCC",
		Features: []api.FeatureV1{{
			Type: "misc_feature", Product: "PB1-F2", Location: "complement(3..6)",
			Spans: []api.SpanV1{{Start: 3, End: 6, Strand: "-"}},
			Notes: []string{"nonfunctional due to mutation"},
		}},
	}
	if d := cmp.Diff(want, ToAPIGenome(g)); d != "" {
		t.Fatalf("ToAPIGenome (-want +got):\n%s", d)
	}
}

func TestWriteJSONArray(t *testing.T) {
	var b bytes.Buffer
	if err := WriteJSON(&b, []record.Genome{{ID: "a"}, {ID: "b"}}); err != nil {
		t.Fatalf("write: %v", err)
	}
	var got []api.GenomeV1
	if err := json.Unmarshal(b.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(got) != 2 || got[1].ID != "b" || got[0].Features == nil {
		t.Fatalf("unexpected: %+v", got)
	}
}
