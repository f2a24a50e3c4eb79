package writers

import (
	"bytes"
	"encoding/json"
	"strings"
	"syscall"
	"testing"

	"ganflu/internal/gff3"
	"ganflu/internal/record"
	"ganflu/internal/resolve"
)

func genomes() []record.Genome {
	return []record.Genome{
		{ID: "seg8", Name: "seg8", Description: "segment 8", Seq: []byte("ATGAAATAA"),
			Annotations: record.Annotations{MoleculeType: "RNA", Topology: "linear", Date: "14-OCT-2026"},
			Features: []*resolve.Feature{{Type: resolve.TypeCDS, Product: "NS1", Translation: "MK",
				Spans: []resolve.Span{{Start: 0, End: 9, Strand: gff3.Forward}}}}},
		{ID: "seg7", Name: "seg7", Seq: []byte("ATG")},
	}
}

func TestUnknownFormatError(t *testing.T) {
	var b bytes.Buffer
	err := Write("nope-format", &b, genomes())
	if err == nil || !strings.Contains(err.Error(), "unknown output format") {
		t.Fatalf("want unknown format error, got %v", err)
	}
}

func TestRegisteredFormats(t *testing.T) {
	if got := strings.Join(Names(), ","); got != "genbank,json,jsonl" {
		t.Fatalf("Names = %q", got)
	}
	for _, f := range Names() {
		var b bytes.Buffer
		if err := Write(f, &b, genomes()); err != nil {
			t.Fatalf("%s: %v", f, err)
		}
		if !strings.Contains(b.String(), "seg8") {
			t.Fatalf("%s output lacks record id:\n%s", f, b.String())
		}
	}
}

func TestJSONLOneRecordPerLine(t *testing.T) {
	var b bytes.Buffer
	if err := Write(FormatJSONL, &b, genomes()); err != nil {
		t.Fatalf("write: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("want 2 lines, got %d", len(lines))
	}
	var v struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal([]byte(lines[1]), &v); err != nil || v.ID != "seg7" {
		t.Fatalf("second line: %v %+v", err, v)
	}
}

type epipe struct{}

func (epipe) Write([]byte) (int, error) { return 0, syscall.EPIPE }

func TestBrokenPipeIsQuiet(t *testing.T) {
	for _, f := range Names() {
		if err := Write(f, epipe{}, genomes()); err != nil {
			t.Fatalf("%s: broken pipe surfaced: %v", f, err)
		}
	}
}
