package gff3

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const sample = "##gff-version 3\n" +
	"seg4\tminiprot\tmRNA\t21\t1721\t3053\t+\t.\tID=MP000001;Rank=1;Identity=0.9820;Target=HA_H3 1 567\n" +
	"seg4\tminiprot\tCDS\t21\t1721\t3053\t+\t0\tParent=MP000001;Rank=1;Identity=0.9820;Target=HA_H3 1 567\n" +
	"##PAF\tHA_H3\t567\n" +
	"seg6\tminiprot\tCDS\t10\t900\t.\t-\t.\tTarget=NA_N2 1 297\n"

func TestParseKeepsOrderAndSkipsComments(t *testing.T) {
	recs, err := Parse(strings.NewReader(sample), "x.gff3")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("want 3 records, got %d", len(recs))
	}
	if recs[0].Type != "mRNA" || recs[1].Type != "CDS" || recs[2].SeqID != "seg6" {
		t.Fatalf("unexpected order: %+v", recs)
	}
	if recs[1].Start != 21 || recs[1].End != 1721 || recs[1].Strand != Forward {
		t.Fatalf("bad coords: %+v", recs[1])
	}
	if recs[1].Phase == nil || *recs[1].Phase != 0 {
		t.Fatalf("phase 0 must be present, got %v", recs[1].Phase)
	}
	if recs[2].Score != nil || recs[2].Phase != nil {
		t.Fatalf("'.' must decode to absent: %+v", recs[2])
	}
	if recs[2].Strand != Reverse || recs[2].Line != 5 {
		t.Fatalf("bad strand/line: %+v", recs[2])
	}
}

func TestParseIsRepeatable(t *testing.T) {
	a, err := Parse(strings.NewReader(sample), "")
	if err != nil {
		t.Fatal(err)
	}
	b, err := Parse(strings.NewReader(sample), "")
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(a, b); d != "" {
		t.Fatalf("re-parse differs (-a +b):\n%s", d)
	}
}

func TestParseRejectsEightColumns(t *testing.T) {
	in := "seg4\tminiprot\tCDS\t1\t10\t.\t+\t0\tTarget=NP 1 3\n" +
		"seg4\tminiprot\tCDS\t1\t10\t.\t+\tTarget=NP 1 3\n"
	recs, err := Parse(strings.NewReader(in), "bad.gff3")
	if err == nil {
		t.Fatalf("expected error, got %d records", len(recs))
	}
	var me *MalformedRecordError
	if !errors.As(err, &me) {
		t.Fatalf("want MalformedRecordError, got %T: %v", err, err)
	}
	if me.Line != 2 || !strings.Contains(err.Error(), "bad.gff3:2") {
		t.Fatalf("bad location in error: %v", err)
	}
	if recs != nil {
		t.Fatalf("no partial result expected")
	}
}

func TestParseRejectsBadFields(t *testing.T) {
	cases := map[string]string{
		"start":  "s\tm\tCDS\tx\t10\t.\t+\t.\t.",
		"end":    "s\tm\tCDS\t1\t1e3\t.\t+\t.\t.",
		"score":  "s\tm\tCDS\t1\t10\thigh\t+\t.\t.",
		"strand": "s\tm\tCDS\t1\t10\t.\t.\t.\t.",
		"phase":  "s\tm\tCDS\t1\t10\t.\t+\tz\t.",
	}
	for name, line := range cases {
		if _, err := Parse(strings.NewReader(line+"\n"), ""); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestParseFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "in.gff3")
	if err := os.WriteFile(p, []byte(sample), 0o644); err != nil {
		t.Fatal(err)
	}
	recs, err := ParseFile(p)
	if err != nil || len(recs) != 3 {
		t.Fatalf("ParseFile: %v (%d records)", err, len(recs))
	}
	if _, err := ParseFile(filepath.Join(t.TempDir(), "missing.gff3")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
