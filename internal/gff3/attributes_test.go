package gff3

import "testing"

func TestParseAttributes(t *testing.T) {
	a, err := ParseAttributes("ID=MP000003;Rank=1;Identity=0.9510;Positive=0.97;Target=PB1_x 1 757;")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if a.Target != "PB1_x" {
		t.Errorf("target = %q", a.Target)
	}
	if a.Identity == nil || *a.Identity != 0.951 {
		t.Errorf("identity = %v", a.Identity)
	}

	a, err = ParseAttributes(".")
	if err != nil || a.Target != "" || a.Identity != nil {
		t.Fatalf("'.' should be empty: %+v %v", a, err)
	}

	if _, err := ParseAttributes("Target"); err == nil {
		t.Fatalf("expected error for segment without '='")
	}
	if _, err := ParseAttributes("Identity=abc;Target=NP"); err == nil {
		t.Fatalf("expected error for bad identity")
	}
}

func TestSplitProduct(t *testing.T) {
	for in, want := range map[string][2]string{
		"HA_H3":    {"HA", "H3"},
		"NP":       {"NP", ""},
		"NA_N1_v2": {"NA", "N1"},
		"HA_":      {"HA", ""},
	} {
		n, s := SplitProduct(in)
		if n != want[0] || s != want[1] {
			t.Errorf("SplitProduct(%q) = %q,%q; want %q,%q", in, n, s, want[0], want[1])
		}
	}
}
