package clibase

import (
	"bytes"
	"flag"
	"io"
	"strings"
	"testing"
)

func parse(t *testing.T, args ...string) (Common, error) {
	t.Helper()
	var c Common
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(&bytes.Buffer{})
	Register(fs, &c)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse: %v", err)
	}
	return c, Validate(&c)
}

func TestDefaults(t *testing.T) {
	c, err := parse(t)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if c.Format != "genbank" || c.CodonTable != 1 || c.LogLevel != "info" || c.Threads != 0 {
		t.Fatalf("unexpected defaults: %+v", c)
	}
}

func TestValidateRejects(t *testing.T) {
	for _, args := range [][]string{
		{"--threads", "-1"},
		{"--codon-table", "0"},
		{"-f", "fasta"},
		{"--log-level", "loud"},
	} {
		if _, err := parse(t, args...); err == nil {
			t.Fatalf("%v: expected validation error", args)
		}
	}
}

func TestRequired(t *testing.T) {
	err := Required("input", "a.fa", "gff", " ")
	if err == nil || err.Error() != "--gff is required" {
		t.Fatalf("Required = %v", err)
	}
	if err := Required("input", "a.fa"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUsageCommon(t *testing.T) {
	var c Common
	var b bytes.Buffer
	fs := flag.NewFlagSet("ganflu", flag.ContinueOnError)
	Register(fs, &c)
	fs.SetOutput(&b)
	UsageCommon(fs, "ganflu", "influenza genome annotation", func(out io.Writer, _ func(string) string) {
		_, _ = io.WriteString(out, "Usage: ganflu -i in.fa -t IAV\n")
	})
	fs.Usage()
	for _, want := range []string{"ganflu – influenza genome annotation", "Usage: ganflu", "--codon-table int", "[genbank]"} {
		if !strings.Contains(b.String(), want) {
			t.Fatalf("usage missing %q:\n%s", want, b.String())
		}
	}
}
