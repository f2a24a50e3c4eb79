package app

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

const testdata = "../appcore/testdata"

// fakeMiniprot writes a stand-in aligner that replays the sample GFF3.
func fakeMiniprot(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("aligner stub needs a POSIX shell")
	}
	gff, err := filepath.Abs(filepath.Join(testdata, "sample.gff3"))
	if err != nil {
		t.Fatal(err)
	}
	p := filepath.Join(t.TempDir(), "miniprot")
	script := "#!/bin/sh\necho \"miniprot $*\" >&2\ncat '" + gff + "'\n"
	if err := os.WriteFile(p, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
	return p
}

// dbDir copies the reference TOML and proteome into a fresh directory.
func dbDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for _, f := range []string{"IAV.toml", "IAV_proteome.faa"} {
		b, err := os.ReadFile(filepath.Join(testdata, f))
		if err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(dir, f), b, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestFullPipeline(t *testing.T) {
	bin := fakeMiniprot(t)
	out := filepath.Join(t.TempDir(), "run1")
	var so, se bytes.Buffer
	code := Run([]string{
		"-i", filepath.Join(testdata, "sample.fa"), "-t", "IAV", "-d", dbDir(t),
		"-o", out, "--isolate", "A/Narita/1/2009", "--miniprot", bin, "-q",
	}, &so, &se)
	if code != 0 {
		t.Fatalf("exit %d, stderr:\n%s", code, se.String())
	}
	work := filepath.Dir(out)
	for _, f := range []string{"run1.gff3", "run1.gbk", "miniprot.stderr"} {
		if _, err := os.Stat(filepath.Join(work, f)); err != nil {
			t.Fatalf("missing %s: %v", f, err)
		}
	}
	log, _ := os.ReadFile(filepath.Join(work, "miniprot.stderr"))
	if !strings.Contains(string(log), "-P MP --gff -J 15") || !strings.Contains(string(log), "IAV_proteome.faa") {
		t.Fatalf("aligner args: %q", log)
	}
	gbk, _ := os.ReadFile(filepath.Join(work, "run1.gbk"))
	if !strings.Contains(string(gbk), "(A/Narita/1/2009(H1N1))") {
		t.Fatalf("genbank lacks organism:\n%s", gbk)
	}
}

func TestMissingAlignerIsInputError(t *testing.T) {
	var so, se bytes.Buffer
	code := Run([]string{
		"-i", filepath.Join(testdata, "sample.fa"), "-t", "IAV", "-d", dbDir(t),
		"-o", filepath.Join(t.TempDir(), "x"), "--miniprot", "no-such-miniprot-binary",
	}, &so, &se)
	if code != 2 || !strings.Contains(se.String(), "aligner binary not found") {
		t.Fatalf("exit %d, stderr:\n%s", code, se.String())
	}
}

func TestNoReferenceIsInputError(t *testing.T) {
	var so, se bytes.Buffer
	code := Run([]string{"-i", "in.fa", "-t", "IBV", "-d", t.TempDir()}, &so, &se)
	if code != 2 || !strings.Contains(se.String(), "no reference TOML") {
		t.Fatalf("exit %d, stderr:\n%s", code, se.String())
	}
}

func TestUsage(t *testing.T) {
	var so, se bytes.Buffer
	if code := Run([]string{"-h"}, &so, &se); code != 0 || !strings.Contains(so.String(), "ganflu – influenza genome annotation") {
		t.Fatalf("help: code=%d out=%q", code, so.String())
	}
	so.Reset()
	if code := Run([]string{"-t", "ICV", "-i", "a.fa"}, &so, &se); code != 2 {
		t.Fatalf("bad target: exit %d", code)
	}
}
