package reference

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const iav = `
[metadata]
prot_faa = "IAV_proteome.faa"

[annotations]
organism = "Influenza A virus ({isolate}({subtype}))"
molecule_type = "RNA"
topology = "linear"
taxonomy = ["Viruses", "Riboviria", "Orthornavirae"]
data_file_division = "VRL"
extra = "ignored"

[serotype.HA]
[serotype.NA]

[products.PA-X]
ribosomal_slippage = true
[products.PB1]
ribosomal_slippage = false

[segments.seg4]
description = "{organism} segment 4 hemagglutinin (HA) gene, complete cds"
file = "seg4.fa"
`

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoad(t *testing.T) {
	p := writeFile(t, t.TempDir(), "IAV.toml", iav)
	c, err := Load(p, nil)
	require.NoError(t, err)
	require.Equal(t, []string{"HA", "NA"}, c.AntigenNames())
	require.Equal(t, []string{"PA-X"}, c.SlippageNames())
	require.Equal(t, "IAV_proteome.faa", c.Metadata.ProtFAA)
	require.NoError(t, c.RequireProteome())
	require.Equal(t, filepath.Join(filepath.Dir(p), "IAV_proteome.faa"), c.ProteomePath())

	seg, key, ok := c.SegmentFor("seg4_A_Narita_1_2009")
	require.True(t, ok)
	require.Equal(t, "seg4", key)
	require.Equal(t, "seg4.fa", seg.File)
	_, _, ok = c.SegmentFor("seg9")
	require.False(t, ok)
}

func TestLoadMissingKeys(t *testing.T) {
	p := writeFile(t, t.TempDir(), "bad.toml", "[annotations]\norganism = \"x\"\n")
	_, err := Load(p, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "annotations.molecule_type")
	require.Contains(t, err.Error(), "serotype")
	require.Contains(t, err.Error(), "segments")
}

func TestLoadSyntaxError(t *testing.T) {
	p := writeFile(t, t.TempDir(), "broken.toml", "[annotations\n")
	_, err := Load(p, nil)
	require.Error(t, err)
}

func TestRequireProteome(t *testing.T) {
	c := &Config{Path: "x.toml"}
	require.ErrorIs(t, c.RequireProteome(), ErrNoProteome)
}

func TestFindTOML(t *testing.T) {
	dir := t.TempDir()
	_, err := FindTOML(dir)
	require.ErrorIs(t, err, ErrNoReference)

	want := writeFile(t, dir, "IAV.toml", iav)
	writeFile(t, dir, "IAV_proteome.faa", ">x\nM\n")
	got, err := FindTOML(dir)
	require.NoError(t, err)
	require.Equal(t, want, got)

	writeFile(t, dir, "other.toml", iav)
	_, err = FindTOML(dir)
	require.ErrorIs(t, err, ErrAmbiguousReference)
}

func TestDir(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "IBV"), 0o755))

	got, err := Dir(root, "IBV")
	require.NoError(t, err)
	require.Equal(t, root, got)

	_, err = Dir(filepath.Join(root, "missing"), "IBV")
	require.Error(t, err)

	t.Setenv(EnvDB, root)
	got, err = Dir("", "IBV")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, "IBV"), got)
}

func TestExpand(t *testing.T) {
	got := Expand("Influenza A virus ({isolate}({subtype})) {other}", "isolate", "A/Narita/1/2009", "subtype", "H1N1")
	require.Equal(t, "Influenza A virus (A/Narita/1/2009(H1N1)) {other}", got)
	require.True(t, ValidTarget("IAV"))
	require.False(t, ValidTarget("ICV"))
}
