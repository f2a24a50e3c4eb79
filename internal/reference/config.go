// internal/reference/config.go
package reference

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// Config is a target's reference TOML.
type Config struct {
	Metadata    Metadata                  `toml:"metadata"`
	Annotations Annotations               `toml:"annotations"`
	Serotype    map[string]toml.Primitive `toml:"serotype"`
	Products    map[string]Product        `toml:"products"`
	Segments    map[string]Segment        `toml:"segments"`

	Path string `toml:"-"`
}

type Metadata struct {
	ProtFAA string `toml:"prot_faa"`
}

// Annotations are copied into every output record. Organism is a template
// with {isolate} and {subtype} placeholders.
type Annotations struct {
	Organism         string   `toml:"organism"`
	MoleculeType     string   `toml:"molecule_type"`
	Topology         string   `toml:"topology"`
	Taxonomy         []string `toml:"taxonomy"`
	DataFileDivision string   `toml:"data_file_division"`
}

type Product struct {
	RibosomalSlippage bool `toml:"ribosomal_slippage"`
}

// Segment describes one genome segment. Description is a template with
// {organism} and {subtype} placeholders.
type Segment struct {
	Description string `toml:"description"`
	File        string `toml:"file"`
}

// Load decodes and validates a reference TOML. Unknown keys are logged at
// debug level and otherwise ignored.
func Load(path string, logger *log.Logger) (*Config, error) {
	var c Config
	md, err := toml.DecodeFile(path, &c)
	if err != nil {
		return nil, fmt.Errorf("reference %s: %w", path, err)
	}
	c.Path = path
	if logger != nil {
		for _, k := range md.Undecoded() {
			if len(k) > 0 && k[0] == "serotype" {
				continue
			}
			logger.Debug("ignoring reference key", "key", k.String(), "file", path)
		}
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("reference %s: %w", path, err)
	}
	return &c, nil
}

// Validate checks the keys record assembly depends on.
func (c *Config) Validate() error {
	var missing []string
	a := c.Annotations
	for key, v := range map[string]string{
		"annotations.organism":           a.Organism,
		"annotations.molecule_type":      a.MoleculeType,
		"annotations.topology":           a.Topology,
		"annotations.data_file_division": a.DataFileDivision,
	} {
		if strings.TrimSpace(v) == "" {
			missing = append(missing, key)
		}
	}
	if len(c.Serotype) == 0 {
		missing = append(missing, "serotype")
	}
	if len(c.Segments) == 0 {
		missing = append(missing, "segments")
	}
	for name, s := range c.Segments {
		if strings.TrimSpace(s.Description) == "" {
			missing = append(missing, "segments."+name+".description")
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("missing required keys: %s", strings.Join(missing, ", "))
	}
	return nil
}

// ErrNoProteome is returned by RequireProteome when metadata.prot_faa is unset.
var ErrNoProteome = errors.New("metadata.prot_faa is not set")

// RequireProteome checks the key the aligner step needs.
func (c *Config) RequireProteome() error {
	if strings.TrimSpace(c.Metadata.ProtFAA) == "" {
		return fmt.Errorf("reference %s: %w", c.Path, ErrNoProteome)
	}
	return nil
}

// ProteomePath resolves metadata.prot_faa relative to the TOML's directory.
func (c *Config) ProteomePath() string {
	p := c.Metadata.ProtFAA
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(filepath.Dir(c.Path), p)
}

// AntigenNames returns the serotype antigen names in sorted order.
func (c *Config) AntigenNames() []string { return sortedKeys(c.Serotype) }

// SlippageNames returns the products flagged for ribosomal slippage.
func (c *Config) SlippageNames() []string {
	var out []string
	for name, p := range c.Products {
		if p.RibosomalSlippage {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// SegmentFor returns the segment keyed by the part of seqID before the
// first '_'.
func (c *Config) SegmentFor(seqID string) (Segment, string, bool) {
	key, _, _ := strings.Cut(seqID, "_")
	s, ok := c.Segments[key]
	return s, key, ok
}

func sortedKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Expand replaces {name} placeholders in tmpl. kv holds name, value pairs.
// Unknown placeholders are left as they are.
func Expand(tmpl string, kv ...string) string {
	pairs := make([]string, 0, len(kv))
	for i := 0; i+1 < len(kv); i += 2 {
		pairs = append(pairs, "{"+kv[i]+"}", kv[i+1])
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}
