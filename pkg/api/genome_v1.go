// pkg/api/genome_v1.go
package api

// GenomeV1 is the stable JSON/JSONL schema for one annotated sequence.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type GenomeV1 struct {
	ID               string      `json:"id"`
	Description      string      `json:"description"`
	Length           int         `json:"length"`
	MoleculeType     string      `json:"molecule_type"`
	Topology         string      `json:"topology"`
	DataFileDivision string      `json:"data_file_division,omitempty"`
	Date             string      `json:"date"`
	Organism         string      `json:"organism"`
	Isolate          string      `json:"isolate,omitempty"`
	Serotype         string      `json:"serotype,omitempty"`
	Taxonomy         []string    `json:"taxonomy,omitempty"`
	Features         []FeatureV1 `json:"features"`
	Seq              string      `json:"seq,omitempty"`
}

// FeatureV1 is one annotated feature. Location uses INSDC syntax; Spans
// carry the same geometry as 1-based inclusive coordinates.
type FeatureV1 struct {
	Type        string   `json:"type"` // "CDS" | "misc_feature"
	Product     string   `json:"product"`
	Location    string   `json:"location"`
	Spans       []SpanV1 `json:"spans"`
	Slippage    bool     `json:"ribosomal_slippage,omitempty"`
	Notes       []string `json:"notes,omitempty"`
	Translation string   `json:"translation,omitempty"`
}

// SpanV1 is one contiguous interval.
type SpanV1 struct {
	Start  int    `json:"start"`
	End    int    `json:"end"`
	Strand string `json:"strand"` // "+" | "-"
}

// Version is the schema version carried by these types.
const Version = "v1"
