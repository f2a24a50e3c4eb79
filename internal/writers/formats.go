// internal/writers/formats.go
package writers

import (
	"io"

	"ganflu/internal/genbank"
	"ganflu/internal/jsonlutil"
	"ganflu/internal/output"
	"ganflu/internal/record"
)

const (
	FormatGenBank = "genbank"
	FormatJSON    = "json"
	FormatJSONL   = "jsonl"
)

func init() {
	Register(FormatGenBank, genbank.Write)
	Register(FormatJSON, output.WriteJSON)
	Register(FormatJSONL, writeJSONL)
}

func writeJSONL(w io.Writer, genomes []record.Genome) error {
	return jsonlutil.Encode(w, genomes, output.ToAPIGenome, IsBrokenPipe)
}
