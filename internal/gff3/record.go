// internal/gff3/record.go
package gff3

// Column indices of a GFF3 line.
const (
	FieldSeqid = iota
	FieldSource
	FieldType
	FieldStart
	FieldEnd
	FieldScore
	FieldStrand
	FieldPhase
	FieldAttributes

	numFields
)

// Strand is the orientation of a feature: +1 or -1.
type Strand int8

const (
	Forward Strand = 1
	Reverse Strand = -1
)

func (s Strand) String() string {
	if s == Reverse {
		return "-"
	}
	return "+"
}

// Record is one parsed GFF3 line. Start and End are 1-based and inclusive,
// as they appear in the file.
type Record struct {
	SeqID      string
	Source     string
	Type       string
	Start      int
	End        int
	Score      *float64 // nil for "."
	Strand     Strand
	Phase      *int // nil for "."
	Attributes string

	Line int // source line number, 1-based
}
