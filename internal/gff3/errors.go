package gff3

import "fmt"

// MalformedRecordError reports a line that is not a valid 9-column GFF3 record.
// Parsing stops at the first one.
type MalformedRecordError struct {
	Path   string
	Line   int
	Reason string
}

func (e *MalformedRecordError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("gff3 line %d: %s", e.Line, e.Reason)
	}
	return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Reason)
}
