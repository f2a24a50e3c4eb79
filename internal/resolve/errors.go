package resolve

import "fmt"

// MissingAttributeError reports a CDS record without a key the resolver needs
// to classify it (Target always, Identity for antigen calls).
type MissingAttributeError struct {
	SeqID string
	Line  int
	Key   string
}

func (e *MissingAttributeError) Error() string {
	return fmt.Sprintf("%s (line %d): CDS record has no %s attribute", e.SeqID, e.Line, e.Key)
}

// DegenerateSpanError reports a span that covers no bases after conversion
// to 0-based coordinates.
type DegenerateSpanError struct {
	SeqID      string
	Line       int
	Start, End int // as read, 1-based inclusive
}

func (e *DegenerateSpanError) Error() string {
	return fmt.Sprintf("%s (line %d): degenerate span %d..%d", e.SeqID, e.Line, e.Start, e.End)
}
