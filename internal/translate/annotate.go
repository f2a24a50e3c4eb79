package translate

import (
	"errors"
	"strings"

	"ganflu/internal/resolve"
)

// Annotate translates every CDS feature of one sequence in place.
// An internal stop turns the feature into a misc_feature; a missing start
// codon is translated permissively and noted. Any other failure aborts.
func (t *Translator) Annotate(seqID string, seq []byte, features []*resolve.Feature) error {
	for _, f := range features {
		if f.Notes == nil {
			f.Notes = []string{}
		}
		if f.Type != resolve.TypeCDS {
			continue
		}
		nt, err := Extract(seq, f.Spans)
		if err != nil {
			return &TranslationError{SeqID: seqID, Product: f.Product, Err: err}
		}
		prot, err := t.CDS(nt)
		switch {
		case err == nil:
			f.Translation = prot
		case errors.Is(err, ErrInternalStop):
			f.Type = resolve.TypeMisc
			f.Translation = ""
			f.AddNote(NoteNonfunctional)
		case errors.Is(err, ErrStartCodon):
			f.Translation = strings.TrimSuffix(t.Permissive(nt), "*")
			f.AddNote(NoteTruncated)
		default:
			return &TranslationError{SeqID: seqID, Product: f.Product, Err: err}
		}
	}
	return nil
}
