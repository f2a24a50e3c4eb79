// internal/translate/translate.go
package translate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bebop/poly/synthesis/codon"
	"github.com/bebop/poly/transform"

	"ganflu/internal/gff3"
	"ganflu/internal/resolve"
)

// Notes attached by Annotate for recoverable anomalies.
const (
	NoteNonfunctional = "nonfunctional due to mutation"
	NoteTruncated     = "start codon not found; possibly truncated"
)

// Reasons a strict CDS translation fails.
var (
	ErrStartCodon   = errors.New("first codon is not a start codon")
	ErrFrame        = errors.New("length is not a multiple of three")
	ErrNoStop       = errors.New("final codon is not a stop codon")
	ErrInternalStop = errors.New("extra in-frame stop codon")
	ErrOutOfRange   = errors.New("location extends past the sequence end")
)

// TranslationError is a translation failure Annotate cannot recover from.
type TranslationError struct {
	SeqID   string
	Product string
	Err     error
}

func (e *TranslationError) Error() string {
	return fmt.Sprintf("%s: cannot translate %s: %v", e.SeqID, e.Product, e.Err)
}

func (e *TranslationError) Unwrap() error { return e.Err }

// Translator turns coding sequences into protein using one NCBI table.
// It is safe for concurrent use once built.
type Translator struct {
	aa     map[string]byte
	starts map[string]bool
}

// New builds a Translator for the given NCBI translation table index.
func New(tableIndex int) (*Translator, error) {
	table, err := codon.NewTranslationTable(tableIndex)
	if err != nil {
		return nil, fmt.Errorf("codon table %d: %w", tableIndex, err)
	}
	t := &Translator{aa: make(map[string]byte, 64), starts: map[string]bool{}}
	for _, c := range table.StartCodons {
		t.starts[strings.ToUpper(c)] = true
	}
	// Prefixing ATG leaves start-codon handling to the first, known codon.
	const bases = "ACGT"
	for _, a := range bases {
		for _, b := range bases {
			for _, c := range bases {
				cod := string([]rune{a, b, c})
				p, err := table.Translate("ATG" + cod)
				if err != nil || len(p) != 2 {
					return nil, fmt.Errorf("codon table %d: no translation for %s", tableIndex, cod)
				}
				t.aa[cod] = p[1]
			}
		}
	}
	return t, nil
}

// iupac lists the bases each nucleotide code stands for.
var iupac = map[byte]string{
	'A': "A", 'C': "C", 'G': "G", 'T': "T", 'U': "T",
	'R': "AG", 'Y': "CT", 'S': "CG", 'W': "AT", 'K': "GT", 'M': "AC",
	'B': "CGT", 'D': "AGT", 'H': "ACT", 'V': "ACG", 'N': "ACGT",
}

// residue translates one codon. An ambiguous codon resolves to a residue
// (or stop) only when every expansion agrees, otherwise X.
func (t *Translator) residue(cod string) byte {
	if r, ok := t.aa[cod]; ok {
		return r
	}
	var r byte
	for _, a := range []byte(iupac[cod[0]]) {
		for _, b := range []byte(iupac[cod[1]]) {
			for _, c := range []byte(iupac[cod[2]]) {
				x := t.aa[string([]byte{a, b, c})]
				if r == 0 {
					r = x
				} else if x != r {
					return 'X'
				}
			}
		}
	}
	if r == 0 {
		return 'X'
	}
	return r
}

// CDS translates nt as a complete coding sequence: it must be a whole
// number of codons, open with a start codon, end with a stop and hold no
// other stop. The start is rendered as M and the final stop is dropped.
func (t *Translator) CDS(nt string) (string, error) {
	nt = strings.ToUpper(nt)
	if len(nt)%3 != 0 {
		return "", fmt.Errorf("%w (%d nt)", ErrFrame, len(nt))
	}
	if len(nt) < 3 || !t.starts[nt[:3]] {
		return "", ErrStartCodon
	}
	n := len(nt) / 3
	if t.residue(nt[len(nt)-3:]) != '*' {
		return "", fmt.Errorf("%w (%s)", ErrNoStop, nt[len(nt)-3:])
	}
	prot := make([]byte, 0, n-1)
	prot = append(prot, 'M')
	for i := 1; i < n-1; i++ {
		r := t.residue(nt[3*i : 3*i+3])
		if r == '*' {
			return "", fmt.Errorf("%w at codon %d", ErrInternalStop, i+1)
		}
		prot = append(prot, r)
	}
	return string(prot), nil
}

// Permissive translates every whole codon of nt without start or stop
// checks. A trailing partial codon is ignored.
func (t *Translator) Permissive(nt string) string {
	nt = strings.ToUpper(nt)
	n := len(nt) / 3
	prot := make([]byte, n)
	for i := 0; i < n; i++ {
		prot[i] = t.residue(nt[3*i : 3*i+3])
	}
	return string(prot)
}

// Extract joins the bases under spans in listed order, reverse-complementing
// minus-strand spans.
func Extract(seq []byte, spans []resolve.Span) (string, error) {
	var b strings.Builder
	for _, s := range spans {
		if s.Start < 0 || s.End > len(seq) {
			return "", fmt.Errorf("%w (%d..%d, length %d)", ErrOutOfRange, s.Start+1, s.End, len(seq))
		}
		part := string(seq[s.Start:s.End])
		if s.Strand == gff3.Reverse {
			part = transform.ReverseComplement(strings.ToUpper(part))
		}
		b.WriteString(part)
	}
	return b.String(), nil
}
