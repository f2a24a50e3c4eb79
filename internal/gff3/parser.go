// internal/gff3/parser.go
package gff3

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const maxLine = 1 << 20

// ParseFile reads every record of a GFF3 file in file order.
func ParseFile(path string) ([]Record, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()
	return Parse(fh, path)
}

// Parse reads records from r. name is only used in error messages.
// Lines starting with '#' and blank lines are skipped; any other line must
// have exactly nine tab-separated columns or the whole parse fails.
func Parse(r io.Reader, name string) ([]Record, error) {
	var list []Record
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	ln := 0
	for sc.Scan() {
		ln++
		raw := sc.Text()
		if strings.HasPrefix(raw, "#") {
			continue
		}
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		rec, err := parseLine(line)
		if err != nil {
			return nil, &MalformedRecordError{Path: name, Line: ln, Reason: err.Error()}
		}
		rec.Line = ln
		list = append(list, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

func parseLine(line string) (Record, error) {
	f := strings.Split(line, "\t")
	if len(f) != numFields {
		return Record{}, fmt.Errorf("expected %d tab-separated columns, got %d", numFields, len(f))
	}
	rec := Record{
		SeqID:      f[FieldSeqid],
		Source:     f[FieldSource],
		Type:       f[FieldType],
		Attributes: f[FieldAttributes],
	}
	var err error
	if rec.Start, err = strconv.Atoi(f[FieldStart]); err != nil {
		return Record{}, fmt.Errorf("bad start %q", f[FieldStart])
	}
	if rec.End, err = strconv.Atoi(f[FieldEnd]); err != nil {
		return Record{}, fmt.Errorf("bad end %q", f[FieldEnd])
	}
	if s := f[FieldScore]; s != "." {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Record{}, fmt.Errorf("bad score %q", s)
		}
		rec.Score = &v
	}
	switch f[FieldStrand] {
	case "+":
		rec.Strand = Forward
	case "-":
		rec.Strand = Reverse
	default:
		return Record{}, fmt.Errorf("bad strand %q (want + or -)", f[FieldStrand])
	}
	if p := f[FieldPhase]; p != "." {
		v, err := strconv.Atoi(p)
		if err != nil {
			return Record{}, fmt.Errorf("bad phase %q", p)
		}
		rec.Phase = &v
	}
	return rec, nil
}
