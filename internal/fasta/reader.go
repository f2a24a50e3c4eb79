// internal/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
)

// Record is one FASTA sequence.
type Record struct {
	ID          string
	Description string // header text after the ID, may be empty
	Seq         []byte
}

// ErrNoRecords is returned when an input holds no FASTA header.
var ErrNoRecords = errors.New("no FASTA records found")

// ReadFile loads every record of path ("-" for stdin, gzip allowed).
func ReadFile(ctx context.Context, path string) ([]Record, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	recs, err := Read(ctx, rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return recs, nil
}

// Read loads every record from r. Sequence lines before the first header
// are an error; blank lines are ignored.
func Read(ctx context.Context, r io.Reader) ([]Record, error) {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		list []Record
		cur  = -1
		ln   int
	)
	for sc.Scan() {
		ln++
		if ln%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			id, desc := parseHeader(line[1:])
			list = append(list, Record{ID: id, Description: desc})
			cur = len(list) - 1
			continue
		}
		if cur < 0 {
			return nil, fmt.Errorf("line %d: sequence data before first header", ln)
		}
		list[cur].Seq = append(list[cur].Seq, bytes.ToUpper(line)...)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("fasta scan: %w", err)
	}
	if len(list) == 0 {
		return nil, ErrNoRecords
	}
	return list, nil
}

func parseHeader(hdr []byte) (id, desc string) {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i]), string(bytes.TrimSpace(hdr[i+1:]))
	}
	return string(hdr), ""
}
