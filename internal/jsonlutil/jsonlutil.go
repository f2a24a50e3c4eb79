// internal/jsonlutil/jsonlutil.go
package jsonlutil

import (
	"bufio"
	"encoding/json"
	"io"
)

const bufSize = 64 << 10

// Encode writes one JSON line per item, converting each with conv first.
// Errors recognized by isBroken (closed pipes) are swallowed.
func Encode[T, W any](out io.Writer, items []T, conv func(T) W, isBroken func(error) bool) error {
	bw := bufio.NewWriterSize(out, bufSize)
	enc := json.NewEncoder(bw)
	for _, it := range items {
		if err := enc.Encode(conv(it)); err != nil {
			return quiet(err, isBroken)
		}
	}
	return quiet(bw.Flush(), isBroken)
}

func quiet(err error, isBroken func(error) bool) error {
	if err != nil && isBroken != nil && isBroken(err) {
		return nil
	}
	return err
}
