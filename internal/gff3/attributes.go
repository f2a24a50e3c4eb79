package gff3

import (
	"fmt"
	"strconv"
	"strings"
)

// Attributes holds the two column-9 keys the annotator consumes.
type Attributes struct {
	Target   string   // first token of Target, "" when absent
	Identity *float64 // nil when absent
}

// ParseAttributes decodes a ';'-separated key=value list. Unknown keys are
// ignored; a segment without '=' is an error.
func ParseAttributes(s string) (Attributes, error) {
	var a Attributes
	if s == "." || s == "" {
		return a, nil
	}
	for _, kv := range strings.Split(s, ";") {
		if kv == "" {
			continue
		}
		key, val, ok := strings.Cut(kv, "=")
		if !ok {
			return Attributes{}, fmt.Errorf("attribute %q is not key=value", kv)
		}
		switch key {
		case "Target":
			tok, _, _ := strings.Cut(val, " ")
			a.Target = tok
		case "Identity":
			v, err := strconv.ParseFloat(val, 64)
			if err != nil {
				return Attributes{}, fmt.Errorf("bad Identity %q", val)
			}
			a.Identity = &v
		}
	}
	return a, nil
}

// SplitProduct splits a Target identifier such as "HA_H3" into the product
// name and the subtype label. The subtype is the second '_' token; further
// tokens are ignored.
func SplitProduct(target string) (name, subtype string) {
	parts := strings.Split(target, "_")
	name = parts[0]
	if len(parts) > 1 {
		subtype = parts[1]
	}
	return name, subtype
}
