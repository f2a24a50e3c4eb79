// internal/genbank/writer.go
package genbank

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"ganflu/internal/record"
	"ganflu/internal/resolve"
)

const (
	headerIndent  = 12 // DEFINITION, ORGANISM continuation lines
	featureIndent = 21 // qualifiers
	lineWidth     = 80
	qualWidth     = lineWidth - featureIndent - 1
	basesPerLine  = 60
)

// Write serializes genomes as GenBank flatfile records.
func Write(w io.Writer, genomes []record.Genome) error {
	bw := bufio.NewWriter(w)
	for i := range genomes {
		writeRecord(bw, &genomes[i])
	}
	return bw.Flush()
}

func writeRecord(w *bufio.Writer, g *record.Genome) {
	a := g.Annotations
	fmt.Fprintf(w, "LOCUS       %-16s %11d bp    %-7s %-8s %s %s\n",
		g.Name, len(g.Seq), a.MoleculeType, a.Topology, a.DataFileDivision, a.Date)
	writeHeader(w, "DEFINITION", withPeriod(g.Description))
	writeHeader(w, "ACCESSION", g.ID)
	writeHeader(w, "VERSION", g.ID)
	writeHeader(w, "KEYWORDS", ".")
	writeHeader(w, "SOURCE", a.Source)
	writeHeader(w, "  ORGANISM", a.Organism)
	if len(a.Taxonomy) > 0 {
		for _, l := range wrapWords(strings.Join(a.Taxonomy, "; ")+".", lineWidth-headerIndent) {
			fmt.Fprintf(w, "%s%s\n", strings.Repeat(" ", headerIndent), l)
		}
	}
	fmt.Fprintln(w, "FEATURES             Location/Qualifiers")
	for _, f := range g.Features {
		writeFeature(w, f)
	}
	fmt.Fprintln(w, "ORIGIN")
	writeOrigin(w, g.Seq)
	fmt.Fprintln(w, "//")
}

func writeHeader(w *bufio.Writer, key, text string) {
	lines := wrapWords(text, lineWidth-headerIndent)
	if len(lines) == 0 {
		lines = []string{""}
	}
	fmt.Fprintf(w, "%-*s%s\n", headerIndent, key, lines[0])
	for _, l := range lines[1:] {
		fmt.Fprintf(w, "%s%s\n", strings.Repeat(" ", headerIndent), l)
	}
}

func writeFeature(w *bufio.Writer, f *resolve.Feature) {
	pad := strings.Repeat(" ", featureIndent)
	loc := Location(f.Spans)
	locLines := wrapAt(loc, ',', qualWidth)
	fmt.Fprintf(w, "     %-16s%s\n", f.Type, locLines[0])
	for _, l := range locLines[1:] {
		fmt.Fprintf(w, "%s%s\n", pad, l)
	}
	writeQualifier(w, "product", f.Product)
	if f.Slippage {
		fmt.Fprintf(w, "%s/ribosomal_slippage\n", pad)
	}
	for _, n := range f.Notes {
		writeQualifier(w, "note", n)
	}
	if f.Translation != "" {
		q := `/translation="` + f.Translation + `"`
		for i := 0; i < len(q); i += qualWidth {
			end := min(i+qualWidth, len(q))
			fmt.Fprintf(w, "%s%s\n", pad, q[i:end])
		}
	}
}

func writeQualifier(w *bufio.Writer, key, value string) {
	q := "/" + key + `="` + strings.ReplaceAll(value, `"`, `""`) + `"`
	for _, l := range wrapWords(q, qualWidth) {
		fmt.Fprintf(w, "%s%s\n", strings.Repeat(" ", featureIndent), l)
	}
}

func writeOrigin(w *bufio.Writer, seq []byte) {
	for i := 0; i < len(seq); i += basesPerLine {
		fmt.Fprintf(w, "%9d", i+1)
		end := min(i+basesPerLine, len(seq))
		for j := i; j < end; j += 10 {
			fmt.Fprintf(w, " %s", strings.ToLower(string(seq[j:min(j+10, end)])))
		}
		fmt.Fprintln(w)
	}
}

func withPeriod(s string) string {
	if strings.HasSuffix(s, ".") {
		return s
	}
	return s + "."
}

// wrapWords breaks s at spaces into lines of at most width bytes. Words
// longer than width are split.
func wrapWords(s string, width int) []string {
	var lines []string
	var cur strings.Builder
	for _, word := range strings.Fields(s) {
		for len(word) > width {
			if cur.Len() > 0 {
				lines = append(lines, cur.String())
				cur.Reset()
			}
			lines = append(lines, word[:width])
			word = word[width:]
		}
		if cur.Len() > 0 && cur.Len()+1+len(word) > width {
			lines = append(lines, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteByte(' ')
		}
		cur.WriteString(word)
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}

// wrapAt breaks s after sep so lines stay within width where possible.
func wrapAt(s string, sep byte, width int) []string {
	var lines []string
	for len(s) > width {
		cut := strings.LastIndexByte(s[:width], sep)
		if cut < 0 {
			break
		}
		lines = append(lines, s[:cut+1])
		s = s[cut+1:]
	}
	return append(lines, s)
}
