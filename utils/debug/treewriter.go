// Package debug provides a small indentation-based writer for rendering
// tree-shaped structures as human-readable listings.
package debug

import (
	"fmt"
	"strconv"
	"strings"
)

// TreeWriter accumulates indented lines. Depth is expressed in levels of
// two spaces.
type TreeWriter struct {
	w *strings.Builder
}

func NewTreeWriter() *TreeWriter {
	return &TreeWriter{
		w: &strings.Builder{},
	}
}

func (tw TreeWriter) String() string {
	return tw.w.String()
}

// Line writes one formatted line at the given depth.
func (tw TreeWriter) Line(depth int, format string, args ...any) {
	tw.indent(depth)
	fmt.Fprintf(tw.w, format, args...)
	tw.w.WriteByte('\n')
}

// Quoted writes a "label: value" line with the value quoted and escaped,
// so embedded newlines and quotes stay on one line. Empty values are
// written bare to keep listings compact.
func (tw TreeWriter) Quoted(depth int, label, value string) {
	tw.indent(depth)
	tw.w.WriteString(label)
	tw.w.WriteString(": ")
	if value != "" {
		tw.w.WriteString(strconv.Quote(value))
	}
	tw.w.WriteByte('\n')
}

func (tw TreeWriter) indent(depth int) {
	for range depth {
		tw.w.WriteString("  ")
	}
}
