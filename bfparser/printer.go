package bfparser

import (
	"fmt"
	"io"
	"strings"
)

// Format returns canonical source text for p. Parsing the result yields a
// Program equal to p. Instructions with a kind the parser never produces
// have no symbol and are left out.
func Format(p Program) string {
	var sb strings.Builder
	writeSource(&sb, p)
	return sb.String()
}

func writeSource(sb *strings.Builder, seq []Instruction) {
	for _, in := range seq {
		if in.IsLoop() {
			sb.WriteByte('[')
			writeSource(sb, in.Body)
			sb.WriteByte(']')
			continue
		}
		if sym := in.Kind.Symbol(); sym != 0 {
			sb.WriteByte(sym)
		}
	}
}

// Dump writes p as an indented tree, one instruction per line. Loop bodies
// are indented two spaces deeper than their loop.
func Dump(w io.Writer, p Program) error {
	var err error
	p.Walk(func(in Instruction, depth int) bool {
		if err != nil {
			return false
		}
		indent := strings.Repeat("  ", depth)
		if in.IsLoop() {
			_, err = fmt.Fprintf(w, "%sLoop (%d)\n", indent, len(in.Body))
		} else {
			_, err = fmt.Fprintf(w, "%s%s\n", indent, in.Kind)
		}
		return err == nil
	})
	return err
}
