// Package bfparser implements a parser for Brainfuck source text.
//
// Brainfuck has eight meaningful symbols: the six primitive instructions
// > < + - . , and the loop markers [ and ]. Any other byte where an
// instruction is expected ends the current sequence and, unless it closes an
// enclosing loop, fails the parse. Comments are not stripped.
//
// The parser is a hand-rolled recursive-descent parser with two layers:
//
//   - Cursor: walks the raw bytes one at a time, tracking the byte offset.
//   - Parser: dispatches on the leading byte and recurses into loop bodies,
//     building a Program (an ordered slice of Instruction values).
//
// Usage:
//
//	prog, err := bfparser.ParseString("+>>+[->+<]-")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(len(prog), prog.Depth())
//
// Failures are reported as *UnterminatedLoopError or *TrailingInputError and
// match ErrUnterminatedLoop and ErrTrailingInput with errors.Is.
//
// Validate runs lint rules over a parsed Program and reports Diagnostics such
// as empty loops or instruction pairs that cancel out.
package bfparser
