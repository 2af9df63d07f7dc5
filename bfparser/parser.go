package bfparser

import (
	"fmt"
	"unicode/utf8"
)

// Parse parses Brainfuck source and returns the Program it describes.
// The whole input must be consumed. Returns an *UnterminatedLoopError or a
// *TrailingInputError on failure, never a partial Program.
func Parse(src []byte) (Program, error) {
	p := &parser{cur: newCursor(src)}
	return p.parseProgram()
}

// ParseString is Parse for string input.
func ParseString(src string) (Program, error) {
	return Parse([]byte(src))
}

type parser struct {
	cur *cursor
}

func (p *parser) parseProgram() (Program, error) {
	seq, err := p.parseSequence()
	if err != nil {
		return nil, err
	}

	// Anything left over could not start an instruction at top level.
	if !p.cur.atEnd() {
		return nil, p.trailingInput()
	}
	return Program(seq), nil
}

// parseSequence collects instructions until the next byte cannot start one.
// The byte that stops it is left unconsumed for the caller.
func (p *parser) parseSequence() ([]Instruction, error) {
	var seq []Instruction
	for {
		in, ok, err := p.parseInstruction()
		if err != nil {
			return nil, err
		}
		if !ok {
			return seq, nil
		}
		seq = append(seq, in)
	}
}

// parseInstruction parses one leaf or loop. ok is false, with nothing
// consumed, when the next byte does not start an instruction.
func (p *parser) parseInstruction() (Instruction, bool, error) {
	if p.cur.atEnd() {
		return Instruction{}, false, nil
	}

	ch := p.cur.peek()
	if kind, ok := leafKind(ch); ok {
		p.cur.advance()
		return Instruction{Kind: kind}, true, nil
	}
	if ch == '[' {
		in, err := p.parseLoop()
		if err != nil {
			return Instruction{}, false, err
		}
		return in, true, nil
	}
	return Instruction{}, false, nil
}

// leafKind maps a primitive instruction symbol to its kind.
func leafKind(ch byte) (Kind, bool) {
	switch ch {
	case '>':
		return RightShift, true
	case '<':
		return LeftShift, true
	case '+':
		return Increment, true
	case '-':
		return Decrement, true
	case '.':
		return Output, true
	case ',':
		return Input, true
	default:
		return 0, false
	}
}

// parseLoop parses '[' Sequence ']'.
func (p *parser) parseLoop() (Instruction, error) {
	open := p.cur.position()
	p.cur.advance() // consume [

	body, err := p.parseSequence()
	if err != nil {
		return Instruction{}, err
	}

	if p.cur.atEnd() || p.cur.peek() != ']' {
		return Instruction{}, &UnterminatedLoopError{
			ParseError: ParseError{
				Message:   fmt.Sprintf("expected ']' to close loop opened at %s, got %s", open, p.describeNext()),
				Pos:       p.cur.position(),
				Remaining: p.cur.rest(),
				Cause:     ErrUnterminatedLoop,
			},
			Open: open,
		}
	}
	p.cur.advance() // consume ]

	return Loop(body...), nil
}

func (p *parser) trailingInput() error {
	msg := fmt.Sprintf("unexpected character %s", p.describeNext())
	if p.cur.peek() == ']' {
		msg = "unmatched ']'"
	}
	return &TrailingInputError{ParseError{
		Message:   msg,
		Pos:       p.cur.position(),
		Remaining: p.cur.rest(),
		Cause:     ErrTrailingInput,
	}}
}

func (p *parser) describeNext() string {
	if p.cur.atEnd() {
		return "EOF"
	}
	r, _ := utf8.DecodeRune(p.cur.src[p.cur.pos:])
	return fmt.Sprintf("%q", r)
}
