package bfparser

import "fmt"

// Position tracks a source location for error messages.
type Position struct {
	Offset int // 0-based byte offset into source
}

func (p Position) String() string { return fmt.Sprintf("offset %d", p.Offset) }

// Kind discriminates the Instruction tagged union.
type Kind int

const (
	RightShift Kind = iota // >
	LeftShift              // <
	Increment              // +
	Decrement              // -
	Output                 // .
	Input                  // ,
	LoopKind               // [ ... ]
)

var kindNames = map[Kind]string{
	RightShift: "RightShift",
	LeftShift:  "LeftShift",
	Increment:  "Increment",
	Decrement:  "Decrement",
	Output:     "Output",
	Input:      "Input",
	LoopKind:   "Loop",
}

var kindSymbols = map[Kind]byte{
	RightShift: '>',
	LeftShift:  '<',
	Increment:  '+',
	Decrement:  '-',
	Output:     '.',
	Input:      ',',
	LoopKind:   '[',
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Symbol returns the source byte that introduces an instruction of this kind.
// Loops report their opening bracket. Unknown kinds return 0.
func (k Kind) Symbol() byte {
	return kindSymbols[k]
}

// Instruction is one node of a parsed program. Body is populated only when
// Kind == LoopKind.
type Instruction struct {
	Kind Kind
	Body []Instruction
}

// Leaf instructions carry no data, so a single value of each serves every use.
var (
	MoveRight = Instruction{Kind: RightShift}
	MoveLeft  = Instruction{Kind: LeftShift}
	Inc       = Instruction{Kind: Increment}
	Dec       = Instruction{Kind: Decrement}
	Out       = Instruction{Kind: Output}
	In        = Instruction{Kind: Input}
)

// Loop builds a loop instruction around body.
func Loop(body ...Instruction) Instruction {
	return Instruction{Kind: LoopKind, Body: body}
}

// IsLoop reports whether the instruction is a loop.
func (in Instruction) IsLoop() bool { return in.Kind == LoopKind }

func (in Instruction) String() string {
	return Format(Program{in})
}

// Program is a fully parsed top-level source unit.
type Program []Instruction

// Walk visits every instruction in pre-order. depth is 0 for top-level
// instructions and grows by one inside each loop. Returning false from fn
// skips the body of that instruction.
func (p Program) Walk(fn func(in Instruction, depth int) bool) {
	walk(p, 0, fn)
}

func walk(seq []Instruction, depth int, fn func(Instruction, int) bool) {
	for _, in := range seq {
		if fn(in, depth) && in.IsLoop() {
			walk(in.Body, depth+1, fn)
		}
	}
}

// Depth returns the maximum loop nesting depth, 0 for a program without loops.
func (p Program) Depth() int {
	deepest := 0
	p.Walk(func(in Instruction, depth int) bool {
		if in.IsLoop() && depth+1 > deepest {
			deepest = depth + 1
		}
		return true
	})
	return deepest
}

// Count returns the total number of instructions, counting loops and
// everything nested inside them.
func (p Program) Count() int {
	n := 0
	p.Walk(func(Instruction, int) bool {
		n++
		return true
	})
	return n
}

// Stats returns the number of instructions of each kind.
func (p Program) Stats() map[Kind]int {
	stats := make(map[Kind]int)
	p.Walk(func(in Instruction, _ int) bool {
		stats[in.Kind]++
		return true
	})
	return stats
}

func (p Program) String() string { return Format(p) }
