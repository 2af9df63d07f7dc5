package bfparser

import (
	"fmt"
	"strings"
)

// Severity ranks how serious a lint finding is.
type Severity int

const (
	Error   Severity = iota // fails ValidateOrError
	Warning                 // suspicious, e.g. a loop that can never exit
	Info                    // harmless but redundant code
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "ERROR"
	case Warning:
		return "WARNING"
	case Info:
		return "INFO"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// Diagnostic is one finding, anchored at the instruction that caused it.
type Diagnostic struct {
	Rule     string // name of the rule that fired
	Severity Severity
	Message  string
	Pos      Position // offset of the instruction in canonical source
	Fix      string   // empty when there is no obvious remedy
}

func (d Diagnostic) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s: %s (%s)", d.Severity, d.Rule, d.Message, d.Pos)
	if d.Fix != "" {
		fmt.Fprintf(&b, " -- fix: %s", d.Fix)
	}
	return b.String()
}

// LintRule inspects a program and reports what it finds.
type LintRule interface {
	Name() string
	Apply(p Program) []Diagnostic
}

// ValidationError carries the Error-severity findings that failed a program.
type ValidationError struct {
	Diagnostics []Diagnostic
}

func (e *ValidationError) Error() string {
	var msgs []string
	for _, d := range e.Diagnostics {
		msgs = append(msgs, d.String())
	}
	return fmt.Sprintf("validation failed with %d error(s):\n  %s", len(e.Diagnostics), strings.Join(msgs, "\n  "))
}

// Validate applies the built-in rules, then extraRules, and collects every
// finding.
func Validate(p Program, extraRules ...LintRule) []Diagnostic {
	rules := builtInRules()
	rules = append(rules, extraRules...)

	var diagnostics []Diagnostic
	for _, rule := range rules {
		diagnostics = append(diagnostics, rule.Apply(p)...)
	}
	return diagnostics
}

// ValidateOrError is Validate plus a *ValidationError when any finding has
// Error severity. The full list comes back either way.
func ValidateOrError(p Program, extraRules ...LintRule) ([]Diagnostic, error) {
	diagnostics := Validate(p, extraRules...)

	var errs []Diagnostic
	for _, d := range diagnostics {
		if d.Severity == Error {
			errs = append(errs, d)
		}
	}
	if len(errs) > 0 {
		return diagnostics, &ValidationError{Diagnostics: errs}
	}
	return diagnostics, nil
}

func builtInRules() []LintRule {
	return []LintRule{
		emptyLoopRule{},
		cancellingPairRule{},
	}
}

// width returns the number of source bytes an instruction occupies.
func width(in Instruction) int {
	if !in.IsLoop() {
		return 1
	}
	n := 2
	for _, child := range in.Body {
		n += width(child)
	}
	return n
}

// visitSeq calls fn for every sequence in the program (the top level and each
// loop body) with the offset of the sequence's first instruction. Offsets are
// exact for parsed programs because the parser consumes nothing but symbols.
func visitSeq(seq []Instruction, offset, depth int, fn func(seq []Instruction, offset, depth int)) {
	fn(seq, offset, depth)
	for _, in := range seq {
		if in.IsLoop() {
			visitSeq(in.Body, offset+1, depth+1, fn)
		}
		offset += width(in)
	}
}

// --- Rule: empty_loop ---

type emptyLoopRule struct{}

func (emptyLoopRule) Name() string { return "empty_loop" }

func (emptyLoopRule) Apply(p Program) []Diagnostic {
	var diags []Diagnostic
	visitSeq(p, 0, 0, func(seq []Instruction, offset, _ int) {
		for _, in := range seq {
			if in.IsLoop() && len(in.Body) == 0 {
				diags = append(diags, Diagnostic{
					Rule:     "empty_loop",
					Severity: Warning,
					Message:  "loop has no body and never exits once entered",
					Pos:      Position{Offset: offset},
					Fix:      "remove the loop or give it a body",
				})
			}
			offset += width(in)
		}
	})
	return diags
}

// --- Rule: cancelling_pair ---

var inverseKinds = map[Kind]Kind{
	Increment:  Decrement,
	Decrement:  Increment,
	RightShift: LeftShift,
	LeftShift:  RightShift,
}

type cancellingPairRule struct{}

func (cancellingPairRule) Name() string { return "cancelling_pair" }

func (cancellingPairRule) Apply(p Program) []Diagnostic {
	var diags []Diagnostic
	visitSeq(p, 0, 0, func(seq []Instruction, offset, _ int) {
		for i := 0; i < len(seq); i++ {
			if i+1 < len(seq) {
				if inv, ok := inverseKinds[seq[i].Kind]; ok && seq[i+1].Kind == inv {
					diags = append(diags, Diagnostic{
						Rule:     "cancelling_pair",
						Severity: Info,
						Message:  fmt.Sprintf("%c%c has no effect", seq[i].Kind.Symbol(), inv.Symbol()),
						Pos:      Position{Offset: offset},
						Fix:      "remove both instructions",
					})
					// Skip the partner so "+-+" reports one pair, not two.
					offset += width(seq[i])
					i++
				}
			}
			offset += width(seq[i])
		}
	})
	return diags
}

// --- Rule: max_depth ---

// MaxDepthRule rejects programs whose loops nest deeper than limit.
func MaxDepthRule(limit int) LintRule { return maxDepthRule{limit: limit} }

type maxDepthRule struct{ limit int }

func (maxDepthRule) Name() string { return "max_depth" }

func (r maxDepthRule) Apply(p Program) []Diagnostic {
	var diags []Diagnostic
	visitSeq(p, 0, 0, func(seq []Instruction, offset, depth int) {
		// Report only the first loop that crosses the limit on each path.
		if depth != r.limit {
			return
		}
		for _, in := range seq {
			if in.IsLoop() {
				diags = append(diags, Diagnostic{
					Rule:     "max_depth",
					Severity: Error,
					Message:  fmt.Sprintf("loop nesting exceeds the limit of %d", r.limit),
					Pos:      Position{Offset: offset},
				})
			}
			offset += width(in)
		}
	})
	return diags
}
