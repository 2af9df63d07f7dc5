package main

import (
	"errors"

	"github.com/google/uuid"
	"github.com/martinemde/brainfuck/bfparser"
)

// Report is the JSON document written for each parsed input.
type Report struct {
	ID      string                `json:"id"`
	Source  string                `json:"source"`
	OK      bool                  `json:"ok"`
	Count   int                   `json:"count"`
	Depth   int                   `json:"depth"`
	Stats   map[bfparser.Kind]int `json:"stats,omitempty"`
	Program bfparser.Program      `json:"program,omitempty"`
	Lint    []string              `json:"lint,omitempty"`
	Error   *ReportError          `json:"error,omitempty"`
}

// ReportError describes a failed parse.
type ReportError struct {
	Kind      string `json:"kind"`
	Offset    int    `json:"offset"`
	Remaining string `json:"remaining"`
	Message   string `json:"message"`
}

// Error kinds reported in ReportError.Kind.
const (
	errKindUnterminatedLoop = "unterminated_loop"
	errKindTrailingInput    = "trailing_input"
	errKindValidation       = "validation"
)

// newReport builds the report for one input. parseErr and lintErr are the
// results of Parse and ValidateOrError; either one marks the input failed.
func newReport(source string, prog bfparser.Program, parseErr, lintErr error, diags []bfparser.Diagnostic) Report {
	r := Report{
		ID:     uuid.New().String(),
		Source: source,
	}
	if parseErr != nil {
		r.Error = newReportError(parseErr)
		return r
	}
	r.OK = lintErr == nil
	if lintErr != nil {
		r.Error = newReportError(lintErr)
	}
	r.Count = prog.Count()
	r.Depth = prog.Depth()
	r.Stats = prog.Stats()
	r.Program = prog
	for _, d := range diags {
		r.Lint = append(r.Lint, d.String())
	}
	return r
}

func newReportError(err error) *ReportError {
	re := &ReportError{Message: err.Error()}

	var le *bfparser.UnterminatedLoopError
	var te *bfparser.TrailingInputError
	var ve *bfparser.ValidationError
	switch {
	case errors.As(err, &le):
		re.Kind = errKindUnterminatedLoop
		re.Offset = le.Pos.Offset
		re.Remaining = le.Remaining
	case errors.As(err, &te):
		re.Kind = errKindTrailingInput
		re.Offset = te.Pos.Offset
		re.Remaining = te.Remaining
	case errors.As(err, &ve):
		re.Kind = errKindValidation
		if len(ve.Diagnostics) > 0 {
			re.Offset = ve.Diagnostics[0].Pos.Offset
		}
	default:
		re.Kind = "unknown"
	}
	return re
}
