package bfparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- helpers ---

func mustParse(t *testing.T, src string) Program {
	t.Helper()
	p, err := ParseString(src)
	require.NoError(t, err)
	return p
}

func diagsByRule(diags []Diagnostic, rule string) []Diagnostic {
	var out []Diagnostic
	for _, d := range diags {
		if d.Rule == rule {
			out = append(out, d)
		}
	}
	return out
}

type testRule struct {
	name string
	fn   func(Program) []Diagnostic
}

func (r *testRule) Name() string                 { return r.name }
func (r *testRule) Apply(p Program) []Diagnostic { return r.fn(p) }

// --- Validate / ValidateOrError API tests ---

func TestValidateCleanProgram(t *testing.T) {
	assert.Empty(t, Validate(mustParse(t, helloWorld)))
}

func TestValidateOrErrorIgnoresWarnings(t *testing.T) {
	diags, err := ValidateOrError(mustParse(t, "+[]"))
	require.NoError(t, err)
	assert.Len(t, diags, 1)
}

func TestValidateOrErrorReturnsErrorOnDepth(t *testing.T) {
	_, err := ValidateOrError(mustParse(t, "[[[-]]]"), MaxDepthRule(2))
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.Len(t, ve.Diagnostics, 1)
	assert.Equal(t, "max_depth", ve.Diagnostics[0].Rule)
	assert.Contains(t, err.Error(), "validation failed with 1 error(s)")
}

func TestValidateWithCustomRule(t *testing.T) {
	custom := &testRule{
		name: "custom_check",
		fn: func(p Program) []Diagnostic {
			return []Diagnostic{{Rule: "custom_check", Severity: Info, Message: "custom info"}}
		},
	}
	diags := Validate(mustParse(t, "+"), custom)
	require.Len(t, diagsByRule(diags, "custom_check"), 1)
}

// --- Rule tests ---

func TestEmptyLoopRule(t *testing.T) {
	diags := diagsByRule(Validate(mustParse(t, "+[][-[]]")), "empty_loop")
	require.Len(t, diags, 2)
	assert.Equal(t, Warning, diags[0].Severity)
	assert.Equal(t, 1, diags[0].Pos.Offset)
	assert.Equal(t, 5, diags[1].Pos.Offset)
}

func TestCancellingPairRule(t *testing.T) {
	diags := diagsByRule(Validate(mustParse(t, "+-+>[<>]")), "cancelling_pair")
	require.Len(t, diags, 2)
	assert.Equal(t, 0, diags[0].Pos.Offset)
	assert.Equal(t, "+- has no effect", diags[0].Message)
	assert.Equal(t, 5, diags[1].Pos.Offset)
	assert.Equal(t, "<> has no effect", diags[1].Message)
}

func TestCancellingPairDoesNotCrossLoops(t *testing.T) {
	diags := diagsByRule(Validate(mustParse(t, "+[-]-")), "cancelling_pair")
	assert.Empty(t, diags)
}

func TestMaxDepthRule(t *testing.T) {
	tests := []struct {
		src     string
		limit   int
		offsets []int
	}{
		{"[[-]]", 2, nil},
		{"[[-]]", 1, []int{1}},
		{"[[[-]][[+]]]", 1, []int{1, 6}},
		{"+[-]", 0, []int{1}},
	}
	for _, tt := range tests {
		diags := MaxDepthRule(tt.limit).Apply(mustParse(t, tt.src))
		var offsets []int
		for _, d := range diags {
			assert.Equal(t, Error, d.Severity)
			offsets = append(offsets, d.Pos.Offset)
		}
		assert.Equal(t, tt.offsets, offsets, "src %s limit %d", tt.src, tt.limit)
	}
}

func TestDiagnosticString(t *testing.T) {
	d := Diagnostic{Rule: "empty_loop", Severity: Warning, Message: "msg", Pos: Position{Offset: 3}, Fix: "do this"}
	assert.Equal(t, "[WARNING] empty_loop: msg (offset 3) -- fix: do this", d.String())
	assert.Equal(t, "Severity(7)", Severity(7).String())
}

func TestWidth(t *testing.T) {
	assert.Equal(t, 1, width(Inc))
	assert.Equal(t, 2, width(Loop()))
	assert.Equal(t, len(rot13), width(Loop(mustParse(t, rot13)...))-2)
}
