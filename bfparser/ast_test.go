package bfparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind   Kind
		name   string
		symbol byte
	}{
		{RightShift, "RightShift", '>'},
		{LeftShift, "LeftShift", '<'},
		{Increment, "Increment", '+'},
		{Decrement, "Decrement", '-'},
		{Output, "Output", '.'},
		{Input, "Input", ','},
		{LoopKind, "Loop", '['},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.name, tt.kind.String())
		assert.Equal(t, tt.symbol, tt.kind.Symbol(), tt.name)
	}
	assert.Equal(t, "unknown", Kind(99).String())
	assert.Zero(t, Kind(99).Symbol())
}

func TestProgramDepth(t *testing.T) {
	tests := []struct {
		src   string
		depth int
	}{
		{"", 0},
		{"+-", 0},
		{"[]", 1},
		{"[][]", 1},
		{"[[]]", 2},
		{"[[-]+[[.]]]", 3},
	}
	for _, tt := range tests {
		prog, err := ParseString(tt.src)
		require.NoError(t, err, tt.src)
		assert.Equal(t, tt.depth, prog.Depth(), tt.src)
	}
}

func TestProgramCountAndStats(t *testing.T) {
	prog, err := ParseString("+>>+[->+<]-")
	require.NoError(t, err)

	assert.Equal(t, 10, prog.Count())
	assert.Equal(t, map[Kind]int{
		Increment:  3,
		RightShift: 3,
		LeftShift:  1,
		Decrement:  2,
		LoopKind:   1,
	}, prog.Stats())
}

func TestProgramWalkOrder(t *testing.T) {
	prog := Program{Inc, Loop(Dec, Loop(Out)), In}

	type visit struct {
		kind  Kind
		depth int
	}
	var got []visit
	prog.Walk(func(in Instruction, depth int) bool {
		got = append(got, visit{in.Kind, depth})
		return true
	})

	assert.Equal(t, []visit{
		{Increment, 0},
		{LoopKind, 0},
		{Decrement, 1},
		{LoopKind, 1},
		{Output, 2},
		{Input, 0},
	}, got)
}

func TestProgramWalkSkipsBody(t *testing.T) {
	prog := Program{Loop(Inc, Inc), Dec}

	var kinds []Kind
	prog.Walk(func(in Instruction, _ int) bool {
		kinds = append(kinds, in.Kind)
		return false
	})
	assert.Equal(t, []Kind{LoopKind, Decrement}, kinds)
}

func TestInstructionString(t *testing.T) {
	assert.Equal(t, "+", Inc.String())
	assert.Equal(t, "[->+<]", Loop(Dec, MoveRight, Inc, MoveLeft).String())
	assert.Equal(t, "[]", Loop().String())
}
