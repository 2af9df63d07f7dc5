package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/martinemde/brainfuck/bfparser"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// demoProgram is parsed when no input is given.
const demoProgram = "+>>+[->+<]-"

// Output formats.
const (
	formatTree   = "tree"
	formatSource = "source"
	formatJSON   = "json"
)

// input is one named source to parse.
type input struct {
	name string
	src  []byte
}

func newParseCmd(v *viper.Viper) *cobra.Command {
	parseCmd := &cobra.Command{
		Use:   "parse [file...]",
		Short: "Parse Brainfuck source and print the instruction tree",
		Long: "Parse one or more Brainfuck files and print each resulting program. " +
			"Use - to read standard input, or --expr to parse a literal program. " +
			"Trailing whitespace in files is ignored. " +
			"With no input the demo program " + demoProgram + " is parsed.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, v, args)
		},
	}
	parseCmd.Flags().StringP("expr", "e", "", "Parse this program text instead of a file")
	parseCmd.Flags().Bool("lint", false, "Run validation rules on each parsed program")
	parseCmd.Flags().Int("max-depth", 0, "Reject programs nesting loops deeper than this (0 = unlimited)")

	_ = v.BindPFlag("lint", parseCmd.Flags().Lookup("lint"))
	_ = v.BindPFlag("max_depth", parseCmd.Flags().Lookup("max-depth"))
	return parseCmd
}

func runParse(cmd *cobra.Command, v *viper.Viper, args []string) error {
	format := v.GetString("format")
	verbose := v.GetBool("verbose")
	lint := v.GetBool("lint")
	maxDepth := v.GetInt("max_depth")
	expr, _ := cmd.Flags().GetString("expr")

	var extraRules []bfparser.LintRule
	if maxDepth > 0 {
		extraRules = append(extraRules, bfparser.MaxDepthRule(maxDepth))
	}

	switch format {
	case formatTree, formatSource, formatJSON:
	default:
		return fmt.Errorf("unknown format %q (want %s, %s or %s)", format, formatTree, formatSource, formatJSON)
	}

	inputs, err := readInputs(cmd, args, expr)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()
	enc := json.NewEncoder(out)

	failed := 0
	for _, in := range inputs {
		prog, parseErr := bfparser.Parse(in.src)

		var diags []bfparser.Diagnostic
		var lintErr error
		if parseErr == nil && (lint || len(extraRules) > 0) {
			diags, lintErr = bfparser.ValidateOrError(prog, extraRules...)
		}

		if format == formatJSON {
			if err := enc.Encode(newReport(in.name, prog, parseErr, lintErr, diags)); err != nil {
				return fmt.Errorf("writing report: %w", err)
			}
		}

		if parseErr != nil {
			failed++
			fmt.Fprintf(stderr, "[parse] %s: %v\n", in.name, parseErr)
			continue
		}

		for _, d := range diags {
			fmt.Fprintf(stderr, "[lint] %s: %s\n", in.name, d)
		}
		if lintErr != nil {
			failed++
			continue
		}

		if verbose {
			fmt.Fprintf(stderr, "[parse] %s: %d instructions, depth %d\n", in.name, prog.Count(), prog.Depth())
		}

		switch format {
		case formatTree:
			if len(inputs) > 1 {
				fmt.Fprintf(out, "%s:\n", in.name)
			}
			if err := bfparser.Dump(out, prog); err != nil {
				return fmt.Errorf("writing tree: %w", err)
			}
		case formatSource:
			fmt.Fprintln(out, bfparser.Format(prog))
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d inputs failed", failed, len(inputs))
	}
	return nil
}

// readInputs resolves the sources named on the command line.
func readInputs(cmd *cobra.Command, args []string, expr string) ([]input, error) {
	if expr != "" {
		if len(args) > 0 {
			return nil, fmt.Errorf("--expr cannot be combined with file arguments")
		}
		return []input{{name: "<expr>", src: []byte(expr)}}, nil
	}
	if len(args) == 0 {
		return []input{{name: "<demo>", src: []byte(demoProgram)}}, nil
	}

	inputs := make([]input, 0, len(args))
	for _, arg := range args {
		if arg == "-" {
			src, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return nil, fmt.Errorf("reading stdin: %w", err)
			}
			inputs = append(inputs, input{name: "<stdin>", src: trimTrailingSpace(src)})
			continue
		}
		src, err := os.ReadFile(arg)
		if err != nil {
			return nil, fmt.Errorf("reading program file: %w", err)
		}
		inputs = append(inputs, input{name: arg, src: trimTrailingSpace(src)})
	}
	return inputs, nil
}

// trimTrailingSpace drops the final newline editors add to files. Leading
// bytes are kept so error offsets still match the file.
func trimTrailingSpace(src []byte) []byte {
	return bytes.TrimRight(src, " \t\r\n")
}
