package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// newRootCmd builds the command tree with its own viper instance so that
// flag and environment state never leaks between invocations.
func newRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("BFPARSE")
	v.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:          "bfparse",
		Short:        "Brainfuck parser",
		Long:         "bfparse parses Brainfuck source into an instruction tree and prints it.",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringP("format", "f", formatTree, "Output format: tree, source or json")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")

	_ = v.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	_ = v.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.AddCommand(newParseCmd(v))
	return rootCmd
}
