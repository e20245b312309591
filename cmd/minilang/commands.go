package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kolkov/minilang"
)

// analyze: full pipeline
func newAnalyzeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze [file]",
		Short: "Analyze a MiniLang program and write the reports",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, opts, args)
		},
	}
}

// tokens: print the transcript only
func newTokensCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens [file]",
		Short: "Print the token transcript of a MiniLang program",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts, args)
			if err != nil {
				return err
			}
			src, err := readInput(cfg)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, tok := range minilang.Tokenize(string(src)) {
				fmt.Fprintln(out, tok)
			}
			return nil
		},
	}
}

// ast: print the parse tree
func newASTCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "ast [file]",
		Short: "Print the parse tree of a MiniLang program",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts, args)
			if err != nil {
				return err
			}
			src, err := readInput(cfg)
			if err != nil {
				return err
			}
			return minilang.PrintTree(cmd.OutOrStdout(), string(src))
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the minilang version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			v := version
			if v == "dev" {
				v = minilang.Version + "-dev"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "minilang version %s (commit: %s, built: %s)\n", v, commit, date)
		},
	}
}

// readInput loads cfg.Input, defaulting to program.mini.
func readInput(cfg *minilang.Config) ([]byte, error) {
	path := cfg.Input
	if path == "" {
		path = "program.mini"
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, &minilang.SourceError{Path: path, Err: err}
	}
	return src, nil
}
