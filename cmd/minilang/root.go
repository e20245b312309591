package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/kolkov/minilang"
)

// options holds the persistent flag values.
type options struct {
	configFile string
	outDir     string
	entry      string
	scoping    string
	detailed   bool
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "minilang [file]",
		Short: "MiniLang semantic analyzer and report generator",
		Long: `minilang analyzes a MiniLang program and writes its reports:

  tokens.txt             token transcript
  globalVariables.txt    global declarations
  functions.txt          one block per function
  localVariables.txt     local declarations
  controlStructures.txt  if, while and for statements
  errors.txt             lexical, syntax and semantic errors

Without a subcommand it behaves like "analyze". Settings are read from
minilang.yaml when present; flags override the file.

Commands:
  analyze  Run the full analysis and write the reports
  tokens   Print the token transcript
  ast      Print the parse tree
  version  Print the version
`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, opts, args)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.configFile, "config", "c", "", "configuration file (default \"minilang.yaml\" if present)")
	flags.StringVarP(&opts.outDir, "out", "o", "", "output directory for the reports (default \".\")")
	flags.StringVarP(&opts.entry, "entry", "e", "", "entry point function name (default \"main\")")
	flags.StringVar(&opts.scoping, "scoping", "", "local scoping: flat or nested (default \"flat\")")
	flags.BoolVarP(&opts.detailed, "detailed", "d", false, "report the offending symbol of front-end errors")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "report each written file on stderr")

	rootCmd.AddCommand(
		newAnalyzeCmd(opts),
		newTokensCmd(opts),
		newASTCmd(opts),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute runs the minilang command line.
func Execute() error {
	return newRootCmd().Execute()
}

// loadConfig resolves the configuration for a command: the --config
// file or minilang.yaml if it exists, then flags that were set on the
// command line, then the positional file argument.
func loadConfig(cmd *cobra.Command, opts *options, args []string) (*minilang.Config, error) {
	cfg := &minilang.Config{}

	path := opts.configFile
	if path == "" {
		if _, err := os.Stat(minilang.DefaultConfigFile); err == nil {
			path = minilang.DefaultConfigFile
		}
	}
	if path != "" {
		loaded, err := minilang.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("out") {
		cfg.OutputDir = opts.outDir
	}
	if flags.Changed("entry") {
		cfg.EntryPoint = opts.entry
	}
	if flags.Changed("scoping") {
		cfg.Scoping = opts.scoping
	}
	if flags.Changed("detailed") {
		cfg.Detailed = opts.detailed
	}
	if flags.Changed("verbose") {
		cfg.Verbose = opts.verbose
	}
	if len(args) > 0 {
		cfg.Input = args[0]
	}

	cfg.Stdout = cmd.OutOrStdout()
	cfg.Stderr = cmd.ErrOrStderr()
	return cfg, nil
}

// runAnalyze runs the full pipeline. Failing to save the reports is
// reported as a warning; the analysis itself still succeeded.
func runAnalyze(cmd *cobra.Command, opts *options, args []string) error {
	cfg, err := loadConfig(cmd, opts, args)
	if err != nil {
		return err
	}

	_, err = minilang.Run(cfg)
	var outErr *minilang.OutputError
	if errors.As(err, &outErr) {
		cmd.PrintErrf("minilang: warning: %v\n", outErr)
		return nil
	}
	return err
}
