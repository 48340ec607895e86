package cli

import (
	"fmt"
	"os"

	"github.com/mvp-joe/flowgen/internal/config"
	"github.com/mvp-joe/flowgen/internal/generate"
	"github.com/spf13/cobra"
)

var (
	generateToFlag        string
	generateRecursiveFlag bool
	generateExcludeFlag   []string
	generateQuietFlag     bool
)

// generateCmd groups the per-format generation subcommands.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate manifests from workflow definition files",
}

// generateYamlCmd represents the generate yaml command
var generateYamlCmd = &cobra.Command{
	Use:   "yaml <path>",
	Short: "Generate YAML manifests from workflow definitions",
	Long: `Generate YAML from workflow definitions registered by Go source files.

The path may be a single file or a folder. For a folder, every .go file that
registered at least one workflow contributes a document; files registering
none are skipped. Without --to, all documents are joined with a '---' line
and written to stdout. With --to, a folder source mirrors each contributing
file into the destination folder as <name>.yaml, and a file source writes
directly to the destination path.

Examples:
  # Print every workflow defined under ./workflows
  flowgen generate yaml ./workflows

  # Mirror a folder of definitions into ./manifests
  flowgen generate yaml ./workflows --to ./manifests --recursive

  # Convert a single definition file
  flowgen generate yaml ./workflows/nightly.go --to nightly.yaml
`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerateYaml,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.AddCommand(generateYamlCmd)

	generateYamlCmd.Flags().StringVar(&generateToFlag, "to", "", "Destination path. A file when <path> is a file, a folder when <path> is a folder. Defaults to stdout.")
	generateYamlCmd.Flags().BoolVarP(&generateRecursiveFlag, "recursive", "r", false, "Recursively traverse an input folder")
	generateYamlCmd.Flags().StringArrayVar(&generateExcludeFlag, "exclude", nil, "Glob pattern to skip, relative to the source folder (repeatable)")
	generateYamlCmd.Flags().BoolVarP(&generateQuietFlag, "quiet", "q", false, "Suppress progress output")
}

func runGenerateYaml(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(".")
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	opts := generate.Options{
		Source:    args[0],
		To:        generateToFlag,
		Recursive: generateRecursiveFlag,
		Exclude:   generateExcludeFlag,
		Out:       cmd.OutOrStdout(),
	}

	// Flags win over config, config over defaults.
	if !cmd.Flags().Changed("to") && cfg.Output.Dir != "" {
		opts.To = cfg.Output.Dir
	}
	if !cmd.Flags().Changed("recursive") {
		opts.Recursive = cfg.Scan.Recursive
	}
	if !cmd.Flags().Changed("exclude") {
		opts.Exclude = cfg.Scan.Exclude
	}

	if opts.To != "" && !generateQuietFlag {
		opts.Progress = NewWriteProgressReporter(generateQuietFlag)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Generating from %s (recursive=%t)\n", opts.Source, opts.Recursive)
	}

	return generate.Run(opts)
}
