package cli

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/mvp-joe/flowgen/internal/scan"
	"github.com/mvp-joe/flowgen/pkg/workflow"
	"github.com/spf13/cobra"
)

var listRecursiveFlag bool

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list [<path>]",
	Short: "List the workflow definitions discovered under a path",
	Long: `List the workflow definitions registered by the files under a path,
without serializing them. Defaults to the current directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVarP(&listRecursiveFlag, "recursive", "r", false, "Recursively traverse an input folder")
}

func runList(cmd *cobra.Command, args []string) error {
	source := "."
	if len(args) == 1 {
		source = args[0]
	}

	paths, err := scan.Expand(source, scan.Options{Recursive: listRecursiveFlag})
	if err != nil {
		return err
	}
	sort.Strings(paths)

	registry := workflow.Default()
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	total := 0
	for _, path := range paths {
		for _, r := range registry.DefinedIn(path) {
			m, err := r.Build()
			if err != nil {
				return fmt.Errorf("building definition from %s: %w", path, err)
			}
			name := m.Metadata.Name
			if name == "" {
				name = m.Metadata.GenerateName + "*"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", path, m.Kind, name)
			total++
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if total == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No workflow definitions found")
	}
	return nil
}
