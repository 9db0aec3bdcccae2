package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/c4dsl/c4dsl/pkg/dsl"
	"github.com/c4dsl/c4dsl/pkg/pipeline"
)

// idsCommand creates the ids command that lists allocated identifiers.
func (c *CLI) idsCommand() *cobra.Command {
	var (
		inputFormat string
		plain       bool
	)

	cmd := &cobra.Command{
		Use:   "ids [file]",
		Short: "List the DSL identifier of every element",
		Long: `List the DSL identifier of every element in a workspace file.

Rows appear in the order the serializer visits elements. The path column is
the hierarchical reference used in relationships and views.`,
		Example: `  c4dsl ids bank.toml
  c4dsl ids bank.toml --plain | cut -f1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runIDs(cmd.Context(), os.Stdout, args[0], inputFormat, plain)
		},
	}

	cmd.Flags().StringVar(&inputFormat, "input-format", "", "input encoding: json, toml, yaml (default: from the file extension)")
	cmd.Flags().BoolVar(&plain, "plain", false, "print tab-separated rows without a table")

	return cmd
}

func (c *CLI) runIDs(ctx context.Context, w io.Writer, input, inputFormat string, plain bool) error {
	opts := pipeline.Options{
		Input:       input,
		Stdin:       os.Stdin,
		InputFormat: inputFormat,
		Logger:      loggerFromContext(ctx),
	}
	index, err := c.newRunner().Index(ctx, opts)
	if err != nil {
		return err
	}

	if plain {
		for _, a := range index.Allocations {
			fmt.Fprintf(w, "%s\t%s\t%s\n", a.Path, a.Kind, a.Name)
		}
		return nil
	}
	fmt.Fprintln(w, idsTable(index))
	return nil
}

// idsTable renders the allocations as a bordered table.
func idsTable(index *dsl.Index) string {
	rows := make([][]string, 0, len(index.Allocations))
	for _, a := range index.Allocations {
		rows = append(rows, []string{a.Path, string(a.Kind), a.Name})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Path", "Kind", "Name").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			if col == 1 {
				return styleCellDim
			}
			return styleCell
		})

	return t.String()
}
