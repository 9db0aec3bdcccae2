package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/c4dsl/c4dsl/pkg/errors"
	"github.com/c4dsl/c4dsl/pkg/pipeline"
)

// validateCommand creates the validate command for checking workspace files.
func (c *CLI) validateCommand() *cobra.Command {
	var inputFormat string

	cmd := &cobra.Command{
		Use:   "validate [file...]",
		Short: "Check that workspace files load and serialize",
		Long: `Check that workspace files load and serialize.

Each file is decoded, its element hierarchy assembled, and its DSL document
produced. Every file is checked even when an earlier one fails.`,
		Example: `  c4dsl validate bank.toml shop.yaml`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runValidate(cmd.Context(), args, inputFormat)
		},
	}

	cmd.Flags().StringVar(&inputFormat, "input-format", "", "input encoding: json, toml, yaml (default: from the file extension)")

	return cmd
}

func (c *CLI) runValidate(ctx context.Context, files []string, inputFormat string) error {
	runner := c.newRunner()

	failed := 0
	for _, file := range files {
		opts := pipeline.Options{Input: file, InputFormat: inputFormat, Logger: loggerFromContext(ctx)}
		if err := validateFile(ctx, runner, opts); err != nil {
			failed++
			printError("%s", file)
			printDetail("%s", errors.UserMessage(err))
			continue
		}
		printSuccess("%s", file)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d workspace file(s) invalid", failed, len(files))
	}
	printNextStep("Render it", "c4dsl render "+files[0])
	return nil
}

func validateFile(ctx context.Context, runner *pipeline.Runner, opts pipeline.Options) error {
	loaded, err := runner.Load(ctx, opts)
	if err != nil {
		return err
	}
	_, err = runner.Serialize(ctx, loaded.Workspace)
	return err
}
