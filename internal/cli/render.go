package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/c4dsl/c4dsl/pkg/pipeline"
)

// renderOpts holds the flags of the render command.
type renderOpts struct {
	output      string
	formats     string
	inputFormat string
	identities  string
	detailed    bool
	direction   string
	scale       float64
}

// renderCommand creates the render command for writing DSL documents and diagrams.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a workspace file as DSL, DOT, SVG, PNG, PDF, JSON, TOML or YAML",
		Long: `Render a workspace file as a Structurizr-style DSL document or diagram.

The input is a workspace file in JSON, TOML or YAML. Pass "-" to read it from
stdin together with --input-format.

With a single format and no --output, the result is written to stdout. With
several formats, one file per format is written next to the input (or next to
--output), named by the format's extension.

The json, toml and yaml formats re-encode the workspace file itself, which
converts it between encodings.`,
		Example: `  # DSL to stdout
  c4dsl render bank.toml

  # DSL and an SVG diagram next to the input
  c4dsl render bank.toml -f dsl,svg

  # Left-to-right PNG with technology labels
  c4dsl render bank.yaml -f png --direction lr --detailed -o out/bank.png

  # Convert a TOML workspace to YAML
  c4dsl render bank.toml -f yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path; \"-\" for stdout")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output formats: dsl, dot, svg, png, pdf, json, toml, yaml (comma-separated)")
	cmd.Flags().StringVar(&opts.inputFormat, "input-format", "", "input encoding: json, toml, yaml (default: from the file extension)")
	cmd.Flags().StringVar(&opts.identities, "identities", pipeline.DefaultIdentities, "identity allocator: sequential, uuid")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show kind, technology and description in diagram nodes")
	cmd.Flags().StringVar(&opts.direction, "direction", "", "diagram direction: tb, bt, lr, rl")
	cmd.Flags().Float64Var(&opts.scale, "scale", pipeline.DefaultScale, "PNG scale factor")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, input string, opts renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	popts := pipeline.Options{
		Input:       input,
		Stdin:       os.Stdin,
		InputFormat: opts.inputFormat,
		Identities:  opts.identities,
		Formats:     parseFormats(opts.formats),
		Detailed:    opts.detailed,
		Direction:   opts.direction,
		Scale:       opts.scale,
		Logger:      logger,
	}

	if opts.direction != "" && !popts.NeedsDOT() {
		printWarning("--direction only affects dot, svg, png and pdf output")
	}

	result, err := c.newRunner().Execute(ctx, popts)
	if err != nil {
		return err
	}

	paths, err := writeArtifacts(result.Artifacts, popts.Formats, opts.output, input)
	if err != nil {
		return err
	}
	prog.done("rendered", "workspace", result.Workspace.Name(), "formats", len(popts.Formats))

	if len(paths) == 0 {
		return nil
	}
	printSuccess("Rendered %s", StyleTitle.Render(result.Workspace.Name()))
	printStats(result.Stats.ElementCount, result.Stats.RelationshipCount, result.Stats.ViewCount,
		result.Stats.LoadTime+result.Stats.SerializeTime+result.Stats.RenderTime)
	for _, p := range paths {
		printFile(p)
	}
	return nil
}

// writeArtifacts writes each artifact to its destination and returns the
// file paths written. A single format without an output path, or with "-",
// goes to stdout.
func writeArtifacts(artifacts map[string][]byte, formats []string, output, input string) ([]string, error) {
	if len(formats) == 1 && (output == "" || output == stdio) {
		return nil, writeArtifact(stdio, formats[0], artifacts[formats[0]])
	}
	if output == stdio {
		return nil, fmt.Errorf("cannot write %d formats to stdout", len(formats))
	}
	if input == stdio && output == "" {
		return nil, fmt.Errorf("--output is required when reading from stdin with several formats")
	}

	var paths []string
	if len(formats) == 1 {
		if err := writeArtifact(output, formats[0], artifacts[formats[0]]); err != nil {
			return nil, err
		}
		return append(paths, output), nil
	}

	base := basePath(output, input)
	for _, f := range formats {
		path := base + "." + f
		if err := writeArtifact(path, f, artifacts[f]); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeArtifact(path, format string, data []byte) error {
	out, err := openOutput(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer out.Close()

	if _, err := out.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", format, err)
	}
	// The DSL document carries no trailing newline.
	if format == pipeline.FormatDSL && !strings.HasSuffix(string(data), "\n") {
		if _, err := out.Write([]byte("\n")); err != nil {
			return fmt.Errorf("write %s: %w", format, err)
		}
	}
	return out.Close()
}
