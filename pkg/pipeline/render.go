package pipeline

import (
	"bytes"
	"context"
	"fmt"

	"github.com/c4dsl/c4dsl/pkg/dsl"
	wsio "github.com/c4dsl/c4dsl/pkg/io"
	"github.com/c4dsl/c4dsl/pkg/render"
	"github.com/c4dsl/c4dsl/pkg/render/nodelink"
)

// Render generates output artifacts in the requested formats.
//
// The DOT source and the SVG are computed at most once and shared by the
// formats derived from them.
func Render(ctx context.Context, loaded *Loaded, doc string, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))

	var dot string
	var svg []byte
	if opts.NeedsDOT() {
		var err error
		dot, err = nodelink.ToDOT(loaded.Workspace, nodelink.Options{
			Detailed:  opts.Detailed,
			Direction: dsl.AutoLayout(opts.Direction),
		})
		if err != nil {
			return nil, fmt.Errorf("render dot: %w", err)
		}
	}

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatDSL:
			data = []byte(doc)
		case FormatDOT:
			data = []byte(dot)
		case FormatSVG, FormatPNG, FormatPDF:
			if svg == nil {
				if svg, err = nodelink.RenderSVG(ctx, dot); err != nil {
					break
				}
			}
			switch format {
			case FormatSVG:
				data = svg
			case FormatPNG:
				data, err = render.ToPNG(ctx, svg, opts.Scale)
			case FormatPDF:
				data, err = render.ToPDF(ctx, svg)
			}
		case FormatJSON, FormatTOML, FormatYAML:
			data, err = encodeFile(loaded.File, wsio.Format(format))
		default:
			return nil, fmt.Errorf("unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

func encodeFile(f *wsio.File, format wsio.Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := wsio.Encode(&buf, f, format); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
