// Package render converts rendered diagrams between image formats.
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg). The [nodelink] subpackage
// produces the SVG from a workspace:
//
//	dot, err := nodelink.ToDOT(ws, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0)  // 2x scale
//
// A missing rsvg-convert binary is reported as an UNSUPPORTED error.
//
// [nodelink]: github.com/c4dsl/c4dsl/pkg/render/nodelink
package render
