// Package nodelink renders workspaces as node-link diagrams.
//
// # Overview
//
// This package produces directed graph visualizations of a [dsl.Workspace]
// using Graphviz. People and leaf elements appear as boxes, software systems
// and containers that own children appear as clusters, and relationships
// become labelled arrows. It is a quick way to look at a model without a
// DSL renderer.
//
// # Usage
//
// Convert a workspace to DOT format, then render to SVG:
//
//	dot, err := nodelink.ToDOT(ws, nodelink.Options{Detailed: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// For PDF or PNG output:
//
//	pdf, err := nodelink.RenderPDF(ctx, dot)
//	png, err := nodelink.RenderPNG(ctx, dot, 2.0)  // 2x scale
//
// # Node Names
//
// DOT node names are the hierarchical paths the DSL serializer allocates
// ("a1.wa.a"), so both outputs of one workspace can be cross-referenced.
// Raw relationship endpoints keep their formatted reference and become
// implicit Graphviz nodes.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
//
// [dsl.Workspace]: github.com/c4dsl/c4dsl/pkg/dsl.Workspace
package nodelink
