package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/c4dsl/c4dsl/pkg/dsl"
	"github.com/c4dsl/c4dsl/pkg/errors"
	"github.com/c4dsl/c4dsl/pkg/model"
	"github.com/c4dsl/c4dsl/pkg/render"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed adds the element kind, technology and description to node
	// labels, and the technology to edge labels. When false, only names
	// and relationship descriptions are shown.
	Detailed bool

	// Direction is the rank direction. The zero value lays out top to bottom.
	Direction dsl.AutoLayout
}

// ToDOT converts a workspace to Graphviz DOT format.
//
// Nodes are named by the same hierarchical paths the DSL uses, so a DOT node
// "a1.wa" is the container the DSL refers to as a1.wa. Systems and containers
// that own children become clusters. External elements are drawn dashed on a
// grey fill.
func ToDOT(ws *dsl.Workspace, opts Options) (string, error) {
	ix, err := ws.Index()
	if err != nil {
		return "", err
	}
	d := &dotWriter{ix: ix, opts: opts, clusters: make(map[string]string)}

	d.line(0, "digraph G {")
	d.line(1, "rankdir=%s;", rankDir(opts.Direction))
	d.line(1, "bgcolor=\"transparent\";")
	d.line(1, "compound=true;")
	d.line(1, "node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];")
	d.line(1, "ranksep=0.5;")
	d.line(1, "nodesep=0.3;")
	d.buf.WriteString("\n")

	for _, p := range ws.People() {
		d.node(1, p, "shape=ellipse")
	}
	for _, s := range ws.Systems() {
		d.system(s)
	}

	if len(ws.Relationships()) > 0 {
		d.buf.WriteString("\n")
	}
	for _, r := range ws.Relationships() {
		d.edge(r)
	}

	d.line(0, "}")
	return d.buf.String(), nil
}

type dotWriter struct {
	buf      bytes.Buffer
	ix       *dsl.Index
	opts     Options
	clusters map[string]string
}

func (d *dotWriter) line(depth int, format string, args ...any) {
	d.buf.WriteString(strings.Repeat("  ", depth))
	fmt.Fprintf(&d.buf, format, args...)
	d.buf.WriteString("\n")
}

func (d *dotWriter) path(e model.Identifiable) string {
	a, _ := d.ix.Lookup(e.Identity())
	return a.Path
}

func (d *dotWriter) node(depth int, e model.Identifiable, extra ...string) {
	attrs := fmtAttrs(e, fmtLabel(e, d.opts.Detailed))
	fmt.Fprintf(&d.buf, "%s%q [%s];\n", strings.Repeat("  ", depth), d.path(e), strings.Join(append(attrs, extra...), ", "))
}

func (d *dotWriter) system(s *model.SoftwareSystem) {
	if len(s.Containers()) == 0 {
		d.node(1, s)
		return
	}
	path := d.path(s)
	d.openCluster(1, s, path)
	for _, c := range s.Containers() {
		d.container(c)
	}
	d.line(1, "}")
}

func (d *dotWriter) container(c *model.Container) {
	if len(c.Components()) == 0 {
		d.node(2, c)
		return
	}
	path := d.path(c)
	d.openCluster(2, c, path)
	for _, cp := range c.Components() {
		d.node(3, cp)
	}
	d.line(2, "}")
}

// openCluster starts a cluster for e. Graphviz cannot attach edges to a
// cluster, so an invisible anchor node named by e's path stands in for it
// and edges are clipped to the cluster border with lhead/ltail.
func (d *dotWriter) openCluster(depth int, e model.Identifiable, path string) {
	name := "cluster_" + path
	d.clusters[path] = name
	d.line(depth, "subgraph %q {", name)
	d.line(depth+1, "label=%q;", fmtLabel(e, d.opts.Detailed))
	if e.Location() == model.External {
		d.line(depth+1, "style=\"rounded,dashed\";")
	} else {
		d.line(depth+1, "style=\"rounded\";")
	}
	d.line(depth+1, "%q [shape=point, style=invis];", path)
}

func (d *dotWriter) edge(r *model.Relationship) {
	src := d.ix.Resolve(r.Source())
	dst := d.ix.Resolve(r.Target())

	label := r.Description()
	if d.opts.Detailed && r.Technology() != "" {
		label += "\n[" + r.Technology() + "]"
	}
	attrs := []string{fmt.Sprintf("label=%q", label)}
	switch r.InteractionStyle() {
	case model.Asynchronous:
		attrs = append(attrs, "style=dashed")
	case model.Bidirectional:
		attrs = append(attrs, "dir=both")
	}
	if c, ok := d.clusters[src]; ok {
		attrs = append(attrs, fmt.Sprintf("ltail=%q", c))
	}
	if c, ok := d.clusters[dst]; ok {
		attrs = append(attrs, fmt.Sprintf("lhead=%q", c))
	}
	d.line(1, "%q -> %q [%s];", src, dst, strings.Join(attrs, ", "))
}

func rankDir(a dsl.AutoLayout) string {
	switch a {
	case dsl.AutoLayoutBottomTop:
		return "BT"
	case dsl.AutoLayoutLeftRight:
		return "LR"
	case dsl.AutoLayoutRightLeft:
		return "RL"
	}
	return "TB"
}

var kindLabels = map[model.ElementKind]string{
	model.KindPerson:         "Person",
	model.KindSoftwareSystem: "Software System",
	model.KindContainer:      "Container",
	model.KindComponent:      "Component",
}

type technologist interface {
	Technology() string
}

func fmtLabel(e model.Identifiable, detailed bool) string {
	if !detailed {
		return e.Name()
	}

	kind := kindLabels[e.Kind()]
	if t, ok := e.(technologist); ok && t.Technology() != "" {
		kind += ": " + t.Technology()
	}
	return e.Name() + "\n[" + kind + "]\n" + e.Description()
}

func fmtAttrs(e model.Identifiable, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if e.Location() == model.External {
		attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey", "fontcolor=black")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF] or [render.ToPNG].
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render")
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(ctx, svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
// A scale of 2.0 produces a 2x resolution image suitable for high-DPI displays.
func RenderPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(ctx, svg, scale)
}
