package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/gridlink/pkg/grid"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed includes the component kind and attributes in node labels.
	// When false, only the name is shown.
	Detailed bool
}

var kindFill = map[grid.Kind]string{
	grid.KindBattery: "lightblue",
	grid.KindSolarPV: "lightyellow",
}

// ToDOT converts a network to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG].
//
// Components appear in insertion order. Each logical connection becomes one
// edge from initiator to target, labelled with its power; the arrowheads
// follow the direction as recorded by the initiator.
func ToDOT(n *grid.Network, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=18, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  edge [fontsize=14];\n")
	buf.WriteString("\n")

	for _, c := range n.Components() {
		fmt.Fprintf(&buf, "  %q [%s];\n", c.Name(), strings.Join(fmtAttrs(c, opts.Detailed), ", "))
	}

	buf.WriteString("\n")
	for _, conn := range n.Connections() {
		fmt.Fprintf(&buf, "  %q -> %q [label=%q, dir=%s];\n",
			conn.From.Name(), conn.To.Name(), fmt.Sprintf("%dW", conn.Config.Power), edgeDir(conn.Config.Direction))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func edgeDir(d grid.Direction) string {
	switch d {
	case grid.SourceToTarget:
		return "forward"
	case grid.TargetToSource:
		return "back"
	case grid.BothWays:
		return "both"
	default:
		return "none"
	}
}

func fmtLabel(c *grid.Component, detailed bool) string {
	if !detailed {
		return c.Name()
	}

	parts := []string{"kind: " + string(c.Kind())}
	for _, f := range c.Attributes().Fields() {
		parts = append(parts, f.Key+": "+f.Value)
	}
	return c.Name() + "\n" + strings.Join(parts, "\n")
}

func fmtAttrs(c *grid.Component, detailed bool) []string {
	attrs := []string{fmt.Sprintf("label=%q", fmtLabel(c, detailed))}
	if fill, ok := kindFill[c.Kind()]; ok {
		attrs = append(attrs, "fillcolor="+fill)
	}
	if c.LinkCount() == 0 {
		attrs = append(attrs, "style=\"rounded,filled,dashed\"")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root element so the SVG scales from a
// zero origin with pixel width and height equal to the view box.
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

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(root))
}
