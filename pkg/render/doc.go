// Package render groups the output formats for power networks.
//
// # Overview
//
//   - [ascii]: one text block per component listing its links, in registry order
//   - [nodelink]: Graphviz DOT source and in-process SVG for a whole network
//
// Renderers only read component state. They never modify registries.
//
//	lines := ascii.Lines(component)
//	dot := nodelink.ToDOT(network, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(dot)
//
// [ascii]: github.com/matzehuels/gridlink/pkg/render/ascii
// [nodelink]: github.com/matzehuels/gridlink/pkg/render/nodelink
package render
