// Package nodelink renders power networks as node-link diagrams.
//
// # Overview
//
// Where [ascii] shows one component's registry at a time, this package draws
// the whole network: components are boxes (filled by kind) and every logical
// connection is one arrow, labelled with its power.
//
//	dot := nodelink.ToDOT(network, nodelink.Options{Detailed: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// # Arrows
//
// Edges always run from the initiator of a connection to its target. The
// arrowheads follow the initiator's direction:
//
//   - SourceToTarget: dir=forward
//   - TargetToSource: dir=back
//   - BothWays: dir=both
//
// Components without links are drawn dashed.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering, so no Graphviz installation is needed.
//
// [ascii]: github.com/matzehuels/gridlink/pkg/render/ascii
package nodelink
