// Package ascii renders a component's link registry as plain text arrows.
//
// Each component becomes a block: a header naming it, then one line per
// registry entry in insertion order.
//
//	---- Barn Roof ----
//	Barn Roof <--200W-- Blue Tesla
//	Barn Roof --150W--> Red Golf
//	Barn Roof <--1000W--> Garden Solar Grid
//
// A component without links gets a single "|-- no connection --|" line.
package ascii

import (
	"bufio"
	"fmt"
	"io"

	"github.com/matzehuels/gridlink/pkg/grid"
)

// Header returns the block header for c.
func Header(c *grid.Component) string {
	return fmt.Sprintf("---- %s ----", c.Name())
}

// Line formats one registry entry of c.
// Directions outside the defined set produce "{name} <-- unknown -->".
func Line(c *grid.Component, l grid.Link) string {
	switch l.Config.Direction {
	case grid.SourceToTarget:
		return fmt.Sprintf("%s --%dW--> %s", c.Name(), l.Config.Power, l.Peer.Name())
	case grid.TargetToSource:
		return fmt.Sprintf("%s <--%dW-- %s", c.Name(), l.Config.Power, l.Peer.Name())
	case grid.BothWays:
		return fmt.Sprintf("%s <--%dW--> %s", c.Name(), l.Config.Power, l.Peer.Name())
	default:
		return fmt.Sprintf("%s <-- unknown -->", c.Name())
	}
}

// NoConnection is the line emitted for a component with an empty registry.
func NoConnection(c *grid.Component) string {
	return fmt.Sprintf("%s |-- no connection --|", c.Name())
}

// Lines renders c as a header followed by its link lines.
func Lines(c *grid.Component) []string {
	links := c.Links()
	out := make([]string, 0, len(links)+1)
	out = append(out, Header(c))
	if len(links) == 0 {
		return append(out, NoConnection(c))
	}
	for _, l := range links {
		out = append(out, Line(c, l))
	}
	return out
}

// Render writes the block for c to w, one line per entry.
func Render(w io.Writer, c *grid.Component) error {
	bw := bufio.NewWriter(w)
	for _, line := range Lines(c) {
		if _, err := fmt.Fprintln(bw, line); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// RenderAll writes one block per component, separated by blank lines.
func RenderAll(w io.Writer, components []*grid.Component) error {
	for i, c := range components {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := Render(w, c); err != nil {
			return fmt.Errorf("render %s: %w", c.Name(), err)
		}
	}
	return nil
}
