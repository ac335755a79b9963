// Package pkg provides the core libraries for Gridlink.
//
// # Overview
//
// Gridlink models a small power plant: batteries and solar arrays joined by
// directed, power-rated links. Every connection is recorded on both ends, so
// each component can draw its own view of the links it takes part in.
//
//  1. [grid] - Components, link configs and the mirrored connection protocol
//  2. [io] - Plant files (TOML, YAML, JSON) and building networks from them
//  3. [render/ascii] - Per-component text diagrams
//  4. [render/nodelink] - Graphviz diagrams of the whole network
//  5. [errors] - Structured error codes shared by all packages
//
// # Architecture
//
//	Plant file (or built-in demo)
//	         ↓
//	    [io] package (decode + validate + build)
//	         ↓
//	    [grid] package (network of mirrored registries)
//	         ↓
//	    [render/ascii] or [render/nodelink]
//	         ↓
//	    Text, DOT or SVG output
//
// # Quick Start
//
//	n := grid.NewNetwork(nil)
//	tesla, _ := n.AddBattery("Blue Tesla", grid.BatteryAttributes{Cell: grid.LithiumIon, Power: 300, Year: 2023})
//	roof, _ := n.AddSolarPV("Barn Roof", grid.SolarPVAttributes{Power: 150, YearInstalled: 2020})
//	_ = n.Connect(tesla.Name(), roof.Name(), grid.LinkConfig{Direction: grid.SourceToTarget, Power: 200})
//	_ = ascii.RenderAll(os.Stdout, n.Components())
//
// [grid]: https://pkg.go.dev/github.com/matzehuels/gridlink/pkg/grid
// [io]: https://pkg.go.dev/github.com/matzehuels/gridlink/pkg/io
// [render/ascii]: https://pkg.go.dev/github.com/matzehuels/gridlink/pkg/render/ascii
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/gridlink/pkg/render/nodelink
// [errors]: https://pkg.go.dev/github.com/matzehuels/gridlink/pkg/errors
package pkg
