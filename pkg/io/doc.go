// Package io reads and writes plant files: declarative descriptions of a
// power network's components and the connections between them.
//
// # Formats
//
// TOML, YAML and JSON carry the same structure; [DetectFormat] picks one from
// the file extension. A TOML plant looks like:
//
//	[[component]]
//	name = "Blue Tesla"
//	kind = "battery"
//	cell = "Lithium-ion"
//	power = 300
//	year = 2023
//
//	[[component]]
//	name = "Barn Roof"
//	kind = "solar"
//	power = 150
//	year_installed = 2020
//	average_hours_in_year = 1500
//
//	[[connection]]
//	from = "Blue Tesla"
//	to = "Barn Roof"
//	direction = "source-to-target"
//	power = 200
//
// # Component Fields
//
// Required:
//   - name: Unique display name
//   - kind: "battery" or "solar"
//   - cell: Battery cell chemistry ("Lithium-ion", "Fuel Cell"), batteries only
//
// Optional:
//   - power: Rated power in watts
//   - year: Battery model year
//   - year_installed, average_hours_in_year: Solar arrays only
//     (average_hours_in_year defaults to 5000)
//
// # Connection Fields
//
// from, to and direction are required. direction accepts any spelling
// understood by [grid.ParseDirection]. power is in watts and is not checked.
//
// # Building
//
// [Build] validates the records, then adds components and applies
// connections in file order, so registry order in the resulting network
// matches the file. [FromNetwork] goes the other way for export.
//
//	plant, err := io.Load("plant.toml")
//	net, err := io.Build(plant, logger)
//
// Errors carry the [errs.ErrCodeInvalidPlant] code and name the offending
// record.
//
// [errs.ErrCodeInvalidPlant]: github.com/matzehuels/gridlink/pkg/errors
package io
