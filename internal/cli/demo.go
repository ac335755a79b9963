package cli

import (
	"github.com/matzehuels/gridlink/pkg/grid"
	gio "github.com/matzehuels/gridlink/pkg/io"
)

// DemoPlant returns the farm used when no plant file is given: three cars and
// two solar arrays. Component order is the render order.
func DemoPlant() *gio.Plant {
	return &gio.Plant{
		Components: []gio.Component{
			{Name: "Blue Tesla", Kind: string(grid.KindBattery), Cell: grid.LithiumIon.String(), Power: 300, Year: 2023},
			{Name: "Red Golf", Kind: string(grid.KindBattery), Cell: grid.FuelCell.String(), Power: 210, Year: 2021},
			{Name: "Barn Roof", Kind: string(grid.KindSolarPV), Power: 150, YearInstalled: 2020, AverageHoursInYear: 1500},
			{Name: "Garden Solar Grid", Kind: string(grid.KindSolarPV), Power: 1200, YearInstalled: 2015, AverageHoursInYear: 1350},
			{Name: "Green Volvo", Kind: string(grid.KindBattery), Cell: grid.FuelCell.String(), Power: 210, Year: 2021},
		},
		Connections: []gio.Connection{
			{From: "Blue Tesla", To: "Barn Roof", Direction: grid.SourceToTarget.String(), Power: 200},
			{From: "Red Golf", To: "Barn Roof", Direction: grid.TargetToSource.String(), Power: 150},
			{From: "Barn Roof", To: "Garden Solar Grid", Direction: grid.BothWays.String(), Power: 1000},
		},
	}
}
