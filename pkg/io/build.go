package io

import (
	"github.com/charmbracelet/log"

	errs "github.com/matzehuels/gridlink/pkg/errors"
	"github.com/matzehuels/gridlink/pkg/grid"
)

// Build validates p and turns it into a network. Components are added in
// record order, then connections are applied in record order. Connection
// log lines go to logger at debug level; a nil logger discards them.
//
// The first failing record aborts the build; the error names it by its
// 1-based position and wraps the underlying grid error.
func Build(p *Plant, logger *log.Logger) (*grid.Network, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	n := grid.NewNetwork(logger)
	for i, rec := range p.Components {
		if err := addComponent(n, rec); err != nil {
			return nil, errs.Wrap(errs.ErrCodeInvalidPlant, err, "component %d (%s)", i+1, rec.Name)
		}
	}
	for i, rec := range p.Connections {
		cfg, err := rec.Config()
		if err == nil {
			err = n.Connect(rec.From, rec.To, cfg)
		}
		if err != nil {
			return nil, errs.Wrap(errs.ErrCodeInvalidPlant, err, "connection %d (%s -> %s)", i+1, rec.From, rec.To)
		}
	}
	return n, nil
}

func addComponent(n *grid.Network, rec Component) error {
	attrs, err := rec.Attributes()
	if err != nil {
		return err
	}
	switch a := attrs.(type) {
	case grid.BatteryAttributes:
		_, err = n.AddBattery(rec.Name, a)
	case grid.SolarPVAttributes:
		_, err = n.AddSolarPV(rec.Name, a)
	}
	return err
}

// FromNetwork describes n as a plant. Building the result yields a network
// with the same components, connections and registry order.
func FromNetwork(n *grid.Network) *Plant {
	p := &Plant{}
	for _, c := range n.Components() {
		rec := Component{Name: c.Name(), Kind: string(c.Kind())}
		switch a := c.Attributes().(type) {
		case grid.BatteryAttributes:
			rec.Cell = a.Cell.String()
			rec.Power = a.Power
			rec.Year = a.Year
		case grid.SolarPVAttributes:
			rec.Power = a.Power
			rec.YearInstalled = a.YearInstalled
			rec.AverageHoursInYear = a.AverageHoursInYear
		}
		p.Components = append(p.Components, rec)
	}
	for _, conn := range n.Connections() {
		p.Connections = append(p.Connections, Connection{
			From:      conn.From.Name(),
			To:        conn.To.Name(),
			Direction: conn.Config.Direction.String(),
			Power:     conn.Config.Power,
		})
	}
	return p
}
