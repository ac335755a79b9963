package io

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	errs "github.com/matzehuels/gridlink/pkg/errors"
	"github.com/matzehuels/gridlink/pkg/grid"
)

// Plant is the file representation of a network.
type Plant struct {
	Components  []Component  `toml:"component" yaml:"component" json:"component" validate:"dive"`
	Connections []Connection `toml:"connection,omitempty" yaml:"connection,omitempty" json:"connection,omitempty" validate:"dive"`
}

// Component is one component record. Which optional fields apply depends on Kind.
type Component struct {
	Name               string `toml:"name" yaml:"name" json:"name" validate:"required"`
	Kind               string `toml:"kind" yaml:"kind" json:"kind" validate:"required,oneof=battery solar"`
	Cell               string `toml:"cell,omitempty" yaml:"cell,omitempty" json:"cell,omitempty" validate:"required_if=Kind battery"`
	Power              int    `toml:"power" yaml:"power" json:"power"`
	Year               int    `toml:"year,omitzero" yaml:"year,omitempty" json:"year,omitempty"`
	YearInstalled      int    `toml:"year_installed,omitzero" yaml:"year_installed,omitempty" json:"year_installed,omitempty"`
	AverageHoursInYear int    `toml:"average_hours_in_year,omitzero" yaml:"average_hours_in_year,omitempty" json:"average_hours_in_year,omitempty"`
}

// Connection is one connection record, from the initiator's point of view.
type Connection struct {
	From      string `toml:"from" yaml:"from" json:"from" validate:"required"`
	To        string `toml:"to" yaml:"to" json:"to" validate:"required"`
	Direction string `toml:"direction" yaml:"direction" json:"direction" validate:"required"`
	Power     int    `toml:"power" yaml:"power" json:"power"`
}

var validate = validator.New()

// Validate checks the records' required fields. It does not check names
// against each other; [Build] reports duplicates and unknown references.
func (p *Plant) Validate() error {
	if p == nil {
		return errs.New(errs.ErrCodeInvalidPlant, "plant cannot be nil")
	}
	for i := range p.Components {
		if err := validate.Struct(&p.Components[i]); err != nil {
			return errs.Wrap(errs.ErrCodeInvalidPlant, formatValidationError(err), "component %d", i+1)
		}
	}
	for i := range p.Connections {
		if err := validate.Struct(&p.Connections[i]); err != nil {
			return errs.Wrap(errs.ErrCodeInvalidPlant, formatValidationError(err), "connection %d", i+1)
		}
	}
	return nil
}

func formatValidationError(err error) error {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	// Report the first failing field only.
	for _, e := range validationErrs {
		field := e.Field()
		switch e.Tag() {
		case "required", "required_if":
			return fmt.Errorf("%s: field is required", field)
		case "oneof":
			return fmt.Errorf("%s: must be one of [%s], got %q", field, e.Param(), e.Value())
		default:
			return fmt.Errorf("%s: validation failed (%s)", field, e.Tag())
		}
	}
	return err
}

// Attributes converts the record into the grid payload for its kind.
func (c Component) Attributes() (grid.Attributes, error) {
	switch grid.Kind(c.Kind) {
	case grid.KindBattery:
		cell, err := grid.ParseCellChemistry(c.Cell)
		if err != nil {
			return nil, err
		}
		return grid.BatteryAttributes{Cell: cell, Power: c.Power, Year: c.Year}, nil
	case grid.KindSolarPV:
		return grid.SolarPVAttributes{
			Power:              c.Power,
			YearInstalled:      c.YearInstalled,
			AverageHoursInYear: c.AverageHoursInYear,
		}, nil
	default:
		return nil, errs.New(errs.ErrCodeInvalidComponent, "unknown kind %q", c.Kind)
	}
}

// Config converts the record into a grid link configuration.
func (c Connection) Config() (grid.LinkConfig, error) {
	d, err := grid.ParseDirection(c.Direction)
	if err != nil {
		return grid.LinkConfig{}, err
	}
	return grid.LinkConfig{Direction: d, Power: c.Power}, nil
}
