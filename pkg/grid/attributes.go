package grid

import (
	"fmt"
	"strconv"
	"strings"

	errs "github.com/matzehuels/gridlink/pkg/errors"
)

// Kind names the type of a component.
type Kind string

const (
	// KindBattery is an electric storage component such as a car battery.
	KindBattery Kind = "battery"
	// KindSolarPV is a photovoltaic array.
	KindSolarPV Kind = "solar"
)

// DefaultAverageHoursInYear is used by [NewSolarPV] when no annual sunlight
// figure is given.
const DefaultAverageHoursInYear = 5000

// Field is one labelled attribute value, used by renderers that show
// component details.
type Field struct {
	Key   string
	Value string
}

// Attributes is the per-kind payload carried by a component. The set of
// implementations is closed: [BatteryAttributes] and [SolarPVAttributes].
// The connection protocol and renderers never look inside it.
type Attributes interface {
	// Kind reports which component kind the payload belongs to.
	Kind() Kind
	// Fields lists the attribute values in a stable display order.
	Fields() []Field

	isAttributes()
}

// CellChemistry is the cell technology of a battery.
type CellChemistry int

const (
	// LithiumIon is a lithium-ion battery pack.
	LithiumIon CellChemistry = iota + 1
	// FuelCell is a hydrogen fuel cell.
	FuelCell
)

var cellNames = map[CellChemistry]string{
	LithiumIon: "Lithium-ion",
	FuelCell:   "Fuel Cell",
}

// String returns the human label, e.g. "Lithium-ion".
func (c CellChemistry) String() string {
	if name, ok := cellNames[c]; ok {
		return name
	}
	return fmt.Sprintf("CellChemistry(%d)", int(c))
}

// ParseCellChemistry parses a cell label, ignoring case and the separators
// between words ("lithium-ion", "Lithium Ion" and "LION" are all accepted).
func ParseCellChemistry(s string) (CellChemistry, error) {
	switch strings.NewReplacer(" ", "", "-", "", "_", "").Replace(strings.ToLower(s)) {
	case "lithiumion", "lion", "liion":
		return LithiumIon, nil
	case "fuelcell", "fuel":
		return FuelCell, nil
	}
	return 0, errs.New(errs.ErrCodeInvalidComponent, "unknown battery cell %q", s)
}

// MarshalText implements [encoding.TextMarshaler].
func (c CellChemistry) MarshalText() ([]byte, error) {
	if _, ok := cellNames[c]; !ok {
		return nil, errs.New(errs.ErrCodeInvalidComponent, "cannot marshal %s", c)
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (c *CellChemistry) UnmarshalText(text []byte) error {
	parsed, err := ParseCellChemistry(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// BatteryAttributes describes a battery component.
type BatteryAttributes struct {
	Cell  CellChemistry
	Power int // rated power in watts
	Year  int // model year
}

// Kind returns [KindBattery].
func (BatteryAttributes) Kind() Kind { return KindBattery }
func (BatteryAttributes) isAttributes() {}

// Fields returns cell, power and year.
func (a BatteryAttributes) Fields() []Field {
	return []Field{
		{Key: "cell", Value: a.Cell.String()},
		{Key: "power", Value: strconv.Itoa(a.Power) + "W"},
		{Key: "year", Value: strconv.Itoa(a.Year)},
	}
}

// SolarPVAttributes describes a photovoltaic array.
type SolarPVAttributes struct {
	Power              int // peak power in watts
	YearInstalled      int
	AverageHoursInYear int // average sunlight hours per year
}

// Kind returns [KindSolarPV].
func (SolarPVAttributes) Kind() Kind { return KindSolarPV }
func (SolarPVAttributes) isAttributes() {}

// Fields returns power, installation year and sun hours.
func (a SolarPVAttributes) Fields() []Field {
	return []Field{
		{Key: "power", Value: strconv.Itoa(a.Power) + "W"},
		{Key: "installed", Value: strconv.Itoa(a.YearInstalled)},
		{Key: "sun hours", Value: strconv.Itoa(a.AverageHoursInYear)},
	}
}
