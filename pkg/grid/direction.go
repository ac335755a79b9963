package grid

import (
	"fmt"
	"strings"

	errs "github.com/matzehuels/gridlink/pkg/errors"
)

// Direction is the flow orientation of a link, relative to the component
// whose registry holds the link.
//
// The zero value is not a valid direction, so a configuration that never set
// one can be told apart from a real link.
type Direction int

const (
	// SourceToTarget means power flows from the holding component to its peer.
	SourceToTarget Direction = iota + 1
	// TargetToSource means power flows from the peer into the holding component.
	TargetToSource
	// BothWays means power may flow in either direction. It is its own inverse.
	BothWays
)

var directionNames = map[Direction]string{
	SourceToTarget: "source-to-target",
	TargetToSource: "target-to-source",
	BothWays:       "both-ways",
}

// directionAliases maps normalized spellings to directions. Keys are produced
// by normalizeDirection, so "SourceToTarget", "source_to_target" and the
// human label "Source To Target" all land on the same entry.
var directionAliases = map[string]Direction{
	"source-to-target": SourceToTarget,
	"sourcetotarget":   SourceToTarget,
	"target-to-source": TargetToSource,
	"targettosource":   TargetToSource,
	"both-ways":        BothWays,
	"bothways":         BothWays,
	"both-directions":  BothWays,
}

// Valid reports whether d is one of the three defined directions.
func (d Direction) Valid() bool {
	_, ok := directionNames[d]
	return ok
}

// Invert returns the direction as seen from the other end of the link.
// SourceToTarget and TargetToSource swap, BothWays is unchanged.
// Undefined values are returned as is.
func (d Direction) Invert() Direction {
	switch d {
	case SourceToTarget:
		return TargetToSource
	case TargetToSource:
		return SourceToTarget
	default:
		return d
	}
}

// String returns the canonical kebab-case name, or "Direction(n)" for
// undefined values.
func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// MarshalText implements [encoding.TextMarshaler]. Undefined directions
// cannot be marshaled.
func (d Direction) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, errs.New(errs.ErrCodeInvalidDirection, "cannot marshal %s", d)
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] using [ParseDirection].
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseDirection parses a direction name. Matching ignores case and treats
// spaces, underscores and hyphens alike, so all of "source-to-target",
// "SourceToTarget" and "Source To Target" are accepted. "Both Directions"
// is accepted as a spelling of [BothWays].
func ParseDirection(s string) (Direction, error) {
	if d, ok := directionAliases[normalizeDirection(s)]; ok {
		return d, nil
	}
	return 0, errs.New(errs.ErrCodeInvalidDirection, "unknown direction %q", s)
}

func normalizeDirection(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer(" ", "-", "_", "-").Replace(s)
	return s
}

// LinkConfig describes one side of a link: which way power flows and how
// much of it, in watts. Power is not validated.
type LinkConfig struct {
	Direction Direction
	Power     int
}

// Inverted returns the configuration as recorded on the peer's side: the
// direction is inverted and the power is left untouched. The receiver is not
// modified.
func (c LinkConfig) Inverted() LinkConfig {
	return LinkConfig{Direction: c.Direction.Invert(), Power: c.Power}
}

// String formats the configuration as "direction@powerW".
func (c LinkConfig) String() string {
	return fmt.Sprintf("%s@%dW", c.Direction, c.Power)
}
