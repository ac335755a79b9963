package grid

import (
	"errors"
	"slices"

	"github.com/google/uuid"

	errs "github.com/matzehuels/gridlink/pkg/errors"
)

var (
	// ErrNilComponent is returned when a nil component or nil attribute
	// payload is passed where a component is required.
	ErrNilComponent = errors.New("nil component")

	// ErrSelfConnection is returned by [Connect] when the initiator and the
	// target are the same component. Self-loops are not allowed.
	ErrSelfConnection = errors.New("component cannot connect to itself")
)

// Link is one entry of a component's registry: the peer on the other end
// and the configuration as seen from the holding component.
//
// Peer is a non-owning reference. The component does not manage the peer's
// lifetime.
type Link struct {
	Peer   *Component
	Config LinkConfig
}

// Component is a node in the power graph: a battery, a solar array, or any
// other kind with an [Attributes] payload.
//
// Name and attributes are fixed at construction. The link registry starts
// empty and only grows, through [Connect]. A Component is not safe for
// concurrent mutation; see [Network] for a container that serializes it.
type Component struct {
	id    uuid.UUID
	name  string
	attrs Attributes
	links []Link
}

// NewComponent creates a component with an empty registry and a fresh
// random ID. The name must pass [errs.ValidateComponentName] and attrs must
// be non-nil.
func NewComponent(name string, attrs Attributes) (*Component, error) {
	if err := errs.ValidateComponentName(name); err != nil {
		return nil, err
	}
	if attrs == nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidComponent, ErrNilComponent, "component %q has no attributes", name)
	}
	return &Component{
		id:    uuid.New(),
		name:  name,
		attrs: attrs,
	}, nil
}

// NewBattery creates a battery component.
func NewBattery(name string, attrs BatteryAttributes) (*Component, error) {
	return NewComponent(name, attrs)
}

// NewSolarPV creates a solar array component. A zero AverageHoursInYear is
// replaced by [DefaultAverageHoursInYear].
func NewSolarPV(name string, attrs SolarPVAttributes) (*Component, error) {
	if attrs.AverageHoursInYear == 0 {
		attrs.AverageHoursInYear = DefaultAverageHoursInYear
	}
	return NewComponent(name, attrs)
}

// ID returns the component's unique identifier.
func (c *Component) ID() uuid.UUID { return c.id }

// Name returns the display name.
func (c *Component) Name() string { return c.name }

// Attributes returns the kind-specific payload.
func (c *Component) Attributes() Attributes { return c.attrs }

// Kind is shorthand for c.Attributes().Kind().
func (c *Component) Kind() Kind { return c.attrs.Kind() }

// Links returns a copy of the registry in insertion order.
func (c *Component) Links() []Link { return slices.Clone(c.links) }

// LinkCount returns the number of registry entries.
func (c *Component) LinkCount() int { return len(c.links) }

// String returns the component name.
func (c *Component) String() string { return c.name }

func (c *Component) record(peer *Component, cfg LinkConfig) {
	c.links = append(c.links, Link{Peer: peer, Config: cfg})
}
