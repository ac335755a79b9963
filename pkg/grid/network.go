package grid

import (
	"errors"
	"slices"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	errs "github.com/matzehuels/gridlink/pkg/errors"
)

var (
	// ErrDuplicateName is returned by [Network.Add] when a component with the
	// same name is already present. Names are unique within a network.
	ErrDuplicateName = errors.New("duplicate component name")

	// ErrUnknownComponent is returned by [Network.Connect] when either name
	// is not in the network, and by [Network.Validate] when a link points
	// outside it.
	ErrUnknownComponent = errors.New("unknown component")

	// ErrBrokenMirror is returned by [Network.Validate] when a registry entry
	// has no matching inverted entry on its peer.
	ErrBrokenMirror = errors.New("link has no mirrored entry")
)

// Connection is one logical connection, as requested by the initiator.
type Connection struct {
	From   *Component
	To     *Component
	Config LinkConfig
}

// Stats summarizes a network.
type Stats struct {
	Components  int
	Connections int
	Links       int // registry entries across all components; twice Connections
}

// Network is an ordered collection of uniquely named components together
// with the log of connections made between them.
//
// Add and Connect take a single lock over the whole network, so concurrent
// callers cannot interleave the two registry writes of one connection.
// The zero value is not usable; use [NewNetwork].
type Network struct {
	mu          sync.Mutex
	connector   *Connector
	components  []*Component
	byName      map[string]*Component
	byID        map[uuid.UUID]*Component
	connections []Connection
}

// NewNetwork creates an empty network whose connections are logged to
// logger at debug level. A nil logger discards output.
func NewNetwork(logger *log.Logger) *Network {
	return &Network{
		connector: NewConnector(logger),
		byName:    make(map[string]*Component),
		byID:      make(map[uuid.UUID]*Component),
	}
}

// Add appends a component. Components keep the order in which they were added.
func (n *Network) Add(c *Component) error {
	if c == nil {
		return errs.Wrap(errs.ErrCodeInvalidComponent, ErrNilComponent, "add to network")
	}
	n.mu.Lock()
	defer n.mu.Unlock()

	if _, exists := n.byName[c.name]; exists {
		return errs.Wrap(errs.ErrCodeDuplicateComponent, ErrDuplicateName, "component %q", c.name)
	}
	n.components = append(n.components, c)
	n.byName[c.name] = c
	n.byID[c.id] = c
	return nil
}

// AddBattery creates a battery with [NewBattery] and adds it.
func (n *Network) AddBattery(name string, attrs BatteryAttributes) (*Component, error) {
	c, err := NewBattery(name, attrs)
	if err != nil {
		return nil, err
	}
	if err := n.Add(c); err != nil {
		return nil, err
	}
	return c, nil
}

// AddSolarPV creates a solar array with [NewSolarPV] and adds it.
func (n *Network) AddSolarPV(name string, attrs SolarPVAttributes) (*Component, error) {
	c, err := NewSolarPV(name, attrs)
	if err != nil {
		return nil, err
	}
	if err := n.Add(c); err != nil {
		return nil, err
	}
	return c, nil
}

// Component returns the component with the given name.
func (n *Network) Component(name string) (*Component, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	c, ok := n.byName[name]
	return c, ok
}

// ComponentByID returns the component with the given ID.
func (n *Network) ComponentByID(id uuid.UUID) (*Component, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	c, ok := n.byID[id]
	return c, ok
}

// Components returns the components in insertion order.
func (n *Network) Components() []*Component {
	n.mu.Lock()
	defer n.mu.Unlock()
	return slices.Clone(n.components)
}

// Connections returns the logical connections in the order they were made.
func (n *Network) Connections() []Connection {
	n.mu.Lock()
	defer n.mu.Unlock()
	return slices.Clone(n.connections)
}

// Connect connects the components named from and to. See [Connector.Connect]
// for the registry semantics.
func (n *Network) Connect(from, to string, cfg LinkConfig) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	src, ok := n.byName[from]
	if !ok {
		return errs.Wrap(errs.ErrCodeUnknownComponent, ErrUnknownComponent, "source %q", from)
	}
	dst, ok := n.byName[to]
	if !ok {
		return errs.Wrap(errs.ErrCodeUnknownComponent, ErrUnknownComponent, "target %q", to)
	}
	if err := n.connector.Connect(src, dst, cfg); err != nil {
		return err
	}
	n.connections = append(n.connections, Connection{From: src, To: dst, Config: cfg})
	return nil
}

// Stats returns component, connection and registry entry counts.
func (n *Network) Stats() Stats {
	n.mu.Lock()
	defer n.mu.Unlock()
	s := Stats{Components: len(n.components), Connections: len(n.connections)}
	for _, c := range n.components {
		s.Links += len(c.links)
	}
	return s
}

// Validate checks that every registry entry (B, cfg) on a component A is
// matched by an entry (A, cfg.Inverted()) on B, with the same multiplicity,
// and that every peer belongs to the network.
//
// Returns ErrUnknownComponent or ErrBrokenMirror wrapped in an
// [errs.ErrCodeInternal] error. Runs in O(L) where L is the total number of
// registry entries.
func (n *Network) Validate() error {
	n.mu.Lock()
	defer n.mu.Unlock()

	type key struct {
		holder, peer *Component
		cfg          LinkConfig
	}
	counts := make(map[key]int)
	for _, c := range n.components {
		for _, l := range c.links {
			if n.byName[l.Peer.name] != l.Peer {
				return errs.Wrap(errs.ErrCodeInternal, ErrUnknownComponent, "%s links to %s", c, l.Peer)
			}
			counts[key{c, l.Peer, l.Config}]++
		}
	}
	for k, count := range counts {
		if counts[key{k.peer, k.holder, k.cfg.Inverted()}] != count {
			return errs.Wrap(errs.ErrCodeInternal, ErrBrokenMirror, "%s -> %s (%s)", k.holder, k.peer, k.cfg)
		}
	}
	return nil
}
