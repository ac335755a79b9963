package grid

import (
	"io"

	"github.com/charmbracelet/log"

	errs "github.com/matzehuels/gridlink/pkg/errors"
)

// Connector registers connections between components and reports each leg
// to its logger.
type Connector struct {
	logger *log.Logger
}

// NewConnector returns a Connector that logs at debug level to logger.
// A nil logger discards all output.
func NewConnector(logger *log.Logger) *Connector {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Connector{logger: logger}
}

var defaultConnector = NewConnector(nil)

// Connect registers a link from initiator to target using a connector that
// does not log. See [Connector.Connect].
func Connect(initiator, target *Component, cfg LinkConfig) error {
	return defaultConnector.Connect(initiator, target, cfg)
}

// Connect records one logical connection as two registry entries:
// (initiator, cfg.Inverted()) on target, then (target, cfg) on initiator.
//
// It fails without touching either registry when a component is nil or when
// initiator and target are the same component. Duplicate connections and
// non-positive power are accepted.
func (c *Connector) Connect(initiator, target *Component, cfg LinkConfig) error {
	if initiator == nil || target == nil {
		return errs.Wrap(errs.ErrCodeInvalidComponent, ErrNilComponent, "connect requires two components")
	}
	if initiator == target {
		return errs.Wrap(errs.ErrCodeInvalidConnection, ErrSelfConnection, "connect %s to %s", initiator, target)
	}

	c.logger.Debugf("connecting %s to %s", initiator, target)
	c.logger.Debugf("accepting connection from %s to %s", initiator, target)
	target.record(initiator, cfg.Inverted())
	initiator.record(target, cfg)
	return nil
}
