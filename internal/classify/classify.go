// Package classify groups a host's network interfaces into loopback,
// private and public buckets from collected host facts.
//
// A Classifier holds only read-only collaborators. Every call to Classify
// builds its own buckets, so a Classifier can be reused and shared.
package classify

import (
	"go.uber.org/zap"

	"github.com/HerbHall/netclass/pkg/ipspace"
	"github.com/HerbHall/netclass/pkg/models"
)

// Outcome is what happened to one discovered interface.
type Outcome string

const (
	OutcomeLoopback   Outcome = "loopback"
	OutcomePrivate    Outcome = "private"
	OutcomePublic     Outcome = "public"
	OutcomeNoIPv4     Outcome = "skipped_no_ipv4"
	OutcomeInactive   Outcome = "skipped_inactive"
	OutcomeUnroutable Outcome = "dropped_unroutable"
)

// Group returns the bucket an outcome lands in, if any.
func (o Outcome) Group() (models.InterfaceGroup, bool) {
	switch o {
	case OutcomeLoopback:
		return models.GroupLoopback, true
	case OutcomePrivate:
		return models.GroupPrivate, true
	case OutcomePublic:
		return models.GroupPublic, true
	}
	return "", false
}

// Observer is notified of each interface outcome after a successful
// classification. Nothing is reported for a failed call.
type Observer interface {
	Observe(device string, outcome Outcome)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(device string, outcome Outcome)

func (f ObserverFunc) Observe(device string, outcome Outcome) { f(device, outcome) }

// Option configures a Classifier.
type Option func(*Classifier)

// WithLogger sets the logger used for per-interface debug output.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Classifier) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithObserver registers an observer for interface outcomes.
func WithObserver(o Observer) Option {
	return func(c *Classifier) {
		if o != nil {
			c.observers = append(c.observers, o)
		}
	}
}

// WithRegistry replaces the embedded address registry.
func WithRegistry(r *ipspace.Registry) Option {
	return func(c *Classifier) {
		if r != nil {
			c.registry = r
		}
	}
}

// Classifier sorts interfaces into groups.
type Classifier struct {
	logger    *zap.Logger
	registry  *ipspace.Registry
	observers []Observer
}

// New creates a Classifier.
func New(opts ...Option) *Classifier {
	c := &Classifier{
		logger:   zap.NewNop(),
		registry: ipspace.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify runs a default Classifier over facts.
func Classify(facts *models.Facts) (*models.InterfaceGroups, error) {
	return New().Classify(facts)
}

// Classify discovers the interfaces described in facts and groups every
// active interface with an IPv4 address. Any failure discards the whole
// result.
func (c *Classifier) Classify(facts *models.Facts) (*models.InterfaceGroups, error) {
	descs, err := discover(facts)
	if err != nil {
		return nil, &Error{Kind: ErrDiscovery, Err: err}
	}

	type result struct {
		device  string
		outcome Outcome
	}
	results := make([]result, 0, len(descs))
	groups := models.NewInterfaceGroups()

	for _, d := range descs {
		outcome, rec, err := c.evaluate(d)
		if err != nil {
			return nil, &Error{Kind: ErrEvaluation, Device: d.device, Err: err}
		}
		if group, ok := outcome.Group(); ok {
			groups.Add(group, rec)
		}
		results = append(results, result{device: d.device, outcome: outcome})
	}

	for _, r := range results {
		c.logger.Debug("interface evaluated",
			zap.String("device", r.device),
			zap.String("outcome", string(r.outcome)),
		)
		for _, o := range c.observers {
			o.Observe(r.device, r.outcome)
		}
	}
	return groups, nil
}
