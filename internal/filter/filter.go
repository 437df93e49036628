// Package filter exposes named transformations over host facts, the way
// templating layers call them.
package filter

import (
	"github.com/HerbHall/netclass/internal/classify"
	"github.com/HerbHall/netclass/pkg/models"
)

// Filter is a named transformation over a fact document.
type Filter interface {
	// Name returns the name the filter is called by (e.g., "get_interfaces").
	Name() string

	// Description returns a one-line summary for listings.
	Description() string

	// Apply runs the filter. The result must not share state with earlier calls.
	Apply(facts *models.Facts) (any, error)
}

// InterfacesFilterName is the name the interface classifier is registered under.
const InterfacesFilterName = "get_interfaces"

// InterfacesFilter groups host interfaces into private, public and loopback.
type InterfacesFilter struct {
	classifier *classify.Classifier
}

// NewInterfacesFilter wraps c. A nil classifier uses the defaults.
func NewInterfacesFilter(c *classify.Classifier) *InterfacesFilter {
	if c == nil {
		c = classify.New()
	}
	return &InterfacesFilter{classifier: c}
}

func (f *InterfacesFilter) Name() string { return InterfacesFilterName }

func (f *InterfacesFilter) Description() string {
	return "group interfaces into private, public and loopback"
}

func (f *InterfacesFilter) Apply(facts *models.Facts) (any, error) {
	groups, err := f.classifier.Classify(facts)
	if err != nil {
		return nil, err
	}
	return groups, nil
}
