// Package problem renders failures as RFC 7807 Problem Details documents.
package problem

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/HerbHall/netclass/internal/classify"
	"github.com/HerbHall/netclass/internal/filter"
)

// Problem types.
const (
	TypeDiscovery     = "urn:netclass:problem:interface-discovery"
	TypeEvaluation    = "urn:netclass:problem:interface-evaluation"
	TypeBadInput      = "urn:netclass:problem:bad-input"
	TypeUnknownFilter = "urn:netclass:problem:unknown-filter"
	TypeInternal      = "urn:netclass:problem:internal-error"
)

// Problem represents an RFC 7807 Problem Details document.
type Problem struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`
	Device   string `json:"device,omitempty"`
}

// Write encodes p as JSON to w.
func Write(w io.Writer, p Problem) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}

// BadInput describes an unreadable or malformed input document.
func BadInput(detail, instance string) Problem {
	return Problem{
		Type:     TypeBadInput,
		Title:    "Bad Input",
		Status:   http.StatusBadRequest,
		Detail:   detail,
		Instance: instance,
	}
}

// FromError maps a filter or classification error to a Problem.
func FromError(err error, instance string) Problem {
	p := Problem{
		Type:     TypeInternal,
		Title:    "Internal Error",
		Status:   http.StatusInternalServerError,
		Detail:   err.Error(),
		Instance: instance,
	}

	var cerr *classify.Error
	switch {
	case errors.Is(err, classify.ErrDiscovery):
		p.Type = TypeDiscovery
		p.Title = "Interface Discovery Failed"
		p.Status = http.StatusUnprocessableEntity
	case errors.Is(err, classify.ErrEvaluation):
		p.Type = TypeEvaluation
		p.Title = "Interface Evaluation Failed"
		p.Status = http.StatusUnprocessableEntity
	case errors.Is(err, filter.ErrUnknownFilter):
		p.Type = TypeUnknownFilter
		p.Title = "Unknown Filter"
		p.Status = http.StatusNotFound
	}
	if errors.As(err, &cerr) {
		p.Device = cerr.Device
	}
	return p
}
