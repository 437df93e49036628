package classify

import "errors"

// Error kinds. Test with errors.Is.
var (
	ErrDiscovery  = errors.New("interface discovery failed")
	ErrEvaluation = errors.New("interface evaluation failed")
)

// ErrNoInterfaces is the discovery cause when no fact entry describes a
// listed interface.
var ErrNoInterfaces = errors.New("no interfaces found")

// Error is returned by Classify. Kind is ErrDiscovery or ErrEvaluation;
// Device names the interface being evaluated, if any.
type Error struct {
	Kind   error
	Device string
	Err    error
}

func (e *Error) Error() string {
	if e.Kind == ErrDiscovery {
		return "Failed to get interfaces: " + e.Err.Error()
	}
	if e.Device != "" {
		return "Failed to get interface details " + e.Device + ": " + e.Err.Error()
	}
	return "Failed to get interface details " + e.Err.Error()
}

func (e *Error) Unwrap() []error {
	return []error{e.Kind, e.Err}
}
