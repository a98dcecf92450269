package sink

import (
	"slices"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/ib-77/catch/pkg/catch"
)

// Errors keeps every appended error, one entry per Append, and can fold
// them into a single combined error. An already combined error stays one entry.
type Errors struct {
	errs []error
}

func (e *Errors) Append(err error) {
	e.errs = append(e.errs, err)
}

// Err returns the combined error, or nil when nothing non-nil was appended.
func (e *Errors) Err() error {
	return multierr.Combine(e.errs...)
}

// Errors returns the appended errors in append order.
func (e *Errors) Errors() []error {
	return slices.Clone(e.errs)
}

func (e *Errors) Len() int {
	return len(e.errs)
}

// Wrap returns a conversion that annotates an error with msg.
// The original error stays reachable through errors.Cause and errors.Is.
func Wrap(msg string) catch.Convert[error, error] {
	return func(err error) error {
		return errors.Wrap(err, msg)
	}
}
