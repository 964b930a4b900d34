package devices

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrEndOfSet is returned by Set.Next when there are no more entries.
	ErrEndOfSet = errors.New("devices: no more entries in device set")

	// ErrPropertyNotPresent is returned by backends when an entry has no
	// value for the requested property.
	ErrPropertyNotPresent = errors.New("devices: property not present")
)

// AcquireError reports that a device set could not be obtained.
type AcquireError struct {
	Err error
}

func (e *AcquireError) Error() string {
	return fmt.Sprintf("devices: could not acquire device set: %s", e.Err)
}

func (e *AcquireError) Unwrap() error {
	return e.Err
}

// PropertyError reports that a property of the entry at Index could not be
// retrieved.
type PropertyError struct {
	Index    int
	Property Property
	Err      error
}

func (e *PropertyError) Error() string {
	return fmt.Sprintf("devices: could not get %s of device %d: %s", e.Property, e.Index, e.Err)
}

func (e *PropertyError) Unwrap() error {
	return e.Err
}
