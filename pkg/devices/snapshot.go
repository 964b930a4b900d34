package devices

import (
	"github.com/pkg/errors"
)

// Descriptor is a fully materialized device entry. Backends that collect
// everything up front build a slice of descriptors and serve it through
// NewSnapshot.
type Descriptor struct {
	InstanceID        string
	ClassName         string
	FriendlyName      string
	ClassDescription  string
	DeviceDescription string

	// Errs holds retrieval failures by property. A property with an error is
	// reported as failed regardless of its string value.
	Errs map[Property]error
}

// Value returns the stored value of p, or ErrPropertyNotPresent if it is
// empty.
func (d Descriptor) Value(p Property) (string, error) {
	if err, ok := d.Errs[p]; ok && err != nil {
		return "", err
	}

	var v string
	switch p {
	case InstanceID:
		v = d.InstanceID
	case ClassName:
		v = d.ClassName
	case FriendlyName:
		v = d.FriendlyName
	case ClassDescription:
		v = d.ClassDescription
	case DeviceDescription:
		v = d.DeviceDescription
	default:
		return "", errors.Errorf("devices: unsupported property %d", int(p))
	}

	if v == "" {
		return "", ErrPropertyNotPresent
	}
	return v, nil
}

type snapshot struct {
	entries []Descriptor
	closed  bool
}

// NewSnapshot returns a Set serving the given descriptors in order.
func NewSnapshot(entries []Descriptor) Set {
	return &snapshot{entries: entries}
}

func (s *snapshot) Next(index int) (Entry, error) {
	if s.closed {
		return nil, errors.New("devices: snapshot is closed")
	}
	if index < 0 || index >= len(s.entries) {
		return nil, ErrEndOfSet
	}
	return snapshotEntry{s.entries[index]}, nil
}

func (s *snapshot) Close() error {
	if s.closed {
		return errors.New("devices: snapshot already closed")
	}
	s.closed = true
	s.entries = nil
	return nil
}

type snapshotEntry struct {
	d Descriptor
}

func (e snapshotEntry) InstanceID() (string, error) {
	return e.d.Value(InstanceID)
}

func (e snapshotEntry) Property(p Property) (string, error) {
	return e.d.Value(p)
}
