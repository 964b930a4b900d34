// Package devicestest provides a scriptable devices.Enumerator for tests.
package devicestest

import (
	"github.com/pkg/errors"

	"github.com/cloudradar-monitoring/devlist/pkg/devices"
)

// Device is one scripted entry. Errs injects failures per property,
// including devices.InstanceID.
type Device struct {
	InstanceID        string
	ClassName         string
	FriendlyName      string
	ClassDescription  string
	DeviceDescription string
	Errs              map[devices.Property]error
}

// Enumerator serves Devices from a fresh set on every Open and records
// how its sets were used.
type Enumerator struct {
	Devices []Device

	// OpenErr makes Open fail.
	OpenErr error
	// NextErrAt makes Next fail with NextErr at the given index instead of
	// returning end-of-set after the last device.
	NextErrAt int
	NextErr   error
	// CloseErr is returned by Close.
	CloseErr error

	Opens   int
	Closes  int
	Filters []devices.Filter
	// Requested lists every index passed to Next, across all sets.
	Requested []int
}

var errDoubleClose = errors.New("devicestest: set closed twice")

func (e *Enumerator) Open(filter devices.Filter) (devices.Set, error) {
	e.Filters = append(e.Filters, filter)
	if e.OpenErr != nil {
		return nil, e.OpenErr
	}
	e.Opens++
	return &set{enumerator: e}, nil
}

type set struct {
	enumerator *Enumerator
	closed     bool
}

func (s *set) Next(index int) (devices.Entry, error) {
	e := s.enumerator
	e.Requested = append(e.Requested, index)
	if s.closed {
		return nil, errors.New("devicestest: Next on closed set")
	}
	if e.NextErr != nil && index == e.NextErrAt {
		return nil, e.NextErr
	}
	if index >= len(e.Devices) {
		return nil, errors.Wrapf(devices.ErrEndOfSet, "index %d", index)
	}
	return entry{device: e.Devices[index]}, nil
}

func (s *set) Close() error {
	if s.closed {
		return errDoubleClose
	}
	s.closed = true
	s.enumerator.Closes++
	return s.enumerator.CloseErr
}

type entry struct {
	device Device
}

func (e entry) InstanceID() (string, error) {
	if err := e.device.Errs[devices.InstanceID]; err != nil {
		return "", err
	}
	return e.device.InstanceID, nil
}

func (e entry) Property(p devices.Property) (string, error) {
	d := e.device
	if err := d.Errs[p]; err != nil {
		return "", err
	}
	switch p {
	case devices.ClassName:
		return d.ClassName, nil
	case devices.FriendlyName:
		return d.FriendlyName, nil
	case devices.ClassDescription:
		return d.ClassDescription, nil
	case devices.DeviceDescription:
		return d.DeviceDescription, nil
	}
	return "", errors.Errorf("devicestest: unexpected property %s", p)
}
