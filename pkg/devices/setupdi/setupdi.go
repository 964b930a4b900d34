// +build windows

// Package setupdi enumerates devices through the Windows SetupAPI.
package setupdi

import (
	"io"
	"syscall"

	"github.com/gentlemanautomaton/windevice/deviceclass"
	"github.com/gentlemanautomaton/windevice/deviceregistry"
	"github.com/gentlemanautomaton/windevice/setupapi"
	"github.com/pkg/errors"

	"github.com/cloudradar-monitoring/devlist/pkg/devices"
	"github.com/cloudradar-monitoring/devlist/pkg/winapi"
)

// Enumerator opens SetupAPI device information sets of the local machine.
type Enumerator struct{}

func New() *Enumerator {
	return &Enumerator{}
}

// Open calls SetupDiGetClassDevsEx for every class and no enumerator.
func (e *Enumerator) Open(filter devices.Filter) (devices.Set, error) {
	handle, err := setupapi.GetClassDevsEx(nil, "", flagsFor(filter), 0, "")
	if err != nil {
		return nil, errors.Wrap(err, "setupdi: SetupDiGetClassDevsEx")
	}
	if handle == syscall.InvalidHandle {
		return nil, errors.New("setupdi: SetupDiGetClassDevsEx returned an invalid handle")
	}
	return &set{handle: handle}, nil
}

func flagsFor(filter devices.Filter) uint32 {
	var flags uint32
	if filter.Present {
		flags |= deviceclass.Present
	}
	if filter.AllClasses {
		flags |= deviceclass.AllClasses
	}
	if filter.CurrentProfile {
		flags |= deviceclass.Profile
	}
	return flags
}

type set struct {
	handle syscall.Handle
}

func (s *set) Next(index int) (devices.Entry, error) {
	data, err := setupapi.EnumDeviceInfo(s.handle, uint32(index))
	if err == io.EOF {
		return nil, devices.ErrEndOfSet
	}
	if err != nil {
		return nil, errors.Wrapf(err, "setupdi: SetupDiEnumDeviceInfo(%d)", index)
	}
	return entry{handle: s.handle, data: data}, nil
}

func (s *set) Close() error {
	if s.handle == syscall.InvalidHandle {
		return nil
	}
	err := setupapi.DestroyDeviceInfoList(s.handle)
	s.handle = syscall.InvalidHandle
	return errors.Wrap(err, "setupdi: SetupDiDestroyDeviceInfoList")
}

// ERROR_INVALID_DATA, returned for properties the device does not have
const errInvalidData = syscall.Errno(13)

type entry struct {
	handle syscall.Handle
	data   setupapi.DevInfoData
}

var registryCodes = map[devices.Property]deviceregistry.Code{
	devices.ClassName:         deviceregistry.Class,
	devices.DeviceDescription: deviceregistry.Description,
	devices.FriendlyName:      deviceregistry.FriendlyName,
}

func (e entry) InstanceID() (string, error) {
	id, err := setupapi.GetDeviceInstanceID(e.handle, e.data)
	if err != nil {
		return "", err
	}
	return string(id), nil
}

func (e entry) Property(p devices.Property) (string, error) {
	return readProperty(p,
		func() (string, error) {
			return winapi.GetClassDescription(&e.data.GUID)
		},
		func(code deviceregistry.Code) (string, error) {
			return setupapi.GetDeviceRegistryString(e.handle, e.data, code)
		})
}

// readProperty maps p onto the class description lookup or a registry
// property read.
func readProperty(p devices.Property, classDescription func() (string, error), registryString func(deviceregistry.Code) (string, error)) (string, error) {
	if p == devices.ClassDescription {
		return classDescription()
	}

	code, ok := registryCodes[p]
	if !ok {
		return "", errors.Errorf("setupdi: unsupported property %s", p)
	}

	value, err := registryString(code)
	if err == errInvalidData {
		return "", devices.ErrPropertyNotPresent
	}
	return value, err
}
