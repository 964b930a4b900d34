// +build windows

package setupdi

import (
	"syscall"
	"testing"

	"github.com/gentlemanautomaton/windevice/deviceclass"
	"github.com/gentlemanautomaton/windevice/deviceregistry"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/cloudradar-monitoring/devlist/pkg/devices"
)

func TestFlagsFor(t *testing.T) {
	assert.Equal(t, uint32(deviceclass.Present|deviceclass.AllClasses|deviceclass.Profile), flagsFor(devices.DefaultFilter))
	assert.Equal(t, uint32(deviceclass.Present), flagsFor(devices.Filter{Present: true}))
	assert.Equal(t, uint32(0), flagsFor(devices.Filter{}))
}

func TestListLocalDevices(t *testing.T) {
	records, err := devices.NewLister(New()).Collect()
	assert.NoError(t, err)
	assert.NotEmpty(t, records, "every Windows host has at least one present device")
	for _, r := range records {
		assert.NotEmpty(t, r.InstanceID)
	}
}

func TestReadProperty(t *testing.T) {
	accessDenied := syscall.Errno(5)
	registry := map[deviceregistry.Code]struct {
		value string
		err   error
	}{
		deviceregistry.Class:        {value: "Net"},
		deviceregistry.Description:  {err: errInvalidData},
		deviceregistry.FriendlyName: {err: accessDenied},
	}
	registryString := func(code deviceregistry.Code) (string, error) {
		r := registry[code]
		return r.value, r.err
	}
	classDescription := func() (string, error) {
		return "Network adapters", nil
	}

	tests := []struct {
		property devices.Property
		value    string
		err      error
	}{
		{property: devices.ClassName, value: "Net"},
		{property: devices.DeviceDescription, err: devices.ErrPropertyNotPresent},
		{property: devices.FriendlyName, err: accessDenied},
		{property: devices.ClassDescription, value: "Network adapters"},
	}
	for _, tt := range tests {
		value, err := readProperty(tt.property, classDescription, registryString)
		assert.Equal(t, tt.err, err, tt.property.String())
		assert.Equal(t, tt.value, value, tt.property.String())
	}

	_, err := readProperty(devices.InstanceID, classDescription, registryString)
	assert.Error(t, err, "instance IDs are not registry properties")
	assert.False(t, errors.Is(err, devices.ErrPropertyNotPresent))
}
