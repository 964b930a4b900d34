package wmipnp

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/cloudradar-monitoring/devlist/pkg/devices"
)

func strPtr(s string) *string {
	return &s
}

const usbClassGUID = "{36fc9e60-c465-11cf-8056-444553540000}"

func TestToDescriptor(t *testing.T) {
	describe := func(guid string) (string, error) {
		if guid == usbClassGUID {
			return "Universal Serial Bus controllers", nil
		}
		return "", errors.New("unknown class")
	}

	d := toDescriptor(win32_PnPEntity{
		DeviceID:    strPtr(`USB\ROOT_HUB30\4&1A2B3C4D&0&0`),
		PNPClass:    strPtr("USB"),
		Name:        strPtr("USB Root Hub (USB 3.0)"),
		Description: strPtr("USB Root Hub (USB 3.0)"),
		ClassGuid:   strPtr(usbClassGUID),
	}, describe)

	assert.Equal(t, devices.Descriptor{
		InstanceID:        `USB\ROOT_HUB30\4&1A2B3C4D&0&0`,
		ClassName:         "USB",
		FriendlyName:      "USB Root Hub (USB 3.0)",
		ClassDescription:  "Universal Serial Bus controllers",
		DeviceDescription: "USB Root Hub (USB 3.0)",
	}, d)

	d = toDescriptor(win32_PnPEntity{
		DeviceID:  strPtr(`ROOT\LEGACY_BEEP\0000`),
		ClassGuid: strPtr("{00000000-0000-0000-0000-000000000000}"),
	}, describe)
	_, err := d.Value(devices.ClassDescription)
	assert.EqualError(t, err, "unknown class")
	_, err = d.Value(devices.FriendlyName)
	assert.Equal(t, devices.ErrPropertyNotPresent, err)

	d = toDescriptor(win32_PnPEntity{Name: strPtr("ghost")}, describe)
	_, err = d.Value(devices.InstanceID)
	assert.Equal(t, errNoDeviceID, err)
}

func TestWhereClause(t *testing.T) {
	assert.Equal(t, "WHERE Present = TRUE", whereClause(devices.DefaultFilter))
	assert.Equal(t, "", whereClause(devices.Filter{AllClasses: true}))
}

func TestCachedDescriber(t *testing.T) {
	calls := 0
	describe := cachedDescriber(func(guid string) (string, error) {
		calls++
		return "desc " + guid, nil
	})

	for i := 0; i < 3; i++ {
		desc, err := describe("{a}")
		assert.NoError(t, err)
		assert.Equal(t, "desc {a}", desc)
	}
	_, _ = describe("{b}")
	assert.Equal(t, 2, calls)
}
