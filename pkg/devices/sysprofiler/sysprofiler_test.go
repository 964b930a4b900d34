package sysprofiler

import (
	"bytes"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudradar-monitoring/devlist/pkg/devices"
)

func helperLoadSystemProfilerXML(t *testing.T, xmlFileName string) []byte {
	path := filepath.Join("testdata", xmlFileName)
	result, err := ioutil.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return result
}

func TestParsePCIDevices(t *testing.T) {
	xml := helperLoadSystemProfilerXML(t, "pci.xml")

	got, err := parsePCIDevices(bytes.NewReader(xml))
	require.NoError(t, err)

	assert.Equal(t, []devices.Descriptor{
		{
			InstanceID:        `PCI\Thunderbolt@192,0,0`,
			ClassName:         "ethernet",
			FriendlyName:      "Apple 57761-B0",
			ClassDescription:  "ethernet",
			DeviceDescription: "0x14e4 0x1682",
		},
		{
			InstanceID:        `PCI\pci12d8,400e`,
			ClassName:         "usbopenhost",
			FriendlyName:      "pci12d8,400e",
			DeviceDescription: "0x12d8",
		},
	}, got)
}

func TestParseUSBDevices(t *testing.T) {
	xml := helperLoadSystemProfilerXML(t, "usb.xml")

	got, err := parseUSBDevices(bytes.NewReader(xml))
	require.NoError(t, err)

	assert.Equal(t, []devices.Descriptor{
		{
			InstanceID:        `USB\AppleUSBXHCIPPT`,
			ClassName:         "USB",
			FriendlyName:      "USB30Bus",
			DeviceDescription: "USB30Bus",
		},
		{
			InstanceID:        `USB\VID_0x046d&PID_0xc52b\0x14200000`,
			ClassName:         "USB",
			FriendlyName:      "USB Receiver",
			DeviceDescription: "Logitech USB Receiver",
		},
		{
			InstanceID:        `USB\VID_0x05ac&PID_0x0262\0x14400000`,
			ClassName:         "USB",
			FriendlyName:      "Apple Internal Keyboard / Trackpad",
			DeviceDescription: "Apple Inc. Apple Internal Keyboard / Trackpad",
		},
	}, got)
}

func TestParseDisplays(t *testing.T) {
	xml := helperLoadSystemProfilerXML(t, "displays.xml")

	got, err := parseDisplays(bytes.NewReader(xml))
	require.NoError(t, err)

	assert.Equal(t, []devices.Descriptor{
		{
			InstanceID:        `DISPLAY\Color LCD`,
			ClassName:         "Monitor",
			FriendlyName:      "Color LCD",
			ClassDescription:  "Intel Iris Pro",
			DeviceDescription: "Display Type: retinaLCD, Connection Type: internal, Resolution: 1440 x 900 @ 60 Hz",
		},
	}, got)
}

func TestParseEmptyPlist(t *testing.T) {
	const empty = `<?xml version="1.0" encoding="UTF-8"?>
<plist version="1.0"><array/></plist>`

	_, err := parsePCIDevices(strings.NewReader(empty))
	assert.Error(t, err)
	_, err = parseUSBDevices(strings.NewReader(empty))
	assert.Error(t, err)
	_, err = parseDisplays(strings.NewReader(empty))
	assert.Error(t, err)
}
