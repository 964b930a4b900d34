// Package sysprofiler builds device snapshots on macOS from the XML output of
// the system_profiler command.
package sysprofiler

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"howett.net/plist"

	"github.com/cloudradar-monitoring/devlist/pkg/devices"
)

const (
	DataTypePCI      = "SPPCIDataType"
	DataTypeUSB      = "SPUSBDataType"
	DataTypeDisplays = "SPDisplaysDataType"
)

type spPCIDataTypeEntry struct {
	Name       string `plist:"_name"`
	DeviceType string `plist:"sppci_device_type"`
	SlotName   string `plist:"sppci_slot_name"`
	VendorID   string `plist:"sppci_vendor-id"`
	DeviceID   string `plist:"sppci_device-id"`
	NameExtra  string `plist:"sppci_name"`
}

const spPCIPrefix = "sppci_"

type spPCIDataType struct {
	Items []spPCIDataTypeEntry `plist:"_items"`
}

type spUSBDataTypeEntry struct {
	Items []spUSBDataTypeEntry `plist:"_items"`

	Name           string `plist:"_name"`
	HostController string `plist:"host_controller"`
	LocationID     string `plist:"location_id"`
	ProductID      string `plist:"product_id"`
	VendorID       string `plist:"vendor_id"`
	Manufacturer   string `plist:"manufacturer"`
}

type spUSBDataType struct {
	Items []spUSBDataTypeEntry `plist:"_items"`
}

type spDisplayDataTypeEntry struct {
	Name            string `plist:"_name"`
	ResolutionExtra string `plist:"_spdisplays_resolution"`
	Resolution      string `plist:"spdisplays_resolution"`
	ConnectionType  string `plist:"spdisplays_connection_type"`
	DisplayType     string `plist:"spdisplays_display_type"`
	VendorID        string `plist:"_spdisplays_display-vendor-id"`
}

const spDisplaysPrefix = "spdisplays_"

type spGraphicsCardDataTypeEntry struct {
	Name     string                   `plist:"_name"`
	Displays []spDisplayDataTypeEntry `plist:"spdisplays_ndrvs"`
}

type spDisplaysDataType struct {
	GraphicCards []spGraphicsCardDataTypeEntry `plist:"_items"`
}

func parsePCIDevices(r io.ReadSeeker) ([]devices.Descriptor, error) {
	var data []spPCIDataType
	if err := plist.NewDecoder(r).Decode(&data); err != nil {
		return nil, errors.Wrap(err, "sysprofiler: decode PCI plist")
	}
	if len(data) == 0 {
		return nil, errors.New("sysprofiler: unexpected XML input: no entries in plist of PCI devices")
	}

	result := make([]devices.Descriptor, 0, len(data[0].Items))
	for _, device := range data[0].Items {
		location := device.SlotName
		if location == "" {
			location = device.Name
		}
		result = append(result, devices.Descriptor{
			InstanceID:        `PCI\` + location,
			ClassName:         strings.TrimPrefix(device.DeviceType, spPCIPrefix),
			FriendlyName:      device.Name,
			ClassDescription:  device.NameExtra,
			DeviceDescription: strings.TrimSpace(fmt.Sprintf("%s %s", device.VendorID, device.DeviceID)),
		})
	}
	return result, nil
}

func parseUSBDevices(r io.ReadSeeker) ([]devices.Descriptor, error) {
	var data []spUSBDataType
	if err := plist.NewDecoder(r).Decode(&data); err != nil {
		return nil, errors.Wrap(err, "sysprofiler: decode USB plist")
	}
	if len(data) == 0 {
		return nil, errors.New("sysprofiler: unexpected XML input: no entries in plist of USB devices")
	}

	return usbFromHierarchy(data[0].Items), nil
}

// usbFromHierarchy flattens the USB tree depth-first, parents before
// children.
func usbFromHierarchy(items []spUSBDataTypeEntry) []devices.Descriptor {
	list := make([]devices.Descriptor, 0)
	for _, item := range items {
		vendorID := item.VendorID
		if vendorID == "apple_vendor_id" {
			vendorID = "0x05ac"
		}
		vendorID = firstField(vendorID)

		id := item.LocationID
		if vendorID != "" || item.ProductID != "" {
			id = fmt.Sprintf("VID_%s&PID_%s\\%s", vendorID, item.ProductID, firstField(item.LocationID))
		} else if item.HostController != "" {
			id = item.HostController
		}

		list = append(list, devices.Descriptor{
			InstanceID:        `USB\` + strings.TrimSpace(id),
			ClassName:         "USB",
			FriendlyName:      item.Name,
			DeviceDescription: strings.TrimSpace(item.Manufacturer + " " + item.Name),
		})
		list = append(list, usbFromHierarchy(item.Items)...)
	}
	return list
}

// firstField drops trailing annotations such as "0x046d  (Logitech Inc.)".
func firstField(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func parseDisplays(r io.ReadSeeker) ([]devices.Descriptor, error) {
	var data []spDisplaysDataType
	if err := plist.NewDecoder(r).Decode(&data); err != nil {
		return nil, errors.Wrap(err, "sysprofiler: decode displays plist")
	}
	if len(data) == 0 {
		return nil, errors.New("sysprofiler: unexpected XML input: no entries in plist of monitors")
	}

	result := make([]devices.Descriptor, 0)
	for _, graphicsCard := range data[0].GraphicCards {
		for _, display := range graphicsCard.Displays {
			resolution := display.Resolution
			if resolution == "" {
				resolution = display.ResolutionExtra
			}

			displayType := strings.TrimPrefix(display.DisplayType, spDisplaysPrefix)
			connectionType := strings.TrimPrefix(display.ConnectionType, spDisplaysPrefix)
			result = append(result, devices.Descriptor{
				InstanceID:        `DISPLAY\` + display.Name,
				ClassName:         "Monitor",
				FriendlyName:      display.Name,
				ClassDescription:  graphicsCard.Name,
				DeviceDescription: fmt.Sprintf("Display Type: %s, Connection Type: %s, Resolution: %s", displayType, connectionType, resolution),
			})
		}
	}
	return result, nil
}
