// +build !windows,!darwin

package linuxhw

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jaypipes/ghw"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/cloudradar-monitoring/devlist/pkg/devices"
)

// pciFields holds the ghw names used to describe one PCI function.
type pciFields struct {
	Address  string
	Class    string
	Subclass string
	Vendor   string
	Product  string
}

func knownName(name string) string {
	if name == "unknown" {
		return ""
	}
	return name
}

func pciDescriptor(f pciFields) devices.Descriptor {
	vendor := knownName(f.Vendor)
	product := knownName(f.Product)

	return devices.Descriptor{
		InstanceID:        pciInstanceID(f.Address),
		ClassName:         knownName(f.Class),
		FriendlyName:      product,
		ClassDescription:  knownName(f.Subclass),
		DeviceDescription: strings.TrimSpace(vendor + " " + product),
	}
}

func pciInstanceID(address string) string {
	if address == "" {
		return ""
	}
	return `PCI\` + address
}

func collectPCI(devices.Filter) ([]devices.Descriptor, error) {
	var ghwErr error
	var pciDevices []*ghw.PCIDevice

	// ghw sometimes writes errors directly to os.Stderr instead of returning
	// them, so its output is captured and logged
	stderrOutput, err := captureStderr(func() {
		var pciInfo *ghw.PCIInfo
		if pciInfo, ghwErr = ghw.PCI(); ghwErr == nil {
			pciDevices = pciInfo.ListDevices()
		}
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not capture stderr when retrieving PCI information using ghw")
	}
	if ghwErr != nil {
		return nil, errors.Wrap(ghwErr, "could not retrieve PCI information using ghw")
	}
	if len(stderrOutput) > 0 {
		log.Warnf("[LINUXHW] got error output while retrieving PCI information using ghw: %s", stderrOutput)
	}

	result := make([]devices.Descriptor, 0, len(pciDevices))
	for _, device := range pciDevices {
		f := pciFields{Address: device.Address}
		if device.Class != nil {
			f.Class = device.Class.Name
		}
		if device.Subclass != nil {
			f.Subclass = device.Subclass.Name
		}
		if device.Vendor != nil {
			f.Vendor = device.Vendor.Name
		}
		if device.Product != nil {
			f.Product = device.Product.Name
		}
		result = append(result, pciDescriptor(f))
	}
	return result, nil
}

func captureStderr(funcToExecute func()) (string, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return "", err
	}
	defer r.Close()

	defaultStderrWriter := os.Stderr
	os.Stderr = w
	defer func() {
		os.Stderr = defaultStderrWriter
	}()

	var buf bytes.Buffer
	copied := make(chan error, 1)
	go func() {
		_, err := io.Copy(&buf, r)
		copied <- err
	}()

	funcToExecute()
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("close stderr pipe: %s", err)
	}
	if err := <-copied; err != nil {
		return "", err
	}

	return buf.String(), nil
}
