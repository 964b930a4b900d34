// +build !windows,!darwin

// Package linuxhw builds device snapshots on Linux and other unix systems
// without a central device configuration service. Devices are gathered from
// PCI sysfs data, lsusb and xrandr.
package linuxhw

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/cloudradar-monitoring/devlist/pkg/common"
	"github.com/cloudradar-monitoring/devlist/pkg/devices"
)

const (
	SourcePCI     = "pci"
	SourceUSB     = "usb"
	SourceDisplay = "display"
)

// DefaultSources is the collection order used when no sources are configured.
var DefaultSources = []string{SourcePCI, SourceUSB, SourceDisplay}

type collectFunc func(filter devices.Filter) ([]devices.Descriptor, error)

type source struct {
	name    string
	collect collectFunc
}

var knownSources = map[string]collectFunc{
	SourcePCI:     collectPCI,
	SourceUSB:     collectUSB,
	SourceDisplay: collectDisplays,
}

// Enumerator collects a snapshot from every configured source on Open.
type Enumerator struct {
	sources []source
}

// New returns an Enumerator reading the named sources in order. Unknown
// names are rejected.
func New(names []string) (*Enumerator, error) {
	if len(names) == 0 {
		names = DefaultSources
	}

	e := &Enumerator{}
	for _, name := range names {
		collect, ok := knownSources[name]
		if !ok {
			return nil, errors.Errorf("linuxhw: unknown device source %q", name)
		}
		e.sources = append(e.sources, source{name: name, collect: collect})
	}
	return e, nil
}

// Open fails only if no source produced a result.
func (e *Enumerator) Open(filter devices.Filter) (devices.Set, error) {
	errs := common.ErrorCollector{}
	entries := make([]devices.Descriptor, 0)
	succeeded := 0

	for _, s := range e.sources {
		found, err := s.collect(filter)
		if err != nil {
			common.LogOncef(log.InfoLevel, "[LINUXHW] %s devices unavailable: %s", s.name, err.Error())
			errs.Add(errors.Wrapf(err, "%s", s.name))
			continue
		}
		succeeded++
		entries = append(entries, found...)
	}

	if succeeded == 0 && errs.HasErrors() {
		return nil, errors.Wrap(errs.Combine(), "linuxhw: no device source available")
	}

	return devices.NewSnapshot(entries), nil
}
