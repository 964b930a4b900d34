// +build darwin

package sysprofiler

import (
	"bytes"
	"io"
	"os/exec"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/cloudradar-monitoring/devlist/pkg/common"
	"github.com/cloudradar-monitoring/devlist/pkg/devices"
)

type parser func(r io.ReadSeeker) ([]devices.Descriptor, error)

var dataTypes = []struct {
	name  string
	parse parser
}{
	{DataTypePCI, parsePCIDevices},
	{DataTypeUSB, parseUSBDevices},
	{DataTypeDisplays, parseDisplays},
}

// Enumerator runs system_profiler for PCI, USB and display data on every
// Open.
type Enumerator struct{}

func New() *Enumerator {
	return &Enumerator{}
}

func runSystemProfiler(dataType string) ([]byte, error) {
	cmd := exec.Command("system_profiler", "-xml", dataType)
	buf := bytes.Buffer{}
	cmd.Stdout = &buf
	if err := cmd.Run(); err != nil {
		return nil, errors.Wrap(err, "could not execute system_profiler")
	}

	return buf.Bytes(), nil
}

func (e *Enumerator) Open(devices.Filter) (devices.Set, error) {
	errs := common.ErrorCollector{}
	entries := make([]devices.Descriptor, 0)
	succeeded := 0

	for _, dt := range dataTypes {
		xml, err := runSystemProfiler(dt.name)
		if err == nil {
			var found []devices.Descriptor
			if found, err = dt.parse(bytes.NewReader(xml)); err == nil {
				succeeded++
				entries = append(entries, found...)
				continue
			}
		}
		common.LogOncef(log.InfoLevel, "[SYSPROFILER] %s unavailable: %s", dt.name, err.Error())
		errs.Add(errors.Wrap(err, dt.name))
	}

	if succeeded == 0 {
		return nil, errors.Wrap(errs.Combine(), "sysprofiler: no data type available")
	}
	return devices.NewSnapshot(entries), nil
}
