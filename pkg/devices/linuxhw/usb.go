// +build !windows,!darwin

package linuxhw

import (
	"bufio"
	"bytes"
	"fmt"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/cloudradar-monitoring/devlist/pkg/common"
	"github.com/cloudradar-monitoring/devlist/pkg/devices"
)

const usbClassDescription = "Universal Serial Bus devices"

// parseLsusb turns lsusb output lines of the form
//   Bus 001 Device 002: ID 8087:0024 Intel Corp. Integrated Rate Matching Hub
// into descriptors. Lines that do not match are logged and skipped.
func parseLsusb(out []byte) []devices.Descriptor {
	const minExpectedTokensCount = 6

	results := make([]devices.Descriptor, 0)
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		line := scanner.Text()
		tokens := strings.Fields(line)
		if len(tokens) < minExpectedTokensCount {
			if len(tokens) > 0 {
				log.Warnf("[LINUXHW] unexpected lsusb command output: got %d tokens in line: %s", len(tokens), line)
			}
			continue
		}
		if tokens[0] != "Bus" || tokens[2] != "Device" || tokens[4] != "ID" {
			log.Warnf("[LINUXHW] unexpected lsusb command output: %s", line)
			continue
		}

		bus := tokens[1]
		device := strings.TrimSuffix(tokens[3], ":")
		ids := strings.SplitN(tokens[5], ":", 2)
		if len(ids) != 2 {
			log.Warnf("[LINUXHW] unexpected lsusb device ID %q in line: %s", tokens[5], line)
			continue
		}

		var description string
		if len(tokens) > minExpectedTokensCount {
			description = strings.Join(tokens[minExpectedTokensCount:], " ")
		}

		results = append(results, devices.Descriptor{
			InstanceID: fmt.Sprintf(`USB\VID_%s&PID_%s\%s-%s`,
				strings.ToUpper(ids[0]), strings.ToUpper(ids[1]), bus, device),
			ClassName:         "USB",
			FriendlyName:      description,
			ClassDescription:  usbClassDescription,
			DeviceDescription: description,
		})
	}
	return results
}

func collectUSB(devices.Filter) ([]devices.Descriptor, error) {
	if !common.IsCommandAvailable("lsusb") {
		return nil, errors.New("lsusb command is not available")
	}

	cmd := exec.Command("lsusb")
	buf := bytes.Buffer{}
	cmd.Stdout = &buf
	if err := cmd.Run(); err != nil {
		return nil, errors.Wrap(err, "could not execute lsusb")
	}

	return parseLsusb(buf.Bytes()), nil
}
