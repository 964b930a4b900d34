// +build !windows,!darwin

package linuxhw

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/vcraescu/go-xrandr"

	"github.com/cloudradar-monitoring/devlist/pkg/devices"
)

const displayClassDescription = "Monitors"

func displayDescriptors(screens xrandr.Screens, filter devices.Filter) []devices.Descriptor {
	results := make([]devices.Descriptor, 0)
	for _, s := range screens {
		for _, m := range s.Monitors {
			if filter.Present && !m.Connected {
				continue
			}

			description := fmt.Sprintf("%dx%d", int(m.Resolution.Width), int(m.Resolution.Height))
			if m.Size.Width > 0 && m.Size.Height > 0 {
				description += fmt.Sprintf(", %dmm x %dmm", int(m.Size.Width), int(m.Size.Height))
			}
			if m.Primary {
				description += ", primary"
			}

			results = append(results, devices.Descriptor{
				InstanceID:        fmt.Sprintf(`DISPLAY\%s\%d`, m.ID, s.No),
				ClassName:         "Monitor",
				FriendlyName:      m.ID,
				ClassDescription:  displayClassDescription,
				DeviceDescription: description,
			})
		}
	}
	return results
}

func collectDisplays(filter devices.Filter) ([]devices.Descriptor, error) {
	screens, err := xrandr.GetScreens()
	if err != nil {
		return nil, errors.Wrap(err, "xrandr not installed or returned unexpected result")
	}
	return displayDescriptors(screens, filter), nil
}
