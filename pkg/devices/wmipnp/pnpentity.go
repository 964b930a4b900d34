// Package wmipnp enumerates Plug and Play devices through the WMI
// Win32_PnPEntity class.
package wmipnp

import (
	"github.com/pkg/errors"

	"github.com/cloudradar-monitoring/devlist/pkg/devices"
)

// https://docs.microsoft.com/en-us/windows/win32/cimwin32prov/win32-pnpentity
type win32_PnPEntity struct {
	DeviceID    *string
	PNPClass    *string
	Name        *string
	Description *string
	ClassGuid   *string
	Present     *bool
}

var errNoDeviceID = errors.New("wmipnp: entity has no DeviceID")

// classDescriber resolves a class GUID string to its description.
type classDescriber func(classGUID string) (string, error)

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func toDescriptor(e win32_PnPEntity, describe classDescriber) devices.Descriptor {
	d := devices.Descriptor{
		InstanceID:        deref(e.DeviceID),
		ClassName:         deref(e.PNPClass),
		FriendlyName:      deref(e.Name),
		DeviceDescription: deref(e.Description),
	}

	if d.InstanceID == "" {
		d.Errs = map[devices.Property]error{devices.InstanceID: errNoDeviceID}
	}

	if guid := deref(e.ClassGuid); guid != "" && describe != nil {
		desc, err := describe(guid)
		if err != nil {
			if d.Errs == nil {
				d.Errs = make(map[devices.Property]error)
			}
			d.Errs[devices.ClassDescription] = err
		} else {
			d.ClassDescription = desc
		}
	}

	return d
}

// whereClause builds the WQL condition for filter. Win32_PnPEntity has no
// notion of hardware profiles or setup class filtering, every entity belongs
// to some class already.
func whereClause(filter devices.Filter) string {
	if filter.Present {
		return "WHERE Present = TRUE"
	}
	return ""
}

// cachedDescriber memoizes describe per GUID for the duration of one Open.
func cachedDescriber(describe classDescriber) classDescriber {
	type result struct {
		desc string
		err  error
	}
	cache := make(map[string]result)
	return func(guid string) (string, error) {
		if r, ok := cache[guid]; ok {
			return r.desc, r.err
		}
		desc, err := describe(guid)
		cache[guid] = result{desc, err}
		return desc, err
	}
}
