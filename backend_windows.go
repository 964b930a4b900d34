// +build windows

package devlist

import (
	"github.com/pkg/errors"

	"github.com/cloudradar-monitoring/devlist/pkg/devices"
	"github.com/cloudradar-monitoring/devlist/pkg/devices/setupdi"
	"github.com/cloudradar-monitoring/devlist/pkg/devices/wmipnp"
)

func newEnumerator(cfg *Config) (devices.Enumerator, error) {
	switch cfg.Backend {
	case "", BackendSetupAPI:
		return setupdi.New(), nil
	case BackendWMI:
		return wmipnp.New(secToDuration(cfg.WMIQueryTimeout)), nil
	default:
		return nil, errors.Errorf("unsupported backend %q", cfg.Backend)
	}
}
