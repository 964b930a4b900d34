// +build darwin

package devlist

import (
	"github.com/pkg/errors"

	"github.com/cloudradar-monitoring/devlist/pkg/devices"
	"github.com/cloudradar-monitoring/devlist/pkg/devices/sysprofiler"
)

func newEnumerator(cfg *Config) (devices.Enumerator, error) {
	switch cfg.Backend {
	case "", BackendSysProfiler:
		return sysprofiler.New(), nil
	default:
		return nil, errors.Errorf("unsupported backend %q", cfg.Backend)
	}
}
