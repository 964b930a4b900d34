// +build !windows,!darwin

package devlist

import (
	"github.com/pkg/errors"

	"github.com/cloudradar-monitoring/devlist/pkg/devices"
	"github.com/cloudradar-monitoring/devlist/pkg/devices/linuxhw"
)

func newEnumerator(cfg *Config) (devices.Enumerator, error) {
	switch cfg.Backend {
	case "", BackendLinuxHW:
		e, err := linuxhw.New(cfg.Sources)
		if err != nil {
			return nil, err
		}
		return e, nil
	default:
		return nil, errors.Errorf("unsupported backend %q", cfg.Backend)
	}
}
