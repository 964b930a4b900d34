package devlist

import (
	"context"
	"io"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/cloudradar-monitoring/devlist/pkg/devices"
)

type Devlist struct {
	Config         *Config
	ConfigLocation string

	enumerator devices.Enumerator
	closers    []io.Closer

	version string
}

// New returns a Devlist using the platform backend selected by cfg.
func New(cfg *Config, cfgPath string, version string) (*Devlist, error) {
	enumerator, err := newEnumerator(cfg)
	if err != nil {
		return nil, err
	}

	return &Devlist{
		Config:         cfg,
		ConfigLocation: cfgPath,
		enumerator:     enumerator,
		version:        version,
	}, nil
}

func (dl *Devlist) Version() string {
	if dl.version == "" {
		return "{undefined}"
	}
	return dl.version
}

// ConfigureLogger applies the logging settings of the config. Logs go to
// stderr unless a log file is configured.
func (dl *Devlist) ConfigureLogger(stderr io.Writer) {
	dl.configureLogger(stderr)
}

// Close releases log hooks opened by ConfigureLogger.
func (dl *Devlist) Close() error {
	var firstErr error
	for _, c := range dl.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	dl.closers = nil
	return firstErr
}

// Run performs one listing pass and writes every record to w. A device set
// that cannot be acquired produces no output and no error. Only a failure
// to write to w is returned.
func (dl *Devlist) Run(w io.Writer) error {
	printer := NewPrinter(w, dl.Config.Format)
	lister := devices.NewLister(dl.enumerator)

	count := 0
	err := lister.Each(func(r devices.Record) error {
		if err := printer.Print(r); err != nil {
			return errors.Wrap(err, "failed to write device record")
		}
		count++
		return nil
	})
	var acquireErr *devices.AcquireError
	if errors.As(err, &acquireErr) {
		log.WithError(err).Debug("Device listing produced no output")
		return nil
	}
	if err != nil {
		return err
	}

	log.Debugf("Listed %d devices", count)
	return nil
}

// Watch repeats Run every Config.Interval seconds until ctx is done. Every
// pass acquires its own device set. With a zero interval Watch runs once.
func (dl *Devlist) Watch(ctx context.Context, w io.Writer) error {
	interval := secToDuration(dl.Config.Interval)

	for {
		if err := dl.Run(w); err != nil {
			return err
		}
		if interval <= 0 || ctx.Err() != nil {
			return nil
		}

		timer := time.NewTimer(interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-timer.C:
		}
	}
}
