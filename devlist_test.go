package devlist

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudradar-monitoring/devlist/pkg/devices"
	"github.com/cloudradar-monitoring/devlist/pkg/devices/devicestest"
)

func newTestDevlist(cfg *Config, e devices.Enumerator) *Devlist {
	return &Devlist{Config: cfg, enumerator: e}
}

func TestRunPrintsThreeDeviceScenario(t *testing.T) {
	enum := &devicestest.Enumerator{
		Devices: []devicestest.Device{
			{InstanceID: `USB\VID_1`, ClassName: "USB", FriendlyName: "Hub"},
			{Errs: map[devices.Property]error{devices.InstanceID: errors.New("buffer too small")}},
			{InstanceID: `PCI\VEN_2`, ClassName: "", FriendlyName: "NIC"},
		},
	}

	buf := &bytes.Buffer{}
	require.NoError(t, newTestDevlist(NewDefaultConfig(), enum).Run(buf))

	expected := FormatRecord(devices.Record{Index: 0, InstanceID: `USB\VID_1`, ClassName: "USB", FriendlyName: "Hub"}) +
		FormatRecord(devices.Record{Index: 2, InstanceID: `PCI\VEN_2`, FriendlyName: "NIC"})
	assert.Equal(t, expected, buf.String())
}

func TestRunAcquireFailureIsSilent(t *testing.T) {
	enum := &devicestest.Enumerator{OpenErr: errors.New("invalid handle")}

	buf := &bytes.Buffer{}
	err := newTestDevlist(NewDefaultConfig(), enum).Run(buf)

	assert.NoError(t, err)
	assert.Empty(t, buf.String())
	assert.Equal(t, 0, enum.Closes)
}

type failingWriter struct {
	writes int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	w.writes++
	return 0, errors.New("broken pipe")
}

func TestRunReportsWriteFailure(t *testing.T) {
	enum := &devicestest.Enumerator{
		Devices: []devicestest.Device{{InstanceID: "A"}, {InstanceID: "B"}},
	}

	w := &failingWriter{}
	err := newTestDevlist(NewDefaultConfig(), enum).Run(w)

	assert.Error(t, err)
	assert.Equal(t, 1, w.writes, "printing stops after the first failed write")
	assert.Equal(t, 1, enum.Closes, "the set is released even when output fails")
	assert.Equal(t, []int{0}, enum.Requested, "enumeration stops after the failed write")
}

func TestWatchOnceWithoutInterval(t *testing.T) {
	enum := &devicestest.Enumerator{Devices: []devicestest.Device{{InstanceID: "A"}}}

	err := newTestDevlist(NewDefaultConfig(), enum).Watch(context.Background(), &bytes.Buffer{})

	assert.NoError(t, err)
	assert.Equal(t, 1, enum.Opens)
}

type cancellingEnumerator struct {
	devicestest.Enumerator
	cancelAfter int
	cancel      context.CancelFunc
}

func (e *cancellingEnumerator) Open(filter devices.Filter) (devices.Set, error) {
	set, err := e.Enumerator.Open(filter)
	if e.Opens >= e.cancelAfter {
		e.cancel()
	}
	return set, err
}

func TestWatchAcquiresFreshSetPerPass(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	enum := &cancellingEnumerator{
		Enumerator:  devicestest.Enumerator{Devices: []devicestest.Device{{InstanceID: "A"}}},
		cancelAfter: 3,
		cancel:      cancel,
	}

	cfg := NewDefaultConfig()
	cfg.Interval = 0.001

	buf := &bytes.Buffer{}
	done := make(chan error, 1)
	go func() {
		done <- newTestDevlist(cfg, enum).Watch(ctx, buf)
	}()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancellation")
	}

	assert.Equal(t, 3, enum.Opens)
	assert.Equal(t, 3, enum.Closes)
	assert.Equal(t, 3*len(FormatRecord(devices.Record{InstanceID: "A"})), buf.Len())
}

func TestNewRejectsUnknownBackend(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Backend = "udev"

	_, err := New(cfg, "", "")
	assert.Error(t, err)
}
