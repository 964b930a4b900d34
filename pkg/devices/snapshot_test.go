package devices

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot(t *testing.T) {
	lookupErr := errors.New("lookup failed")
	set := NewSnapshot([]Descriptor{
		{InstanceID: `PCI\0000:00:1f.3`, ClassName: "Multimedia controller", FriendlyName: "Audio device"},
		{InstanceID: `USB\VID_046D&PID_C52B\1-2`, Errs: map[Property]error{ClassDescription: lookupErr}},
	})

	e, err := set.Next(0)
	require.NoError(t, err)
	id, err := e.InstanceID()
	assert.NoError(t, err)
	assert.Equal(t, `PCI\0000:00:1f.3`, id)
	v, err := e.Property(ClassName)
	assert.NoError(t, err)
	assert.Equal(t, "Multimedia controller", v)
	_, err = e.Property(DeviceDescription)
	assert.Equal(t, ErrPropertyNotPresent, err)

	e, err = set.Next(1)
	require.NoError(t, err)
	_, err = e.Property(ClassDescription)
	assert.Equal(t, lookupErr, err)

	_, err = set.Next(2)
	assert.True(t, errors.Is(err, ErrEndOfSet))

	assert.NoError(t, set.Close())
	assert.Error(t, set.Close())
	_, err = set.Next(0)
	assert.Error(t, err)
}

func TestListerOverSnapshotSkipsMissingInstanceID(t *testing.T) {
	l := NewLister(enumeratorFunc(func(Filter) (Set, error) {
		return NewSnapshot([]Descriptor{
			{InstanceID: "A"},
			{ClassName: "Orphan"},
			{InstanceID: "C", DeviceDescription: "Third"},
		}), nil
	}))

	records := l.List()
	assert.Equal(t, []Record{
		{Index: 0, InstanceID: "A"},
		{Index: 2, InstanceID: "C", DeviceDescription: "Third"},
	}, records)
}

func TestPropertyString(t *testing.T) {
	assert.Equal(t, "friendly name", FriendlyName.String())
	assert.Equal(t, "unknown property", Property(42).String())
}

type enumeratorFunc func(Filter) (Set, error)

func (f enumeratorFunc) Open(filter Filter) (Set, error) {
	return f(filter)
}
