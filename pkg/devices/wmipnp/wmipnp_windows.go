// +build windows

package wmipnp

import (
	"time"

	"github.com/StackExchange/wmi"
	ole "github.com/go-ole/go-ole"
	"github.com/pkg/errors"
	"golang.org/x/sys/windows"

	"github.com/cloudradar-monitoring/devlist/pkg/devices"
	"github.com/cloudradar-monitoring/devlist/pkg/winapi"
	"github.com/cloudradar-monitoring/devlist/pkg/wmi"
)

const DefaultQueryTimeout = 10 * time.Second

// Enumerator queries Win32_PnPEntity once per Open and serves the result as a
// snapshot.
type Enumerator struct {
	QueryTimeout time.Duration
}

func New(queryTimeout time.Duration) *Enumerator {
	if queryTimeout <= 0 {
		queryTimeout = DefaultQueryTimeout
	}
	return &Enumerator{QueryTimeout: queryTimeout}
}

func (e *Enumerator) Open(filter devices.Filter) (devices.Set, error) {
	var entities []win32_PnPEntity
	query := wmi.CreateQuery(&entities, whereClause(filter))
	if err := wmiutil.QueryWithTimeout(e.QueryTimeout, query, &entities); err != nil {
		return nil, errors.Wrap(err, "wmipnp: query Win32_PnPEntity")
	}

	describe := cachedDescriber(describeClass)
	entries := make([]devices.Descriptor, 0, len(entities))
	for _, entity := range entities {
		entries = append(entries, toDescriptor(entity, describe))
	}
	return devices.NewSnapshot(entries), nil
}

func describeClass(classGUID string) (string, error) {
	g := ole.NewGUID(classGUID)
	if g == nil {
		return "", errors.Errorf("wmipnp: malformed class GUID %q", classGUID)
	}
	guid := windows.GUID{Data1: g.Data1, Data2: g.Data2, Data3: g.Data3, Data4: g.Data4}
	return winapi.GetClassDescription(&guid)
}
