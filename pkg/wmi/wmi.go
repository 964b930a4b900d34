// +build windows

package wmiutil

import (
	"context"
	"time"

	"github.com/StackExchange/wmi"
	"github.com/pkg/errors"
)

// QueryWithTimeout runs a WMI query and gives up after timeout. The query
// goroutine is left to finish on its own when the timeout fires.
func QueryWithTimeout(timeout time.Duration, query string, dst interface{}, connectServerArgs ...interface{}) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	errChan := make(chan error, 1)
	go func() {
		errChan <- wmi.Query(query, dst, connectServerArgs...)
	}()

	select {
	case <-ctx.Done():
		return errors.Wrapf(ctx.Err(), "wmiutil: query %q", query)
	case err := <-errChan:
		return err
	}
}
