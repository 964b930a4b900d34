package common

import (
	"strings"

	"github.com/pkg/errors"
)

// ErrorCollector accumulates non-fatal errors of a single pass.
type ErrorCollector struct {
	errs []error
}

func (c *ErrorCollector) Add(err error) {
	if err == nil {
		return
	}
	c.errs = append(c.errs, err)
}

func (c *ErrorCollector) HasErrors() bool {
	return len(c.errs) > 0
}

func (c *ErrorCollector) Len() int {
	return len(c.errs)
}

func (c *ErrorCollector) Combine() error {
	if c.HasErrors() {
		return errors.New(c.String())
	}
	return nil
}

func (c *ErrorCollector) String() string {
	parts := make([]string, 0, len(c.errs))
	for _, err := range c.errs {
		parts = append(parts, err.Error())
	}
	return strings.Join(parts, "; ")
}
