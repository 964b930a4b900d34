// +build darwin

package devlist

import (
	"os"
)

var supportedBackends = []string{BackendSysProfiler}

func init() {
	DefaultCfgPath = os.Getenv("HOME") + "/.devlist/devlist.conf"
}
