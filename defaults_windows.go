// +build windows

package devlist

import (
	"os"
	"path/filepath"
)

var supportedBackends = []string{BackendSetupAPI, BackendWMI}

func init() {
	ex, err := os.Executable()
	if err != nil {
		panic(err)
	}

	exPath := filepath.Dir(ex)

	DefaultCfgPath = filepath.Join(exPath, "./devlist.conf")
}
