// +build !windows,!darwin

package devlist

var supportedBackends = []string{BackendLinuxHW}

func init() {
	DefaultCfgPath = "/etc/devlist/devlist.conf"
}
