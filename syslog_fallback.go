// +build windows nacl plan9

package devlist

import "github.com/pkg/errors"

func addSyslogHook(syslogURL string) error {
	return errors.New("syslog not available for windows")
}
