package common

import (
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"
)

var (
	loggedOnce   = make(map[string]struct{})
	loggedOnceMu sync.Mutex
)

// LogOncef logs the formatted message at the given level unless the same
// message has already been logged by this process. Watch mode repeats
// listing passes, so missing tools are reported only on the first one.
func LogOncef(level log.Level, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)

	loggedOnceMu.Lock()
	_, seen := loggedOnce[msg]
	if !seen {
		loggedOnce[msg] = struct{}{}
	}
	loggedOnceMu.Unlock()

	if !seen {
		log.StandardLogger().Log(level, msg)
	}
}
