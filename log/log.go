// Package log traces the steps a build takes through the resolver and
// its collaborators.
package log

import (
	"sync"

	"github.com/sunwei/siteconf/common/loggers"
)

var (
	mu     sync.RWMutex
	logger = loggers.NewErrorLogger()
)

// SetLogger replaces the logger Process writes to. Steps are written at
// debug level, so they only show up with a debug logger.
func SetLogger(l loggers.Logger) {
	mu.Lock()
	logger = l
	mu.Unlock()
}

// Process records that step is doing msg.
func Process(step, msg string) {
	mu.RLock()
	l := logger
	mu.RUnlock()
	l.Debugf("%s: %s", step, msg)
}
