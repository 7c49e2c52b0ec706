package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/sunwei/siteconf/common/loggers"
)

func TestProcess(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(loggers.NewDebugLogger(&buf))
	defer SetLogger(loggers.NewErrorLogger())

	Process("Resolve", "validate siteURL")

	assert.Contains(t, buf.String(), "Resolve: validate siteURL")
}
