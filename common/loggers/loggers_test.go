package loggers

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWarningLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewWarningLogger(&buf)

	l.Infof("resolved %d extensions", 3)
	l.Warnf("extension %q runs before %q", "sitemap", "mdx")
	l.Errorf("boom")

	out := buf.String()
	assert.NotContains(t, out, "resolved 3 extensions")
	assert.Contains(t, out, `extension "sitemap" runs before "mdx"`)
	assert.Contains(t, out, "boom")
	assert.Equal(t, uint64(1), l.LogCounters().WarnCounter.Load())
	assert.Equal(t, uint64(1), l.LogCounters().ErrorCounter.Load())
	assert.Equal(t, &buf, l.Out())
}

func TestDebugLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewDebugLogger(&buf)

	l.Debugf("decode %s", "markdown")
	l.Info().Println("info line")

	assert.Contains(t, buf.String(), "decode markdown")
	assert.Contains(t, buf.String(), "info line")
	assert.Equal(t, uint64(0), l.LogCounters().WarnCounter.Load())
}
