package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewWithWriter(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, Config{Level: "warn"})
	log.Info("hidden")
	log.Warn("shown", "list_id", "0042000123")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.Contains(t, buf.String(), `"service":"babylist"`)

	buf.Reset()
	NewWithWriter(&buf, Config{Format: "text"}).Info("plain")
	assert.Contains(t, buf.String(), "msg=plain")
}
