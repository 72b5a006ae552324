package ica_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/nnica/ica"
)

// TestNewLogObserver_EmitsDebugEvent verifies the zerolog adapter reports
// the iteration index and change magnitude as structured fields.
func TestNewLogObserver_EmitsDebugEvent(t *testing.T) {
	var buf bytes.Buffer
	obs := ica.NewLogObserver(zerolog.New(&buf).Level(zerolog.DebugLevel))

	obs.Progress(3, 0.125)

	out := buf.String()
	assert.Contains(t, out, `"iteration":3`)
	assert.Contains(t, out, `"delta":0.125`)
	assert.Contains(t, out, `"message":"ica iteration"`)
}

// TestNewLogObserver_SilentAboveDebug verifies that a quieter logger keeps
// the observer from emitting anything, with no effect on the caller.
func TestNewLogObserver_SilentAboveDebug(t *testing.T) {
	var buf bytes.Buffer
	obs := ica.NewLogObserver(zerolog.New(&buf).Level(zerolog.InfoLevel))

	obs.Progress(0, 1.0)

	assert.Empty(t, buf.String())
}
