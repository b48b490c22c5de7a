package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/katalvlaran/lbmstencil/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := logging.New(logging.LevelWarn, "json", &buf)
	l.Info("dropped")
	l.Warn("kept", "stencils", 2)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "kept", rec["msg"])
	assert.Equal(t, "WARN", rec["level"])
	assert.EqualValues(t, 2, rec["stencils"])
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	l := logging.New(logging.LevelDebug, "", &buf)
	l.Debug("assembled", "dim", 3)
	assert.Contains(t, buf.String(), "msg=assembled")
	assert.Contains(t, buf.String(), "dim=3")
}

func TestLevel_String(t *testing.T) {
	assert.Equal(t, "DEBUG", logging.LevelDebug.String())
	assert.Equal(t, "ERROR", logging.LevelError.String())
	assert.Equal(t, "UNKNOWN", logging.Level(42).String())
}

func TestNoOpLogger(t *testing.T) {
	var l logging.Logger = logging.NoOpLogger{}
	assert.NotPanics(t, func() {
		l.Debug("x")
		l.Info("x")
		l.Warn("x")
		l.Error("x")
	})
}
