package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Level: "warn", Writer: &buf})
	require.NoError(t, err)

	log.Info("hidden")
	log.Warn("visible")

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, "visible")
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(Options{Level: "shouty"})
	require.Error(t, err)
}

func TestWithFieldsAndComponent(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Level: "debug", Writer: &buf})
	require.NoError(t, err)

	log.WithComponent("resolver").WithFields(map[string]any{"plugin": "core"}).Debug("sorted")

	out := buf.String()
	require.Contains(t, out, `"component":"resolver"`)
	require.Contains(t, out, `"plugin":"core"`)
	require.Contains(t, out, "sorted")
}

func TestNilLoggerIsSafe(t *testing.T) {
	var log *Logger
	require.NotPanics(t, func() {
		log.Debug("a")
		log.Info("b")
		log.Warn("c")
		log.Error(nil, "d")
		log.WithComponent("x").WithFields(map[string]any{"k": "v"}).Info("e")
	})
}

func TestErrorIncludesCause(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Writer: &buf})
	require.NoError(t, err)

	log.Error(errAlwaysFails, "build failed")
	require.True(t, strings.Contains(buf.String(), "boom"))
}

var errAlwaysFails = &fakeErr{}

type fakeErr struct{}

func (*fakeErr) Error() string { return "boom" }
