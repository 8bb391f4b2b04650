package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTextLogger(t *testing.T) (*SlogLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return NewSlogLogger(slog.New(h)), &buf
}

func TestSlogLogger_Levels(t *testing.T) {
	log, buf := newTextLogger(t)
	ctx := context.Background()

	tests := []struct {
		emit  func(ctx context.Context, msg string, args ...any)
		level string
		msg   string
		attr  string
	}{
		{log.Debug, "DEBUG", "catalog loaded", "jobs=10"},
		{log.Info, "INFO", "job posted", "job_id=42"},
		{log.Warn, "WARN", "users record is malformed", "key=jh_users"},
		{log.Error, "ERROR", "save failed", "attempt=1"},
	}
	for _, tc := range tests {
		buf.Reset()
		k, v, _ := strings.Cut(tc.attr, "=")
		tc.emit(ctx, tc.msg, k, v)

		out := buf.String()
		assert.Contains(t, out, "level="+tc.level)
		assert.Contains(t, out, `msg="`+tc.msg+`"`)
		assert.Contains(t, out, tc.attr)
	}
}

func TestSlogLogger_WithCarriesStoreName(t *testing.T) {
	log, buf := newTextLogger(t)

	log.With("store", "accounts").Info(context.Background(), "signed in", "user_id", 7)

	out := buf.String()
	for _, want := range []string{"level=INFO", `msg="signed in"`, "store=accounts", "user_id=7"} {
		assert.Contains(t, out, want)
	}
}

func TestSlogLogger_NilContext(t *testing.T) {
	log, buf := newTextLogger(t)

	require.NotPanics(t, func() { log.Info(nil, "no ctx") })
	assert.Contains(t, buf.String(), `msg="no ctx"`)
}

func TestNew_SlogRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(BackendSlog, "warn", &buf)
	ctx := context.Background()

	log.Info(ctx, "quiet")
	log.Warn(ctx, "loud")

	out := buf.String()
	assert.NotContains(t, out, "msg=quiet")
	assert.Contains(t, out, "msg=loud")
}

func TestNop_DiscardsOutput(t *testing.T) {
	log := Nop()
	require.NotPanics(t, func() {
		log.Error(context.Background(), "nothing to see")
		log.With("a", 1).Info(context.Background(), "still nothing")
	})
}
