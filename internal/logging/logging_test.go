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

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	log, err := New("text", "debug", &buf)
	require.NoError(t, err)

	log.Debug(context.Background(), "dbg", "a", 1)
	log.With("request_id", "r-1").Warn(context.Background(), "wrn")

	out := buf.String()
	assert.Contains(t, out, "level=DEBUG")
	assert.Contains(t, out, "a=1")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "request_id=r-1")
}

func TestNew_JSONRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := New("json", "warn", &buf)
	require.NoError(t, err)

	log.Info(context.Background(), "hidden")
	log.Error(context.Background(), "shown", "status", 401)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)
	assert.Contains(t, out, `"status":401`)
}

func TestNew_Zerolog(t *testing.T) {
	var buf bytes.Buffer
	log, err := New("zerolog", "info", &buf)
	require.NoError(t, err)

	log.Debug(context.Background(), "hidden")
	log.With("component", "http").Info(context.Background(), "refresh started", "queued", 2)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"message":"refresh started"`)
	assert.Contains(t, out, `"component":"http"`)
	assert.Contains(t, out, `"queued":2`)
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func TestNew_UnknownFormat(t *testing.T) {
	_, err := New("xml", "info", &bytes.Buffer{})
	require.Error(t, err)
}

func TestNop_DoesNotPanic(t *testing.T) {
	l := Nop()
	ctx := context.TODO()
	l.Debug(ctx, "x")
	l.Info(ctx, "x")
	l.Warn(ctx, "x")
	l.Error(ctx, "x")
	l.With("k", "v").Info(ctx, "y")
}

func TestFromSlog_AllLevels(t *testing.T) {
	var buf bytes.Buffer
	log := FromSlog(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	ctx := context.Background()

	log.Debug(ctx, "dbg", "a", 1)
	log.Info(ctx, "inf", "b", 2)
	log.Warn(ctx, "wrn", "c", 3)
	log.Error(ctx, "err", "d", 4)

	out := buf.String()
	for _, want := range []string{
		"level=DEBUG msg=dbg a=1",
		"level=INFO msg=inf b=2",
		"level=WARN msg=wrn c=3",
		"level=ERROR msg=err d=4",
	} {
		assert.Contains(t, out, want)
	}
}

func TestFromSlog_ChildKeepsOwnAttrs(t *testing.T) {
	var buf bytes.Buffer
	base := FromSlog(slog.New(slog.NewTextHandler(&buf, nil)))
	child := base.With("component", "session")

	base.Info(context.Background(), "base")
	child.Info(context.Background(), "child")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.NotContains(t, lines[0], "component=")
	assert.Contains(t, lines[1], "component=session")
}

func TestFromSlog_NilUsesDefault(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	FromSlog(nil).Info(context.Background(), "to default", "k", "v")
	assert.Contains(t, buf.String(), "msg=\"to default\" k=v")
}
