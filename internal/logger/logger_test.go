package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigure(t *testing.T) {
	t.Cleanup(func() { Configure("development") })

	Configure("production")
	_, isJSON := Default().Handler().(*slog.JSONHandler)
	assert.True(t, isJSON)
	assert.False(t, Default().Enabled(context.Background(), slog.LevelDebug))

	Configure("development")
	_, isText := Default().Handler().(*slog.TextHandler)
	assert.True(t, isText)
	assert.True(t, Default().Enabled(context.Background(), slog.LevelDebug))
}

func TestFromContext(t *testing.T) {
	assert.Same(t, Default(), FromContext(context.Background()))

	tagged := With("request_id", "abc")
	ctx := WithContext(context.Background(), tagged)

	assert.Same(t, tagged, FromContext(ctx))
}
