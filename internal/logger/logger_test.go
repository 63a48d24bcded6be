package logger

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithContextFields(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	ctx := ContextWithRequestID(ContextWithUser(context.Background(), "user-1"), "req-1")
	WithContext(ctx).WithField("team_id", "t-1").Info("joined")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "joined", entry.Message)
	assert.Equal(t, "user-1", entry.Data["user"])
	assert.Equal(t, "req-1", entry.Data["request_id"])
	assert.Equal(t, "t-1", entry.Data["team_id"])
}

func TestWithContextAnonymous(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	WithContext(context.Background()).Warn("no user")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "unknown", entry.Data["user"])
	_, hasRequestID := entry.Data["request_id"]
	assert.False(t, hasRequestID)
}

func TestSetupLevel(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)

	Setup("debug")
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	Setup("bogus")
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}
