package helpers

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

func TestNewLogger_Levels(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, NewLogger("app", "development", "").GetLevel())
	assert.Equal(t, logrus.InfoLevel, NewLogger("app", "production", "").GetLevel())
	assert.Equal(t, logrus.WarnLevel, NewLogger("app", "production", "warn").GetLevel())
	assert.Equal(t, logrus.InfoLevel, NewLogger("app", "production", "loud").GetLevel())

	_, isJSON := NewLogger("app", "production", "").Formatter.(*logrus.JSONFormatter)
	assert.True(t, isJSON)
}

func TestLogError_AddsErrorField(t *testing.T) {
	logger, hook := test.NewNullLogger()
	LogError(logger, "boom", assert.AnError, logrus.Fields{"user_id": "1"})

	entry := hook.LastEntry()
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Equal(t, assert.AnError.Error(), entry.Data["error"])
	assert.Equal(t, "1", entry.Data["user_id"])

	LogInfo(logger, "ok", nil)
	assert.Equal(t, logrus.InfoLevel, hook.LastEntry().Level)
}
