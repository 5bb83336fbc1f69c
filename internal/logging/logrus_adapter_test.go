package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogrusAdapter(t *testing.T) {
	tests := []struct {
		name        string
		level       string
		format      string
		expectLevel logrus.Level
		expectJSON  bool
	}{
		{"debug text", "debug", "text", logrus.DebugLevel, false},
		{"info json", "info", "json", logrus.InfoLevel, true},
		{"warn text", "warn", "text", logrus.WarnLevel, false},
		{"invalid level defaults to info", "chatty", "text", logrus.InfoLevel, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := NewLogrusAdapter(tt.level, tt.format)
			adapter, ok := logger.(*LogrusAdapter)
			require.True(t, ok, "logger should be a LogrusAdapter")
			assert.Equal(t, tt.expectLevel, adapter.logger.Level)

			_, isJSON := adapter.logger.Formatter.(*logrus.JSONFormatter)
			assert.Equal(t, tt.expectJSON, isJSON)
		})
	}
}

func newBufferedLogger(level logrus.Level) (Logger, *bytes.Buffer) {
	base := logrus.New()
	var buf bytes.Buffer
	base.SetOutput(&buf)
	base.SetLevel(level)
	base.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return NewLogrusAdapterFromLogger(base), &buf
}

func TestLogrusAdapter_Fields(t *testing.T) {
	logger, buf := newBufferedLogger(logrus.DebugLevel)

	logger.WithField(FieldItemID, "abc").Info("item updated", F(FieldField, "quantity"))

	out := buf.String()
	assert.Contains(t, out, "item updated")
	assert.Contains(t, out, "item_id=abc")
	assert.Contains(t, out, "field=quantity")
}

func TestLogrusAdapter_WithError(t *testing.T) {
	logger, buf := newBufferedLogger(logrus.ErrorLevel)

	logger.WithError(errors.New("gemini timeout")).Error("suggestion failed")

	out := buf.String()
	assert.Contains(t, out, "suggestion failed")
	assert.Contains(t, out, "gemini timeout")
}

func TestLogrusAdapter_LevelFiltering(t *testing.T) {
	logger, buf := newBufferedLogger(logrus.WarnLevel)

	logger.Debug("hidden")
	logger.Info("also hidden")
	logger.Warn("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
}

func TestMockLogger_SharesEntriesWithDerivedLoggers(t *testing.T) {
	mock := NewMockLogger()
	derived := mock.WithField(FieldDriverID, "1")

	derived.Debug("driver repaired")
	mock.Info("done")

	require.Len(t, mock.Entries(), 2)
	assert.True(t, mock.HasEntry("DEBUG", "driver repaired"))
	assert.Equal(t, []Field{{Key: FieldDriverID, Value: "1"}}, mock.EntriesByLevel("DEBUG")[0].Fields)
}
