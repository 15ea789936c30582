package logger

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	tests := []struct {
		level, format string
		wantLevel     logrus.Level
		wantJSON      bool
	}{
		{"debug", "json", logrus.DebugLevel, true},
		{"warn", "text", logrus.WarnLevel, false},
		{"nonsense", "", logrus.InfoLevel, false},
		{"error", "JSON", logrus.ErrorLevel, true},
	}

	for _, tt := range tests {
		l := New(tt.level, tt.format)
		assert.Equal(t, tt.wantLevel, l.GetLevel())
		_, isJSON := l.Formatter.(*logrus.JSONFormatter)
		assert.Equal(t, tt.wantJSON, isJSON)
	}
}
