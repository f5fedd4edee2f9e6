package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"jobcard/internal/config"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		cfg   config.LogConfig
		level zap.AtomicLevel
	}{
		{config.LogConfig{Level: "debug", Format: "json"}, zap.NewAtomicLevelAt(zap.DebugLevel)},
		{config.LogConfig{Level: "warn", Format: "console"}, zap.NewAtomicLevelAt(zap.WarnLevel)},
		{config.LogConfig{Level: "error", Format: "json"}, zap.NewAtomicLevelAt(zap.ErrorLevel)},
	}

	for _, tt := range tests {
		t.Run(tt.cfg.Level+"/"+tt.cfg.Format, func(t *testing.T) {
			l, err := New(tt.cfg)
			require.NoError(t, err)
			assert.True(t, l.Core().Enabled(tt.level.Level()))
			assert.False(t, l.Core().Enabled(tt.level.Level()-1))
		})
	}
}
