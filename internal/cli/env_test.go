package cli

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mapEnv(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoadEnv_Defaults(t *testing.T) {
	env, err := LoadEnv(mapEnv(nil))
	require.NoError(t, err)
	assert.Equal(t, DefaultEnv(), env)
	assert.Equal(t, slog.LevelWarn, env.LogLevel)
	assert.Equal(t, LogFormatText, env.LogFormat)
}

func TestLoadEnv(t *testing.T) {
	env, err := LoadEnv(mapEnv(map[string]string{
		EnvLogLevel:    "debug",
		EnvLogFormat:   " JSON ",
		EnvMemoryLimit: "1048576",
		EnvOutputRate:  "4096",
	}))
	require.NoError(t, err)

	assert.Equal(t, slog.LevelDebug, env.LogLevel)
	assert.Equal(t, LogFormatJSON, env.LogFormat)
	assert.Equal(t, int64(1<<20), env.MemoryLimit)
	assert.Equal(t, int64(4096), env.OutputRate)
}

func TestLoadEnv_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"log level", map[string]string{EnvLogLevel: "loud"}},
		{"log format", map[string]string{EnvLogFormat: "xml"}},
		{"memory limit", map[string]string{EnvMemoryLimit: "lots"}},
		{"negative memory limit", map[string]string{EnvMemoryLimit: "-1"}},
		{"output rate", map[string]string{EnvOutputRate: "1.5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadEnv(mapEnv(tt.env))

			var ie *InvalidError
			assert.ErrorAs(t, err, &ie)
		})
	}
}
