package cli

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"
)

// Environment variables read by LoadEnv.
const (
	EnvLogLevel    = "ODDSIEVE_LOG_LEVEL"
	EnvLogFormat   = "ODDSIEVE_LOG_FORMAT"
	EnvMemoryLimit = "ODDSIEVE_MEMORY_LIMIT"
	EnvOutputRate  = "ODDSIEVE_OUTPUT_RATE"
)

// LogFormat selects the slog handler.
type LogFormat string

const (
	LogFormatText LogFormat = "text"
	LogFormatJSON LogFormat = "json"
)

// Env holds process settings that the fixed argument grammar has no room for.
type Env struct {
	LogLevel  slog.Level
	LogFormat LogFormat

	// MemoryLimit caps the sieve's bit array in bytes. 0 means unlimited.
	MemoryLimit int64

	// OutputRate caps stdout throughput in bytes per second. 0 means unlimited.
	OutputRate int64
}

// DefaultEnv keeps stderr quiet unless something goes wrong.
func DefaultEnv() Env {
	return Env{
		LogLevel:  slog.LevelWarn,
		LogFormat: LogFormatText,
	}
}

// LoadEnv reads settings through getenv, typically os.Getenv.
func LoadEnv(getenv func(string) string) (Env, error) {
	env := DefaultEnv()

	if v := getenv(EnvLogLevel); v != "" {
		if err := env.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return Env{}, &InvalidError{Arg: EnvLogLevel + "=" + v, Err: err}
		}
	}

	if v := getenv(EnvLogFormat); v != "" {
		switch f := LogFormat(strings.ToLower(strings.TrimSpace(v))); f {
		case LogFormatText, LogFormatJSON:
			env.LogFormat = f
		default:
			return Env{}, &InvalidError{Arg: EnvLogFormat + "=" + v, Err: errors.New("unknown log format")}
		}
	}

	var err error
	if env.MemoryLimit, err = parseBytes(getenv, EnvMemoryLimit); err != nil {
		return Env{}, err
	}
	if env.OutputRate, err = parseBytes(getenv, EnvOutputRate); err != nil {
		return Env{}, err
	}

	return env, nil
}

func parseBytes(getenv func(string) string, key string) (int64, error) {
	v := getenv(key)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil {
		return 0, &InvalidError{Arg: key + "=" + v, Err: err}
	}
	if n < 0 {
		return 0, &InvalidError{Arg: key + "=" + v, Err: errors.New("must not be negative")}
	}
	return n, nil
}
