package main

import (
	"bytes"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/oddsieve/internal/cli"
)

var (
	computeLine = regexp.MustCompile(`^It took \d+ms to compute the primes\.$`)
	outputLine  = regexp.MustCompile(`^It took \d+ms to process the input and show you the result\.$`)
)

func noEnv(string) string { return "" }

func runCapture(t *testing.T, getenv func(string) string, args ...string) (int, []string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr, getenv)
	lines := strings.Split(strings.TrimSuffix(stdout.String(), "\n"), "\n")
	if stdout.Len() == 0 {
		lines = nil
	}
	return code, lines, stderr.String()
}

func TestRun_Modes(t *testing.T) {
	t.Run("list and count", func(t *testing.T) {
		code, lines, stderr := runCapture(t, noEnv, "-p", "-c", "10")
		require.Equal(t, 0, code)
		require.Len(t, lines, 4)
		assert.Equal(t, "[ 2, 3, 5, 7 ]", lines[0])
		assert.Equal(t, "There are 4 primes up to 10.", lines[1])
		assert.Regexp(t, computeLine, lines[2])
		assert.Regexp(t, outputLine, lines[3])
		assert.Empty(t, stderr)
	})

	t.Run("count only", func(t *testing.T) {
		code, lines, _ := runCapture(t, noEnv, "-C", "100")
		require.Equal(t, 0, code)
		require.Len(t, lines, 3)
		assert.Equal(t, "There are 25 primes up to 100.", lines[0])
	})

	t.Run("list only", func(t *testing.T) {
		code, lines, _ := runCapture(t, noEnv, "3", "-P")
		require.Equal(t, 0, code)
		require.Len(t, lines, 3)
		assert.Equal(t, "[ 2, 3 ]", lines[0])
	})

	t.Run("timing only", func(t *testing.T) {
		code, lines, _ := runCapture(t, noEnv, "1000")
		require.Equal(t, 0, code)
		require.Len(t, lines, 1)
		assert.Regexp(t, computeLine, lines[0])
	})
}

func TestRun_InvalidArguments(t *testing.T) {
	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{"two limits", []string{"10", "20"}, "duplicated argument"},
		{"print twice", []string{"-p", "-p", "10"}, "duplicated argument"},
		{"count twice", []string{"-c", "-C", "10"}, "duplicated argument"},
		{"below minimum", []string{"1"}, "at least 2"},
		{"not a number", []string{"ten"}, "invalid argument"},
		{"unknown flag", []string{"-q", "10"}, "invalid argument"},
		{"missing limit", []string{"-p"}, "missing upper limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, lines, stderr := runCapture(t, noEnv, tt.args...)
			assert.Equal(t, 1, code)
			assert.Empty(t, lines)
			assert.Contains(t, stderr, tt.msg)
		})
	}
}

func TestRun_Env(t *testing.T) {
	t.Run("invalid value", func(t *testing.T) {
		getenv := func(k string) string {
			if k == cli.EnvLogFormat {
				return "xml"
			}
			return ""
		}
		code, _, stderr := runCapture(t, getenv, "10")
		assert.Equal(t, 1, code)
		assert.Contains(t, stderr, cli.EnvLogFormat)
	})

	t.Run("memory limit exceeded", func(t *testing.T) {
		getenv := func(k string) string {
			if k == cli.EnvMemoryLimit {
				return "8"
			}
			return ""
		}
		code, lines, stderr := runCapture(t, getenv, "-c", "1000")
		assert.Equal(t, 1, code)
		assert.Empty(t, lines)
		assert.Contains(t, stderr, "memory limit exceeded")
	})

	t.Run("debug json logging and output rate", func(t *testing.T) {
		env := map[string]string{
			cli.EnvLogLevel:   "debug",
			cli.EnvLogFormat:  "json",
			cli.EnvOutputRate: "1000000",
		}
		code, lines, stderr := runCapture(t, func(k string) string { return env[k] }, "-p", "-c", "30")
		require.Equal(t, 0, code)
		assert.Equal(t, "[ 2, 3, 5, 7, 11, 13, 17, 19, 23, 29 ]", lines[0])
		assert.Equal(t, "There are 10 primes up to 30.", lines[1])
		assert.Contains(t, stderr, `"msg":"sieve build completed"`)
		assert.Contains(t, stderr, `"msg":"run finished"`)
		assert.Contains(t, stderr, `"limit":30`)
	})
}

type brokenPipe struct{}

func (brokenPipe) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestRun_OutputFailurePanics(t *testing.T) {
	var stderr bytes.Buffer
	assert.PanicsWithValue(t,
		"error writing to the standard output stream: write prime list: broken pipe",
		func() { run([]string{"-p", "10"}, brokenPipe{}, &stderr, noEnv) },
	)
}
