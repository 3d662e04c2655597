package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRun_Usage(t *testing.T) {
	code, _, stderr := runCLI(t)
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, "usage:")

	code, _, stderr = runCLI(t, "frobnicate")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, `unknown command "frobnicate"`)

	code, stdout, _ := runCLI(t, "help")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "datetimecheck serve")
}

func TestRun_InvalidConfig(t *testing.T) {
	t.Setenv("LOG_FORMAT", "xml")
	code, _, stderr := runCLI(t, "check", "2024-01-01 10:00:00")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, "LOG_FORMAT")
}

func TestCheck_Args(t *testing.T) {
	t.Run("all valid", func(t *testing.T) {
		code, stdout, _ := runCLI(t, "check", "2024-02-29 10:00:00", "1999-12-31 23:59:59")
		assert.Equal(t, exitOK, code)
		assert.Equal(t, "0\t2024-02-29 10:00:00\tok\n1\t1999-12-31 23:59:59\tok\n", stdout)
	})

	t.Run("reports violation kinds", func(t *testing.T) {
		code, stdout, _ := runCLI(t, "check", "-field", "starts_at",
			"2024-01-01", "2024-13-01 25:61:61", "2024-01-01 10:00:00")
		assert.Equal(t, exitInvalid, code)

		lines := strings.Split(strings.TrimSpace(stdout), "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, "0\t2024-01-01\tinvalid: invalid_format", lines[0])
		assert.Equal(t, "1\t2024-13-01 25:61:61\tinvalid: invalid_date,invalid_time", lines[1])
		assert.Equal(t, "2\t2024-01-01 10:00:00\tok", lines[2])
	})

	t.Run("logs rejected values", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "debug")
		_, _, stderr := runCLI(t, "check", "-field", "starts_at", "2023-02-29 10:00:00")
		assert.Contains(t, stderr, "value rejected")
		assert.Contains(t, stderr, "field=starts_at")
	})

	t.Run("no values", func(t *testing.T) {
		code, _, stderr := runCLI(t, "check")
		assert.Equal(t, exitUsage, code)
		assert.Contains(t, stderr, "no values to check")
	})

	t.Run("bad flag", func(t *testing.T) {
		code, _, _ := runCLI(t, "check", "-nope")
		assert.Equal(t, exitUsage, code)
	})
}

func TestCheck_File(t *testing.T) {
	t.Run("yaml sequence keeps source text", func(t *testing.T) {
		path := writeFile(t, "values.yaml", `
- 2024-02-29 10:00:00
- "2023-02-29 10:00:00"
- 20240101
- ~
- [1, 2]
`)
		code, stdout, _ := runCLI(t, "check", "-f", path)
		assert.Equal(t, exitInvalid, code)

		lines := strings.Split(strings.TrimSpace(stdout), "\n")
		require.Len(t, lines, 5)
		assert.Equal(t, "0\t2024-02-29 10:00:00\tok", lines[0])
		assert.Equal(t, "1\t2023-02-29 10:00:00\tinvalid: invalid_date", lines[1])
		assert.Equal(t, "2\t20240101\tinvalid: invalid_format", lines[2])
		assert.Equal(t, "3\t<nil>\tok", lines[3])
		assert.Contains(t, lines[4], "error: unexpected value type")
	})

	t.Run("json mapping with field", func(t *testing.T) {
		path := writeFile(t, "values.json", `{"field": "ends_at", "values": ["2000-02-29 23:59:59", "1900-02-29 00:00:00"]}`)
		t.Setenv("LOG_LEVEL", "debug")
		code, stdout, stderr := runCLI(t, "check", "-f", path)
		assert.Equal(t, exitInvalid, code)
		assert.Contains(t, stdout, "0\t2000-02-29 23:59:59\tok")
		assert.Contains(t, stdout, "1\t1900-02-29 00:00:00\tinvalid: invalid_date")
		assert.Contains(t, stderr, "field=ends_at")
	})

	t.Run("args and file combine", func(t *testing.T) {
		path := writeFile(t, "values.yaml", "values:\n  - 2024-01-01 00:00:00\n")
		code, stdout, _ := runCLI(t, "check", "-f", path, "2024-01-02 00:00:00")
		assert.Equal(t, exitOK, code)
		assert.Equal(t, "0\t2024-01-02 00:00:00\tok\n1\t2024-01-01 00:00:00\tok\n", stdout)
	})

	t.Run("missing file", func(t *testing.T) {
		code, _, stderr := runCLI(t, "check", "-f", filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Equal(t, exitUsage, code)
		assert.Contains(t, stderr, "nope.yaml")
	})

	t.Run("scalar document", func(t *testing.T) {
		path := writeFile(t, "values.yaml", "2024-01-01 00:00:00\n")
		code, _, stderr := runCLI(t, "check", "-f", path)
		assert.Equal(t, exitUsage, code)
		assert.Contains(t, stderr, "expected a list")
	})

	t.Run("empty document", func(t *testing.T) {
		path := writeFile(t, "values.yaml", "")
		code, _, stderr := runCLI(t, "check", "-f", path)
		assert.Equal(t, exitUsage, code)
		assert.Contains(t, stderr, "no values to check")
	})
}

func TestServe(t *testing.T) {
	t.Run("stops when context is cancelled", func(t *testing.T) {
		t.Setenv("HTTP_ADDR", "127.0.0.1:0")
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		var stdout, stderr bytes.Buffer
		code := run(ctx, []string{"serve"}, &stdout, &stderr)
		assert.Equal(t, exitOK, code)
		assert.Contains(t, stderr.String(), "http server started")
		assert.Contains(t, stderr.String(), "http server stopped")
	})

	t.Run("reports listen errors", func(t *testing.T) {
		t.Setenv("HTTP_ADDR", ":invalid")
		code, _, stderr := runCLI(t, "serve")
		assert.Equal(t, exitInvalid, code)
		assert.Contains(t, stderr, "failed to start HTTP server")
	})
}
