package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tkerror "github.com/msto63/toolkit/core/error"
	tkerrors "github.com/msto63/toolkit/core/errors"
)

const enumConfig = `
[enums.perm]
flags = true

[enums.perm.members]
None = 0
Read = 1
Write = 2
Exec = 4

[enums.color.members]
Red = 1
Green = 2

[search.defaults]
format = "json"
`

const enumDefinitions = `
- name: level
  members:
    - name: Low
      value: 1
    - name: High
      value: 3
`

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestEnumDescribe(t *testing.T) {
	path := writeFile(t, "app.toml", enumConfig)

	out, _, err := run(t, "enum", "describe", "--file", path, "--enum", "perm")
	require.NoError(t, err)
	assert.Contains(t, out, "perm")
	assert.Contains(t, out, "(flags, 4 members)")
	for _, name := range []string{"None", "Read", "Write", "Exec", "0x4"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "all: Read, Write, Exec")

	_, _, err = run(t, "enum", "describe", "--file", path)
	require.Error(t, err, "two definitions need --enum")
	assert.Contains(t, err.Error(), "color, perm")

	_, _, err = run(t, "enum", "describe", "--file", path, "--enum", "shape")
	assert.Equal(t, tkerror.CodeNotFound, tkerror.GetCode(err))
}

func TestEnumDescribeFromConfigFlag(t *testing.T) {
	path := writeFile(t, "app.toml", enumConfig)

	out, _, err := run(t, "--config", path, "enum", "describe", "-e", "color")
	require.NoError(t, err)
	assert.Contains(t, out, "(enum, 2 members)")
	assert.NotContains(t, out, "all:")

	_, _, err = run(t, "enum", "describe")
	assert.Equal(t, tkerror.CodeMissingConfig, tkerror.GetCode(err))
}

func TestEnumDefinitionFile(t *testing.T) {
	path := writeFile(t, "levels.yaml", enumDefinitions)

	out, _, err := run(t, "enum", "describe", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "level")
	assert.Contains(t, out, "High")

	out, _, err = run(t, "enum", "format", "--file", path, "3")
	require.NoError(t, err)
	assert.Equal(t, "High\n", out)

	out, _, err = run(t, "enum", "format", "--file", path, "2")
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)
}

func TestEnumValues(t *testing.T) {
	path := writeFile(t, "app.toml", enumConfig)
	base := []string{"enum", "--file", path, "--enum", "perm"}
	cmd := func(args ...string) []string {
		return append(append([]string{}, base[:1]...), append(args, base[1:]...)...)
	}

	out, _, err := run(t, cmd("format", "7")...)
	require.NoError(t, err)
	assert.Equal(t, "Read, Write, Exec\n", out)

	out, _, err = run(t, cmd("format", "0x9")...)
	require.NoError(t, err)
	assert.Equal(t, "Read, 8\n", out)

	out, _, err = run(t, cmd("parse", "Read, Exec")...)
	require.NoError(t, err)
	assert.Equal(t, "5\n", out)

	_, _, err = run(t, cmd("parse", "read")...)
	assert.Equal(t, tkerror.CodeEnumParse, tkerror.GetCode(err))

	out, _, err = run(t, cmd("parse", "-i", "read,WRITE")...)
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)

	out, _, err = run(t, cmd("decompose", "13")...)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Read")
	assert.Contains(t, lines[1], "Exec")
	assert.Contains(t, lines[2], "(undefined)")

	_, _, err = run(t, cmd("format", "seven")...)
	assert.Equal(t, tkerror.Code(tkerrors.CodeInvalidFormat), tkerror.GetCode(err))
}

func TestStr(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"truncate", []string{"str", "truncate", "--max", "5", "héllo wörld"}, "héllo\n"},
		{"truncate ellipsis", []string{"str", "truncate", "-n", "8", "--ellipsis", "...", "Hello, World!"}, "Hello...\n"},
		{"snake", []string{"str", "case", "--to", "snake", "parseHTTPRequest"}, "parse_http_request\n"},
		{"pascal", []string{"str", "case", "-t", "pascal", "user-id"}, "UserId\n"},
		{"pad right", []string{"str", "pad", "--width", "5", "--align", "right", "--char", "0", "42"}, "00042\n"},
		{"pad center", []string{"str", "pad", "-w", "6", "--align", "center", "--char", "*", "go"}, "**go**\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}

	_, _, err := run(t, "str", "truncate", "--max", "-1", "x")
	assert.Equal(t, tkerror.CodeInvalidInput, tkerror.GetCode(err))

	_, _, err = run(t, "str", "case", "--to", "shouting", "x")
	assert.Equal(t, tkerror.CodeInvalidInput, tkerror.GetCode(err))

	_, _, err = run(t, "str", "pad", "--char", "ab", "x")
	assert.Equal(t, tkerror.CodeInvalidInput, tkerror.GetCode(err))
}

func TestQueryBuild(t *testing.T) {
	out, _, err := run(t, "query", "build", "q=go generics", "page=2", "q=more")
	require.NoError(t, err)
	assert.Equal(t, "?q=go%20generics&page=2&q=more\n", out)

	out, _, err = run(t, "query", "build", "--base", "https://example.org/search?x=1#frag", "q=go")
	require.NoError(t, err)
	assert.Equal(t, "https://example.org/search?x=1&q=go#frag\n", out)

	path := writeFile(t, "app.toml", enumConfig)
	out, _, err = run(t, "--config", path, "query", "build", "--defaults", "search.defaults", "q=go")
	require.NoError(t, err)
	assert.Equal(t, "?format=json&q=go\n", out)

	_, _, err = run(t, "query", "build", "--defaults", "search.defaults")
	assert.Equal(t, tkerror.CodeMissingConfig, tkerror.GetCode(err))

	_, _, err = run(t, "query", "build", "novalue")
	assert.Equal(t, tkerror.Code(tkerrors.CodeInvalidFormat), tkerror.GetCode(err))

	_, _, err = run(t, "query", "build", "=x")
	assert.Equal(t, tkerror.CodeInvalidInput, tkerror.GetCode(err))
}

func TestLogging(t *testing.T) {
	path := writeFile(t, "app.toml", enumConfig)

	for _, format := range []string{"text", "json", "logfmt", "zap"} {
		t.Run(format, func(t *testing.T) {
			_, stderr, err := run(t, "--verbose", "--log-format", format, "enum", "describe", "--file", path, "--enum", "perm")
			require.NoError(t, err)
			assert.Contains(t, stderr, "enum definitions loaded")
		})
	}

	_, stderr, err := run(t, "enum", "describe", "--file", path, "--enum", "perm")
	require.NoError(t, err)
	assert.Empty(t, stderr, "debug output needs --verbose")

	_, _, err = run(t, "--log-format", "xml", "version")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "toolkit v"+Version)
	assert.Contains(t, out, "Go Version:")
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	printError(&buf, tkerror.New("boom").WithCode(tkerror.CodeNotFound))
	assert.Equal(t, "Error [NOT_FOUND]: boom\n", buf.String())

	buf.Reset()
	cause := fmt.Errorf("open app.toml: %w", os.ErrNotExist)
	printError(&buf, tkerror.Wrap(cause, "failed to read config file").WithCode(tkerror.CodeConfigError))
	assert.Equal(t, "Error [CONFIG_ERROR]: failed to read config file\n  cause: file does not exist\n", buf.String())

	buf.Reset()
	printError(&buf, errors.New("plain"))
	assert.Equal(t, "Error: plain\n", buf.String())
}
