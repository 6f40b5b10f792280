package repl_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	u "github.com/araddon/gou"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/modregex/internal/repl"
)

func init() {
	u.SetupLogging("error")
}

func TestParseLine(t *testing.T) {
	tests := []struct {
		line string
		want repl.Request
		err  error
	}{
		{"3 2 1", repl.Request{Divisor: 3, Base: 2, Remainder: 1}, nil},
		{"  7\t10 4  ", repl.Request{Divisor: 7, Base: 10, Remainder: 4}, nil},
		{"3 2 1 file", repl.Request{Divisor: 3, Base: 2, Remainder: 1, ToFile: true}, nil},
		{"3 2", repl.Request{}, repl.ErrArgCount},
		{"1 2 3 4 5", repl.Request{}, repl.ErrArgCount},
		{"", repl.Request{}, repl.ErrArgCount},
		{"three 2 1", repl.Request{}, repl.ErrNotNumber},
		{"3 -2 1", repl.Request{}, repl.ErrNotNumber},
	}
	for _, tc := range tests {
		got, err := repl.ParseLine(tc.line)
		if tc.err != nil {
			assert.ErrorIs(t, err, tc.err, tc.line)
			continue
		}
		require.NoError(t, err, tc.line)
		assert.Equal(t, tc.want, got, tc.line)
	}
}

func TestSizeWarning(t *testing.T) {
	assert.Empty(t, repl.SizeWarning(15))
	assert.Contains(t, repl.SizeWarning(16), "Caution")
	assert.Contains(t, repl.SizeWarning(31), "likely to hang")
}

func TestEval(t *testing.T) {
	cfg := repl.Config{Output: filepath.Join(t.TempDir(), "out.txt")}

	assert.Equal(t, "^(0|1(01*0)*1)*1(01*0)*$", repl.Eval("3 2 1", cfg))
	assert.Equal(t, "^0{2}(0{5})*$", repl.Eval("5 0 2", cfg))
	assert.Equal(t, "Cannot divide by 0", repl.Eval("0 10 0", cfg))
	assert.Equal(t, "Remainder must be less than divisor", repl.Eval("3 10 3", cfg))
	assert.Equal(t, "Base must be at most 16", repl.Eval("3 17 0", cfg))
	assert.Equal(t, "No numeral has that remainder", repl.Eval("3 1 2", cfg))
	assert.Equal(t, "Invalid number of arguments", repl.Eval("3", cfg))
	assert.Equal(t, "Input restricted to non-negative integers...", repl.Eval("3 x 1", cfg))
}

func TestEval_WritesFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "regex.txt")
	msg := repl.Eval("3 2 0 x", repl.Config{Output: out})
	assert.Equal(t, "Regex written to '"+out+"'", msg)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "^(0|1(01*0)*1)*$", string(data))
}

func TestRun_StopsOnQuit(t *testing.T) {
	in := strings.NewReader("3 2 1\n1 2\nq\n3 2 0\n")
	var out bytes.Buffer

	require.NoError(t, repl.Run(in, &out, repl.Config{Prompt: "> "}))
	assert.Equal(t, "> ^(0|1(01*0)*1)*1(01*0)*$\n> Invalid number of arguments\n> ", out.String())
}

func TestRun_EOF(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, repl.Run(strings.NewReader("2 10 0"), &out, repl.Config{}))
	assert.Equal(t, "^((0|2|4|6|8)|(1|3|5|7|9)((1|3|5|7|9))*(0|2|4|6|8))*$\n", out.String())
}

func TestRun_ErrorsShareLayout(t *testing.T) {
	in := strings.NewReader("3 2\n0 10 0\n3 2 2 1 1\n3 17 0\n")
	var out bytes.Buffer

	require.NoError(t, repl.Run(in, &out, repl.Config{Prompt: "> "}))
	assert.Equal(t, "> Invalid number of arguments\n"+
		"> Cannot divide by 0\n"+
		"> Invalid number of arguments\n"+
		"> Base must be at most 16\n"+
		"> ", out.String())
}

func TestDefaultConfig(t *testing.T) {
	cfg := repl.DefaultConfig()
	assert.Equal(t, repl.DefaultPrompt, cfg.Prompt)
	assert.Equal(t, repl.DefaultOutput, cfg.Output)
}
