package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ipld/go-ipld-prime/node/basicnode"
	"github.com/storacha/go-xxh/core/ipld/codec/cbor"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return code, strings.TrimSpace(stdout.String()), stderr.String()
}

func TestRun(t *testing.T) {
	testCases := []struct {
		name  string
		stdin string
		args  []string
		out   string
	}{
		{"empty vector", "", []string{"--fn", "hash-vec-64", "[]"}, "EF46DB3751D8E999"},
		{"vector 32", "", []string{"--fn", "hash-vec-32", "[97, 98, 99]"}, "32D153FF"},
		{"json string", "", []string{`"abc"`}, "44BC2CF5AD770999"},
		{"raw text", "", []string{"--fn", "hash-str-32", "--text", "abc"}, "32D153FF"},
		{"stdin", `"abc"`, nil, "44BC2CF5AD770999"},
		{"stdin dash", "abc", []string{"--text", "-"}, "44BC2CF5AD770999"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code, out, stderr := runCLI(t, tc.stdin, tc.args...)
			require.Equal(t, exitOK, code, stderr)
			require.Equal(t, tc.out, out)
		})
	}
}

func TestRunCBOR(t *testing.T) {
	b, err := cbor.Encode(basicnode.NewString("abc"))
	require.NoError(t, err)
	code, out, stderr := runCLI(t, string(b), "--codec", "cbor")
	require.Equal(t, exitOK, code, stderr)
	require.Equal(t, "44BC2CF5AD770999", out)
}

func TestRunFormats(t *testing.T) {
	code, out, _ := runCLI(t, "", "--fn", "hash-str-64", "--format", "multihash", `"abc"`)
	require.Equal(t, exitOK, code)
	require.True(t, strings.HasSuffix(out, "44bc2cf5ad770999"), out)

	code, out, _ = runCLI(t, "", "--format", "multibase", `"abc"`)
	require.Equal(t, exitOK, code)
	require.True(t, strings.HasPrefix(out, "z"), out)

	code, out, _ = runCLI(t, "", "--format", "cid", `"abc"`)
	require.Equal(t, exitOK, code)
	require.True(t, strings.HasPrefix(out, "b"), out)

	code, _, _ = runCLI(t, "", "--format", "base64", `"abc"`)
	require.Equal(t, exitUsage, code)

	t.Run("unknown format is rejected before hashing", func(t *testing.T) {
		code, out, errOut := runCLI(t, "", "--fn", "hash-vec-64", "--format", "base64", `[1, "x"]`)
		require.Equal(t, exitUsage, code)
		require.Empty(t, out)
		require.Contains(t, errOut, `unknown format "base64"`)
		require.NotContains(t, errOut, "TypeMismatch")
	})
}

func TestRunFailures(t *testing.T) {
	code, out, stderr := runCLI(t, "", "--fn", "hash-vec-64", `[1, "x"]`)
	require.Equal(t, exitFailure, code)
	require.Empty(t, out)
	require.Contains(t, stderr, `"name":"TypeMismatch"`)
	require.Contains(t, stderr, `"message":"not a number"`)

	code, _, stderr = runCLI(t, "", "--fn", "hash-str-64", "--limit", "2", "--text", "abc")
	require.Equal(t, exitFailure, code)
	require.Contains(t, stderr, `"name":"CapacityExceeded"`)

	code, _, stderr = runCLI(t, "", "--fn", "hash-str-64", "--format", "cid", "[1]")
	require.Equal(t, exitFailure, code)
	require.Contains(t, stderr, `"message":"not a string"`)
}

func TestRunUsage(t *testing.T) {
	code, _, _ := runCLI(t, "", "--fn", "hash-vec-128", "[]")
	require.Equal(t, exitUsage, code)

	code, _, _ = runCLI(t, "", "--codec", "xml", "[]")
	require.Equal(t, exitUsage, code)

	code, _, _ = runCLI(t, "", "[1,")
	require.Equal(t, exitUsage, code)

	code, _, _ = runCLI(t, "", "[]", "[]")
	require.Equal(t, exitUsage, code)

	code, _, _ = runCLI(t, "", "--bogus")
	require.Equal(t, exitUsage, code)
}

func TestRunList(t *testing.T) {
	code, out, _ := runCLI(t, "", "--list")
	require.Equal(t, exitOK, code)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 8)
	require.True(t, strings.HasPrefix(lines[0], "hash-str-32\t"))
	require.True(t, strings.HasPrefix(lines[7], "xxh-64-str\t"))
}
