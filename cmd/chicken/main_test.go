package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	out := new(bytes.Buffer)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(out)
	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		// Flags keep their values between executions.
		require.NoError(t, rootCmd.Flags().Set("parallel", "0"))
		require.NoError(t, rootCmd.Flags().Set("encoding", "chicken"))
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestEncodeStdin(t *testing.T) {
	out, err := execute(t, "\x00\xFF")
	require.NoError(t, err)
	require.Equal(t, "chicken CHICKEN. ", out)
}

func TestEncodeFileParallel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in")
	require.NoError(t, os.WriteFile(path, []byte("\x80\x01"), 0o600))

	out, err := execute(t, "", "--parallel", "2", path)
	require.NoError(t, err)
	require.Equal(t, "chicken. Chicken ", out)
}

func TestEncodeMissingFile(t *testing.T) {
	_, err := execute(t, "", filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "opening")
}

func TestUnsupportedEncoding(t *testing.T) {
	_, err := execute(t, "x", "--encoding", "base64")
	require.ErrorContains(t, err, "not supported")
}

func TestTable(t *testing.T) {
	out, err := execute(t, "", "table")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 256)
	require.Equal(t, "00 chicken", lines[0])
	require.Equal(t, "ff CHICKEN.", lines[255])
}
