package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestSeedCommands(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("HUNTING_DATABASE_PATH", filepath.Join(dir, "seed.db"))
	t.Setenv("HUNTING_LOG_LEVEL", "error")

	out, err := execute(t, "user", "create", "--username", "test", "--password", "123qwe")
	require.NoError(t, err)
	assert.Equal(t, "1\ttest\n", out)

	_, err = execute(t, "user", "create", "--username", "test", "--password", "123qwe")
	assert.ErrorContains(t, err, "user already exists")

	out, err = execute(t, "skill", "create", "sql", "go")
	require.NoError(t, err)
	assert.Equal(t, "1\tsql\n2\tgo\n", out)

	out, err = execute(t, "skill", "list")
	require.NoError(t, err)
	assert.Equal(t, "2\tgo\n1\tsql\n", out)

	_, err = execute(t, "skill", "create")
	assert.Error(t, err)
}

// chdir changes the working directory for the duration of the test
// (equivalent to testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
