package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/atomforge/atomforge/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempPackFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "packs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestLoadPackFileActivatesNamedPacks(t *testing.T) {
	path := writeTempPackFile(t, "packs:\n  - fn\n")
	e := engine.New()

	require.NoError(t, loadPackFile(e, path))

	out, err := expandFileWithRecovery(e, "fn[x][x]")
	require.NoError(t, err)
	assert.Equal(t, "function (x) {return x}", out)
}

func TestLoadPackFileRegistersAdHocMacro(t *testing.T) {
	path := writeTempPackFile(t, `
macros:
  - pattern: "double[_]"
    template: "_ + _"
`)
	e := engine.New()

	require.NoError(t, loadPackFile(e, path))

	out, err := expandFileWithRecovery(e, "double[5]")
	require.NoError(t, err)
	assert.Equal(t, "5 + 5", out)
}

func TestLoadPackFileReportsUnknownPack(t *testing.T) {
	path := writeTempPackFile(t, "packs:\n  - bogus\n")
	e := engine.New()

	err := loadPackFile(e, path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "bogus")
}

func TestLoadPackFileReportsMissingFile(t *testing.T) {
	e := engine.New()

	err := loadPackFile(e, filepath.Join(t.TempDir(), "does-not-exist.yaml"))

	require.Error(t, err)
}
