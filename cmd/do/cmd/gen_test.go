package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsUpToDate(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "page.templ")
	out := filepath.Join(dir, "page_templ.go")

	assert.False(t, isUpToDate(out, []string{in}))

	require.NoError(t, os.WriteFile(in, []byte("templ"), 0644))
	require.NoError(t, os.WriteFile(out, []byte("go"), 0644))
	old := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(in, old, old))
	assert.True(t, isUpToDate(out, []string{in}))

	require.NoError(t, os.Chtimes(in, time.Now().Add(time.Hour), time.Now().Add(time.Hour)))
	assert.False(t, isUpToDate(out, []string{in}))
}

func TestFindTemplFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.templ"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a_templ.go"), nil, 0644))

	files, err := findTemplFiles(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.templ")}, files)
}
