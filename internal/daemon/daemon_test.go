package daemon

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/txxt/internal/config"
	txxterrors "git.home.luguber.info/inful/txxt/internal/errors"
)

func TestNew_RejectsMissingPaths(t *testing.T) {
	_, err := New(config.Default(), nil)
	require.Error(t, err)
	require.True(t, txxterrors.IsCategory(err, txxterrors.CategoryValidation))

	_, err = New(config.Default(), []string{filepath.Join(t.TempDir(), "absent")})
	require.Error(t, err)
	require.True(t, txxterrors.IsCategory(err, txxterrors.CategoryFileSystem))
}

func TestReformat_RewritesOnlyUnformattedDocuments(t *testing.T) {
	dir := t.TempDir()
	d, err := New(config.Default(), []string{dir})
	require.NoError(t, err)

	dirty := filepath.Join(dir, "dirty.txt")
	require.NoError(t, os.WriteFile(dirty, []byte("intro\n1. Section\nbody   \n"), 0o644))
	clean := filepath.Join(dir, "clean.txt")
	cleanContent := "intro\n\n1. Section\n\nbody\n"
	require.NoError(t, os.WriteFile(clean, []byte(cleanContent), 0o644))

	d.reformat(dirty)
	d.reformat(clean)

	got, err := os.ReadFile(dirty)
	require.NoError(t, err)
	require.Equal(t, "intro\n\n1. Section\n\nbody\n", string(got))

	got, err = os.ReadFile(clean)
	require.NoError(t, err)
	require.Equal(t, cleanContent, string(got))
}

func TestSweep_CountsReferenceErrors(t *testing.T) {
	dir := t.TempDir()
	doc := "1. Intro\n\nsee: missing.txt\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "doc.txt"), []byte(doc), 0o644))

	d, err := New(config.Default(), []string{dir})
	require.NoError(t, err)
	require.NoError(t, d.sweep(context.Background(), "test-run"))
}
