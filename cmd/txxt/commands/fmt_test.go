package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeDoc(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func defaultRoot(dir string) *CLI {
	return &CLI{Config: filepath.Join(dir, "absent.yaml")}
}

func TestFmtCmd_PlainFormatLeavesTOCAndFootnotesAlone(t *testing.T) {
	dir := t.TempDir()
	doc := writeDoc(t, dir, "doc.txt", "1. Intro\nbody cites [2]\n\n[2] note\n")

	cmd := &FmtCmd{Write: true, Paths: []string{doc}}
	require.NoError(t, cmd.Run(&Global{}, defaultRoot(dir)))

	data, err := os.ReadFile(doc)
	require.NoError(t, err)
	require.NotContains(t, string(data), "TABLE OF CONTENTS")
	require.Contains(t, string(data), "[2] note")
}

func TestFmtCmd_FullRunsTOCAndFootnotePipeline(t *testing.T) {
	dir := t.TempDir()
	doc := writeDoc(t, dir, "doc.txt", "1. Intro\nbody cites [2]\n\n[2] note\n")

	cmd := &FmtCmd{Write: true, Full: true, Paths: []string{doc}}
	require.NoError(t, cmd.Run(&Global{}, defaultRoot(dir)))

	data, err := os.ReadFile(doc)
	require.NoError(t, err)
	require.Contains(t, string(data), "TABLE OF CONTENTS")
	require.Contains(t, string(data), "body cites [1]")
	require.Contains(t, string(data), "[1] note")
}

func TestFmtCmd_MultiplePathsRequireWrite(t *testing.T) {
	dir := t.TempDir()
	a := writeDoc(t, dir, "a.txt", "text\n")
	b := writeDoc(t, dir, "b.txt", "text\n")

	cmd := &FmtCmd{Paths: []string{a, b}}
	require.Error(t, cmd.Run(&Global{}, defaultRoot(dir)))
}
