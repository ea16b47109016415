package daemon

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type changeCollector struct {
	mu    sync.Mutex
	paths []string
}

func (c *changeCollector) record(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paths = append(c.paths, path)
}

func (c *changeCollector) snapshot() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.paths...)
}

func (c *changeCollector) waitFor(t *testing.T, n int, timeout time.Duration) []string {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if got := c.snapshot(); len(got) >= n {
			return got
		}
		time.Sleep(10 * time.Millisecond)
	}
	return c.snapshot()
}

func TestWatcher_DebouncesRapidWritesIntoOneCallback(t *testing.T) {
	dir := t.TempDir()
	doc := filepath.Join(dir, "doc.txt")
	require.NoError(t, os.WriteFile(doc, []byte("one\n"), 0o644))

	var collector changeCollector
	w, err := NewWatcher([]string{dir}, 100*time.Millisecond, nil, collector.record)
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(doc, []byte("changed\n"), 0o644))
		time.Sleep(5 * time.Millisecond)
	}

	got := collector.waitFor(t, 1, 2*time.Second)
	require.NotEmpty(t, got)
	require.Len(t, got, 1, "rapid writes must collapse into one callback")
	require.Equal(t, doc, got[0])
}

func TestWatcher_SingleFileRootReceivesWriteEvents(t *testing.T) {
	dir := t.TempDir()
	doc := filepath.Join(dir, "doc.txt")
	require.NoError(t, os.WriteFile(doc, []byte("one\n"), 0o644))

	var collector changeCollector
	w, err := NewWatcher([]string{doc}, 50*time.Millisecond, nil, collector.record)
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	require.NoError(t, os.WriteFile(doc, []byte("changed\n"), 0o644))

	got := collector.waitFor(t, 1, 2*time.Second)
	require.NotEmpty(t, got, "a file given directly as a watch root must report its writes")
	require.Equal(t, doc, got[0])
}

func TestWatcher_SingleFileRootIgnoresSiblingWrites(t *testing.T) {
	dir := t.TempDir()
	doc := filepath.Join(dir, "doc.txt")
	sibling := filepath.Join(dir, "other.txt")
	require.NoError(t, os.WriteFile(doc, []byte("one\n"), 0o644))
	require.NoError(t, os.WriteFile(sibling, []byte("one\n"), 0o644))

	var collector changeCollector
	w, err := NewWatcher([]string{doc}, 30*time.Millisecond, nil, collector.record)
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	require.NoError(t, os.WriteFile(sibling, []byte("x\n"), 0o644))
	require.NoError(t, os.WriteFile(doc, []byte("y\n"), 0o644))

	got := collector.waitFor(t, 1, 2*time.Second)
	require.Equal(t, []string{doc}, got, "siblings of a file root share its parent watch but must not fire")
}

func TestWatcher_IgnoresNonDocumentFiles(t *testing.T) {
	dir := t.TempDir()

	var collector changeCollector
	w, err := NewWatcher([]string{dir}, 20*time.Millisecond, nil, collector.record)
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.md"), []byte("x\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "doc.txxt"), []byte("x\n"), 0o644))

	got := collector.waitFor(t, 1, 2*time.Second)
	require.Len(t, got, 1)
	require.Equal(t, filepath.Join(dir, "doc.txxt"), got[0])
}

func TestWatcher_StopCancelsPendingCallbacks(t *testing.T) {
	dir := t.TempDir()

	var collector changeCollector
	w, err := NewWatcher([]string{dir}, 200*time.Millisecond, nil, collector.record)
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "doc.txt"), []byte("x\n"), 0o644))
	time.Sleep(20 * time.Millisecond)
	require.NoError(t, w.Stop())

	time.Sleep(300 * time.Millisecond)
	require.Empty(t, collector.snapshot())
}
