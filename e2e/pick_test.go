//go:build e2e && unix

package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startPicker starts multipick on a fresh directory holding a.txt, b.txt and c.txt
func startPicker(t *testing.T, args ...string) (*TUITestFramework, string) {
	t.Helper()
	tf := NewTUITest(t)
	t.Cleanup(tf.Cleanup)

	dir, err := tf.CreateWorkspace("a.txt", "b.txt", "c.txt")
	require.NoError(t, err, "Failed to create test workspace")

	require.NoError(t, tf.StartApp(append([]string{"-d", dir}, args...)...))
	require.True(t, tf.SeePlain("c.txt"), "Should list the directory")
	return tf, dir
}

// acceptAndCollect presses enter and returns the plain output written after exit
func acceptAndCollect(t *testing.T, tf *TUITestFramework) string {
	t.Helper()
	require.NoError(t, tf.Enter())

	exited, _ := tf.WaitExit(3 * time.Second)
	if !exited {
		tf.DumpTailOnFail(t, "accept-failure", 4096)
		t.Fatal("Application did not exit after enter")
	}
	return tf.SnapshotPlain()
}

func TestClickAndAccept(t *testing.T) {
	t.Parallel()
	tf, dir := startPicker(t)

	require.NoError(t, tf.ClickItem(1, 0))
	require.True(t, tf.SeePlain("1 selected"), "Status should count the selection")

	out := acceptAndCollect(t, tf)
	assert.Contains(t, out, filepath.Join(dir, "b.txt"))
	assert.NotContains(t, out, filepath.Join(dir, "a.txt"))
}

func TestShiftClickSelectsRange(t *testing.T) {
	t.Parallel()
	tf, dir := startPicker(t)

	require.NoError(t, tf.ClickItem(0, 0))
	require.True(t, tf.SeePlain("1 selected"))
	require.NoError(t, tf.ClickItem(2, ModShift))
	require.True(t, tf.SeePlain("3 selected"))

	out := acceptAndCollect(t, tf)
	for _, name := range []string{"a.txt", "b.txt", "c.txt"} {
		assert.Contains(t, out, filepath.Join(dir, name))
	}
}

func TestAltClickToggles(t *testing.T) {
	t.Parallel()
	tf, dir := startPicker(t)

	require.NoError(t, tf.ClickItem(0, 0))
	require.NoError(t, tf.ClickItem(2, ModAlt))
	require.True(t, tf.SeePlain("2 selected"))

	out := acceptAndCollect(t, tf)
	assert.Contains(t, out, filepath.Join(dir, "a.txt"))
	assert.Contains(t, out, filepath.Join(dir, "c.txt"))
	assert.NotContains(t, out, filepath.Join(dir, "b.txt"))
}

func TestQuitPrintsNothing(t *testing.T) {
	t.Parallel()
	tf, dir := startPicker(t)

	require.NoError(t, tf.ClickItem(0, 0))
	require.True(t, tf.SeePlain("1 selected"))
	require.NoError(t, tf.Quit())

	exited, exitErr := tf.WaitExit(3 * time.Second)
	require.True(t, exited, "Application did not exit after q")
	assert.NoError(t, exitErr)
	assert.NotContains(t, tf.SnapshotPlain(), filepath.Join(dir, "a.txt"))
}

func TestWatchListsNewEntries(t *testing.T) {
	t.Parallel()
	tf, dir := startPicker(t)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "d.txt"), nil, 0644))

	assert.True(t, tf.SeePlain("d.txt"), "New file should appear without a manual rescan")
}

func TestMissingDirectoryFails(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	t.Cleanup(tf.Cleanup)

	dir, err := tf.CreateWorkspace()
	require.NoError(t, err)
	require.NoError(t, tf.StartApp("-d", filepath.Join(dir, "missing")))

	exited, exitErr := tf.WaitExit(3 * time.Second)
	require.True(t, exited)
	assert.Error(t, exitErr)
	assert.True(t, tf.SeePlain("multipick:"), "Should print an error")
}
