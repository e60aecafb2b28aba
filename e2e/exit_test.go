//go:build e2e && unix

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestApplicationExit(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	require.NoError(t, tf.StartApp(), "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("swipepager"), "Should show the title")

	done := make(chan error, 1)
	go func() {
		done <- tf.cmd.Wait()
	}()

	tf.Quit()

	select {
	case exitErr := <-done:
		require.NoError(t, exitErr, "q should exit cleanly")
	case <-time.After(1500 * time.Millisecond):
		tf.DumpTailOnFail(t, "exit-failure", 4096)
		tf.SendCtrlC()
		t.Fatal("Application did not exit on q")
	}
}

func TestExitRemembersLastPage(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	workspace, err := tf.CreateTestWorkspace()
	require.NoError(t, err)

	require.NoError(t, tf.StartApp())
	require.True(t, tf.Ready(), "Should receive ready signal")

	require.NoError(t, tf.NextPage())
	require.True(t, tf.SeePlain("page 2/4"), "Should settle on the second page")

	done := make(chan error, 1)
	go func() {
		done <- tf.cmd.Wait()
	}()
	tf.Quit()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("app did not exit after quit")
	}

	cfgPath := filepath.Join(workspace, ".config", "swipepager", "config.toml")
	require.Eventually(t, func() bool {
		data, err := os.ReadFile(cfgPath)
		return err == nil && strings.Contains(string(data), "last_page = 1")
	}, 2*time.Second, 25*time.Millisecond, "last page should be saved")
}
