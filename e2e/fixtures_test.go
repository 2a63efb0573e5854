//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"path/filepath"
)

// CreateTestWorkspace creates a temporary directory the app treats as home
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	return tmpDir, nil
}

// CreateFiles writes the given files under the workspace. Keys are
// workspace-relative paths, values are contents. Parent directories are
// created as needed.
func (tf *TUITestFramework) CreateFiles(files map[string]string) error {
	if tf.workspace == "" {
		return fmt.Errorf("no workspace created")
	}
	for rel, content := range files {
		path := filepath.Join(tf.workspace, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", rel, err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", rel, err)
		}
	}
	return nil
}

// SearchRoot returns a workspace subdirectory to point -root at, so the
// app never walks the config and log files the test itself creates.
func (tf *TUITestFramework) SearchRoot() string {
	root := filepath.Join(tf.workspace, "data")
	_ = os.MkdirAll(root, 0755)
	return root
}
