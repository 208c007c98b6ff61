// Copyright (c) 2026 Vladimirs Ivanovs <rf.vivanovs@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureStderr runs fn with os.Stderr redirected and returns what it wrote.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()

	r, w, err := os.Pipe()
	require.NoError(t, err)
	orig := os.Stderr
	os.Stderr = w
	defer func() { os.Stderr = orig }()

	fn()

	require.NoError(t, w.Close())
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

func TestRealMain_BaseDirFailureIsNonFatal(t *testing.T) {
	// A path nested under a regular file cannot be created.
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))
	t.Setenv("SALTCACHE_DIR", filepath.Join(blocker, "cache"))

	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"saltcache", "ls", "--dir", t.TempDir()}

	var code int
	stderr := captureStderr(t, func() {
		code = realMain()
	})

	assert.Equal(t, 0, code)
	assert.Contains(t, stderr, "failed to create cache base directory")
}
