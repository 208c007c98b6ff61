// Copyright (c) 2026 Vladimirs Ivanovs <rf.vivanovs@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cache

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/apex/log"
	"github.com/apex/log/handlers/memory"
	"github.com/stretchr/testify/assert"

	"github.com/rf-vivanovs/salt/internal/serial"
)

// newMemoryLogger returns a debug-level logger backed by an in-memory
// handler so tests can assert on emitted records.
func newMemoryLogger(level log.Level) (*log.Logger, *memory.Handler) {
	h := memory.New()
	return &log.Logger{Handler: h, Level: level}, h
}

// entriesAt filters captured records by level.
func entriesAt(h *memory.Handler, level log.Level) []*log.Entry {
	var out []*log.Entry
	for _, e := range h.Entries {
		if e.Level == level {
			out = append(out, e)
		}
	}
	return out
}

func TestDisk_NoCodec(t *testing.T) {
	logger, h := newMemoryLogger(log.DebugLevel)
	path := filepath.Join(t.TempDir(), "cache")

	d := NewDisk(time.Minute, path, WithCodec(nil), WithLogger(logger))

	errs := entriesAt(h, log.ErrorLevel)
	assert.Len(t, errs, 1)
	assert.Equal(t, "Cache cannot be read from the disk: msgpack is missing", errs[0].Message)

	// The cache still works, memory-only.
	assert.NoError(t, d.Set("foo", "bar"))
	v, err := d.Get("foo")
	assert.NoError(t, err)
	assert.Equal(t, "bar", v)

	// No file ever gets written in memory-only mode.
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestDisk_ReadNoPath(t *testing.T) {
	logger, h := newMemoryLogger(log.DebugLevel)
	path := "/solar/interference"

	NewDisk(time.Minute, path, WithLogger(logger))

	assert.Empty(t, entriesAt(h, log.ErrorLevel))
	debugs := entriesAt(h, log.DebugLevel)
	assert.Len(t, debugs, 1)
	assert.Equal(t, "Cache path does not exist for reading: /solar/interference", debugs[0].Message)
}

func TestDisk_ReadFailure(t *testing.T) {
	logger, h := newMemoryLogger(log.DebugLevel)

	// A directory exists but cannot be read as a file, which exercises the
	// recoverable read-failure path.
	path := t.TempDir()
	d := NewDisk(time.Minute, path, WithLogger(logger))

	errs := entriesAt(h, log.ErrorLevel)
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "Error while reading disk cache from "+path)
	assert.Contains(t, errs[0].Message, "is a directory")
	assert.Equal(t, 0, d.Len())
}

func TestDisk_CorruptPayload(t *testing.T) {
	logger, h := newMemoryLogger(log.DebugLevel)
	path := filepath.Join(t.TempDir(), "cache")

	// 0xc1 is the one byte the msgpack format never uses.
	assert.NoError(t, os.WriteFile(path, []byte{0xc1}, 0o600))

	d := NewDisk(time.Minute, path, WithLogger(logger))

	errs := entriesAt(h, log.ErrorLevel)
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "Error while reading disk cache from "+path)
	assert.Equal(t, 0, d.Len())
}

func TestDisk_LegacyLayout(t *testing.T) {
	logger, _ := newMemoryLogger(log.DebugLevel)
	path := filepath.Join(t.TempDir(), "cache")

	// A legacy file is a flat mapping with no envelope around it.
	blob, err := serial.Default().Dump(map[string]any{
		"banana": map[string]any{"status": "rotten"},
	})
	assert.NoError(t, err)
	assert.NoError(t, os.WriteFile(path, blob, 0o600))

	d := NewDisk(time.Minute, path, WithLogger(logger))

	assert.True(t, d.Contains("banana"))
	v, err := d.Get("banana")
	assert.NoError(t, err)
	banana, ok := v.(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, "rotten", banana["status"])

	// Per-key freshness is seeded from the file's mtime.
	fi, err := os.Stat(path)
	assert.NoError(t, err)
	ts, ok := d.Freshness("banana")
	assert.True(t, ok)
	assert.True(t, ts.Equal(fi.ModTime()))
}

func TestDisk_ReadSuccessDebugging(t *testing.T) {
	tests := []struct {
		name       string
		level      log.Level
		wantDebugs int
	}{
		{name: "debug enabled", level: log.DebugLevel, wantDebugs: 1},
		{name: "debug disabled", level: log.InfoLevel, wantDebugs: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "cache")
			blob, err := serial.Default().Dump(map[string]any{"banana": "ripe"})
			assert.NoError(t, err)
			assert.NoError(t, os.WriteFile(path, blob, 0o600))

			logger, h := newMemoryLogger(tt.level)
			NewDisk(time.Minute, path, WithLogger(logger))

			debugs := entriesAt(h, log.DebugLevel)
			assert.Len(t, debugs, tt.wantDebugs)
			if tt.wantDebugs > 0 {
				assert.Contains(t, debugs[0].Message, "Disk cache retrieved: ")
				assert.Contains(t, debugs[0].Message, "banana")
			}
		})
	}
}

func TestDisk_Persistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache")

	a := NewDisk(300*time.Millisecond, path)
	assert.NoError(t, a.Set("foo", "bar"))

	// A second instance over the same file sees the entry.
	b := NewDisk(300*time.Millisecond, path)
	assert.True(t, b.Contains("foo"))
	v, err := b.Get("foo")
	assert.NoError(t, err)
	assert.Equal(t, "bar", v)

	// TTL applies independently of disk staleness: once it elapses the key
	// is gone from both instances even though the file is unchanged.
	time.Sleep(600 * time.Millisecond)
	assert.False(t, a.Contains("foo"))
	assert.False(t, b.Contains("foo"))
}

func TestDisk_ExpiryLeavesFileAlone(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache")

	d := NewDisk(50*time.Millisecond, path)
	assert.NoError(t, d.Set("foo", "bar"))

	time.Sleep(100 * time.Millisecond)
	assert.False(t, d.Contains("foo"))

	// Eviction is memory-only; the stale entry stays on disk until the
	// next write flush.
	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	raw, err := serial.Default().Load(data)
	assert.NoError(t, err)
	envelope, ok := raw.(map[string]any)
	assert.True(t, ok)
	entries, ok := envelope["entries"].(map[string]any)
	assert.True(t, ok)
	assert.Contains(t, entries, "foo")
}

func TestDisk_Everything(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache")
	d := NewDisk(time.Minute, path)

	assert.False(t, d.Contains("foo"))
	assert.NoError(t, d.Set("foo", "bar"))
	assert.True(t, d.Contains("foo"))

	v, err := d.Get("foo")
	assert.NoError(t, err)
	assert.Equal(t, "bar", v)

	assert.NoError(t, d.Delete("foo"))
	assert.False(t, d.Contains("foo"))
	assert.ErrorIs(t, d.Delete("foo"), ErrKeyNotFound)

	// Deletes persist too.
	fresh := NewDisk(time.Minute, path)
	assert.False(t, fresh.Contains("foo"))
}

func TestDisk_WriteFailure(t *testing.T) {
	logger, _ := newMemoryLogger(log.ErrorLevel)
	path := filepath.Join(t.TempDir(), "missing", "cache")

	d := NewDisk(time.Minute, path, WithLogger(logger))

	// The parent directory does not exist, so the flush must fail loudly.
	err := d.Set("foo", "bar")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write disk cache to "+path)

	// The in-memory write still took effect.
	assert.True(t, d.Contains("foo"))
}

func TestDisk_String(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache")
	d := NewDisk(time.Minute, path)
	assert.NoError(t, d.Set("foo", "bar"))

	assert.Equal(t, fmt.Sprintf("<Disk of 1 entries at %p>", d), d.String())
}
