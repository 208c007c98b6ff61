// Copyright (c) 2026 Vladimirs Ivanovs <rf.vivanovs@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package serial

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// Ext is the filename extension used for serialized cache blobs.
const Ext = ".p"

// Error wraps any failure to serialize or deserialize a payload.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("serialization %s failed: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Codec turns payloads into self-contained binary blobs and back. A nil
// Codec models the codec dependency being absent: caches degrade to
// memory-only operation instead of failing the host process.
type Codec interface {
	// Dump serializes v into a single binary blob.
	Dump(v any) ([]byte, error)
	// Load deserializes a blob produced by Dump.
	Load(data []byte) (any, error)
}

// Msgpack is the default Codec, backed by the msgpack wire format.
type Msgpack struct{}

// Dump implements Codec.
func (Msgpack) Dump(v any) ([]byte, error) {
	b, err := msgpack.Marshal(v)
	if err != nil {
		return nil, &Error{Op: "dump", Err: err}
	}
	return b, nil
}

// Load implements Codec.
func (Msgpack) Load(data []byte) (any, error) {
	var v any
	if err := msgpack.Unmarshal(data, &v); err != nil {
		return nil, &Error{Op: "load", Err: err}
	}
	return v, nil
}

// Default returns the codec caches use unless one is injected.
func Default() Codec { return Msgpack{} }

// Available reports whether the given codec can be used.
func Available(c Codec) bool { return c != nil }
