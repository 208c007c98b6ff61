// Copyright (c) 2026 Vladimirs Ivanovs <rf.vivanovs@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cache

import "errors"

var (
	// ErrKeyNotFound is returned by lookups for keys that are absent or
	// have expired.
	ErrKeyNotFound = errors.New("key not found in cache")

	// ErrContextNotFound is returned when no snapshot exists for a scope.
	// Callers treat it as "cold start", not as a failure.
	ErrContextNotFound = errors.New("no cached context available")

	// ErrCodecUnavailable is returned by operations that cannot proceed
	// without a serialization codec.
	ErrCodecUnavailable = errors.New("serialization codec is unavailable")
)
