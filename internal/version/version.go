// Copyright (c) 2026 Vladimirs Ivanovs <rf.vivanovs@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package version

// Version is the release version, overridden at build time via -ldflags.
var Version = "dev"
