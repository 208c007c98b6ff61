// Copyright © 2026 Vladimirs Ivanovs rf.vivanovs@gmail.com
// SPDX-License-Identifier: MIT

// Package command wires the saltcache CLI: listing, dumping, and purging
// cache files, and inspecting context snapshots.
package command
