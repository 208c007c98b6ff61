// Copyright © 2026 Vladimirs Ivanovs rf.vivanovs@gmail.com
// SPDX-License-Identifier: MIT

// saltcache is the main package for the saltcache command line tool. It
// wires the CLI, delegates to internal packages, and serves as the entry
// point.
package main
