// Copyright © 2026 Vladimirs Ivanovs rf.vivanovs@gmail.com
// SPDX-License-Identifier: MIT

// Package output provides rendering and query utilities used by commands to
// present cache contents and listings in various formats.
package output
