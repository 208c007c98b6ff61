// Copyright © 2026 Vladimirs Ivanovs rf.vivanovs@gmail.com
// SPDX-License-Identifier: MIT

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/dustin/go-humanize"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// FileInfo describes one cache file in a listing.
type FileInfo struct {
	Path    string
	Size    uint64
	ModTime time.Time
}

// DumpListing renders cache files as a borderless table with humanized
// sizes and ages.
func DumpListing(w io.Writer, files []FileInfo) {
	if len(files) == 0 {
		fmt.Fprintln(w, "no cache files found")
		return
	}

	var rows [][]string
	for _, f := range files {
		rows = append(rows, []string{
			f.Path,
			humanize.IBytes(f.Size),
			humanize.Time(f.ModTime),
		})
	}

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		Rows(rows...)

	// Set headers and disable the header border for a cleaner look.
	t = t.Headers("Path", "Size", "Age").BorderHeader(false)

	fmt.Fprintln(w, t)
}

// DumpJSON emits v as indented JSON.
func DumpJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal to JSON: %w", err)
	}
	fmt.Fprintln(w, string(b))
	return nil
}

// DumpYAML emits v as YAML.
func DumpYAML(w io.Writer, v any) error {
	b, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal to YAML: %w", err)
	}
	fmt.Fprint(w, string(b))
	return nil
}

// Query applies a gjson path to a JSON document and returns the matching
// fragment. The second return is false when nothing matched.
func Query(doc []byte, path string) (string, bool) {
	result := gjson.GetBytes(doc, path)
	if !result.Exists() {
		return "", false
	}
	return result.String(), true
}
