// Copyright (c) 2026 Vladimirs Ivanovs <rf.vivanovs@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/rf-vivanovs/salt/internal/cacheutil"
	"github.com/rf-vivanovs/salt/internal/meta"
	"github.com/rf-vivanovs/salt/internal/output"
)

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// actionArgs returns the invocation args without the binary name. Safe on
// a zero Meta, whose Args slice is nil.
func actionArgs(m meta.Meta) []string {
	if len(m.Args) == 0 {
		return nil
	}
	return m.Args[1:]
}

// ResolveDir returns the cache directory a command should operate on: the
// --dir flag when given, otherwise the resolved base cache directory.
func ResolveDir(cmd *cli.Command) (string, error) {
	if dir := cmd.String("dir"); dir != "" {
		return dir, nil
	}
	if dir, ok := cacheutil.Dir(); ok {
		return dir, nil
	}
	return "", errors.New("cannot resolve a cache directory; use --dir")
}

// Emit renders v per the common --output and --query flags.
func Emit(w io.Writer, cmd *cli.Command, v any) error {
	if q := cmd.String("query"); q != "" {
		doc, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to marshal for query: %w", err)
		}
		fragment, ok := output.Query(doc, q)
		if !ok {
			return fmt.Errorf("query matched nothing: %s", q)
		}
		fmt.Fprintln(w, fragment)
		return nil
	}

	if cmd.String("output") == "yaml" {
		return output.DumpYAML(w, v)
	}
	return output.DumpJSON(w, v)
}
