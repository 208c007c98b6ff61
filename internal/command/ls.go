// Copyright (c) 2026 Vladimirs Ivanovs <rf.vivanovs@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/rf-vivanovs/salt/internal/meta"
	"github.com/rf-vivanovs/salt/internal/output"
)

// LsCommandAction is the action handler for the "ls" subcommand. It walks
// the cache directory and lists every cache file with its size and age.
func LsCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", actionArgs(m))

	dir, err := ResolveDir(cmd)
	if err != nil {
		return err
	}

	files, err := CollectFiles(dir)
	if err != nil {
		return err
	}

	output.DumpListing(os.Stdout, files)
	return nil
}

// CollectFiles gathers listing rows for every regular file under dir. A
// missing directory yields an empty listing, matching the read-side
// degrade-to-empty policy of the caches themselves.
func CollectFiles(dir string) ([]output.FileInfo, error) {
	var files []output.FileInfo
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil //nolint:nilerr
		}
		files = append(files, output.FileInfo{
			Path:    path,
			Size:    uint64(info.Size()),
			ModTime: info.ModTime(),
		})
		return nil
	})
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	return files, nil
}

// LsCommandBuilder constructs the "ls" subcommand.
func LsCommandBuilder(app *cli.Command, m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:  "ls",
		Usage: "list cache files",
		Metadata: map[string]any{
			"meta": m,
		},
		Flags:  NewGlobalFlags("ls"),
		Action: LsCommandAction,
	}
}
