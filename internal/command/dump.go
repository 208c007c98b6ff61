// Copyright (c) 2026 Vladimirs Ivanovs <rf.vivanovs@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/rf-vivanovs/salt/internal/cache"
	"github.com/rf-vivanovs/salt/internal/meta"
)

// dumpTTL keeps every entry alive for the duration of a dump, so that
// expired-but-present entries are still shown.
const dumpTTL = 100 * 365 * 24 * time.Hour

// DumpCommandAction is the action handler for the "dump" subcommand. It
// decodes a disk cache file, handling both on-disk layouts, and emits its
// entries per the common output flags.
func DumpCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", actionArgs(m))

	path := cmd.Args().First()
	if path == "" {
		return errors.New("a cache file path is required")
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("cannot read cache file: %w", err)
	}

	d := cache.NewDisk(dumpTTL, path)
	return Emit(os.Stdout, cmd, d.Items())
}

// DumpCommandBuilder constructs the "dump" subcommand.
func DumpCommandBuilder(app *cli.Command, m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "dump",
		Usage:     "decode and print a disk cache file",
		UsageText: "saltcache dump [options] <file>",
		Metadata: map[string]any{
			"meta": m,
		},
		Flags:  NewGlobalFlags("dump"),
		Action: DumpCommandAction,
	}
}
