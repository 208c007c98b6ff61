// Copyright © 2026 Vladimirs Ivanovs rf.vivanovs@gmail.com
// SPDX-License-Identifier: MIT
package command

import (
	"context"
	"sort"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/rf-vivanovs/salt/internal/cacheutil"
	"github.com/rf-vivanovs/salt/internal/config"
	"github.com/rf-vivanovs/salt/internal/meta"
)

func InitApp(ctx context.Context, args []string) (*cli.Command, error) {

	// The arg[1] immediately following the binary (arg[0]) is the saltcache
	// subcommand and also represents the namespace key to be used when
	// retrieving config values. arg[1] could be -h/--help, so ignore it if it
	// appears to be a flag.
	var ns string
	if len(args) > 1 && !strings.HasPrefix(args[1], "-") {
		ns = args[1]
	}

	cfg, _ := config.Load(ns)
	cacheDir, _ := cacheutil.Dir()
	meta := meta.Meta{
		Args:     args,
		CacheDir: cacheDir,
		Config:   cfg,
		Context:  ctx,
	}

	app := &cli.Command{
		Name:  "saltcache",
		Usage: "Salt cache control",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "saltcache version info",
				HideDefault: true,
			},
		},
	}

	app.Commands = append(app.Commands,
		ContextCommandBuilder(app, meta),
		DumpCommandBuilder(app, meta),
		LsCommandBuilder(app, meta),
		PurgeCommandBuilder(app, meta),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range app.Commands {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app, nil
}
