// Copyright (c) 2026 Vladimirs Ivanovs <rf.vivanovs@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/apex/log"
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/rf-vivanovs/salt/internal/cacheutil"
	"github.com/rf-vivanovs/salt/internal/meta"
)

// PurgeCommandAction is the action handler for the "purge" subcommand. It
// removes cache files older than the configured number of hours.
func PurgeCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", actionArgs(m))

	return cacheutil.Purge(cmd.Int("hours"))
}

// PurgeCommandBuilder constructs the "purge" subcommand.
func PurgeCommandBuilder(app *cli.Command, m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:  "purge",
		Usage: "remove cache files past their maximum age",
		Metadata: map[string]any{
			"meta": m,
		},
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "hours",
				Usage: "remove files older than this many hours (0 disables)",
				Sources: cli.NewValueSourceChain(
					yaml.YAML("purge.hours", altsrc.StringSourcer(cfg.Source)),
					yaml.YAML("cache.clean", altsrc.StringSourcer(cfg.Source)),
				),
				Value: 0,
			},
		},
		Action: PurgeCommandAction,
	}
}
