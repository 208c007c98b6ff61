// Copyright (c) 2026 Vladimirs Ivanovs <rf.vivanovs@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/rf-vivanovs/salt/internal/cache"
	"github.com/rf-vivanovs/salt/internal/meta"
)

// ContextGetAction reads and emits the snapshot for a scope.
func ContextGetAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", actionArgs(m))

	scope := cmd.Args().First()
	if scope == "" {
		return errors.New("a context scope name is required")
	}

	dir, err := ResolveDir(cmd)
	if err != nil {
		return err
	}

	cc := cache.NewContextCache(dir, scope)
	snapshot, err := cc.GetCacheContext()
	if err != nil {
		return fmt.Errorf("failed to read context %q: %w", scope, err)
	}

	return Emit(os.Stdout, cmd, snapshot)
}

// ContextRmAction removes the snapshot for a scope.
func ContextRmAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", actionArgs(m))

	scope := cmd.Args().First()
	if scope == "" {
		return errors.New("a context scope name is required")
	}

	dir, err := ResolveDir(cmd)
	if err != nil {
		return err
	}

	cc := cache.NewContextCache(dir, scope)
	if err := os.Remove(cc.Path()); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("no cached context for scope %q", scope)
		}
		return fmt.Errorf("failed to remove context %q: %w", scope, err)
	}
	return nil
}

// ContextCommandBuilder constructs the "context" subcommand tree.
func ContextCommandBuilder(app *cli.Command, m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:  "context",
		Usage: "inspect cached context snapshots",
		Metadata: map[string]any{
			"meta": m,
		},
		Commands: []*cli.Command{
			{
				Name:      "get",
				Usage:     "print the snapshot for a scope",
				UsageText: "saltcache context get [options] <scope>",
				Metadata:  map[string]any{"meta": m},
				Flags:     NewGlobalFlags("context"),
				Action:    ContextGetAction,
			},
			{
				Name:      "rm",
				Usage:     "remove the snapshot for a scope",
				UsageText: "saltcache context rm [options] <scope>",
				Metadata:  map[string]any{"meta": m},
				Flags:     NewGlobalFlags("context"),
				Action:    ContextRmAction,
			},
		},
	}
}
