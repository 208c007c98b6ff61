// Copyright © 2026 Vladimirs Ivanovs rf.vivanovs@gmail.com
// SPDX-License-Identifier: MIT

package meta

import (
	"context"

	"github.com/rf-vivanovs/salt/internal/config"
)

// Meta are the meta-options that are available on all or most commands.
type Meta struct {
	Args     []string
	CacheDir string
	Config   config.Type
	Context  context.Context
}
