// Package fdiff prints the commits on one branch that are missing from
// another, matching commits by summary rather than by hash.
//
// Related packages: config, commit, runner, model, vcs, vcs/gitcli, vcs/gogit
package fdiff

import (
	"github.com/jeffrom/fdiff/config"
	"github.com/jeffrom/fdiff/model"
)

// Config holds the configuration for fdiff. This struct is intended for
// command-line use, so not all of its attributes are applicable to every
// operation.
//
// See "go doc github.com/jeffrom/fdiff/config Config" for more information.
type Config = config.Config

// Commit is a commit as read from a branch log.
type Commit = model.Commit
