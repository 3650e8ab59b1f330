package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/jeffrom/fdiff/model"
)

// MissingCommitsError is returned by Check when the branch has commits the
// baseline lacks.
type MissingCommitsError struct {
	Branch   string
	Baseline string
	Commits  []model.Commit
}

func (e MissingCommitsError) Error() string {
	return fmt.Sprintf("%d commit(s) on %s missing from %s", len(e.Commits), e.Branch, e.Baseline)
}

func (e MissingCommitsError) Is(other error) bool {
	_, ok := other.(MissingCommitsError)
	return ok
}

func (e MissingCommitsError) WriteFailure(w io.Writer) error {
	if len(e.Commits) == 0 {
		return nil
	}
	bw := bufio.NewWriter(w)
	bw.WriteString(fmt.Sprintf("missing from %s:\n", e.Baseline))
	for _, c := range e.Commits {
		bw.WriteString("  ")
		bw.WriteString(c.ShortID())
		bw.WriteString(" ")
		bw.WriteString(c.Summary)
		bw.WriteString("\n")
	}
	return bw.Flush()
}

// Check fails with MissingCommitsError unless every commit on branch, minus
// exclusions, is also on baseline.
func (r *Runner) Check(ctx context.Context, branch, baseline, repoPath string) error {
	rep, err := r.Reconcile(ctx, branch, baseline, repoPath)
	if err != nil {
		return err
	}
	if len(rep.Commits) > 0 {
		return MissingCommitsError{Branch: branch, Baseline: baseline, Commits: rep.Commits}
	}
	r.cfg.Debugf("all commits on %s are on %s", branch, baseline)
	return nil
}
