package commit

import (
	"github.com/samber/lo"

	"github.com/jeffrom/fdiff/model"
)

// Reconcile returns the commits of branch whose summary appears nowhere in
// baseline, in branch order. Duplicates within branch are kept.
func Reconcile(branch, baseline []model.Commit) []model.Commit {
	seen := lo.Associate(baseline, func(c model.Commit) (string, struct{}) {
		return c.Summary, struct{}{}
	})
	return lo.Filter(branch, func(c model.Commit, _ int) bool {
		_, ok := seen[c.Summary]
		return !ok
	})
}
