package commit

import (
	"strings"

	"github.com/samber/lo"

	"github.com/jeffrom/fdiff/model"
)

// Exclusions is a list of terms matched against commit summaries. A summary
// matches when it contains any non-empty term. Matching is case-sensitive.
type Exclusions []string

func (e Exclusions) Match(summary string) bool {
	for _, term := range e {
		if term != "" && strings.Contains(summary, term) {
			return true
		}
	}
	return false
}

// Exclude drops every commit whose summary matches terms, keeping order.
func Exclude(commits []model.Commit, terms []string) []model.Commit {
	ex := Exclusions(terms)
	return lo.Reject(commits, func(c model.Commit, _ int) bool {
		return ex.Match(c.Summary)
	})
}
