package commit

import (
	"reflect"
	"testing"

	"github.com/jeffrom/fdiff/model"
)

func TestExclude(t *testing.T) {
	commits := []model.Commit{addLogin, fixTypo, chore}

	tcs := []struct {
		name   string
		terms  []string
		expect []model.Commit
	}{
		{name: "nil", terms: nil, expect: commits},
		{name: "empty", terms: []string{}, expect: commits},
		{name: "empty-term", terms: []string{""}, expect: commits},
		{name: "substring", terms: []string{"login"}, expect: []model.Commit{fixTypo, chore}},
		{name: "prefix", terms: []string{"chore:"}, expect: []model.Commit{addLogin, fixTypo}},
		{name: "exact", terms: []string{"fix typo"}, expect: []model.Commit{addLogin, chore}},
		{name: "any-term", terms: []string{"typo", "deps"}, expect: []model.Commit{addLogin}},
		{name: "case-sensitive", terms: []string{"LOGIN"}, expect: commits},
		{name: "no-match", terms: []string{"release"}, expect: commits},
		{name: "all", terms: []string{" "}, expect: []model.Commit{}},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			got := Exclude(commits, tc.terms)
			if !reflect.DeepEqual(got, tc.expect) {
				t.Fatalf("expected %q, got %q", Summaries(tc.expect), Summaries(got))
			}
		})
	}
}

func TestExcludeDoesNotModifyInput(t *testing.T) {
	commits := []model.Commit{addLogin, fixTypo, chore}
	Exclude(commits, []string{"typo"})
	if !reflect.DeepEqual(commits, []model.Commit{addLogin, fixTypo, chore}) {
		t.Fatalf("input was modified: %+v", commits)
	}
}

func TestExclusionsMatch(t *testing.T) {
	ex := Exclusions{"Merge branch '", "wip"}
	if !ex.Match("Merge branch 'main' into feature") {
		t.Error("expected merge commit to match")
	}
	if !ex.Match("wip: stuff") {
		t.Error("expected wip commit to match")
	}
	if ex.Match("feat: merge branches") {
		t.Error("expected feature commit not to match")
	}
	if (Exclusions{}).Match("anything") {
		t.Error("expected empty exclusions to match nothing")
	}
}
