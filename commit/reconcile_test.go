package commit

import (
	"reflect"
	"testing"

	"github.com/jeffrom/fdiff/model"
)

var (
	addLogin = model.Commit{ID: "a1", Date: "2024-01-01", Summary: "add login"}
	fixTypo  = model.Commit{ID: "a2", Date: "2024-01-02", Summary: "fix typo"}
	fixTypoB = model.Commit{ID: "b1", Date: "2024-01-01", Summary: "fix typo"}
	chore    = model.Commit{ID: "a3", Date: "2024-01-03", Summary: "chore: bump deps"}
)

func TestReconcile(t *testing.T) {
	tcs := []struct {
		name     string
		branch   []model.Commit
		baseline []model.Commit
		expect   []model.Commit
	}{
		{
			name:     "basic",
			branch:   []model.Commit{addLogin, fixTypo},
			baseline: []model.Commit{fixTypoB},
			expect:   []model.Commit{addLogin},
		},
		{
			name:     "empty-branch",
			branch:   nil,
			baseline: []model.Commit{fixTypoB},
			expect:   []model.Commit{},
		},
		{
			name:     "empty-baseline",
			branch:   []model.Commit{chore, addLogin, fixTypo},
			baseline: nil,
			expect:   []model.Commit{chore, addLogin, fixTypo},
		},
		{
			name:     "identical",
			branch:   []model.Commit{addLogin, fixTypo},
			baseline: []model.Commit{fixTypoB, {ID: "b2", Summary: "add login"}},
			expect:   []model.Commit{},
		},
		{
			name:     "duplicates-in-branch-survive",
			branch:   []model.Commit{addLogin, fixTypo, {ID: "a4", Summary: "add login"}},
			baseline: []model.Commit{fixTypoB},
			expect:   []model.Commit{addLogin, {ID: "a4", Summary: "add login"}},
		},
		{
			name:     "id-and-date-are-ignored",
			branch:   []model.Commit{{ID: "same", Date: "2024-01-01", Summary: "one"}},
			baseline: []model.Commit{{ID: "same", Date: "2024-01-01", Summary: "two"}},
			expect:   []model.Commit{{ID: "same", Date: "2024-01-01", Summary: "one"}},
		},
		{
			name:     "summaries-are-byte-equal",
			branch:   []model.Commit{{ID: "a1", Summary: "Fix typo"}, {ID: "a2", Summary: "fix typo "}},
			baseline: []model.Commit{fixTypoB},
			expect:   []model.Commit{{ID: "a1", Summary: "Fix typo"}, {ID: "a2", Summary: "fix typo "}},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			got := Reconcile(tc.branch, tc.baseline)
			if got == nil {
				t.Fatal("expected a non-nil result")
			}
			if !reflect.DeepEqual(got, tc.expect) {
				t.Fatalf("expected %+v, got %+v", tc.expect, got)
			}
		})
	}
}
