package runner

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/jeffrom/fdiff/config"
)

func TestCheck(t *testing.T) {
	rnr, _ := newTestRunner(t, nil)
	err := rnr.Check(context.Background(), "feature", "main", "")
	if err == nil {
		t.Fatal("expected missing commits")
	}

	mce := MissingCommitsError{}
	if !errors.As(err, &mce) {
		t.Fatalf("expected MissingCommitsError, got %T: %v", err, err)
	}
	if !errors.Is(err, MissingCommitsError{}) {
		t.Fatal("expected errors.Is to match MissingCommitsError")
	}
	if len(mce.Commits) != 4 {
		t.Fatalf("expected 4 missing commits, got %d", len(mce.Commits))
	}
	if err.Error() != "4 commit(s) on feature missing from main" {
		t.Fatalf("unexpected message: %q", err.Error())
	}

	b := &bytes.Buffer{}
	if err := mce.WriteFailure(b); err != nil {
		t.Fatal(err)
	}
	expect := "missing from main:\n" +
		"  a5 Merge branch 'main' into feature\n" +
		"  a4 feat(api): add endpoint\n" +
		"  a3 chore: bump deps\n" +
		"  a1 add login\n"
	if b.String() != expect {
		t.Fatalf("expected:\n%s\ngot:\n%s", expect, b.String())
	}
}

func TestCheckPasses(t *testing.T) {
	rnr, _ := newTestRunner(t, &config.Config{
		Exclude:     []string{"login", "feat"},
		ExcludeSets: []string{"merges", "chores"},
	})
	if err := rnr.Check(context.Background(), "feature", "main", ""); err != nil {
		t.Fatal(err)
	}
}

func TestCheckPropagatesErrors(t *testing.T) {
	rnr, _ := newTestRunner(t, nil)
	err := rnr.Check(context.Background(), "feature", "nope", "")
	if err == nil {
		t.Fatal("expected an error")
	}
	if errors.Is(err, MissingCommitsError{}) {
		t.Fatalf("expected a fetch error, got %v", err)
	}
}
