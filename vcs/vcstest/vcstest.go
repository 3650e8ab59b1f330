// Package vcstest builds throwaway git repositories for tests.
package vcstest

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// Epoch is the date of the first commit in a Repo. Each further commit is
// dated one day later.
var Epoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

type Repo struct {
	Dir string

	t    testing.TB
	repo *git.Repository
	wt   *git.Worktree
	n    int
}

// NewRepo initializes an empty repository in a temporary directory.
func NewRepo(t testing.TB) *Repo {
	t.Helper()
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("vcstest: init: %v", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		t.Fatalf("vcstest: worktree: %v", err)
	}
	return &Repo{Dir: dir, t: t, repo: repo, wt: wt}
}

// Commit adds a new file and commits it with msg, returning the full hash.
func (r *Repo) Commit(msg string) string {
	r.t.Helper()
	r.n++
	name := fmt.Sprintf("file-%d.txt", r.n)
	if err := os.WriteFile(filepath.Join(r.Dir, name), []byte(msg+"\n"), 0o644); err != nil {
		r.t.Fatalf("vcstest: write: %v", err)
	}
	if _, err := r.wt.Add(name); err != nil {
		r.t.Fatalf("vcstest: add: %v", err)
	}

	sig := &object.Signature{
		Name:  "fdiff-test",
		Email: "fdiff-test@example.com",
		When:  Epoch.AddDate(0, 0, r.n-1),
	}
	hash, err := r.wt.Commit(msg, &git.CommitOptions{Author: sig, Committer: sig})
	if err != nil {
		r.t.Fatalf("vcstest: commit: %v", err)
	}
	return hash.String()
}

// Branch creates branch name at HEAD and checks it out.
func (r *Repo) Branch(name string) {
	r.t.Helper()
	err := r.wt.Checkout(&git.CheckoutOptions{
		Branch: plumbing.NewBranchReferenceName(name),
		Create: true,
	})
	if err != nil {
		r.t.Fatalf("vcstest: checkout -b %s: %v", name, err)
	}
}

func (r *Repo) Checkout(name string) {
	r.t.Helper()
	err := r.wt.Checkout(&git.CheckoutOptions{Branch: plumbing.NewBranchReferenceName(name)})
	if err != nil {
		r.t.Fatalf("vcstest: checkout %s: %v", name, err)
	}
}

// HeadBranch returns the short name of the checked out branch.
func (r *Repo) HeadBranch() string {
	r.t.Helper()
	head, err := r.repo.Head()
	if err != nil {
		r.t.Fatalf("vcstest: head: %v", err)
	}
	return head.Name().Short()
}

// Date returns the date string of the nth commit (1-based).
func Date(n int) string {
	return Epoch.AddDate(0, 0, n-1).Format("2006-01-02")
}

// FeatureRepo returns a repository with this history:
//
//	base:    "initial" - "fix typo" - "base only"
//	feature: "initial" - "add login" - "fix typo" - "chore: bump deps"
//
// The "fix typo" commits are distinct commits with the same summary. The
// base branch is checked out.
func FeatureRepo(t testing.TB) (repo *Repo, base string) {
	t.Helper()
	r := NewRepo(t)
	r.Commit("initial")
	base = r.HeadBranch()

	r.Branch("feature")
	r.Commit("add login")
	r.Commit("fix typo")
	r.Commit("chore: bump deps")

	r.Checkout(base)
	r.Commit("fix typo")
	r.Commit("base only")
	return r, base
}
