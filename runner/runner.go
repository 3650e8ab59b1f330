// Package runner manages command-line execution
package runner

import (
	"context"
	"text/template"

	"github.com/jeffrom/fdiff/commit"
	"github.com/jeffrom/fdiff/config"
	"github.com/jeffrom/fdiff/model"
	"github.com/jeffrom/fdiff/vcs"
)

type Runner struct {
	cfg    config.Config
	vcs    vcs.Interface
	engine *commit.Engine
	tmpl   *template.Template
}

func New(cfg config.Config, vcs vcs.Interface) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	tmpl, err := newTemplate(cfg)
	if err != nil {
		return nil, err
	}
	return &Runner{
		cfg:    cfg,
		vcs:    vcs,
		engine: commit.NewEngine(cfg, vcs),
		tmpl:   tmpl,
	}, nil
}

// Report is the result of comparing two branches.
type Report struct {
	Branch   string         `json:"branch"`
	Baseline string         `json:"baseline"`
	Exclude  []string       `json:"exclude,omitempty"`
	Commits  []model.Commit `json:"commits"`
}

// Reconcile returns the commits on branch that are missing from baseline,
// with the configured exclusions applied.
func (r *Runner) Reconcile(ctx context.Context, branch, baseline, repoPath string) (*Report, error) {
	req := commit.Request{
		Branch:   branch,
		Baseline: baseline,
		Exclude:  r.cfg.GetExclusions(),
		RepoPath: repoPath,
	}
	commits, err := r.engine.Reconcile(ctx, req)
	if err != nil {
		return nil, err
	}
	return &Report{
		Branch:   branch,
		Baseline: baseline,
		Exclude:  req.Exclude,
		Commits:  commits,
	}, nil
}
