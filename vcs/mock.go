package vcs

import (
	"context"
	"strings"
	"time"

	"github.com/jeffrom/fdiff/model"
)

// Mock is an in-memory Interface for tests.
type Mock struct {
	t         time.Time
	root      string
	rootErr   error
	logs      map[string]string
	fetchErrs map[string]error
	fetched   []string
}

func NewMock() *Mock {
	return &Mock{
		t:         time.Now(),
		root:      "/mock/repo",
		logs:      make(map[string]string),
		fetchErrs: make(map[string]error),
	}
}

func (m *Mock) SetRoot(root string) *Mock {
	m.root = root
	return m
}

func (m *Mock) SetRootError(err error) *Mock {
	m.rootErr = err
	return m
}

// SetLog sets the raw log lines returned for branch.
func (m *Mock) SetLog(branch string, lines ...string) *Mock {
	m.logs[branch] = strings.Join(lines, "\n")
	return m
}

// SetCommits sets the log for branch from commits. Commits without a date
// get one, each a day older than the previous.
func (m *Mock) SetCommits(branch string, commits ...model.Commit) *Mock {
	lines := make([]string, len(commits))
	for i, c := range commits {
		if c.Date == "" {
			c.Date = m.t.Format("2006-01-02")
			m.t = m.t.AddDate(0, 0, -1)
		}
		lines[i] = c.LogLine()
	}
	return m.SetLog(branch, lines...)
}

func (m *Mock) SetFetchError(branch string, err error) *Mock {
	m.fetchErrs[branch] = err
	return m
}

// Fetched returns the branches passed to FetchBranchLog, in call order.
func (m *Mock) Fetched() []string {
	return m.fetched
}

func (m *Mock) ResolveRepositoryRoot(ctx context.Context, path string) (string, error) {
	if m.rootErr != nil {
		return "", &RepositoryResolutionError{Path: path, Err: m.rootErr}
	}
	return m.root, nil
}

func (m *Mock) FetchBranchLog(ctx context.Context, root, branch string) (string, error) {
	m.fetched = append(m.fetched, branch)
	if err := m.fetchErrs[branch]; err != nil {
		return "", &LogFetchError{Branch: branch, Err: err}
	}
	log, ok := m.logs[branch]
	if !ok {
		return "", &LogFetchError{Branch: branch, Err: NotFoundError{Ref: branch}}
	}
	return log, nil
}

var _ Interface = (*Mock)(nil)
