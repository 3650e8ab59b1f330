package model

import "strings"

// LogSeparator separates the fields of a raw log line: id|date|summary.
const LogSeparator = "|"

// Commit is a single commit as read from a branch log. Commits are compared
// by Summary only; ID and Date are informational.
type Commit struct {
	ID      string `json:"id"`
	Date    string `json:"date"`
	Summary string `json:"summary"`
}

func (c Commit) ShortID() string {
	if len(c.ID) < 8 {
		return c.ID
	}
	return c.ID[:8]
}

// LogLine renders the commit in the raw log line format.
func (c Commit) LogLine() string {
	return strings.Join([]string{c.ID, c.Date, c.Summary}, LogSeparator)
}
