package commit

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/jeffrom/fdiff/model"
)

// ExpectedLogParts is the number of fields in a raw log line.
const ExpectedLogParts = 3

const maxLogLineSize = 1024 * 1024

// MalformedLogLineError is returned when a log line doesn't have the
// id|date|summary shape.
type MalformedLogLineError struct {
	Line int
	Text string
}

func (e *MalformedLogLineError) Error() string {
	return fmt.Sprintf("commit: malformed log line %d: expected %d %q-separated fields, got %q", e.Line, ExpectedLogParts, model.LogSeparator, e.Text)
}

// ParseLog parses raw log text into commits, one per non-empty line, in
// input order. Parsing stops at the first malformed line.
//
// The summary is the third field only; a summary that itself contains the
// separator is cut off at its first occurrence.
func ParseLog(raw string) ([]model.Commit, error) {
	var commits []model.Commit
	scanner := bufio.NewScanner(strings.NewReader(raw))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLogLineSize)

	lineno := 0
	for scanner.Scan() {
		lineno++
		s := strings.TrimSuffix(scanner.Text(), "\r")
		if s == "" {
			continue
		}

		parts := strings.Split(s, model.LogSeparator)
		if len(parts) < ExpectedLogParts {
			return nil, &MalformedLogLineError{Line: lineno, Text: s}
		}
		commits = append(commits, model.Commit{
			ID:      parts[0],
			Date:    parts[1],
			Summary: parts[2],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("commit: reading log: %w", err)
	}
	return commits, nil
}
