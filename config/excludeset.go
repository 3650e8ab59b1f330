package config

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ExcludeSet is a named group of exclusion terms that can be enabled
// together, e.g. to drop every merge commit from a comparison.
type ExcludeSet struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Terms       []string `json:"terms"`
}

func (s *ExcludeSet) TextSummary(w io.Writer) error {
	bw := bufio.NewWriter(w)

	bw.WriteString(fmt.Sprintf("Name: %s\n", s.Name))
	if s.Description != "" {
		bw.WriteString(fmt.Sprintf("Description: %s\n", s.Description))
	}
	if len(s.Terms) > 0 {
		quoted := make([]string, len(s.Terms))
		for i, term := range s.Terms {
			quoted[i] = fmt.Sprintf("%q", term)
		}
		bw.WriteString(fmt.Sprintf("Terms: %s\n", strings.Join(quoted, ", ")))
	}

	return bw.Flush()
}

var builtinExcludeSets = []ExcludeSet{
	{
		Name:        "merges",
		Description: "merge commits created by git and code hosts",
		Terms: []string{
			"Merge branch '",
			"Merge remote-tracking branch '",
			"Merge pull request #",
		},
	},
	{
		Name:        "chores",
		Description: "conventional commit chores",
		Terms:       []string{"chore:", "chore("},
	},
	{
		Name:        "fixups",
		Description: "autosquash markers",
		Terms:       []string{"fixup! ", "squash! ", "amend! "},
	},
}

func getBuiltinExcludeSet(name string) *ExcludeSet {
	for _, set := range builtinExcludeSets {
		if name == set.Name {
			s := set
			return &s
		}
	}
	return nil
}
