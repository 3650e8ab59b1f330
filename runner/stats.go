package runner

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"sort"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jeffrom/fdiff/model"
)

type Stats struct {
	Commits int64
	Counts  map[string][]*statCount
}

func (s *Stats) Add(bucket, name string, n int64) {
	counts := s.Counts[bucket]
	count, found := s.findCount(name, counts)
	if !found {
		counts = append(counts, count)
	}
	count.Add(n)

	s.Counts[bucket] = counts
}

func (s *Stats) findCount(name string, counts []*statCount) (*statCount, bool) {
	for _, c := range counts {
		if c.label == name {
			return c, true
		}
	}
	return &statCount{label: name}, false
}

func (s *Stats) sortedBuckets() []string {
	buckets := make([]string, len(s.Counts))
	i := 0
	for name := range s.Counts {
		buckets[i] = name
		i++
	}
	sort.Strings(buckets)
	return buckets
}

type statCount struct {
	label string
	n     int64
}

func (c *statCount) Add(n int64) {
	c.n += n
}

// Count returns the count of name in bucket.
func (s *Stats) Count(bucket, name string) int64 {
	c, found := s.findCount(name, s.Counts[bucket])
	if !found {
		return 0
	}
	return c.n
}

func (s *Stats) TextSummary(w io.Writer) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(fmt.Sprintf("%d commits\n\n", s.Commits))

	buckets := s.sortedBuckets()
	for _, name := range buckets {
		counts := s.Counts[name]
		sort.SliceStable(counts, func(i, j int) bool {
			if counts[i].n == counts[j].n {
				return counts[i].label < counts[j].label
			}
			return counts[i].n > counts[j].n
		})
		bw.WriteString(fmt.Sprintf("%s:\n", toTitle(name)))
		for _, count := range counts {
			label := count.label
			if label == "" {
				label = "n/a"
			}
			bw.WriteString(fmt.Sprintf("  %20s\t\t%d\n", label, count.n))
		}
		bw.WriteString("\n")
	}
	return bw.Flush()
}

var conventionalTypeRE = regexp.MustCompile(`^(?P<type>[A-Za-z0-9]+)(?:\([^\)]+\))?!?:\s+`)

// NewStats counts commits by conventional commit type and by month.
func NewStats(commits []model.Commit) *Stats {
	stats := &Stats{
		Commits: int64(len(commits)),
		Counts:  make(map[string][]*statCount),
	}
	for _, c := range commits {
		stats.Add("commit_type", commitType(c.Summary), 1)
		stats.Add("month", month(c.Date), 1)
	}
	return stats
}

func commitType(summary string) string {
	m := conventionalTypeRE.FindStringSubmatch(summary)
	if m == nil {
		return ""
	}
	return m[conventionalTypeRE.SubexpIndex("type")]
}

// month returns the YYYY-MM prefix of a YYYY-MM-DD date, or "" when the date
// has some other shape.
func month(date string) string {
	if len(date) < 7 || date[4] != '-' {
		return ""
	}
	return date[:7]
}

var nonAlphaRE = regexp.MustCompile(`[^A-Za-z]`)

func toTitle(s string) string {
	s = nonAlphaRE.ReplaceAllLiteralString(s, " ")
	return cases.Title(language.English).String(s)
}
