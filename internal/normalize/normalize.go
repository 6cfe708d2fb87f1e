// Package normalize turns raw listing text into the fields a JobPosting
// expects: absolute posting dates, a job-type value and a tag list.
package normalize

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var firstNumber = regexp.MustCompile(`\d+`)

// ParseRelativeDate maps phrases like "3 days ago" to an absolute timestamp
// relative to now. Months are a fixed 30-day approximation, not calendar
// months. Empty or unrecognized input resolves to now.
func ParseRelativeDate(text string, now time.Time) time.Time {
	s := strings.ToLower(strings.TrimSpace(text))
	if s == "" {
		return now
	}

	n, hasNumber := extractNumber(s)

	switch {
	case strings.Contains(s, "today"):
		return now
	case strings.Contains(s, "yesterday"):
		return now.AddDate(0, 0, -1)
	case strings.Contains(s, "day"):
		if hasNumber {
			return now.AddDate(0, 0, -n)
		}
	case strings.Contains(s, "week"):
		if hasNumber {
			return now.AddDate(0, 0, -7*n)
		}
	case strings.Contains(s, "month"):
		if hasNumber {
			return now.AddDate(0, 0, -30*n)
		}
	}
	return now
}

func extractNumber(s string) (int, bool) {
	m := firstNumber.FindString(s)
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return n, true
}

var jobTypeKeywords = []struct {
	jobType  string
	keywords []string
}{
	{"internship", []string{"intern", "internship"}},
	{"part-time", []string{"part-time", "part time", "parttime"}},
	{"contract", []string{"contract", "contractor", "freelance"}},
	{"full-time", []string{"full-time", "full time", "fulltime"}},
}

// InferJobType picks the job type from title, description and tags text.
// Priority order is fixed (internship wins over contract and so on); no
// match defaults to full-time.
func InferJobType(title, description, tags string) string {
	text := strings.ToLower(title + " " + description + " " + tags)
	for _, jt := range jobTypeKeywords {
		for _, kw := range jt.keywords {
			if strings.Contains(text, kw) {
				return jt.jobType
			}
		}
	}
	return "full-time"
}

// tagVocabulary is scanned in order; output tags keep this order.
var tagVocabulary = []string{
	"life", "health", "pricing", "reserving", "modeling", "analytics",
	"python", "r", "sql", "excel", "vba", "sas", "tableau", "power bi",
	"entry level", "analyst", "actuary", "fellow", "associate",
	"remote", "hybrid", "onsite", "consulting", "insurance",
}

var titleCaser = cases.Title(language.English)

// ExtractTags scans title and description for the fixed vocabulary and
// appends a work-mode tag derived from the location. The result is a
// comma-joined, deduplicated list, or "" when nothing matched.
func ExtractTags(title, description, location string) string {
	text := strings.ToLower(title + " " + description)

	var tags []string
	seen := make(map[string]bool)
	add := func(tag string) {
		if !seen[tag] {
			seen[tag] = true
			tags = append(tags, tag)
		}
	}

	for _, kw := range tagVocabulary {
		if strings.Contains(text, kw) {
			add(titleCaser.String(kw))
		}
	}

	loc := strings.ToLower(location)
	if strings.Contains(loc, "remote") {
		add("Remote")
	} else if strings.Contains(loc, "hybrid") {
		add("Hybrid")
	}

	return strings.Join(tags, ", ")
}
