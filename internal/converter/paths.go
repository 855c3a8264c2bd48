package converter

import (
	"regexp"
	"time"
)

var datePrefix = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})-`)

// dateFromFilename extracts the YYYY-MM-DD prefix of a post filename.
// A prefix that matches the shape but is not a real calendar date does
// not count.
func dateFromFilename(name string) (string, bool) {
	m := datePrefix.FindStringSubmatch(name)
	if m == nil {
		return "", false
	}
	if _, err := time.Parse("2006-01-02", m[1]); err != nil {
		return "", false
	}
	return m[1], true
}

// cleanFilename drops a recognized date prefix.
func cleanFilename(name string) string {
	if _, ok := dateFromFilename(name); !ok {
		return name
	}
	return datePrefix.ReplaceAllString(name, "")
}
