package frontmatter

import (
	"fmt"
	"regexp"

	toml "github.com/pelletier/go-toml/v2"
)

// blankRuns matches one or more blank lines, including lines holding only
// spaces or tabs.
var blankRuns = regexp.MustCompile(`\n(?:[ \t]*\n)+`)

// Parse decodes a TOML front matter block into an open-shaped map.
// A strict parse is attempted first; if that fails, runs of blank lines
// are collapsed and the parse is retried once. Stray blank lines breaking
// value continuation are the one malformation this targets; the repair is
// best effort and deliberately not extended further. A second failure
// returns an error wrapping the original one.
func Parse(block string) (map[string]any, error) {
	var data map[string]any
	err := toml.Unmarshal([]byte(block), &data)
	if err == nil {
		return data, nil
	}

	var retry map[string]any
	if rerr := toml.Unmarshal([]byte(collapseBlankLines(block)), &retry); rerr == nil {
		return retry, nil
	}

	return nil, fmt.Errorf("parse front matter: %w", err)
}

func collapseBlankLines(s string) string {
	return blankRuns.ReplaceAllString(s, "\n")
}
