package frontmatter

import "strings"

// delimiter marks the start and end of a Zola front matter block.
const delimiter = "+++"

// Extract splits a raw document into its front matter block and body.
// Only the first delimiter pair counts: the block is the shortest span
// between the first opening marker and the next closing marker, so
// delimiter-like sequences later in the body cannot shift the split.
// ok is false when either marker is missing; the caller decides whether
// that skips the document.
func Extract(content string) (block, body string, ok bool) {
	open := strings.Index(content, delimiter)
	if open < 0 {
		return "", "", false
	}

	rest := content[open+len(delimiter):]
	end := strings.Index(rest, delimiter)
	if end < 0 {
		return "", "", false
	}

	block = strings.TrimSpace(rest[:end])
	body = strings.TrimSpace(rest[end+len(delimiter):])
	return block, body, true
}
