package frontmatter

import "testing"

func TestParse(t *testing.T) {
	block := `title = "Hello"
description = "A post"

[taxonomies]
tags = ["go", "blogging"]
categories = ["programming"]

[extra]
lead = "The short version."
`
	data, err := Parse(block)
	if err != nil {
		t.Fatalf("Parse() failed on valid TOML: %v", err)
	}

	if got := data["title"]; got != "Hello" {
		t.Errorf("title = %v, expected Hello", got)
	}
	tax, ok := data["taxonomies"].(map[string]any)
	if !ok {
		t.Fatalf("taxonomies = %T, expected table", data["taxonomies"])
	}
	tags, ok := tax["tags"].([]any)
	if !ok || len(tags) != 2 {
		t.Errorf("taxonomies.tags = %v, expected two entries", tax["tags"])
	}
}

func TestParseMalformed(t *testing.T) {
	data, err := Parse("title = \"unterminated\ndate: not toml at all")
	if err == nil {
		t.Fatalf("Parse() accepted malformed TOML: %v", data)
	}
	if data != nil {
		t.Errorf("Parse() returned data alongside error: %v", data)
	}
}

func TestCollapseBlankLines(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "single blank line",
			input:    "a = 1\n\nb = 2",
			expected: "a = 1\nb = 2",
		},
		{
			name:     "run of blank lines",
			input:    "a = 1\n\n\n\nb = 2",
			expected: "a = 1\nb = 2",
		},
		{
			name:     "whitespace-only lines",
			input:    "a = 1\n  \n\t\nb = 2",
			expected: "a = 1\nb = 2",
		},
		{
			name:     "no blank lines",
			input:    "a = 1\nb = 2",
			expected: "a = 1\nb = 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := collapseBlankLines(tt.input); got != tt.expected {
				t.Errorf("collapseBlankLines(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

// Blank lines between entries are legal TOML, so the repair pass must not
// change the result of a block that already parses.
func TestParseBlankLinesStillStrict(t *testing.T) {
	block := "title = \"A\"\n\n\n[taxonomies]\n\ntags = [\"x\"]"
	data, err := Parse(block)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if data["title"] != "A" {
		t.Errorf("title = %v, expected A", data["title"])
	}
}
