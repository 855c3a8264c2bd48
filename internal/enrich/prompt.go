package enrich

import "strings"

func descriptionPrompt(title, prose string) string {
	var sb strings.Builder

	sb.WriteString("Please write a concise 1-2 sentence description for a blog post titled ")
	sb.WriteString(`"` + title + `".` + "\n\n")
	sb.WriteString("Here's the content:\n")
	sb.WriteString(prose)
	sb.WriteString("\n\n")
	sb.WriteString("Generate only the description, nothing else. Make it engaging but factual, ")
	sb.WriteString("and keep it under 160 characters.")

	return sb.String()
}

func tagsPrompt(title, prose string) string {
	var sb strings.Builder

	sb.WriteString("Based on this blog post title and content, suggest 3-6 relevant tags.\n")
	sb.WriteString("Title: " + `"` + title + `"` + "\n")
	sb.WriteString("Content: ")
	sb.WriteString(prose)
	sb.WriteString("\n\n")
	sb.WriteString("Return only the tags as a comma-separated list, nothing else. Use lowercase words, ")
	sb.WriteString("and include specific technologies or concepts mentioned.")

	return sb.String()
}
