package meta

import (
	"context"
	"sort"

	"github.com/jverhoeks/zola2astro/internal/enrich"
	"github.com/jverhoeks/zola2astro/internal/logger"
)

// AstroMeta is the target front matter. Field order is emission order;
// description and tags are present only when a value was found or
// generated.
type AstroMeta struct {
	Title       string   `yaml:"title"`
	PubDate     string   `yaml:"pubDate"`
	Author      string   `yaml:"author"`
	Description string   `yaml:"description,omitempty"`
	Tags        []string `yaml:"tags,omitempty"`
}

// Map builds Astro front matter from Zola front matter. pubDate and
// author come from the run, never from the source. When the source lacks
// a description or tags they are requested from the suggester, which may
// be a no-op. Malformed optional fields degrade to absent with a warning
// rather than failing the document.
func Map(ctx context.Context, src SourceMeta, pubDate, author, body string, suggest enrich.Suggester) AstroMeta {
	out := AstroMeta{PubDate: pubDate, Author: author}

	title, _, err := src.String("title")
	if err != nil {
		logger.Warn("ignoring malformed title", logger.Err(err))
	}
	out.Title = title

	out.Description = description(ctx, src, body, title, suggest)
	out.Tags = tags(ctx, src, body, title, suggest)
	return out
}

// description resolution order: extra.lead, then top-level description,
// then the suggester.
func description(ctx context.Context, src SourceMeta, body, title string, suggest enrich.Suggester) string {
	extra, ok, err := src.Table("extra")
	if err != nil {
		logger.Warn("ignoring malformed extra table", logger.Err(err))
	} else if ok {
		lead, ok, err := extra.String("lead")
		if err != nil {
			logger.Warn("ignoring malformed extra.lead", logger.Err(err))
		} else if ok && lead != "" {
			return lead
		}
	}

	desc, ok, err := src.String("description")
	if err != nil {
		logger.Warn("ignoring malformed description", logger.Err(err))
	} else if ok && desc != "" {
		return desc
	}

	return suggest.SuggestDescription(ctx, body, title)
}

// tags is the union of taxonomies.tags and taxonomies.categories,
// deduplicated and sorted; the suggester fills the gap when the union is
// empty. nil means the key is omitted from the output.
func tags(ctx context.Context, src SourceMeta, body, title string, suggest enrich.Suggester) []string {
	set := make(map[string]struct{})

	tax, ok, err := src.Table("taxonomies")
	if err != nil {
		logger.Warn("ignoring malformed taxonomies table", logger.Err(err))
	} else if ok {
		for _, key := range []string{"tags", "categories"} {
			vals, _, err := tax.StringList(key)
			if err != nil {
				logger.Warn("ignoring malformed taxonomy list", logger.String("key", key), logger.Err(err))
				continue
			}
			for _, v := range vals {
				set[v] = struct{}{}
			}
		}
	}

	if len(set) == 0 {
		for _, tag := range suggest.SuggestTags(ctx, body, title) {
			set[tag] = struct{}{}
		}
	}

	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for tag := range set {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}
