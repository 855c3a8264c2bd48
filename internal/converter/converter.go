package converter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/jverhoeks/zola2astro/internal/enrich"
	"github.com/jverhoeks/zola2astro/internal/frontmatter"
	"github.com/jverhoeks/zola2astro/internal/logger"
	"github.com/jverhoeks/zola2astro/internal/meta"
)

// Config is the immutable per-run configuration.
type Config struct {
	Author  string
	Enrich  bool
	DryRun  bool
	Delay   time.Duration
	Pattern string
	Now     func() time.Time
}

// Summary counts per-run outcomes. Failed documents still count toward
// Total.
type Summary struct {
	Converted int
	Failed    int
	Total     int
}

// Result is the outcome of converting one document.
type Result struct {
	OutputPath string
	Err        error
}

// Converter runs the per-document pipeline over a content tree. Nothing
// is shared between documents beyond the counters.
type Converter struct {
	cfg     Config
	suggest enrich.Suggester
	out     io.Writer
}

// skipDirs are never descended into during discovery.
var skipDirs = map[string]bool{
	".git":         true,
	".svn":         true,
	".hg":          true,
	"node_modules": true,
}

// New creates a Converter. A nil suggester disables enrichment; out
// receives the per-file progress lines.
func New(cfg Config, suggest enrich.Suggester, out io.Writer) *Converter {
	if cfg.Pattern == "" {
		cfg.Pattern = "**/*.md"
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if suggest == nil {
		suggest = enrich.Noop{}
	}
	return &Converter{cfg: cfg, suggest: suggest, out: out}
}

// Run converts every matching file under inDir into outDir, mirroring
// the directory layout. Per-file failures are counted, never fatal.
// Cancelling ctx stops before the next document and returns the partial
// summary; output already written stays intact.
func (c *Converter) Run(ctx context.Context, inDir, outDir string) (Summary, error) {
	if _, err := os.Stat(inDir); err != nil {
		return Summary{}, fmt.Errorf("input directory: %w", err)
	}

	var sum Summary
	err := filepath.WalkDir(inDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(inDir, path)
		if err != nil {
			return err
		}
		match, err := doublestar.Match(c.cfg.Pattern, filepath.ToSlash(rel))
		if err != nil {
			return fmt.Errorf("pattern %q: %w", c.cfg.Pattern, err)
		}
		if !match {
			return nil
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		sum.Total++
		name := filepath.Base(path)

		if c.cfg.DryRun {
			fmt.Fprintf(c.out, "Would convert: %s\n", name)
			return nil
		}

		res := c.convertFile(ctx, path, rel, outDir)
		if res.Err != nil {
			sum.Failed++
			logger.Warn("conversion failed", logger.String("file", path), logger.Err(res.Err))
			fmt.Fprintf(c.out, "Failed to convert: %s\n", name)
		} else {
			sum.Converted++
			logger.Debug("wrote output", logger.String("path", res.OutputPath))
			fmt.Fprintf(c.out, "Converted: %s\n", name)
		}

		// Courtesy pause for the generation service's rate limits.
		if c.cfg.Enrich && c.cfg.Delay > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(c.cfg.Delay):
			}
		}
		return nil
	})
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		logger.Info("run cancelled", logger.Int("converted", sum.Converted))
		return sum, nil
	}
	return sum, err
}

// convertFile runs the extract, parse, map, render, write pipeline for a
// single document.
func (c *Converter) convertFile(ctx context.Context, path, rel, outDir string) Result {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Result{Err: fmt.Errorf("read: %w", err)}
	}

	name := filepath.Base(path)
	pubDate, ok := dateFromFilename(name)
	if !ok {
		pubDate = c.cfg.Now().Format("2006-01-02")
		logger.Warn("no date prefix in filename, using current date",
			logger.String("file", name), logger.String("pubDate", pubDate))
	}

	block, body, found := frontmatter.Extract(string(raw))
	if !found {
		return Result{Err: errors.New("no front matter block")}
	}

	src, err := frontmatter.Parse(block)
	if err != nil {
		logger.Debug("unparseable front matter", logger.String("block", block))
		return Result{Err: err}
	}

	mapped := meta.Map(ctx, src, pubDate, c.cfg.Author, body, c.suggest)
	doc, err := meta.Render(mapped, body)
	if err != nil {
		return Result{Err: err}
	}

	outPath := filepath.Join(outDir, filepath.Dir(rel), cleanFilename(name))
	if err := writeFile(outPath, []byte(doc)); err != nil {
		return Result{Err: err}
	}
	return Result{OutputPath: outPath}
}
