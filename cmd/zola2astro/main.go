package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jverhoeks/zola2astro/internal/converter"
	"github.com/jverhoeks/zola2astro/internal/enrich"
	"github.com/jverhoeks/zola2astro/internal/logger"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		author       string
		anthropicKey string
		openaiKey    string
		provider     string
		model        string
		generate     bool
		dryRun       bool
		pattern      string
		delay        time.Duration
		verbose      bool
	)

	cmd := &cobra.Command{
		Use:          "zola2astro <input-dir> <output-dir>",
		Short:        "Convert Zola blog posts to Astro content files",
		Long: `zola2astro converts Zola markdown posts (TOML front matter between +++
markers) into Astro content files (YAML front matter between --- markers).
The markdown body is preserved untouched. Missing descriptions and tags
can optionally be generated with a text-generation backend.`,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := logger.InfoLevel
			if verbose {
				level = logger.DebugLevel
			}
			logger.Initialize(logger.Config{Level: level})

			suggest, err := buildSuggester(generate, provider, anthropicKey, openaiKey, model)
			if err != nil {
				return err
			}

			cfg := converter.Config{
				Author:  author,
				Enrich:  generate,
				DryRun:  dryRun,
				Delay:   delay,
				Pattern: pattern,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			conv := converter.New(cfg, suggest, cmd.OutOrStdout())
			sum, err := conv.Run(ctx, args[0], args[1])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "\nConversion complete: %d/%d files converted successfully\n",
				sum.Converted, sum.Total)
			return nil
		},
	}

	cmd.Flags().StringVar(&author, "author", "Anonymous", "default author name for posts")
	cmd.Flags().StringVar(&anthropicKey, "anthropic-key", "", "Anthropic API key (defaults to ANTHROPIC_API_KEY)")
	cmd.Flags().StringVar(&openaiKey, "openai-key", "", "OpenAI API key (defaults to OPENAI_API_KEY)")
	cmd.Flags().StringVar(&provider, "provider", "anthropic", "enrichment backend: anthropic or openai")
	cmd.Flags().StringVar(&model, "model", "", "override the backend's default model")
	cmd.Flags().BoolVar(&generate, "generate-missing", false, "generate missing descriptions and tags")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "show what would be done without writing anything")
	cmd.Flags().StringVar(&pattern, "pattern", "**/*.md", "glob selecting files under the input directory")
	cmd.Flags().DurationVar(&delay, "delay", time.Second, "pause between files when enrichment is active")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "enable debug logging")

	return cmd
}

func buildSuggester(generate bool, provider, anthropicKey, openaiKey, model string) (enrich.Suggester, error) {
	if !generate {
		return enrich.Noop{}, nil
	}

	var backend enrich.Backend
	var err error
	switch provider {
	case "anthropic":
		backend, err = enrich.NewAnthropicBackend(anthropicKey, model)
	case "openai":
		backend, err = enrich.NewOpenAIBackend(openaiKey, model)
	default:
		return nil, fmt.Errorf("unknown provider %q (want anthropic or openai)", provider)
	}
	if err != nil {
		return nil, err
	}
	return enrich.NewGenerator(backend)
}
