package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"

	html2md "github.com/alnah/go-html2md"
	"github.com/alnah/go-html2md/internal/config"
	"github.com/alnah/go-html2md/internal/fetch"
	"github.com/alnah/go-html2md/internal/fileutil"
	"github.com/alnah/go-html2md/internal/hints"
)

// newConvertCmd builds the convert command.
func newConvertCmd(env *Environment) *cobra.Command {
	flags := &convertFlags{}
	groups := convertFlagGroups(flags)

	cmd := &cobra.Command{
		Use:   "convert [input...]",
		Short: "Convert HTML files, directories or URLs to Markdown",
		Long: `Convert HTML to Markdown.

Inputs may be .html/.htm/.xhtml files, directories (walked recursively) or
http(s) URLs. Use "-", or pipe into html2md with no input, to read stdin
and write stdout.`,
		Example: `  html2md convert page.html
  html2md convert site/ -o docs/ --front-matter
  html2md convert https://example.com --selector article --stdout
  curl -s https://example.com | html2md convert --strip-noise`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd.Context(), args, flags, cmd.Flags(), env)
		},
	}

	for _, g := range groups {
		cmd.Flags().AddFlagSet(g.fs)
	}
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		printGroupedHelp(c.OutOrStdout(), c, groups)
	})

	_ = cmd.MarkFlagFilename("config", "yaml", "yml")
	_ = cmd.MarkFlagDirname("output")
	_ = cmd.RegisterFlagCompletionFunc("bullet", cobra.FixedCompletions(
		[]string{html2md.DefaultBulletCharacter, "-", "+"}, cobra.ShellCompDirectiveNoFileComp))
	_ = cmd.RegisterFlagCompletionFunc("strong", cobra.FixedCompletions(
		[]string{"**", "__"}, cobra.ShellCompDirectiveNoFileComp))
	_ = cmd.RegisterFlagCompletionFunc("em", cobra.FixedCompletions(
		[]string{"*", "_"}, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, args []string, flags *convertFlags, fs *flag.FlagSet, env *Environment) error {
	if err := validateWorkers(flags.output.workers, config.MaxWorkers); err != nil {
		return err
	}

	cfg, err := resolveConfig(flags, fs, env)
	if err != nil {
		return err
	}

	converter, err := html2md.NewConverter(converterOptions(cfg)...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	jobs, err := discoverJobs(args, discoverOptions{
		outputDir:  cfg.Output.DefaultDir,
		extension:  cfg.Output.Extension,
		toStdout:   flags.output.stdout,
		stdinPiped: env.StdinPiped(),
		defaultDir: cfg.Input.DefaultDir,
	})
	if err != nil {
		return fmt.Errorf("discovering inputs: %w", err)
	}
	if countStdin(jobs) > 1 {
		return fmt.Errorf("%w: stdin (-) can be given only once", ErrUsage)
	}

	params := &batchParams{
		converter: converter,
		cfg:       cfg,
		now:       env.Now(),
		stdin:     env.Stdin,
	}
	if hasURL(jobs) {
		params.fetcher = env.NewFetcher(fetchOptions{
			render:    cfg.Fetch.Render,
			timeout:   cfg.Fetch.Timeout,
			userAgent: cfg.Fetch.UserAgent,
		})
		if closer, ok := params.fetcher.(io.Closer); ok {
			defer func() { _ = closer.Close() }()
		}
	}

	workers := resolveWorkers(cfg.Output.Workers)
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Converting %d input(s) with %d worker(s)\n", len(jobs), workers)
	}

	results := convertBatch(ctx, workers, jobs, params)
	failed := printResults(results, flags.common.quiet, flags.common.verbose, env)
	return batchErr(results, failed)
}

// resolveConfig loads the config file and applies environment variables
// and flags on top of it.
func resolveConfig(flags *convertFlags, fs *flag.FlagSet, env *Environment) (*config.Config, error) {
	envCfg, warnings := loadEnvConfig(env.LookupEnv)
	if !flags.common.quiet {
		for _, w := range warnings {
			fmt.Fprintf(env.Stderr, "warning: %s\n", w)
		}
		warnUnknownEnvVars(env.Environ(), env.Stderr)
	}

	configName := flags.common.config
	if configName == "" {
		configName = envCfg.ConfigPath
	}

	cfg := config.DefaultConfig()
	if configName != "" {
		loaded, err := config.LoadConfig(configName)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(configName) {
				return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(configName)))
			}
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, fs, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// mergeFlags merges CLI flags into config. Only flags given on the
// command line override config values.
func mergeFlags(flags *convertFlags, fs *flag.FlagSet, cfg *config.Config) {
	changed := fs.Changed

	if changed("output") {
		cfg.Output.DefaultDir = flags.output.dir
	}
	if changed("workers") {
		cfg.Output.Workers = flags.output.workers
	}

	if changed("bullet") {
		cfg.Markdown.Bullet = flags.markdown.bullet
	}
	if changed("strong") {
		cfg.Markdown.Strong = flags.markdown.strong
	}
	if changed("em") {
		cfg.Markdown.Em = flags.markdown.em
	}

	if changed("selector") {
		cfg.Extract.Selector = flags.extract.selector
	}
	if changed("strip-noise") {
		cfg.Extract.StripNoise = flags.extract.stripNoise
	}
	if changed("main-content") {
		cfg.Extract.MainContent = flags.extract.mainContent
	}

	if changed("render") {
		cfg.Fetch.Render = flags.fetch.render
	}
	if changed("timeout") {
		cfg.Fetch.Timeout = flags.fetch.timeout
	}
	if changed("user-agent") {
		cfg.Fetch.UserAgent = flags.fetch.userAgent
	}

	if changed("front-matter") {
		cfg.FrontMatter.Enabled = flags.document.frontMatter
	}
	if changed("preview") {
		cfg.Preview.Enabled = flags.document.preview
	}
	if changed("preview-style") {
		cfg.Preview.Style = flags.document.previewStyle
	}
}

// converterOptions maps the Markdown and preview config to converter options.
func converterOptions(cfg *config.Config) []html2md.Option {
	var opts []html2md.Option
	if cfg.Markdown.Bullet != "" {
		opts = append(opts, html2md.WithBulletCharacter(cfg.Markdown.Bullet))
	}
	if cfg.Markdown.Strong != "" {
		opts = append(opts, html2md.WithStrongDelimiter(cfg.Markdown.Strong))
	}
	if cfg.Markdown.Em != "" {
		opts = append(opts, html2md.WithEmDelimiter(cfg.Markdown.Em))
	}
	if cfg.Markdown.LinkStyle != "" {
		opts = append(opts, html2md.WithLinkStyle(html2md.LinkStyle(cfg.Markdown.LinkStyle)))
	}
	if cfg.Preview.Style != "" {
		opts = append(opts, html2md.WithPreviewStyle(cfg.Preview.Style))
	}
	return opts
}

func hasURL(jobs []Job) bool {
	for _, j := range jobs {
		if j.Kind == sourceURL {
			return true
		}
	}
	return false
}

func countStdin(jobs []Job) int {
	n := 0
	for _, j := range jobs {
		if j.Kind == sourceStdin {
			n++
		}
	}
	return n
}

// Compile-time checks that production fetchers satisfy the batch contract.
var (
	_ fetch.Fetcher = (*fetch.HTTPFetcher)(nil)
	_ io.Closer     = (*fetch.BrowserFetcher)(nil)
)
