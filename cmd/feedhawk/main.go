package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/feedhawk/feedhawk/pkg/config"
	"github.com/feedhawk/feedhawk/pkg/content"
	"github.com/feedhawk/feedhawk/pkg/discovery"
	"github.com/feedhawk/feedhawk/pkg/domain"
	"github.com/feedhawk/feedhawk/pkg/feed"
	"github.com/feedhawk/feedhawk/pkg/repository"
	"github.com/feedhawk/feedhawk/pkg/scheduler"
	"github.com/feedhawk/feedhawk/pkg/service"
	"github.com/feedhawk/feedhawk/pkg/subscription"
	"github.com/feedhawk/feedhawk/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" description:"configuration file, built-in defaults when empty"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`
	DB     string `long:"db" env:"DB" description:"database dsn, overrides config"`

	Search   string `short:"s" long:"search" description:"discover feeds for the query and exit"`
	Validate bool   `long:"validate" description:"with --search, keep only candidates parsing as feeds"`

	// common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	color.NoColor = color.NoColor || opts.NoColor
	// one-shot search prints results only, logs go to the console in debug mode
	setupLog(opts.Debug, opts.Search != "")

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	if err := run(ctx, opts); err != nil {
		cancel()
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}
	cancel()
}

// run wires components per config and either runs a search or serves the api until ctx is done
func run(ctx context.Context, opts Opts) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	catalog, err := discovery.LoadCatalog(cfg.Discovery.Catalog)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	finder, err := discovery.NewFinder(discovery.FinderConfig{
		Catalog:      catalog,
		ProbeTimeout: cfg.Discovery.ProbeTimeout,
		PageTimeout:  cfg.Discovery.PageTimeout,
		UserAgent:    cfg.Parser.UserAgent,
		MaxResults:   cfg.Discovery.MaxResults,
		MaxWorkers:   cfg.Discovery.MaxWorkers,
	})
	if err != nil {
		return fmt.Errorf("failed to make finder: %w", err)
	}
	parser := feed.NewParser(feed.Config{
		ConnectTimeout: cfg.Parser.ConnectTimeout,
		ReadTimeout:    cfg.Parser.ReadTimeout,
		UserAgent:      cfg.Parser.UserAgent,
	})

	if opts.Search != "" {
		svc := service.NewFeedService(service.Params{Finder: finder, Validator: parser})
		search(ctx, svc, opts.Search, opts.Validate, os.Stdout)
		return nil
	}

	lgr.Printf("[INFO] starting feedhawk version %s", revision)
	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer repos.Close()

	processor := scheduler.NewFeedProcessor(scheduler.FeedProcessorConfig{
		Parser:         parser,
		Extractor:      makeExtractor(cfg.Extraction),
		Articles:       repos.Article,
		Sources:        repos.Source,
		MaxWorkers:     cfg.Refresh.MaxWorkers,
		MaxArticles:    cfg.Refresh.MaxArticles,
		MaxExtractions: cfg.Extraction.MaxConcurrent,
		MaxErrors:      cfg.Refresh.MaxErrors,
	})
	manager := subscription.NewManager(subscription.NewStore(repos))
	svc := service.NewFeedService(service.Params{
		Finder:        finder,
		Validator:     parser,
		Subscriptions: manager,
		Articles:      repos.Article,
		Refresher:     processor,
		// validated search must answer before the server write timeout
		SearchTimeout: cfg.Server.Timeout,
	})

	if cfg.Refresh.Enabled {
		sched := scheduler.NewScheduler(scheduler.Params{
			Sources:        repos.Source,
			Processor:      processor,
			UpdateInterval: cfg.Refresh.Interval,
		})
		sched.Start(ctx)
		defer sched.Stop()
	}

	srv := server.New(server.Params{
		Config:   cfg,
		Feeds:    svc,
		Lists:    manager,
		Health:   repos,
		Identity: server.HeaderIdentity{},
		Version:  revision,
		Debug:    opts.Debug,
	})
	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	lgr.Printf("[INFO] shutdown complete")
	return nil
}

func loadConfig(opts Opts) (*config.Config, error) {
	cfg := config.Default()
	if opts.Config != "" {
		var err error
		if cfg, err = config.Load(opts.Config); err != nil {
			return nil, err
		}
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}
	if opts.DB != "" {
		cfg.Database.DSN = opts.DB
	}
	return cfg, nil
}

// makeExtractor returns nil when extraction is disabled, the processor keeps feed content then
func makeExtractor(cfg config.ExtractionConfig) scheduler.Extractor {
	if !cfg.Enabled {
		return nil
	}
	return content.NewHTTPExtractor(content.Config{
		Timeout:       cfg.Timeout,
		UserAgent:     cfg.UserAgent,
		MinTextLength: cfg.MinTextLength,
	})
}

// search prints discovered feeds in rank order
func search(ctx context.Context, svc *service.FeedService, query string, validate bool, w io.Writer) {
	var results []domain.SearchResult
	if validate {
		results = svc.SearchValidated(ctx, query)
	} else {
		results = svc.Search(ctx, query)
	}

	header := color.New(color.FgCyan, color.Bold).SprintfFunc()
	title := color.New(color.FgYellow, color.Bold).SprintfFunc()
	faint := color.New(color.FgHiBlack).SprintfFunc()

	fmt.Fprintln(w, header("%d feeds for %q (%s)", len(results), query, svc.Classify(query)))
	for i, r := range results {
		fmt.Fprintln(w, title("%2d. %s", i+1, r.Title))
		fmt.Fprintf(w, "    %s\n", r.URL)
		details := fmt.Sprintf("%s, %s", r.Category, r.Strategy)
		if r.Description != "" {
			details += ", " + r.Description
		}
		fmt.Fprintf(w, "    %s\n", faint("%s", details))
	}
}

func setupLog(dbg, quiet bool) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if quiet {
		logOpts = []lgr.Option{lgr.Out(io.Discard), lgr.Err(io.Discard)}
	}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
