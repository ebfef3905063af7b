// Command diagnose checks every scrape configuration's source URL and reports
// whether it can be read, how many items it lists and how fresh they are.
//
// Usage:
//
//	diagnose [--all] [--timeout 30s] [--output text|json]
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"news-website/internal/domain/entity"
	"news-website/internal/infra/fetcher"
	"news-website/internal/infra/scraper"
	"news-website/internal/infra/store"
	"news-website/internal/observability/logging"
)

func main() {
	var (
		all          bool
		timeout      time.Duration
		outputFormat string
	)
	flag.BoolVar(&all, "all", false, "Include inactive scrape configs")
	flag.DurationVar(&timeout, "timeout", 30*time.Second, "Timeout per source")
	flag.StringVar(&outputFormat, "output", "text", "Output format: text or json")
	flag.Parse()

	if outputFormat != "text" && outputFormat != "json" {
		fmt.Fprintf(os.Stderr, "Error: Invalid output format '%s' (must be 'text' or 'json')\n", outputFormat)
		os.Exit(2)
	}

	logger := logging.NewLogger()
	slog.SetDefault(logger)
	ctx := context.Background()

	openCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	repos, err := store.Open(openCtx)
	cancel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = repos.Close(context.Background()) }()

	var configs []*entity.ScrapConfig
	if all {
		configs, err = repos.ScrapConfigs.List(ctx)
	} else {
		configs, err = repos.ScrapConfigs.ListActive(ctx)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to list scrape configs: %v\n", err)
		os.Exit(1)
	}

	fetchConfig, err := fetcher.LoadConfigFromEnv()
	if err != nil {
		logger.Warn("invalid content fetch configuration, using defaults", slog.Any("error", err))
	}
	src := scraper.NewSource(fetcher.NewHTTPClient(fetchConfig), fetchConfig.MaxBodySize)

	results := make([]Diagnostic, 0, len(configs))
	for i, cfg := range configs {
		logger.Info("diagnosing source",
			slog.Int("index", i+1),
			slog.Int("total", len(configs)),
			slog.String("url", cfg.SourceURL))
		results = append(results, diagnose(ctx, src, cfg, timeout))
	}

	if outputFormat == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to encode report: %v\n", err)
			os.Exit(1)
		}
	} else {
		printReport(results)
	}

	for _, r := range results {
		if r.Status != StatusOK {
			os.Exit(3)
		}
	}
}

func printReport(results []Diagnostic) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "CATEGORY\tSTATUS\tITEMS\tLATEST\tTIME\tURL")
	for _, r := range results {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%dms\t%s\n",
			r.Category, r.Status, r.ItemCount, r.LatestDate, r.ResponseTimeMS, r.URL)
		if r.Error != "" {
			_, _ = fmt.Fprintf(w, "\t  %s\t\t\t\t\n", r.Error)
		}
	}
	_ = w.Flush()
	fmt.Printf("\n%d sources, %d ok\n", len(results), countOK(results))
}

func countOK(results []Diagnostic) int {
	n := 0
	for _, r := range results {
		if r.Status == StatusOK {
			n++
		}
	}
	return n
}
