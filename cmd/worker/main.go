// Command worker runs the active scrape configurations on a cron schedule and
// files matching items as articles.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"

	"news-website/internal/infra/fetcher"
	"news-website/internal/infra/notifier"
	"news-website/internal/infra/scraper"
	"news-website/internal/infra/store"
	"news-website/internal/infra/summarizer"
	workerPkg "news-website/internal/infra/worker"
	"news-website/internal/observability/logging"
	"news-website/internal/observability/tracing"
	"news-website/internal/usecase/notify"
	"news-website/internal/usecase/scrape"
	"news-website/pkg/config"
)

const serviceName = "news-website-worker"

func main() {
	logger := initLogger()
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Init(ctx, tracing.ConfigFromEnv(serviceName))
	if err != nil {
		logger.Error("failed to initialize tracing", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Error("failed to flush traces", slog.Any("error", err))
		}
	}()

	repos := initStore(ctx, logger)
	defer func() {
		if err := repos.Close(context.Background()); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	// 設定値が不正でも既定値で起動する（fail-open）
	workerMetrics := workerPkg.NewWorkerMetrics(prometheus.DefaultRegisterer)
	workerConfig := workerPkg.LoadConfigFromEnv(logger, workerMetrics)
	logger.Info("worker configuration loaded",
		slog.String("cron_schedule", workerConfig.CronSchedule),
		slog.String("timezone", workerConfig.Timezone),
		slog.Duration("crawl_timeout", workerConfig.CrawlTimeout),
		slog.Int("parallelism", workerConfig.Parallelism),
		slog.Int("notify_max_concurrent", workerConfig.NotifyMaxConcurrent),
		slog.Int("metrics_port", workerConfig.MetricsPort))

	notifyService := notify.NewService(
		[]notify.Channel{notify.NewDiscordChannel(loadDiscordConfig(logger))},
		workerConfig.NotifyMaxConcurrent)

	svc := setupScrapeService(logger, repos, notifyService, workerConfig)

	healthServer := workerPkg.NewHealthServer(fmt.Sprintf(":%d", workerConfig.MetricsPort), logger, prometheus.DefaultGatherer)
	healthServer.AddCheck("database", repos.Ping)
	healthServer.Handle("/health/channels", channelHealthHandler(notifyService))
	go func() {
		if err := healthServer.Start(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("health server failed", slog.Any("error", err))
		}
	}()

	runScheduler(ctx, logger, svc, workerConfig, workerMetrics, healthServer)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.GetEnvDuration("SHUTDOWN_TIMEOUT", 30*time.Second))
	defer cancel()
	if err := notifyService.Shutdown(shutdownCtx); err != nil {
		logger.Warn("pending notifications dropped", slog.Any("error", err))
	}
	logger.Info("worker stopped")
}

// initLogger installs the JSON logger configured by LOG_LEVEL and LOG_FORMAT.
func initLogger() *slog.Logger {
	logger := logging.NewLogger().With(slog.String("service", serviceName))
	slog.SetDefault(logger)
	return logger
}

func initStore(ctx context.Context, logger *slog.Logger) *store.Repositories {
	openCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	repos, err := store.Open(openCtx)
	if err != nil {
		logger.Error("failed to open database", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("database connected", slog.String("driver", repos.Driver))
	return repos
}

// setupScrapeService wires the scraper, page fetcher and summarizer into the
// scrape service. A bad fetcher or summarizer setting disables that step.
func setupScrapeService(logger *slog.Logger, repos *store.Repositories, n scrape.Notifier, cfg *workerPkg.WorkerConfig) *scrape.Service {
	fetchConfig, err := fetcher.LoadConfigFromEnv()
	if err != nil {
		logger.Warn("invalid content fetch configuration, using defaults", slog.Any("error", err))
	}
	client := fetcher.NewHTTPClient(fetchConfig)

	svc := &scrape.Service{
		Configs:    repos.ScrapConfigs,
		Articles:   repos.Articles,
		Keywords:   repos.Keywords,
		Categories: repos.Categories,
		Scraper:    scraper.NewSource(client, fetchConfig.MaxBodySize),
		Notifier:   n,
		Config: scrape.Config{
			Parallelism:         cfg.Parallelism,
			ContentMinLength:    cfg.ContentMinLength,
			ContentFetchEnabled: cfg.ContentFetchEnabled,
			DefaultImage:        cfg.DefaultImage,
		},
	}
	if cfg.ContentFetchEnabled {
		svc.Fetcher = fetcher.NewReadabilityFetcher(client, fetchConfig)
		logger.Info("content fetching enabled",
			slog.Int("min_length", cfg.ContentMinLength),
			slog.Duration("timeout", fetchConfig.Timeout))
	}

	sumConfig, err := summarizer.LoadConfigFromEnv()
	if err != nil {
		logger.Warn("invalid summarizer configuration, summaries disabled", slog.Any("error", err))
		return svc
	}
	sum, err := summarizer.New(sumConfig)
	if err != nil {
		logger.Warn("failed to create summarizer, summaries disabled", slog.Any("error", err))
		return svc
	}
	svc.Summarizer = sum
	logger.Info("summarizer initialized",
		slog.String("type", sumConfig.Type),
		slog.Int("character_limit", sumConfig.CharacterLimit))
	return svc
}

// loadDiscordConfig returns an empty webhook, which disables the channel,
// unless DISCORD_WEBHOOK_URL is a valid https discord.com webhook.
func loadDiscordConfig(logger *slog.Logger) notifier.DiscordConfig {
	webhookURL := config.GetEnvString("DISCORD_WEBHOOK_URL", "")
	siteURL := config.GetEnvString("SITE_URL", "")
	if webhookURL == "" {
		logger.Info("discord notifications disabled")
		return notifier.DiscordConfig{}
	}
	u, err := url.Parse(webhookURL)
	switch {
	case err != nil:
		logger.Warn("invalid discord webhook URL, disabling notifications", slog.Any("error", err))
		return notifier.DiscordConfig{}
	case u.Scheme != "https":
		logger.Warn("discord webhook URL must use https, disabling notifications")
		return notifier.DiscordConfig{}
	case u.Host != "discord.com" && u.Host != "discordapp.com":
		logger.Warn("invalid discord webhook host, disabling notifications", slog.String("host", u.Host))
		return notifier.DiscordConfig{}
	case !strings.HasPrefix(u.Path, "/api/webhooks/"):
		logger.Warn("invalid discord webhook path, disabling notifications", slog.String("path", u.Path))
		return notifier.DiscordConfig{}
	}
	logger.Info("discord notifications enabled")
	return notifier.DiscordConfig{
		WebhookURL: webhookURL,
		Timeout:    config.GetEnvDuration("DISCORD_TIMEOUT", 10*time.Second),
		SiteURL:    strings.TrimRight(siteURL, "/"),
	}
}

// runScheduler blocks until ctx is cancelled and every running job returned.
func runScheduler(ctx context.Context, logger *slog.Logger, svc *scrape.Service, cfg *workerPkg.WorkerConfig,
	metrics *workerPkg.WorkerMetrics, healthServer *workerPkg.HealthServer) {
	cl := cronLogger{logger: logger}
	c := cron.New(cron.WithLocation(cfg.Location()), cron.WithLogger(cl))

	// 起動時の実行と定期実行が重ならないよう同じ Job を共有する
	job := cron.NewChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)).Then(cron.FuncJob(func() {
		runScrapeJob(ctx, logger, svc, cfg, metrics)
	}))
	if _, err := c.AddJob(cfg.CronSchedule, job); err != nil {
		logger.Error("failed to add cron job", slog.Any("error", err))
		os.Exit(1)
	}
	c.Start()
	healthServer.SetReady(true)
	logger.Info("worker started",
		slog.String("schedule", cfg.CronSchedule),
		slog.String("timezone", cfg.Timezone))

	var wg sync.WaitGroup
	if cfg.RunOnStart {
		wg.Add(1)
		go func() {
			defer wg.Done()
			job.Run()
		}()
	}

	<-ctx.Done()
	healthServer.SetReady(false)
	logger.Info("shutting down worker...")
	<-c.Stop().Done()
	wg.Wait()
}

// runScrapeJob executes one run bounded by CrawlTimeout.
func runScrapeJob(parent context.Context, logger *slog.Logger, svc *scrape.Service, cfg *workerPkg.WorkerConfig, metrics *workerPkg.WorkerMetrics) {
	start := time.Now()
	logger.Info("scrape started")

	// 実行全体のタイムアウト
	ctx, cancel := context.WithTimeout(parent, cfg.CrawlTimeout)
	defer cancel()

	stats, err := svc.Run(ctx)
	if err != nil {
		// 機密情報をマスクしてログ出力
		logger.Error("scrape failed", slog.String("error", logging.SanitizeError(err)))
		processed := 0
		if stats != nil {
			processed = int(stats.ConfigsProcessed)
		}
		metrics.RecordRun("failure", time.Since(start).Seconds(), processed)
		return
	}
	status := "success"
	if stats.Errors > 0 {
		status = "partial"
	}
	metrics.RecordRun(status, time.Since(start).Seconds(), int(stats.ConfigsProcessed))
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("cron: "+msg, append(keysAndValues, slog.Any("error", err))...)
}
