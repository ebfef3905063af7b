package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	"news-website/internal/infra/store"
	"news-website/internal/observability/logging"
	"news-website/internal/observability/tracing"
	"news-website/pkg/config"

	artUC "news-website/internal/usecase/article"
	postUC "news-website/internal/usecase/blogpost"
	catUC "news-website/internal/usecase/category"
	commentUC "news-website/internal/usecase/comment"
	slideUC "news-website/internal/usecase/heroslide"
	kwUC "news-website/internal/usecase/keyword"
	cfgUC "news-website/internal/usecase/scrapconfig"
	srcUC "news-website/internal/usecase/source"

	hhttp "news-website/internal/handler/http"
	harticle "news-website/internal/handler/http/article"
	hauth "news-website/internal/handler/http/auth"
	hpost "news-website/internal/handler/http/blogpost"
	hcat "news-website/internal/handler/http/category"
	hcomment "news-website/internal/handler/http/comment"
	hslide "news-website/internal/handler/http/heroslide"
	hkw "news-website/internal/handler/http/keyword"
	"news-website/internal/handler/http/middleware"
	"news-website/internal/handler/http/requestid"
	hcfg "news-website/internal/handler/http/scrapconfig"
	hsrc "news-website/internal/handler/http/source"

	_ "news-website/docs" // swagger docs
)

// @title           News Website API
// @version         1.0
// @description     記事・ブログ・管理画面リソースの REST API
// @description     Public article and blog pages plus the admin dashboard (categories, keywords, source URLs, scrape configs, hero slides).

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT issued by /auth/token, sent as "Bearer {token}".

const serviceName = "news-website-api"

func main() {
	logger := initLogger()
	ctx := context.Background()

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

	keys := initKeys(logger)
	repos := initStore(ctx, logger)
	defer func() {
		if err := repos.Close(context.Background()); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	handler, err := setupServer(logger, repos, keys, getVersion())
	if err != nil {
		logger.Error("failed to configure server", slog.Any("error", err))
		os.Exit(1)
	}
	runServer(logger, handler)
}

// initLogger installs the JSON logger configured by LOG_LEVEL and LOG_FORMAT.
func initLogger() *slog.Logger {
	logger := logging.NewLogger()
	slog.SetDefault(logger)
	return logger
}

// initKeys validates JWT_SECRET and the admin account at startup so the
// server never runs with an unusable auth setup.
func initKeys(logger *slog.Logger) *hauth.Keys {
	keys, err := hauth.NewKeys(os.Getenv("JWT_SECRET"), config.GetEnvDuration("JWT_TTL", time.Hour))
	if err != nil {
		logger.Error("invalid JWT configuration", slog.Any("error", err))
		os.Exit(1)
	}
	if p := hauth.NewEnvProvider(); p.User == "" || p.Password == "" {
		logger.Warn("ADMIN_USER or ADMIN_USER_PASSWORD not set, token endpoint will reject every login")
	}
	return keys
}

func initStore(ctx context.Context, logger *slog.Logger) *store.Repositories {
	openCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	repos, err := store.Open(openCtx)
	if err != nil {
		logger.Error("failed to open database", slog.Any("error", err))
		os.Exit(1)
	}
	return repos
}

func getVersion() string {
	return config.GetEnvString("VERSION", "dev")
}

// setupServer builds the routes and wraps them in the middleware chain.
func setupServer(logger *slog.Logger, repos *store.Repositories, keys *hauth.Keys, version string) (http.Handler, error) {
	rl, err := config.LoadRateLimit()
	if err != nil {
		return nil, err
	}
	if !rl.Enabled {
		logger.Warn("rate limiting is DISABLED - not recommended for production")
	}
	cors := config.LoadCORS()
	logger.Info("CORS enabled",
		slog.Any("allowed_origins", cors.AllowedOrigins),
		slog.Bool("allow_credentials", cors.AllowCredentials))

	mux := setupRoutes(repos, keys, version, rl)
	return applyMiddleware(logger, mux, cors, rl), nil
}

// setupRoutes registers every route. Admin routes carry their own guard, so
// the mux itself is public.
func setupRoutes(repos *store.Repositories, keys *hauth.Keys, version string, rl config.RateLimit) *http.ServeMux {
	guard := &hauth.Guard{Keys: keys}
	mux := http.NewServeMux()

	// ログイン試行は 1 分間に 5 回まで
	authLimit := rl
	authLimit.Requests, authLimit.Window = 5, time.Minute
	mux.Handle("POST /auth/token", middleware.RateLimit(authLimit)(hauth.TokenHandler{
		Provider: hauth.NewEnvProvider(),
		Keys:     keys,
	}))

	checks := map[string]hhttp.Pinger{repos.Driver: repos}
	mux.Handle("GET /health", &hhttp.HealthHandler{Checks: checks, Version: version})
	mux.Handle("GET /ready", &hhttp.ReadyHandler{Checks: checks})
	mux.Handle("GET /live", hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	harticle.Register(mux, &artUC.Service{Repo: repos.Articles}, guard)
	hpost.Register(mux, &postUC.Service{Repo: repos.BlogPosts}, guard)
	hcomment.Register(mux, &commentUC.Service{Repo: repos.Comments}, guard)
	hcat.Register(mux, &catUC.Service{Repo: repos.Categories}, guard)
	hkw.Register(mux, &kwUC.Service{Repo: repos.Keywords}, guard)
	hsrc.Register(mux, &srcUC.Service{Repo: repos.SourceURLs}, guard)
	hcfg.Register(mux, &cfgUC.Service{Repo: repos.ScrapConfigs}, guard)
	hslide.Register(mux, &slideUC.Service{Repo: repos.HeroSlides}, guard)
	return mux
}

// applyMiddleware wraps the handler, outermost first:
//
//	Recover → Request ID → Tracing → Logging → Metrics → Security headers →
//	CORS → Rate limit → Input validation → Body limit → Timeout
func applyMiddleware(logger *slog.Logger, h http.Handler, cors config.CORS, rl config.RateLimit) http.Handler {
	return hhttp.Chain(h,
		hhttp.Recover(logger),
		requestid.Middleware,
		tracing.Middleware,
		hhttp.Logging(logger),
		hhttp.MetricsMiddleware,
		middleware.SecurityHeaders,
		middleware.CORS(cors),
		middleware.RateLimit(rl),
		hhttp.InputValidation,
		hhttp.LimitRequestBody(hhttp.MaxJSONBody),
		hhttp.Timeout(config.GetEnvDuration("HTTP_HANDLER_TIMEOUT", 30*time.Second)),
	)
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(logger *slog.Logger, handler http.Handler) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	addr := config.GetEnvString("HTTP_ADDR", ":8080")
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Slowloris 対策
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting", slog.String("addr", addr), slog.String("version", getVersion()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), config.GetEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second))
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	cancel()
	logger.Info("server stopped")
}
