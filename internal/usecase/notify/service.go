package notify

import (
	"context"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	"news-website/internal/domain/entity"
	"news-website/internal/observability/metrics"
	"news-website/internal/resilience/circuitbreaker"
)

const (
	workerSlotTimeout   = 5 * time.Second
	notificationTimeout = 30 * time.Second
)

// ChannelHealth is reported on the worker health endpoint.
type ChannelHealth struct {
	Name        string `json:"name"`
	Enabled     bool   `json:"enabled"`
	CircuitOpen bool   `json:"circuitOpen"`
}

// Service dispatches notifications asynchronously. The zero value is not usable;
// call NewService.
type Service struct {
	channels []Channel
	breakers map[string]*circuitbreaker.CircuitBreaker
	slots    chan struct{}
	wg       sync.WaitGroup

	shutdownCtx    context.Context
	shutdownCancel context.CancelFunc
}

// NewService bounds in-flight sends to maxConcurrent.
func NewService(channels []Channel, maxConcurrent int) *Service {
	if maxConcurrent <= 0 {
		maxConcurrent = 10
	}
	ctx, cancel := context.WithCancel(context.Background())
	s := &Service{
		channels:       channels,
		breakers:       make(map[string]*circuitbreaker.CircuitBreaker, len(channels)),
		slots:          make(chan struct{}, maxConcurrent),
		shutdownCtx:    ctx,
		shutdownCancel: cancel,
	}
	for _, ch := range channels {
		s.breakers[ch.Name()] = circuitbreaker.New(circuitbreaker.NotifierConfig(ch.Name()))
	}
	return s
}

// NotifyNewArticle returns immediately; each enabled channel is sent to in
// its own goroutine.
func (s *Service) NotifyNewArticle(ctx context.Context, article *entity.Article) {
	if article == nil {
		return
	}
	for _, ch := range s.channels {
		if !ch.IsEnabled() {
			continue
		}
		s.wg.Add(1)
		go s.dispatch(ch, article)
	}
}

func (s *Service) dispatch(ch Channel, article *entity.Article) {
	defer s.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			slog.Error("panic in notification channel",
				slog.String("channel", ch.Name()),
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())))
		}
	}()

	select {
	case s.slots <- struct{}{}:
		defer func() { <-s.slots }()
	case <-time.After(workerSlotTimeout):
		slog.Warn("notification dropped: worker pool full", slog.String("channel", ch.Name()))
		metrics.RecordNotification(ch.Name(), false)
		return
	case <-s.shutdownCtx.Done():
		return
	}

	ctx, cancel := context.WithTimeout(s.shutdownCtx, notificationTimeout)
	defer cancel()

	start := time.Now()
	_, err := s.breakers[ch.Name()].Execute(func() (any, error) {
		return nil, ch.Send(ctx, article)
	})
	metrics.RecordNotification(ch.Name(), err == nil)
	if err != nil {
		slog.Warn("notification failed",
			slog.String("channel", ch.Name()),
			slog.String("article_id", article.ID),
			slog.Bool("circuit_open", circuitbreaker.IsOpenError(err)),
			slog.Duration("duration", time.Since(start)),
			slog.Any("error", err))
		return
	}
	slog.Debug("notification sent",
		slog.String("channel", ch.Name()),
		slog.String("article_id", article.ID),
		slog.Duration("duration", time.Since(start)))
}

// Health reports each channel and whether its breaker is open.
func (s *Service) Health() []ChannelHealth {
	out := make([]ChannelHealth, 0, len(s.channels))
	for _, ch := range s.channels {
		out = append(out, ChannelHealth{
			Name:        ch.Name(),
			Enabled:     ch.IsEnabled(),
			CircuitOpen: s.breakers[ch.Name()].IsOpen(),
		})
	}
	return out
}

// Shutdown cancels pending sends and waits for goroutines or ctx.
func (s *Service) Shutdown(ctx context.Context) error {
	s.shutdownCancel()
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Wait blocks until all dispatched notifications are finished.
func (s *Service) Wait() { s.wg.Wait() }
