package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"news-website/internal/domain/entity"

	"github.com/google/uuid"
)

// DiscordConfig holds the webhook settings.
type DiscordConfig struct {
	WebhookURL string
	Timeout    time.Duration
	// SiteURL, when set, links the embed to the article page instead of the source.
	SiteURL string
}

// DiscordNotifier posts an embed per article to a Discord webhook.
type DiscordNotifier struct {
	config      DiscordConfig
	httpClient  *http.Client
	rateLimiter *RateLimiter
	maxAttempts int
	baseDelay   time.Duration
}

// NewDiscordNotifier limits requests to 0.5/s with a burst of 3 (webhooks allow 30/min).
func NewDiscordNotifier(config DiscordConfig) *DiscordNotifier {
	if config.Timeout <= 0 {
		config.Timeout = 10 * time.Second
	}
	return &DiscordNotifier{
		config:      config,
		httpClient:  &http.Client{Timeout: config.Timeout},
		rateLimiter: NewRateLimiter(0.5, 3),
		maxAttempts: 2,
		baseDelay:   5 * time.Second,
	}
}

type discordPayload struct {
	Embeds []discordEmbed `json:"embeds"`
}

type discordEmbed struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	URL         string        `json:"url"`
	Color       int           `json:"color"`
	Image       *discordImage `json:"image,omitempty"`
	Footer      discordFooter `json:"footer"`
	Timestamp   string        `json:"timestamp"`
}

type discordImage struct {
	URL string `json:"url"`
}

type discordFooter struct {
	Text string `json:"text"`
}

type discordError struct {
	Message    string  `json:"message"`
	RetryAfter float64 `json:"retry_after"`
}

const (
	maxTitleLength       = 256
	maxDescriptionLength = 4096
	truncationSuffix     = "..."
	discordBlurple       = 5793266
)

func (d *DiscordNotifier) buildPayload(a *entity.Article) discordPayload {
	desc := a.Summary
	if desc == "" {
		desc = a.Content
	}
	link := a.Source
	if d.config.SiteURL != "" && a.ID != "" {
		link = d.config.SiteURL + "/news/" + a.ID
	}
	embed := discordEmbed{
		Title:       truncate(a.Title, maxTitleLength, ""),
		Description: truncate(desc, maxDescriptionLength, truncationSuffix),
		URL:         link,
		Color:       discordBlurple,
		Footer:      discordFooter{Text: a.Category},
		Timestamp:   a.PublishedDate.UTC().Format(time.RFC3339),
	}
	if a.Image != "" {
		embed.Image = &discordImage{URL: a.Image}
	}
	return discordPayload{Embeds: []discordEmbed{embed}}
}

func (d *DiscordNotifier) send(ctx context.Context, a *entity.Article) error {
	body, err := json.Marshal(d.buildPayload(a))
	if err != nil {
		return fmt.Errorf("marshal webhook payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.config.WebhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("post webhook: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusTooManyRequests:
		return &RateLimitError{RetryAfter: retryAfter(resp, respBody)}
	case resp.StatusCode >= 500:
		return &ServerError{StatusCode: resp.StatusCode}
	default:
		return &ClientError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}
}

// retryAfter reads the JSON body first and then the Retry-After header.
func retryAfter(resp *http.Response, body []byte) time.Duration {
	var de discordError
	if err := json.Unmarshal(body, &de); err == nil && de.RetryAfter > 0 {
		return time.Duration(de.RetryAfter * float64(time.Second))
	}
	if s, err := strconv.Atoi(resp.Header.Get("Retry-After")); err == nil && s > 0 {
		return time.Duration(s) * time.Second
	}
	return 5 * time.Second
}

// NotifyArticle waits for the rate limiter and posts the embed, retrying 429
// and 5xx responses.
func (d *DiscordNotifier) NotifyArticle(ctx context.Context, a *entity.Article) error {
	log := slog.With(
		slog.String("notification_id", uuid.NewString()),
		slog.String("article_id", a.ID),
	)
	if err := d.rateLimiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	var lastErr error
	for attempt := 1; attempt <= d.maxAttempts; attempt++ {
		lastErr = d.send(ctx, a)
		if lastErr == nil {
			log.Info("discord notification sent", slog.Int("attempt", attempt))
			return nil
		}

		var delay time.Duration
		var rl *RateLimitError
		switch {
		case asRateLimit(lastErr, &rl):
			delay = rl.RetryAfter
		case isRetryable(lastErr):
			delay = d.baseDelay * time.Duration(attempt)
		default:
			log.Error("discord notification rejected", slog.Any("error", lastErr))
			return lastErr
		}
		if attempt == d.maxAttempts {
			break
		}
		log.Warn("discord notification failed, retrying",
			slog.Int("attempt", attempt),
			slog.Duration("delay", delay),
			slog.Any("error", lastErr))
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return fmt.Errorf("discord retry aborted: %w", ctx.Err())
		}
	}
	return fmt.Errorf("discord notification failed after %d attempts: %w", d.maxAttempts, lastErr)
}
