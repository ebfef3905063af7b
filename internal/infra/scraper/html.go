package scraper

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"
	"time"

	"news-website/internal/usecase/scrape"

	"github.com/PuerkitoBio/goquery"
)

const (
	minTitleLength = 20
	minTitleWords  = 4
)

// chrome is skipped when looking for article links.
const chrome = "nav, header, footer, aside, form, [role=navigation], .menu, .nav, .footer, .header"

// parseListing extracts article links from an index page. A link qualifies
// when it stays on the listing's host and its text reads like a headline.
func parseListing(body []byte, base *url.URL) ([]scrape.Item, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse HTML: %w", err)
	}
	if doc.Find("html, body").Length() == 0 || doc.Find("a[href]").Length() == 0 {
		return nil, scrape.ErrUnsupportedSource
	}
	doc.Find(chrome).Remove()

	seen := map[string]bool{}
	var items []scrape.Item
	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		link, ok := resolveLink(base, href)
		if !ok || seen[link] {
			return
		}
		title := linkTitle(a)
		if !looksLikeHeadline(title) {
			return
		}
		seen[link] = true

		card := a.Closest("article, li, .card, .post, .story, .item")
		if card.Length() == 0 {
			card = a.Parent()
		}
		items = append(items, scrape.Item{
			Title:       title,
			URL:         link,
			Content:     collapseSpace(card.Find("p").First().Text()),
			Image:       cardImage(base, a, card),
			PublishedAt: cardDate(card),
		})
	})
	return items, nil
}

// resolveLink makes href absolute and keeps only same-host article paths.
func resolveLink(base *url.URL, href string) (string, bool) {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "#") || strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") || strings.HasPrefix(href, "tel:") {
		return "", false
	}
	ref, err := url.Parse(href)
	if err != nil {
		return "", false
	}
	u := base.ResolveReference(ref)
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", false
	}
	if !sameSite(base.Hostname(), u.Hostname()) {
		return "", false
	}
	if u.Path == "" || u.Path == "/" || u.Path == base.Path {
		return "", false
	}
	u.Fragment = ""
	return u.String(), true
}

func sameSite(a, b string) bool {
	a = strings.TrimPrefix(strings.ToLower(a), "www.")
	b = strings.TrimPrefix(strings.ToLower(b), "www.")
	return a == b
}

// linkTitle prefers the anchor's own text, then its title attribute, then a
// heading inside it.
func linkTitle(a *goquery.Selection) string {
	if h := a.Find("h1, h2, h3, h4").First(); h.Length() > 0 {
		if t := collapseSpace(h.Text()); t != "" {
			return t
		}
	}
	if t := collapseSpace(a.Text()); t != "" {
		return t
	}
	t, _ := a.Attr("title")
	return collapseSpace(t)
}

func looksLikeHeadline(title string) bool {
	return len(title) >= minTitleLength && len(strings.Fields(title)) >= minTitleWords
}

func cardImage(base *url.URL, a, card *goquery.Selection) string {
	img := a.Find("img").First()
	if img.Length() == 0 {
		img = card.Find("img").First()
	}
	for _, attr := range []string{"src", "data-src"} {
		if src, ok := img.Attr(attr); ok && src != "" && !strings.HasPrefix(src, "data:") {
			ref, err := url.Parse(src)
			if err != nil {
				continue
			}
			return base.ResolveReference(ref).String()
		}
	}
	return ""
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 January 2006",
	"02/01/2006",
}

// cardDate reads <time datetime> or the time element's text. Zero when absent.
func cardDate(card *goquery.Selection) time.Time {
	tm := card.Find("time").First()
	if tm.Length() == 0 {
		return time.Time{}
	}
	candidates := []string{collapseSpace(tm.Text())}
	if dt, ok := tm.Attr("datetime"); ok {
		candidates = append([]string{strings.TrimSpace(dt)}, candidates...)
	}
	for _, c := range candidates {
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, c); err == nil {
				return t
			}
		}
	}
	return time.Time{}
}
