package scraper

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"news-website/internal/usecase/scrape"

	"github.com/mmcdole/gofeed"
)

func parseFeed(body []byte) ([]scrape.Item, error) {
	feed, err := gofeed.NewParser().Parse(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	items := make([]scrape.Item, 0, len(feed.Items))
	for _, it := range feed.Items {
		link := strings.TrimSpace(it.Link)
		title := collapseSpace(it.Title)
		if link == "" || title == "" {
			continue
		}

		// Content優先、なければDescription
		raw := it.Content
		if raw == "" {
			raw = it.Description
		}

		var published time.Time
		switch {
		case it.PublishedParsed != nil:
			published = *it.PublishedParsed
		case it.UpdatedParsed != nil:
			published = *it.UpdatedParsed
		}

		items = append(items, scrape.Item{
			Title:       title,
			URL:         link,
			Content:     htmlToText(raw),
			Image:       itemImage(it, raw),
			PublishedAt: published,
		})
	}
	return items, nil
}

// itemImage checks the item image, image enclosures, media:content /
// media:thumbnail and finally the first <img> in the item body.
func itemImage(it *gofeed.Item, rawContent string) string {
	if it.Image != nil && it.Image.URL != "" {
		return it.Image.URL
	}
	for _, enc := range it.Enclosures {
		if enc != nil && enc.URL != "" && strings.HasPrefix(enc.Type, "image/") {
			return enc.URL
		}
	}
	if media, ok := it.Extensions["media"]; ok {
		for _, name := range []string{"content", "thumbnail"} {
			for _, ext := range media[name] {
				if u := ext.Attrs["url"]; u != "" {
					if medium := ext.Attrs["medium"]; medium == "" || medium == "image" {
						return u
					}
				}
			}
		}
	}
	return firstImage(rawContent)
}
