package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// htmlToText drops markup from a feed body. Plain text passes through with
// its whitespace collapsed.
func htmlToText(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || !strings.Contains(s, "<") {
		return collapseSpace(s)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return collapseSpace(s)
	}
	doc.Find("script, style, noscript").Remove()
	var parts []string
	doc.Find("p, li, h1, h2, h3, h4, blockquote").Each(func(_ int, sel *goquery.Selection) {
		if t := collapseSpace(sel.Text()); t != "" && sel.ParentsFiltered("p, li, blockquote").Length() == 0 {
			parts = append(parts, t)
		}
	})
	if len(parts) == 0 {
		return collapseSpace(doc.Text())
	}
	return strings.Join(parts, "\n\n")
}

func firstImage(s string) string {
	if !strings.Contains(s, "<img") {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return ""
	}
	src, _ := doc.Find("img[src]").First().Attr("src")
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		return src
	}
	return ""
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
