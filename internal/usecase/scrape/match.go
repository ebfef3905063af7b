package scrape

import (
	"regexp"
	"strings"

	"news-website/internal/domain/entity"
)

// matcher reports whether a text mentions any of its keywords as a whole
// word. Go's \b is ASCII only, so boundaries are spelled out with \p classes.
type matcher struct {
	words   []string
	pattern *regexp.Regexp
}

const wordBoundary = `[^\p{L}\p{N}_]`

func newMatcher(words []string) *matcher {
	seen := make(map[string]struct{}, len(words))
	quoted := make([]string, 0, len(words))
	uniq := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		uniq = append(uniq, w)
		quoted = append(quoted, regexp.QuoteMeta(w))
	}
	m := &matcher{words: uniq}
	if len(quoted) > 0 {
		m.pattern = regexp.MustCompile(`(?i)(?:^|` + wordBoundary + `)(?:` +
			strings.Join(quoted, "|") + `)(?:$|` + wordBoundary + `)`)
	}
	return m
}

// Match is true for any text when the matcher has no keywords.
func (m *matcher) Match(texts ...string) bool {
	if m.pattern == nil {
		return true
	}
	for _, t := range texts {
		if m.pattern.MatchString(t) {
			return true
		}
	}
	return false
}

// rules holds the keyword sets derived from the admin-managed collections.
type rules struct {
	extra    map[string][]string
	inactive map[string]bool
}

func categoryKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func newRules(keywords []*entity.Keyword, categories []*entity.Category) rules {
	r := rules{extra: map[string][]string{}, inactive: map[string]bool{}}
	for _, k := range keywords {
		if k == nil || !k.IsActive || k.Category == "" {
			continue
		}
		key := categoryKey(k.Category)
		r.extra[key] = append(r.extra[key], k.Word)
	}
	for _, c := range categories {
		if c == nil {
			continue
		}
		key := categoryKey(c.Name)
		if !c.IsActive {
			r.inactive[key] = true
			continue
		}
		r.extra[key] = append(r.extra[key], c.Keywords...)
	}
	return r
}

// matcherFor returns nil when the config's category is switched off.
func (r rules) matcherFor(cfg *entity.ScrapConfig) *matcher {
	key := categoryKey(cfg.Category)
	if r.inactive[key] {
		return nil
	}
	words := append(append([]string{}, cfg.Keywords...), r.extra[key]...)
	return newMatcher(words)
}
