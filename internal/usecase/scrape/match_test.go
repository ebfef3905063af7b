package scrape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news-website/internal/domain/entity"
)

func TestMatcher_WordBoundaries(t *testing.T) {
	m := newMatcher([]string{"AI", "climate change", " ", "ai"})
	assert.Equal(t, []string{"ai", "climate change"}, m.words)

	tests := []struct {
		text string
		want bool
	}{
		{"New AI model released", true},
		{"ai: the year ahead", true},
		{"Fighting Climate Change together", true},
		{"Said the captain", false},
		{"Maintenance window", false},
		{"climate changes fast", false},
		{"(AI)", true},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Match(tt.text))
		})
	}
}

func TestMatcher_UnicodeAndMeta(t *testing.T) {
	m := newMatcher([]string{"c++", "café"})
	assert.True(t, m.Match("Learning C++ in 2024"))
	assert.True(t, m.Match("Le café du coin"))
	assert.False(t, m.Match("Cafétéria ouverte"))
}

func TestMatcher_EmptyMatchesEverything(t *testing.T) {
	m := newMatcher(nil)
	assert.True(t, m.Match("anything"))
}

func TestRules_MatcherFor(t *testing.T) {
	keywords := []*entity.Keyword{
		{Word: "election", Category: "Politics", IsActive: true},
		{Word: "senate", Category: "politics", IsActive: false},
		{Word: "goal", IsActive: true},
	}
	categories := []*entity.Category{
		{Name: "Politics", IsActive: true, Keywords: []string{"parliament"}},
		{Name: "Sports", IsActive: false, Keywords: []string{"match"}},
	}
	r := newRules(keywords, categories)

	m := r.matcherFor(&entity.ScrapConfig{Category: "politics", Keywords: []string{"vote"}})
	require.NotNil(t, m)
	assert.ElementsMatch(t, []string{"vote", "election", "parliament"}, m.words)
	assert.True(t, m.Match("Parliament debates budget"))
	assert.False(t, m.Match("Senate hearing"))

	assert.Nil(t, r.matcherFor(&entity.ScrapConfig{Category: "Sports", Keywords: []string{"goal"}}))
}
