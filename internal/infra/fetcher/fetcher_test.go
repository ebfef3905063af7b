package fetcher

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"news-website/internal/resilience/retry"
	"news-website/internal/usecase/scrape"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const articleHTML = `<!doctype html>
<html><head>
<title>Harbor expansion approved</title>
<meta property="og:image" content="https://cdn.example.com/harbor.jpg">
</head><body>
<nav>Home | World | Business</nav>
<article>
<h1>Harbor expansion approved</h1>
<p>The city council approved the long-debated harbor expansion on Tuesday night after a six hour session
that drew hundreds of residents. The plan adds two new container berths and a public waterfront park.</p>
<p>Supporters argued that the expansion would bring thousands of jobs to the region over the next decade,
while opponents raised concerns about traffic, noise and the impact on the local fishing community.</p>
<p>Construction is expected to begin next spring and will be funded through a mix of municipal bonds and
federal infrastructure grants, according to the mayor's office.</p>
</article>
<footer>Copyright</footer>
</body></html>`

func testConfig() ContentFetchConfig {
	cfg := DefaultConfig()
	cfg.DenyPrivateIPs = false
	cfg.Timeout = 2 * time.Second
	return cfg
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		in string
		ok bool
	}{
		{"https://example.com/a", true},
		{"http://example.com", true},
		{"ftp://example.com", false},
		{"file:///etc/passwd", false},
		{"https://", false},
		{"::not a url", false},
	}
	for _, tt := range tests {
		_, err := ValidateURL(tt.in)
		if tt.ok {
			assert.NoError(t, err, tt.in)
		} else {
			assert.ErrorIs(t, err, scrape.ErrInvalidURL, tt.in)
		}
	}
}

func TestIsPrivateIP(t *testing.T) {
	for _, ip := range []string{"127.0.0.1", "10.1.2.3", "172.16.0.1", "192.168.1.1", "169.254.169.254", "::1", "fd00::1", "0.0.0.0"} {
		assert.True(t, isPrivateIP(net.ParseIP(ip)), ip)
	}
	for _, ip := range []string{"93.184.216.34", "2606:4700::1111"} {
		assert.False(t, isPrivateIP(net.ParseIP(ip)), ip)
	}
}

func TestReadabilityFetcher_FetchPage(t *testing.T) {
	var ua string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ua = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(articleHTML))
	}))
	defer srv.Close()

	f := NewReadabilityFetcher(nil, testConfig())
	page, err := f.FetchPage(context.Background(), srv.URL+"/harbor")
	require.NoError(t, err)
	assert.Equal(t, "Harbor expansion approved", page.Title)
	assert.Contains(t, page.Text, "two new container berths")
	assert.NotContains(t, page.Text, "Copyright")
	assert.Equal(t, "https://cdn.example.com/harbor.jpg", page.Image)
	assert.True(t, strings.HasPrefix(ua, "NewsWebsiteBot/"))
}

func TestReadabilityFetcher_Errors(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/missing", func(w http.ResponseWriter, _ *http.Request) { http.NotFound(w, nil) })
	mux.HandleFunc("/huge", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("x", 2048)))
	})
	mux.HandleFunc("/loop", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/loop", http.StatusFound)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	cfg := testConfig()
	cfg.MaxBodySize = 1024
	cfg.MaxRedirects = 2
	f := NewReadabilityFetcher(nil, cfg)

	_, err := f.FetchPage(context.Background(), srv.URL+"/missing")
	var he *retry.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusNotFound, he.StatusCode)

	_, err = f.FetchPage(context.Background(), srv.URL+"/huge")
	assert.ErrorIs(t, err, scrape.ErrBodyTooLarge)

	_, err = f.FetchPage(context.Background(), srv.URL+"/loop")
	assert.ErrorIs(t, err, scrape.ErrTooManyRedirects)

	_, err = f.FetchPage(context.Background(), "gopher://example.com")
	assert.ErrorIs(t, err, scrape.ErrInvalidURL)
}

func TestHTTPClient_DeniesPrivateAddresses(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Error("request should not reach a loopback server")
	}))
	defer srv.Close()

	cfg := DefaultConfig()
	_, _, err := Get(context.Background(), NewHTTPClient(cfg), srv.URL, cfg.MaxBodySize)
	assert.ErrorIs(t, err, scrape.ErrPrivateIP)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("FETCH_TIMEOUT", "5s")
	t.Setenv("FETCH_MAX_REDIRECTS", "3")
	cfg, err := LoadConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, 3, cfg.MaxRedirects)
	assert.True(t, cfg.DenyPrivateIPs)

	t.Setenv("FETCH_TIMEOUT", "1h")
	cfg, err = LoadConfigFromEnv()
	assert.Error(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}
