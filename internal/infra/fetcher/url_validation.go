// Package fetcher owns the HTTP client the worker uses for sources and
// article pages, and extracts readable article bodies.
package fetcher

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"syscall"

	"news-website/internal/usecase/scrape"
)

// ValidateURL accepts absolute http(s) URLs with a host.
func ValidateURL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", scrape.ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: scheme %q not allowed", scrape.ErrInvalidURL, u.Scheme)
	}
	if u.Hostname() == "" {
		return nil, fmt.Errorf("%w: empty hostname", scrape.ErrInvalidURL)
	}
	return u, nil
}

// isPrivateIP covers loopback, RFC 1918 / fc00::/7, link-local and unspecified.
func isPrivateIP(ip net.IP) bool {
	return ip.IsLoopback() || ip.IsPrivate() || ip.IsLinkLocalUnicast() ||
		ip.IsLinkLocalMulticast() || ip.IsUnspecified()
}

// guardDial rejects connections to private addresses after DNS resolution,
// so rebinding a public name to an internal IP does not get through.
func guardDial(_ context.Context, network, address string, _ syscall.RawConn) error {
	host, _, err := net.SplitHostPort(address)
	if err != nil {
		return fmt.Errorf("%w: %v", scrape.ErrInvalidURL, err)
	}
	ip := net.ParseIP(host)
	if ip == nil {
		return fmt.Errorf("%w: unresolved address %s", scrape.ErrInvalidURL, host)
	}
	if isPrivateIP(ip) {
		return fmt.Errorf("%w: %s", scrape.ErrPrivateIP, ip)
	}
	return nil
}
