// Package middleware holds the cross-cutting HTTP middleware of the API:
// client IP resolution, CORS, rate limiting and security headers.
package middleware

import (
	"errors"
	"log/slog"
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// ErrBadRemoteAddr is returned when RemoteAddr cannot be parsed.
var ErrBadRemoteAddr = errors.New("invalid remote address")

// ClientIP resolves the caller's address. Forwarding headers are honoured only
// when the TCP peer is one of the trusted proxies, otherwise RemoteAddr wins
// so clients cannot rotate their own rate limit key.
type ClientIP struct {
	Trusted []netip.Prefix
}

// Resolve returns the client IP as a string.
func (c ClientIP) Resolve(r *http.Request) (string, error) {
	peer, err := addrFromRemote(r.RemoteAddr)
	if err != nil {
		return "", err
	}
	if !c.trusts(peer) {
		if r.Header.Get("X-Forwarded-For") != "" || r.Header.Get("X-Real-IP") != "" {
			slog.Debug("ignoring forwarding headers from untrusted peer",
				slog.String("remote_addr", r.RemoteAddr))
		}
		return peer.String(), nil
	}

	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if a, err := netip.ParseAddr(strings.TrimSpace(first)); err == nil {
			return a.Unmap().String(), nil
		}
	}
	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
		if a, err := netip.ParseAddr(xri); err == nil {
			return a.Unmap().String(), nil
		}
	}
	return peer.String(), nil
}

func (c ClientIP) trusts(a netip.Addr) bool {
	for _, p := range c.Trusted {
		if p.Contains(a) {
			return true
		}
	}
	return false
}

func addrFromRemote(remote string) (netip.Addr, error) {
	host := remote
	if h, _, err := net.SplitHostPort(remote); err == nil {
		host = h
	}
	a, err := netip.ParseAddr(strings.Trim(host, "[]"))
	if err != nil {
		return netip.Addr{}, ErrBadRemoteAddr
	}
	return a.Unmap(), nil
}
