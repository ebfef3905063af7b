package entity

import (
	"errors"
	"net"
	"strings"
	"testing"
)

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{name: "valid https URL", url: "https://example.com/news", wantErr: false},
		{name: "valid http URL", url: "http://example.com/news", wantErr: false},
		{name: "valid URL with port", url: "https://example.com:8080/feed", wantErr: false},
		{name: "valid URL with query", url: "https://example.com/feed?param=value", wantErr: false},
		{name: "valid URL with path and fragment", url: "https://example.com/path/to/page#section", wantErr: false},
		{name: "empty URL", url: "", wantErr: true},
		{name: "invalid scheme - ftp", url: "ftp://example.com/feed", wantErr: true},
		{name: "invalid scheme - javascript", url: "javascript:alert(1)", wantErr: true},
		{name: "no host", url: "https://", wantErr: true},
		{name: "malformed URL", url: "ht!tp://example.com", wantErr: true},
		{name: "no scheme", url: "example.com", wantErr: true},
		{name: "URL exceeding maximum length", url: "https://example.com/" + strings.Repeat("a", 2050), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL(tt.url)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateURL() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var validationErr *ValidationError
				if !errors.As(err, &validationErr) {
					t.Errorf("expected ValidationError, got %T", err)
				}
			}
		})
	}
}

func TestValidateFetchURL_BlocksPrivateAddresses(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{name: "127.0.0.1 URL (loopback)", url: "http://127.0.0.1/feed", wantErr: true},
		{name: "private IP 10.x.x.x", url: "http://10.0.0.1/feed", wantErr: true},
		{name: "private IP 192.168.x.x", url: "http://192.168.1.1/feed", wantErr: true},
		{name: "private IP 172.16.x.x", url: "http://172.16.0.1/feed", wantErr: true},
		{name: "link-local 169.254.x.x (cloud metadata)", url: "http://169.254.169.254/latest/meta-data", wantErr: true},
		{name: "public IP literal", url: "http://93.184.216.34/feed", wantErr: false},
		{name: "syntactically invalid", url: "ftp://93.184.216.34/feed", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFetchURL(tt.url)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFetchURL() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestIsPrivateIP(t *testing.T) {
	tests := []struct {
		ip        string
		isPrivate bool
	}{
		{"127.0.0.1", true},
		{"::1", true},
		{"169.254.169.254", true},
		{"fe80::1", true},
		{"10.123.45.67", true},
		{"172.31.255.255", true},
		{"192.168.1.1", true},
		{"8.8.8.8", false},
		{"2001:4860:4860::8888", false},
		{"172.32.0.0", false},
		{"192.169.0.0", false},
	}

	for _, tt := range tests {
		t.Run(tt.ip, func(t *testing.T) {
			ip := net.ParseIP(tt.ip)
			if ip == nil {
				t.Fatalf("failed to parse IP: %s", tt.ip)
			}
			if got := IsPrivateIP(ip); got != tt.isPrivate {
				t.Errorf("IsPrivateIP(%s) = %v, want %v", tt.ip, got, tt.isPrivate)
			}
		})
	}
}

func TestIDs(t *testing.T) {
	id := NewID()
	if len(id) != 24 {
		t.Fatalf("NewID() length = %d, want 24", len(id))
	}
	if !IsValidID(id) {
		t.Errorf("IsValidID(%q) = false, want true", id)
	}
	for _, bad := range []string{"", "123", "zzzzzzzzzzzzzzzzzzzzzzzz", id + "0"} {
		if IsValidID(bad) {
			t.Errorf("IsValidID(%q) = true, want false", bad)
		}
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Hello World", "hello-world"},
		{"Go 1.25: What's New?", "go-125-whats-new"},
		{"Spaces   everywhere", "spaces-everywhere"},
		{" Padded title ", "-padded-title-"},
		{"already-slugged", "already-slugged"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			if got := Slugify(tt.title); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}
