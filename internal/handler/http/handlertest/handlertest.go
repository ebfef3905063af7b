// Package handlertest holds helpers shared by the resource handler tests.
package handlertest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"news-website/internal/handler/http/auth"
)

const secret = "handlertest-secret-0123456789abcdef"

// Auth is a guard plus pre-issued tokens for each role.
type Auth struct {
	Guard  *auth.Guard
	Admin  string
	Editor string
}

func NewAuth(t *testing.T) Auth {
	t.Helper()
	keys, err := auth.NewKeys(secret, time.Hour)
	require.NoError(t, err)
	admin, _, err := keys.Issue("admin", auth.RoleAdmin)
	require.NoError(t, err)
	editor, _, err := keys.Issue("editor", auth.RoleEditor)
	require.NoError(t, err)
	return Auth{Guard: &auth.Guard{Keys: keys}, Admin: admin, Editor: editor}
}

// Do sends a request through h. body may be nil, a string, or any value
// that is JSON encoded. token is sent as a bearer token when non-empty.
func Do(t *testing.T, h http.Handler, method, target string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// Decode unmarshals the recorded body into v.
func Decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}
