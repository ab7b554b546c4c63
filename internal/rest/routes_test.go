package rest

import (
	"encoding/xml"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/daniilsolovey/clinic-cms/internal/cms"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSitemap(t *testing.T) {
	lastMod := time.Date(2024, 1, 14, 23, 30, 0, 0, time.UTC)
	body, err := buildSitemap("https://clinic.test/", []cms.SitemapEntry{
		{Path: "/about", LastMod: lastMod},
		{Path: "/blog/opening", LastMod: lastMod.Add(24 * time.Hour)},
	})
	require.NoError(t, err)

	assert.Contains(t, string(body), xml.Header)

	var set urlSet
	require.NoError(t, xml.Unmarshal(body, &set))
	assert.Equal(t, sitemapNS, set.XMLNS)
	assert.Equal(t, []sitemapURL{
		{Loc: "https://clinic.test/about", LastMod: "2024-01-14"},
		{Loc: "https://clinic.test/blog/opening", LastMod: "2024-01-15"},
	}, set.URLs)

	t.Run("Empty", func(t *testing.T) {
		body, err := buildSitemap("https://clinic.test", nil)
		require.NoError(t, err)
		assert.Contains(t, string(body), "<urlset")
	})
}

func TestRobots(t *testing.T) {
	txt := robots("https://clinic.test/")
	assert.Contains(t, txt, "User-agent: *\n")
	assert.Contains(t, txt, "Disallow: /v1/rpc/\n")
	assert.Contains(t, txt, "Sitemap: https://clinic.test/sitemap.xml\n")
}

func TestRegisterRoutes(t *testing.T) {
	h := NewHandler(nil, slog.New(slog.NewTextHandler(io.Discard, nil)), "https://clinic.test")
	e := h.RegisterRoutes()

	t.Run("Robots", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/robots.txt", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Sitemap: https://clinic.test/sitemap.xml")
	})

	t.Run("Metrics", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "cms_http_request_duration_seconds")
	})

	t.Run("UnknownRoute", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/unknown", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("RPCMounted", func(t *testing.T) {
		called := false
		RegisterRPC(e, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			called = true
			w.WriteHeader(http.StatusNoContent)
		}))

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/rpc/", nil))
		assert.True(t, called)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}
