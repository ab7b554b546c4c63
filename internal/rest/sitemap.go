package rest

import (
	"encoding/xml"
	"net/http"
	"strings"
	"time"

	"github.com/daniilsolovey/clinic-cms/internal/cms"
	"github.com/labstack/echo/v4"
)

const sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod"`
}

// buildSitemap renders entries as a sitemap document with absolute locations.
func buildSitemap(baseURL string, entries []cms.SitemapEntry) ([]byte, error) {
	base := strings.TrimRight(baseURL, "/")
	set := urlSet{XMLNS: sitemapNS, URLs: make([]sitemapURL, 0, len(entries))}
	for _, e := range entries {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:     base + e.Path,
			LastMod: e.LastMod.UTC().Format(time.DateOnly),
		})
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}

	return append([]byte(xml.Header), body...), nil
}

func robots(baseURL string) string {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Disallow: " + rpcPath + "\n")
	b.WriteString("Allow: /\n")
	b.WriteString("Sitemap: " + strings.TrimRight(baseURL, "/") + sitemapPath + "\n")
	return b.String()
}

// Sitemap handles GET /sitemap.xml
// @Summary Sitemap
// @Description Lists published, indexable pages, procedures and blog posts
// @Tags system
// @Produce xml
// @Success 200 {string} string
// @Failure 500 {object} map[string]string
// @Router /sitemap.xml [get]
func (h *Handler) Sitemap(c echo.Context) error {
	entries, err := h.cms.Sitemap(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	body, err := buildSitemap(h.baseURL, entries)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.Blob(http.StatusOK, echo.MIMEApplicationXMLCharsetUTF8, body)
}

// Robots handles GET /robots.txt
// @Summary Robots rules
// @Tags system
// @Produce plain
// @Success 200 {string} string
// @Router /robots.txt [get]
func (h *Handler) Robots(c echo.Context) error {
	return c.String(http.StatusOK, robots(h.baseURL))
}
