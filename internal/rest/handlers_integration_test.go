//go:build integration

package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/daniilsolovey/clinic-cms/internal/cms"
	"github.com/daniilsolovey/clinic-cms/internal/db"
	"github.com/go-pg/pg/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testDB     *pg.DB
	testServer *echo.Echo
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	opt, err := pg.ParseURL(db.TestDBURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to parse database URL: %v\n", err)
		os.Exit(1)
	}

	testDB = pg.Connect(opt)

	if err := testDB.Ping(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "failed to connect to test database. Make sure PostgreSQL is running:")
		fmt.Fprintln(os.Stderr, "  docker-compose -f docker-compose.test.yml up -d")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		_ = testDB.Close()
		os.Exit(1)
	}

	if err := db.ResetPublicSchema(ctx, testDB); err != nil {
		fmt.Fprintf(os.Stderr, "failed to reset schema: %v\n", err)
		_ = testDB.Close()
		os.Exit(1)
	}

	if err := db.Migrate(ctx, db.TestDBURL); err != nil {
		fmt.Fprintf(os.Stderr, "failed to run migrations: %v\n", err)
		_ = testDB.Close()
		os.Exit(1)
	}

	if err := db.EnsureTablesExist(ctx, testDB, db.TestTables); err != nil {
		fmt.Fprintf(os.Stderr, "schema verification failed: %v\n", err)
		_ = testDB.Close()
		os.Exit(1)
	}

	if err := db.LoadTestData(ctx, testDB); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load test data: %v\n", err)
		_ = testDB.Close()
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	testServer = NewHandler(cms.NewManager(db.New(testDB), nil), logger, "https://clinic.test").RegisterRoutes()

	code := m.Run()

	if err := testDB.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to close database connection: %v\n", err)
	}

	os.Exit(code)
}

func get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	testServer.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func getJSON(t *testing.T, path string, dest interface{}) {
	t.Helper()
	rec := get(t, path)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dest))
}

func TestHandler_Pages_Integration(t *testing.T) {
	t.Run("Published", func(t *testing.T) {
		var page Page
		getJSON(t, "/api/v1/pages/about", &page)
		assert.Equal(t, "page-about", page.ID)
		assert.Contains(t, page.HTML, "<p>About the clinic</p>")
		require.NotNil(t, page.Seo)
		assert.Equal(t, "About us", *page.Seo.MetaTitle)
	})

	t.Run("Markdown", func(t *testing.T) {
		var page Page
		getJSON(t, "/api/v1/pages/contacts", &page)
		assert.Contains(t, page.HTML, "<h1")
		assert.Contains(t, page.HTML, "Contacts</h1>")
	})

	t.Run("DraftHidden", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, get(t, "/api/v1/pages/draft").Code)
	})

	t.Run("Missing", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, get(t, "/api/v1/pages/nope").Code)
	})
}

func TestHandler_Menu_Integration(t *testing.T) {
	var menu []MenuItem
	getJSON(t, "/api/v1/menu", &menu)

	require.Len(t, menu, 2)
	assert.Equal(t, "Home", menu[0].Label)
	assert.Empty(t, menu[0].Children)

	services := menu[1]
	require.Len(t, services.Children, 2)
	assert.Equal(t, "Surgery", services.Children[0].Label)
	assert.Equal(t, "Dentistry", services.Children[1].Label)
	require.Len(t, services.Children[0].Children, 1)
	assert.Equal(t, "/procedures/rhinoplasty", services.Children[0].Children[0].Path)
}

func TestHandler_Catalog_Integration(t *testing.T) {
	t.Run("Areas", func(t *testing.T) {
		var areas []ExpertiseArea
		getJSON(t, "/api/v1/expertise-areas", &areas)
		require.Len(t, areas, 2)
		assert.Equal(t, "dentistry", areas[0].Slug)
		assert.Equal(t, "surgery", areas[1].Slug)
		require.Len(t, areas[1].Categories, 1)
		assert.Equal(t, "plastic", areas[1].Categories[0].Slug)
	})

	t.Run("AreaBySlug", func(t *testing.T) {
		var area ExpertiseArea
		getJSON(t, "/api/v1/expertise-areas/surgery", &area)
		require.Len(t, area.Categories, 1)
		assert.Equal(t, []ProcedureSummary{{ID: "proc-rhino", Slug: "rhinoplasty", Name: "Rhinoplasty"}}, area.Categories[0].Procedures)
	})

	t.Run("TreatmentCategory", func(t *testing.T) {
		var tc TreatmentCategory
		getJSON(t, "/api/v1/treatment-categories/plastic", &tc)
		require.NotNil(t, tc.ExpertiseArea)
		assert.Equal(t, "surgery", tc.ExpertiseArea.Slug)
		require.Len(t, tc.Procedures, 1)

		var empty TreatmentCategory
		getJSON(t, "/api/v1/treatment-categories/implants", &empty)
		assert.Empty(t, empty.Procedures)
	})

	t.Run("Procedure", func(t *testing.T) {
		var p Procedure
		getJSON(t, "/api/v1/procedures/rhinoplasty", &p)
		assert.Contains(t, p.HTML, "Nose reshaping")
		require.Len(t, p.Methods, 2)
		assert.Equal(t, "Closed", p.Methods[0].Name)
		assert.Equal(t, "Open", p.Methods[1].Name)
		require.Len(t, p.Faqs, 1)
		assert.Equal(t, "faq-rhino-pain", p.Faqs[0].ID)
		require.NotNil(t, p.TreatmentCategory)
		require.NotNil(t, p.TreatmentCategory.ExpertiseArea)
		assert.Equal(t, "surgery", p.TreatmentCategory.ExpertiseArea.Slug)
		require.NotNil(t, p.Seo)
		assert.Equal(t, "https://clinic.test/procedures/rhinoplasty", *p.Seo.CanonicalURL)
	})

	t.Run("DraftProcedureHidden", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, get(t, "/api/v1/procedures/otoplasty").Code)
	})

	t.Run("Faqs", func(t *testing.T) {
		var faqs []Faq
		getJSON(t, "/api/v1/faqs?global=true", &faqs)
		require.Len(t, faqs, 2)
		for _, f := range faqs {
			assert.True(t, f.IsGlobal)
		}

		assert.Equal(t, http.StatusBadRequest, get(t, "/api/v1/faqs?global=false").Code)
	})
}

func TestHandler_Blog_Integration(t *testing.T) {
	t.Run("Posts", func(t *testing.T) {
		var list PostList
		getJSON(t, "/api/v1/posts", &list)
		assert.Equal(t, 3, list.Total)
		require.Len(t, list.Posts, 3)
		assert.Equal(t, "recovery-tips", list.Posts[0].Slug)
		assert.Equal(t, "opening", list.Posts[2].Slug)
		require.NotNil(t, list.Posts[0].Category)
		assert.Equal(t, "tips", list.Posts[0].Category.Slug)
	})

	t.Run("ByCategory", func(t *testing.T) {
		var list PostList
		getJSON(t, "/api/v1/posts?categoryId=cat-news", &list)
		assert.Equal(t, 2, list.Total)
	})

	t.Run("Pagination", func(t *testing.T) {
		var list PostList
		getJSON(t, "/api/v1/posts?page=2&pageSize=2", &list)
		assert.Equal(t, 3, list.Total)
		assert.Equal(t, 2, list.Page)
		assert.Equal(t, 2, list.PageSize)
		require.Len(t, list.Posts, 1)
		assert.Equal(t, "opening", list.Posts[0].Slug)
	})

	t.Run("InvalidPage", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, get(t, "/api/v1/posts?page=abc").Code)
	})

	t.Run("PostBySlug", func(t *testing.T) {
		var post Post
		getJSON(t, "/api/v1/posts/new-equipment", &post)
		assert.Contains(t, post.HTML, "<strong>New</strong>")

		assert.Equal(t, http.StatusNotFound, get(t, "/api/v1/posts/unfinished").Code)
	})

	t.Run("Categories", func(t *testing.T) {
		var categories []Category
		getJSON(t, "/api/v1/categories", &categories)
		require.Len(t, categories, 3)

		counts := make(map[string]int)
		for _, c := range categories {
			counts[c.Slug] = c.PostCount
		}
		assert.Equal(t, map[string]int{"news": 2, "tips": 1, "empty": 0}, counts)
	})
}

func TestHandler_Site_Integration(t *testing.T) {
	t.Run("Sitemap", func(t *testing.T) {
		rec := get(t, "/sitemap.xml")
		require.Equal(t, http.StatusOK, rec.Code)

		body := rec.Body.String()
		assert.Contains(t, body, "<loc>https://clinic.test/about</loc>")
		assert.Contains(t, body, "<loc>https://clinic.test/procedures/rhinoplasty</loc>")
		assert.Contains(t, body, "<loc>https://clinic.test/blog/opening</loc>")
		assert.NotContains(t, body, "/contacts")
		assert.NotContains(t, body, "/draft")
		assert.NotContains(t, body, "/blog/unfinished")
	})

	t.Run("Health", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, get(t, "/health").Code)
	})
}
