//go:build integration

package cms

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/daniilsolovey/clinic-cms/internal/db"
	"github.com/go-pg/pg/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDB *pg.DB

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

	if err := db.LoadTestData(ctx, testDB); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load test data: %v\n", err)
		_ = testDB.Close()
		os.Exit(1)
	}

	code := m.Run()

	if err := testDB.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to close database connection: %v\n", err)
	}

	os.Exit(code)
}

type fakeStorage struct {
	objects map[string][]byte
	failPut bool
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: make(map[string][]byte)}
}

func (s *fakeStorage) Put(_ context.Context, fileName, _ string, r io.Reader, _ int64) (string, error) {
	if s.failPut {
		return "", errors.New("storage is down")
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	key := "media/" + fileName
	s.objects[key] = b
	return key, nil
}

func (s *fakeStorage) Remove(_ context.Context, key string) error {
	delete(s.objects, key)
	return nil
}

func (s *fakeStorage) URL(key string) string { return "https://cdn.clinic.test/" + key }

func (s *fakeStorage) Key(url string) (string, bool) {
	key, ok := strings.CutPrefix(url, "https://cdn.clinic.test/")
	return key, ok && strings.HasPrefix(key, "media/")
}

func withTx(t *testing.T) (*pg.Tx, context.Context, *Manager, *fakeStorage) {
	t.Helper()
	ctx := context.Background()

	tx, err := testDB.Begin()
	if err != nil {
		t.Fatalf("failed to begin transaction: %v", err)
	}

	t.Cleanup(func() {
		if err := tx.Rollback(); err != nil {
			t.Errorf("failed to rollback transaction: %v", err)
		}
	})

	storage := newFakeStorage()
	return tx, ctx, NewManager(db.New(tx), storage), storage
}

func TestManager_Pages_Integration(t *testing.T) {
	_, ctx, m, _ := withTx(t)

	t.Run("PublishedBySlug", func(t *testing.T) {
		page, err := m.PageBySlug(ctx, "contacts")
		require.NoError(t, err)
		require.NotNil(t, page)
		assert.Contains(t, page.HTML, "<h1>Contacts</h1>")
		require.NotNil(t, page.SeoSetting)
		assert.True(t, page.SeoSetting.NoIndex)
	})

	t.Run("DraftIsHidden", func(t *testing.T) {
		page, err := m.PageBySlug(ctx, "draft")
		require.NoError(t, err)
		assert.Nil(t, page)
	})

	t.Run("CreateResolvesSlugCollision", func(t *testing.T) {
		page, err := m.CreatePage(ctx, db.Page{Title: "About"})
		require.NoError(t, err)
		assert.Equal(t, "about-2", page.Slug)
		assert.Equal(t, db.StatusDraft, page.Status)

		page, err = m.CreatePage(ctx, db.Page{Title: "About", Status: db.StatusPublished})
		require.NoError(t, err)
		assert.Equal(t, "about-3", page.Slug)
		assert.NotNil(t, page.PublishedAt)
	})

	t.Run("UpdateToTakenSlug", func(t *testing.T) {
		_, err := m.UpdatePage(ctx, db.Page{ID: "page-draft", Slug: "About", Title: "Draft"})
		assert.ErrorIs(t, err, ErrSlugTaken)
	})

	t.Run("UpdateMissing", func(t *testing.T) {
		_, err := m.UpdatePage(ctx, db.Page{ID: "missing", Title: "x"})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("StatusWorkflow", func(t *testing.T) {
		page, err := m.SetPageStatus(ctx, "page-draft", db.StatusPublished)
		require.NoError(t, err)
		assert.Equal(t, db.StatusPublished, page.Status)
		require.NotNil(t, page.PublishedAt)

		_, err = m.SetPageStatus(ctx, "page-draft", db.StatusArchived)
		require.NoError(t, err)

		_, err = m.SetPageStatus(ctx, "page-draft", db.StatusPublished)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("ListWithCount", func(t *testing.T) {
		published := db.StatusPublished
		pages, count, err := m.Pages(ctx, PageFilter{Status: &published}, db.Pager{Page: 1, PageSize: 1})
		require.NoError(t, err)
		assert.Len(t, pages, 1)
		assert.GreaterOrEqual(t, count, 2)
	})

	t.Run("DeleteRemovesSeo", func(t *testing.T) {
		require.NoError(t, m.DeletePage(ctx, "page-about"))

		seo, err := m.db.SeoSettings.FindUnique(ctx, db.ByID("seo-about"))
		require.NoError(t, err)
		assert.Nil(t, seo)

		assert.ErrorIs(t, m.DeletePage(ctx, "page-about"), ErrNotFound)
	})
}

func TestManager_Seo_Integration(t *testing.T) {
	_, ctx, m, _ := withTx(t)

	t.Run("AttachTakenSettings", func(t *testing.T) {
		err := m.AttachSeo(ctx, SeoOwnerBlogPost, "post-1", "seo-rhinoplasty")
		assert.ErrorIs(t, err, ErrSeoTaken)
	})

	t.Run("CreateWithTakenSettings", func(t *testing.T) {
		_, err := m.CreatePage(ctx, db.Page{Title: "Dup seo", SeoSettingsID: strPtr("seo-about")})
		assert.ErrorIs(t, err, ErrSeoTaken)
	})

	t.Run("AttachFreeSettings", func(t *testing.T) {
		require.NoError(t, m.AttachSeo(ctx, SeoOwnerBlogPost, "post-1", "seo-free"))

		seo, err := m.SeoFor(ctx, SeoOwnerBlogPost, "post-1")
		require.NoError(t, err)
		require.NotNil(t, seo)
		assert.Equal(t, "seo-free", seo.ID)

		// re-attaching to the same owner is allowed
		require.NoError(t, m.AttachSeo(ctx, SeoOwnerBlogPost, "post-1", "seo-free"))
	})

	t.Run("UpsertCreatesThenUpdates", func(t *testing.T) {
		seo, err := m.UpsertSeo(ctx, SeoOwnerProcedure, "proc-oto", db.SeoSetting{MetaTitle: strPtr("Otoplasty")})
		require.NoError(t, err)
		id := seo.ID

		seo, err = m.UpsertSeo(ctx, SeoOwnerProcedure, "proc-oto", db.SeoSetting{MetaTitle: strPtr("Ear surgery")})
		require.NoError(t, err)
		assert.Equal(t, id, seo.ID)
		assert.Equal(t, "Ear surgery", *seo.MetaTitle)
	})

	t.Run("DetachAndCleanOrphans", func(t *testing.T) {
		require.NoError(t, m.DetachSeo(ctx, SeoOwnerPage, "page-contacts", false))

		orphaned := true
		list, _, err := m.SeoSettings(ctx, &orphaned, db.PagerNoLimit)
		require.NoError(t, err)
		ids := make([]string, 0, len(list))
		for _, s := range list {
			ids = append(ids, s.ID)
		}
		assert.Contains(t, ids, "seo-hidden")

		n, err := m.DeleteOrphanSeo(ctx)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 1)
	})

	t.Run("UnknownOwner", func(t *testing.T) {
		assert.ErrorIs(t, m.AttachSeo(ctx, "video", "x", "seo-free"), ErrInvalidInput)
	})
}

func TestManager_Menu_Integration(t *testing.T) {
	_, ctx, m, _ := withTx(t)

	t.Run("Tree", func(t *testing.T) {
		tree, err := m.MenuTree(ctx)
		require.NoError(t, err)
		require.Len(t, tree, 2)
		assert.Equal(t, "menu-home", tree[0].ID)
		require.Len(t, tree[1].Children, 2)
		assert.Equal(t, "menu-surgery", tree[1].Children[0].ID)
		assert.Equal(t, "menu-rhino", tree[1].Children[0].Children[0].ID)
	})

	t.Run("CycleIsRefused", func(t *testing.T) {
		_, err := m.UpdateMenuItem(ctx, db.MenuItem{ID: "menu-services", Label: "Services", Path: "/services", ParentID: strPtr("menu-rhino")})
		assert.ErrorIs(t, err, ErrMenuCycle)

		_, err = m.UpdateMenuItem(ctx, db.MenuItem{ID: "menu-services", Label: "Services", Path: "/services", ParentID: strPtr("menu-services")})
		assert.ErrorIs(t, err, ErrMenuCycle)
	})

	t.Run("Move", func(t *testing.T) {
		item, err := m.UpdateMenuItem(ctx, db.MenuItem{ID: "menu-rhino", Label: "Rhinoplasty", Path: "/procedures/rhinoplasty", ParentID: strPtr("menu-services"), Order: 2})
		require.NoError(t, err)
		assert.Equal(t, "menu-services", *item.ParentID)
	})

	t.Run("Reorder", func(t *testing.T) {
		require.NoError(t, m.ReorderMenu(ctx, nil, []string{"menu-services", "menu-home"}))

		tree, err := m.MenuTree(ctx)
		require.NoError(t, err)
		assert.Equal(t, "menu-services", tree[0].ID)

		err = m.ReorderMenu(ctx, nil, []string{"menu-home"})
		assert.ErrorIs(t, err, ErrInvalidInput)
		err = m.ReorderMenu(ctx, nil, []string{"menu-home", "menu-home"})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("DeleteReparentsChildren", func(t *testing.T) {
		require.NoError(t, m.DeleteMenuItem(ctx, "menu-services"))

		tree, err := m.MenuTree(ctx)
		require.NoError(t, err)
		ids := make([]string, 0, len(tree))
		for _, n := range tree {
			ids = append(ids, n.ID)
		}
		assert.ElementsMatch(t, []string{"menu-home", "menu-surgery", "menu-dent", "menu-rhino"}, ids)
	})

	t.Run("CreateWithMissingParent", func(t *testing.T) {
		_, err := m.CreateMenuItem(ctx, db.MenuItem{Label: "x", Path: "/x", ParentID: strPtr("missing")})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestManager_Catalog_Integration(t *testing.T) {
	_, ctx, m, _ := withTx(t)

	t.Run("AreaBySlugShowsPublishedOnly", func(t *testing.T) {
		area, err := m.ExpertiseAreaBySlug(ctx, "surgery")
		require.NoError(t, err)
		require.NotNil(t, area)
		require.Len(t, area.Categories, 1)
		require.Len(t, area.Categories[0].Procedures, 1)
		assert.Equal(t, "rhinoplasty", area.Categories[0].Procedures[0].Slug)
	})

	t.Run("ProcedureBySlug", func(t *testing.T) {
		p, err := m.ProcedureBySlug(ctx, "rhinoplasty")
		require.NoError(t, err)
		require.NotNil(t, p)
		assert.Len(t, p.Methods, 2)
		assert.Len(t, p.Faqs, 1)
		require.NotNil(t, p.TreatmentCategory)
		require.NotNil(t, p.TreatmentCategory.ExpertiseArea)
		assert.Equal(t, "surgery", p.TreatmentCategory.ExpertiseArea.Slug)
		assert.Contains(t, p.HTML, "Nose reshaping")

		p, err = m.ProcedureBySlug(ctx, "otoplasty")
		require.NoError(t, err)
		assert.Nil(t, p)
	})

	t.Run("GlobalFaqs", func(t *testing.T) {
		global := true
		faqs, err := m.Faqs(ctx, FaqFilter{IsGlobal: &global})
		require.NoError(t, err)
		assert.Len(t, faqs, 2)
	})

	t.Run("FaqRules", func(t *testing.T) {
		_, err := m.CreateFaq(ctx, db.Faq{Question: "q", Answer: "a", IsGlobal: true, ProcedureID: strPtr("proc-rhino")})
		assert.ErrorIs(t, err, ErrInvalidFaq)

		_, err = m.CreateFaq(ctx, db.Faq{Question: "q", Answer: "a"})
		assert.ErrorIs(t, err, ErrInvalidFaq)

		_, err = m.CreateFaq(ctx, db.Faq{Question: "q", Answer: "a", ProcedureID: strPtr("missing")})
		assert.ErrorIs(t, err, ErrNotFound)

		faq, err := m.CreateFaq(ctx, db.Faq{Question: "q", Answer: "a", ProcedureID: strPtr("proc-oto")})
		require.NoError(t, err)
		assert.False(t, faq.IsGlobal)
	})

	t.Run("CreateProcedure", func(t *testing.T) {
		p, err := m.CreateProcedure(ctx, db.Procedure{Name: "Rhinoplasty", Description: "Again", TreatmentCategoryID: "tc-plastic"})
		require.NoError(t, err)
		assert.Equal(t, "rhinoplasty-2", p.Slug)

		_, err = m.CreateProcedure(ctx, db.Procedure{Name: "Nope", TreatmentCategoryID: "missing"})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("DeleteAreaInUse", func(t *testing.T) {
		assert.ErrorIs(t, m.DeleteExpertiseArea(ctx, "area-dentistry"), ErrInUse)
	})

	t.Run("DeleteProcedureCascades", func(t *testing.T) {
		require.NoError(t, m.DeleteProcedure(ctx, "proc-rhino"))

		methods, err := m.ProcedureMethods(ctx, "proc-rhino")
		require.NoError(t, err)
		assert.Empty(t, methods)

		seo, err := m.db.SeoSettings.FindUnique(ctx, db.ByID("seo-rhinoplasty"))
		require.NoError(t, err)
		assert.Nil(t, seo)
	})
}

func TestManager_Blog_Integration(t *testing.T) {
	_, ctx, m, _ := withTx(t)

	t.Run("PublishedPosts", func(t *testing.T) {
		posts, count, err := m.PublishedPosts(ctx, nil, db.Pager{Page: 1, PageSize: 2})
		require.NoError(t, err)
		assert.Equal(t, 3, count)
		require.Len(t, posts, 2)
		assert.Equal(t, "recovery-tips", posts[0].Slug)
		require.NotNil(t, posts[0].Category)
		assert.Equal(t, "tips", posts[0].Category.Slug)
	})

	t.Run("PublishedPostsByCategory", func(t *testing.T) {
		news := "cat-news"
		posts, count, err := m.PublishedPosts(ctx, &news, db.PagerDefault)
		require.NoError(t, err)
		assert.Equal(t, 2, count)
		assert.Len(t, posts, 2)
	})

	t.Run("PostBySlug", func(t *testing.T) {
		post, err := m.PostBySlug(ctx, "new-equipment")
		require.NoError(t, err)
		require.NotNil(t, post)
		assert.Contains(t, post.HTML, "<strong>New</strong>")

		post, err = m.PostBySlug(ctx, "unfinished")
		require.NoError(t, err)
		assert.Nil(t, post)
	})

	t.Run("CategoriesWithCounts", func(t *testing.T) {
		cats, err := m.Categories(ctx)
		require.NoError(t, err)
		counts := map[string]int{}
		for _, c := range cats {
			counts[c.Slug] = c.PostCount
		}
		assert.Equal(t, map[string]int{"empty": 0, "news": 2, "tips": 1}, counts)
	})

	t.Run("CreatePostFillsExcerpt", func(t *testing.T) {
		post, err := m.CreatePost(ctx, "user-editor", db.BlogPost{Title: "Opening", Content: "We are **open** daily", CategoryID: strPtr("cat-tips")})
		require.NoError(t, err)
		assert.Equal(t, "opening-2", post.Slug)
		assert.Equal(t, "user-editor", post.AuthorID)
		require.NotNil(t, post.Excerpt)
		assert.Equal(t, "We are open daily", *post.Excerpt)

		_, err = m.CreatePost(ctx, "user-editor", db.BlogPost{Title: "x", CategoryID: strPtr("missing")})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("SamePublishDateIsPagedByID", func(t *testing.T) {
		_, err := m.db.ExecuteRaw(ctx, `UPDATE "blogPosts" SET "publishedAt" = ? WHERE "status" = ?`, db.BaseTime, db.StatusPublished)
		require.NoError(t, err)

		var ids []string
		for page := 1; page <= 3; page++ {
			posts, count, err := m.PublishedPosts(ctx, nil, db.Pager{Page: page, PageSize: 1})
			require.NoError(t, err)
			assert.Equal(t, 3, count)
			require.Len(t, posts, 1)
			ids = append(ids, posts[0].ID)
		}
		assert.Equal(t, []string{"post-1", "post-2", "post-3"}, ids)
	})

	t.Run("DeleteCategoryUncategorizesPosts", func(t *testing.T) {
		require.NoError(t, m.DeleteCategory(ctx, "cat-tips"))

		post, err := m.PostByID(ctx, "post-3")
		require.NoError(t, err)
		assert.Nil(t, post.CategoryID)
	})
}

func TestManager_Users_Integration(t *testing.T) {
	_, ctx, m, _ := withTx(t)

	user, err := m.CreateUser(ctx, db.User{Email: "  Doctor@Clinic.Test ", Role: db.RoleEditor}, "secret-password")
	require.NoError(t, err)
	assert.Equal(t, "doctor@clinic.test", user.Email)
	assert.Empty(t, user.Password)

	t.Run("Authenticate", func(t *testing.T) {
		u, err := m.Authenticate(ctx, "DOCTOR@clinic.test", "secret-password")
		require.NoError(t, err)
		assert.Equal(t, user.ID, u.ID)
		assert.Empty(t, u.Password)

		_, err = m.Authenticate(ctx, "doctor@clinic.test", "wrong-password")
		assert.ErrorIs(t, err, ErrInvalidCredentials)

		_, err = m.Authenticate(ctx, "nobody@clinic.test", "secret-password")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		_, err := m.CreateUser(ctx, db.User{Email: "admin@clinic.test"}, "secret-password")
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("ChangePassword", func(t *testing.T) {
		pass := "another-password"
		_, err := m.UpdateUser(ctx, db.User{ID: user.ID, Role: db.RoleAdmin}, &pass)
		require.NoError(t, err)

		u, err := m.Authenticate(ctx, "doctor@clinic.test", pass)
		require.NoError(t, err)
		assert.Equal(t, db.RoleAdmin, u.Role)
	})

	t.Run("List", func(t *testing.T) {
		users, count, err := m.Users(ctx, UserFilter{}, db.PagerNoLimit)
		require.NoError(t, err)
		assert.Equal(t, 3, count)
		for _, u := range users {
			assert.Empty(t, u.Password)
		}
	})
}

func TestManager_Media_Integration(t *testing.T) {
	_, ctx, m, storage := withTx(t)

	media, err := m.UploadMedia(ctx, "photo.png", "image/png", bytes.NewReader([]byte("png")), 3, strPtr("Photo"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.clinic.test/media/photo.png", media.URL)
	assert.Contains(t, storage.objects, "media/photo.png")

	require.NoError(t, m.DeleteMedia(ctx, media.ID))
	assert.NotContains(t, storage.objects, "media/photo.png")

	// external files are only unregistered
	require.NoError(t, m.DeleteMedia(ctx, "media-logo"))

	storage.failPut = true
	_, err = m.UploadMedia(ctx, "a.png", "image/png", bytes.NewReader(nil), 0, nil)
	assert.Error(t, err)

	noStorage := NewManager(m.db, nil)
	_, err = noStorage.UploadMedia(ctx, "a.png", "", bytes.NewReader(nil), 0, nil)
	assert.ErrorIs(t, err, ErrStorageDisabled)
}

func TestManager_SitemapAndStats_Integration(t *testing.T) {
	_, ctx, m, _ := withTx(t)

	entries, err := m.Sitemap(ctx)
	require.NoError(t, err)
	paths := make([]string, 0, len(entries))
	for _, e := range entries {
		paths = append(paths, e.Path)
	}
	assert.Equal(t, []string{
		"/about",
		"/blog/new-equipment",
		"/blog/opening",
		"/blog/recovery-tips",
		"/procedures/rhinoplasty",
	}, paths)

	stats, err := m.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Pages[db.StatusPublished])
	assert.Equal(t, 1, stats.Pages[db.StatusDraft])
	assert.Equal(t, 0, stats.Pages[db.StatusArchived])
	assert.Equal(t, 3, stats.BlogPosts[db.StatusPublished])
	assert.Equal(t, 1, stats.Procedures[db.StatusDraft])
	require.NotNil(t, stats.LastPublishedPost)
	assert.True(t, stats.LastPublishedPost.Equal(db.BaseTime.Add(48*time.Hour)))
	assert.Equal(t, 1, stats.Media)
	assert.Equal(t, 2, stats.Users)
}

// Writes below commit, so they run on the shared pool and clean up after themselves.
func TestManager_ConcurrentWrites_Integration(t *testing.T) {
	ctx := context.Background()
	m := NewManager(db.New(testDB), newFakeStorage())

	race := func(fns ...func() error) []error {
		errs := make([]error, len(fns))
		var wg sync.WaitGroup
		for i, fn := range fns {
			wg.Add(1)
			go func(i int, fn func() error) {
				defer wg.Done()
				errs[i] = fn()
			}(i, fn)
		}
		wg.Wait()
		return errs
	}

	t.Run("SeoAttachedOnce", func(t *testing.T) {
		seo, err := m.CreateSeo(ctx, db.SeoSetting{MetaTitle: strPtr("Shared")})
		require.NoError(t, err)
		page, err := m.CreatePage(ctx, db.Page{Title: "Concurrent page"})
		require.NoError(t, err)
		post, err := m.CreatePost(ctx, "user-editor", db.BlogPost{Title: "Concurrent post"})
		require.NoError(t, err)
		t.Cleanup(func() {
			assert.NoError(t, m.DeletePage(ctx, page.ID))
			assert.NoError(t, m.DeletePost(ctx, post.ID))
			_, _ = m.db.SeoSettings.Delete(ctx, db.ByID(seo.ID))
		})

		for i := 0; i < 5; i++ {
			require.NoError(t, m.DetachSeo(ctx, SeoOwnerPage, page.ID, false))
			require.NoError(t, m.DetachSeo(ctx, SeoOwnerBlogPost, post.ID, false))

			errs := race(
				func() error { return m.AttachSeo(ctx, SeoOwnerPage, page.ID, seo.ID) },
				func() error { return m.AttachSeo(ctx, SeoOwnerBlogPost, post.ID, seo.ID) },
			)

			failed := 0
			for _, err := range errs {
				if err != nil {
					assert.ErrorIs(t, err, ErrSeoTaken)
					failed++
				}
			}
			assert.Equal(t, 1, failed, "attempt %d", i)
		}
	})

	t.Run("MenuSwapRefused", func(t *testing.T) {
		a, err := m.CreateMenuItem(ctx, db.MenuItem{Label: "Concurrent A", Path: "/a", Order: 90})
		require.NoError(t, err)
		b, err := m.CreateMenuItem(ctx, db.MenuItem{Label: "Concurrent B", Path: "/b", Order: 91})
		require.NoError(t, err)
		t.Cleanup(func() {
			assert.NoError(t, m.DeleteMenuItem(ctx, a.ID))
			assert.NoError(t, m.DeleteMenuItem(ctx, b.ID))
		})

		for i := 0; i < 5; i++ {
			a.ParentID, b.ParentID = nil, nil
			_, err := m.UpdateMenuItem(ctx, *a)
			require.NoError(t, err)
			_, err = m.UpdateMenuItem(ctx, *b)
			require.NoError(t, err)

			underB, underA := *a, *b
			underB.ParentID, underA.ParentID = &b.ID, &a.ID
			errs := race(
				func() error { _, err := m.UpdateMenuItem(ctx, underB); return err },
				func() error { _, err := m.UpdateMenuItem(ctx, underA); return err },
			)

			failed := 0
			for _, err := range errs {
				if err != nil {
					assert.ErrorIs(t, err, ErrMenuCycle)
					failed++
				}
			}
			assert.Equal(t, 1, failed, "attempt %d", i)
		}
	})
}
