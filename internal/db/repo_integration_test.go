//go:build integration

package db

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDB *pg.DB

func TestMain(m *testing.M) {
	ctx := context.Background()

	opt, err := pg.ParseURL(TestDBURL)
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

	if err := ResetPublicSchema(ctx, testDB); err != nil {
		fmt.Fprintf(os.Stderr, "failed to reset schema: %v\n", err)
		_ = testDB.Close()
		os.Exit(1)
	}

	if err := Migrate(ctx, TestDBURL); err != nil {
		fmt.Fprintf(os.Stderr, "failed to run migrations: %v\n", err)
		_ = testDB.Close()
		os.Exit(1)
	}

	if err := EnsureTablesExist(ctx, testDB, TestTables); err != nil {
		fmt.Fprintf(os.Stderr, "schema verification failed: %v\n", err)
		_ = testDB.Close()
		os.Exit(1)
	}

	if err := LoadTestData(ctx, testDB); err != nil {
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

func TestDelegate_FindUnique_Integration(t *testing.T) {
	_, ctx, client := withTx(t)

	t.Run("BySlugWithRelation", func(t *testing.T) {
		page, err := client.Pages.FindUnique(ctx, BySlug("about"), WithRelations(Columns.Page.SeoSetting))
		require.NoError(t, err)
		require.NotNil(t, page)
		assert.Equal(t, "page-about", page.ID)
		require.NotNil(t, page.SeoSetting)
		assert.Equal(t, "About us", *page.SeoSetting.MetaTitle)
	})

	t.Run("MissingReturnsNil", func(t *testing.T) {
		page, err := client.Pages.FindUnique(ctx, BySlug("missing"))
		require.NoError(t, err)
		assert.Nil(t, page)
	})

	t.Run("OrThrowReturnsNotFound", func(t *testing.T) {
		_, err := client.Pages.FindUniqueOrThrow(ctx, ByID("missing"))
		assert.True(t, IsNotFound(err))
	})

	t.Run("NonUniqueColumnIsValidationError", func(t *testing.T) {
		_, err := client.Pages.FindUnique(ctx, Unique{Column: Columns.Page.Title, Value: "About"})
		assert.True(t, IsValidation(err))
	})

	t.Run("UserByEmail", func(t *testing.T) {
		user, err := client.Users.FindUnique(ctx, ByEmail("editor@clinic.test"))
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, RoleEditor, user.Role)
	})

	t.Run("HasManyRelations", func(t *testing.T) {
		proc, err := client.Procedures.FindUnique(ctx, BySlug("rhinoplasty"),
			WithRelations(Columns.Procedure.Methods, Columns.Procedure.Faqs, "TreatmentCategory.ExpertiseArea"))
		require.NoError(t, err)
		require.NotNil(t, proc)
		assert.Len(t, proc.Methods, 2)
		assert.Len(t, proc.Faqs, 1)
		require.NotNil(t, proc.TreatmentCategory)
		require.NotNil(t, proc.TreatmentCategory.ExpertiseArea)
		assert.Equal(t, "surgery", proc.TreatmentCategory.ExpertiseArea.Slug)
	})
}

func TestDelegate_FindMany_Integration(t *testing.T) {
	_, ctx, client := withTx(t)
	postSlug := func(p BlogPost) string { return p.Slug }
	byPublished := []SortField{NewSortField(Columns.BlogPost.PublishedAt, true)}

	t.Run("FilterAndSort", func(t *testing.T) {
		status := StatusPublished
		posts, err := client.BlogPosts.FindMany(ctx, &BlogPostSearch{Status: &status}, FindManyArgs{OrderBy: byPublished})
		require.NoError(t, err)
		assert.Equal(t, []string{"recovery-tips", "new-equipment", "opening"}, slugsOf(posts, postSlug))
	})

	t.Run("SkipTake", func(t *testing.T) {
		status := StatusPublished
		posts, err := client.BlogPosts.FindMany(ctx, &BlogPostSearch{Status: &status}, FindManyArgs{Skip: 1, Take: 1, OrderBy: byPublished})
		require.NoError(t, err)
		assert.Equal(t, []string{"new-equipment"}, slugsOf(posts, postSlug))
	})

	t.Run("CursorIsInclusive", func(t *testing.T) {
		status := StatusPublished
		cursor := ByID("post-2")
		posts, err := client.BlogPosts.FindMany(ctx, &BlogPostSearch{Status: &status}, FindManyArgs{OrderBy: byPublished, Cursor: &cursor})
		require.NoError(t, err)
		assert.Equal(t, []string{"new-equipment", "opening"}, slugsOf(posts, postSlug))

		posts, err = client.BlogPosts.FindMany(ctx, &BlogPostSearch{Status: &status}, FindManyArgs{OrderBy: byPublished, Cursor: &cursor, Skip: 1})
		require.NoError(t, err)
		assert.Equal(t, []string{"opening"}, slugsOf(posts, postSlug))
	})

	t.Run("OrCondition", func(t *testing.T) {
		search := &BlogPostSearch{}
		search.Where(Or(Eq(Columns.BlogPost.Slug, "opening"), Eq(Columns.BlogPost.Status, StatusDraft)))
		posts, err := client.BlogPosts.FindMany(ctx, search, FindManyArgs{OrderBy: []SortField{NewSortField(Columns.BlogPost.Slug, false)}})
		require.NoError(t, err)
		assert.Equal(t, []string{"opening", "unfinished"}, slugsOf(posts, postSlug))
	})

	t.Run("Distinct", func(t *testing.T) {
		posts, err := client.BlogPosts.FindMany(ctx, &BlogPostSearch{HasCategory: boolPtr(true)}, FindManyArgs{Distinct: []string{Columns.BlogPost.CategoryID}})
		require.NoError(t, err)
		assert.Len(t, posts, 2)
	})

	t.Run("EmptyResultIsNotNil", func(t *testing.T) {
		slug := "nope"
		posts, err := client.BlogPosts.FindMany(ctx, &BlogPostSearch{Slug: &slug}, FindManyArgs{})
		require.NoError(t, err)
		assert.NotNil(t, posts)
		assert.Empty(t, posts)
	})

	t.Run("UnknownSortColumn", func(t *testing.T) {
		_, err := client.BlogPosts.FindMany(ctx, nil, FindManyArgs{OrderBy: []SortField{{Column: "nope"}}})
		assert.True(t, IsValidation(err))
	})

	t.Run("RelationFilter", func(t *testing.T) {
		areas, err := client.TreatmentCategories.FindMany(ctx, &TreatmentCategorySearch{HasProcedures: boolPtr(false)}, FindManyArgs{})
		require.NoError(t, err)
		require.Len(t, areas, 1)
		assert.Equal(t, "implants", areas[0].Slug)

		area := "area-surgery"
		procs, err := client.Procedures.Count(ctx, &ProcedureSearch{ExpertiseAreaID: &area})
		require.NoError(t, err)
		assert.Equal(t, 2, procs)
	})
}

func TestDelegate_Write_Integration(t *testing.T) {
	_, ctx, client := withTx(t)

	t.Run("CreateFillsDefaults", func(t *testing.T) {
		page, err := client.Pages.Create(ctx, &Page{Slug: "new", Title: "New"})
		require.NoError(t, err)
		assert.NotEmpty(t, page.ID)
		assert.Equal(t, StatusDraft, page.Status)
		assert.False(t, page.CreatedAt.IsZero())
	})

	t.Run("CreateDuplicateSlug", func(t *testing.T) {
		_, err := client.Pages.Create(ctx, &Page{Slug: "about", Title: "Dup"})
		assert.True(t, IsUniqueViolation(err))
	})

	t.Run("CreateMissingForeignKey", func(t *testing.T) {
		_, err := client.TreatmentCategories.Create(ctx, &TreatmentCategory{Slug: "orphan", Name: "Orphan", ExpertiseAreaID: "missing"})
		assert.True(t, IsForeignKeyViolation(err))
	})

	t.Run("CreateManySkipDuplicates", func(t *testing.T) {
		n, err := client.Categories.CreateMany(ctx, []Category{
			{Slug: "news", Name: "Duplicate"},
			{Slug: "events", Name: "Events"},
		}, true)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("UpdateColumns", func(t *testing.T) {
		page, err := client.Pages.FindUnique(ctx, BySlug("draft"))
		require.NoError(t, err)
		before := page.UpdatedAt

		page.Title = "Renamed"
		page.Content = "ignored"
		updated, err := client.Pages.Update(ctx, page, Columns.Page.Title)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", updated.Title)
		assert.Equal(t, "wip", updated.Content)
		assert.True(t, updated.UpdatedAt.After(before))
	})

	t.Run("UpdateMissing", func(t *testing.T) {
		_, err := client.Pages.Update(ctx, &Page{ID: "missing", Slug: "missing"})
		assert.True(t, IsNotFound(err))
	})

	t.Run("UpdateMany", func(t *testing.T) {
		author := "user-editor"
		n, err := client.BlogPosts.UpdateMany(ctx, &BlogPostSearch{AuthorID: &author}, map[string]interface{}{
			Columns.BlogPost.Status: StatusArchived,
		})
		require.NoError(t, err)
		assert.Equal(t, 3, n)

		archived := StatusArchived
		count, err := client.BlogPosts.Count(ctx, &BlogPostSearch{Status: &archived})
		require.NoError(t, err)
		assert.Equal(t, 3, count)
	})

	t.Run("Upsert", func(t *testing.T) {
		area, err := client.ExpertiseAreas.Upsert(ctx, &ExpertiseArea{Slug: "surgery", Name: "Surgery 2"}, Columns.ExpertiseArea.Slug, Columns.ExpertiseArea.Name)
		require.NoError(t, err)
		assert.Equal(t, "area-surgery", area.ID)
		assert.Equal(t, "Surgery 2", area.Name)
		assert.Equal(t, "Surgical procedures", area.Description)

		created, err := client.ExpertiseAreas.Upsert(ctx, &ExpertiseArea{Slug: "cardio", Name: "Cardio"}, Columns.ExpertiseArea.Slug, Columns.ExpertiseArea.Name)
		require.NoError(t, err)
		assert.NotEqual(t, "area-surgery", created.ID)
	})

	t.Run("UpsertNonUniqueConflict", func(t *testing.T) {
		_, err := client.ExpertiseAreas.Upsert(ctx, &ExpertiseArea{Slug: "x", Name: "X"}, Columns.ExpertiseArea.Name)
		assert.True(t, IsValidation(err))
	})

	t.Run("DeleteReturnsRow", func(t *testing.T) {
		m, err := client.Media.Delete(ctx, ByID("media-logo"))
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.clinic.test/logo.png", m.URL)

		_, err = client.Media.Delete(ctx, ByID("media-logo"))
		assert.True(t, IsNotFound(err))
	})

	t.Run("DeleteRestricted", func(t *testing.T) {
		_, err := client.ExpertiseAreas.Delete(ctx, BySlug("dentistry"))
		assert.True(t, IsForeignKeyViolation(err))
	})

	t.Run("DeleteMany", func(t *testing.T) {
		n, err := client.Faqs.DeleteMany(ctx, &FaqSearch{IsGlobal: boolPtr(true)})
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})
}

func TestDelegate_Aggregate_Integration(t *testing.T) {
	_, ctx, client := withTx(t)

	t.Run("Aggregate", func(t *testing.T) {
		res, err := client.MenuItems.Aggregate(ctx, nil, AggregateArgs{
			Count: true,
			Max:   []string{Columns.MenuItem.Order},
			Sum:   []string{Columns.MenuItem.Order},
			Avg:   []string{Columns.MenuItem.Order},
		})
		require.NoError(t, err)
		assert.EqualValues(t, 5, res.Count)
		assert.EqualValues(t, 1, res.Max["order"])
		assert.EqualValues(t, 2, res.Sum["order"])
		assert.InDelta(t, 0.4, res.Avg["order"], 0.0001)
	})

	t.Run("AggregateNothing", func(t *testing.T) {
		_, err := client.MenuItems.Aggregate(ctx, nil, AggregateArgs{})
		assert.True(t, IsValidation(err))
	})

	t.Run("GroupBy", func(t *testing.T) {
		rows, err := client.BlogPosts.GroupBy(ctx, nil, GroupByArgs{
			By:            []string{Columns.BlogPost.Status},
			AggregateArgs: AggregateArgs{Count: true, Max: []string{Columns.BlogPost.PublishedAt}},
			OrderBy:       []SortField{NewSortField(CountColumn, true)},
		})
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "PUBLISHED", rows[0].Keys["status"])
		assert.EqualValues(t, 3, rows[0].Count)
		assert.NotNil(t, rows[0].Max["publishedAt"])
		assert.EqualValues(t, 1, rows[1].Count)
	})

	t.Run("GroupByHaving", func(t *testing.T) {
		rows, err := client.BlogPosts.GroupBy(ctx, &BlogPostSearch{HasCategory: boolPtr(true)}, GroupByArgs{
			By:            []string{Columns.BlogPost.CategoryID},
			AggregateArgs: AggregateArgs{Count: true},
			Having:        []Having{{Func: AggCount, Op: ">", Value: 1}},
		})
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "cat-news", rows[0].Keys["categoryId"])
	})

	t.Run("GroupByOrderNotGrouped", func(t *testing.T) {
		_, err := client.BlogPosts.GroupBy(ctx, nil, GroupByArgs{
			By:      []string{Columns.BlogPost.Status},
			OrderBy: []SortField{NewSortField(Columns.BlogPost.Slug, false)},
		})
		assert.True(t, IsValidation(err))
	})
}

func TestClient_Raw_Integration(t *testing.T) {
	_, ctx, client := withTx(t)

	var pages []Page
	err := client.QueryRaw(ctx, &pages, `SELECT * FROM "pages" WHERE "status" = ? ORDER BY "slug"`, StatusPublished)
	require.NoError(t, err)
	assert.Equal(t, []string{"about", "contacts"}, slugsOf(pages, func(p Page) string { return p.Slug }))

	var count int
	err = client.QueryRaw(ctx, pg.Scan(&count), `SELECT count(*) FROM "faqs"`)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	n, err := client.ExecuteRaw(ctx, `UPDATE "media" SET "alt" = ? WHERE "id" = ?`, "Clinic logo", "media-logo")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = client.ExecuteRaw(ctx, `INSERT INTO "pages" ("id", "slug", "title") VALUES ('dup', 'about', 'x')`)
	assert.True(t, IsUniqueViolation(err))
}

func TestClient_Transaction_Integration(t *testing.T) {
	ctx := context.Background()
	client := New(testDB)

	var events []Event
	client.On(EventQuery, func(e Event) { events = append(events, e) })
	var warnings []string
	client.On(EventWarn, func(e Event) { warnings = append(warnings, e.Message) })

	t.Run("RollbackOnError", func(t *testing.T) {
		boom := errors.New("boom")
		err := client.Transaction(ctx, func(tx *Client) error {
			if _, err := tx.Media.Create(ctx, &Media{URL: "https://cdn.clinic.test/tmp.png", Type: "image/png"}); err != nil {
				return err
			}
			return boom
		})
		assert.ErrorIs(t, err, boom)
		assert.NotEmpty(t, warnings)

		tmp := "https://cdn.clinic.test/tmp.png"
		n, err := client.Media.Count(ctx, &MediaSearch{URL: &tmp})
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("CommitWithIsolation", func(t *testing.T) {
		var id string
		err := client.TransactionWithOptions(ctx, TxOptions{Isolation: IsolationSerializable}, func(tx *Client) error {
			m, err := tx.Media.Create(ctx, &Media{URL: "https://cdn.clinic.test/kept.png", Type: "image/png"})
			if err != nil {
				return err
			}
			id = m.ID
			return nil
		})
		require.NoError(t, err)

		_, err = client.Media.Delete(ctx, ByID(id))
		require.NoError(t, err)
	})

	t.Run("CommitFailureIsClassified", func(t *testing.T) {
		err := client.Transaction(ctx, func(tx *Client) error {
			if _, err := tx.ExecuteRaw(ctx, `CREATE TEMP TABLE "deferredKeys" ("id" int UNIQUE DEFERRABLE INITIALLY DEFERRED) ON COMMIT DROP`); err != nil {
				return err
			}
			_, err := tx.ExecuteRaw(ctx, `INSERT INTO "deferredKeys" VALUES (1), (1)`)
			return err
		})
		require.Error(t, err)
		assert.True(t, IsUniqueViolation(err))
	})

	t.Run("UnknownIsolation", func(t *testing.T) {
		err := client.TransactionWithOptions(ctx, TxOptions{Isolation: "CHAOS"}, func(*Client) error { return nil })
		assert.True(t, IsValidation(err))
	})

	t.Run("QueryEventsEmitted", func(t *testing.T) {
		assert.NotEmpty(t, events)
		for _, e := range events {
			assert.Equal(t, EventQuery, e.Level)
			assert.False(t, e.Timestamp.After(time.Now()))
		}
	})
}

func boolPtr(b bool) *bool { return &b }
