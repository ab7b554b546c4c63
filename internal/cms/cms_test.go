package cms

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/daniilsolovey/clinic-cms/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestSlugify(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Rhinoplasty", "rhinoplasty"},
		{"  Open  Rhinoplasty ", "open-rhinoplasty"},
		{"Dental Implants: 2025!", "dental-implants-2025"},
		{"already-a-slug", "already-a-slug"},
		{"--a__b--", "a-b"},
		{"Crème Brûlée", "creme-brulee"},
		{"Göz Sağlığı", "goz-sagligi"},
		{"Diş Beyazlatma", "dis-beyazlatma"},
		{"İmplant", "implant"},
		{"Straße", "strasse"},
		{"Ñandú 2", "nandu-2"},
		{"Ринопластика", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}

func TestSlugFor(t *testing.T) {
	s, err := slugFor("", "About Us")
	require.NoError(t, err)
	assert.Equal(t, "about-us", s)

	s, err = slugFor("Custom Slug", "About Us")
	require.NoError(t, err)
	assert.Equal(t, "custom-slug", s)

	_, err = slugFor("", "!!!")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCanTransition(t *testing.T) {
	allowed := map[[2]db.PublishStatus]bool{
		{db.StatusDraft, db.StatusPublished}:    true,
		{db.StatusDraft, db.StatusArchived}:     true,
		{db.StatusPublished, db.StatusDraft}:    true,
		{db.StatusPublished, db.StatusArchived}: true,
		{db.StatusArchived, db.StatusDraft}:     true,
	}

	for _, from := range db.PublishStatuses {
		for _, to := range db.PublishStatuses {
			want := from == to || allowed[[2]db.PublishStatus{from, to}]
			assert.Equal(t, want, CanTransition(from, to), "%s -> %s", from, to)
		}
	}
}

func TestApplyStatus(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("PublishStampsDate", func(t *testing.T) {
		status := db.StatusDraft
		var publishedAt *time.Time
		require.NoError(t, applyStatus(&status, &publishedAt, db.StatusPublished, now))
		assert.Equal(t, db.StatusPublished, status)
		require.NotNil(t, publishedAt)
		assert.Equal(t, now, *publishedAt)
	})

	t.Run("RepublishKeepsDate", func(t *testing.T) {
		first := now.Add(-time.Hour)
		status, publishedAt := db.StatusDraft, &first
		require.NoError(t, applyStatus(&status, &publishedAt, db.StatusPublished, now))
		assert.Equal(t, first, *publishedAt)
	})

	t.Run("ArchivedCannotBePublished", func(t *testing.T) {
		status := db.StatusArchived
		var publishedAt *time.Time
		err := applyStatus(&status, &publishedAt, db.StatusPublished, now)
		assert.ErrorIs(t, err, ErrInvalidTransition)
		assert.Equal(t, db.StatusArchived, status)
		assert.Nil(t, publishedAt)
	})

	t.Run("UnknownStatus", func(t *testing.T) {
		status := db.StatusDraft
		var publishedAt *time.Time
		assert.ErrorIs(t, applyStatus(&status, &publishedAt, "DELETED", now), ErrInvalidInput)
	})
}

func TestInitialStatus(t *testing.T) {
	now := time.Now()

	var status db.PublishStatus
	var publishedAt *time.Time
	require.NoError(t, initialStatus(&status, &publishedAt, now))
	assert.Equal(t, db.StatusDraft, status)
	assert.Nil(t, publishedAt)

	status = db.StatusPublished
	require.NoError(t, initialStatus(&status, &publishedAt, now))
	assert.NotNil(t, publishedAt)

	status = "LIVE"
	assert.ErrorIs(t, initialStatus(&status, &publishedAt, now), ErrInvalidInput)
}

func TestBuildMenuTree(t *testing.T) {
	items := []db.MenuItem{
		{ID: "home", Label: "Home", Order: 0},
		{ID: "surgery", Label: "Surgery", Order: 0, ParentID: strPtr("services")},
		{ID: "services", Label: "Services", Order: 1},
		{ID: "rhino", Label: "Rhinoplasty", Order: 0, ParentID: strPtr("surgery")},
		{ID: "dent", Label: "Dentistry", Order: 1, ParentID: strPtr("services")},
		{ID: "lost", Label: "Lost", Order: 2, ParentID: strPtr("deleted")},
	}

	tree := buildMenuTree(items)

	require.Len(t, tree, 3)
	assert.Equal(t, "home", tree[0].ID)
	assert.Equal(t, "services", tree[1].ID)
	assert.Equal(t, "lost", tree[2].ID, "items with unknown parent become roots")

	services := tree[1]
	require.Len(t, services.Children, 2)
	assert.Equal(t, "surgery", services.Children[0].ID)
	assert.Equal(t, "dent", services.Children[1].ID)
	require.Len(t, services.Children[0].Children, 1)
	assert.Equal(t, "rhino", services.Children[0].Children[0].ID)
	assert.Empty(t, tree[0].Children)
}

func TestBuildMenuTree_ParentLoop(t *testing.T) {
	items := []db.MenuItem{
		{ID: "home", Label: "Home", Order: 0},
		{ID: "a", Label: "A", Order: 1, ParentID: strPtr("b")},
		{ID: "b", Label: "B", Order: 2, ParentID: strPtr("a")},
		{ID: "c", Label: "C", Order: 3, ParentID: strPtr("a")},
		{ID: "self", Label: "Self", Order: 4, ParentID: strPtr("self")},
		{ID: "child", Label: "Child", Order: 5, ParentID: strPtr("home")},
	}

	tree := buildMenuTree(items)

	ids := make([]string, 0, len(tree))
	for _, n := range tree {
		ids = append(ids, n.ID)
		if n.ID != "home" {
			assert.Empty(t, n.Children, n.ID)
		}
	}
	assert.Equal(t, []string{"home", "a", "b", "c", "self"}, ids)
	require.Len(t, tree[0].Children, 1)
	assert.Equal(t, "child", tree[0].Children[0].ID)
}

func TestManager_Render(t *testing.T) {
	m := NewManager(nil, nil)

	t.Run("Markdown", func(t *testing.T) {
		out, err := m.Render("# Contacts\n\nCall **us**")
		require.NoError(t, err)
		assert.Contains(t, out, "<h1>Contacts</h1>")
		assert.Contains(t, out, "<strong>us</strong>")
	})

	t.Run("HTMLIsSanitized", func(t *testing.T) {
		out, err := m.Render(`<p onclick="steal()">Hi</p><script>alert(1)</script>`)
		require.NoError(t, err)
		assert.Contains(t, out, "<p>Hi</p>")
		assert.NotContains(t, out, "script")
		assert.NotContains(t, out, "onclick")
	})

	t.Run("Table", func(t *testing.T) {
		out, err := m.Render("| a | b |\n|---|---|\n| 1 | 2 |")
		require.NoError(t, err)
		assert.Contains(t, out, "<table>")
	})
}

func TestManager_Excerpt(t *testing.T) {
	m := NewManager(nil, nil)

	assert.Equal(t, "New laser & more", m.excerptOf("**New** laser &amp; more"))
	assert.Equal(t, "", m.excerptOf(""))

	long := strings.Repeat("word ", 100)
	excerpt := m.excerptOf(long)
	assert.True(t, strings.HasSuffix(excerpt, "…"))
	assert.LessOrEqual(t, len([]rune(excerpt)), excerptLength+1)
	assert.False(t, strings.Contains(excerpt, "wor…"))

	t.Run("WordEndsAtLimit", func(t *testing.T) {
		text := strings.Repeat("abcd ", 39) + "abcde"
		require.Len(t, []rune(text), excerptLength)

		excerpt := m.excerptOf(text + " tail")
		assert.Equal(t, text+"…", excerpt)
	})

	t.Run("WordCrossesLimit", func(t *testing.T) {
		text := strings.Repeat("abcd ", 39) + "abcdefgh"

		excerpt := m.excerptOf(text)
		assert.Equal(t, strings.TrimSpace(strings.Repeat("abcd ", 39))+"…", excerpt)
	})
}

func TestTranslate(t *testing.T) {
	known := func(code, constraint string) error {
		return fmt.Errorf("create: %w", &db.KnownRequestError{Code: code, Meta: map[string]string{"constraint": constraint}})
	}

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"Slug", known(db.CodeUniqueViolation, "pages_slug_key"), ErrSlugTaken},
		{"Seo", known(db.CodeUniqueViolation, "blogPosts_seoSettingsId_key"), ErrSeoTaken},
		{"Email", known(db.CodeUniqueViolation, "users_email_key"), ErrEmailTaken},
		{"NotFound", known(db.CodeRecordNotFound, ""), ErrNotFound},
		{"InUse", known(db.CodeForeignKeyViolation, "treatmentCategories_expertiseAreaId_fkey"), ErrInUse},
		{"Null", known(db.CodeNullViolation, ""), ErrInvalidInput},
		{"Validation", &db.ValidationError{Message: "bad"}, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := translate(tt.err)
			assert.ErrorIs(t, err, tt.want)
			var k *db.KnownRequestError
			var v *db.ValidationError
			assert.True(t, errors.As(err, &k) || errors.As(err, &v), "original error stays in the chain")
		})
	}

	other := errors.New("boom")
	assert.Equal(t, other, translate(other))
	assert.NoError(t, translate(nil))
}

func TestHashPassword(t *testing.T) {
	_, err := hashPassword("short")
	assert.ErrorIs(t, err, ErrInvalidInput)

	hash, err := hashPassword("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", hash)
	assert.True(t, strings.HasPrefix(hash, "$2"))
}

func TestStatusCounts(t *testing.T) {
	counts := statusCounts([]db.GroupByRow{
		{Keys: map[string]interface{}{"status": "PUBLISHED"}, AggregateResult: db.AggregateResult{Count: 3}},
	})

	assert.Equal(t, StatusCounts{db.StatusDraft: 0, db.StatusPublished: 3, db.StatusArchived: 0}, counts)
}
