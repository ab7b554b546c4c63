package db

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(i int) *int { return &i }

func TestNewPager(t *testing.T) {
	tests := []struct {
		name       string
		page, size *int
		want       Pager
		skip, take int
	}{
		{"Defaults", nil, nil, Pager{Page: 1, PageSize: DefaultPageSize}, 0, DefaultPageSize},
		{"SecondPage", intPtr(2), intPtr(10), Pager{Page: 2, PageSize: 10}, 10, 10},
		{"NonPositiveIgnored", intPtr(0), intPtr(-5), Pager{Page: 1, PageSize: DefaultPageSize}, 0, DefaultPageSize},
		{"SizeCapped", intPtr(1), intPtr(1000), Pager{Page: 1, PageSize: MaxPageSize}, 0, MaxPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPager(tt.page, tt.size)
			assert.Equal(t, tt.want, p)
			assert.Equal(t, tt.skip, p.Skip())
			assert.Equal(t, tt.take, p.Take())
		})
	}

	assert.Equal(t, 0, PagerNoLimit.Take())
}

func TestModelColumns(t *testing.T) {
	cols := modelColumns(reflect.TypeOf(Procedure{}))

	for _, c := range []string{"id", "slug", "status", "treatmentCategoryId", "seoSettingsId", "createdAt", "updatedAt"} {
		assert.Contains(t, cols, c)
	}
	assert.NotContains(t, cols, "Methods")
	assert.NotContains(t, cols, "TreatmentCategory")
	assert.NotContains(t, cols, "tableName")
}

func TestWithUpdatedAt(t *testing.T) {
	assert.Equal(t, []string{"title", "updatedAt"}, withUpdatedAt([]string{"title"}))
	assert.Equal(t, []string{"title", "updatedAt"}, withUpdatedAt([]string{"updatedAt", "title"}))
}

func TestCursorCond(t *testing.T) {
	order := withPK([]SortField{NewSortField("publishedAt", true)})
	got := formatCond(cursorCond("blogPosts", order, ByID("post-2")))

	want := `(("t"."publishedAt" < (SELECT "publishedAt" FROM "blogPosts" WHERE "id" = 'post-2'))) OR ` +
		`(("t"."publishedAt" = (SELECT "publishedAt" FROM "blogPosts" WHERE "id" = 'post-2')) AND ("t"."id" > (SELECT "id" FROM "blogPosts" WHERE "id" = 'post-2'))) OR ` +
		`("t"."id" = 'post-2')`
	assert.Equal(t, want, got)
}

func TestWithPK(t *testing.T) {
	order := []SortField{{Column: "id", Direction: SortDesc}}
	assert.Equal(t, order, withPK(order))
	assert.Len(t, withPK([]SortField{{Column: "slug"}}), 2)
}
