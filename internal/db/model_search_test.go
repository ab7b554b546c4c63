package db

import (
	"testing"

	"github.com/go-pg/pg/v10/orm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func formatCond(c Cond) string {
	return string(orm.NewFormatter().FormatQuery(nil, c.expr, c.params...))
}

func selectSQL(t *testing.T, q *orm.Query) string {
	t.Helper()
	b, err := orm.NewSelectQuery(q).AppendQuery(orm.NewFormatter(), nil)
	require.NoError(t, err)
	return string(b)
}

func TestCond(t *testing.T) {
	tests := []struct {
		name string
		cond Cond
		want string
	}{
		{"Eq", Eq("slug", "about"), `"t"."slug" = 'about'`},
		{"NotEq", NotEq("id", "x"), `"t"."id" <> 'x'`},
		{"Gte", Gte("order", 2), `"t"."order" >= 2`},
		{"In", In("status", []PublishStatus{StatusDraft, StatusPublished}), `"t"."status" IN ('DRAFT','PUBLISHED')`},
		{"EmptyInMatchesNothing", In("id", []string{}), `FALSE`},
		{"EmptyNotInMatchesAll", NotIn("id", []string{}), `TRUE`},
		{"IsNull", IsNull("parentId"), `"t"."parentId" IS NULL`},
		{"ContainsInsensitive", Contains("title", "50%_off", true), `"t"."title" ILIKE '%50\%\_off%'`},
		{"StartsWith", StartsWith("slug", "about", false), `"t"."slug" LIKE 'about%'`},
		{"EndsWith", EndsWith("slug", "-2", false), `"t"."slug" LIKE '%-2'`},
		{"Or", Or(Eq("slug", "a"), Eq("slug", "b")), `("t"."slug" = 'a') OR ("t"."slug" = 'b')`},
		{"AndWithNot", And(Eq("isGlobal", true), Not(IsNull("procedureId"))), `("t"."isGlobal" = TRUE) AND (NOT ("t"."procedureId" IS NULL))`},
		{"EmptyOr", Or(), `FALSE`},
		{"EmptyAnd", And(), `TRUE`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatCond(tt.cond))
		})
	}
}

func TestPageSearch_Apply(t *testing.T) {
	slug := "about"
	hasSeo := false
	s := &PageSearch{
		Slug:           &slug,
		Statuses:       []PublishStatus{StatusPublished},
		HasSeoSettings: &hasSeo,
	}
	s.Where(Or(Contains(Columns.Page.Title, "clinic", true), Eq(Columns.Page.Content, "")))

	sql := selectSQL(t, s.Apply(orm.NewQuery(nil, (*Page)(nil))))

	assert.Contains(t, sql, `"t"."slug" = 'about'`)
	assert.Contains(t, sql, `"t"."status" IN ('PUBLISHED')`)
	assert.Contains(t, sql, `"t"."seoSettingsId" IS NULL`)
	assert.Contains(t, sql, `("t"."title" ILIKE '%clinic%') OR ("t"."content" = '')`)
}

func TestSearch_NilIsNoop(t *testing.T) {
	var s *ProcedureSearch
	q := orm.NewQuery(nil, (*Procedure)(nil))

	sql := selectSQL(t, s.Apply(q))

	assert.NotContains(t, sql, "WHERE")
}

func TestProcedureSearch_ExpertiseArea(t *testing.T) {
	area := "area-surgery"
	sql := selectSQL(t, (&ProcedureSearch{ExpertiseAreaID: &area}).Apply(orm.NewQuery(nil, (*Procedure)(nil))))

	assert.Contains(t, sql, `"t"."treatmentCategoryId" IN (SELECT "id" FROM "treatmentCategories" WHERE "expertiseAreaId" = 'area-surgery')`)
}

func TestSeoSettingSearch_Orphaned(t *testing.T) {
	orphaned := true
	sql := selectSQL(t, (&SeoSettingSearch{Orphaned: &orphaned}).Apply(orm.NewQuery(nil, (*SeoSetting)(nil))))

	assert.Contains(t, sql, `NOT (EXISTS (SELECT 1 FROM "pages" o WHERE o."seoSettingsId" = "t"."id")`)
	assert.Contains(t, sql, `"blogPosts"`)
	assert.Contains(t, sql, `"procedures"`)
}
