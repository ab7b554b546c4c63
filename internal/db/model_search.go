package db

import (
	"reflect"
	"strings"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"
)

// alias is the table alias shared by every model (see Tables).
const alias = "t"

const condition = "?.? = ?"

type applier func(query *orm.Query) (*orm.Query, error)

// Searcher is implemented by every XxxSearch struct.
type Searcher interface {
	Apply(query *orm.Query) *orm.Query
	Q() applier

	With(condition string, params ...interface{})
	WithApply(a applier)
	Where(conds ...Cond)
}

type search struct {
	appliers []applier
}

func (s *search) apply(query *orm.Query) {
	for _, a := range s.appliers {
		query.Apply(a)
	}
}

func (s *search) where(query *orm.Query, field string, value interface{}) {
	query.Where(condition, pg.Ident(alias), pg.Ident(field), value)
}

func (s *search) whereIn(query *orm.Query, field string, values interface{}) {
	In(field, values).Apply(query)
}

func (s *search) whereILike(query *orm.Query, field, value string) {
	Contains(field, value, true).Apply(query)
}

func (s *search) whereNull(query *orm.Query, field string, isNull bool) {
	if isNull {
		IsNull(field).Apply(query)
	} else {
		IsNotNull(field).Apply(query)
	}
}

func (s *search) WithApply(a applier) {
	s.appliers = append(s.appliers, a)
}

// With adds a raw condition, params are formatted by go-pg.
func (s *search) With(condition string, params ...interface{}) {
	s.WithApply(func(query *orm.Query) (*orm.Query, error) {
		return query.Where(condition, params...), nil
	})
}

// Where adds composable conditions, joined with AND.
func (s *search) Where(conds ...Cond) {
	for _, c := range conds {
		c := c
		s.WithApply(func(query *orm.Query) (*orm.Query, error) {
			return c.Apply(query), nil
		})
	}
}

// Cond is a boolean expression over the columns of the queried table.
type Cond struct {
	expr   string
	params []interface{}
}

// Apply adds the condition to the query WHERE clause.
func (c Cond) Apply(query *orm.Query) *orm.Query {
	if c.expr == "" {
		return query
	}
	return query.Where(c.expr, c.params...)
}

// Raw returns a condition from an SQL fragment with go-pg placeholders.
func Raw(expr string, params ...interface{}) Cond {
	return Cond{expr: expr, params: params}
}

func compare(column, op string, value interface{}) Cond {
	return Cond{
		expr:   "?.? " + op + " ?",
		params: []interface{}{pg.Ident(alias), pg.Ident(column), value},
	}
}

func Eq(column string, value interface{}) Cond    { return compare(column, "=", value) }
func NotEq(column string, value interface{}) Cond { return compare(column, "<>", value) }
func Lt(column string, value interface{}) Cond    { return compare(column, "<", value) }
func Lte(column string, value interface{}) Cond   { return compare(column, "<=", value) }
func Gt(column string, value interface{}) Cond    { return compare(column, ">", value) }
func Gte(column string, value interface{}) Cond   { return compare(column, ">=", value) }

func IsNull(column string) Cond {
	return Cond{expr: "?.? IS NULL", params: []interface{}{pg.Ident(alias), pg.Ident(column)}}
}

func IsNotNull(column string) Cond {
	return Cond{expr: "?.? IS NOT NULL", params: []interface{}{pg.Ident(alias), pg.Ident(column)}}
}

// In matches any of values, which must be a slice. An empty slice matches nothing.
func In(column string, values interface{}) Cond {
	if sliceLen(values) == 0 {
		return Cond{expr: "FALSE"}
	}
	return Cond{expr: "?.? IN (?)", params: []interface{}{pg.Ident(alias), pg.Ident(column), pg.In(values)}}
}

// NotIn excludes values. An empty slice matches everything.
func NotIn(column string, values interface{}) Cond {
	if sliceLen(values) == 0 {
		return Cond{expr: "TRUE"}
	}
	return Cond{expr: "?.? NOT IN (?)", params: []interface{}{pg.Ident(alias), pg.Ident(column), pg.In(values)}}
}

func Contains(column, value string, insensitive bool) Cond {
	return like(column, "%"+escapeLike(value)+"%", insensitive)
}

func StartsWith(column, value string, insensitive bool) Cond {
	return like(column, escapeLike(value)+"%", insensitive)
}

func EndsWith(column, value string, insensitive bool) Cond {
	return like(column, "%"+escapeLike(value), insensitive)
}

func like(column, pattern string, insensitive bool) Cond {
	op := "LIKE"
	if insensitive {
		op = "ILIKE"
	}
	return compare(column, op, pattern)
}

func And(conds ...Cond) Cond { return join(" AND ", "TRUE", conds) }
func Or(conds ...Cond) Cond  { return join(" OR ", "FALSE", conds) }

func Not(c Cond) Cond {
	if c.expr == "" {
		return Cond{expr: "FALSE"}
	}
	return Cond{expr: "NOT (" + c.expr + ")", params: c.params}
}

func join(sep, empty string, conds []Cond) Cond {
	var (
		parts  []string
		params []interface{}
	)
	for _, c := range conds {
		if c.expr == "" {
			continue
		}
		parts = append(parts, "("+c.expr+")")
		params = append(params, c.params...)
	}
	if len(parts) == 0 {
		return Cond{expr: empty}
	}
	return Cond{expr: strings.Join(parts, sep), params: params}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func sliceLen(v interface{}) int {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return 1
	}
	return rv.Len()
}

type UserSearch struct {
	search

	ID        *string
	IDs       []string
	Email     *string
	Emails    []string
	NameILike *string
	Role      *Role
	Roles     []Role
}

func (us *UserSearch) Apply(query *orm.Query) *orm.Query {
	if us == nil {
		return query
	}
	if us.ID != nil {
		us.where(query, Columns.User.ID, *us.ID)
	}
	if len(us.IDs) > 0 {
		us.whereIn(query, Columns.User.ID, us.IDs)
	}
	if us.Email != nil {
		us.where(query, Columns.User.Email, *us.Email)
	}
	if len(us.Emails) > 0 {
		us.whereIn(query, Columns.User.Email, us.Emails)
	}
	if us.NameILike != nil {
		us.whereILike(query, Columns.User.Name, *us.NameILike)
	}
	if us.Role != nil {
		us.where(query, Columns.User.Role, *us.Role)
	}
	if len(us.Roles) > 0 {
		us.whereIn(query, Columns.User.Role, us.Roles)
	}

	us.apply(query)

	return query
}

func (us *UserSearch) Q() applier {
	return func(query *orm.Query) (*orm.Query, error) {
		if us == nil {
			return query, nil
		}
		return us.Apply(query), nil
	}
}

type SeoSettingSearch struct {
	search

	ID             *string
	IDs            []string
	NoIndex        *bool
	MetaTitleILike *string
	// Orphaned selects settings not referenced by any page, procedure or blog post.
	Orphaned *bool
}

func (ss *SeoSettingSearch) Apply(query *orm.Query) *orm.Query {
	if ss == nil {
		return query
	}
	if ss.ID != nil {
		ss.where(query, Columns.SeoSetting.ID, *ss.ID)
	}
	if len(ss.IDs) > 0 {
		ss.whereIn(query, Columns.SeoSetting.ID, ss.IDs)
	}
	if ss.NoIndex != nil {
		ss.where(query, Columns.SeoSetting.NoIndex, *ss.NoIndex)
	}
	if ss.MetaTitleILike != nil {
		ss.whereILike(query, Columns.SeoSetting.MetaTitle, *ss.MetaTitleILike)
	}
	if ss.Orphaned != nil {
		owned := `(EXISTS (SELECT 1 FROM ? o WHERE o.? = ?.?) OR EXISTS (SELECT 1 FROM ? o WHERE o.? = ?.?) OR EXISTS (SELECT 1 FROM ? o WHERE o.? = ?.?))`
		var params []interface{}
		for _, tbl := range []string{Tables.Page.Name, Tables.Procedure.Name, Tables.BlogPost.Name} {
			params = append(params, pg.Ident(tbl), pg.Ident(Columns.Page.SeoSettingsID), pg.Ident(alias), pg.Ident(Columns.SeoSetting.ID))
		}
		if *ss.Orphaned {
			owned = "NOT " + owned
		}
		query.Where(owned, params...)
	}

	ss.apply(query)

	return query
}

func (ss *SeoSettingSearch) Q() applier {
	return func(query *orm.Query) (*orm.Query, error) {
		if ss == nil {
			return query, nil
		}
		return ss.Apply(query), nil
	}
}

type PageSearch struct {
	search

	ID              *string
	IDs             []string
	NotID           *string
	Slug            *string
	Slugs           []string
	TitleILike      *string
	Status          *PublishStatus
	Statuses        []PublishStatus
	PublishedAfter  *time.Time
	PublishedBefore *time.Time
	SeoSettingsID   *string
	HasSeoSettings  *bool
}

func (ps *PageSearch) Apply(query *orm.Query) *orm.Query {
	if ps == nil {
		return query
	}
	if ps.ID != nil {
		ps.where(query, Columns.Page.ID, *ps.ID)
	}
	if len(ps.IDs) > 0 {
		ps.whereIn(query, Columns.Page.ID, ps.IDs)
	}
	if ps.NotID != nil {
		NotEq(Columns.Page.ID, *ps.NotID).Apply(query)
	}
	if ps.Slug != nil {
		ps.where(query, Columns.Page.Slug, *ps.Slug)
	}
	if len(ps.Slugs) > 0 {
		ps.whereIn(query, Columns.Page.Slug, ps.Slugs)
	}
	if ps.TitleILike != nil {
		ps.whereILike(query, Columns.Page.Title, *ps.TitleILike)
	}
	if ps.Status != nil {
		ps.where(query, Columns.Page.Status, *ps.Status)
	}
	if len(ps.Statuses) > 0 {
		ps.whereIn(query, Columns.Page.Status, ps.Statuses)
	}
	if ps.PublishedAfter != nil {
		Gte(Columns.Page.PublishedAt, *ps.PublishedAfter).Apply(query)
	}
	if ps.PublishedBefore != nil {
		Lte(Columns.Page.PublishedAt, *ps.PublishedBefore).Apply(query)
	}
	if ps.SeoSettingsID != nil {
		ps.where(query, Columns.Page.SeoSettingsID, *ps.SeoSettingsID)
	}
	if ps.HasSeoSettings != nil {
		ps.whereNull(query, Columns.Page.SeoSettingsID, !*ps.HasSeoSettings)
	}

	ps.apply(query)

	return query
}

func (ps *PageSearch) Q() applier {
	return func(query *orm.Query) (*orm.Query, error) {
		if ps == nil {
			return query, nil
		}
		return ps.Apply(query), nil
	}
}

type MenuItemSearch struct {
	search

	ID         *string
	IDs        []string
	ParentID   *string
	IsRoot     *bool
	LabelILike *string
	Path       *string
}

func (ms *MenuItemSearch) Apply(query *orm.Query) *orm.Query {
	if ms == nil {
		return query
	}
	if ms.ID != nil {
		ms.where(query, Columns.MenuItem.ID, *ms.ID)
	}
	if len(ms.IDs) > 0 {
		ms.whereIn(query, Columns.MenuItem.ID, ms.IDs)
	}
	if ms.ParentID != nil {
		ms.where(query, Columns.MenuItem.ParentID, *ms.ParentID)
	}
	if ms.IsRoot != nil {
		ms.whereNull(query, Columns.MenuItem.ParentID, *ms.IsRoot)
	}
	if ms.LabelILike != nil {
		ms.whereILike(query, Columns.MenuItem.Label, *ms.LabelILike)
	}
	if ms.Path != nil {
		ms.where(query, Columns.MenuItem.Path, *ms.Path)
	}

	ms.apply(query)

	return query
}

func (ms *MenuItemSearch) Q() applier {
	return func(query *orm.Query) (*orm.Query, error) {
		if ms == nil {
			return query, nil
		}
		return ms.Apply(query), nil
	}
}

type ExpertiseAreaSearch struct {
	search

	ID        *string
	IDs       []string
	NotID     *string
	Slug      *string
	NameILike *string
}

func (es *ExpertiseAreaSearch) Apply(query *orm.Query) *orm.Query {
	if es == nil {
		return query
	}
	if es.ID != nil {
		es.where(query, Columns.ExpertiseArea.ID, *es.ID)
	}
	if len(es.IDs) > 0 {
		es.whereIn(query, Columns.ExpertiseArea.ID, es.IDs)
	}
	if es.NotID != nil {
		NotEq(Columns.ExpertiseArea.ID, *es.NotID).Apply(query)
	}
	if es.Slug != nil {
		es.where(query, Columns.ExpertiseArea.Slug, *es.Slug)
	}
	if es.NameILike != nil {
		es.whereILike(query, Columns.ExpertiseArea.Name, *es.NameILike)
	}

	es.apply(query)

	return query
}

func (es *ExpertiseAreaSearch) Q() applier {
	return func(query *orm.Query) (*orm.Query, error) {
		if es == nil {
			return query, nil
		}
		return es.Apply(query), nil
	}
}

type TreatmentCategorySearch struct {
	search

	ID               *string
	IDs              []string
	NotID            *string
	Slug             *string
	NameILike        *string
	ExpertiseAreaID  *string
	ExpertiseAreaIDs []string
	HasProcedures    *bool
}

func (ts *TreatmentCategorySearch) Apply(query *orm.Query) *orm.Query {
	if ts == nil {
		return query
	}
	if ts.ID != nil {
		ts.where(query, Columns.TreatmentCategory.ID, *ts.ID)
	}
	if len(ts.IDs) > 0 {
		ts.whereIn(query, Columns.TreatmentCategory.ID, ts.IDs)
	}
	if ts.NotID != nil {
		NotEq(Columns.TreatmentCategory.ID, *ts.NotID).Apply(query)
	}
	if ts.Slug != nil {
		ts.where(query, Columns.TreatmentCategory.Slug, *ts.Slug)
	}
	if ts.NameILike != nil {
		ts.whereILike(query, Columns.TreatmentCategory.Name, *ts.NameILike)
	}
	if ts.ExpertiseAreaID != nil {
		ts.where(query, Columns.TreatmentCategory.ExpertiseAreaID, *ts.ExpertiseAreaID)
	}
	if len(ts.ExpertiseAreaIDs) > 0 {
		ts.whereIn(query, Columns.TreatmentCategory.ExpertiseAreaID, ts.ExpertiseAreaIDs)
	}
	if ts.HasProcedures != nil {
		exists := "EXISTS (SELECT 1 FROM ? p WHERE p.? = ?.?)"
		if !*ts.HasProcedures {
			exists = "NOT " + exists
		}
		query.Where(exists,
			pg.Ident(Tables.Procedure.Name), pg.Ident(Columns.Procedure.TreatmentCategoryID),
			pg.Ident(alias), pg.Ident(Columns.TreatmentCategory.ID),
		)
	}

	ts.apply(query)

	return query
}

func (ts *TreatmentCategorySearch) Q() applier {
	return func(query *orm.Query) (*orm.Query, error) {
		if ts == nil {
			return query, nil
		}
		return ts.Apply(query), nil
	}
}

type ProcedureSearch struct {
	search

	ID                   *string
	IDs                  []string
	NotID                *string
	Slug                 *string
	NameILike            *string
	Status               *PublishStatus
	Statuses             []PublishStatus
	TreatmentCategoryID  *string
	TreatmentCategoryIDs []string
	// ExpertiseAreaID filters through the treatment category.
	ExpertiseAreaID *string
	SeoSettingsID   *string
}

func (ps *ProcedureSearch) Apply(query *orm.Query) *orm.Query {
	if ps == nil {
		return query
	}
	if ps.ID != nil {
		ps.where(query, Columns.Procedure.ID, *ps.ID)
	}
	if len(ps.IDs) > 0 {
		ps.whereIn(query, Columns.Procedure.ID, ps.IDs)
	}
	if ps.NotID != nil {
		NotEq(Columns.Procedure.ID, *ps.NotID).Apply(query)
	}
	if ps.Slug != nil {
		ps.where(query, Columns.Procedure.Slug, *ps.Slug)
	}
	if ps.NameILike != nil {
		ps.whereILike(query, Columns.Procedure.Name, *ps.NameILike)
	}
	if ps.Status != nil {
		ps.where(query, Columns.Procedure.Status, *ps.Status)
	}
	if len(ps.Statuses) > 0 {
		ps.whereIn(query, Columns.Procedure.Status, ps.Statuses)
	}
	if ps.TreatmentCategoryID != nil {
		ps.where(query, Columns.Procedure.TreatmentCategoryID, *ps.TreatmentCategoryID)
	}
	if len(ps.TreatmentCategoryIDs) > 0 {
		ps.whereIn(query, Columns.Procedure.TreatmentCategoryID, ps.TreatmentCategoryIDs)
	}
	if ps.ExpertiseAreaID != nil {
		query.Where("?.? IN (SELECT ? FROM ? WHERE ? = ?)",
			pg.Ident(alias), pg.Ident(Columns.Procedure.TreatmentCategoryID),
			pg.Ident(Columns.TreatmentCategory.ID), pg.Ident(Tables.TreatmentCategory.Name),
			pg.Ident(Columns.TreatmentCategory.ExpertiseAreaID), *ps.ExpertiseAreaID,
		)
	}
	if ps.SeoSettingsID != nil {
		ps.where(query, Columns.Procedure.SeoSettingsID, *ps.SeoSettingsID)
	}

	ps.apply(query)

	return query
}

func (ps *ProcedureSearch) Q() applier {
	return func(query *orm.Query) (*orm.Query, error) {
		if ps == nil {
			return query, nil
		}
		return ps.Apply(query), nil
	}
}

type ProcedureMethodSearch struct {
	search

	ID           *string
	IDs          []string
	NotID        *string
	Slug         *string
	NameILike    *string
	ProcedureID  *string
	ProcedureIDs []string
}

func (ps *ProcedureMethodSearch) Apply(query *orm.Query) *orm.Query {
	if ps == nil {
		return query
	}
	if ps.ID != nil {
		ps.where(query, Columns.ProcedureMethod.ID, *ps.ID)
	}
	if len(ps.IDs) > 0 {
		ps.whereIn(query, Columns.ProcedureMethod.ID, ps.IDs)
	}
	if ps.NotID != nil {
		NotEq(Columns.ProcedureMethod.ID, *ps.NotID).Apply(query)
	}
	if ps.Slug != nil {
		ps.where(query, Columns.ProcedureMethod.Slug, *ps.Slug)
	}
	if ps.NameILike != nil {
		ps.whereILike(query, Columns.ProcedureMethod.Name, *ps.NameILike)
	}
	if ps.ProcedureID != nil {
		ps.where(query, Columns.ProcedureMethod.ProcedureID, *ps.ProcedureID)
	}
	if len(ps.ProcedureIDs) > 0 {
		ps.whereIn(query, Columns.ProcedureMethod.ProcedureID, ps.ProcedureIDs)
	}

	ps.apply(query)

	return query
}

func (ps *ProcedureMethodSearch) Q() applier {
	return func(query *orm.Query) (*orm.Query, error) {
		if ps == nil {
			return query, nil
		}
		return ps.Apply(query), nil
	}
}

type FaqSearch struct {
	search

	ID            *string
	IDs           []string
	IsGlobal      *bool
	ProcedureID   *string
	ProcedureIDs  []string
	QuestionILike *string
}

func (fs *FaqSearch) Apply(query *orm.Query) *orm.Query {
	if fs == nil {
		return query
	}
	if fs.ID != nil {
		fs.where(query, Columns.Faq.ID, *fs.ID)
	}
	if len(fs.IDs) > 0 {
		fs.whereIn(query, Columns.Faq.ID, fs.IDs)
	}
	if fs.IsGlobal != nil {
		fs.where(query, Columns.Faq.IsGlobal, *fs.IsGlobal)
	}
	if fs.ProcedureID != nil {
		fs.where(query, Columns.Faq.ProcedureID, *fs.ProcedureID)
	}
	if len(fs.ProcedureIDs) > 0 {
		fs.whereIn(query, Columns.Faq.ProcedureID, fs.ProcedureIDs)
	}
	if fs.QuestionILike != nil {
		fs.whereILike(query, Columns.Faq.Question, *fs.QuestionILike)
	}

	fs.apply(query)

	return query
}

func (fs *FaqSearch) Q() applier {
	return func(query *orm.Query) (*orm.Query, error) {
		if fs == nil {
			return query, nil
		}
		return fs.Apply(query), nil
	}
}

type BlogPostSearch struct {
	search

	ID              *string
	IDs             []string
	NotID           *string
	Slug            *string
	TitleILike      *string
	Status          *PublishStatus
	Statuses        []PublishStatus
	AuthorID        *string
	CategoryID      *string
	CategoryIDs     []string
	HasCategory     *bool
	PublishedAfter  *time.Time
	PublishedBefore *time.Time
	SeoSettingsID   *string
}

func (bs *BlogPostSearch) Apply(query *orm.Query) *orm.Query {
	if bs == nil {
		return query
	}
	if bs.ID != nil {
		bs.where(query, Columns.BlogPost.ID, *bs.ID)
	}
	if len(bs.IDs) > 0 {
		bs.whereIn(query, Columns.BlogPost.ID, bs.IDs)
	}
	if bs.NotID != nil {
		NotEq(Columns.BlogPost.ID, *bs.NotID).Apply(query)
	}
	if bs.Slug != nil {
		bs.where(query, Columns.BlogPost.Slug, *bs.Slug)
	}
	if bs.TitleILike != nil {
		bs.whereILike(query, Columns.BlogPost.Title, *bs.TitleILike)
	}
	if bs.Status != nil {
		bs.where(query, Columns.BlogPost.Status, *bs.Status)
	}
	if len(bs.Statuses) > 0 {
		bs.whereIn(query, Columns.BlogPost.Status, bs.Statuses)
	}
	if bs.AuthorID != nil {
		bs.where(query, Columns.BlogPost.AuthorID, *bs.AuthorID)
	}
	if bs.CategoryID != nil {
		bs.where(query, Columns.BlogPost.CategoryID, *bs.CategoryID)
	}
	if len(bs.CategoryIDs) > 0 {
		bs.whereIn(query, Columns.BlogPost.CategoryID, bs.CategoryIDs)
	}
	if bs.HasCategory != nil {
		bs.whereNull(query, Columns.BlogPost.CategoryID, !*bs.HasCategory)
	}
	if bs.PublishedAfter != nil {
		Gte(Columns.BlogPost.PublishedAt, *bs.PublishedAfter).Apply(query)
	}
	if bs.PublishedBefore != nil {
		Lte(Columns.BlogPost.PublishedAt, *bs.PublishedBefore).Apply(query)
	}
	if bs.SeoSettingsID != nil {
		bs.where(query, Columns.BlogPost.SeoSettingsID, *bs.SeoSettingsID)
	}

	bs.apply(query)

	return query
}

func (bs *BlogPostSearch) Q() applier {
	return func(query *orm.Query) (*orm.Query, error) {
		if bs == nil {
			return query, nil
		}
		return bs.Apply(query), nil
	}
}

type CategorySearch struct {
	search

	ID        *string
	IDs       []string
	NotID     *string
	Slug      *string
	NameILike *string
	// HasPublishedPosts selects categories with at least one published post.
	HasPublishedPosts *bool
}

func (cs *CategorySearch) Apply(query *orm.Query) *orm.Query {
	if cs == nil {
		return query
	}
	if cs.ID != nil {
		cs.where(query, Columns.Category.ID, *cs.ID)
	}
	if len(cs.IDs) > 0 {
		cs.whereIn(query, Columns.Category.ID, cs.IDs)
	}
	if cs.NotID != nil {
		NotEq(Columns.Category.ID, *cs.NotID).Apply(query)
	}
	if cs.Slug != nil {
		cs.where(query, Columns.Category.Slug, *cs.Slug)
	}
	if cs.NameILike != nil {
		cs.whereILike(query, Columns.Category.Name, *cs.NameILike)
	}
	if cs.HasPublishedPosts != nil {
		exists := "EXISTS (SELECT 1 FROM ? b WHERE b.? = ?.? AND b.? = ?)"
		if !*cs.HasPublishedPosts {
			exists = "NOT " + exists
		}
		query.Where(exists,
			pg.Ident(Tables.BlogPost.Name), pg.Ident(Columns.BlogPost.CategoryID),
			pg.Ident(alias), pg.Ident(Columns.Category.ID),
			pg.Ident(Columns.BlogPost.Status), StatusPublished,
		)
	}

	cs.apply(query)

	return query
}

func (cs *CategorySearch) Q() applier {
	return func(query *orm.Query) (*orm.Query, error) {
		if cs == nil {
			return query, nil
		}
		return cs.Apply(query), nil
	}
}

type MediaSearch struct {
	search

	ID       *string
	IDs      []string
	URL      *string
	Type     *string
	Types    []string
	AltILike *string
}

func (ms *MediaSearch) Apply(query *orm.Query) *orm.Query {
	if ms == nil {
		return query
	}
	if ms.ID != nil {
		ms.where(query, Columns.Media.ID, *ms.ID)
	}
	if len(ms.IDs) > 0 {
		ms.whereIn(query, Columns.Media.ID, ms.IDs)
	}
	if ms.URL != nil {
		ms.where(query, Columns.Media.URL, *ms.URL)
	}
	if ms.Type != nil {
		ms.where(query, Columns.Media.Type, *ms.Type)
	}
	if len(ms.Types) > 0 {
		ms.whereIn(query, Columns.Media.Type, ms.Types)
	}
	if ms.AltILike != nil {
		ms.whereILike(query, Columns.Media.Alt, *ms.AltILike)
	}

	ms.apply(query)

	return query
}

func (ms *MediaSearch) Q() applier {
	return func(query *orm.Query) (*orm.Query, error) {
		if ms == nil {
			return query, nil
		}
		return ms.Apply(query), nil
	}
}
