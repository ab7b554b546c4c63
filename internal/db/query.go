package db

import (
	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"
)

const (
	// DefaultPageSize is used when a pager has no size.
	DefaultPageSize = 20
	// MaxPageSize caps page sizes coming from API callers.
	MaxPageSize = 100
)

// OpFunc adjusts a select query, e.g. to load relations.
type OpFunc func(query *orm.Query)

// WithColumns limits selected columns.
func WithColumns(cols ...string) OpFunc {
	return func(query *orm.Query) {
		query.Column(cols...)
	}
}

// WithRelations loads relations by model field name, nested with a dot ("TreatmentCategory.ExpertiseArea").
func WithRelations(rels ...string) OpFunc {
	return func(query *orm.Query) {
		for _, rel := range rels {
			query.Relation(rel)
		}
	}
}

// WithSort adds ORDER BY for each field.
func WithSort(sort ...SortField) OpFunc {
	return func(query *orm.Query) {
		for _, s := range sort {
			s.apply(query)
		}
	}
}

// WithForUpdate locks selected rows until the end of the transaction.
func WithForUpdate() OpFunc {
	return func(query *orm.Query) {
		query.For("UPDATE")
	}
}

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

type SortField struct {
	Column    string
	Direction SortDirection
}

func NewSortField(column string, desc bool) SortField {
	dir := SortAsc
	if desc {
		dir = SortDesc
	}
	return SortField{Column: column, Direction: dir}
}

func (s SortField) desc() bool {
	return s.Direction == SortDesc
}

func (s SortField) apply(query *orm.Query) {
	if s.desc() {
		query.OrderExpr("?.? DESC", pg.Ident(alias), pg.Ident(s.Column))
	} else {
		query.OrderExpr("?.? ASC", pg.Ident(alias), pg.Ident(s.Column))
	}
}

// Pager is a page based window, pages start from 1.
type Pager struct {
	Page     int
	PageSize int
}

var (
	PagerDefault = Pager{Page: 1, PageSize: DefaultPageSize}
	PagerOne     = Pager{Page: 1, PageSize: 1}
	PagerNoLimit = Pager{}
)

// NewPager returns a pager with sane bounds for optional values from API callers.
func NewPager(page, pageSize *int) Pager {
	p := PagerDefault
	if page != nil && *page > 0 {
		p.Page = *page
	}
	if pageSize != nil && *pageSize > 0 {
		p.PageSize = *pageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}

func (p Pager) Skip() int {
	if p.Page < 1 || p.PageSize < 1 {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}

func (p Pager) Take() int {
	if p.PageSize < 1 {
		return 0
	}
	return p.PageSize
}

// Args converts the pager to find-many arguments.
func (p Pager) Args(sort ...SortField) FindManyArgs {
	return FindManyArgs{Skip: p.Skip(), Take: p.Take(), OrderBy: sort}
}

// Unique points at one row by a unique column.
type Unique struct {
	Column string
	Value  interface{}
}

func ByID(id string) Unique       { return Unique{Column: "id", Value: id} }
func BySlug(slug string) Unique   { return Unique{Column: "slug", Value: slug} }
func ByEmail(email string) Unique { return Unique{Column: "email", Value: email} }

func (u Unique) cond() Cond {
	return Eq(u.Column, u.Value)
}

// FindManyArgs mirrors skip/take/orderBy/cursor/distinct arguments of a list query.
type FindManyArgs struct {
	Skip    int
	Take    int
	OrderBy []SortField
	// Cursor starts the window at the given row, inclusive. Use Skip: 1 to exclude it.
	Cursor   *Unique
	Distinct []string
}
