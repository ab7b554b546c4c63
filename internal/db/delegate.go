package db

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"
)

// Delegate exposes the standard set of operations for one model.
type Delegate[M any] struct {
	client  *Client
	table   string
	columns map[string]struct{}
	uniques map[string]struct{}
}

func newDelegate[M any](c *Client, table string, uniques ...string) *Delegate[M] {
	d := &Delegate[M]{
		client:  c,
		table:   table,
		columns: modelColumns(reflect.TypeOf((*M)(nil)).Elem()),
		uniques: make(map[string]struct{}, len(uniques)+1),
	}
	d.uniques[pkColumn] = struct{}{}
	for _, u := range uniques {
		d.uniques[u] = struct{}{}
	}
	return d
}

const (
	pkColumn        = "id"
	createdAtColumn = "createdAt"
	updatedAtColumn = "updatedAt"
)

// modelColumns collects SQL column names from go-pg struct tags, skipping relations.
func modelColumns(typ reflect.Type) map[string]struct{} {
	cols := make(map[string]struct{}, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		tag := f.Tag.Get("pg")
		if tag == "" || tag == "-" || strings.Contains(tag, "rel:") {
			continue
		}
		name := strings.SplitN(tag, ",", 2)[0]
		if name != "" {
			cols[name] = struct{}{}
		}
	}
	return cols
}

// Table returns the SQL table name.
func (d *Delegate[M]) Table() string { return d.table }

func (d *Delegate[M]) db() pg.DBI { return d.client.db }

func (d *Delegate[M]) checkColumns(cols ...string) error {
	for _, col := range cols {
		if _, ok := d.columns[col]; !ok {
			return newValidationError("unknown column %q for %s", col, d.table)
		}
	}
	return nil
}

func (d *Delegate[M]) checkUnique(u Unique) error {
	if _, ok := d.uniques[u.Column]; !ok {
		return newValidationError("column %q is not a unique key of %s", u.Column, d.table)
	}
	if u.Value == nil {
		return newValidationError("empty value for unique key %q of %s", u.Column, d.table)
	}
	return nil
}

func (d *Delegate[M]) checkSort(sort []SortField) error {
	for _, s := range sort {
		if err := d.checkColumns(s.Column); err != nil {
			return err
		}
		if s.Direction != "" && s.Direction != SortAsc && s.Direction != SortDesc {
			return newValidationError("invalid sort direction %q", s.Direction)
		}
	}
	return nil
}

func (d *Delegate[M]) checkArgs(args FindManyArgs) error {
	if args.Skip < 0 || args.Take < 0 {
		return newValidationError("skip and take must not be negative: skip=%d, take=%d", args.Skip, args.Take)
	}
	if err := d.checkSort(args.OrderBy); err != nil {
		return err
	}
	if err := d.checkColumns(args.Distinct...); err != nil {
		return err
	}
	if args.Cursor != nil {
		return d.checkUnique(*args.Cursor)
	}
	return nil
}

// fail classifies err, reports it to error handlers and adds operation context.
func (d *Delegate[M]) fail(op string, err error) error {
	err = classify(err)
	d.client.events.log(EventError, d.table, fmt.Sprintf("%s: %v", op, err))
	return fmt.Errorf("%s %s: %w", op, d.table, err)
}

func applySearch(query *orm.Query, search Searcher) {
	if search != nil {
		search.Apply(query)
	}
}

func applyOps(query *orm.Query, ops []OpFunc) {
	for _, op := range ops {
		op(query)
	}
}

func (d *Delegate[M]) applyArgs(query *orm.Query, args FindManyArgs) {
	order := args.OrderBy
	if len(args.Distinct) > 0 {
		distinct := make([]interface{}, 0, len(args.Distinct))
		marks := make([]string, 0, len(args.Distinct))
		for _, col := range args.Distinct {
			distinct = append(distinct, pg.Ident(alias), pg.Ident(col))
			marks = append(marks, "?.?")
			order = append([]SortField{{Column: col, Direction: SortAsc}}, order...)
		}
		query.DistinctOn(strings.Join(marks, ", "), distinct...)
	}

	if args.Cursor != nil {
		order = withPK(order)
		cursorCond(d.table, order, *args.Cursor).Apply(query)
	}

	for _, s := range order {
		s.apply(query)
	}
	if args.Skip > 0 {
		query.Offset(args.Skip)
	}
	if args.Take > 0 {
		query.Limit(args.Take)
	}
}

func withPK(order []SortField) []SortField {
	for _, s := range order {
		if s.Column == pkColumn {
			return order
		}
	}
	return append(order[:len(order):len(order)], SortField{Column: pkColumn, Direction: SortAsc})
}

// cursorCond selects rows at or after the cursor row in the given order (keyset pagination).
func cursorCond(table string, order []SortField, cursor Unique) Cond {
	ors := make([]Cond, 0, len(order)+1)
	for i, f := range order {
		ands := make([]Cond, 0, i+1)
		for _, prev := range order[:i] {
			ands = append(ands, cursorCompare(table, prev.Column, "=", cursor))
		}
		op := ">"
		if f.desc() {
			op = "<"
		}
		ands = append(ands, cursorCompare(table, f.Column, op, cursor))
		ors = append(ors, And(ands...))
	}
	ors = append(ors, cursor.cond())
	return Or(ors...)
}

func cursorCompare(table, column, op string, cursor Unique) Cond {
	return Cond{
		expr: "?.? " + op + " (SELECT ? FROM ? WHERE ? = ?)",
		params: []interface{}{
			pg.Ident(alias), pg.Ident(column),
			pg.Ident(column), pg.Ident(table), pg.Ident(cursor.Column), cursor.Value,
		},
	}
}

// FindUnique returns a row by unique key or nil if it does not exist.
func (d *Delegate[M]) FindUnique(ctx context.Context, u Unique, ops ...OpFunc) (*M, error) {
	if err := d.checkUnique(u); err != nil {
		return nil, d.fail("find unique", err)
	}

	m := new(M)
	q := d.db().ModelContext(ctx, m)
	u.cond().Apply(q)
	applyOps(q, ops)

	err := q.Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, d.fail("find unique", err)
	}

	return m, nil
}

// FindUniqueOrThrow is FindUnique returning a not found error instead of nil.
func (d *Delegate[M]) FindUniqueOrThrow(ctx context.Context, u Unique, ops ...OpFunc) (*M, error) {
	m, err := d.FindUnique(ctx, u, ops...)
	if err != nil {
		return nil, err
	} else if m == nil {
		return nil, fmt.Errorf("find unique %s: %w", d.table, notFound(d.table))
	}
	return m, nil
}

// FindFirst returns the first matching row or nil.
func (d *Delegate[M]) FindFirst(ctx context.Context, search Searcher, ops ...OpFunc) (*M, error) {
	m := new(M)
	q := d.db().ModelContext(ctx, m)
	applySearch(q, search)
	applyOps(q, ops)

	err := q.Limit(1).Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, d.fail("find first", err)
	}

	return m, nil
}

// FindMany returns matching rows, never nil.
func (d *Delegate[M]) FindMany(ctx context.Context, search Searcher, args FindManyArgs, ops ...OpFunc) ([]M, error) {
	if err := d.checkArgs(args); err != nil {
		return nil, d.fail("find many", err)
	}

	list := []M{}
	q := d.db().ModelContext(ctx, &list)
	applySearch(q, search)
	d.applyArgs(q, args)
	applyOps(q, ops)

	if err := q.Select(); err != nil {
		return nil, d.fail("find many", err)
	}

	return list, nil
}

func (d *Delegate[M]) Count(ctx context.Context, search Searcher) (int, error) {
	q := d.db().ModelContext(ctx, (*M)(nil))
	applySearch(q, search)

	count, err := q.Count()
	if err != nil {
		return 0, d.fail("count", err)
	}

	return count, nil
}

// Exists reports whether any row matches.
func (d *Delegate[M]) Exists(ctx context.Context, search Searcher) (bool, error) {
	q := d.db().ModelContext(ctx, (*M)(nil))
	applySearch(q, search)

	ok, err := q.Exists()
	if err != nil {
		return false, d.fail("exists", err)
	}

	return ok, nil
}

// Create inserts m and refreshes it with stored values.
func (d *Delegate[M]) Create(ctx context.Context, m *M) (*M, error) {
	if _, err := d.db().ModelContext(ctx, m).Returning("*").Insert(); err != nil {
		return nil, d.fail("create", err)
	}
	return m, nil
}

// CreateMany inserts all rows in one statement and returns the number of inserted rows.
// With skipDuplicates rows violating a unique key are skipped.
func (d *Delegate[M]) CreateMany(ctx context.Context, list []M, skipDuplicates bool) (int, error) {
	if len(list) == 0 {
		return 0, nil
	}

	q := d.db().ModelContext(ctx, &list)
	if skipDuplicates {
		q.OnConflict("DO NOTHING")
	}

	res, err := q.Insert()
	if err != nil {
		return 0, d.fail("create many", err)
	}

	return res.RowsAffected(), nil
}

// Update saves m by primary key. When columns are given only they are written.
func (d *Delegate[M]) Update(ctx context.Context, m *M, columns ...string) (*M, error) {
	if err := d.checkColumns(columns...); err != nil {
		return nil, d.fail("update", err)
	}

	q := d.db().ModelContext(ctx, m).WherePK().Returning("*")
	if len(columns) > 0 {
		q.Column(withUpdatedAt(columns)...)
	} else {
		q.ExcludeColumn(createdAtColumn)
	}

	res, err := q.Update()
	if err != nil {
		return nil, d.fail("update", err)
	} else if res.RowsAffected() == 0 {
		return nil, fmt.Errorf("update %s: %w", d.table, notFound(d.table))
	}

	return m, nil
}

func withUpdatedAt(columns []string) []string {
	cols := make([]string, 0, len(columns)+1)
	for _, c := range columns {
		if c != updatedAtColumn {
			cols = append(cols, c)
		}
	}
	return append(cols, updatedAtColumn)
}

// UpdateMany sets columns on all matching rows and returns the number of updated rows.
func (d *Delegate[M]) UpdateMany(ctx context.Context, search Searcher, set map[string]interface{}) (int, error) {
	if len(set) == 0 {
		return 0, d.fail("update many", newValidationError("nothing to update"))
	}

	cols := make([]string, 0, len(set))
	for col := range set {
		cols = append(cols, col)
	}
	sort.Strings(cols)
	if err := d.checkColumns(cols...); err != nil {
		return 0, d.fail("update many", err)
	}
	if search == nil {
		d.client.events.log(EventWarn, d.table, "update many without filter affects every row")
	}

	q := d.db().ModelContext(ctx, (*M)(nil))
	for _, col := range cols {
		if col == updatedAtColumn {
			continue
		}
		q.Set("? = ?", pg.Ident(col), set[col])
	}
	q.Set("? = ?", pg.Ident(updatedAtColumn), now())
	q.Where("TRUE")
	applySearch(q, search)

	res, err := q.Update()
	if err != nil {
		return 0, d.fail("update many", err)
	}

	return res.RowsAffected(), nil
}

// Upsert inserts m or, when a row with the same conflict key exists, updates the listed columns.
// m is refreshed with the stored row in both cases.
func (d *Delegate[M]) Upsert(ctx context.Context, m *M, conflict string, update ...string) (*M, error) {
	if _, ok := d.uniques[conflict]; !ok {
		return nil, d.fail("upsert", newValidationError("column %q is not a unique key of %s", conflict, d.table))
	}
	if err := d.checkColumns(update...); err != nil {
		return nil, d.fail("upsert", err)
	}

	q := d.db().ModelContext(ctx, m).
		OnConflict("(?) DO UPDATE", pg.Ident(conflict)).
		Returning("*")
	for _, col := range withUpdatedAt(update) {
		if col == conflict || col == pkColumn || col == createdAtColumn {
			continue
		}
		q.Set("? = EXCLUDED.?", pg.Ident(col), pg.Ident(col))
	}

	if _, err := q.Insert(); err != nil {
		return nil, d.fail("upsert", err)
	}

	return m, nil
}

// Delete removes a row by unique key and returns it.
func (d *Delegate[M]) Delete(ctx context.Context, u Unique) (*M, error) {
	if err := d.checkUnique(u); err != nil {
		return nil, d.fail("delete", err)
	}

	m := new(M)
	q := d.db().ModelContext(ctx, m).Returning("*")
	u.cond().Apply(q)

	res, err := q.Delete()
	if err != nil {
		return nil, d.fail("delete", err)
	} else if res.RowsAffected() == 0 {
		return nil, fmt.Errorf("delete %s: %w", d.table, notFound(d.table))
	}

	return m, nil
}

// DeleteMany removes matching rows and returns their number.
func (d *Delegate[M]) DeleteMany(ctx context.Context, search Searcher) (int, error) {
	if search == nil {
		d.client.events.log(EventWarn, d.table, "delete many without filter affects every row")
	}

	q := d.db().ModelContext(ctx, (*M)(nil)).Where("TRUE")
	applySearch(q, search)

	res, err := q.Delete()
	if err != nil {
		return 0, d.fail("delete many", err)
	}

	return res.RowsAffected(), nil
}
