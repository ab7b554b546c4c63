package db

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"
)

type AggregateFunc string

const (
	AggCount AggregateFunc = "count"
	AggAvg   AggregateFunc = "avg"
	AggSum   AggregateFunc = "sum"
	AggMin   AggregateFunc = "min"
	AggMax   AggregateFunc = "max"
)

// CountColumn is the result column of the row count, usable in GroupByArgs.OrderBy.
const CountColumn = "_count"

type AggregateArgs struct {
	Count bool
	Avg   []string
	Sum   []string
	Min   []string
	Max   []string
}

func (a AggregateArgs) empty() bool {
	return !a.Count && len(a.Avg)+len(a.Sum)+len(a.Min)+len(a.Max) == 0
}

func (a AggregateArgs) columns() []string {
	cols := make([]string, 0, len(a.Avg)+len(a.Sum)+len(a.Min)+len(a.Max))
	cols = append(cols, a.Avg...)
	cols = append(cols, a.Sum...)
	cols = append(cols, a.Min...)
	return append(cols, a.Max...)
}

// AggregateResult holds aggregated values keyed by column name.
// Numbers are decoded as float64, timestamps as strings.
type AggregateResult struct {
	Count int64
	Avg   map[string]interface{}
	Sum   map[string]interface{}
	Min   map[string]interface{}
	Max   map[string]interface{}
}

// Having filters groups by an aggregate, e.g. Having{Func: AggCount, Op: ">", Value: 1}.
type Having struct {
	Func   AggregateFunc
	Column string
	Op     string
	Value  interface{}
}

type GroupByArgs struct {
	By []string
	AggregateArgs
	Having  []Having
	OrderBy []SortField
	Skip    int
	Take    int
}

type GroupByRow struct {
	// Keys holds the values of the grouped columns.
	Keys map[string]interface{}
	AggregateResult
}

var allowedOps = map[string]struct{}{"=": {}, "<>": {}, "<": {}, "<=": {}, ">": {}, ">=": {}}

func (d *Delegate[M]) checkAggregate(args AggregateArgs) error {
	if args.empty() {
		return newValidationError("no aggregate requested")
	}
	return d.checkColumns(args.columns()...)
}

func addAggregates(query *orm.Query, args AggregateArgs) {
	if args.Count {
		query.ColumnExpr("count(*) AS ?", pg.Ident(CountColumn))
	}
	for _, agg := range []struct {
		fn   AggregateFunc
		cols []string
	}{{AggAvg, args.Avg}, {AggSum, args.Sum}, {AggMin, args.Min}, {AggMax, args.Max}} {
		for _, col := range agg.cols {
			query.ColumnExpr(string(agg.fn)+"(?.?) AS ?", pg.Ident(alias), pg.Ident(col), pg.Ident(aggAlias(agg.fn, col)))
		}
	}
}

func aggAlias(fn AggregateFunc, col string) string {
	return "_" + string(fn) + "_" + col
}

// splitAggregates separates a result row into group keys and aggregate values.
func splitAggregates(row map[string]interface{}) (map[string]interface{}, AggregateResult) {
	keys := make(map[string]interface{})
	res := AggregateResult{
		Avg: make(map[string]interface{}),
		Sum: make(map[string]interface{}),
		Min: make(map[string]interface{}),
		Max: make(map[string]interface{}),
	}

	for k, v := range row {
		switch {
		case k == CountColumn:
			if n, ok := v.(float64); ok {
				res.Count = int64(n)
			}
		case strings.HasPrefix(k, "_avg_"):
			res.Avg[strings.TrimPrefix(k, "_avg_")] = v
		case strings.HasPrefix(k, "_sum_"):
			res.Sum[strings.TrimPrefix(k, "_sum_")] = v
		case strings.HasPrefix(k, "_min_"):
			res.Min[strings.TrimPrefix(k, "_min_")] = v
		case strings.HasPrefix(k, "_max_"):
			res.Max[strings.TrimPrefix(k, "_max_")] = v
		default:
			keys[k] = v
		}
	}

	return keys, res
}

// Aggregate computes count/avg/sum/min/max over matching rows.
func (d *Delegate[M]) Aggregate(ctx context.Context, search Searcher, args AggregateArgs) (*AggregateResult, error) {
	if err := d.checkAggregate(args); err != nil {
		return nil, d.fail("aggregate", err)
	}

	inner := d.db().ModelContext(ctx, (*M)(nil))
	applySearch(inner, search)
	addAggregates(inner, args)

	var raw string
	if _, err := d.db().QueryOneContext(ctx, pg.Scan(&raw), `SELECT row_to_json(a) FROM (?) AS a`, inner); err != nil {
		return nil, d.fail("aggregate", err)
	}

	var row map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &row); err != nil {
		return nil, d.fail("aggregate", fmt.Errorf("decode aggregate row: %w", err))
	}

	_, res := splitAggregates(row)
	return &res, nil
}

// GroupBy groups matching rows by columns and aggregates each group.
func (d *Delegate[M]) GroupBy(ctx context.Context, search Searcher, args GroupByArgs) ([]GroupByRow, error) {
	if err := d.checkGroupBy(args); err != nil {
		return nil, d.fail("group by", err)
	}

	inner := d.db().ModelContext(ctx, (*M)(nil))
	applySearch(inner, search)
	for _, col := range args.By {
		inner.ColumnExpr("?.? AS ?", pg.Ident(alias), pg.Ident(col), pg.Ident(col))
		inner.GroupExpr("?.?", pg.Ident(alias), pg.Ident(col))
	}
	addAggregates(inner, args.AggregateArgs)

	for _, h := range args.Having {
		if h.Func == AggCount && h.Column == "" {
			inner.Having("count(*) "+h.Op+" ?", h.Value)
			continue
		}
		inner.Having(string(h.Func)+"(?.?) "+h.Op+" ?", pg.Ident(alias), pg.Ident(h.Column), h.Value)
	}

	for _, s := range args.OrderBy {
		dir := "ASC"
		if s.desc() {
			dir = "DESC"
		}
		if s.Column == CountColumn {
			inner.OrderExpr("count(*) " + dir)
		} else {
			inner.OrderExpr("?.? "+dir, pg.Ident(alias), pg.Ident(s.Column))
		}
	}
	if args.Skip > 0 {
		inner.Offset(args.Skip)
	}
	if args.Take > 0 {
		inner.Limit(args.Take)
	}

	var raw string
	if _, err := d.db().QueryOneContext(ctx, pg.Scan(&raw), `SELECT coalesce(json_agg(g), '[]'::json) FROM (?) AS g`, inner); err != nil {
		return nil, d.fail("group by", err)
	}

	var rows []map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &rows); err != nil {
		return nil, d.fail("group by", fmt.Errorf("decode group rows: %w", err))
	}

	result := make([]GroupByRow, 0, len(rows))
	for _, row := range rows {
		keys, agg := splitAggregates(row)
		result = append(result, GroupByRow{Keys: keys, AggregateResult: agg})
	}

	return result, nil
}

func (d *Delegate[M]) checkGroupBy(args GroupByArgs) error {
	if len(args.By) == 0 {
		return newValidationError("group by requires at least one column")
	}
	if err := d.checkColumns(args.By...); err != nil {
		return err
	}
	if !args.AggregateArgs.empty() {
		if err := d.checkColumns(args.AggregateArgs.columns()...); err != nil {
			return err
		}
	}
	if args.Skip < 0 || args.Take < 0 {
		return newValidationError("skip and take must not be negative")
	}

	grouped := make(map[string]struct{}, len(args.By))
	for _, col := range args.By {
		grouped[col] = struct{}{}
	}
	for _, s := range args.OrderBy {
		if _, ok := grouped[s.Column]; !ok && s.Column != CountColumn {
			return newValidationError("cannot order groups by %q: not grouped", s.Column)
		}
	}

	for _, h := range args.Having {
		switch h.Func {
		case AggCount, AggAvg, AggSum, AggMin, AggMax:
		default:
			return newValidationError("unknown aggregate %q", h.Func)
		}
		if _, ok := allowedOps[h.Op]; !ok {
			return newValidationError("unknown operator %q", h.Op)
		}
		if h.Column == "" && h.Func != AggCount {
			return newValidationError("aggregate %q requires a column", h.Func)
		}
		if h.Column != "" {
			if err := d.checkColumns(h.Column); err != nil {
				return err
			}
		}
	}

	return nil
}
