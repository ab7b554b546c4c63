package db

import (
	"context"
	"fmt"

	"github.com/go-pg/pg/v10"
)

type IsolationLevel string

const (
	IsolationReadCommitted  IsolationLevel = "READ COMMITTED"
	IsolationRepeatableRead IsolationLevel = "REPEATABLE READ"
	IsolationSerializable   IsolationLevel = "SERIALIZABLE"
)

type TxOptions struct {
	Isolation IsolationLevel
}

// Client is the entry point to the database: one delegate per model plus
// transactions, raw queries and event hooks.
type Client struct {
	db     pg.DBI
	events *emitter

	Users               *Delegate[User]
	SeoSettings         *Delegate[SeoSetting]
	Pages               *Delegate[Page]
	MenuItems           *Delegate[MenuItem]
	ExpertiseAreas      *Delegate[ExpertiseArea]
	TreatmentCategories *Delegate[TreatmentCategory]
	Procedures          *Delegate[Procedure]
	ProcedureMethods    *Delegate[ProcedureMethod]
	Faqs                *Delegate[Faq]
	BlogPosts           *Delegate[BlogPost]
	Categories          *Delegate[Category]
	Media               *Delegate[Media]
}

// New returns a client over db. Query events are only available when db is *pg.DB.
func New(db pg.DBI) *Client {
	c := newClient(db, newEmitter())
	if pgdb, ok := db.(*pg.DB); ok {
		pgdb.AddQueryHook(&queryHook{events: c.events})
	}
	return c
}

// Connect opens a connection pool and checks it.
func Connect(ctx context.Context, opts *pg.Options) (*Client, error) {
	pgdb := pg.Connect(opts)
	if err := pgdb.Ping(ctx); err != nil {
		_ = pgdb.Close()
		return nil, &InitializationError{err: fmt.Errorf("ping %s: %w", opts.Addr, err)}
	}
	return New(pgdb), nil
}

func newClient(db pg.DBI, events *emitter) *Client {
	c := &Client{db: db, events: events}

	c.Users = newDelegate[User](c, Tables.User.Name, Columns.User.Email)
	c.SeoSettings = newDelegate[SeoSetting](c, Tables.SeoSetting.Name)
	c.Pages = newDelegate[Page](c, Tables.Page.Name, Columns.Page.Slug, Columns.Page.SeoSettingsID)
	c.MenuItems = newDelegate[MenuItem](c, Tables.MenuItem.Name)
	c.ExpertiseAreas = newDelegate[ExpertiseArea](c, Tables.ExpertiseArea.Name, Columns.ExpertiseArea.Slug)
	c.TreatmentCategories = newDelegate[TreatmentCategory](c, Tables.TreatmentCategory.Name, Columns.TreatmentCategory.Slug)
	c.Procedures = newDelegate[Procedure](c, Tables.Procedure.Name, Columns.Procedure.Slug, Columns.Procedure.SeoSettingsID)
	c.ProcedureMethods = newDelegate[ProcedureMethod](c, Tables.ProcedureMethod.Name, Columns.ProcedureMethod.Slug)
	c.Faqs = newDelegate[Faq](c, Tables.Faq.Name)
	c.BlogPosts = newDelegate[BlogPost](c, Tables.BlogPost.Name, Columns.BlogPost.Slug, Columns.BlogPost.SeoSettingsID)
	c.Categories = newDelegate[Category](c, Tables.Category.Name, Columns.Category.Slug)
	c.Media = newDelegate[Media](c, Tables.Media.Name)

	return c
}

// DB returns the underlying connection or transaction.
func (c *Client) DB() pg.DBI { return c.db }

// On registers an event handler for the level.
func (c *Client) On(level EventLevel, h EventHandler) {
	c.events.on(level, h)
}

func (c *Client) Ping(ctx context.Context) error {
	if db, ok := c.db.(*pg.DB); ok {
		if err := db.Ping(ctx); err != nil {
			return &InitializationError{err: err}
		}
	}

	return nil
}

func (c *Client) Close() error {
	if db, ok := c.db.(*pg.DB); ok {
		return db.Close()
	}

	return nil
}

// InTransaction reports whether the client is bound to a transaction.
func (c *Client) InTransaction() bool {
	_, ok := c.db.(*pg.Tx)
	return ok
}

// Transaction runs fn in a transaction, committing when fn returns nil.
// Inside an existing transaction fn joins it.
func (c *Client) Transaction(ctx context.Context, fn func(tx *Client) error) error {
	return c.TransactionWithOptions(ctx, TxOptions{}, fn)
}

func (c *Client) TransactionWithOptions(ctx context.Context, opts TxOptions, fn func(tx *Client) error) error {
	switch opts.Isolation {
	case "", IsolationReadCommitted, IsolationRepeatableRead, IsolationSerializable:
	default:
		return newValidationError("unknown isolation level %q", opts.Isolation)
	}

	if c.InTransaction() {
		return fn(c)
	}

	var fnErr error
	err := c.db.RunInTransaction(ctx, func(tx *pg.Tx) error {
		if opts.Isolation != "" {
			if _, err := tx.ExecContext(ctx, "SET TRANSACTION ISOLATION LEVEL "+string(opts.Isolation)); err != nil {
				return classify(err)
			}
		}
		fnErr = fn(newClient(tx, c.events))
		return fnErr
	})
	if err != nil {
		// begin and commit failures come straight from the driver
		if fnErr == nil {
			err = classify(err)
		}
		c.events.log(EventWarn, "transaction", "transaction rolled back: "+err.Error())
		return err
	}

	c.events.log(EventInfo, "transaction", "transaction committed")
	return nil
}

// QueryRaw runs an arbitrary query and scans rows into dest (a model slice, struct or pg.Scan).
func (c *Client) QueryRaw(ctx context.Context, dest interface{}, query string, params ...interface{}) error {
	if _, err := c.db.QueryContext(ctx, dest, query, params...); err != nil {
		err = classify(err)
		c.events.log(EventError, "raw", err.Error())
		return fmt.Errorf("query raw: %w", err)
	}

	return nil
}

// ExecuteRaw runs an arbitrary statement and returns the number of affected rows.
func (c *Client) ExecuteRaw(ctx context.Context, query string, params ...interface{}) (int, error) {
	res, err := c.db.ExecContext(ctx, query, params...)
	if err != nil {
		err = classify(err)
		c.events.log(EventError, "raw", err.Error())
		return 0, fmt.Errorf("execute raw: %w", err)
	}

	return res.RowsAffected(), nil
}
