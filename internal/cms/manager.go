package cms

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/daniilsolovey/clinic-cms/internal/db"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// ObjectStorage keeps uploaded media files.
type ObjectStorage interface {
	Put(ctx context.Context, fileName, contentType string, r io.Reader, size int64) (string, error)
	Remove(ctx context.Context, key string) error
	URL(key string) string
	Key(url string) (string, bool)
}

type Manager struct {
	db      *db.Client
	storage ObjectStorage

	sanitizer *bluemonday.Policy
	stripper  *bluemonday.Policy
	markdown  goldmark.Markdown

	now func() time.Time
}

// NewManager returns a manager over the client. storage may be nil, then uploads are disabled.
func NewManager(client *db.Client, storage ObjectStorage) *Manager {
	return &Manager{
		db:        client,
		storage:   storage,
		sanitizer: bluemonday.UGCPolicy(),
		stripper:  bluemonday.StrictPolicy(),
		markdown: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(html.WithUnsafe()),
		),
		now: func() time.Time { return time.Now().UTC() },
	}
}

// Ping checks the database connection.
func (m *Manager) Ping(ctx context.Context) error {
	return m.db.Ping(ctx)
}

// withDB returns a copy of the manager bound to another client, usually a transaction.
func (m *Manager) withDB(client *db.Client) *Manager {
	c := *m
	c.db = client
	return &c
}

func (m *Manager) tx(ctx context.Context, fn func(m *Manager) error) error {
	return m.db.Transaction(ctx, func(tx *db.Client) error {
		return fn(m.withDB(tx))
	})
}

// findByID loads a row by id, a missing row is ErrNotFound.
func findByID[M any](ctx context.Context, d *db.Delegate[M], name, id string, ops ...db.OpFunc) (*M, error) {
	row, err := d.FindUnique(ctx, db.ByID(id), ops...)
	if err != nil {
		return nil, fmt.Errorf("db get %s: %w", name, translate(err))
	} else if row == nil {
		return nil, fmt.Errorf("%s %q: %w", name, id, ErrNotFound)
	}

	return row, nil
}

func deleteByID[M any](ctx context.Context, d *db.Delegate[M], name, id string) (*M, error) {
	row, err := d.Delete(ctx, db.ByID(id))
	if err != nil {
		return nil, fmt.Errorf("db delete %s: %w", name, translate(err))
	}

	return row, nil
}

// list returns a page of rows and the total count.
func list[M any](ctx context.Context, d *db.Delegate[M], search db.Searcher, args db.FindManyArgs, ops ...db.OpFunc) ([]M, int, error) {
	rows, err := d.FindMany(ctx, search, args, ops...)
	if err != nil {
		return nil, 0, fmt.Errorf("db list %s: %w", d.Table(), translate(err))
	}

	count, err := d.Count(ctx, search)
	if err != nil {
		return nil, 0, fmt.Errorf("db count %s: %w", d.Table(), err)
	}

	return rows, count, nil
}
