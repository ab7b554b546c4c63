package cms

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/daniilsolovey/clinic-cms/internal/db"
)

func (m *Manager) MediaList(ctx context.Context, filter MediaFilter, pager db.Pager) ([]db.Media, int, error) {
	return list(ctx, m.db.Media, &db.MediaSearch{Type: filter.Type, AltILike: filter.AltILike},
		pager.Args(db.NewSortField(db.Columns.Media.CreatedAt, true)))
}

func (m *Manager) MediaByID(ctx context.Context, id string) (*db.Media, error) {
	return findByID(ctx, m.db.Media, "media", id)
}

// UploadMedia stores the file in object storage and records its public URL.
func (m *Manager) UploadMedia(ctx context.Context, fileName, contentType string, r io.Reader, size int64, alt *string) (*db.Media, error) {
	if m.storage == nil {
		return nil, ErrStorageDisabled
	}

	key, err := m.storage.Put(ctx, fileName, contentType, r, size)
	if err != nil {
		return nil, fmt.Errorf("upload media: %w", err)
	}

	if contentType == "" {
		contentType = "application/octet-stream"
	}
	media, err := m.db.Media.Create(ctx, &db.Media{URL: m.storage.URL(key), Alt: alt, Type: contentType})
	if err != nil {
		if rmErr := m.storage.Remove(ctx, key); rmErr != nil {
			slog.WarnContext(ctx, "failed to remove orphan media object", "key", key, "error", rmErr)
		}
		return nil, fmt.Errorf("db create media: %w", translate(err))
	}

	return media, nil
}

// CreateMedia records an externally hosted file.
func (m *Manager) CreateMedia(ctx context.Context, media db.Media) (*db.Media, error) {
	media.ID = ""
	created, err := m.db.Media.Create(ctx, &media)
	if err != nil {
		return nil, fmt.Errorf("db create media: %w", translate(err))
	}

	return created, nil
}

func (m *Manager) UpdateMedia(ctx context.Context, id string, alt *string) (*db.Media, error) {
	media, err := m.MediaByID(ctx, id)
	if err != nil {
		return nil, err
	}
	media.Alt = alt

	updated, err := m.db.Media.Update(ctx, media, db.Columns.Media.Alt)
	if err != nil {
		return nil, fmt.Errorf("db update media: %w", translate(err))
	}

	return updated, nil
}

// DeleteMedia removes the record and, for files kept in our storage, the object itself.
func (m *Manager) DeleteMedia(ctx context.Context, id string) error {
	media, err := deleteByID(ctx, m.db.Media, "media", id)
	if err != nil {
		return err
	}

	if m.storage == nil {
		return nil
	}
	if key, ok := m.storage.Key(media.URL); ok {
		if err := m.storage.Remove(ctx, key); err != nil {
			return fmt.Errorf("remove media object: %w", err)
		}
	}

	return nil
}
