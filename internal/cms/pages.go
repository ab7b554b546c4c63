package cms

import (
	"context"
	"fmt"

	"github.com/daniilsolovey/clinic-cms/internal/db"
)

// PageBySlug returns a published page with rendered content, or nil if there is none.
func (m *Manager) PageBySlug(ctx context.Context, slug string) (*Page, error) {
	status := db.StatusPublished
	page, err := m.db.Pages.FindFirst(ctx,
		&db.PageSearch{Slug: &slug, Status: &status},
		db.WithRelations(db.Columns.Page.SeoSetting),
	)
	if err != nil {
		return nil, fmt.Errorf("db get page: %w", err)
	} else if page == nil {
		return nil, nil
	}

	rendered, err := m.Render(page.Content)
	if err != nil {
		return nil, err
	}

	return &Page{Page: *page, HTML: rendered}, nil
}

func (m *Manager) PageByID(ctx context.Context, id string) (*db.Page, error) {
	return findByID(ctx, m.db.Pages, "page", id, db.WithRelations(db.Columns.Page.SeoSetting))
}

// Pages returns pages of any status for the back office, newest first.
func (m *Manager) Pages(ctx context.Context, filter PageFilter, pager db.Pager) ([]db.Page, int, error) {
	search := &db.PageSearch{Status: filter.Status, TitleILike: filter.TitleILike}
	return list(ctx, m.db.Pages, search, pager.Args(db.NewSortField(db.Columns.Page.CreatedAt, true)))
}

func (m *Manager) CreatePage(ctx context.Context, page db.Page) (*db.Page, error) {
	slug, err := slugFor(page.Slug, page.Title)
	if err != nil {
		return nil, err
	}
	if err := initialStatus(&page.Status, &page.PublishedAt, m.now()); err != nil {
		return nil, err
	}

	var created *db.Page
	err = m.tx(ctx, func(m *Manager) error {
		if page.Slug, err = freeSlug(ctx, m.db.Pages, slug); err != nil {
			return err
		}
		if page.SeoSettingsID != nil {
			if err := m.checkSeoFree(ctx, *page.SeoSettingsID, SeoOwnerPage, ""); err != nil {
				return err
			}
		}

		created, err = m.db.Pages.Create(ctx, &page)
		if err != nil {
			return fmt.Errorf("db create page: %w", translate(err))
		}
		return nil
	})

	return created, err
}

// UpdatePage saves slug, title and content. Status and SEO have their own operations.
func (m *Manager) UpdatePage(ctx context.Context, page db.Page) (*db.Page, error) {
	current, err := findByID(ctx, m.db.Pages, "page", page.ID)
	if err != nil {
		return nil, err
	}

	if page.Slug != "" {
		if current.Slug, err = slugFor(page.Slug, ""); err != nil {
			return nil, err
		}
	}
	current.Title = page.Title
	current.Content = page.Content

	updated, err := m.db.Pages.Update(ctx, current,
		db.Columns.Page.Slug, db.Columns.Page.Title, db.Columns.Page.Content)
	if err != nil {
		return nil, fmt.Errorf("db update page: %w", translate(err))
	}

	return updated, nil
}

func (m *Manager) SetPageStatus(ctx context.Context, id string, status db.PublishStatus) (*db.Page, error) {
	page, err := findByID(ctx, m.db.Pages, "page", id)
	if err != nil {
		return nil, err
	}
	if err := applyStatus(&page.Status, &page.PublishedAt, status, m.now()); err != nil {
		return nil, err
	}

	updated, err := m.db.Pages.Update(ctx, page, db.Columns.Page.Status, db.Columns.Page.PublishedAt)
	if err != nil {
		return nil, fmt.Errorf("db update page status: %w", translate(err))
	}

	return updated, nil
}

// DeletePage removes the page together with its SEO settings.
func (m *Manager) DeletePage(ctx context.Context, id string) error {
	return m.tx(ctx, func(m *Manager) error {
		page, err := deleteByID(ctx, m.db.Pages, "page", id)
		if err != nil {
			return err
		}

		return m.deleteSeo(ctx, page.SeoSettingsID)
	})
}
