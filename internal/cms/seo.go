package cms

import (
	"context"
	"fmt"

	"github.com/daniilsolovey/clinic-cms/internal/db"
)

// SeoOwner names the kind of record SEO settings are attached to.
type SeoOwner string

const (
	SeoOwnerPage      SeoOwner = "page"
	SeoOwnerProcedure SeoOwner = "procedure"
	SeoOwnerBlogPost  SeoOwner = "blogPost"
)

func (o SeoOwner) IsValid() bool {
	switch o {
	case SeoOwnerPage, SeoOwnerProcedure, SeoOwnerBlogPost:
		return true
	}
	return false
}

// checkSeoFree fails unless the settings exist and belong to no record other than the owner.
// The settings row stays locked until the transaction ends, so concurrent attaches of the same id serialize.
func (m *Manager) checkSeoFree(ctx context.Context, seoID string, owner SeoOwner, ownerID string) error {
	if _, err := findByID(ctx, m.db.SeoSettings, "seo settings", seoID, db.WithForUpdate()); err != nil {
		return err
	}

	except := func(kind SeoOwner) *string {
		if kind == owner && ownerID != "" {
			return &ownerID
		}
		return nil
	}

	pages, err := m.db.Pages.Count(ctx, &db.PageSearch{SeoSettingsID: &seoID, NotID: except(SeoOwnerPage)})
	if err != nil {
		return fmt.Errorf("db count pages: %w", err)
	}
	procedures, err := m.db.Procedures.Count(ctx, &db.ProcedureSearch{SeoSettingsID: &seoID, NotID: except(SeoOwnerProcedure)})
	if err != nil {
		return fmt.Errorf("db count procedures: %w", err)
	}
	posts, err := m.db.BlogPosts.Count(ctx, &db.BlogPostSearch{SeoSettingsID: &seoID, NotID: except(SeoOwnerBlogPost)})
	if err != nil {
		return fmt.Errorf("db count blog posts: %w", err)
	}

	if pages+procedures+posts > 0 {
		return fmt.Errorf("%w: %s", ErrSeoTaken, seoID)
	}

	return nil
}

// ownerSeoID returns the SEO settings id currently attached to the owner.
func (m *Manager) ownerSeoID(ctx context.Context, owner SeoOwner, ownerID string) (*string, error) {
	cols := db.WithColumns("id", "seoSettingsId")
	switch owner {
	case SeoOwnerPage:
		p, err := findByID(ctx, m.db.Pages, string(owner), ownerID, cols)
		if err != nil {
			return nil, err
		}
		return p.SeoSettingsID, nil
	case SeoOwnerProcedure:
		p, err := findByID(ctx, m.db.Procedures, string(owner), ownerID, cols)
		if err != nil {
			return nil, err
		}
		return p.SeoSettingsID, nil
	case SeoOwnerBlogPost:
		p, err := findByID(ctx, m.db.BlogPosts, string(owner), ownerID, cols)
		if err != nil {
			return nil, err
		}
		return p.SeoSettingsID, nil
	}

	return nil, invalid("unknown seo owner %q", owner)
}

func (m *Manager) setOwnerSeo(ctx context.Context, owner SeoOwner, ownerID string, seoID *string) error {
	set := map[string]interface{}{"seoSettingsId": seoID}

	var (
		n   int
		err error
	)
	switch owner {
	case SeoOwnerPage:
		n, err = m.db.Pages.UpdateMany(ctx, &db.PageSearch{ID: &ownerID}, set)
	case SeoOwnerProcedure:
		n, err = m.db.Procedures.UpdateMany(ctx, &db.ProcedureSearch{ID: &ownerID}, set)
	case SeoOwnerBlogPost:
		n, err = m.db.BlogPosts.UpdateMany(ctx, &db.BlogPostSearch{ID: &ownerID}, set)
	default:
		return invalid("unknown seo owner %q", owner)
	}

	if err != nil {
		return fmt.Errorf("db attach seo: %w", translate(err))
	} else if n == 0 {
		return fmt.Errorf("%s %q: %w", owner, ownerID, ErrNotFound)
	}

	return nil
}

func (m *Manager) deleteSeo(ctx context.Context, seoID *string) error {
	if seoID == nil {
		return nil
	}
	if _, err := m.db.SeoSettings.Delete(ctx, db.ByID(*seoID)); err != nil && !db.IsNotFound(err) {
		return fmt.Errorf("db delete seo settings: %w", err)
	}

	return nil
}

// SeoFor returns the SEO settings of the owner or nil.
func (m *Manager) SeoFor(ctx context.Context, owner SeoOwner, ownerID string) (*db.SeoSetting, error) {
	seoID, err := m.ownerSeoID(ctx, owner, ownerID)
	if err != nil || seoID == nil {
		return nil, err
	}

	return findByID(ctx, m.db.SeoSettings, "seo settings", *seoID)
}

// UpsertSeo updates the owner's SEO settings, creating and attaching them when missing.
func (m *Manager) UpsertSeo(ctx context.Context, owner SeoOwner, ownerID string, seo db.SeoSetting) (*db.SeoSetting, error) {
	var saved *db.SeoSetting
	err := m.tx(ctx, func(m *Manager) error {
		seoID, err := m.ownerSeoID(ctx, owner, ownerID)
		if err != nil {
			return err
		}

		if seoID != nil {
			seo.ID = *seoID
			saved, err = m.db.SeoSettings.Update(ctx, &seo)
			if err != nil {
				return fmt.Errorf("db update seo settings: %w", translate(err))
			}
			return nil
		}

		seo.ID = ""
		if saved, err = m.db.SeoSettings.Create(ctx, &seo); err != nil {
			return fmt.Errorf("db create seo settings: %w", translate(err))
		}
		return m.setOwnerSeo(ctx, owner, ownerID, &saved.ID)
	})

	return saved, err
}

// AttachSeo attaches existing settings to the owner. Settings already used elsewhere are refused.
func (m *Manager) AttachSeo(ctx context.Context, owner SeoOwner, ownerID, seoID string) error {
	if !owner.IsValid() {
		return invalid("unknown seo owner %q", owner)
	}

	return m.tx(ctx, func(m *Manager) error {
		if err := m.checkSeoFree(ctx, seoID, owner, ownerID); err != nil {
			return err
		}
		return m.setOwnerSeo(ctx, owner, ownerID, &seoID)
	})
}

// DetachSeo clears the owner's settings, deleting them when remove is set.
func (m *Manager) DetachSeo(ctx context.Context, owner SeoOwner, ownerID string, remove bool) error {
	return m.tx(ctx, func(m *Manager) error {
		seoID, err := m.ownerSeoID(ctx, owner, ownerID)
		if err != nil || seoID == nil {
			return err
		}
		if err := m.setOwnerSeo(ctx, owner, ownerID, nil); err != nil {
			return err
		}
		if remove {
			return m.deleteSeo(ctx, seoID)
		}
		return nil
	})
}

func (m *Manager) CreateSeo(ctx context.Context, seo db.SeoSetting) (*db.SeoSetting, error) {
	seo.ID = ""
	created, err := m.db.SeoSettings.Create(ctx, &seo)
	if err != nil {
		return nil, fmt.Errorf("db create seo settings: %w", translate(err))
	}

	return created, nil
}

// SeoSettings lists settings, optionally only those attached to nothing.
func (m *Manager) SeoSettings(ctx context.Context, orphaned *bool, pager db.Pager) ([]db.SeoSetting, int, error) {
	return list(ctx, m.db.SeoSettings, &db.SeoSettingSearch{Orphaned: orphaned},
		pager.Args(db.NewSortField(db.Columns.SeoSetting.CreatedAt, true)))
}

// DeleteOrphanSeo removes settings not attached to any page, procedure or blog post.
func (m *Manager) DeleteOrphanSeo(ctx context.Context) (int, error) {
	orphaned := true
	n, err := m.db.SeoSettings.DeleteMany(ctx, &db.SeoSettingSearch{Orphaned: &orphaned})
	if err != nil {
		return 0, fmt.Errorf("db delete orphan seo settings: %w", err)
	}

	return n, nil
}
