package rpc

import (
	"context"
	"net/http"

	"github.com/daniilsolovey/clinic-cms/internal/cms"
	"github.com/daniilsolovey/clinic-cms/internal/db"
	"github.com/vmkteam/zenrpc/v2"
)

// SeoService manages SEO settings of pages, procedures and blog posts.
// A settings row belongs to at most one owner.
type SeoService struct {
	zenrpc.Service
	cms *cms.Manager
}

func NewSeoService(manager *cms.Manager) *SeoService {
	return &SeoService{cms: manager}
}

func seoOwner(owner string) (cms.SeoOwner, error) {
	o := cms.SeoOwner(owner)
	if !o.IsValid() {
		return "", zenrpc.NewStringError(http.StatusBadRequest, "owner must be page, procedure or blogPost")
	}
	return o, nil
}

// Get returns the owner's settings or null.
//
//zenrpc:owner page, procedure or blogPost
//zenrpc:ownerId owner id
func (s *SeoService) Get(ctx context.Context, owner, ownerId string) (*SeoSettings, error) {
	o, err := seoOwner(owner)
	if err != nil {
		return nil, err
	}

	seo, err := s.cms.SeoFor(ctx, o, ownerId)
	if err != nil {
		return nil, newError(err)
	}

	return ptr(seo, NewSeoSettings), nil
}

// Upsert updates the owner's settings, creating and attaching them if missing.
//
//zenrpc:owner page, procedure or blogPost
//zenrpc:ownerId owner id
//zenrpc:seo settings fields
func (s *SeoService) Upsert(ctx context.Context, owner, ownerId string, seo SeoInput) (*SeoSettings, error) {
	o, err := seoOwner(owner)
	if err != nil {
		return nil, err
	}
	if err := validateInput(seo); err != nil {
		return nil, err
	}

	saved, err := s.cms.UpsertSeo(ctx, o, ownerId, seo.ToModel())
	if err != nil {
		return nil, newError(err)
	}

	return ptr(saved, NewSeoSettings), nil
}

// Attach links existing settings to the owner.
//
//zenrpc:owner page, procedure or blogPost
//zenrpc:ownerId owner id
//zenrpc:seoId settings id
//zenrpc:409 settings are used by another owner
func (s *SeoService) Attach(ctx context.Context, owner, ownerId, seoId string) (bool, error) {
	o, err := seoOwner(owner)
	if err != nil {
		return false, err
	}

	if err := s.cms.AttachSeo(ctx, o, ownerId, seoId); err != nil {
		return false, newError(err)
	}

	return true, nil
}

// Detach unlinks the owner's settings and deletes them when remove is set.
//
//zenrpc:owner page, procedure or blogPost
//zenrpc:ownerId owner id
//zenrpc:remove delete the settings too
func (s *SeoService) Detach(ctx context.Context, owner, ownerId string, remove bool) (bool, error) {
	o, err := seoOwner(owner)
	if err != nil {
		return false, err
	}

	if err := s.cms.DetachSeo(ctx, o, ownerId, remove); err != nil {
		return false, newError(err)
	}

	return true, nil
}

//zenrpc:orphaned only settings attached to nothing
//zenrpc:page=1 page number (1-based)
//zenrpc:pageSize=20 items per page
func (s *SeoService) List(ctx context.Context, orphaned *bool, page, pageSize *int) (*SeoList, error) {
	list, count, err := s.cms.SeoSettings(ctx, orphaned, db.NewPager(page, pageSize))
	if err != nil {
		return nil, newError(err)
	}

	return &SeoList{Items: Map(list, NewSeoSettings), Count: count}, nil
}

// Create adds unattached settings.
//
//zenrpc:seo settings fields
func (s *SeoService) Create(ctx context.Context, seo SeoInput) (*SeoSettings, error) {
	if err := validateInput(seo); err != nil {
		return nil, err
	}

	created, err := s.cms.CreateSeo(ctx, seo.ToModel())
	if err != nil {
		return nil, newError(err)
	}

	return ptr(created, NewSeoSettings), nil
}

// DeleteOrphans removes settings attached to nothing and returns their number.
func (s *SeoService) DeleteOrphans(ctx context.Context) (int, error) {
	n, err := s.cms.DeleteOrphanSeo(ctx)
	if err != nil {
		return 0, newError(err)
	}

	return n, nil
}
