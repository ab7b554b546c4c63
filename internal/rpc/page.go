package rpc

import (
	"context"

	"github.com/daniilsolovey/clinic-cms/internal/cms"
	"github.com/daniilsolovey/clinic-cms/internal/db"
	"github.com/vmkteam/zenrpc/v2"
)

// PageService manages static pages.
type PageService struct {
	zenrpc.Service
	cms *cms.Manager
}

func NewPageService(manager *cms.Manager) *PageService {
	return &PageService{cms: manager}
}

// Get returns a page of any status with its SEO settings.
//
//zenrpc:id page id
//zenrpc:404 page not found
func (s *PageService) Get(ctx context.Context, id string) (*Page, error) {
	page, err := s.cms.PageByID(ctx, id)
	if err != nil {
		return nil, newError(err)
	}

	return ptr(page, NewPage), nil
}

// List returns pages newest first.
//
//zenrpc:filter optional filters
//zenrpc:page=1 page number (1-based)
//zenrpc:pageSize=20 items per page
func (s *PageService) List(ctx context.Context, filter *PageFilter, page, pageSize *int) (*PageList, error) {
	if filter != nil {
		if err := validateInput(filter); err != nil {
			return nil, err
		}
	}

	pages, count, err := s.cms.Pages(ctx, filter.ToModel(), db.NewPager(page, pageSize))
	if err != nil {
		return nil, newError(err)
	}

	return &PageList{Items: Map(pages, NewPage), Count: count}, nil
}

// Create adds a page. An empty slug is derived from the title, taken slugs get a numeric suffix.
//
//zenrpc:page page fields
//zenrpc:400 invalid params
//zenrpc:409 seo settings already used
func (s *PageService) Create(ctx context.Context, page PageInput) (*Page, error) {
	if err := validateInput(page); err != nil {
		return nil, err
	}

	created, err := s.cms.CreatePage(ctx, page.ToModel())
	if err != nil {
		return nil, newError(err)
	}

	return ptr(created, NewPage), nil
}

// Update saves slug, title and content.
//
//zenrpc:id page id
//zenrpc:page page fields, status and seo are ignored
//zenrpc:404 page not found
//zenrpc:409 slug taken
func (s *PageService) Update(ctx context.Context, id string, page PageInput) (*Page, error) {
	if err := validateInput(page); err != nil {
		return nil, err
	}

	p := page.ToModel()
	p.ID = id
	updated, err := s.cms.UpdatePage(ctx, p)
	if err != nil {
		return nil, newError(err)
	}

	return ptr(updated, NewPage), nil
}

// SetStatus moves the page through the publish workflow.
//
//zenrpc:id page id
//zenrpc:status DRAFT, PUBLISHED or ARCHIVED
//zenrpc:400 transition not allowed
//zenrpc:404 page not found
func (s *PageService) SetStatus(ctx context.Context, id, status string) (*Page, error) {
	page, err := s.cms.SetPageStatus(ctx, id, db.PublishStatus(status))
	if err != nil {
		return nil, newError(err)
	}

	return ptr(page, NewPage), nil
}

// Delete removes the page and its SEO settings.
//
//zenrpc:id page id
//zenrpc:404 page not found
func (s *PageService) Delete(ctx context.Context, id string) (bool, error) {
	if err := s.cms.DeletePage(ctx, id); err != nil {
		return false, newError(err)
	}

	return true, nil
}
