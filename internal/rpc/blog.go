package rpc

import (
	"context"

	"github.com/daniilsolovey/clinic-cms/internal/auth"
	"github.com/daniilsolovey/clinic-cms/internal/cms"
	"github.com/daniilsolovey/clinic-cms/internal/db"
	"github.com/vmkteam/zenrpc/v2"
)

// BlogService manages blog posts and their categories.
type BlogService struct {
	zenrpc.Service
	cms *cms.Manager
}

func NewBlogService(manager *cms.Manager) *BlogService {
	return &BlogService{cms: manager}
}

// Get returns a post of any status.
//
//zenrpc:id post id
//zenrpc:404 post not found
func (s *BlogService) Get(ctx context.Context, id string) (*BlogPost, error) {
	post, err := s.cms.PostByID(ctx, id)
	if err != nil {
		return nil, newError(err)
	}

	return ptr(post, NewBlogPost), nil
}

// List returns posts newest first.
//
//zenrpc:filter optional filters
//zenrpc:page=1 page number (1-based)
//zenrpc:pageSize=20 items per page
func (s *BlogService) List(ctx context.Context, filter *PostFilter, page, pageSize *int) (*PostList, error) {
	if filter != nil {
		if err := validateInput(filter); err != nil {
			return nil, err
		}
	}

	posts, count, err := s.cms.Posts(ctx, filter.ToModel(), db.NewPager(page, pageSize))
	if err != nil {
		return nil, newError(err)
	}

	return &PostList{Items: Map(posts, NewBlogPost), Count: count}, nil
}

// Create adds a post authored by the caller. A missing excerpt is taken from the content.
//
//zenrpc:post post fields
//zenrpc:400 invalid params
//zenrpc:404 category not found
func (s *BlogService) Create(ctx context.Context, post PostInput) (*BlogPost, error) {
	if err := validateInput(post); err != nil {
		return nil, err
	}

	var authorID string
	if u := auth.FromContext(ctx); u != nil {
		authorID = u.ID
	}

	created, err := s.cms.CreatePost(ctx, authorID, post.ToModel())
	if err != nil {
		return nil, newError(err)
	}

	return ptr(created, NewBlogPost), nil
}

//zenrpc:id post id
//zenrpc:post post fields, status and seo are ignored
//zenrpc:409 slug taken
func (s *BlogService) Update(ctx context.Context, id string, post PostInput) (*BlogPost, error) {
	if err := validateInput(post); err != nil {
		return nil, err
	}

	p := post.ToModel()
	p.ID = id
	updated, err := s.cms.UpdatePost(ctx, p)
	if err != nil {
		return nil, newError(err)
	}

	return ptr(updated, NewBlogPost), nil
}

//zenrpc:id post id
//zenrpc:status DRAFT, PUBLISHED or ARCHIVED
//zenrpc:400 transition not allowed
func (s *BlogService) SetStatus(ctx context.Context, id, status string) (*BlogPost, error) {
	post, err := s.cms.SetPostStatus(ctx, id, db.PublishStatus(status))
	if err != nil {
		return nil, newError(err)
	}

	return ptr(post, NewBlogPost), nil
}

//zenrpc:id post id
func (s *BlogService) Delete(ctx context.Context, id string) (bool, error) {
	if err := s.cms.DeletePost(ctx, id); err != nil {
		return false, newError(err)
	}

	return true, nil
}

// ListCategories returns all categories with the number of published posts.
func (s *BlogService) ListCategories(ctx context.Context) ([]Category, error) {
	categories, err := s.cms.Categories(ctx)
	if err != nil {
		return nil, newError(err)
	}

	return Map(categories, NewCategoryWithCount), nil
}

//zenrpc:id category id
func (s *BlogService) GetCategory(ctx context.Context, id string) (*Category, error) {
	c, err := s.cms.CategoryByID(ctx, id)
	if err != nil {
		return nil, newError(err)
	}

	return ptr(c, NewCategory), nil
}

//zenrpc:category category fields
func (s *BlogService) CreateCategory(ctx context.Context, category CategoryInput) (*Category, error) {
	if err := validateInput(category); err != nil {
		return nil, err
	}

	c, err := s.cms.CreateCategory(ctx, category.ToModel())
	if err != nil {
		return nil, newError(err)
	}

	return ptr(c, NewCategory), nil
}

//zenrpc:id category id
//zenrpc:category category fields
func (s *BlogService) UpdateCategory(ctx context.Context, id string, category CategoryInput) (*Category, error) {
	if err := validateInput(category); err != nil {
		return nil, err
	}

	in := category.ToModel()
	in.ID = id
	c, err := s.cms.UpdateCategory(ctx, in)
	if err != nil {
		return nil, newError(err)
	}

	return ptr(c, NewCategory), nil
}

// DeleteCategory removes the category, its posts become uncategorized.
//
//zenrpc:id category id
func (s *BlogService) DeleteCategory(ctx context.Context, id string) (bool, error) {
	if err := s.cms.DeleteCategory(ctx, id); err != nil {
		return false, newError(err)
	}

	return true, nil
}
