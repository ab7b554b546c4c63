package cms

import (
	"context"
	"fmt"
	"strings"

	"github.com/daniilsolovey/clinic-cms/internal/db"
)

// newestFirst breaks publishedAt ties by id so pages never overlap.
var newestFirst = []db.SortField{
	db.NewSortField(db.Columns.BlogPost.PublishedAt, true),
	db.NewSortField(db.Columns.BlogPost.ID, false),
}

// PublishedPosts returns published posts with their category, newest first.
func (m *Manager) PublishedPosts(ctx context.Context, categoryID *string, pager db.Pager) ([]db.BlogPost, int, error) {
	status := db.StatusPublished
	search := &db.BlogPostSearch{Status: &status, CategoryID: categoryID}

	return list(ctx, m.db.BlogPosts, search, pager.Args(newestFirst...),
		db.WithRelations(db.Columns.BlogPost.Category))
}

// PostBySlug returns a published post with rendered content, or nil.
func (m *Manager) PostBySlug(ctx context.Context, slug string) (*BlogPost, error) {
	status := db.StatusPublished
	post, err := m.db.BlogPosts.FindFirst(ctx,
		&db.BlogPostSearch{Slug: &slug, Status: &status},
		db.WithRelations(db.Columns.BlogPost.Category, db.Columns.BlogPost.SeoSetting),
	)
	if err != nil {
		return nil, fmt.Errorf("db get blog post: %w", err)
	} else if post == nil {
		return nil, nil
	}

	rendered, err := m.Render(post.Content)
	if err != nil {
		return nil, err
	}

	return &BlogPost{BlogPost: *post, HTML: rendered}, nil
}

// Posts returns posts of any status for the back office.
func (m *Manager) Posts(ctx context.Context, filter PostFilter, pager db.Pager) ([]db.BlogPost, int, error) {
	search := &db.BlogPostSearch{
		Status:     filter.Status,
		CategoryID: filter.CategoryID,
		AuthorID:   filter.AuthorID,
		TitleILike: filter.TitleILike,
	}

	return list(ctx, m.db.BlogPosts, search,
		pager.Args(db.NewSortField(db.Columns.BlogPost.CreatedAt, true)),
		db.WithRelations(db.Columns.BlogPost.Category))
}

func (m *Manager) PostByID(ctx context.Context, id string) (*db.BlogPost, error) {
	return findByID(ctx, m.db.BlogPosts, "blog post", id,
		db.WithRelations(db.Columns.BlogPost.Category, db.Columns.BlogPost.SeoSetting))
}

func (m *Manager) checkCategory(ctx context.Context, categoryID *string) error {
	if categoryID == nil {
		return nil
	}
	_, err := findByID(ctx, m.db.Categories, "category", *categoryID)
	return err
}

// fillExcerpt derives a missing excerpt from the content.
func (m *Manager) fillExcerpt(post *db.BlogPost) {
	if post.Excerpt != nil && strings.TrimSpace(*post.Excerpt) != "" {
		return
	}
	if excerpt := m.excerptOf(post.Content); excerpt != "" {
		post.Excerpt = &excerpt
	}
}

// CreatePost creates a post written by authorID.
func (m *Manager) CreatePost(ctx context.Context, authorID string, post db.BlogPost) (*db.BlogPost, error) {
	slug, err := slugFor(post.Slug, post.Title)
	if err != nil {
		return nil, err
	}
	if err := initialStatus(&post.Status, &post.PublishedAt, m.now()); err != nil {
		return nil, err
	}
	post.AuthorID = authorID
	m.fillExcerpt(&post)

	var created *db.BlogPost
	err = m.tx(ctx, func(m *Manager) error {
		if err := m.checkCategory(ctx, post.CategoryID); err != nil {
			return err
		}
		if post.Slug, err = freeSlug(ctx, m.db.BlogPosts, slug); err != nil {
			return err
		}
		if post.SeoSettingsID != nil {
			if err := m.checkSeoFree(ctx, *post.SeoSettingsID, SeoOwnerBlogPost, ""); err != nil {
				return err
			}
		}

		post.ID = ""
		if created, err = m.db.BlogPosts.Create(ctx, &post); err != nil {
			return fmt.Errorf("db create blog post: %w", translate(err))
		}
		return nil
	})

	return created, err
}

// UpdatePost saves slug, title, content, excerpt, cover image and category.
func (m *Manager) UpdatePost(ctx context.Context, post db.BlogPost) (*db.BlogPost, error) {
	current, err := findByID(ctx, m.db.BlogPosts, "blog post", post.ID)
	if err != nil {
		return nil, err
	}
	if err := m.checkCategory(ctx, post.CategoryID); err != nil {
		return nil, err
	}
	if post.Slug != "" {
		if current.Slug, err = slugFor(post.Slug, ""); err != nil {
			return nil, err
		}
	}

	current.Title = post.Title
	current.Content = post.Content
	current.Excerpt = post.Excerpt
	current.CoverImage = post.CoverImage
	current.CategoryID = post.CategoryID
	m.fillExcerpt(current)

	updated, err := m.db.BlogPosts.Update(ctx, current,
		db.Columns.BlogPost.Slug, db.Columns.BlogPost.Title, db.Columns.BlogPost.Content,
		db.Columns.BlogPost.Excerpt, db.Columns.BlogPost.CoverImage, db.Columns.BlogPost.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("db update blog post: %w", translate(err))
	}

	return updated, nil
}

func (m *Manager) SetPostStatus(ctx context.Context, id string, status db.PublishStatus) (*db.BlogPost, error) {
	post, err := findByID(ctx, m.db.BlogPosts, "blog post", id)
	if err != nil {
		return nil, err
	}
	if err := applyStatus(&post.Status, &post.PublishedAt, status, m.now()); err != nil {
		return nil, err
	}

	updated, err := m.db.BlogPosts.Update(ctx, post, db.Columns.BlogPost.Status, db.Columns.BlogPost.PublishedAt)
	if err != nil {
		return nil, fmt.Errorf("db update blog post status: %w", translate(err))
	}

	return updated, nil
}

// DeletePost removes the post together with its SEO settings.
func (m *Manager) DeletePost(ctx context.Context, id string) error {
	return m.tx(ctx, func(m *Manager) error {
		post, err := deleteByID(ctx, m.db.BlogPosts, "blog post", id)
		if err != nil {
			return err
		}

		return m.deleteSeo(ctx, post.SeoSettingsID)
	})
}

// categories

// Categories returns all categories ordered by name with the number of published posts in each.
func (m *Manager) Categories(ctx context.Context) ([]Category, error) {
	list, err := m.db.Categories.FindMany(ctx, nil, db.FindManyArgs{OrderBy: byName})
	if err != nil {
		return nil, fmt.Errorf("db get categories: %w", err)
	}

	status, hasCategory := db.StatusPublished, true
	groups, err := m.db.BlogPosts.GroupBy(ctx,
		&db.BlogPostSearch{Status: &status, HasCategory: &hasCategory},
		db.GroupByArgs{
			By:            []string{db.Columns.BlogPost.CategoryID},
			AggregateArgs: db.AggregateArgs{Count: true},
		})
	if err != nil {
		return nil, fmt.Errorf("db count posts by category: %w", err)
	}

	counts := make(map[string]int, len(groups))
	for _, g := range groups {
		if id, ok := g.Keys[db.Columns.BlogPost.CategoryID].(string); ok {
			counts[id] = int(g.Count)
		}
	}

	result := make([]Category, 0, len(list))
	for _, c := range list {
		result = append(result, Category{Category: c, PostCount: counts[c.ID]})
	}

	return result, nil
}

func (m *Manager) CategoryByID(ctx context.Context, id string) (*db.Category, error) {
	return findByID(ctx, m.db.Categories, "category", id)
}

func (m *Manager) CreateCategory(ctx context.Context, c db.Category) (*db.Category, error) {
	slug, err := slugFor(c.Slug, c.Name)
	if err != nil {
		return nil, err
	}
	if c.Slug, err = freeSlug(ctx, m.db.Categories, slug); err != nil {
		return nil, err
	}

	c.ID = ""
	created, err := m.db.Categories.Create(ctx, &c)
	if err != nil {
		return nil, fmt.Errorf("db create category: %w", translate(err))
	}

	return created, nil
}

func (m *Manager) UpdateCategory(ctx context.Context, c db.Category) (*db.Category, error) {
	current, err := m.CategoryByID(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	if c.Slug != "" {
		if current.Slug, err = slugFor(c.Slug, ""); err != nil {
			return nil, err
		}
	}
	current.Name = c.Name
	current.Description = c.Description

	updated, err := m.db.Categories.Update(ctx, current)
	if err != nil {
		return nil, fmt.Errorf("db update category: %w", translate(err))
	}

	return updated, nil
}

// DeleteCategory removes the category, its posts become uncategorized.
func (m *Manager) DeleteCategory(ctx context.Context, id string) error {
	_, err := deleteByID(ctx, m.db.Categories, "category", id)
	return err
}
