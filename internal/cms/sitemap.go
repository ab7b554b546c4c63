package cms

import (
	"context"
	"fmt"
	"sort"

	"github.com/daniilsolovey/clinic-cms/internal/db"
)

// indexable excludes rows whose SEO settings ask search engines not to index them.
var indexable = db.Not(db.Raw(
	`EXISTS (SELECT 1 FROM "seoSettings" AS s WHERE s."id" = "t"."seoSettingsId" AND s."noIndex")`,
))

// Sitemap lists public paths of published, indexable pages, procedures and blog posts.
func (m *Manager) Sitemap(ctx context.Context) ([]SitemapEntry, error) {
	status := db.StatusPublished
	var entries []SitemapEntry

	pageSearch := &db.PageSearch{Status: &status}
	pageSearch.Where(indexable)
	pages, err := m.db.Pages.FindMany(ctx, pageSearch, db.FindManyArgs{},
		db.WithColumns(db.Columns.Page.ID, db.Columns.Page.Slug, db.Columns.Page.UpdatedAt))
	if err != nil {
		return nil, fmt.Errorf("db get sitemap pages: %w", err)
	}
	for _, p := range pages {
		entries = append(entries, SitemapEntry{Path: "/" + p.Slug, LastMod: p.UpdatedAt})
	}

	procSearch := &db.ProcedureSearch{Status: &status}
	procSearch.Where(indexable)
	procedures, err := m.db.Procedures.FindMany(ctx, procSearch, db.FindManyArgs{},
		db.WithColumns(db.Columns.Procedure.ID, db.Columns.Procedure.Slug, db.Columns.Procedure.UpdatedAt))
	if err != nil {
		return nil, fmt.Errorf("db get sitemap procedures: %w", err)
	}
	for _, p := range procedures {
		entries = append(entries, SitemapEntry{Path: "/procedures/" + p.Slug, LastMod: p.UpdatedAt})
	}

	postSearch := &db.BlogPostSearch{Status: &status}
	postSearch.Where(indexable)
	posts, err := m.db.BlogPosts.FindMany(ctx, postSearch, db.FindManyArgs{},
		db.WithColumns(db.Columns.BlogPost.ID, db.Columns.BlogPost.Slug, db.Columns.BlogPost.UpdatedAt))
	if err != nil {
		return nil, fmt.Errorf("db get sitemap posts: %w", err)
	}
	for _, p := range posts {
		entries = append(entries, SitemapEntry{Path: "/blog/" + p.Slug, LastMod: p.UpdatedAt})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })
	return entries, nil
}
