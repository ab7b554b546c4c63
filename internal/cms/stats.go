package cms

import (
	"context"
	"fmt"
	"time"

	"github.com/daniilsolovey/clinic-cms/internal/db"
)

func statusCounts(rows []db.GroupByRow) StatusCounts {
	counts := make(StatusCounts, len(db.PublishStatuses))
	for _, s := range db.PublishStatuses {
		counts[s] = 0
	}
	for _, r := range rows {
		if s, ok := r.Keys["status"].(string); ok {
			counts[db.PublishStatus(s)] = int(r.Count)
		}
	}

	return counts
}

var byStatus = db.GroupByArgs{By: []string{"status"}, AggregateArgs: db.AggregateArgs{Count: true}}

// Stats summarizes content for the back office dashboard.
func (m *Manager) Stats(ctx context.Context) (*ContentStats, error) {
	var stats ContentStats

	pages, err := m.db.Pages.GroupBy(ctx, nil, byStatus)
	if err != nil {
		return nil, fmt.Errorf("db count pages: %w", err)
	}
	stats.Pages = statusCounts(pages)

	procedures, err := m.db.Procedures.GroupBy(ctx, nil, byStatus)
	if err != nil {
		return nil, fmt.Errorf("db count procedures: %w", err)
	}
	stats.Procedures = statusCounts(procedures)

	posts, err := m.db.BlogPosts.GroupBy(ctx, nil, byStatus)
	if err != nil {
		return nil, fmt.Errorf("db count blog posts: %w", err)
	}
	stats.BlogPosts = statusCounts(posts)

	published := db.StatusPublished
	agg, err := m.db.BlogPosts.Aggregate(ctx, &db.BlogPostSearch{Status: &published},
		db.AggregateArgs{Max: []string{db.Columns.BlogPost.PublishedAt}})
	if err != nil {
		return nil, fmt.Errorf("db aggregate blog posts: %w", err)
	}
	if v, ok := agg.Max[db.Columns.BlogPost.PublishedAt].(string); ok {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			stats.LastPublishedPost = &t
		}
	}

	if stats.Media, err = m.db.Media.Count(ctx, nil); err != nil {
		return nil, fmt.Errorf("db count media: %w", err)
	}
	if stats.Users, err = m.db.Users.Count(ctx, nil); err != nil {
		return nil, fmt.Errorf("db count users: %w", err)
	}

	return &stats, nil
}
