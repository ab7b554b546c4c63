package rpc

import (
	"github.com/daniilsolovey/clinic-cms/internal/cms"
	"github.com/daniilsolovey/clinic-cms/internal/db"
)

func NewUser(u db.User) User {
	return User{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func NewSeoSettings(s db.SeoSetting) SeoSettings {
	return SeoSettings{
		ID:              s.ID,
		MetaTitle:       s.MetaTitle,
		MetaDescription: s.MetaDescription,
		CanonicalURL:    s.CanonicalURL,
		OgImage:         s.OgImage,
		NoIndex:         s.NoIndex,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

func newSeoPtr(s *db.SeoSetting) *SeoSettings {
	if s == nil {
		return nil
	}
	seo := NewSeoSettings(*s)
	return &seo
}

func NewPage(p db.Page) Page {
	return Page{
		ID:            p.ID,
		Slug:          p.Slug,
		Title:         p.Title,
		Content:       p.Content,
		Status:        string(p.Status),
		PublishedAt:   p.PublishedAt,
		SeoSettingsID: p.SeoSettingsID,
		Seo:           newSeoPtr(p.SeoSetting),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func NewCategory(c db.Category) Category {
	return Category{ID: c.ID, Slug: c.Slug, Name: c.Name, Description: c.Description}
}

func NewCategoryWithCount(c cms.Category) Category {
	category := NewCategory(c.Category)
	category.PostCount = c.PostCount
	return category
}

func NewBlogPost(p db.BlogPost) BlogPost {
	post := BlogPost{
		ID:            p.ID,
		Slug:          p.Slug,
		Title:         p.Title,
		Content:       p.Content,
		Excerpt:       p.Excerpt,
		CoverImage:    p.CoverImage,
		Status:        string(p.Status),
		PublishedAt:   p.PublishedAt,
		AuthorID:      p.AuthorID,
		CategoryID:    p.CategoryID,
		SeoSettingsID: p.SeoSettingsID,
		Seo:           newSeoPtr(p.SeoSetting),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
	if p.Category != nil {
		c := NewCategory(*p.Category)
		post.Category = &c
	}

	return post
}

func NewExpertiseArea(a db.ExpertiseArea) ExpertiseArea {
	return ExpertiseArea{ID: a.ID, Slug: a.Slug, Name: a.Name, Description: a.Description, Image: a.Image}
}

func NewTreatmentCategory(c db.TreatmentCategory) TreatmentCategory {
	return TreatmentCategory{
		ID:              c.ID,
		Slug:            c.Slug,
		Name:            c.Name,
		Description:     c.Description,
		ExpertiseAreaID: c.ExpertiseAreaID,
	}
}

func NewProcedureMethod(m db.ProcedureMethod) ProcedureMethod {
	return ProcedureMethod{ID: m.ID, Slug: m.Slug, Name: m.Name, Description: m.Description, ProcedureID: m.ProcedureID}
}

func NewFaq(f db.Faq) Faq {
	return Faq{ID: f.ID, Question: f.Question, Answer: f.Answer, IsGlobal: f.IsGlobal, ProcedureID: f.ProcedureID}
}

func NewProcedure(p db.Procedure) Procedure {
	return Procedure{
		ID:                  p.ID,
		Slug:                p.Slug,
		Name:                p.Name,
		Description:         p.Description,
		Status:              string(p.Status),
		TreatmentCategoryID: p.TreatmentCategoryID,
		SeoSettingsID:       p.SeoSettingsID,
		Seo:                 newSeoPtr(p.SeoSetting),
		Methods:             Map(p.Methods, NewProcedureMethod),
		Faqs:                Map(p.Faqs, NewFaq),
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

func NewMenuItem(m db.MenuItem) MenuItem {
	return MenuItem{ID: m.ID, Label: m.Label, Path: m.Path, Order: m.Order, ParentID: m.ParentID}
}

func NewMenuNode(n cms.MenuNode) MenuItem {
	return MenuItem{
		ID:       n.ID,
		Label:    n.Label,
		Path:     n.Path,
		Order:    n.Order,
		ParentID: n.ParentID,
		Children: Map(n.Children, NewMenuNode),
	}
}

func NewMedia(m db.Media) Media {
	return Media{ID: m.ID, URL: m.URL, Alt: m.Alt, Type: m.Type, CreatedAt: m.CreatedAt}
}

func NewStats(s cms.ContentStats) Stats {
	counts := func(c cms.StatusCounts) map[string]int {
		res := make(map[string]int, len(c))
		for status, n := range c {
			res[string(status)] = n
		}
		return res
	}

	return Stats{
		Pages:             counts(s.Pages),
		Procedures:        counts(s.Procedures),
		BlogPosts:         counts(s.BlogPosts),
		LastPublishedPost: s.LastPublishedPost,
		Media:             s.Media,
		Users:             s.Users,
	}
}
