package rest

import (
	"github.com/daniilsolovey/clinic-cms/internal/cms"
	"github.com/daniilsolovey/clinic-cms/internal/db"
)

func NewSeo(s *db.SeoSetting) *Seo {
	if s == nil {
		return nil
	}

	return &Seo{
		MetaTitle:       s.MetaTitle,
		MetaDescription: s.MetaDescription,
		CanonicalURL:    s.CanonicalURL,
		OgImage:         s.OgImage,
		NoIndex:         s.NoIndex,
	}
}

func NewPage(p cms.Page) Page {
	return Page{
		ID:          p.ID,
		Slug:        p.Slug,
		Title:       p.Title,
		HTML:        p.HTML,
		PublishedAt: p.PublishedAt,
		Seo:         NewSeo(p.SeoSetting),
	}
}

func NewMenuItem(n cms.MenuNode) MenuItem {
	return MenuItem{
		ID:       n.ID,
		Label:    n.Label,
		Path:     n.Path,
		Order:    n.Order,
		Children: Map(n.Children, NewMenuItem),
	}
}

func NewExpertiseArea(a db.ExpertiseArea) ExpertiseArea {
	return ExpertiseArea{
		ID:          a.ID,
		Slug:        a.Slug,
		Name:        a.Name,
		Description: a.Description,
		Image:       a.Image,
		Categories:  Map(a.TreatmentCategories, NewTreatmentCategory),
	}
}

func NewExpertiseAreaDetails(a cms.ExpertiseArea) ExpertiseArea {
	area := NewExpertiseArea(a.ExpertiseArea)
	area.Categories = Map(a.Categories, NewTreatmentCategoryDetails)
	return area
}

func NewAreaSummary(a *db.ExpertiseArea) *AreaSummary {
	if a == nil {
		return nil
	}
	return &AreaSummary{ID: a.ID, Slug: a.Slug, Name: a.Name}
}

func NewTreatmentCategory(tc db.TreatmentCategory) TreatmentCategory {
	return TreatmentCategory{
		ID:            tc.ID,
		Slug:          tc.Slug,
		Name:          tc.Name,
		Description:   tc.Description,
		ExpertiseArea: NewAreaSummary(tc.ExpertiseArea),
	}
}

func NewTreatmentCategoryDetails(tc cms.TreatmentCategory) TreatmentCategory {
	category := NewTreatmentCategory(tc.TreatmentCategory)
	category.Procedures = Map(tc.Procedures, NewProcedureSummary)
	return category
}

func NewProcedureSummary(p db.Procedure) ProcedureSummary {
	return ProcedureSummary{ID: p.ID, Slug: p.Slug, Name: p.Name}
}

func NewProcedure(p cms.Procedure) Procedure {
	procedure := Procedure{
		ID:      p.ID,
		Slug:    p.Slug,
		Name:    p.Name,
		HTML:    p.HTML,
		Methods: Map(p.Methods, NewProcedureMethod),
		Faqs:    Map(p.Faqs, NewFaq),
		Seo:     NewSeo(p.SeoSetting),
	}
	if p.TreatmentCategory != nil {
		tc := NewTreatmentCategory(*p.TreatmentCategory)
		procedure.TreatmentCategory = &tc
	}

	return procedure
}

func NewProcedureMethod(m db.ProcedureMethod) ProcedureMethod {
	return ProcedureMethod{ID: m.ID, Slug: m.Slug, Name: m.Name, Description: m.Description}
}

func NewFaq(f db.Faq) Faq {
	return Faq{ID: f.ID, Question: f.Question, Answer: f.Answer, IsGlobal: f.IsGlobal}
}

func NewCategory(c cms.Category) Category {
	return Category{
		ID:          c.ID,
		Slug:        c.Slug,
		Name:        c.Name,
		Description: c.Description,
		PostCount:   c.PostCount,
	}
}

func newCategoryRef(c *db.Category) *Category {
	if c == nil {
		return nil
	}
	return &Category{ID: c.ID, Slug: c.Slug, Name: c.Name, Description: c.Description}
}

func NewPostSummary(p db.BlogPost) PostSummary {
	return PostSummary{
		ID:          p.ID,
		Slug:        p.Slug,
		Title:       p.Title,
		Excerpt:     p.Excerpt,
		CoverImage:  p.CoverImage,
		PublishedAt: p.PublishedAt,
		Category:    newCategoryRef(p.Category),
	}
}

func NewPost(p cms.BlogPost) Post {
	return Post{
		PostSummary: NewPostSummary(p.BlogPost),
		HTML:        p.HTML,
		Seo:         NewSeo(p.SeoSetting),
	}
}
