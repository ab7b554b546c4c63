package rest

import "time"

type Seo struct {
	MetaTitle       *string `json:"metaTitle,omitempty"`
	MetaDescription *string `json:"metaDescription,omitempty"`
	CanonicalURL    *string `json:"canonicalUrl,omitempty"`
	OgImage         *string `json:"ogImage,omitempty"`
	NoIndex         bool    `json:"noIndex"`
}

type Page struct {
	ID          string     `json:"id"`
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	HTML        string     `json:"html"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	Seo         *Seo       `json:"seo,omitempty"`
}

type MenuItem struct {
	ID       string     `json:"id"`
	Label    string     `json:"label"`
	Path     string     `json:"path"`
	Order    int        `json:"order"`
	Children []MenuItem `json:"children"`
}

type ExpertiseArea struct {
	ID          string              `json:"id"`
	Slug        string              `json:"slug"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Image       *string             `json:"image,omitempty"`
	Categories  []TreatmentCategory `json:"categories"`
}

type TreatmentCategory struct {
	ID            string             `json:"id"`
	Slug          string             `json:"slug"`
	Name          string             `json:"name"`
	Description   *string            `json:"description,omitempty"`
	ExpertiseArea *AreaSummary       `json:"expertiseArea,omitempty"`
	Procedures    []ProcedureSummary `json:"procedures,omitempty"`
}

type AreaSummary struct {
	ID   string `json:"id"`
	Slug string `json:"slug"`
	Name string `json:"name"`
}

type ProcedureSummary struct {
	ID   string `json:"id"`
	Slug string `json:"slug"`
	Name string `json:"name"`
}

type Procedure struct {
	ID                string             `json:"id"`
	Slug              string             `json:"slug"`
	Name              string             `json:"name"`
	HTML              string             `json:"html"`
	TreatmentCategory *TreatmentCategory `json:"treatmentCategory,omitempty"`
	Methods           []ProcedureMethod  `json:"methods"`
	Faqs              []Faq              `json:"faqs"`
	Seo               *Seo               `json:"seo,omitempty"`
}

type ProcedureMethod struct {
	ID          string `json:"id"`
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Faq struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	IsGlobal bool   `json:"isGlobal"`
}

type Category struct {
	ID          string  `json:"id"`
	Slug        string  `json:"slug"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	PostCount   int     `json:"postCount"`
}

// PostSummary is a blog post without content, for lists.
type PostSummary struct {
	ID          string     `json:"id"`
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Excerpt     *string    `json:"excerpt,omitempty"`
	CoverImage  *string    `json:"coverImage,omitempty"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	Category    *Category  `json:"category,omitempty"`
}

type Post struct {
	PostSummary
	HTML string `json:"html"`
	Seo  *Seo   `json:"seo,omitempty"`
}

type PostList struct {
	Posts    []PostSummary `json:"posts"`
	Total    int           `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"pageSize"`
}
