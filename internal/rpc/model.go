package rpc

import (
	"time"

	"github.com/daniilsolovey/clinic-cms/internal/cms"
	"github.com/daniilsolovey/clinic-cms/internal/db"
)

type User struct {
	ID        string    `json:"id"`
	Name      *string   `json:"name,omitempty"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Token struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      User      `json:"user"`
}

type UserInput struct {
	Name     *string `json:"name,omitempty"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=8"`
	Role     string  `json:"role" validate:"omitempty,oneof=ADMIN EDITOR USER"`
}

func (in UserInput) ToModel() db.User {
	return db.User{Name: in.Name, Email: in.Email, Role: db.Role(in.Role)}
}

type UserUpdate struct {
	Name     *string `json:"name,omitempty"`
	Email    string  `json:"email" validate:"omitempty,email"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=8"`
	Role     string  `json:"role" validate:"omitempty,oneof=ADMIN EDITOR USER"`
}

func (in UserUpdate) ToModel(id string) db.User {
	return db.User{ID: id, Name: in.Name, Email: in.Email, Role: db.Role(in.Role)}
}

type UserFilter struct {
	//role optional role filter
	Role *string `json:"role,omitempty" validate:"omitempty,oneof=ADMIN EDITOR USER"`
	//name case-insensitive name substring
	Name *string `json:"name,omitempty"`
}

func (f *UserFilter) ToModel() cms.UserFilter {
	if f == nil {
		return cms.UserFilter{}
	}
	var role *db.Role
	if f.Role != nil {
		r := db.Role(*f.Role)
		role = &r
	}
	return cms.UserFilter{Role: role, NameILike: f.Name}
}

type UserList struct {
	Items []User `json:"items"`
	Count int    `json:"count"`
}

type SeoSettings struct {
	ID              string    `json:"id"`
	MetaTitle       *string   `json:"metaTitle,omitempty"`
	MetaDescription *string   `json:"metaDescription,omitempty"`
	CanonicalURL    *string   `json:"canonicalUrl,omitempty"`
	OgImage         *string   `json:"ogImage,omitempty"`
	NoIndex         bool      `json:"noIndex"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type SeoInput struct {
	MetaTitle       *string `json:"metaTitle,omitempty" validate:"omitempty,max=255"`
	MetaDescription *string `json:"metaDescription,omitempty"`
	CanonicalURL    *string `json:"canonicalUrl,omitempty" validate:"omitempty,url"`
	OgImage         *string `json:"ogImage,omitempty" validate:"omitempty,url"`
	NoIndex         bool    `json:"noIndex"`
}

func (in SeoInput) ToModel() db.SeoSetting {
	return db.SeoSetting{
		MetaTitle:       in.MetaTitle,
		MetaDescription: in.MetaDescription,
		CanonicalURL:    in.CanonicalURL,
		OgImage:         in.OgImage,
		NoIndex:         in.NoIndex,
	}
}

type SeoList struct {
	Items []SeoSettings `json:"items"`
	Count int           `json:"count"`
}

type Page struct {
	ID            string       `json:"id"`
	Slug          string       `json:"slug"`
	Title         string       `json:"title"`
	Content       string       `json:"content"`
	Status        string       `json:"status"`
	PublishedAt   *time.Time   `json:"publishedAt,omitempty"`
	SeoSettingsID *string      `json:"seoSettingsId,omitempty"`
	Seo           *SeoSettings `json:"seo,omitempty"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}

type PageInput struct {
	Slug          string  `json:"slug" validate:"max=255"`
	Title         string  `json:"title" validate:"required,max=255"`
	Content       string  `json:"content"`
	Status        string  `json:"status" validate:"omitempty,oneof=DRAFT PUBLISHED ARCHIVED"`
	SeoSettingsID *string `json:"seoSettingsId,omitempty"`
}

func (in PageInput) ToModel() db.Page {
	return db.Page{
		Slug:          in.Slug,
		Title:         in.Title,
		Content:       in.Content,
		Status:        db.PublishStatus(in.Status),
		SeoSettingsID: in.SeoSettingsID,
	}
}

type PageFilter struct {
	//status optional status filter
	Status *string `json:"status,omitempty" validate:"omitempty,oneof=DRAFT PUBLISHED ARCHIVED"`
	//title case-insensitive title substring
	Title *string `json:"title,omitempty"`
}

func (f *PageFilter) ToModel() cms.PageFilter {
	if f == nil {
		return cms.PageFilter{}
	}
	return cms.PageFilter{Status: statusPtr(f.Status), TitleILike: f.Title}
}

type PageList struct {
	Items []Page `json:"items"`
	Count int    `json:"count"`
}

type Category struct {
	ID          string  `json:"id"`
	Slug        string  `json:"slug"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	PostCount   int     `json:"postCount"`
}

type CategoryInput struct {
	Slug        string  `json:"slug" validate:"max=255"`
	Name        string  `json:"name" validate:"required,max=255"`
	Description *string `json:"description,omitempty"`
}

func (in CategoryInput) ToModel() db.Category {
	return db.Category{Slug: in.Slug, Name: in.Name, Description: in.Description}
}

type BlogPost struct {
	ID            string       `json:"id"`
	Slug          string       `json:"slug"`
	Title         string       `json:"title"`
	Content       string       `json:"content"`
	Excerpt       *string      `json:"excerpt,omitempty"`
	CoverImage    *string      `json:"coverImage,omitempty"`
	Status        string       `json:"status"`
	PublishedAt   *time.Time   `json:"publishedAt,omitempty"`
	AuthorID      string       `json:"authorId"`
	CategoryID    *string      `json:"categoryId,omitempty"`
	Category      *Category    `json:"category,omitempty"`
	SeoSettingsID *string      `json:"seoSettingsId,omitempty"`
	Seo           *SeoSettings `json:"seo,omitempty"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}

type PostInput struct {
	Slug          string  `json:"slug" validate:"max=255"`
	Title         string  `json:"title" validate:"required,max=255"`
	Content       string  `json:"content"`
	Excerpt       *string `json:"excerpt,omitempty"`
	CoverImage    *string `json:"coverImage,omitempty" validate:"omitempty,url"`
	Status        string  `json:"status" validate:"omitempty,oneof=DRAFT PUBLISHED ARCHIVED"`
	CategoryID    *string `json:"categoryId,omitempty"`
	SeoSettingsID *string `json:"seoSettingsId,omitempty"`
}

func (in PostInput) ToModel() db.BlogPost {
	return db.BlogPost{
		Slug:          in.Slug,
		Title:         in.Title,
		Content:       in.Content,
		Excerpt:       in.Excerpt,
		CoverImage:    in.CoverImage,
		Status:        db.PublishStatus(in.Status),
		CategoryID:    in.CategoryID,
		SeoSettingsID: in.SeoSettingsID,
	}
}

type PostFilter struct {
	//status optional status filter
	Status *string `json:"status,omitempty" validate:"omitempty,oneof=DRAFT PUBLISHED ARCHIVED"`
	//categoryId optional category filter
	CategoryID *string `json:"categoryId,omitempty"`
	//authorId optional author filter
	AuthorID *string `json:"authorId,omitempty"`
	//title case-insensitive title substring
	Title *string `json:"title,omitempty"`
}

func (f *PostFilter) ToModel() cms.PostFilter {
	if f == nil {
		return cms.PostFilter{}
	}
	return cms.PostFilter{
		Status:     statusPtr(f.Status),
		CategoryID: f.CategoryID,
		AuthorID:   f.AuthorID,
		TitleILike: f.Title,
	}
}

type PostList struct {
	Items []BlogPost `json:"items"`
	Count int        `json:"count"`
}

type ExpertiseArea struct {
	ID          string  `json:"id"`
	Slug        string  `json:"slug"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Image       *string `json:"image,omitempty"`
}

type AreaInput struct {
	Slug        string  `json:"slug" validate:"max=255"`
	Name        string  `json:"name" validate:"required,max=255"`
	Description string  `json:"description"`
	Image       *string `json:"image,omitempty" validate:"omitempty,url"`
}

func (in AreaInput) ToModel() db.ExpertiseArea {
	return db.ExpertiseArea{Slug: in.Slug, Name: in.Name, Description: in.Description, Image: in.Image}
}

type TreatmentCategory struct {
	ID              string  `json:"id"`
	Slug            string  `json:"slug"`
	Name            string  `json:"name"`
	Description     *string `json:"description,omitempty"`
	ExpertiseAreaID string  `json:"expertiseAreaId"`
}

type TreatmentCategoryInput struct {
	Slug            string  `json:"slug" validate:"max=255"`
	Name            string  `json:"name" validate:"required,max=255"`
	Description     *string `json:"description,omitempty"`
	ExpertiseAreaID string  `json:"expertiseAreaId" validate:"required"`
}

func (in TreatmentCategoryInput) ToModel() db.TreatmentCategory {
	return db.TreatmentCategory{
		Slug:            in.Slug,
		Name:            in.Name,
		Description:     in.Description,
		ExpertiseAreaID: in.ExpertiseAreaID,
	}
}

type ProcedureMethod struct {
	ID          string `json:"id"`
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ProcedureID string `json:"procedureId"`
}

type MethodInput struct {
	Slug        string `json:"slug" validate:"max=255"`
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description"`
	ProcedureID string `json:"procedureId" validate:"required"`
}

func (in MethodInput) ToModel() db.ProcedureMethod {
	return db.ProcedureMethod{Slug: in.Slug, Name: in.Name, Description: in.Description, ProcedureID: in.ProcedureID}
}

type Faq struct {
	ID          string  `json:"id"`
	Question    string  `json:"question"`
	Answer      string  `json:"answer"`
	IsGlobal    bool    `json:"isGlobal"`
	ProcedureID *string `json:"procedureId,omitempty"`
}

type FaqInput struct {
	Question    string  `json:"question" validate:"required"`
	Answer      string  `json:"answer" validate:"required"`
	IsGlobal    bool    `json:"isGlobal"`
	ProcedureID *string `json:"procedureId,omitempty"`
}

func (in FaqInput) ToModel() db.Faq {
	return db.Faq{Question: in.Question, Answer: in.Answer, IsGlobal: in.IsGlobal, ProcedureID: in.ProcedureID}
}

type FaqFilter struct {
	//isGlobal only global or only procedure FAQs
	IsGlobal *bool `json:"isGlobal,omitempty"`
	//procedureId optional procedure filter
	ProcedureID *string `json:"procedureId,omitempty"`
}

func (f *FaqFilter) ToModel() cms.FaqFilter {
	if f == nil {
		return cms.FaqFilter{}
	}
	return cms.FaqFilter{IsGlobal: f.IsGlobal, ProcedureID: f.ProcedureID}
}

type Procedure struct {
	ID                  string            `json:"id"`
	Slug                string            `json:"slug"`
	Name                string            `json:"name"`
	Description         string            `json:"description"`
	Status              string            `json:"status"`
	TreatmentCategoryID string            `json:"treatmentCategoryId"`
	SeoSettingsID       *string           `json:"seoSettingsId,omitempty"`
	Seo                 *SeoSettings      `json:"seo,omitempty"`
	Methods             []ProcedureMethod `json:"methods,omitempty"`
	Faqs                []Faq             `json:"faqs,omitempty"`
	CreatedAt           time.Time         `json:"createdAt"`
	UpdatedAt           time.Time         `json:"updatedAt"`
}

type ProcedureInput struct {
	Slug                string  `json:"slug" validate:"max=255"`
	Name                string  `json:"name" validate:"required,max=255"`
	Description         string  `json:"description"`
	Status              string  `json:"status" validate:"omitempty,oneof=DRAFT PUBLISHED ARCHIVED"`
	TreatmentCategoryID string  `json:"treatmentCategoryId" validate:"required"`
	SeoSettingsID       *string `json:"seoSettingsId,omitempty"`
}

func (in ProcedureInput) ToModel() db.Procedure {
	return db.Procedure{
		Slug:                in.Slug,
		Name:                in.Name,
		Description:         in.Description,
		Status:              db.PublishStatus(in.Status),
		TreatmentCategoryID: in.TreatmentCategoryID,
		SeoSettingsID:       in.SeoSettingsID,
	}
}

type ProcedureFilter struct {
	//status optional status filter
	Status *string `json:"status,omitempty" validate:"omitempty,oneof=DRAFT PUBLISHED ARCHIVED"`
	//treatmentCategoryId optional treatment category filter
	TreatmentCategoryID *string `json:"treatmentCategoryId,omitempty"`
	//expertiseAreaId optional expertise area filter
	ExpertiseAreaID *string `json:"expertiseAreaId,omitempty"`
	//name case-insensitive name substring
	Name *string `json:"name,omitempty"`
}

func (f *ProcedureFilter) ToModel() cms.ProcedureFilter {
	if f == nil {
		return cms.ProcedureFilter{}
	}
	return cms.ProcedureFilter{
		Status:              statusPtr(f.Status),
		TreatmentCategoryID: f.TreatmentCategoryID,
		ExpertiseAreaID:     f.ExpertiseAreaID,
		NameILike:           f.Name,
	}
}

type ProcedureList struct {
	Items []Procedure `json:"items"`
	Count int         `json:"count"`
}

type MenuItem struct {
	ID       string     `json:"id"`
	Label    string     `json:"label"`
	Path     string     `json:"path"`
	Order    int        `json:"order"`
	ParentID *string    `json:"parentId,omitempty"`
	Children []MenuItem `json:"children,omitempty"`
}

type MenuItemInput struct {
	Label    string  `json:"label" validate:"required,max=255"`
	Path     string  `json:"path" validate:"required"`
	Order    int     `json:"order" validate:"min=0"`
	ParentID *string `json:"parentId,omitempty"`
}

func (in MenuItemInput) ToModel() db.MenuItem {
	return db.MenuItem{Label: in.Label, Path: in.Path, Order: in.Order, ParentID: in.ParentID}
}

type Media struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	Alt       *string   `json:"alt,omitempty"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
}

type MediaInput struct {
	URL  string  `json:"url" validate:"required,url"`
	Alt  *string `json:"alt,omitempty"`
	Type string  `json:"type" validate:"required"`
}

func (in MediaInput) ToModel() db.Media {
	return db.Media{URL: in.URL, Alt: in.Alt, Type: in.Type}
}

// UploadInput carries file bytes as standard base64.
type UploadInput struct {
	FileName    string  `json:"fileName" validate:"required"`
	ContentType string  `json:"contentType"`
	Data        string  `json:"data" validate:"required,base64"`
	Alt         *string `json:"alt,omitempty"`
}

type MediaFilter struct {
	//type optional MIME type filter
	Type *string `json:"type,omitempty"`
	//alt case-insensitive alt text substring
	Alt *string `json:"alt,omitempty"`
}

func (f *MediaFilter) ToModel() cms.MediaFilter {
	if f == nil {
		return cms.MediaFilter{}
	}
	return cms.MediaFilter{Type: f.Type, AltILike: f.Alt}
}

type MediaList struct {
	Items []Media `json:"items"`
	Count int     `json:"count"`
}

type Stats struct {
	Pages             map[string]int `json:"pages"`
	Procedures        map[string]int `json:"procedures"`
	BlogPosts         map[string]int `json:"blogPosts"`
	LastPublishedPost *time.Time     `json:"lastPublishedPost,omitempty"`
	Media             int            `json:"media"`
	Users             int            `json:"users"`
}

func statusPtr(s *string) *db.PublishStatus {
	if s == nil {
		return nil
	}
	status := db.PublishStatus(*s)
	return &status
}
