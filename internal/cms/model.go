package cms

import (
	"time"

	"github.com/daniilsolovey/clinic-cms/internal/db"
)

type Page struct {
	db.Page
	HTML string
}

type BlogPost struct {
	db.BlogPost
	HTML string
}

type Procedure struct {
	db.Procedure
	HTML string
}

type ExpertiseArea struct {
	db.ExpertiseArea
	Categories []TreatmentCategory
}

type TreatmentCategory struct {
	db.TreatmentCategory
	Procedures []db.Procedure
}

type Category struct {
	db.Category
	PostCount int
}

type MenuNode struct {
	ID       string
	Label    string
	Path     string
	Order    int
	ParentID *string
	Children []MenuNode
}

// SitemapEntry is a public URL path with its last modification time.
type SitemapEntry struct {
	Path    string
	LastMod time.Time
}

type StatusCounts map[db.PublishStatus]int

type ContentStats struct {
	Pages             StatusCounts
	Procedures        StatusCounts
	BlogPosts         StatusCounts
	LastPublishedPost *time.Time
	Media             int
	Users             int
}

type PageFilter struct {
	Status     *db.PublishStatus
	TitleILike *string
}

type PostFilter struct {
	Status     *db.PublishStatus
	CategoryID *string
	AuthorID   *string
	TitleILike *string
}

type ProcedureFilter struct {
	Status              *db.PublishStatus
	TreatmentCategoryID *string
	ExpertiseAreaID     *string
	NameILike           *string
}

type FaqFilter struct {
	IsGlobal    *bool
	ProcedureID *string
}

type UserFilter struct {
	Role      *db.Role
	NameILike *string
}

type MediaFilter struct {
	Type     *string
	AltILike *string
}
