// nolint
//
//lint:file-ignore U1000 ignore unused code, it's generated
package db

import (
	"time"
)

var Columns = struct {
	BlogPost struct {
		ID, Slug, Title, Content, Excerpt, CoverImage, Status, PublishedAt, AuthorID, CategoryID, SeoSettingsID, CreatedAt, UpdatedAt string

		Category, SeoSetting string
	}
	Category struct {
		ID, Slug, Name, Description, CreatedAt, UpdatedAt string

		BlogPosts string
	}
	ExpertiseArea struct {
		ID, Slug, Name, Description, Image, CreatedAt, UpdatedAt string

		TreatmentCategories string
	}
	Faq struct {
		ID, Question, Answer, IsGlobal, ProcedureID, CreatedAt, UpdatedAt string

		Procedure string
	}
	GooseDbVersion struct {
		ID, VersionID, IsApplied, Tstamp string
	}
	Media struct {
		ID, URL, Alt, Type, CreatedAt, UpdatedAt string
	}
	MenuItem struct {
		ID, Label, Path, Order, ParentID, CreatedAt, UpdatedAt string

		Parent, Children string
	}
	Page struct {
		ID, Slug, Title, Content, Status, PublishedAt, SeoSettingsID, CreatedAt, UpdatedAt string

		SeoSetting string
	}
	Procedure struct {
		ID, Slug, Name, Description, Status, TreatmentCategoryID, SeoSettingsID, CreatedAt, UpdatedAt string

		TreatmentCategory, SeoSetting, Methods, Faqs string
	}
	ProcedureMethod struct {
		ID, Slug, Name, Description, ProcedureID, CreatedAt, UpdatedAt string

		Procedure string
	}
	SeoSetting struct {
		ID, MetaTitle, MetaDescription, CanonicalURL, OgImage, NoIndex, CreatedAt, UpdatedAt string

		Page, Procedure, BlogPost string
	}
	TreatmentCategory struct {
		ID, Slug, Name, Description, ExpertiseAreaID, CreatedAt, UpdatedAt string

		ExpertiseArea, Procedures string
	}
	User struct {
		ID, Name, Email, Password, Role, CreatedAt, UpdatedAt string
	}
}{
	BlogPost: struct {
		ID, Slug, Title, Content, Excerpt, CoverImage, Status, PublishedAt, AuthorID, CategoryID, SeoSettingsID, CreatedAt, UpdatedAt string

		Category, SeoSetting string
	}{
		ID:            "id",
		Slug:          "slug",
		Title:         "title",
		Content:       "content",
		Excerpt:       "excerpt",
		CoverImage:    "coverImage",
		Status:        "status",
		PublishedAt:   "publishedAt",
		AuthorID:      "authorId",
		CategoryID:    "categoryId",
		SeoSettingsID: "seoSettingsId",
		CreatedAt:     "createdAt",
		UpdatedAt:     "updatedAt",

		Category:   "Category",
		SeoSetting: "SeoSetting",
	},
	Category: struct {
		ID, Slug, Name, Description, CreatedAt, UpdatedAt string

		BlogPosts string
	}{
		ID:          "id",
		Slug:        "slug",
		Name:        "name",
		Description: "description",
		CreatedAt:   "createdAt",
		UpdatedAt:   "updatedAt",

		BlogPosts: "BlogPosts",
	},
	ExpertiseArea: struct {
		ID, Slug, Name, Description, Image, CreatedAt, UpdatedAt string

		TreatmentCategories string
	}{
		ID:          "id",
		Slug:        "slug",
		Name:        "name",
		Description: "description",
		Image:       "image",
		CreatedAt:   "createdAt",
		UpdatedAt:   "updatedAt",

		TreatmentCategories: "TreatmentCategories",
	},
	Faq: struct {
		ID, Question, Answer, IsGlobal, ProcedureID, CreatedAt, UpdatedAt string

		Procedure string
	}{
		ID:          "id",
		Question:    "question",
		Answer:      "answer",
		IsGlobal:    "isGlobal",
		ProcedureID: "procedureId",
		CreatedAt:   "createdAt",
		UpdatedAt:   "updatedAt",

		Procedure: "Procedure",
	},
	GooseDbVersion: struct {
		ID, VersionID, IsApplied, Tstamp string
	}{
		ID:        "id",
		VersionID: "version_id",
		IsApplied: "is_applied",
		Tstamp:    "tstamp",
	},
	Media: struct {
		ID, URL, Alt, Type, CreatedAt, UpdatedAt string
	}{
		ID:        "id",
		URL:       "url",
		Alt:       "alt",
		Type:      "type",
		CreatedAt: "createdAt",
		UpdatedAt: "updatedAt",
	},
	MenuItem: struct {
		ID, Label, Path, Order, ParentID, CreatedAt, UpdatedAt string

		Parent, Children string
	}{
		ID:        "id",
		Label:     "label",
		Path:      "path",
		Order:     "order",
		ParentID:  "parentId",
		CreatedAt: "createdAt",
		UpdatedAt: "updatedAt",

		Parent:   "Parent",
		Children: "Children",
	},
	Page: struct {
		ID, Slug, Title, Content, Status, PublishedAt, SeoSettingsID, CreatedAt, UpdatedAt string

		SeoSetting string
	}{
		ID:            "id",
		Slug:          "slug",
		Title:         "title",
		Content:       "content",
		Status:        "status",
		PublishedAt:   "publishedAt",
		SeoSettingsID: "seoSettingsId",
		CreatedAt:     "createdAt",
		UpdatedAt:     "updatedAt",

		SeoSetting: "SeoSetting",
	},
	Procedure: struct {
		ID, Slug, Name, Description, Status, TreatmentCategoryID, SeoSettingsID, CreatedAt, UpdatedAt string

		TreatmentCategory, SeoSetting, Methods, Faqs string
	}{
		ID:                  "id",
		Slug:                "slug",
		Name:                "name",
		Description:         "description",
		Status:              "status",
		TreatmentCategoryID: "treatmentCategoryId",
		SeoSettingsID:       "seoSettingsId",
		CreatedAt:           "createdAt",
		UpdatedAt:           "updatedAt",

		TreatmentCategory: "TreatmentCategory",
		SeoSetting:        "SeoSetting",
		Methods:           "Methods",
		Faqs:              "Faqs",
	},
	ProcedureMethod: struct {
		ID, Slug, Name, Description, ProcedureID, CreatedAt, UpdatedAt string

		Procedure string
	}{
		ID:          "id",
		Slug:        "slug",
		Name:        "name",
		Description: "description",
		ProcedureID: "procedureId",
		CreatedAt:   "createdAt",
		UpdatedAt:   "updatedAt",

		Procedure: "Procedure",
	},
	SeoSetting: struct {
		ID, MetaTitle, MetaDescription, CanonicalURL, OgImage, NoIndex, CreatedAt, UpdatedAt string

		Page, Procedure, BlogPost string
	}{
		ID:              "id",
		MetaTitle:       "metaTitle",
		MetaDescription: "metaDescription",
		CanonicalURL:    "canonicalUrl",
		OgImage:         "ogImage",
		NoIndex:         "noIndex",
		CreatedAt:       "createdAt",
		UpdatedAt:       "updatedAt",

		Page:      "Page",
		Procedure: "Procedure",
		BlogPost:  "BlogPost",
	},
	TreatmentCategory: struct {
		ID, Slug, Name, Description, ExpertiseAreaID, CreatedAt, UpdatedAt string

		ExpertiseArea, Procedures string
	}{
		ID:              "id",
		Slug:            "slug",
		Name:            "name",
		Description:     "description",
		ExpertiseAreaID: "expertiseAreaId",
		CreatedAt:       "createdAt",
		UpdatedAt:       "updatedAt",

		ExpertiseArea: "ExpertiseArea",
		Procedures:    "Procedures",
	},
	User: struct {
		ID, Name, Email, Password, Role, CreatedAt, UpdatedAt string
	}{
		ID:        "id",
		Name:      "name",
		Email:     "email",
		Password:  "password",
		Role:      "role",
		CreatedAt: "createdAt",
		UpdatedAt: "updatedAt",
	},
}

var Tables = struct {
	BlogPost struct {
		Name, Alias string
	}
	Category struct {
		Name, Alias string
	}
	ExpertiseArea struct {
		Name, Alias string
	}
	Faq struct {
		Name, Alias string
	}
	GooseDbVersion struct {
		Name string
	}
	Media struct {
		Name, Alias string
	}
	MenuItem struct {
		Name, Alias string
	}
	Page struct {
		Name, Alias string
	}
	Procedure struct {
		Name, Alias string
	}
	ProcedureMethod struct {
		Name, Alias string
	}
	SeoSetting struct {
		Name, Alias string
	}
	TreatmentCategory struct {
		Name, Alias string
	}
	User struct {
		Name, Alias string
	}
}{
	BlogPost: struct {
		Name, Alias string
	}{
		Name:  "blogPosts",
		Alias: "t",
	},
	Category: struct {
		Name, Alias string
	}{
		Name:  "categories",
		Alias: "t",
	},
	ExpertiseArea: struct {
		Name, Alias string
	}{
		Name:  "expertiseAreas",
		Alias: "t",
	},
	Faq: struct {
		Name, Alias string
	}{
		Name:  "faqs",
		Alias: "t",
	},
	GooseDbVersion: struct {
		Name string
	}{
		Name: "goose_db_version",
	},
	Media: struct {
		Name, Alias string
	}{
		Name:  "media",
		Alias: "t",
	},
	MenuItem: struct {
		Name, Alias string
	}{
		Name:  "menuItems",
		Alias: "t",
	},
	Page: struct {
		Name, Alias string
	}{
		Name:  "pages",
		Alias: "t",
	},
	Procedure: struct {
		Name, Alias string
	}{
		Name:  "procedures",
		Alias: "t",
	},
	ProcedureMethod: struct {
		Name, Alias string
	}{
		Name:  "procedureMethods",
		Alias: "t",
	},
	SeoSetting: struct {
		Name, Alias string
	}{
		Name:  "seoSettings",
		Alias: "t",
	},
	TreatmentCategory: struct {
		Name, Alias string
	}{
		Name:  "treatmentCategories",
		Alias: "t",
	},
	User: struct {
		Name, Alias string
	}{
		Name:  "users",
		Alias: "t",
	},
}

type BlogPost struct {
	tableName struct{} `pg:"blogPosts,alias:t,discard_unknown_columns"`

	ID            string        `pg:"id,pk"`
	Slug          string        `pg:"slug,use_zero"`
	Title         string        `pg:"title,use_zero"`
	Content       string        `pg:"content,use_zero"`
	Excerpt       *string       `pg:"excerpt"`
	CoverImage    *string       `pg:"coverImage"`
	Status        PublishStatus `pg:"status,use_zero"`
	PublishedAt   *time.Time    `pg:"publishedAt"`
	AuthorID      string        `pg:"authorId,use_zero"`
	CategoryID    *string       `pg:"categoryId"`
	SeoSettingsID *string       `pg:"seoSettingsId"`
	CreatedAt     time.Time     `pg:"createdAt,use_zero"`
	UpdatedAt     time.Time     `pg:"updatedAt,use_zero"`

	Category   *Category   `pg:"fk:categoryId,rel:has-one"`
	SeoSetting *SeoSetting `pg:"fk:seoSettingsId,rel:has-one"`
}

type Category struct {
	tableName struct{} `pg:"categories,alias:t,discard_unknown_columns"`

	ID          string    `pg:"id,pk"`
	Slug        string    `pg:"slug,use_zero"`
	Name        string    `pg:"name,use_zero"`
	Description *string   `pg:"description"`
	CreatedAt   time.Time `pg:"createdAt,use_zero"`
	UpdatedAt   time.Time `pg:"updatedAt,use_zero"`

	BlogPosts []BlogPost `pg:"rel:has-many,join_fk:categoryId"`
}

type ExpertiseArea struct {
	tableName struct{} `pg:"expertiseAreas,alias:t,discard_unknown_columns"`

	ID          string    `pg:"id,pk"`
	Slug        string    `pg:"slug,use_zero"`
	Name        string    `pg:"name,use_zero"`
	Description string    `pg:"description,use_zero"`
	Image       *string   `pg:"image"`
	CreatedAt   time.Time `pg:"createdAt,use_zero"`
	UpdatedAt   time.Time `pg:"updatedAt,use_zero"`

	TreatmentCategories []TreatmentCategory `pg:"rel:has-many,join_fk:expertiseAreaId"`
}

type Faq struct {
	tableName struct{} `pg:"faqs,alias:t,discard_unknown_columns"`

	ID          string    `pg:"id,pk"`
	Question    string    `pg:"question,use_zero"`
	Answer      string    `pg:"answer,use_zero"`
	IsGlobal    bool      `pg:"isGlobal,use_zero"`
	ProcedureID *string   `pg:"procedureId"`
	CreatedAt   time.Time `pg:"createdAt,use_zero"`
	UpdatedAt   time.Time `pg:"updatedAt,use_zero"`

	Procedure *Procedure `pg:"fk:procedureId,rel:has-one"`
}

type GooseDbVersion struct {
	tableName struct{} `pg:"goose_db_version,discard_unknown_columns"`

	ID        int       `pg:"id,pk"`
	VersionID int64     `pg:"version_id,use_zero"`
	IsApplied bool      `pg:"is_applied,use_zero"`
	Tstamp    time.Time `pg:"tstamp,use_zero"`
}

type Media struct {
	tableName struct{} `pg:"media,alias:t,discard_unknown_columns"`

	ID        string    `pg:"id,pk"`
	URL       string    `pg:"url,use_zero"`
	Alt       *string   `pg:"alt"`
	Type      string    `pg:"type,use_zero"`
	CreatedAt time.Time `pg:"createdAt,use_zero"`
	UpdatedAt time.Time `pg:"updatedAt,use_zero"`
}

type MenuItem struct {
	tableName struct{} `pg:"menuItems,alias:t,discard_unknown_columns"`

	ID        string    `pg:"id,pk"`
	Label     string    `pg:"label,use_zero"`
	Path      string    `pg:"path,use_zero"`
	Order     int       `pg:"order,use_zero"`
	ParentID  *string   `pg:"parentId"`
	CreatedAt time.Time `pg:"createdAt,use_zero"`
	UpdatedAt time.Time `pg:"updatedAt,use_zero"`

	Parent   *MenuItem  `pg:"fk:parentId,rel:has-one"`
	Children []MenuItem `pg:"rel:has-many,join_fk:parentId"`
}

type Page struct {
	tableName struct{} `pg:"pages,alias:t,discard_unknown_columns"`

	ID            string        `pg:"id,pk"`
	Slug          string        `pg:"slug,use_zero"`
	Title         string        `pg:"title,use_zero"`
	Content       string        `pg:"content,use_zero"`
	Status        PublishStatus `pg:"status,use_zero"`
	PublishedAt   *time.Time    `pg:"publishedAt"`
	SeoSettingsID *string       `pg:"seoSettingsId"`
	CreatedAt     time.Time     `pg:"createdAt,use_zero"`
	UpdatedAt     time.Time     `pg:"updatedAt,use_zero"`

	SeoSetting *SeoSetting `pg:"fk:seoSettingsId,rel:has-one"`
}

type Procedure struct {
	tableName struct{} `pg:"procedures,alias:t,discard_unknown_columns"`

	ID                  string        `pg:"id,pk"`
	Slug                string        `pg:"slug,use_zero"`
	Name                string        `pg:"name,use_zero"`
	Description         string        `pg:"description,use_zero"`
	Status              PublishStatus `pg:"status,use_zero"`
	TreatmentCategoryID string        `pg:"treatmentCategoryId,use_zero"`
	SeoSettingsID       *string       `pg:"seoSettingsId"`
	CreatedAt           time.Time     `pg:"createdAt,use_zero"`
	UpdatedAt           time.Time     `pg:"updatedAt,use_zero"`

	TreatmentCategory *TreatmentCategory `pg:"fk:treatmentCategoryId,rel:has-one"`
	SeoSetting        *SeoSetting        `pg:"fk:seoSettingsId,rel:has-one"`
	Methods           []ProcedureMethod  `pg:"rel:has-many,join_fk:procedureId"`
	Faqs              []Faq              `pg:"rel:has-many,join_fk:procedureId"`
}

type ProcedureMethod struct {
	tableName struct{} `pg:"procedureMethods,alias:t,discard_unknown_columns"`

	ID          string    `pg:"id,pk"`
	Slug        string    `pg:"slug,use_zero"`
	Name        string    `pg:"name,use_zero"`
	Description string    `pg:"description,use_zero"`
	ProcedureID string    `pg:"procedureId,use_zero"`
	CreatedAt   time.Time `pg:"createdAt,use_zero"`
	UpdatedAt   time.Time `pg:"updatedAt,use_zero"`

	Procedure *Procedure `pg:"fk:procedureId,rel:has-one"`
}

type SeoSetting struct {
	tableName struct{} `pg:"seoSettings,alias:t,discard_unknown_columns"`

	ID              string    `pg:"id,pk"`
	MetaTitle       *string   `pg:"metaTitle"`
	MetaDescription *string   `pg:"metaDescription"`
	CanonicalURL    *string   `pg:"canonicalUrl"`
	OgImage         *string   `pg:"ogImage"`
	NoIndex         bool      `pg:"noIndex,use_zero"`
	CreatedAt       time.Time `pg:"createdAt,use_zero"`
	UpdatedAt       time.Time `pg:"updatedAt,use_zero"`

	Page      *Page      `pg:"rel:belongs-to,join_fk:seoSettingsId"`
	Procedure *Procedure `pg:"rel:belongs-to,join_fk:seoSettingsId"`
	BlogPost  *BlogPost  `pg:"rel:belongs-to,join_fk:seoSettingsId"`
}

type TreatmentCategory struct {
	tableName struct{} `pg:"treatmentCategories,alias:t,discard_unknown_columns"`

	ID              string    `pg:"id,pk"`
	Slug            string    `pg:"slug,use_zero"`
	Name            string    `pg:"name,use_zero"`
	Description     *string   `pg:"description"`
	ExpertiseAreaID string    `pg:"expertiseAreaId,use_zero"`
	CreatedAt       time.Time `pg:"createdAt,use_zero"`
	UpdatedAt       time.Time `pg:"updatedAt,use_zero"`

	ExpertiseArea *ExpertiseArea `pg:"fk:expertiseAreaId,rel:has-one"`
	Procedures    []Procedure    `pg:"rel:has-many,join_fk:treatmentCategoryId"`
}

type User struct {
	tableName struct{} `pg:"users,alias:t,discard_unknown_columns"`

	ID        string    `pg:"id,pk"`
	Name      *string   `pg:"name"`
	Email     string    `pg:"email,use_zero"`
	Password  string    `pg:"password,use_zero"`
	Role      Role      `pg:"role,use_zero"`
	CreatedAt time.Time `pg:"createdAt,use_zero"`
	UpdatedAt time.Time `pg:"updatedAt,use_zero"`
}
