package db

type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleEditor Role = "EDITOR"
	RoleUser   Role = "USER"
)

// Roles lists every role in ascending privilege order.
var Roles = []Role{RoleUser, RoleEditor, RoleAdmin}

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleEditor, RoleUser:
		return true
	}
	return false
}

type PublishStatus string

const (
	StatusDraft     PublishStatus = "DRAFT"
	StatusPublished PublishStatus = "PUBLISHED"
	StatusArchived  PublishStatus = "ARCHIVED"
)

var PublishStatuses = []PublishStatus{StatusDraft, StatusPublished, StatusArchived}

func (s PublishStatus) IsValid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusArchived:
		return true
	}
	return false
}
