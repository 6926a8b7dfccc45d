package models

import (
	"time"

	"github.com/google/uuid"
)

// WikiPage is a node in the wiki forest. ParentID is nil for roots.
// A page scoped to a project (ProjectID set) and not public is visible only
// to team members assigned to that project.
type WikiPage struct {
	ID           uuid.UUID  `json:"id"`
	Slug         string     `json:"slug"`
	Title        string     `json:"title"`
	Content      string     `json:"content"`
	ParentID     *uuid.UUID `json:"parent_id,omitempty"`
	ProjectID    *uuid.UUID `json:"project_id,omitempty"`
	IsPublic     bool       `json:"is_public"`
	AuthorID     *uuid.UUID `json:"author_id,omitempty"`
	LastEditedBy *uuid.UUID `json:"last_edited_by,omitempty"`
	Views        int        `json:"views"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// WikiPagePermission is an explicit per-page grant for a single user.
type WikiPagePermission struct {
	ID        uuid.UUID `json:"id"`
	PageID    uuid.UUID `json:"page_id"`
	UserID    uuid.UUID `json:"user_id"`
	CanEdit   bool      `json:"can_edit"`
	CreatedAt time.Time `json:"created_at"`
}

// WikiPageRevision is a snapshot of a page taken before each edit.
type WikiPageRevision struct {
	ID        uuid.UUID  `json:"id"`
	PageID    uuid.UUID  `json:"page_id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	EditedBy  *uuid.UUID `json:"edited_by,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
