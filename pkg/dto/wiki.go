package dto

import (
	"time"

	"github.com/google/uuid"
)

type WikiPageRequest struct {
	Slug      string     `json:"slug"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	ParentID  *uuid.UUID `json:"parent_id"`
	ProjectID *uuid.UUID `json:"project_id"`
	IsPublic  bool       `json:"is_public"`
}

type WikiPageResponse struct {
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
	CanEdit      bool       `json:"can_edit"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type WikiGrantRequest struct {
	UserID uuid.UUID `json:"user_id"`
}

type WikiRevisionResponse struct {
	ID        uuid.UUID  `json:"id"`
	PageID    uuid.UUID  `json:"page_id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	EditedBy  *uuid.UUID `json:"edited_by,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
