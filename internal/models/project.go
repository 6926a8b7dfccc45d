package models

import (
	"time"

	"github.com/google/uuid"
)

type Project struct {
	ID        uuid.UUID `json:"id"`
	Slug      string    `json:"slug"`
	NameKo    string    `json:"name_ko"`
	NameEn    string    `json:"name_en"`
	NameJa    string    `json:"name_ja"`
	LogoURL   *string   `json:"logo_url,omitempty"`
	Active    bool      `json:"active"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
