package dto

import (
	"time"

	"github.com/google/uuid"
)

type PostRequest struct {
	Slug      string `json:"slug"`
	Category  string `json:"category"`
	Author    string `json:"author"`
	TitleKo   string `json:"title_ko"`
	TitleEn   string `json:"title_en"`
	TitleJa   string `json:"title_ja"`
	ExcerptKo string `json:"excerpt_ko"`
	ExcerptEn string `json:"excerpt_en"`
	ExcerptJa string `json:"excerpt_ja"`
	ContentKo string `json:"content_ko"`
	ContentEn string `json:"content_en"`
	ContentJa string `json:"content_ja"`
	Published *bool  `json:"published"`
	Date      string `json:"date"`
}

type PostResponse struct {
	ID        uuid.UUID  `json:"id"`
	Kind      string     `json:"kind"`
	Slug      string     `json:"slug"`
	Category  string     `json:"category"`
	Author    string     `json:"author"`
	AuthorID  *uuid.UUID `json:"author_id,omitempty"`
	TitleKo   string     `json:"title_ko"`
	TitleEn   string     `json:"title_en"`
	TitleJa   string     `json:"title_ja"`
	ExcerptKo string     `json:"excerpt_ko"`
	ExcerptEn string     `json:"excerpt_en"`
	ExcerptJa string     `json:"excerpt_ja"`
	ContentKo string     `json:"content_ko"`
	ContentEn string     `json:"content_en"`
	ContentJa string     `json:"content_ja"`
	Published bool       `json:"published"`
	Date      string     `json:"date"`
	Views     int        `json:"views"`
	CanEdit   bool       `json:"can_edit"`
	CanDelete bool       `json:"can_delete"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
