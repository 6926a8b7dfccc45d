package models

import (
	"time"

	"github.com/google/uuid"
)

// Post is a localized content record: a dev note or a news article.
// Author is the display label shown on the site; AuthorID links the row to
// the account that created it and is what ownership checks prefer.
type Post struct {
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
	Date      time.Time  `json:"date"`
	Views     int        `json:"views"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
