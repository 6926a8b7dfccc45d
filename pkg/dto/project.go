package dto

type ProjectRequest struct {
	Slug      string  `json:"slug"`
	NameKo    string  `json:"name_ko"`
	NameEn    string  `json:"name_en"`
	NameJa    string  `json:"name_ja"`
	LogoURL   *string `json:"logo_url"`
	Active    *bool   `json:"active"`
	SortOrder int     `json:"sort_order"`
}
