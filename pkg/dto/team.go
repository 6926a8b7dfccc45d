package dto

import "github.com/google/uuid"

type TeamMemberRequest struct {
	UserID    *uuid.UUID `json:"user_id"`
	Name      string     `json:"name"`
	Position  string     `json:"position"`
	Bio       string     `json:"bio"`
	ImageURL  *string    `json:"image_url"`
	Active    *bool      `json:"active"`
	SortOrder int        `json:"sort_order"`
}

type AssignProjectRequest struct {
	ProjectID uuid.UUID `json:"project_id"`
	Role      string    `json:"role"`
	IsLead    bool      `json:"is_lead"`
}
