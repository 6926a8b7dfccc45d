package models

import (
	"time"

	"github.com/google/uuid"
)

// TeamMember is a public-facing profile, distinct from a User account.
// UserID optionally links the profile to an account; the wiki's
// project-membership checks follow that link.
type TeamMember struct {
	ID        uuid.UUID  `json:"id"`
	UserID    *uuid.UUID `json:"user_id,omitempty"`
	Name      string     `json:"name"`
	Position  string     `json:"position"`
	Bio       string     `json:"bio"`
	ImageURL  *string    `json:"image_url,omitempty"`
	Active    bool       `json:"active"`
	SortOrder int        `json:"sort_order"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// ProjectAssignment ties a team member to a project. Role is a per-project
// label ("Programmer", "Art Director"); IsLead is independent of the
// account-level role.
type ProjectAssignment struct {
	ID           uuid.UUID `json:"id"`
	TeamMemberID uuid.UUID `json:"team_member_id"`
	ProjectID    uuid.UUID `json:"project_id"`
	Role         string    `json:"role"`
	IsLead       bool      `json:"is_lead"`
	CreatedAt    time.Time `json:"created_at"`
}
