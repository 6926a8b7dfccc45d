package dto

import "github.com/google/uuid"

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
	Role      string    `json:"role"`
	// EffectiveRole includes the bootstrap-admin fallback; Role is what is
	// stored.
	EffectiveRole string `json:"effective_role"`
	IsAdmin       bool   `json:"is_admin"`
	IsTeamMember  bool   `json:"is_team_member"`
}

type UpdateUserRequest struct {
	Name string `json:"name"`
}

type UpdateUserRoleRequest struct {
	Role string `json:"role"`
}
