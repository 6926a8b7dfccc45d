package handlers

import (
	"context"

	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
	"github.com/sayberrygames/studio-api/internal/config"
	"github.com/sayberrygames/studio-api/internal/models"
	"github.com/sayberrygames/studio-api/pkg/dto"
)

type TeamHandler struct {
	cfg         *config.Config
	teamService TeamServiceInterface
	userService UserServiceInterface
}

func NewTeamHandler(cfg *config.Config, teamService TeamServiceInterface, userService UserServiceInterface) *TeamHandler {
	return &TeamHandler{cfg: cfg, teamService: teamService, userService: userService}
}

func (h *TeamHandler) requireAdmin(ctx context.Context, c *drift.Context) bool {
	p, err := resolvePrincipal(ctx, c, h.userService, h.cfg.BootstrapAdminEmail)
	if err != nil || p == nil {
		c.Unauthorized("not authenticated")
		return false
	}
	if !p.Role.IsAdmin() {
		c.Forbidden("admin access required")
		return false
	}
	return true
}

// List is public: visitors get active members only, admins get everyone
// with ?all=true.
func (h *TeamHandler) List(c *drift.Context) {
	ctx := context.Background()

	activeOnly := true
	if c.QueryParam("all") == "true" {
		p, err := resolvePrincipal(ctx, c, h.userService, h.cfg.BootstrapAdminEmail)
		if err == nil && p != nil && p.Role.IsAdmin() {
			activeOnly = false
		}
	}

	members, err := h.teamService.List(ctx, activeOnly)
	if err != nil {
		c.InternalServerError("failed to list team members")
		return
	}

	_ = c.JSON(200, members)
}

func (h *TeamHandler) Create(c *drift.Context) {
	ctx := context.Background()
	if !h.requireAdmin(ctx, c) {
		return
	}

	var req dto.TeamMemberRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.Name == "" {
		c.BadRequest("name is required")
		return
	}

	member := &models.TeamMember{
		UserID:    req.UserID,
		Name:      req.Name,
		Position:  req.Position,
		Bio:       req.Bio,
		ImageURL:  req.ImageURL,
		Active:    req.Active == nil || *req.Active,
		SortOrder: req.SortOrder,
	}

	created, err := h.teamService.Create(ctx, member)
	if err != nil {
		c.InternalServerError("failed to create team member")
		return
	}

	_ = c.JSON(201, created)
}

func (h *TeamHandler) Update(c *drift.Context) {
	ctx := context.Background()
	if !h.requireAdmin(ctx, c) {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid team member id")
		return
	}

	member, err := h.teamService.GetByID(ctx, id)
	if err != nil {
		c.NotFound("team member not found")
		return
	}

	var req dto.TeamMemberRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.Name != "" {
		member.Name = req.Name
	}
	member.UserID = req.UserID
	member.Position = req.Position
	member.Bio = req.Bio
	member.ImageURL = req.ImageURL
	if req.Active != nil {
		member.Active = *req.Active
	}
	member.SortOrder = req.SortOrder

	updated, err := h.teamService.Update(ctx, member)
	if err != nil {
		c.InternalServerError("failed to update team member")
		return
	}

	_ = c.JSON(200, updated)
}

func (h *TeamHandler) Delete(c *drift.Context) {
	ctx := context.Background()
	if !h.requireAdmin(ctx, c) {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid team member id")
		return
	}

	if err := h.teamService.Delete(ctx, id); err != nil {
		c.InternalServerError("failed to delete team member")
		return
	}

	_ = c.JSON(200, map[string]string{"message": "team member deleted"})
}

func (h *TeamHandler) GetAssignments(c *drift.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid team member id")
		return
	}

	assignments, err := h.teamService.GetAssignments(context.Background(), id)
	if err != nil {
		c.InternalServerError("failed to list assignments")
		return
	}

	_ = c.JSON(200, assignments)
}

func (h *TeamHandler) AssignProject(c *drift.Context) {
	ctx := context.Background()
	if !h.requireAdmin(ctx, c) {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid team member id")
		return
	}

	var req dto.AssignProjectRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.ProjectID == uuid.Nil {
		c.BadRequest("project_id is required")
		return
	}

	if err := h.teamService.AssignProject(ctx, id, req.ProjectID, req.Role, req.IsLead); err != nil {
		c.InternalServerError("failed to assign project")
		return
	}

	_ = c.JSON(200, map[string]string{"message": "project assigned"})
}

func (h *TeamHandler) UnassignProject(c *drift.Context) {
	ctx := context.Background()
	if !h.requireAdmin(ctx, c) {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid team member id")
		return
	}

	projectID, err := uuid.Parse(c.Param("projectId"))
	if err != nil {
		c.BadRequest("invalid project id")
		return
	}

	if err := h.teamService.UnassignProject(ctx, id, projectID); err != nil {
		c.InternalServerError("failed to unassign project")
		return
	}

	_ = c.JSON(200, map[string]string{"message": "project unassigned"})
}
