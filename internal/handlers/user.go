package handlers

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
	"github.com/sayberrygames/studio-api/internal/authz"
	"github.com/sayberrygames/studio-api/internal/config"
	"github.com/sayberrygames/studio-api/internal/middleware"
	"github.com/sayberrygames/studio-api/internal/models"
	"github.com/sayberrygames/studio-api/internal/services"
	"github.com/sayberrygames/studio-api/pkg/dto"
)

type UserHandler struct {
	cfg         *config.Config
	userService UserServiceInterface
}

func NewUserHandler(cfg *config.Config, userService UserServiceInterface) *UserHandler {
	return &UserHandler{cfg: cfg, userService: userService}
}

func (h *UserHandler) toResponse(user *models.User) dto.UserResponse {
	effective := authz.Resolve(user.Email, user.Role, h.cfg.BootstrapAdminEmail)
	return dto.UserResponse{
		ID:            user.ID,
		Email:         user.Email,
		Name:          user.Name,
		AvatarURL:     user.AvatarURL,
		Role:          user.Role,
		EffectiveRole: effective.String(),
		IsAdmin:       effective.IsAdmin(),
		IsTeamMember:  effective.IsTeamMember(),
	}
}

func (h *UserHandler) GetMe(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	user, err := h.userService.GetByID(context.Background(), userID)
	if err != nil {
		c.NotFound("user not found")
		return
	}

	_ = c.JSON(200, h.toResponse(user))
}

func (h *UserHandler) UpdateMe(c *drift.Context) {
	p, err := resolvePrincipal(context.Background(), c, h.userService, h.cfg.BootstrapAdminEmail)
	if err != nil || p == nil {
		c.Unauthorized("not authenticated")
		return
	}

	var req dto.UpdateUserRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.Name == "" {
		c.BadRequest("name is required")
		return
	}

	user, err := h.userService.Update(context.Background(), p.ID, req.Name)
	if err != nil {
		c.InternalServerError("failed to update user")
		return
	}

	_ = c.JSON(200, h.toResponse(user))
}

func (h *UserHandler) List(c *drift.Context) {
	ctx := context.Background()

	p, err := resolvePrincipal(ctx, c, h.userService, h.cfg.BootstrapAdminEmail)
	if err != nil || p == nil {
		c.Unauthorized("not authenticated")
		return
	}
	if !p.Role.IsAdmin() {
		c.Forbidden("admin access required")
		return
	}

	users, err := h.userService.List(ctx)
	if err != nil {
		c.InternalServerError("failed to list users")
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		resp = append(resp, h.toResponse(&users[i]))
	}

	_ = c.JSON(200, resp)
}

func (h *UserHandler) UpdateRole(c *drift.Context) {
	ctx := context.Background()

	p, err := resolvePrincipal(ctx, c, h.userService, h.cfg.BootstrapAdminEmail)
	if err != nil || p == nil {
		c.Unauthorized("not authenticated")
		return
	}
	if !p.Role.IsAdmin() {
		c.Forbidden("admin access required")
		return
	}

	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid user id")
		return
	}

	var req dto.UpdateUserRoleRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	user, err := h.userService.UpdateRole(ctx, targetID, req.Role)
	if err != nil {
		if errors.Is(err, services.ErrInvalidRole) {
			c.BadRequest("invalid role: " + req.Role)
			return
		}
		c.NotFound("user not found")
		return
	}

	_ = c.JSON(200, h.toResponse(user))
}
