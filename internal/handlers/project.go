package handlers

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
	"github.com/sayberrygames/studio-api/internal/config"
	"github.com/sayberrygames/studio-api/internal/models"
	"github.com/sayberrygames/studio-api/internal/services"
	"github.com/sayberrygames/studio-api/pkg/dto"
)

type ProjectHandler struct {
	cfg            *config.Config
	projectService ProjectServiceInterface
	userService    UserServiceInterface
}

func NewProjectHandler(cfg *config.Config, projectService ProjectServiceInterface, userService UserServiceInterface) *ProjectHandler {
	return &ProjectHandler{cfg: cfg, projectService: projectService, userService: userService}
}

// requireAdmin resolves the principal and rejects the request unless the
// effective role is admin. Returns false after writing the error response.
func (h *ProjectHandler) requireAdmin(ctx context.Context, c *drift.Context) bool {
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

// List is public: visitors see active projects only, admins see everything
// with ?all=true.
func (h *ProjectHandler) List(c *drift.Context) {
	ctx := context.Background()

	activeOnly := true
	if c.QueryParam("all") == "true" {
		p, err := resolvePrincipal(ctx, c, h.userService, h.cfg.BootstrapAdminEmail)
		if err == nil && p != nil && p.Role.IsAdmin() {
			activeOnly = false
		}
	}

	projects, err := h.projectService.List(ctx, activeOnly)
	if err != nil {
		c.InternalServerError("failed to list projects")
		return
	}

	_ = c.JSON(200, projects)
}

func (h *ProjectHandler) GetBySlug(c *drift.Context) {
	project, err := h.projectService.GetBySlug(context.Background(), c.Param("slug"))
	if err != nil {
		c.NotFound("project not found")
		return
	}

	_ = c.JSON(200, project)
}

func (h *ProjectHandler) Create(c *drift.Context) {
	ctx := context.Background()
	if !h.requireAdmin(ctx, c) {
		return
	}

	var req dto.ProjectRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.Slug == "" || req.NameKo == "" {
		c.BadRequest("slug and name_ko are required")
		return
	}

	project := &models.Project{
		Slug:      req.Slug,
		NameKo:    req.NameKo,
		NameEn:    req.NameEn,
		NameJa:    req.NameJa,
		LogoURL:   req.LogoURL,
		Active:    req.Active == nil || *req.Active,
		SortOrder: req.SortOrder,
	}

	created, err := h.projectService.Create(ctx, project)
	if err != nil {
		if errors.Is(err, services.ErrSlugTaken) {
			c.BadRequest("slug is already in use")
			return
		}
		c.InternalServerError("failed to create project")
		return
	}

	_ = c.JSON(201, created)
}

func (h *ProjectHandler) Update(c *drift.Context) {
	ctx := context.Background()
	if !h.requireAdmin(ctx, c) {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid project id")
		return
	}

	project, err := h.projectService.GetByID(ctx, id)
	if err != nil {
		c.NotFound("project not found")
		return
	}

	var req dto.ProjectRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.Slug != "" {
		project.Slug = req.Slug
	}
	if req.NameKo != "" {
		project.NameKo = req.NameKo
	}
	project.NameEn = req.NameEn
	project.NameJa = req.NameJa
	project.LogoURL = req.LogoURL
	if req.Active != nil {
		project.Active = *req.Active
	}
	project.SortOrder = req.SortOrder

	updated, err := h.projectService.Update(ctx, project)
	if err != nil {
		if errors.Is(err, services.ErrSlugTaken) {
			c.BadRequest("slug is already in use")
			return
		}
		c.InternalServerError("failed to update project")
		return
	}

	_ = c.JSON(200, updated)
}

func (h *ProjectHandler) Delete(c *drift.Context) {
	ctx := context.Background()
	if !h.requireAdmin(ctx, c) {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid project id")
		return
	}

	if err := h.projectService.Delete(ctx, id); err != nil {
		c.InternalServerError("failed to delete project")
		return
	}

	_ = c.JSON(200, map[string]string{"message": "project deleted"})
}
