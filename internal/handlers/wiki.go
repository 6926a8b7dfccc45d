package handlers

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
	"github.com/sayberrygames/studio-api/internal/authz"
	"github.com/sayberrygames/studio-api/internal/config"
	"github.com/sayberrygames/studio-api/internal/models"
	"github.com/sayberrygames/studio-api/internal/services"
	"github.com/sayberrygames/studio-api/pkg/dto"
)

type WikiHandler struct {
	cfg         *config.Config
	wikiService WikiServiceInterface
	userService UserServiceInterface
	gate        *authz.PageGate
}

func NewWikiHandler(cfg *config.Config, wikiService WikiServiceInterface, userService UserServiceInterface, gate *authz.PageGate) *WikiHandler {
	return &WikiHandler{cfg: cfg, wikiService: wikiService, userService: userService, gate: gate}
}

func toWikiResponse(page *models.WikiPage, canEdit bool) dto.WikiPageResponse {
	return dto.WikiPageResponse{
		ID:           page.ID,
		Slug:         page.Slug,
		Title:        page.Title,
		Content:      page.Content,
		ParentID:     page.ParentID,
		ProjectID:    page.ProjectID,
		IsPublic:     page.IsPublic,
		AuthorID:     page.AuthorID,
		LastEditedBy: page.LastEditedBy,
		Views:        page.Views,
		CanEdit:      canEdit,
		CreatedAt:    page.CreatedAt,
		UpdatedAt:    page.UpdatedAt,
	}
}

// Tree returns the page forest the caller may see. Pages whose parent is
// filtered out are promoted to roots so a partial view still renders as a
// tree.
func (h *WikiHandler) Tree(c *drift.Context) {
	ctx := context.Background()

	p, err := resolvePrincipal(ctx, c, h.userService, h.cfg.BootstrapAdminEmail)
	if err != nil {
		c.InternalServerError("failed to resolve user")
		return
	}

	var projectID *uuid.UUID
	if raw := c.QueryParam("project_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.BadRequest("invalid project_id")
			return
		}
		projectID = &id
	}

	pages, err := h.wikiService.List(ctx, projectID, c.QueryParam("search"))
	if err != nil {
		c.InternalServerError("failed to list wiki pages")
		return
	}

	visible := make([]models.WikiPage, 0, len(pages))
	for i := range pages {
		ok, err := h.gate.CanView(ctx, p, &pages[i])
		if err != nil {
			c.InternalServerError("failed to check page access")
			return
		}
		if ok {
			visible = append(visible, pages[i])
		}
	}

	_ = c.JSON(200, authz.BuildHierarchy(visible))
}

func (h *WikiHandler) GetBySlug(c *drift.Context) {
	ctx := context.Background()

	page, err := h.wikiService.GetBySlug(ctx, c.Param("slug"))
	if err != nil {
		c.NotFound("page not found")
		return
	}

	p, err := resolvePrincipal(ctx, c, h.userService, h.cfg.BootstrapAdminEmail)
	if err != nil {
		c.InternalServerError("failed to resolve user")
		return
	}

	canView, err := h.gate.CanView(ctx, p, page)
	if err != nil {
		c.InternalServerError("failed to check page access")
		return
	}
	if !canView {
		// Hidden pages 404 rather than 403 so their slugs stay private.
		c.NotFound("page not found")
		return
	}

	canEdit, err := h.gate.CanEdit(ctx, p, page)
	if err != nil {
		c.InternalServerError("failed to check page access")
		return
	}

	_ = h.wikiService.IncrementViews(ctx, page.ID)
	page.Views++

	_ = c.JSON(200, toWikiResponse(page, canEdit))
}

func (h *WikiHandler) Create(c *drift.Context) {
	ctx := context.Background()

	p, err := resolvePrincipal(ctx, c, h.userService, h.cfg.BootstrapAdminEmail)
	if err != nil || p == nil {
		c.Unauthorized("not authenticated")
		return
	}
	if !p.Role.IsTeamMember() {
		c.Forbidden("team membership required")
		return
	}

	var req dto.WikiPageRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.Slug == "" || req.Title == "" {
		c.BadRequest("slug and title are required")
		return
	}

	authorID := p.ID
	page := &models.WikiPage{
		Slug:      req.Slug,
		Title:     req.Title,
		Content:   req.Content,
		ParentID:  req.ParentID,
		ProjectID: req.ProjectID,
		IsPublic:  req.IsPublic,
		AuthorID:  &authorID,
	}

	created, err := h.wikiService.Create(ctx, page)
	if err != nil {
		if errors.Is(err, services.ErrSlugTaken) {
			c.BadRequest("slug is already in use")
			return
		}
		c.InternalServerError("failed to create page")
		return
	}

	_ = c.JSON(201, toWikiResponse(created, true))
}

func (h *WikiHandler) Update(c *drift.Context) {
	ctx := context.Background()

	p, err := resolvePrincipal(ctx, c, h.userService, h.cfg.BootstrapAdminEmail)
	if err != nil || p == nil {
		c.Unauthorized("not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid page id")
		return
	}

	page, err := h.wikiService.GetByID(ctx, id)
	if err != nil {
		c.NotFound("page not found")
		return
	}

	canEdit, err := h.gate.CanEdit(ctx, p, page)
	if err != nil {
		c.InternalServerError("failed to check page access")
		return
	}
	if !canEdit {
		c.Forbidden("you cannot edit this page")
		return
	}

	var req dto.WikiPageRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.Slug != "" {
		page.Slug = req.Slug
	}
	if req.Title != "" {
		page.Title = req.Title
	}
	page.Content = req.Content
	page.ParentID = req.ParentID
	page.ProjectID = req.ProjectID
	page.IsPublic = req.IsPublic

	updated, err := h.wikiService.Update(ctx, page, p.ID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSlugTaken):
			c.BadRequest("slug is already in use")
		case errors.Is(err, services.ErrParentCycle):
			c.BadRequest("parent would create a cycle")
		default:
			c.InternalServerError("failed to update page")
		}
		return
	}

	_ = c.JSON(200, toWikiResponse(updated, true))
}

func (h *WikiHandler) Delete(c *drift.Context) {
	ctx := context.Background()

	p, err := resolvePrincipal(ctx, c, h.userService, h.cfg.BootstrapAdminEmail)
	if err != nil || p == nil {
		c.Unauthorized("not authenticated")
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid page id")
		return
	}

	page, err := h.wikiService.GetByID(ctx, id)
	if err != nil {
		c.NotFound("page not found")
		return
	}

	canEdit, err := h.gate.CanEdit(ctx, p, page)
	if err != nil {
		c.InternalServerError("failed to check page access")
		return
	}
	if !canEdit {
		c.Forbidden("you cannot edit this page")
		return
	}

	if err := h.wikiService.Delete(ctx, id); err != nil {
		c.InternalServerError("failed to delete page")
		return
	}

	_ = c.JSON(200, map[string]string{"message": "page deleted"})
}

func (h *WikiHandler) Grant(c *drift.Context) {
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

	pageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid page id")
		return
	}

	var req dto.WikiGrantRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.UserID == uuid.Nil {
		c.BadRequest("user_id is required")
		return
	}

	if err := h.wikiService.GrantEdit(ctx, pageID, req.UserID); err != nil {
		c.InternalServerError("failed to grant edit access")
		return
	}

	_ = c.JSON(200, map[string]string{"message": "edit access granted"})
}

func (h *WikiHandler) Revoke(c *drift.Context) {
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

	pageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid page id")
		return
	}

	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.BadRequest("invalid user id")
		return
	}

	if err := h.wikiService.RevokeGrant(ctx, pageID, userID); err != nil {
		c.InternalServerError("failed to revoke edit access")
		return
	}

	_ = c.JSON(200, map[string]string{"message": "edit access revoked"})
}

func (h *WikiHandler) History(c *drift.Context) {
	ctx := context.Background()

	p, err := resolvePrincipal(ctx, c, h.userService, h.cfg.BootstrapAdminEmail)
	if err != nil {
		c.InternalServerError("failed to resolve user")
		return
	}

	page, err := h.wikiService.GetBySlug(ctx, c.Param("slug"))
	if err != nil {
		c.NotFound("page not found")
		return
	}

	canView, err := h.gate.CanView(ctx, p, page)
	if err != nil {
		c.InternalServerError("failed to check page access")
		return
	}
	if !canView {
		c.NotFound("page not found")
		return
	}

	revisions, err := h.wikiService.History(ctx, page.ID)
	if err != nil {
		c.InternalServerError("failed to load history")
		return
	}

	resp := make([]dto.WikiRevisionResponse, 0, len(revisions))
	for _, r := range revisions {
		resp = append(resp, dto.WikiRevisionResponse{
			ID:        r.ID,
			PageID:    r.PageID,
			Title:     r.Title,
			Content:   r.Content,
			EditedBy:  r.EditedBy,
			CreatedAt: r.CreatedAt,
		})
	}

	_ = c.JSON(200, resp)
}
