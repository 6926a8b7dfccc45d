package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
	"github.com/sayberrygames/studio-api/internal/authz"
	"github.com/sayberrygames/studio-api/internal/config"
	"github.com/sayberrygames/studio-api/internal/models"
	"github.com/sayberrygames/studio-api/internal/services"
	"github.com/sayberrygames/studio-api/pkg/dto"
)

type PostHandler struct {
	cfg         *config.Config
	postService PostServiceInterface
	userService UserServiceInterface
}

func NewPostHandler(cfg *config.Config, postService PostServiceInterface, userService UserServiceInterface) *PostHandler {
	return &PostHandler{cfg: cfg, postService: postService, userService: userService}
}

func (h *PostHandler) kind(c *drift.Context) (authz.PostKind, bool) {
	kind, ok := authz.ParsePostKind(c.Param("kind"))
	if !ok {
		c.BadRequest("unknown post kind: " + c.Param("kind"))
	}
	return kind, ok
}

// Posts are published in three languages at once, so a save must carry
// title and content for every locale.
func hasAllLocales(req *dto.PostRequest) bool {
	return req.TitleKo != "" && req.TitleEn != "" && req.TitleJa != "" &&
		req.ContentKo != "" && req.ContentEn != "" && req.ContentJa != ""
}

func toPostResponse(post *models.Post, p *authz.Principal, kind authz.PostKind) dto.PostResponse {
	canEdit := false
	canDelete := false
	if p != nil {
		canEdit = authz.CanEditPost(p, kind, post.Author, post.AuthorID)
		canDelete = authz.CanDelete(p.Role)
	}
	return dto.PostResponse{
		ID:        post.ID,
		Kind:      post.Kind,
		Slug:      post.Slug,
		Category:  post.Category,
		Author:    post.Author,
		AuthorID:  post.AuthorID,
		TitleKo:   post.TitleKo,
		TitleEn:   post.TitleEn,
		TitleJa:   post.TitleJa,
		ExcerptKo: post.ExcerptKo,
		ExcerptEn: post.ExcerptEn,
		ExcerptJa: post.ExcerptJa,
		ContentKo: post.ContentKo,
		ContentEn: post.ContentEn,
		ContentJa: post.ContentJa,
		Published: post.Published,
		Date:      post.Date.Format("2006-01-02"),
		Views:     post.Views,
		CanEdit:   canEdit,
		CanDelete: canDelete,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
}

// List returns published posts for everyone; team members who can write the
// kind also see drafts.
func (h *PostHandler) List(c *drift.Context) {
	kind, ok := h.kind(c)
	if !ok {
		return
	}

	ctx := context.Background()

	p, err := resolvePrincipal(ctx, c, h.userService, h.cfg.BootstrapAdminEmail)
	if err != nil {
		c.InternalServerError("failed to resolve user")
		return
	}

	publishedOnly := p == nil || !authz.CanWrite(p.Role, kind)

	posts, err := h.postService.List(ctx, string(kind), publishedOnly)
	if err != nil {
		c.InternalServerError("failed to list posts")
		return
	}

	resp := make([]dto.PostResponse, 0, len(posts))
	for i := range posts {
		resp = append(resp, toPostResponse(&posts[i], p, kind))
	}

	_ = c.JSON(200, resp)
}

func (h *PostHandler) GetBySlug(c *drift.Context) {
	kind, ok := h.kind(c)
	if !ok {
		return
	}

	ctx := context.Background()

	post, err := h.postService.GetBySlug(ctx, string(kind), c.Param("slug"))
	if err != nil {
		c.NotFound("post not found")
		return
	}

	p, err := resolvePrincipal(ctx, c, h.userService, h.cfg.BootstrapAdminEmail)
	if err != nil {
		c.InternalServerError("failed to resolve user")
		return
	}

	if !post.Published && (p == nil || !authz.CanWrite(p.Role, kind)) {
		c.NotFound("post not found")
		return
	}

	if post.Published {
		_ = h.postService.IncrementViews(ctx, post.ID)
		post.Views++
	}

	_ = c.JSON(200, toPostResponse(post, p, kind))
}

func (h *PostHandler) Create(c *drift.Context) {
	kind, ok := h.kind(c)
	if !ok {
		return
	}

	ctx := context.Background()

	p, err := resolvePrincipal(ctx, c, h.userService, h.cfg.BootstrapAdminEmail)
	if err != nil || p == nil {
		c.Unauthorized("not authenticated")
		return
	}
	if !authz.CanWrite(p.Role, kind) {
		c.Forbidden("insufficient role to write " + string(kind))
		return
	}

	var req dto.PostRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.Slug == "" {
		c.BadRequest("slug is required")
		return
	}
	if !hasAllLocales(&req) {
		c.BadRequest("title and content are required in all languages")
		return
	}

	date := time.Now()
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			c.BadRequest("date must be YYYY-MM-DD")
			return
		}
		date = parsed
	}

	author := req.Author
	if author == "" {
		author = p.DisplayIdentity()
	}

	authorID := p.ID
	post := &models.Post{
		Kind:      string(kind),
		Slug:      req.Slug,
		Category:  req.Category,
		Author:    author,
		AuthorID:  &authorID,
		TitleKo:   req.TitleKo,
		TitleEn:   req.TitleEn,
		TitleJa:   req.TitleJa,
		ExcerptKo: req.ExcerptKo,
		ExcerptEn: req.ExcerptEn,
		ExcerptJa: req.ExcerptJa,
		ContentKo: req.ContentKo,
		ContentEn: req.ContentEn,
		ContentJa: req.ContentJa,
		Published: req.Published != nil && *req.Published,
		Date:      date,
	}

	created, err := h.postService.Create(ctx, post)
	if err != nil {
		if errors.Is(err, services.ErrSlugTaken) {
			c.BadRequest("slug is already in use")
			return
		}
		c.InternalServerError("failed to create post")
		return
	}

	_ = c.JSON(201, toPostResponse(created, p, kind))
}

func (h *PostHandler) Update(c *drift.Context) {
	kind, ok := h.kind(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid post id")
		return
	}

	ctx := context.Background()

	p, err := resolvePrincipal(ctx, c, h.userService, h.cfg.BootstrapAdminEmail)
	if err != nil || p == nil {
		c.Unauthorized("not authenticated")
		return
	}

	post, err := h.postService.GetByID(ctx, id)
	if err != nil || post.Kind != string(kind) {
		c.NotFound("post not found")
		return
	}

	if !authz.CanEditPost(p, kind, post.Author, post.AuthorID) {
		c.Forbidden("you cannot edit this post")
		return
	}

	var req dto.PostRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if !hasAllLocales(&req) {
		c.BadRequest("title and content are required in all languages")
		return
	}

	if req.Slug != "" {
		post.Slug = req.Slug
	}
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			c.BadRequest("date must be YYYY-MM-DD")
			return
		}
		post.Date = parsed
	}
	post.Category = req.Category
	if req.Author != "" {
		post.Author = req.Author
	}
	post.TitleKo = req.TitleKo
	post.TitleEn = req.TitleEn
	post.TitleJa = req.TitleJa
	post.ExcerptKo = req.ExcerptKo
	post.ExcerptEn = req.ExcerptEn
	post.ExcerptJa = req.ExcerptJa
	post.ContentKo = req.ContentKo
	post.ContentEn = req.ContentEn
	post.ContentJa = req.ContentJa
	if req.Published != nil {
		post.Published = *req.Published
	}

	updated, err := h.postService.Update(ctx, post)
	if err != nil {
		if errors.Is(err, services.ErrSlugTaken) {
			c.BadRequest("slug is already in use")
			return
		}
		c.InternalServerError("failed to update post")
		return
	}

	_ = c.JSON(200, toPostResponse(updated, p, kind))
}

func (h *PostHandler) Delete(c *drift.Context) {
	kind, ok := h.kind(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid post id")
		return
	}

	ctx := context.Background()

	p, err := resolvePrincipal(ctx, c, h.userService, h.cfg.BootstrapAdminEmail)
	if err != nil || p == nil {
		c.Unauthorized("not authenticated")
		return
	}
	if !authz.CanDelete(p.Role) {
		c.Forbidden("only admins can delete posts")
		return
	}

	post, err := h.postService.GetByID(ctx, id)
	if err != nil || post.Kind != string(kind) {
		c.NotFound("post not found")
		return
	}

	if err := h.postService.Delete(ctx, id); err != nil {
		c.InternalServerError("failed to delete post")
		return
	}

	_ = c.JSON(200, map[string]string{"message": "post deleted"})
}
