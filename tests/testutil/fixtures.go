package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sayberrygames/studio-api/internal/database"
	"github.com/sayberrygames/studio-api/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// Fixtures provides factory methods for creating test data
type Fixtures struct {
	db      *database.DB
	counter int
}

// NewFixtures creates a new fixtures factory
func NewFixtures(db *database.DB) *Fixtures {
	return &Fixtures{db: db}
}

// CreateUser creates a test user with default values
func (f *Fixtures) CreateUser(t *testing.T, opts ...UserOption) *models.User {
	t.Helper()
	f.counter++

	user := &models.User{
		Email: fmt.Sprintf("user%d@example.com", f.counter),
		Name:  fmt.Sprintf("Test User %d", f.counter),
		Role:  "user",
	}

	for _, opt := range opts {
		opt(user)
	}

	ctx := context.Background()
	err := f.db.Pool.QueryRow(ctx, `
		INSERT INTO users (email, name, password_hash, avatar_url, provider, provider_id, role)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`, user.Email, user.Name, user.PasswordHash, user.AvatarURL,
		user.Provider, user.ProviderID, user.Role).Scan(
		&user.ID, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user
}

// UserOption configures a test user
type UserOption func(*models.User)

// WithEmail sets the user's email
func WithEmail(email string) UserOption {
	return func(u *models.User) {
		u.Email = email
	}
}

// WithName sets the user's name
func WithName(name string) UserOption {
	return func(u *models.User) {
		u.Name = name
	}
}

// WithRole sets the user's stored role
func WithRole(role string) UserOption {
	return func(u *models.User) {
		u.Role = role
	}
}

// WithPassword sets a bcrypt password hash for the user
func WithPassword(password string) UserOption {
	return func(u *models.User) {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			panic(err)
		}
		s := string(hash)
		u.PasswordHash = &s
	}
}

// WithProvider sets the user's OAuth provider
func WithProvider(provider, providerID string) UserOption {
	return func(u *models.User) {
		u.Provider = &provider
		u.ProviderID = &providerID
	}
}

// CreatePost creates a test post
func (f *Fixtures) CreatePost(t *testing.T, kind string, opts ...PostOption) *models.Post {
	t.Helper()
	f.counter++

	post := &models.Post{
		Kind:      kind,
		Slug:      fmt.Sprintf("post-%d", f.counter),
		Category:  "update",
		Author:    fmt.Sprintf("Author %d", f.counter),
		TitleKo:   fmt.Sprintf("테스트 포스트 %d", f.counter),
		TitleEn:   fmt.Sprintf("Test Post %d", f.counter),
		Published: true,
		Date:      time.Now(),
	}

	for _, opt := range opts {
		opt(post)
	}

	ctx := context.Background()
	err := f.db.Pool.QueryRow(ctx, `
		INSERT INTO posts (kind, slug, category, author, author_id,
			title_ko, title_en, title_ja, excerpt_ko, excerpt_en, excerpt_ja,
			content_ko, content_en, content_ja, published, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id, created_at, updated_at
	`, post.Kind, post.Slug, post.Category, post.Author, post.AuthorID,
		post.TitleKo, post.TitleEn, post.TitleJa,
		post.ExcerptKo, post.ExcerptEn, post.ExcerptJa,
		post.ContentKo, post.ContentEn, post.ContentJa,
		post.Published, post.Date).Scan(
		&post.ID, &post.CreatedAt, &post.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("failed to create post: %v", err)
	}

	return post
}

// PostOption configures a test post
type PostOption func(*models.Post)

// WithSlug sets the post slug
func WithSlug(slug string) PostOption {
	return func(p *models.Post) {
		p.Slug = slug
	}
}

// WithAuthor sets the post's display author
func WithAuthor(author string) PostOption {
	return func(p *models.Post) {
		p.Author = author
	}
}

// WithAuthorID links the post to an account
func WithAuthorID(id uuid.UUID) PostOption {
	return func(p *models.Post) {
		p.AuthorID = &id
	}
}

// Unpublished marks the post as a draft
func Unpublished() PostOption {
	return func(p *models.Post) {
		p.Published = false
	}
}

// CreateTeamMember creates a test team member profile
func (f *Fixtures) CreateTeamMember(t *testing.T, userID *uuid.UUID) *models.TeamMember {
	t.Helper()
	f.counter++

	member := &models.TeamMember{
		UserID:   userID,
		Name:     fmt.Sprintf("Member %d", f.counter),
		Position: "Programmer",
		Active:   true,
	}

	ctx := context.Background()
	err := f.db.Pool.QueryRow(ctx, `
		INSERT INTO team_members (user_id, name, position, bio, image_url, active, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`, member.UserID, member.Name, member.Position, member.Bio,
		member.ImageURL, member.Active, member.SortOrder).Scan(
		&member.ID, &member.CreatedAt, &member.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("failed to create team member: %v", err)
	}

	return member
}

// CreateProject creates a test project
func (f *Fixtures) CreateProject(t *testing.T) *models.Project {
	t.Helper()
	f.counter++

	project := &models.Project{
		Slug:   fmt.Sprintf("project-%d", f.counter),
		NameKo: fmt.Sprintf("프로젝트 %d", f.counter),
		NameEn: fmt.Sprintf("Project %d", f.counter),
		Active: true,
	}

	ctx := context.Background()
	err := f.db.Pool.QueryRow(ctx, `
		INSERT INTO projects (slug, name_ko, name_en, name_ja, logo_url, active, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`, project.Slug, project.NameKo, project.NameEn, project.NameJa,
		project.LogoURL, project.Active, project.SortOrder).Scan(
		&project.ID, &project.CreatedAt, &project.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("failed to create project: %v", err)
	}

	return project
}

// AssignToProject links a team member to a project
func (f *Fixtures) AssignToProject(t *testing.T, memberID, projectID uuid.UUID) {
	t.Helper()

	_, err := f.db.Pool.Exec(context.Background(), `
		INSERT INTO team_member_projects (team_member_id, project_id, role, is_lead)
		VALUES ($1, $2, 'Programmer', false)
	`, memberID, projectID)
	if err != nil {
		t.Fatalf("failed to assign project: %v", err)
	}
}

// CreateWikiPage creates a test wiki page
func (f *Fixtures) CreateWikiPage(t *testing.T, opts ...WikiPageOption) *models.WikiPage {
	t.Helper()
	f.counter++

	page := &models.WikiPage{
		Slug:     fmt.Sprintf("page-%d", f.counter),
		Title:    fmt.Sprintf("Page %d", f.counter),
		Content:  "test content",
		IsPublic: false,
	}

	for _, opt := range opts {
		opt(page)
	}

	ctx := context.Background()
	err := f.db.Pool.QueryRow(ctx, `
		INSERT INTO wiki_pages (slug, title, content, parent_id, project_id, is_public, author_id, last_edited_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		RETURNING id, created_at, updated_at
	`, page.Slug, page.Title, page.Content, page.ParentID,
		page.ProjectID, page.IsPublic, page.AuthorID).Scan(
		&page.ID, &page.CreatedAt, &page.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("failed to create wiki page: %v", err)
	}

	return page
}

// WikiPageOption configures a test wiki page
type WikiPageOption func(*models.WikiPage)

// PublicPage marks the page as publicly viewable
func PublicPage() WikiPageOption {
	return func(p *models.WikiPage) {
		p.IsPublic = true
	}
}

// WithParent sets the page's parent
func WithParent(parentID uuid.UUID) WikiPageOption {
	return func(p *models.WikiPage) {
		p.ParentID = &parentID
	}
}

// WithProject scopes the page to a project
func WithProject(projectID uuid.UUID) WikiPageOption {
	return func(p *models.WikiPage) {
		p.ProjectID = &projectID
	}
}
