package handlers

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sayberrygames/studio-api/internal/models"
	"github.com/sayberrygames/studio-api/internal/oauth"
	"github.com/sayberrygames/studio-api/internal/services"
)

// UserServiceInterface defines the methods used by handlers from UserService
type UserServiceInterface interface {
	CreateWithPassword(ctx context.Context, email, name, password string) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	FindOrCreateFromOAuth(ctx context.Context, info *oauth.UserInfo) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, id uuid.UUID, name string) (*models.User, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role string) (*models.User, error)
	SetPassword(ctx context.Context, id uuid.UUID, password string) error
}

// PostServiceInterface defines the methods used by handlers from PostService
type PostServiceInterface interface {
	Create(ctx context.Context, post *models.Post) (*models.Post, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Post, error)
	GetBySlug(ctx context.Context, kind, slug string) (*models.Post, error)
	List(ctx context.Context, kind string, publishedOnly bool) ([]models.Post, error)
	Update(ctx context.Context, post *models.Post) (*models.Post, error)
	Delete(ctx context.Context, id uuid.UUID) error
	IncrementViews(ctx context.Context, id uuid.UUID) error
}

// TeamServiceInterface defines the methods used by handlers from TeamService
type TeamServiceInterface interface {
	List(ctx context.Context, activeOnly bool) ([]models.TeamMember, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.TeamMember, error)
	Create(ctx context.Context, member *models.TeamMember) (*models.TeamMember, error)
	Update(ctx context.Context, member *models.TeamMember) (*models.TeamMember, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetAssignments(ctx context.Context, memberID uuid.UUID) ([]models.ProjectAssignment, error)
	AssignProject(ctx context.Context, memberID, projectID uuid.UUID, role string, isLead bool) error
	UnassignProject(ctx context.Context, memberID, projectID uuid.UUID) error
}

// ProjectServiceInterface defines the methods used by handlers from ProjectService
type ProjectServiceInterface interface {
	List(ctx context.Context, activeOnly bool) ([]models.Project, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error)
	GetBySlug(ctx context.Context, slug string) (*models.Project, error)
	Create(ctx context.Context, project *models.Project) (*models.Project, error)
	Update(ctx context.Context, project *models.Project) (*models.Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// WikiServiceInterface defines the methods used by handlers from WikiService
type WikiServiceInterface interface {
	List(ctx context.Context, projectID *uuid.UUID, search string) ([]models.WikiPage, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.WikiPage, error)
	GetBySlug(ctx context.Context, slug string) (*models.WikiPage, error)
	Create(ctx context.Context, page *models.WikiPage) (*models.WikiPage, error)
	Update(ctx context.Context, page *models.WikiPage, editorID uuid.UUID) (*models.WikiPage, error)
	Delete(ctx context.Context, id uuid.UUID) error
	IncrementViews(ctx context.Context, id uuid.UUID) error
	GrantEdit(ctx context.Context, pageID, userID uuid.UUID) error
	RevokeGrant(ctx context.Context, pageID, userID uuid.UUID) error
	History(ctx context.Context, pageID uuid.UUID) ([]models.WikiPageRevision, error)
}

// TokenServiceInterface defines the methods used by handlers from TokenService
type TokenServiceInterface interface {
	StoreRefreshToken(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) error
	ValidateRefreshToken(ctx context.Context, tokenHash string) (uuid.UUID, error)
	RevokeRefreshToken(ctx context.Context, tokenHash string) error
	RevokeAllUserTokens(ctx context.Context, userID uuid.UUID) error
	StorePasswordReset(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) error
	ConsumePasswordReset(ctx context.Context, tokenHash string) (uuid.UUID, error)
}

// JWTServiceInterface defines the methods used by handlers from JWTService
type JWTServiceInterface interface {
	GenerateTokenPair(userID uuid.UUID, email string) (*services.TokenPair, error)
	ValidateRefreshToken(token string) (uuid.UUID, error)
	RefreshExpiry() time.Duration
}

// EmailServiceInterface defines the methods used by handlers from EmailService
type EmailServiceInterface interface {
	IsConfigured() bool
	SendPasswordReset(to, resetURL string) error
}
