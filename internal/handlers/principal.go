package handlers

import (
	"context"

	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
	"github.com/sayberrygames/studio-api/internal/authz"
	"github.com/sayberrygames/studio-api/internal/middleware"
)

// resolvePrincipal loads the authenticated user and resolves its effective
// role. Returns (nil, nil) for anonymous requests so handlers behind
// OptionalAuth can treat missing identity as a public visitor.
func resolvePrincipal(ctx context.Context, c *drift.Context, users UserServiceInterface, bootstrapEmail string) (*authz.Principal, error) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return nil, nil
	}

	user, err := users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &authz.Principal{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Role:  authz.Resolve(user.Email, user.Role, bootstrapEmail),
	}, nil
}
