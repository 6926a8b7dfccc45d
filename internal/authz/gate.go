package authz

import (
	"context"

	"github.com/google/uuid"
	"github.com/sayberrygames/studio-api/internal/models"
)

// AssignmentStore answers whether an account's linked team-member profile is
// assigned to a project.
type AssignmentStore interface {
	IsAssignedToProject(ctx context.Context, userID, projectID uuid.UUID) (bool, error)
}

// GrantStore answers whether a user holds an explicit edit grant on a page.
type GrantStore interface {
	HasEditGrant(ctx context.Context, pageID, userID uuid.UUID) (bool, error)
}

// PageGate resolves view and edit access for wiki pages. Store errors make
// every check deny and return the error; access is never granted on an
// indeterminate answer.
type PageGate struct {
	assignments AssignmentStore
	grants      GrantStore
}

func NewPageGate(assignments AssignmentStore, grants GrantStore) *PageGate {
	return &PageGate{assignments: assignments, grants: grants}
}

// CanView reports whether the principal may read the page. A nil principal
// is an anonymous visitor; public pages are open to anyone.
func (g *PageGate) CanView(ctx context.Context, p *Principal, page *models.WikiPage) (bool, error) {
	if page.IsPublic {
		return true, nil
	}
	if p == nil || !p.Role.IsTeamMember() {
		return false, nil
	}
	if page.ProjectID != nil {
		if p.Role.IsAdmin() {
			return true, nil
		}
		assigned, err := g.assignments.IsAssignedToProject(ctx, p.ID, *page.ProjectID)
		if err != nil {
			return false, err
		}
		return assigned, nil
	}
	return true, nil
}

// CanEdit reports whether the principal may modify or delete the page.
// Edit implies view: a page the principal cannot read is never editable.
// Past that, an explicit per-page grant wins, project-scoped pages require
// an assignment, and general pages are open to the whole team.
func (g *PageGate) CanEdit(ctx context.Context, p *Principal, page *models.WikiPage) (bool, error) {
	if p == nil {
		return false, nil
	}

	viewable, err := g.CanView(ctx, p, page)
	if err != nil || !viewable {
		return false, err
	}

	granted, err := g.grants.HasEditGrant(ctx, page.ID, p.ID)
	if err != nil {
		return false, err
	}
	if granted {
		return true, nil
	}

	if page.ProjectID != nil {
		if p.Role.IsAdmin() {
			return true, nil
		}
		assigned, err := g.assignments.IsAssignedToProject(ctx, p.ID, *page.ProjectID)
		if err != nil {
			return false, err
		}
		return assigned, nil
	}

	return p.Role.IsTeamMember(), nil
}
