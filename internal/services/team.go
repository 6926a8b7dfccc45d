package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/sayberrygames/studio-api/internal/database"
	"github.com/sayberrygames/studio-api/internal/models"
)

const teamMemberColumns = `id, user_id, name, position, bio, image_url, active, sort_order, created_at, updated_at`

type TeamService struct {
	db *database.DB
}

func NewTeamService(db *database.DB) *TeamService {
	return &TeamService{db: db}
}

func scanTeamMember(row interface{ Scan(dest ...any) error }) (*models.TeamMember, error) {
	var m models.TeamMember
	err := row.Scan(
		&m.ID, &m.UserID, &m.Name, &m.Position, &m.Bio, &m.ImageURL,
		&m.Active, &m.SortOrder, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// List returns team member profiles ordered by sort_order. activeOnly is
// what the public team page uses; inactive members stay in the table but
// out of the listing.
func (s *TeamService) List(ctx context.Context, activeOnly bool) ([]models.TeamMember, error) {
	query := `SELECT ` + teamMemberColumns + ` FROM team_members`
	if activeOnly {
		query += ` WHERE active = TRUE`
	}
	query += ` ORDER BY sort_order, created_at`

	rows, err := s.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []models.TeamMember
	for rows.Next() {
		member, err := scanTeamMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, *member)
	}
	return members, rows.Err()
}

func (s *TeamService) GetByID(ctx context.Context, id uuid.UUID) (*models.TeamMember, error) {
	return scanTeamMember(s.db.Pool.QueryRow(ctx, `
		SELECT `+teamMemberColumns+` FROM team_members WHERE id = $1
	`, id))
}

// GetByUserID finds the active profile linked to an account, if any.
func (s *TeamService) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.TeamMember, error) {
	return scanTeamMember(s.db.Pool.QueryRow(ctx, `
		SELECT `+teamMemberColumns+` FROM team_members WHERE user_id = $1 AND active = TRUE
	`, userID))
}

func (s *TeamService) Create(ctx context.Context, member *models.TeamMember) (*models.TeamMember, error) {
	created, err := scanTeamMember(s.db.Pool.QueryRow(ctx, `
		INSERT INTO team_members (user_id, name, position, bio, image_url, active, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+teamMemberColumns+`
	`, member.UserID, member.Name, member.Position, member.Bio, member.ImageURL, member.Active, member.SortOrder))
	if err != nil {
		return nil, fmt.Errorf("failed to create team member: %w", err)
	}
	return created, nil
}

func (s *TeamService) Update(ctx context.Context, member *models.TeamMember) (*models.TeamMember, error) {
	updated, err := scanTeamMember(s.db.Pool.QueryRow(ctx, `
		UPDATE team_members SET user_id = $1, name = $2, position = $3, bio = $4,
			image_url = $5, active = $6, sort_order = $7, updated_at = NOW()
		WHERE id = $8
		RETURNING `+teamMemberColumns+`
	`, member.UserID, member.Name, member.Position, member.Bio, member.ImageURL,
		member.Active, member.SortOrder, member.ID))
	if err != nil {
		return nil, fmt.Errorf("failed to update team member: %w", err)
	}
	return updated, nil
}

func (s *TeamService) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.Pool.Exec(ctx, `DELETE FROM team_members WHERE id = $1`, id)
	return err
}

// IsAssignedToProject reports whether the account's active team-member
// profile carries an assignment to the project. This is the lookup the wiki
// gate uses for project-scoped pages.
func (s *TeamService) IsAssignedToProject(ctx context.Context, userID, projectID uuid.UUID) (bool, error) {
	var exists bool
	err := s.db.Pool.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1
			FROM team_member_projects tmp
			JOIN team_members tm ON tm.id = tmp.team_member_id
			WHERE tm.user_id = $1 AND tm.active = TRUE AND tmp.project_id = $2
		)
	`, userID, projectID).Scan(&exists)
	return exists, err
}

func (s *TeamService) GetAssignments(ctx context.Context, memberID uuid.UUID) ([]models.ProjectAssignment, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT id, team_member_id, project_id, role, is_lead, created_at
		FROM team_member_projects
		WHERE team_member_id = $1
		ORDER BY created_at
	`, memberID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []models.ProjectAssignment
	for rows.Next() {
		var a models.ProjectAssignment
		if err := rows.Scan(&a.ID, &a.TeamMemberID, &a.ProjectID, &a.Role, &a.IsLead, &a.CreatedAt); err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

func (s *TeamService) AssignProject(ctx context.Context, memberID, projectID uuid.UUID, role string, isLead bool) error {
	_, err := s.db.Pool.Exec(ctx, `
		INSERT INTO team_member_projects (team_member_id, project_id, role, is_lead)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (team_member_id, project_id)
		DO UPDATE SET role = EXCLUDED.role, is_lead = EXCLUDED.is_lead
	`, memberID, projectID, role, isLead)
	return err
}

func (s *TeamService) UnassignProject(ctx context.Context, memberID, projectID uuid.UUID) error {
	_, err := s.db.Pool.Exec(ctx, `
		DELETE FROM team_member_projects WHERE team_member_id = $1 AND project_id = $2
	`, memberID, projectID)
	return err
}
