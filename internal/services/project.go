package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/sayberrygames/studio-api/internal/database"
	"github.com/sayberrygames/studio-api/internal/models"
)

const projectColumns = `id, slug, name_ko, name_en, name_ja, logo_url, active, sort_order, created_at, updated_at`

type ProjectService struct {
	db *database.DB
}

func NewProjectService(db *database.DB) *ProjectService {
	return &ProjectService{db: db}
}

func scanProject(row interface{ Scan(dest ...any) error }) (*models.Project, error) {
	var p models.Project
	err := row.Scan(
		&p.ID, &p.Slug, &p.NameKo, &p.NameEn, &p.NameJa, &p.LogoURL,
		&p.Active, &p.SortOrder, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *ProjectService) List(ctx context.Context, activeOnly bool) ([]models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects`
	if activeOnly {
		query += ` WHERE active = TRUE`
	}
	query += ` ORDER BY sort_order, created_at`

	rows, err := s.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *project)
	}
	return projects, rows.Err()
}

func (s *ProjectService) GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	return scanProject(s.db.Pool.QueryRow(ctx, `
		SELECT `+projectColumns+` FROM projects WHERE id = $1
	`, id))
}

func (s *ProjectService) GetBySlug(ctx context.Context, slug string) (*models.Project, error) {
	return scanProject(s.db.Pool.QueryRow(ctx, `
		SELECT `+projectColumns+` FROM projects WHERE slug = $1
	`, slug))
}

func (s *ProjectService) Create(ctx context.Context, project *models.Project) (*models.Project, error) {
	created, err := scanProject(s.db.Pool.QueryRow(ctx, `
		INSERT INTO projects (slug, name_ko, name_en, name_ja, logo_url, active, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+projectColumns+`
	`, project.Slug, project.NameKo, project.NameEn, project.NameJa,
		project.LogoURL, project.Active, project.SortOrder))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlugTaken
		}
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return created, nil
}

func (s *ProjectService) Update(ctx context.Context, project *models.Project) (*models.Project, error) {
	updated, err := scanProject(s.db.Pool.QueryRow(ctx, `
		UPDATE projects SET slug = $1, name_ko = $2, name_en = $3, name_ja = $4,
			logo_url = $5, active = $6, sort_order = $7, updated_at = NOW()
		WHERE id = $8
		RETURNING `+projectColumns+`
	`, project.Slug, project.NameKo, project.NameEn, project.NameJa,
		project.LogoURL, project.Active, project.SortOrder, project.ID))
	if err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return updated, nil
}

func (s *ProjectService) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.Pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	return err
}
