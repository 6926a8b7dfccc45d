package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/sayberrygames/studio-api/internal/database"
	"github.com/sayberrygames/studio-api/internal/models"
)

var ErrParentCycle = errors.New("page cannot be its own ancestor")

const wikiPageColumns = `id, slug, title, content, parent_id, project_id, is_public,
	author_id, last_edited_by, views, created_at, updated_at`

type WikiService struct {
	db *database.DB
}

func NewWikiService(db *database.DB) *WikiService {
	return &WikiService{db: db}
}

func scanWikiPage(row interface{ Scan(dest ...any) error }) (*models.WikiPage, error) {
	var p models.WikiPage
	err := row.Scan(
		&p.ID, &p.Slug, &p.Title, &p.Content, &p.ParentID, &p.ProjectID, &p.IsPublic,
		&p.AuthorID, &p.LastEditedBy, &p.Views, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns pages ordered by last update, newest first, optionally
// narrowed to one project and a title/content search. The handler builds
// the hierarchy from this order, so children come out newest-first too.
func (s *WikiService) List(ctx context.Context, projectID *uuid.UUID, search string) ([]models.WikiPage, error) {
	query := `SELECT ` + wikiPageColumns + ` FROM wiki_pages`
	var args []any
	var conds []string

	if projectID != nil {
		args = append(args, *projectID)
		conds = append(conds, fmt.Sprintf("project_id = $%d", len(args)))
	}
	if search != "" {
		args = append(args, "%"+search+"%")
		conds = append(conds, fmt.Sprintf("(title ILIKE $%d OR content ILIKE $%d)", len(args), len(args)))
	}
	for i, cond := range conds {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += ` ORDER BY updated_at DESC`

	rows, err := s.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []models.WikiPage
	for rows.Next() {
		page, err := scanWikiPage(rows)
		if err != nil {
			return nil, err
		}
		pages = append(pages, *page)
	}
	return pages, rows.Err()
}

func (s *WikiService) GetByID(ctx context.Context, id uuid.UUID) (*models.WikiPage, error) {
	return scanWikiPage(s.db.Pool.QueryRow(ctx, `
		SELECT `+wikiPageColumns+` FROM wiki_pages WHERE id = $1
	`, id))
}

func (s *WikiService) GetBySlug(ctx context.Context, slug string) (*models.WikiPage, error) {
	return scanWikiPage(s.db.Pool.QueryRow(ctx, `
		SELECT `+wikiPageColumns+` FROM wiki_pages WHERE slug = $1
	`, slug))
}

func (s *WikiService) Create(ctx context.Context, page *models.WikiPage) (*models.WikiPage, error) {
	created, err := scanWikiPage(s.db.Pool.QueryRow(ctx, `
		INSERT INTO wiki_pages (slug, title, content, parent_id, project_id, is_public, author_id, last_edited_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		RETURNING `+wikiPageColumns+`
	`, page.Slug, page.Title, page.Content, page.ParentID, page.ProjectID, page.IsPublic, page.AuthorID))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlugTaken
		}
		return nil, fmt.Errorf("failed to create wiki page: %w", err)
	}
	return created, nil
}

// Update writes a history snapshot of the current revision and then applies
// the new one, in a single transaction. Reparenting is validated against
// cycles first.
func (s *WikiService) Update(ctx context.Context, page *models.WikiPage, editorID uuid.UUID) (*models.WikiPage, error) {
	if page.ParentID != nil {
		cyclic, err := s.wouldCreateCycle(ctx, page.ID, *page.ParentID)
		if err != nil {
			return nil, err
		}
		if cyclic {
			return nil, ErrParentCycle
		}
	}

	tx, err := s.db.Pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO wiki_page_history (page_id, title, content, edited_by)
		SELECT id, title, content, last_edited_by FROM wiki_pages WHERE id = $1
	`, page.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to record page history: %w", err)
	}

	updated, err := scanWikiPage(tx.QueryRow(ctx, `
		UPDATE wiki_pages SET title = $1, content = $2, parent_id = $3, project_id = $4,
			is_public = $5, last_edited_by = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING `+wikiPageColumns+`
	`, page.Title, page.Content, page.ParentID, page.ProjectID, page.IsPublic, editorID, page.ID))
	if err != nil {
		return nil, fmt.Errorf("failed to update wiki page: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return updated, nil
}

// wouldCreateCycle walks up from the candidate parent. The walk is capped
// at the table size worth of hops; hitting the cap means the stored chain
// is already corrupt and the reparent is refused.
func (s *WikiService) wouldCreateCycle(ctx context.Context, pageID, parentID uuid.UUID) (bool, error) {
	if pageID == parentID {
		return true, nil
	}

	current := parentID
	for hops := 0; hops < 1000; hops++ {
		var next *uuid.UUID
		err := s.db.Pool.QueryRow(ctx, `
			SELECT parent_id FROM wiki_pages WHERE id = $1
		`, current).Scan(&next)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return false, nil
			}
			return false, err
		}
		if next == nil {
			return false, nil
		}
		if *next == pageID {
			return true, nil
		}
		current = *next
	}
	return true, nil
}

func (s *WikiService) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.Pool.Exec(ctx, `DELETE FROM wiki_pages WHERE id = $1`, id)
	return err
}

func (s *WikiService) IncrementViews(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.Pool.Exec(ctx, `UPDATE wiki_pages SET views = views + 1 WHERE id = $1`, id)
	return err
}

// HasEditGrant reports whether a user holds an explicit edit grant on the
// page. Part of the wiki gate's GrantStore.
func (s *WikiService) HasEditGrant(ctx context.Context, pageID, userID uuid.UUID) (bool, error) {
	var exists bool
	err := s.db.Pool.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM wiki_page_permissions
			WHERE page_id = $1 AND user_id = $2 AND can_edit = TRUE
		)
	`, pageID, userID).Scan(&exists)
	return exists, err
}

func (s *WikiService) GrantEdit(ctx context.Context, pageID, userID uuid.UUID) error {
	_, err := s.db.Pool.Exec(ctx, `
		INSERT INTO wiki_page_permissions (page_id, user_id, can_edit)
		VALUES ($1, $2, TRUE)
		ON CONFLICT (page_id, user_id) DO UPDATE SET can_edit = TRUE
	`, pageID, userID)
	return err
}

func (s *WikiService) RevokeGrant(ctx context.Context, pageID, userID uuid.UUID) error {
	_, err := s.db.Pool.Exec(ctx, `
		DELETE FROM wiki_page_permissions WHERE page_id = $1 AND user_id = $2
	`, pageID, userID)
	return err
}

func (s *WikiService) History(ctx context.Context, pageID uuid.UUID) ([]models.WikiPageRevision, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT id, page_id, title, content, edited_by, created_at
		FROM wiki_page_history
		WHERE page_id = $1
		ORDER BY created_at DESC
	`, pageID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var revisions []models.WikiPageRevision
	for rows.Next() {
		var r models.WikiPageRevision
		if err := rows.Scan(&r.ID, &r.PageID, &r.Title, &r.Content, &r.EditedBy, &r.CreatedAt); err != nil {
			return nil, err
		}
		revisions = append(revisions, r)
	}
	return revisions, rows.Err()
}
