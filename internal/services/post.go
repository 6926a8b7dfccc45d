package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/sayberrygames/studio-api/internal/database"
	"github.com/sayberrygames/studio-api/internal/models"
)

var ErrSlugTaken = errors.New("slug already in use")

const postColumns = `id, kind, slug, category, author, author_id,
	title_ko, title_en, title_ja, excerpt_ko, excerpt_en, excerpt_ja,
	content_ko, content_en, content_ja, published, date, views, created_at, updated_at`

type PostService struct {
	db *database.DB
}

func NewPostService(db *database.DB) *PostService {
	return &PostService{db: db}
}

func scanPost(row interface{ Scan(dest ...any) error }) (*models.Post, error) {
	var p models.Post
	err := row.Scan(
		&p.ID, &p.Kind, &p.Slug, &p.Category, &p.Author, &p.AuthorID,
		&p.TitleKo, &p.TitleEn, &p.TitleJa, &p.ExcerptKo, &p.ExcerptEn, &p.ExcerptJa,
		&p.ContentKo, &p.ContentEn, &p.ContentJa, &p.Published, &p.Date, &p.Views,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (s *PostService) Create(ctx context.Context, post *models.Post) (*models.Post, error) {
	created, err := scanPost(s.db.Pool.QueryRow(ctx, `
		INSERT INTO posts (kind, slug, category, author, author_id,
			title_ko, title_en, title_ja, excerpt_ko, excerpt_en, excerpt_ja,
			content_ko, content_en, content_ja, published, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING `+postColumns+`
	`, post.Kind, post.Slug, post.Category, post.Author, post.AuthorID,
		post.TitleKo, post.TitleEn, post.TitleJa,
		post.ExcerptKo, post.ExcerptEn, post.ExcerptJa,
		post.ContentKo, post.ContentEn, post.ContentJa,
		post.Published, post.Date))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlugTaken
		}
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	return created, nil
}

func (s *PostService) GetByID(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	return scanPost(s.db.Pool.QueryRow(ctx, `
		SELECT `+postColumns+` FROM posts WHERE id = $1
	`, id))
}

func (s *PostService) GetBySlug(ctx context.Context, kind, slug string) (*models.Post, error) {
	return scanPost(s.db.Pool.QueryRow(ctx, `
		SELECT `+postColumns+` FROM posts WHERE kind = $1 AND slug = $2
	`, kind, slug))
}

// List returns posts of one kind, newest first. publishedOnly hides drafts
// from the public site; editors pass false to see everything.
func (s *PostService) List(ctx context.Context, kind string, publishedOnly bool) ([]models.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE kind = $1`
	if publishedOnly {
		query += ` AND published = TRUE`
	}
	query += ` ORDER BY date DESC, created_at DESC`

	rows, err := s.db.Pool.Query(ctx, query, kind)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []models.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, *post)
	}
	return posts, rows.Err()
}

func (s *PostService) Update(ctx context.Context, post *models.Post) (*models.Post, error) {
	updated, err := scanPost(s.db.Pool.QueryRow(ctx, `
		UPDATE posts SET slug = $1, category = $2,
			title_ko = $3, title_en = $4, title_ja = $5,
			excerpt_ko = $6, excerpt_en = $7, excerpt_ja = $8,
			content_ko = $9, content_en = $10, content_ja = $11,
			published = $12, date = $13, author = $14, updated_at = NOW()
		WHERE id = $15
		RETURNING `+postColumns+`
	`, post.Slug, post.Category,
		post.TitleKo, post.TitleEn, post.TitleJa,
		post.ExcerptKo, post.ExcerptEn, post.ExcerptJa,
		post.ContentKo, post.ContentEn, post.ContentJa,
		post.Published, post.Date, post.Author, post.ID))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlugTaken
		}
		return nil, fmt.Errorf("failed to update post: %w", err)
	}
	return updated, nil
}

func (s *PostService) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.Pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	return err
}

// IncrementViews bumps the counter in one statement. No read-modify-write,
// but also no guarantee against a lost increment if the row is deleted
// concurrently; these are analytics-grade numbers.
func (s *PostService) IncrementViews(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.Pool.Exec(ctx, `UPDATE posts SET views = views + 1 WHERE id = $1`, id)
	return err
}
