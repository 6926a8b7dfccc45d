package database

import (
	"context"
	"fmt"
)

var migrations = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`,

	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		email VARCHAR(255) UNIQUE NOT NULL,
		name VARCHAR(255) NOT NULL DEFAULT '',
		password_hash VARCHAR(255),
		avatar_url VARCHAR(500),
		provider VARCHAR(50),
		provider_id VARCHAR(255),
		role VARCHAR(20) NOT NULL DEFAULT 'user',
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		UNIQUE(provider, provider_id)
	)`,

	`CREATE TABLE IF NOT EXISTS posts (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		kind VARCHAR(20) NOT NULL,
		slug VARCHAR(255) NOT NULL,
		category VARCHAR(50) NOT NULL DEFAULT '',
		author VARCHAR(255) NOT NULL,
		author_id UUID REFERENCES users(id) ON DELETE SET NULL,
		title_ko TEXT NOT NULL,
		title_en TEXT NOT NULL,
		title_ja TEXT NOT NULL,
		excerpt_ko TEXT NOT NULL DEFAULT '',
		excerpt_en TEXT NOT NULL DEFAULT '',
		excerpt_ja TEXT NOT NULL DEFAULT '',
		content_ko TEXT NOT NULL,
		content_en TEXT NOT NULL,
		content_ja TEXT NOT NULL,
		published BOOLEAN NOT NULL DEFAULT TRUE,
		date DATE NOT NULL DEFAULT CURRENT_DATE,
		views INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		UNIQUE(kind, slug)
	)`,

	`CREATE TABLE IF NOT EXISTS team_members (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		user_id UUID REFERENCES users(id) ON DELETE SET NULL,
		name VARCHAR(255) NOT NULL,
		position VARCHAR(255) NOT NULL DEFAULT '',
		bio TEXT NOT NULL DEFAULT '',
		image_url VARCHAR(500),
		active BOOLEAN NOT NULL DEFAULT TRUE,
		sort_order INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS projects (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		slug VARCHAR(255) UNIQUE NOT NULL,
		name_ko VARCHAR(255) NOT NULL,
		name_en VARCHAR(255) NOT NULL,
		name_ja VARCHAR(255) NOT NULL,
		logo_url VARCHAR(500),
		active BOOLEAN NOT NULL DEFAULT TRUE,
		sort_order INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS team_member_projects (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		team_member_id UUID NOT NULL REFERENCES team_members(id) ON DELETE CASCADE,
		project_id UUID NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		role VARCHAR(100) NOT NULL DEFAULT '',
		is_lead BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		UNIQUE(team_member_id, project_id)
	)`,

	`CREATE TABLE IF NOT EXISTS wiki_pages (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		slug VARCHAR(255) UNIQUE NOT NULL,
		title VARCHAR(500) NOT NULL,
		content TEXT NOT NULL DEFAULT '',
		parent_id UUID REFERENCES wiki_pages(id) ON DELETE SET NULL,
		project_id UUID REFERENCES projects(id) ON DELETE SET NULL,
		is_public BOOLEAN NOT NULL DEFAULT FALSE,
		author_id UUID REFERENCES users(id) ON DELETE SET NULL,
		last_edited_by UUID REFERENCES users(id) ON DELETE SET NULL,
		views INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS wiki_page_permissions (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		page_id UUID NOT NULL REFERENCES wiki_pages(id) ON DELETE CASCADE,
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		can_edit BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		UNIQUE(page_id, user_id)
	)`,

	`CREATE TABLE IF NOT EXISTS wiki_page_history (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		page_id UUID NOT NULL REFERENCES wiki_pages(id) ON DELETE CASCADE,
		title VARCHAR(500) NOT NULL,
		content TEXT NOT NULL,
		edited_by UUID REFERENCES users(id) ON DELETE SET NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS refresh_tokens (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		token_hash VARCHAR(255) NOT NULL UNIQUE,
		expires_at TIMESTAMP WITH TIME ZONE NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS password_resets (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		token_hash VARCHAR(255) NOT NULL UNIQUE,
		expires_at TIMESTAMP WITH TIME ZONE NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE INDEX IF NOT EXISTS idx_posts_kind_published ON posts(kind, published)`,
	`CREATE INDEX IF NOT EXISTS idx_posts_author_id ON posts(author_id)`,
	`CREATE INDEX IF NOT EXISTS idx_team_members_user_id ON team_members(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_team_member_projects_member ON team_member_projects(team_member_id)`,
	`CREATE INDEX IF NOT EXISTS idx_team_member_projects_project ON team_member_projects(project_id)`,
	`CREATE INDEX IF NOT EXISTS idx_wiki_pages_parent_id ON wiki_pages(parent_id)`,
	`CREATE INDEX IF NOT EXISTS idx_wiki_pages_project_id ON wiki_pages(project_id)`,
	`CREATE INDEX IF NOT EXISTS idx_wiki_page_permissions_page ON wiki_page_permissions(page_id)`,
	`CREATE INDEX IF NOT EXISTS idx_wiki_page_history_page ON wiki_page_history(page_id)`,
	`CREATE INDEX IF NOT EXISTS idx_refresh_tokens_user_id ON refresh_tokens(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_password_resets_user_id ON password_resets(user_id)`,
}

func (db *DB) Migrate(ctx context.Context) error {
	for i, migration := range migrations {
		if _, err := db.Pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
