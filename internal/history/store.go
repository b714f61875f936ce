// Package history records every post and deletion the bot performs in
// a local SQLite database.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS posts (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	tweet_id TEXT NOT NULL UNIQUE,
	text TEXT NOT NULL,
	in_reply_to_id TEXT NOT NULL DEFAULT '',
	posted_at TIMESTAMP NOT NULL,
	deleted_at TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_posts_posted_at ON posts(posted_at);
`

// Post is one recorded post attempt.
type Post struct {
	TweetID     string
	Text        string
	InReplyToID string
	PostedAt    time.Time
	DeletedAt   sql.NullTime
}

// Store wraps the history database connection.
type Store struct {
	*sql.DB
}

// NewStore opens (creating if needed) the history database.
func NewStore(ctx context.Context, dbPath string) (*Store, error) {
	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	sqlDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// SQLite doesn't handle concurrent writes well
	sqlDB.SetMaxOpenConns(1)

	if _, err := sqlDB.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}
	if _, err := sqlDB.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	return &Store{DB: sqlDB}, nil
}

// Migrate creates the schema. It is idempotent.
func (s *Store) Migrate(ctx context.Context) error {
	slog.Debug("running history migrations")
	if _, err := s.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// RecordPost stores a successfully created post.
func (s *Store) RecordPost(ctx context.Context, post Post) error {
	if post.PostedAt.IsZero() {
		post.PostedAt = time.Now().UTC()
	}

	_, err := s.ExecContext(ctx, `
		INSERT INTO posts (tweet_id, text, in_reply_to_id, posted_at)
		VALUES (?, ?, ?, ?)
	`, post.TweetID, post.Text, post.InReplyToID, post.PostedAt)
	if err != nil {
		return fmt.Errorf("insert post: %w", err)
	}
	return nil
}

// MarkDeleted stamps a recorded post as deleted. An untracked tweet ID
// is not an error; the bot may delete posts it never recorded.
func (s *Store) MarkDeleted(ctx context.Context, tweetID string) error {
	_, err := s.ExecContext(ctx, `
		UPDATE posts SET deleted_at = ? WHERE tweet_id = ?
	`, time.Now().UTC(), tweetID)
	if err != nil {
		return fmt.Errorf("mark deleted: %w", err)
	}
	return nil
}

// ListPosts returns up to limit recorded posts, most recent first.
func (s *Store) ListPosts(ctx context.Context, limit int) ([]Post, error) {
	rows, err := s.QueryContext(ctx, `
		SELECT tweet_id, text, in_reply_to_id, posted_at, deleted_at
		FROM posts
		ORDER BY posted_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query posts: %w", err)
	}
	defer rows.Close()

	var posts []Post
	for rows.Next() {
		var p Post
		if err := rows.Scan(&p.TweetID, &p.Text, &p.InReplyToID, &p.PostedAt, &p.DeletedAt); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate posts: %w", err)
	}

	return posts, nil
}
