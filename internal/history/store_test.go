package history

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	ctx := context.Background()
	store, err := NewStore(ctx, dbPath)
	require.NoError(t, err)

	require.NoError(t, store.Migrate(ctx))

	t.Cleanup(func() {
		store.Close()
	})
	return store
}

func TestNewStore(t *testing.T) {
	t.Run("creates directory and database", func(t *testing.T) {
		tmpDir := t.TempDir()
		dbPath := filepath.Join(tmpDir, "subdir", "test.db")

		ctx := context.Background()
		store, err := NewStore(ctx, dbPath)
		require.NoError(t, err)
		defer store.Close()

		_, err = os.Stat(dbPath)
		assert.NoError(t, err)
	})

	t.Run("sets WAL mode", func(t *testing.T) {
		store := newTestStore(t)

		var mode string
		err := store.QueryRowContext(context.Background(), "PRAGMA journal_mode").Scan(&mode)
		assert.NoError(t, err)
		assert.Equal(t, "wal", mode)
	})
}

func TestStore_Migrate(t *testing.T) {
	t.Run("is idempotent", func(t *testing.T) {
		store := newTestStore(t)
		assert.NoError(t, store.Migrate(context.Background()))
	})
}

func TestStore_RecordPost(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		store := newTestStore(t)
		ctx := context.Background()

		err := store.RecordPost(ctx, Post{
			TweetID:  "1001",
			Text:     "hello world",
			PostedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)

		posts, err := store.ListPosts(ctx, 10)
		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, "1001", posts[0].TweetID)
		assert.Equal(t, "hello world", posts[0].Text)
		assert.Empty(t, posts[0].InReplyToID)
		assert.False(t, posts[0].DeletedAt.Valid)
	})

	t.Run("defaults posted_at to now", func(t *testing.T) {
		store := newTestStore(t)
		ctx := context.Background()

		require.NoError(t, store.RecordPost(ctx, Post{TweetID: "1002", Text: "x"}))

		posts, err := store.ListPosts(ctx, 1)
		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.WithinDuration(t, time.Now().UTC(), posts[0].PostedAt, time.Minute)
	})

	t.Run("duplicate tweet id is rejected", func(t *testing.T) {
		store := newTestStore(t)
		ctx := context.Background()

		require.NoError(t, store.RecordPost(ctx, Post{TweetID: "1003", Text: "a"}))
		assert.Error(t, store.RecordPost(ctx, Post{TweetID: "1003", Text: "b"}))
	})
}

func TestStore_MarkDeleted(t *testing.T) {
	t.Run("stamps deleted_at", func(t *testing.T) {
		store := newTestStore(t)
		ctx := context.Background()

		require.NoError(t, store.RecordPost(ctx, Post{TweetID: "1004", Text: "doomed"}))
		require.NoError(t, store.MarkDeleted(ctx, "1004"))

		posts, err := store.ListPosts(ctx, 1)
		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.True(t, posts[0].DeletedAt.Valid)
	})

	t.Run("untracked id is not an error", func(t *testing.T) {
		store := newTestStore(t)
		assert.NoError(t, store.MarkDeleted(context.Background(), "never-recorded"))
	})
}

func TestStore_ListPosts(t *testing.T) {
	t.Run("most recent first, limited", func(t *testing.T) {
		store := newTestStore(t)
		ctx := context.Background()

		base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
		for i, id := range []string{"1", "2", "3"} {
			require.NoError(t, store.RecordPost(ctx, Post{
				TweetID:  id,
				Text:     "post " + id,
				PostedAt: base.Add(time.Duration(i) * time.Hour),
			}))
		}

		posts, err := store.ListPosts(ctx, 2)
		require.NoError(t, err)
		require.Len(t, posts, 2)
		assert.Equal(t, "3", posts[0].TweetID)
		assert.Equal(t, "2", posts[1].TweetID)
	})

	t.Run("thread reply reference survives", func(t *testing.T) {
		store := newTestStore(t)
		ctx := context.Background()

		require.NoError(t, store.RecordPost(ctx, Post{TweetID: "10", Text: "A"}))
		require.NoError(t, store.RecordPost(ctx, Post{TweetID: "11", Text: "B", InReplyToID: "10"}))

		posts, err := store.ListPosts(ctx, 10)
		require.NoError(t, err)
		require.Len(t, posts, 2)

		byID := map[string]Post{}
		for _, p := range posts {
			byID[p.TweetID] = p
		}
		assert.Equal(t, "10", byID["11"].InReplyToID)
	})
}
