package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mlevan/xbot/internal/config"
	"github.com/mlevan/xbot/internal/history"
)

var postDryRun bool

var postCmd = &cobra.Command{
	Use:   "post <message>",
	Short: "Post a single tweet",
	Long: `Post a single tweet.

Examples:
  xbot post "Hello, world!"            # Actually post
  xbot post --dry-run "Hello, world!"  # Show what would be posted`,
	Args: cobra.ExactArgs(1),
	RunE: runPost,
}

func init() {
	postCmd.Flags().BoolVar(&postDryRun, "dry-run", false, "Show what would be posted without actually posting")
	rootCmd.AddCommand(postCmd)
}

func runPost(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	message := args[0]

	if postDryRun {
		fmt.Println("=== DRY RUN - Not posting ===")
		fmt.Println(message)
		return nil
	}

	sess, cfg, err := newSession(ctx)
	if err != nil {
		return err
	}

	result, err := sess.Post(ctx, message)
	if err != nil {
		return fmt.Errorf("post: %w", err)
	}

	fmt.Printf("Posted successfully!\nID: %s\n", result.ID)

	recordPosts(ctx, cfg, []recordedPost{{id: result.ID, text: result.Text}})
	return nil
}

// recordedPost is the slice element recordPosts persists.
type recordedPost struct {
	id        string
	text      string
	inReplyTo string
}

// recordPosts writes posted tweets to the history store. History is
// best effort: a failure here is logged, never fails the command.
func recordPosts(ctx context.Context, cfg *config.Config, posts []recordedPost) {
	if err := cfg.ValidateForHistory(); err != nil {
		slog.Warn("skipping post history", "error", err)
		return
	}

	store, err := history.NewStore(ctx, cfg.HistoryDBPath)
	if err != nil {
		slog.Warn("failed to open history store", "error", err)
		return
	}
	defer store.Close()

	if err := store.Migrate(ctx); err != nil {
		slog.Warn("failed to migrate history store", "error", err)
		return
	}

	for _, p := range posts {
		err := store.RecordPost(ctx, history.Post{
			TweetID:     p.id,
			Text:        p.text,
			InReplyToID: p.inReplyTo,
		})
		if err != nil {
			slog.Warn("failed to record post", "id", p.id, "error", err)
		}
	}
}
