package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mlevan/xbot/internal/config"
	"github.com/mlevan/xbot/internal/history"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded posts",
	Long:  `Display posts recorded in the local history database, most recent first.`,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of posts to show")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load(envFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.ValidateForHistory(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	store, err := history.NewStore(ctx, cfg.HistoryDBPath)
	if err != nil {
		return fmt.Errorf("open history store: %w", err)
	}
	defer store.Close()

	if err := store.Migrate(ctx); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	posts, err := store.ListPosts(ctx, historyLimit)
	if err != nil {
		return fmt.Errorf("list posts: %w", err)
	}

	if len(posts) == 0 {
		fmt.Println("No posts recorded.")
		return nil
	}

	for _, post := range posts {
		status := ""
		if post.DeletedAt.Valid {
			status = " [deleted]"
		}
		reply := ""
		if post.InReplyToID != "" {
			reply = fmt.Sprintf(" (reply to %s)", post.InReplyToID)
		}
		fmt.Printf("%s  %s%s%s\n  %s\n", post.PostedAt.Format("2006-01-02 15:04"), post.TweetID, reply, status, post.Text)
	}

	return nil
}
