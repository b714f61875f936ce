package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mlevan/xbot/internal/history"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <tweet-id>",
	Short: "Delete a tweet by ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	id := args[0]

	sess, cfg, err := newSession(ctx)
	if err != nil {
		return err
	}

	deleted, err := sess.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	if !deleted {
		return fmt.Errorf("tweet %s was not deleted", id)
	}

	fmt.Printf("Deleted tweet %s\n", id)

	// Best effort history update
	if err := cfg.ValidateForHistory(); err == nil {
		store, err := history.NewStore(ctx, cfg.HistoryDBPath)
		if err != nil {
			slog.Warn("failed to open history store", "error", err)
			return nil
		}
		defer store.Close()

		if err := store.Migrate(ctx); err != nil {
			slog.Warn("failed to migrate history store", "error", err)
			return nil
		}
		if err := store.MarkDeleted(ctx, id); err != nil {
			slog.Warn("failed to mark post deleted", "id", id, "error", err)
		}
	}

	return nil
}
