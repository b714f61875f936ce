package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mlevan/xbot/internal/session"
)

var (
	threadDryRun bool
	threadSplit  bool
)

var threadCmd = &cobra.Command{
	Use:   "thread <message> [message...]",
	Short: "Post a thread of tweets",
	Long: `Post an ordered sequence of tweets where each replies to the
previous one.

Examples:
  xbot thread "First tweet" "Second tweet" "Third tweet"
  xbot thread --split "One long text that gets broken into numbered parts"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runThread,
}

func init() {
	threadCmd.Flags().BoolVar(&threadDryRun, "dry-run", false, "Show what would be posted without actually posting")
	threadCmd.Flags().BoolVar(&threadSplit, "split", false, "Split a single long message into thread parts")
	rootCmd.AddCommand(threadCmd)
}

func runThread(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	messages := args
	if threadSplit {
		if len(args) != 1 {
			return fmt.Errorf("--split takes exactly one message")
		}
		if parts := session.Split(args[0], session.MaxPostLength); parts != nil {
			messages = parts
		}
	}

	if threadDryRun {
		fmt.Println("=== DRY RUN - Not posting ===")
		for i, message := range messages {
			fmt.Printf("[%d] %s\n", i+1, message)
		}
		return nil
	}

	sess, cfg, err := newSession(ctx)
	if err != nil {
		return err
	}

	results, threadErr := sess.PostThread(ctx, messages)

	recorded := make([]recordedPost, 0, len(results))
	previousID := ""
	for i, result := range results {
		fmt.Printf("[%d/%d] posted: %s\n", i+1, len(messages), result.ID)
		recorded = append(recorded, recordedPost{id: result.ID, text: result.Text, inReplyTo: previousID})
		previousID = result.ID
	}
	recordPosts(ctx, cfg, recorded)

	if threadErr != nil {
		return fmt.Errorf("thread stopped after %d of %d posts: %w", len(results), len(messages), threadErr)
	}

	fmt.Println("Thread posted successfully!")
	return nil
}
