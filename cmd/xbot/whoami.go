package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Verify credentials and print the authenticated account",
	RunE:  runWhoami,
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

func runWhoami(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	sess, _, err := newSession(ctx)
	if err != nil {
		return err
	}

	identity := sess.Identity()
	fmt.Printf("Logged in as @%s (%s, id %s)\n", identity.Username, identity.Name, identity.ID)
	return nil
}
