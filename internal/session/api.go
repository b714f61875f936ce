package session

import (
	"context"

	"github.com/mlevan/xbot/internal/twitter"
)

// API is the platform capability a Session drives. *twitter.Client
// satisfies it; tests substitute a fake so no network is involved.
type API interface {
	// CreateTweet posts text, optionally as a reply to inReplyToID.
	CreateTweet(ctx context.Context, text, inReplyToID string) (*twitter.Tweet, error)

	// DeleteTweet removes a tweet by ID.
	DeleteTweet(ctx context.Context, id string) (bool, error)

	// Me returns the authenticated account's profile.
	Me(ctx context.Context) (*twitter.User, error)
}
