// Package session implements the authenticated posting workflow: a
// Session is constructed once against live credentials and exposes
// post, thread, delete, and identity operations.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/mlevan/xbot/internal/twitter"
)

// MaxPostLength is the platform's fixed character limit per post,
// counted in runes.
const MaxPostLength = 280

// Session owns an authenticated client handle and the identity
// resolved at construction. A *Session only exists after the identity
// check has succeeded; every method may assume live credentials.
type Session struct {
	api      API
	logger   *slog.Logger
	identity twitter.User
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger the Session emits operation outcomes to.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// New verifies the credentials behind api with an identity query and
// returns a ready Session. A rejected or failed identity query is
// fatal: no Session is returned and no retry is attempted.
func New(ctx context.Context, api API, opts ...Option) (*Session, error) {
	s := &Session{
		api:    api,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	me, err := api.Me(ctx)
	if err != nil {
		return nil, fmt.Errorf("verify credentials: %w", err)
	}
	s.identity = *me

	s.logger.Info("authentication successful", "username", me.Username)
	return s, nil
}

// Identity returns the account profile resolved at construction.
func (s *Session) Identity() twitter.User {
	return s.identity
}

// Post publishes a single standalone message. Failures come back as a
// *OpError whose Kind distinguishes local validation, platform
// permission rejections, and everything else.
func (s *Session) Post(ctx context.Context, text string) (*PostResult, error) {
	return s.post(ctx, text, "")
}

// PostThread publishes messages in order as a linear reply chain: each
// message after the first replies to its predecessor. On the first
// failure the thread stops and the posts made so far are returned
// together with the failing message's error; earlier posts are not
// rolled back.
func (s *Session) PostThread(ctx context.Context, messages []string) ([]PostResult, error) {
	var results []PostResult
	previousID := ""

	for _, message := range messages {
		result, err := s.post(ctx, message, previousID)
		if err != nil {
			return results, err
		}
		results = append(results, *result)
		previousID = result.ID
	}

	return results, nil
}

// Delete removes a previously posted message by ID. Any failure (not
// found, not owned, network) yields false and a classified error;
// the Session itself is unaffected.
func (s *Session) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := s.api.DeleteTweet(ctx, id)
	if err != nil {
		return false, s.failure("delete", err)
	}
	if !deleted {
		return false, s.failure("delete", fmt.Errorf("platform did not delete tweet %s", id))
	}

	s.logger.Info("tweet deleted", "id", id)
	return true, nil
}

// post is the shared create path for Post and PostThread. Length is
// validated locally before any network call.
func (s *Session) post(ctx context.Context, text, inReplyToID string) (*PostResult, error) {
	if n := utf8.RuneCountInString(text); n > MaxPostLength {
		err := &OpError{
			Kind: KindValidation,
			Op:   "post",
			Err:  fmt.Errorf("message is %d characters, limit is %d", n, MaxPostLength),
		}
		s.logger.Error("post rejected", "kind", err.Kind.String(), "error", err.Err)
		return nil, err
	}

	tweet, err := s.api.CreateTweet(ctx, text, inReplyToID)
	if err != nil {
		return nil, s.failure("post", err)
	}

	s.logger.Info("tweet posted", "id", tweet.ID, "in_reply_to", inReplyToID)
	return &PostResult{ID: tweet.ID, Text: tweet.Text}, nil
}

// failure classifies a platform error, logs it, and wraps it in an
// OpError.
func (s *Session) failure(op string, err error) *OpError {
	kind := KindTransient
	var apiErr *twitter.APIError
	if errors.As(err, &apiErr) && apiErr.PermissionDenied() {
		kind = KindPermissionDenied
	}

	opErr := &OpError{Kind: kind, Op: op, Err: err}
	s.logger.Error(op+" failed", "kind", kind.String(), "error", err)
	return opErr
}
