// Package twitter is a minimal client for the X (Twitter) v2 REST API,
// covering the three calls the bot needs: create tweet, delete tweet,
// and the authenticated-user lookup.
package twitter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/dghubble/oauth1"
)

const defaultBaseURL = "https://api.twitter.com/2"

// Config holds the five credentials the client authenticates with.
// Writes are signed with the OAuth1 user context; reads use the
// application bearer token.
type Config struct {
	APIKey            string
	APISecret         string
	AccessToken       string
	AccessTokenSecret string
	BearerToken       string
}

// Client talks to the X API v2.
type Client struct {
	userClient   *http.Client // OAuth1-signed, for create/delete
	bearerClient *http.Client // for reads
	bearerToken  string
	baseURL      string
}

// NewClient creates a client from the given credentials.
func NewClient(cfg Config) *Client {
	oauthCfg := oauth1.NewConfig(cfg.APIKey, cfg.APISecret)
	token := oauth1.NewToken(cfg.AccessToken, cfg.AccessTokenSecret)

	userClient := oauthCfg.Client(oauth1.NoContext, token)
	userClient.Timeout = 30 * time.Second

	return &Client{
		userClient: userClient,
		bearerClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		bearerToken: cfg.BearerToken,
		baseURL:     defaultBaseURL,
	}
}

// SetBaseURL overrides the API base URL (used for testing).
func (c *Client) SetBaseURL(url string) {
	c.baseURL = url
}

// CreateTweet posts a tweet. A non-empty inReplyToID makes the tweet a
// reply to that tweet, chaining it into a thread.
func (c *Client) CreateTweet(ctx context.Context, text, inReplyToID string) (*Tweet, error) {
	reqBody := createTweetRequest{Text: text}
	if inReplyToID != "" {
		reqBody.Reply = &tweetReply{InReplyToTweetID: inReplyToID}
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	url := c.baseURL + "/tweets"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	respBody, err := c.do(c.userClient, req, http.StatusCreated)
	if err != nil {
		return nil, err
	}

	var createResp createTweetResponse
	if err := json.Unmarshal(respBody, &createResp); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	slog.Debug("created tweet", "id", createResp.Data.ID)
	return &createResp.Data, nil
}

// DeleteTweet deletes a tweet by ID. The platform enforces ownership.
func (c *Client) DeleteTweet(ctx context.Context, id string) (bool, error) {
	url := c.baseURL + "/tweets/" + id
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return false, fmt.Errorf("create request: %w", err)
	}

	respBody, err := c.do(c.userClient, req, http.StatusOK)
	if err != nil {
		return false, err
	}

	var deleteResp deleteTweetResponse
	if err := json.Unmarshal(respBody, &deleteResp); err != nil {
		return false, fmt.Errorf("parse response: %w", err)
	}

	return deleteResp.Data.Deleted, nil
}

// Me returns the authenticated account's profile. This is the identity
// query the session bootstrap uses to confirm the credentials are live.
func (c *Client) Me(ctx context.Context) (*User, error) {
	url := c.baseURL + "/users/me"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.bearerToken)

	respBody, err := c.do(c.bearerClient, req, http.StatusOK)
	if err != nil {
		return nil, err
	}

	var me meResponse
	if err := json.Unmarshal(respBody, &me); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	return &me.Data, nil
}

// do sends the request and returns the body, converting any status
// other than wantStatus into an *APIError.
func (c *Client) do(client *http.Client, req *http.Request, wantStatus int) ([]byte, error) {
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != wantStatus {
		return nil, newAPIError(resp.StatusCode, respBody)
	}

	return respBody, nil
}
