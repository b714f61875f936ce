package twitter

// Tweet is a single post as returned by the v2 create-tweet endpoint.
type Tweet struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// User is the authenticated account profile.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

// createTweetRequest is the request body for POST /2/tweets.
type createTweetRequest struct {
	Text  string      `json:"text"`
	Reply *tweetReply `json:"reply,omitempty"`
}

// tweetReply carries the reply-to reference that chains a thread.
type tweetReply struct {
	InReplyToTweetID string `json:"in_reply_to_tweet_id"`
}

// createTweetResponse is the response from POST /2/tweets.
type createTweetResponse struct {
	Data Tweet `json:"data"`
}

// deleteTweetResponse is the response from DELETE /2/tweets/:id.
type deleteTweetResponse struct {
	Data struct {
		Deleted bool `json:"deleted"`
	} `json:"data"`
}

// meResponse is the response from GET /2/users/me.
type meResponse struct {
	Data User `json:"data"`
}
