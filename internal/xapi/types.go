// Package xapi is a thin client for the X API v2 user-blocking endpoints.
//
// It covers exactly what the moderation blocks need: resolving the
// authenticated user, creating/removing a block, and listing blocked users
// with optional expansions.
package xapi

// UserObject is a user entry in a v2 data/includes payload.
type UserObject struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name,omitempty"`
}

// ListParams are the query parameters for the blocked-users listing call.
// Zero values are omitted from the request.
type ListParams struct {
	MaxResults      int
	PaginationToken string
	Expansions      []string
	TweetFields     []string
	UserFields      []string
}

// BlockedPage is one page of blocked users, flattened the way the blocks
// surface it: ids and usernames are parallel slices, position i of each
// refers to the same user.
type BlockedPage struct {
	UserIDs   []string
	Usernames []string
	Included  map[string]any
	Meta      map[string]any
	NextToken string
}

type listEnvelope struct {
	Data     []UserObject   `json:"data"`
	Includes map[string]any `json:"includes"`
	Meta     map[string]any `json:"meta"`
}

type blockingEnvelope struct {
	Data struct {
		Blocking bool `json:"blocking"`
	} `json:"data"`
}

type meEnvelope struct {
	Data UserObject `json:"data"`
}
