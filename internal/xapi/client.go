package xapi

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"fiber-ent-x-moderation/internal/logx"
	"fiber-ent-x-moderation/internal/redisx"
)

var xapiLogger = logx.GetScope("xapi")

const meCacheTTL = 15 * time.Minute

// Client calls the X API v2 on behalf of one bearer token.
type Client struct {
	base   string
	bearer string
	ua     string
	httpc  *http.Client
	rdb    *redisx.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpc = h }
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.ua = ua }
}

// WithTimeout overrides the request timeout. Non-positive values keep the
// default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpc.Timeout = d
		}
	}
}

// WithMeCache caches authenticated-user lookups in Redis. The blocking
// endpoints all need the caller's own user id, so this saves one extra
// vendor round trip per run.
func WithMeCache(rdb *redisx.Client) Option {
	return func(c *Client) { c.rdb = rdb }
}

// New creates a client for one access token. baseURL has no trailing slash
// (e.g. https://api.twitter.com).
func New(baseURL, bearerToken string, opts ...Option) *Client {
	c := &Client{
		base:   baseURL,
		bearer: bearerToken,
		httpc:  &http.Client{Timeout: 10 * time.Second},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Me resolves the id of the authenticated user.
func (c *Client) Me(ctx context.Context) (string, error) {
	cacheKey := "xapi:me:" + tokenDigest(c.bearer)
	if c.rdb != nil {
		if id, err := c.rdb.Get(ctx, cacheKey).Result(); err == nil && id != "" {
			return id, nil
		}
	}

	body, err := c.do(ctx, http.MethodGet, "/2/users/me", nil, nil)
	if err != nil {
		return "", err
	}
	var env meEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return "", fmt.Errorf("decode users/me response: %w", err)
	}
	if env.Data.ID == "" {
		return "", fmt.Errorf("users/me response missing id")
	}

	if c.rdb != nil {
		// Cache is best effort; a miss only costs a round trip.
		_ = c.rdb.Set(ctx, cacheKey, env.Data.ID, meCacheTTL).Err()
	}
	return env.Data.ID, nil
}

// MeUser resolves the full profile of the authenticated user. Unlike Me this
// is never cached; it is used when connecting an account, where a stale
// handle would be stored.
func (c *Client) MeUser(ctx context.Context) (*UserObject, error) {
	body, err := c.do(ctx, http.MethodGet, "/2/users/me", nil, nil)
	if err != nil {
		return nil, err
	}
	var env meEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decode users/me response: %w", err)
	}
	if env.Data.ID == "" {
		return nil, fmt.Errorf("users/me response missing id")
	}
	return &env.Data, nil
}

// BlockUser blocks targetID on behalf of the authenticated user.
func (c *Client) BlockUser(ctx context.Context, targetID string) (bool, error) {
	me, err := c.Me(ctx)
	if err != nil {
		return false, err
	}
	payload, _ := json.Marshal(map[string]string{"target_user_id": targetID})
	body, err := c.do(ctx, http.MethodPost, "/2/users/"+url.PathEscape(me)+"/blocking", nil, payload)
	if err != nil {
		return false, err
	}
	var env blockingEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return false, fmt.Errorf("decode blocking response: %w", err)
	}
	return env.Data.Blocking, nil
}

// UnblockUser removes a block. The vendor treats unblocking a user who is
// not blocked as success, so this is idempotent.
func (c *Client) UnblockUser(ctx context.Context, targetID string) (bool, error) {
	me, err := c.Me(ctx)
	if err != nil {
		return false, err
	}
	path := "/2/users/" + url.PathEscape(me) + "/blocking/" + url.PathEscape(targetID)
	body, err := c.do(ctx, http.MethodDelete, path, nil, nil)
	if err != nil {
		return false, err
	}
	var env blockingEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return false, fmt.Errorf("decode blocking response: %w", err)
	}
	return !env.Data.Blocking, nil
}

// ListBlocked returns one page of users blocked by the authenticated user.
func (c *Client) ListBlocked(ctx context.Context, p ListParams) (*BlockedPage, error) {
	me, err := c.Me(ctx)
	if err != nil {
		return nil, err
	}
	body, err := c.do(ctx, http.MethodGet, "/2/users/"+url.PathEscape(me)+"/blocking", buildListQuery(p), nil)
	if err != nil {
		return nil, err
	}
	var env listEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decode blocking list response: %w", err)
	}

	page := &BlockedPage{
		Included: env.Includes,
		Meta:     env.Meta,
	}
	for _, u := range env.Data {
		page.UserIDs = append(page.UserIDs, u.ID)
		page.Usernames = append(page.Usernames, u.Username)
	}
	if env.Meta != nil {
		if nt, _ := env.Meta["next_token"].(string); nt != "" {
			page.NextToken = nt
		}
	}
	return page, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload []byte) ([]byte, error) {
	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	var rd io.Reader
	if payload != nil {
		rd = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.bearer)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.ua != "" {
		req.Header.Set("User-Agent", c.ua)
	}

	start := time.Now()
	res, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	body, err := io.ReadAll(io.LimitReader(res.Body, 4<<20))
	if err != nil {
		return nil, err
	}

	xapiLogger.Debug("vendor call",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", res.StatusCode),
		zap.Int64("latency_ms", time.Since(start).Milliseconds()),
	)

	if res.StatusCode >= http.StatusBadRequest {
		return nil, newAPIError(res.StatusCode, body)
	}
	return body, nil
}

func tokenDigest(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:8])
}
