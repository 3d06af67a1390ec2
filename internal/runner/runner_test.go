package runner

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"fiber-ent-x-moderation/ent"
	"fiber-ent-x-moderation/internal/blocks"
	"fiber-ent-x-moderation/internal/blocks/social"
	"fiber-ent-x-moderation/internal/secretx"
	"fiber-ent-x-moderation/internal/xapi"
)

func newTestClient(t *testing.T) *ent.Client {
	t.Helper()
	dsn := "file:ent?mode=memory&cache=shared&_fk=1"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	_, _ = db.Exec("PRAGMA foreign_keys = ON")
	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Schema.Create(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return client
}

func newTestSealer(t *testing.T) *secretx.Sealer {
	t.Helper()
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		t.Fatalf("key: %v", err)
	}
	s, err := secretx.NewSealer(base64.StdEncoding.EncodeToString(key))
	if err != nil {
		t.Fatalf("sealer: %v", err)
	}
	return s
}

// fakeVendor answers the moderation endpoints for the token "sealed-token".
func fakeVendor(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/2/users/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer sealed-token" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"title":"Unauthorized"}`))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"data": map[string]string{"id": "777", "username": "moderator"}})
	})
	mux.HandleFunc("/2/users/777/blocking", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"data": map[string]bool{"blocking": true}})
	})
	return httptest.NewServer(mux)
}

type capturePublisher struct {
	keys   []string
	bodies [][]byte
}

func (p *capturePublisher) Publish(_ context.Context, key string, body []byte) error {
	p.keys = append(p.keys, key)
	p.bodies = append(p.bodies, body)
	return nil
}

func (p *capturePublisher) Close() error { return nil }

func newTestRunner(t *testing.T, srv *httptest.Server, pub *capturePublisher) (*Runner, *ent.Client, *ent.SocialAccount, *ent.User) {
	t.Helper()
	client := newTestClient(t)
	sealer := newTestSealer(t)

	ctx := context.Background()
	user, err := client.User.Create().SetDisplayName("Runner").Save(ctx)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	sealed, err := sealer.Seal("sealed-token")
	if err != nil {
		t.Fatalf("seal: %v", err)
	}
	acct, err := client.SocialAccount.Create().
		SetHandle("moderator").
		SetProviderUserID("777").
		SetAccessTokenSealed(sealed).
		SetOwner(user).
		Save(ctx)
	if err != nil {
		t.Fatalf("create account: %v", err)
	}

	factory := func(token string) *xapi.Client {
		return xapi.New(srv.URL, token, xapi.WithHTTPClient(srv.Client()))
	}
	reg := blocks.NewRegistry()
	reg.MustRegister(
		social.NewBlockUserBlock(factory),
		social.NewUnblockUserBlock(factory),
		social.NewGetBlockedUsersBlock(factory),
	)

	r := &Runner{Registry: reg, Client: client, Sealer: sealer}
	// A typed-nil *capturePublisher would defeat the MQ == nil guard.
	if pub != nil {
		r.MQ = pub
	}
	return r, client, acct, user
}

type memoryCheckpoints struct {
	m map[string]string
}

func (s *memoryCheckpoints) Load(_ context.Context, accountID uuid.UUID, blockID string) (string, error) {
	return s.m[checkpointKey(accountID, blockID)], nil
}

func (s *memoryCheckpoints) Save(_ context.Context, accountID uuid.UUID, blockID, token string) error {
	s.m[checkpointKey(accountID, blockID)] = token
	return nil
}

func TestRunner_BlockUser_AuditsAndPublishes(t *testing.T) {
	srv := fakeVendor(t)
	defer srv.Close()

	pub := &capturePublisher{}
	r, client, acct, user := newTestRunner(t, srv, pub)
	defer client.Close()

	res, err := r.Run(context.Background(), Request{
		UserID:  user.ID,
		Account: acct,
		BlockID: social.BlockUserID,
		Input:   blocks.Input{"target_user_id": "12345"},
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Output.Err() != "" {
		t.Fatalf("error output: %q", res.Output.Err())
	}

	exec := res.Execution
	if exec.Status != "ok" {
		t.Fatalf("status: %s", exec.Status)
	}
	if exec.BlockID != social.BlockUserID || exec.BlockName != "block_user" {
		t.Fatalf("block identity: %s/%s", exec.BlockID, exec.BlockName)
	}
	if _, leaked := exec.Input[social.AccessTokenKey]; leaked {
		t.Fatalf("audited input must not contain the access token")
	}
	if exec.Input["target_user_id"] != "12345" {
		t.Fatalf("audited input: %v", exec.Input)
	}
	if exec.DurationMs < 0 {
		t.Fatalf("duration: %d", exec.DurationMs)
	}

	if len(pub.keys) != 1 || pub.keys[0] != "moderation.block" {
		t.Fatalf("published keys: %v", pub.keys)
	}
	var evt map[string]any
	if err := json.Unmarshal(pub.bodies[0], &evt); err != nil {
		t.Fatalf("event: %v", err)
	}
	if evt["status"] != "ok" || evt["handle"] != "moderator" {
		t.Fatalf("event payload: %v", evt)
	}
}

func TestRunner_VendorFailure_RecordedAsErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"title":"Too Many Requests"}`))
	}))
	defer srv.Close()

	pub := &capturePublisher{}
	r, client, acct, user := newTestRunner(t, srv, pub)
	defer client.Close()

	res, err := r.Run(context.Background(), Request{
		UserID:  user.ID,
		Account: acct,
		BlockID: social.UnblockUserID,
		Input:   blocks.Input{"target_user_id": "12345"},
	})
	if err != nil {
		t.Fatalf("run must not fail for vendor errors: %v", err)
	}
	if !strings.Contains(res.Output.Err(), "rate limit") {
		t.Fatalf("error output: %q", res.Output.Err())
	}
	if res.Execution.Status != "error" {
		t.Fatalf("status: %s", res.Execution.Status)
	}
	if !strings.Contains(res.Execution.ErrorMessage, "rate limit") {
		t.Fatalf("error message: %q", res.Execution.ErrorMessage)
	}
	if len(pub.keys) != 1 || pub.keys[0] != "moderation.unblock" {
		t.Fatalf("published keys: %v", pub.keys)
	}
}

func TestRunner_CheckpointSaveAndResume(t *testing.T) {
	var pageTokens []string
	mux := http.NewServeMux()
	mux.HandleFunc("/2/users/me", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"data": map[string]string{"id": "777", "username": "moderator"}})
	})
	mux.HandleFunc("/2/users/777/blocking", func(w http.ResponseWriter, r *http.Request) {
		pageTokens = append(pageTokens, r.URL.Query().Get("pagination_token"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]string{{"id": "1", "username": "spammer"}},
			"meta": map[string]any{"result_count": 1, "next_token": "tok-2"},
		})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	pub := &capturePublisher{}
	r, client, acct, user := newTestRunner(t, srv, pub)
	defer client.Close()
	cp := &memoryCheckpoints{m: map[string]string{}}
	r.Checkpoints = cp

	res, err := r.Run(context.Background(), Request{
		UserID:  user.ID,
		Account: acct,
		BlockID: social.GetBlockedUsersID,
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Output.Err() != "" {
		t.Fatalf("error output: %q", res.Output.Err())
	}
	if got := cp.m[checkpointKey(acct.ID, social.GetBlockedUsersID)]; got != "tok-2" {
		t.Fatalf("checkpoint after first page: %q", got)
	}

	// resume with no explicit token continues from the checkpoint
	if _, err := r.Run(context.Background(), Request{
		UserID:  user.ID,
		Account: acct,
		BlockID: social.GetBlockedUsersID,
		Resume:  true,
	}); err != nil {
		t.Fatalf("resume run: %v", err)
	}
	if len(pageTokens) != 2 || pageTokens[0] != "" || pageTokens[1] != "tok-2" {
		t.Fatalf("vendor received tokens: %v", pageTokens)
	}

	// an explicit token wins over the checkpoint
	if _, err := r.Run(context.Background(), Request{
		UserID:  user.ID,
		Account: acct,
		BlockID: social.GetBlockedUsersID,
		Input:   blocks.Input{"pagination_token": "tok-explicit"},
		Resume:  true,
	}); err != nil {
		t.Fatalf("explicit token run: %v", err)
	}
	if len(pageTokens) != 3 || pageTokens[2] != "tok-explicit" {
		t.Fatalf("explicit token not forwarded: %v", pageTokens)
	}
}

func TestRunner_UnknownBlock(t *testing.T) {
	srv := fakeVendor(t)
	defer srv.Close()

	r, client, acct, user := newTestRunner(t, srv, nil)
	defer client.Close()

	_, err := r.Run(context.Background(), Request{
		UserID:  user.ID,
		Account: acct,
		BlockID: "does-not-exist",
	})
	if err == nil {
		t.Fatalf("want error for unknown block")
	}
}
