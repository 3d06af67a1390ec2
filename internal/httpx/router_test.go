package httpx

import (
	"bytes"
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "modernc.org/sqlite"

	"fiber-ent-x-moderation/ent"
	"fiber-ent-x-moderation/internal/blocks"
	"fiber-ent-x-moderation/internal/blocks/social"
	"fiber-ent-x-moderation/internal/config"
	"fiber-ent-x-moderation/internal/runner"
	"fiber-ent-x-moderation/internal/secretx"
	"fiber-ent-x-moderation/internal/xapi"
)

func newTestDeps(t *testing.T) Deps {
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
	t.Cleanup(func() { _ = client.Close() })

	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		t.Fatalf("key: %v", err)
	}
	sealer, err := secretx.NewSealer(base64.StdEncoding.EncodeToString(key))
	if err != nil {
		t.Fatalf("sealer: %v", err)
	}

	cfg := &config.Config{}
	cfg.JWT.Algo = "HS256"
	cfg.JWT.HSSecret = "test-secret"
	cfg.JWT.Issuer = "test"
	cfg.JWT.Audience = "test"
	cfg.JWT.AccessMin = 15
	cfg.JWT.RefreshDays = 7

	factory := func(token string) *xapi.Client { return xapi.New("http://127.0.0.1:0", token) }
	reg := blocks.NewRegistry()
	reg.MustRegister(
		social.NewBlockUserBlock(factory),
		social.NewUnblockUserBlock(factory),
		social.NewGetBlockedUsersBlock(factory),
	)

	return Deps{
		Config:    cfg,
		Client:    client,
		Runner:    &runner.Runner{Registry: reg, Client: client, Sealer: sealer},
		Sealer:    sealer,
		NewClient: factory,
	}
}

func TestRouter_RegisterLoginAndCatalog(t *testing.T) {
	d := newTestDeps(t)
	app := NewApp()
	Register(app, d)

	// health is open
	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	if err != nil {
		t.Fatalf("health: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("health status=%d", res.StatusCode)
	}

	// catalog is open
	res, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/blocks/", nil))
	if err != nil {
		t.Fatalf("blocks: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("blocks status=%d", res.StatusCode)
	}
	var cat struct{ Data []blocks.Info }
	if err := json.NewDecoder(res.Body).Decode(&cat); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(cat.Data) != 3 {
		t.Fatalf("catalog size: %d", len(cat.Data))
	}

	// accounts require auth
	res, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/accounts/", nil))
	if err != nil {
		t.Fatalf("accounts: %v", err)
	}
	if res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("unauthenticated accounts status=%d", res.StatusCode)
	}

	// register, then use the issued token
	b, _ := json.Marshal(map[string]string{"identifier": "alice@example.com", "password": "P@ssw0rd", "display_name": "Alice"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	res, err = app.Test(req)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("register status=%d", res.StatusCode)
	}
	var tok struct {
		Data struct {
			AccessToken string `json:"access_token"`
		}
	}
	if err := json.NewDecoder(res.Body).Decode(&tok); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if tok.Data.AccessToken == "" {
		t.Fatalf("no access token")
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+tok.Data.AccessToken)
	res, err = app.Test(req)
	if err != nil {
		t.Fatalf("me: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("me status=%d", res.StatusCode)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/executions/", nil)
	req.Header.Set("Authorization", "Bearer "+tok.Data.AccessToken)
	res, err = app.Test(req)
	if err != nil {
		t.Fatalf("executions: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("executions status=%d", res.StatusCode)
	}
}
