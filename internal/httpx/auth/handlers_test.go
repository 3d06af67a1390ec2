package auth

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/gofiber/fiber/v2"
	_ "modernc.org/sqlite"

	"fiber-ent-x-moderation/ent"
	"fiber-ent-x-moderation/ent/identity"
	"fiber-ent-x-moderation/internal/config"
	"fiber-ent-x-moderation/internal/httpx/kit/testutil"
	"fiber-ent-x-moderation/internal/httpx/mw"
)

func newTestApp(t *testing.T, client *ent.Client, cfg *config.Config) *fiber.App {
	t.Helper()
	parse := func(token string) (string, string, []string, error) {
		claims, err := ParseAndValidate(cfg, token)
		if err != nil {
			return "", "", nil, err
		}
		return claims.Subject, claims.Kind, claims.Roles, nil
	}
	return testutil.NewApp(
		func(app *fiber.App) { app.Use(mw.JWTMiddlewareDynamic(parse)) },
		func(app *fiber.App) { app.Post("/auth/register", RegisterHandler(cfg, client)) },
		func(app *fiber.App) { app.Post("/auth/login", LoginHandler(cfg, client)) },
		func(app *fiber.App) { app.Get("/auth/me", mw.RequireUser(), MeHandler(client)) },
	)
}

func newTestClient(t *testing.T) *ent.Client {
	t.Helper()
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared&_fk=1"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	_, _ = db.Exec("PRAGMA foreign_keys = ON")
	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))
	ctx, cancel := contextWithT(t)
	defer cancel()
	if err := client.Schema.Create(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return client
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Algo = "HS256"
	cfg.JWT.HSSecret = "test-secret"
	cfg.JWT.Issuer = "test"
	cfg.JWT.Audience = "test"
	cfg.JWT.AccessMin = 15
	cfg.JWT.RefreshDays = 7
	return cfg
}

func TestRegister_CreatesUserAndIdentity(t *testing.T) {
	client := newTestClient(t)
	cfg := newTestConfig()
	app := newTestApp(t, client, cfg)

	body := RegisterRequest{Identifier: "alice@example.com", Password: "P@ssw0rd", DisplayName: "Alice"}
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", res.StatusCode)
	}
	var env struct {
		Code string
		Data TokenResponse
	}
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Data.AccessToken == "" {
		t.Fatalf("missing access_token: %+v", env.Data)
	}

	ctx, cancel := contextWithT(t)
	defer cancel()
	if n, err := client.User.Query().Count(ctx); err != nil || n != 1 {
		t.Fatalf("users=%d err=%v", n, err)
	}
	if n, err := client.Identity.Query().Count(ctx); err != nil || n != 1 {
		t.Fatalf("identities=%d err=%v", n, err)
	}
}

func TestRegister_DuplicateIdentifier(t *testing.T) {
	client := newTestClient(t)
	cfg := newTestConfig()
	app := newTestApp(t, client, cfg)

	body := RegisterRequest{Identifier: "bob@example.com", Password: "P@ssw0rd"}
	b, _ := json.Marshal(body)
	for i, want := range []int{http.StatusOK, http.StatusBadRequest} {
		req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(b))
		req.Header.Set("Content-Type", "application/json")
		res, err := app.Test(req)
		if err != nil {
			t.Fatalf("request %d: %v", i, err)
		}
		if res.StatusCode != want {
			t.Fatalf("request %d: status=%d want=%d", i, res.StatusCode, want)
		}
	}
}

func TestLogin_Password_IssuesToken(t *testing.T) {
	client := newTestClient(t)
	cfg := newTestConfig()
	app := newTestApp(t, client, cfg)

	ctx, cancel := contextWithT(t)
	defer cancel()
	u, err := client.User.Create().SetDisplayName("Alice").Save(ctx)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	hash, err := HashPassword("P@ssw0rd")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	_, err = client.Identity.Create().SetProvider(identity.ProviderPassword).SetIdentifier("alice@example.com").SetSecretHash(hash).SetUser(u).Save(ctx)
	if err != nil {
		t.Fatalf("create identity: %v", err)
	}

	in := LoginRequest{Identifier: "alice@example.com", Password: "P@ssw0rd"}
	b, _ := json.Marshal(in)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", res.StatusCode)
	}
	var env struct{ Data TokenResponse }
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Data.AccessToken == "" {
		t.Fatalf("missing access_token")
	}

	// Wrong password is a 401
	in.Password = "wrong"
	b, _ = json.Marshal(in)
	req = httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	res, err = app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	if res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status=%d", res.StatusCode)
	}
}

func TestMe_RequiresAndReturnsUser(t *testing.T) {
	client := newTestClient(t)
	cfg := newTestConfig()
	app := newTestApp(t, client, cfg)

	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/auth/me", nil))
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	if res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("anonymous /me: status=%d", res.StatusCode)
	}

	ctx, cancel := contextWithT(t)
	defer cancel()
	u, err := client.User.Create().SetDisplayName("Alice").Save(ctx)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	access, _, err := SignAccess(cfg, "user:"+u.ID.String(), "user", nil)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+access)
	res, err = app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", res.StatusCode)
	}
	var env struct{ Data map[string]any }
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Data["display_name"] != "Alice" {
		t.Fatalf("profile: %v", env.Data)
	}
}

func TestPassword_HashAndVerify(t *testing.T) {
	h, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !VerifyPassword("s3cret", h) {
		t.Fatalf("verify should pass")
	}
	if VerifyPassword("other", h) {
		t.Fatalf("verify must reject wrong password")
	}
}

func contextWithT(t *testing.T) (context.Context, context.CancelFunc) {
	t.Helper()
	return context.WithTimeout(context.Background(), 5*time.Second)
}
