package accounts

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
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"fiber-ent-x-moderation/ent"
	"fiber-ent-x-moderation/internal/blocks/social"
	"fiber-ent-x-moderation/internal/httpx/kit/testutil"
	"fiber-ent-x-moderation/internal/httpx/mw"
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

// fakeVendor accepts any "good-*" token and resolves it to a fixed profile.
func fakeVendor(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authz := r.Header.Get("Authorization")
		if authz != "Bearer good-token" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"title":"Unauthorized"}`))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"data": map[string]string{"id": "777", "username": "moderator"}})
	}))
}

func appFor(client *ent.Client, sealer *secretx.Sealer, factory social.ClientFactory, uid uuid.UUID) *fiber.App {
	return testutil.NewApp(
		func(app *fiber.App) {
			app.Use(func(c *fiber.Ctx) error {
				c.Locals("auth", &mw.AuthContext{Subject: "user:" + uid.String(), Kind: "user"})
				return c.Next()
			})
		},
		func(app *fiber.App) { app.Post("/accounts", mw.RequireUser(), ConnectHandler(client, sealer, factory)) },
		func(app *fiber.App) { app.Get("/accounts", mw.RequireUser(), ListHandler(client)) },
		func(app *fiber.App) { app.Delete("/accounts/:id", mw.RequireUser(), DisconnectHandler(client)) },
	)
}

func TestConnect_List_Disconnect(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()
	sealer := newTestSealer(t)
	srv := fakeVendor(t)
	defer srv.Close()
	factory := func(token string) *xapi.Client {
		return xapi.New(srv.URL, token, xapi.WithHTTPClient(srv.Client()))
	}

	ctx := context.Background()
	owner, err := client.User.Create().SetDisplayName("Owner").Save(ctx)
	if err != nil {
		t.Fatalf("create owner: %v", err)
	}
	app := appFor(client, sealer, factory, owner.ID)

	// Connect
	b, _ := json.Marshal(ConnectRequest{AccessToken: "good-token", Label: "brand"})
	req := httptest.NewRequest(http.MethodPost, "/accounts", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("connect req: %v", err)
	}
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("status=%d", res.StatusCode)
	}
	var created struct{ Data AccountView }
	if err := json.NewDecoder(res.Body).Decode(&created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.Data.Handle != "moderator" || created.Data.ProviderUserID != "777" {
		t.Fatalf("view: %+v", created.Data)
	}

	// The stored credential is sealed, not plaintext.
	row, err := client.SocialAccount.Get(ctx, created.Data.ID)
	if err != nil {
		t.Fatalf("load account: %v", err)
	}
	if row.AccessTokenSealed == "good-token" {
		t.Fatalf("token stored in plaintext")
	}
	if got, err := sealer.Open(row.AccessTokenSealed); err != nil || got != "good-token" {
		t.Fatalf("unseal: %q %v", got, err)
	}

	// List
	lres, err := app.Test(httptest.NewRequest(http.MethodGet, "/accounts", nil))
	if err != nil {
		t.Fatalf("list req: %v", err)
	}
	var list struct{ Data []AccountView }
	if err := json.NewDecoder(lres.Body).Decode(&list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(list.Data) != 1 {
		t.Fatalf("want 1 account, got %d", len(list.Data))
	}

	// Disconnect
	dres, err := app.Test(httptest.NewRequest(http.MethodDelete, "/accounts/"+created.Data.ID.String(), nil))
	if err != nil {
		t.Fatalf("delete req: %v", err)
	}
	if dres.StatusCode != http.StatusNoContent {
		t.Fatalf("status=%d", dres.StatusCode)
	}
	if n, _ := client.SocialAccount.Query().Count(ctx); n != 0 {
		t.Fatalf("accounts left: %d", n)
	}
}

func TestConnect_RejectsBadToken(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()
	sealer := newTestSealer(t)
	srv := fakeVendor(t)
	defer srv.Close()
	factory := func(token string) *xapi.Client {
		return xapi.New(srv.URL, token, xapi.WithHTTPClient(srv.Client()))
	}

	ctx := context.Background()
	owner, err := client.User.Create().SetDisplayName("Owner").Save(ctx)
	if err != nil {
		t.Fatalf("create owner: %v", err)
	}
	app := appFor(client, sealer, factory, owner.ID)

	b, _ := json.Marshal(ConnectRequest{AccessToken: "expired-token"})
	req := httptest.NewRequest(http.MethodPost, "/accounts", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("connect req: %v", err)
	}
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("status=%d", res.StatusCode)
	}
	if n, _ := client.SocialAccount.Query().Count(ctx); n != 0 {
		t.Fatalf("rejected token must not be stored")
	}
}

func TestDisconnect_OtherUsersAccount(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()
	sealer := newTestSealer(t)

	ctx := context.Background()
	owner, _ := client.User.Create().SetDisplayName("Owner").Save(ctx)
	other, _ := client.User.Create().SetDisplayName("Other").Save(ctx)
	sealed, _ := sealer.Seal("tok")
	acct, err := client.SocialAccount.Create().
		SetHandle("moderator").
		SetProviderUserID("777").
		SetAccessTokenSealed(sealed).
		SetOwner(owner).
		Save(ctx)
	if err != nil {
		t.Fatalf("create account: %v", err)
	}

	app := appFor(client, sealer, nil, other.ID)
	res, err := app.Test(httptest.NewRequest(http.MethodDelete, "/accounts/"+acct.ID.String(), nil))
	if err != nil {
		t.Fatalf("delete req: %v", err)
	}
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("status=%d", res.StatusCode)
	}
}
