package blocksapi

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
	"fiber-ent-x-moderation/internal/blocks"
	"fiber-ent-x-moderation/internal/blocks/social"
	"fiber-ent-x-moderation/internal/httpx/kit/testutil"
	"fiber-ent-x-moderation/internal/httpx/mw"
	"fiber-ent-x-moderation/internal/runner"
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

func fakeVendor(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/2/users/me", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"data": map[string]string{"id": "777", "username": "moderator"}})
	})
	mux.HandleFunc("/2/users/777/blocking", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"data": map[string]bool{"blocking": true}})
	})
	return httptest.NewServer(mux)
}

type env struct {
	client *ent.Client
	app    *fiber.App
	acct   *ent.SocialAccount
	user   *ent.User
}

func newEnv(t *testing.T, srv *httptest.Server) *env {
	t.Helper()
	client := newTestClient(t)

	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		t.Fatalf("key: %v", err)
	}
	sealer, err := secretx.NewSealer(base64.StdEncoding.EncodeToString(key))
	if err != nil {
		t.Fatalf("sealer: %v", err)
	}

	ctx := context.Background()
	u, err := client.User.Create().SetDisplayName("Runner").Save(ctx)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	sealed, _ := sealer.Seal("tok")
	acct, err := client.SocialAccount.Create().
		SetHandle("moderator").
		SetProviderUserID("777").
		SetAccessTokenSealed(sealed).
		SetOwner(u).
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
	rn := &runner.Runner{Registry: reg, Client: client, Sealer: sealer}

	app := testutil.NewApp(
		func(app *fiber.App) {
			app.Use(func(c *fiber.Ctx) error {
				c.Locals("auth", &mw.AuthContext{Subject: "user:" + u.ID.String(), Kind: "user"})
				return c.Next()
			})
		},
		func(app *fiber.App) { app.Get("/blocks", ListHandler(reg)) },
		func(app *fiber.App) { app.Get("/blocks/:id", GetHandler(reg)) },
		func(app *fiber.App) { app.Post("/blocks/:id/run", mw.RequireUser(), RunHandler(rn, client)) },
	)
	return &env{client: client, app: app, acct: acct, user: u}
}

func TestListBlocks_CatalogShape(t *testing.T) {
	srv := fakeVendor(t)
	defer srv.Close()
	e := newEnv(t, srv)
	defer e.client.Close()

	res, err := e.app.Test(httptest.NewRequest(http.MethodGet, "/blocks", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", res.StatusCode)
	}
	var body struct{ Data []blocks.Info }
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Data) != 3 {
		t.Fatalf("want 3 blocks, got %d", len(body.Data))
	}
	// sorted by name
	if body.Data[0].Name != "block_user" || body.Data[2].Name != "unblock_user" {
		t.Fatalf("order: %s .. %s", body.Data[0].Name, body.Data[2].Name)
	}
}

func TestGetBlock_NotFound(t *testing.T) {
	srv := fakeVendor(t)
	defer srv.Close()
	e := newEnv(t, srv)
	defer e.client.Close()

	res, err := e.app.Test(httptest.NewRequest(http.MethodGet, "/blocks/"+uuid.NewString(), nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("status=%d", res.StatusCode)
	}
}

func TestRunBlock_EndToEnd(t *testing.T) {
	srv := fakeVendor(t)
	defer srv.Close()
	e := newEnv(t, srv)
	defer e.client.Close()

	body, _ := json.Marshal(RunRequest{
		AccountID: e.acct.ID,
		Input:     map[string]any{"target_user_id": "12345"},
	})
	req := httptest.NewRequest(http.MethodPost, "/blocks/"+social.BlockUserID+"/run", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, err := e.app.Test(req, 10000)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", res.StatusCode)
	}
	var out struct{ Data RunResponse }
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Data.Status != "ok" || out.Data.Error != "" {
		t.Fatalf("run: %+v", out.Data)
	}
	if v, ok := out.Data.Outputs.Get("success"); !ok || v != true {
		t.Fatalf("outputs: %+v", out.Data.Outputs)
	}

	// Audit row written and account touch recorded
	ctx := context.Background()
	if n, _ := e.client.BlockExecution.Query().Count(ctx); n != 1 {
		t.Fatalf("executions: %d", n)
	}
	acct, _ := e.client.SocialAccount.Get(ctx, e.acct.ID)
	if acct.LastUsedAt.IsZero() {
		t.Fatalf("last_used_at not set")
	}
}

func TestRunBlock_RejectsUnknownBlockAndForeignAccount(t *testing.T) {
	srv := fakeVendor(t)
	defer srv.Close()
	e := newEnv(t, srv)
	defer e.client.Close()

	body, _ := json.Marshal(RunRequest{AccountID: e.acct.ID})
	req := httptest.NewRequest(http.MethodPost, "/blocks/"+uuid.NewString()+"/run", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, err := e.app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("unknown block: status=%d", res.StatusCode)
	}

	body, _ = json.Marshal(RunRequest{AccountID: uuid.New()})
	req = httptest.NewRequest(http.MethodPost, "/blocks/"+social.BlockUserID+"/run", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, err = e.app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("foreign account: status=%d", res.StatusCode)
	}
}
