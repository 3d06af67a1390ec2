package executions

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
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
	"fiber-ent-x-moderation/ent/blockexecution"
	"fiber-ent-x-moderation/internal/httpx/kit/testutil"
	"fiber-ent-x-moderation/internal/httpx/mw"
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

func appFor(client *ent.Client, uid uuid.UUID) *fiber.App {
	return testutil.NewApp(
		func(app *fiber.App) {
			app.Use(func(c *fiber.Ctx) error {
				c.Locals("auth", &mw.AuthContext{Subject: "user:" + uid.String(), Kind: "user"})
				return c.Next()
			})
		},
		func(app *fiber.App) { app.Get("/executions", mw.RequireUser(), ListHandler(client)) },
		func(app *fiber.App) { app.Get("/executions/:id", mw.RequireUser(), GetHandler(client)) },
	)
}

func seed(t *testing.T, client *ent.Client, u *ent.User, n int, status blockexecution.Status) {
	t.Helper()
	ctx := context.Background()
	now := time.Now().UTC()
	for i := 0; i < n; i++ {
		cr := client.BlockExecution.Create().
			SetBlockID("b-1").
			SetBlockName("block_user").
			SetStatus(status).
			SetInput(map[string]any{"target_user_id": fmt.Sprint(i)}).
			SetOutput(map[string]any{"success": status == blockexecution.StatusOk}).
			SetDurationMs(int64(10 + i)).
			SetStartedAt(now.Add(time.Duration(i) * time.Second)).
			SetFinishedAt(now.Add(time.Duration(i)*time.Second + 10*time.Millisecond)).
			SetRunner(u)
		if status == blockexecution.StatusError {
			cr = cr.SetErrorMessage("rate limit exceeded, try again later")
		}
		if _, err := cr.Save(ctx); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
}

func TestListExecutions_PagingAndFilter(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()
	ctx := context.Background()
	u, _ := client.User.Create().SetDisplayName("Runner").Save(ctx)
	other, _ := client.User.Create().SetDisplayName("Other").Save(ctx)
	seed(t, client, u, 3, blockexecution.StatusOk)
	seed(t, client, u, 2, blockexecution.StatusError)
	seed(t, client, other, 4, blockexecution.StatusOk)

	app := appFor(client, u.ID)

	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/executions?limit=2&with_total=true", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", res.StatusCode)
	}
	var body struct {
		Data []ExecutionView
		Meta struct {
			Count   int
			HasMore bool `json:"has_more"`
			Total   *int
		}
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	// Only the caller's five runs count, not the other user's.
	if body.Meta.Total == nil || *body.Meta.Total != 5 {
		t.Fatalf("total: %v", body.Meta.Total)
	}
	if len(body.Data) != 2 || !body.Meta.HasMore {
		t.Fatalf("page: count=%d has_more=%v", len(body.Data), body.Meta.HasMore)
	}

	// status filter
	res, err = app.Test(httptest.NewRequest(http.MethodGet, "/executions?status=error&with_total=true", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Meta.Total == nil || *body.Meta.Total != 2 {
		t.Fatalf("error total: %v", body.Meta.Total)
	}
	for _, v := range body.Data {
		if v.Status != "error" || v.ErrorMessage == "" {
			t.Fatalf("row: %+v", v)
		}
	}

	// invalid filter and sort are rejected
	res, _ = app.Test(httptest.NewRequest(http.MethodGet, "/executions?status=bogus", nil))
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("bogus status: %d", res.StatusCode)
	}
	res, _ = app.Test(httptest.NewRequest(http.MethodGet, "/executions?sort=secret:asc", nil))
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("bogus sort: %d", res.StatusCode)
	}
}

func TestListExecutions_SortByDuration(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()
	ctx := context.Background()
	u, _ := client.User.Create().SetDisplayName("Runner").Save(ctx)
	seed(t, client, u, 3, blockexecution.StatusOk)

	app := appFor(client, u.ID)
	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/executions?sort=duration_ms:desc", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	var body struct{ Data []ExecutionView }
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Data) != 3 {
		t.Fatalf("rows: %d", len(body.Data))
	}
	for i := 1; i < len(body.Data); i++ {
		if body.Data[i].DurationMS > body.Data[i-1].DurationMS {
			t.Fatalf("not sorted desc at %d", i)
		}
	}
}

func TestGetExecution_ScopedToOwner(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()
	ctx := context.Background()
	u, _ := client.User.Create().SetDisplayName("Runner").Save(ctx)
	other, _ := client.User.Create().SetDisplayName("Other").Save(ctx)
	seed(t, client, u, 1, blockexecution.StatusOk)
	row, err := client.BlockExecution.Query().Only(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	app := appFor(client, u.ID)
	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/executions/"+row.ID.String(), nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", res.StatusCode)
	}
	var body struct{ Data ExecutionView }
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Data.BlockName != "block_user" {
		t.Fatalf("view: %+v", body.Data)
	}

	otherApp := appFor(client, other.ID)
	res, err = otherApp.Test(httptest.NewRequest(http.MethodGet, "/executions/"+row.ID.String(), nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("foreign read: status=%d", res.StatusCode)
	}
}
