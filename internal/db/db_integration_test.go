//go:build integration
// +build integration

package db

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"fiber-ent-x-moderation/internal/config"
)

func Test_Open_With_PostgresContainer(t *testing.T) {
	ctx := context.Background()

	pg, err := postgres.RunContainer(ctx,
		postgres.WithDatabase("app"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		postgres.WithSQLDriver("pgx"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		t.Fatalf("start postgres: %v", err)
	}
	t.Cleanup(func() { _ = pg.Terminate(ctx) })

	host, err := pg.Host(ctx)
	if err != nil {
		t.Fatalf("get container host: %v", err)
	}
	port, err := pg.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("get container port: %v", err)
	}

	dsn := fmt.Sprintf("postgres://postgres:postgres@%s:%s/app?sslmode=disable", host, port.Port())

	cfg := &config.Config{}
	cfg.PG.URL = dsn
	cfg.PG.MaxOpenConns = 5
	cfg.PG.MaxIdleConns = 2

	c, closeFn, err := Open(cfg)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer closeFn()

	ctx2, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := c.Schema.Create(ctx2); err != nil {
		t.Fatalf("create schema: %v", err)
	}

	if _, err := c.User.Query().Count(ctx2); err != nil {
		t.Fatalf("ent ping: %v", err)
	}

	user, err := c.User.Create().
		SetDisplayName("integration").
		Save(ctx2)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	// jsonb columns work end to end against real Postgres
	sealedStub := "bm90LWEtcmVhbC10b2tlbg=="
	acct, err := c.SocialAccount.Create().
		SetHandle("moderator").
		SetProviderUserID("777").
		SetAccessTokenSealed(sealedStub).
		SetScopes([]string{"block.read", "block.write"}).
		SetOwner(user).
		Save(ctx2)
	if err != nil {
		t.Fatalf("create account: %v", err)
	}
	if len(acct.Scopes) != 2 {
		t.Fatalf("scopes round trip: %v", acct.Scopes)
	}

	count, err := c.SocialAccount.Query().Count(ctx2)
	if err != nil {
		t.Fatalf("count accounts: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 account, got %d", count)
	}
}
