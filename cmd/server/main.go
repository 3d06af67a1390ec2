// Package main is the entry point for the moderation blocks API server
//
//	@title			X Moderation Blocks API
//	@version		1.0
//	@description	Pluggable moderation blocks over the X API: block, unblock, and list blocked users
//
//	@contact.name	API Support
//
//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html
//
//	@host		localhost:8080
//	@BasePath	/api/v1
//
//	@schemes		http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in						header
//	@name					Authorization
//
//	@security			BearerAuth
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"fiber-ent-x-moderation/internal/blocks"
	"fiber-ent-x-moderation/internal/blocks/social"
	"fiber-ent-x-moderation/internal/config"
	"fiber-ent-x-moderation/internal/db"
	"fiber-ent-x-moderation/internal/esx"
	"fiber-ent-x-moderation/internal/httpx"
	"fiber-ent-x-moderation/internal/logx"
	"fiber-ent-x-moderation/internal/mqx"
	"fiber-ent-x-moderation/internal/redisx"
	"fiber-ent-x-moderation/internal/runner"
	"fiber-ent-x-moderation/internal/secretx"
	"fiber-ent-x-moderation/internal/server"
	"fiber-ent-x-moderation/internal/xapi"

	_ "fiber-ent-x-moderation/docs" // swagger docs
)

func main() {
	// Load .env if present
	_ = godotenv.Load()

	// Load config (env first; optional Apollo override)
	cfg, store, apClose, err := config.Load()
	if err != nil {
		panic(err)
	}
	if apClose != nil {
		defer apClose()
	}

	logx.Init(cfg.Log.Level, cfg.Log.Format)
	mainLogger := logx.GetScope("main")

	mainLogger.Info("config loaded",
		zap.String("env", cfg.AppEnv),
		zap.String("addr", cfg.Server.Addr),
		zap.String("xapi.base_url", cfg.XAPI.BaseURL),
		zap.String("log.level", cfg.Log.Level),
		zap.String("log.format", cfg.Log.Format),
	)

	// Stored account tokens are useless without the sealing key.
	sealer, err := secretx.NewSealer(cfg.Secrets.TokenKey)
	if err != nil {
		mainLogger.Sugar().Error("SECRETS_TOKEN_KEY invalid", "err", err)
		panic(err)
	}

	// Open DB (Ent + pgx)
	client, closeDB, err := db.Open(cfg)
	if err != nil {
		mainLogger.Sugar().Error("open db error", "err", err)
		panic(err)
	}
	defer closeDB()

	// Auto-migrate
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.Schema.Create(ctx); err != nil {
		mainLogger.Sugar().Error("auto migrate error", "err", err)
		panic(err)
	}

	// Optional deps: Redis, MQ, ES
	rdb, rclose, err := redisx.Open(cfg)
	if err != nil {
		mainLogger.Sugar().Warn("redis init failed", "err", err)
	} else if rclose != nil {
		defer rclose()
	}

	var publisher mqx.Publisher
	if cfg.MQ.URL != "" {
		if pub, err := mqx.NewRabbitPublisher(cfg.MQ.URL, "events"); err != nil {
			mainLogger.Sugar().Warn("mq init failed", "err", err)
		} else {
			publisher = pub
			defer func() { _ = pub.Close() }()
		}
	}

	esClient, esClose, err := esx.Open(cfg)
	if err != nil {
		mainLogger.Sugar().Warn("es init failed", "err", err)
	} else {
		defer esClose()
	}

	// Vendor clients: one per access token, sharing cache and user agent.
	newClient := func(token string) *xapi.Client {
		opts := []xapi.Option{
			xapi.WithUserAgent(cfg.XAPI.UserAgent),
			xapi.WithTimeout(time.Duration(cfg.XAPI.TimeoutSec) * time.Second),
		}
		if rdb != nil {
			opts = append(opts, xapi.WithMeCache(rdb))
		}
		return xapi.New(cfg.XAPI.BaseURL, token, opts...)
	}

	registry := blocks.NewRegistry()
	registry.MustRegister(
		social.NewBlockUserBlock(newClient),
		social.NewUnblockUserBlock(newClient),
		social.NewGetBlockedUsersBlock(newClient),
	)

	rn := &runner.Runner{
		Registry: registry,
		Client:   client,
		Sealer:   sealer,
		MQ:       publisher,
		ES:       esClient,
	}
	if rdb != nil {
		rn.Checkpoints = runner.NewRedisCheckpoints(rdb)
	}

	app := httpx.NewApp()
	httpx.RegisterCommonMiddlewares(app)
	httpx.Register(app, httpx.Deps{
		Config:    cfg,
		Client:    client,
		Runner:    rn,
		Sealer:    sealer,
		RDB:       rdb,
		NewClient: newClient,
	})

	// Watch for dynamic config changes (Apollo)
	store.AddValidator(func(newCfg *config.Config, changed map[string]bool) error {
		if changed["pg.max_open"] || changed["pg.max_idle"] {
			if newCfg.PG.MaxIdleConns > newCfg.PG.MaxOpenConns {
				return fmt.Errorf("PG_MAX_IDLE cannot exceed PG_MAX_OPEN")
			}
		}
		return nil
	})

	store.Watch(func(newCfg *config.Config, changed map[string]bool) {
		if changed["pg.max_open"] || changed["pg.max_idle"] {
			db.UpdatePool(newCfg.PG.MaxOpenConns, newCfg.PG.MaxIdleConns)
			mainLogger.Info("db pool updated",
				zap.Int("max_open", newCfg.PG.MaxOpenConns),
				zap.Int("max_idle", newCfg.PG.MaxIdleConns),
			)
		}
		if changed["xapi.base_url"] {
			mainLogger.Warn("xapi.base_url changed; restart required to take effect",
				zap.String("base_url", newCfg.XAPI.BaseURL),
			)
		}
		if changed["server.addr"] {
			mainLogger.Warn("server.addr changed; restart required to take effect",
				zap.String("addr", newCfg.Server.Addr),
			)
		}
		if changed["log.level"] || changed["log.format"] {
			logx.Init(newCfg.Log.Level, newCfg.Log.Format)
			mainLogger.Info("logger reconfigured",
				zap.String("level", newCfg.Log.Level),
				zap.String("format", newCfg.Log.Format),
			)
		}
	})

	// Graceful shutdown
	go func() {
		ln, err := server.GetListener(cfg.Server.Addr)
		if err != nil {
			mainLogger.Sugar().Errorf("listener error: %v", err)
			return
		}
		if err := app.Listener(ln); err != nil {
			mainLogger.Sugar().Infof("fiber exit: %v", err)
		}
	}()
	mainLogger.Sugar().Infof("server started on %s", cfg.Server.Addr)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	mainLogger.Sugar().Info("shutting down...")
	_ = app.Shutdown()
}
