package config

import (
	"os"
	"testing"
)

func TestGetIntBool(t *testing.T) {
	os.Setenv("X_INT", "42")
	t.Cleanup(func() { os.Unsetenv("X_INT") })
	if v := getInt("X_INT", 1); v != 42 {
		t.Fatalf("want 42, got %d", v)
	}

	os.Setenv("X_BOOL_T", "true")
	os.Setenv("X_BOOL_F", "false")
	t.Cleanup(func() { os.Unsetenv("X_BOOL_T"); os.Unsetenv("X_BOOL_F") })
	if !getBool("X_BOOL_T", false) {
		t.Fatalf("want true")
	}
	if getBool("X_BOOL_F", true) {
		t.Fatalf("want false")
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, store, closer, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if closer != nil {
		t.Fatalf("apollo closer without APOLLO_ENABLE")
	}
	if store.Get() != cfg {
		t.Fatalf("store should hold the loaded config")
	}
	if cfg.XAPI.BaseURL != "https://api.twitter.com" {
		t.Fatalf("xapi base url default: %q", cfg.XAPI.BaseURL)
	}
	if cfg.XAPI.TimeoutSec != 10 {
		t.Fatalf("xapi timeout default: %d", cfg.XAPI.TimeoutSec)
	}
	if cfg.JWT.Algo != "HS256" {
		t.Fatalf("jwt algo default: %q", cfg.JWT.Algo)
	}
}

func TestStore_UpdateValidated(t *testing.T) {
	cfg := &Config{}
	s := NewStore(cfg)

	s.AddValidator(func(newCfg *Config, changed map[string]bool) error {
		if changed["pg.max_open"] && newCfg.PG.MaxIdleConns > newCfg.PG.MaxOpenConns {
			return os.ErrInvalid
		}
		return nil
	})

	var notified bool
	s.Watch(func(newCfg *Config, changed map[string]bool) { notified = true })

	bad := cloneConfig(cfg)
	bad.PG.MaxOpenConns = 1
	bad.PG.MaxIdleConns = 5
	if s.UpdateValidated(bad, map[string]bool{"pg.max_open": true}) {
		t.Fatalf("invalid update should be rejected")
	}
	if notified {
		t.Fatalf("watcher fired on rejected update")
	}

	good := cloneConfig(cfg)
	good.PG.MaxOpenConns = 10
	good.PG.MaxIdleConns = 5
	if !s.UpdateValidated(good, map[string]bool{"pg.max_open": true}) {
		t.Fatalf("valid update rejected")
	}
	if !notified {
		t.Fatalf("watcher not fired")
	}
	if s.Get() != good {
		t.Fatalf("store not updated")
	}
}
