//go:build unit

package config

import "testing"

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("expected default port 8080, got %q", cfg.Server.Port)
	}
	if cfg.DB.Driver != "sqlite3" {
		t.Errorf("expected default driver sqlite3, got %q", cfg.DB.Driver)
	}
	if cfg.Publisher.Enabled {
		t.Error("expected publisher to be disabled by default")
	}
}

func TestLoadConfigEnvironmentOverrides(t *testing.T) {
	t.Setenv("EDUPRESS_SERVER_PORT", "9090")
	t.Setenv("EDUPRESS_DB_DRIVER", "mysql")
	t.Setenv("EDUPRESS_AUTH_DEV_ROLE", "admin")
	t.Setenv("EDUPRESS_PUBLISHER_ENABLED", "true")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("expected port from env, got %q", cfg.Server.Port)
	}
	if cfg.DB.Driver != "mysql" {
		t.Errorf("expected driver from env, got %q", cfg.DB.Driver)
	}
	if cfg.Auth.DevRole != "admin" {
		t.Errorf("expected dev role from env, got %q", cfg.Auth.DevRole)
	}
	if !cfg.Publisher.Enabled {
		t.Error("expected publisher enabled from env")
	}
}
