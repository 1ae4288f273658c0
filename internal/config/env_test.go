package config

import "testing"

// TestApplyEnvOverrides verifies set variables override nested fields and
// unset ones leave existing values alone.
func TestApplyEnvOverrides(t *testing.T) {
	cfg := &Config{}
	cfg.Server.Port = "8080"
	cfg.Database.Host = "localhost"
	cfg.Database.MaxOpenConns = 10

	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_MAX_OPEN_CONNS", "25")

	if err := applyEnvOverrides(cfg); err != nil {
		t.Fatalf("applyEnvOverrides failed: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("Expected port 9090, got %s", cfg.Server.Port)
	}
	if cfg.Database.MaxOpenConns != 25 {
		t.Errorf("Expected 25 max open conns, got %d", cfg.Database.MaxOpenConns)
	}
	if cfg.Database.Host != "localhost" {
		t.Errorf("Host changed without an override, got %s", cfg.Database.Host)
	}
}

// TestApplyEnvOverridesBadInteger verifies a malformed numeric value surfaces
// an error naming the variable.
func TestApplyEnvOverridesBadInteger(t *testing.T) {
	cfg := &Config{}
	t.Setenv("DB_MAX_OPEN_CONNS", "lots")

	if err := applyEnvOverrides(cfg); err == nil {
		t.Fatal("Expected an error for a non-numeric integer override")
	}
}
