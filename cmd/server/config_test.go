package main

import (
	"os"
	"path/filepath"
	"testing"
)

// unsetEnv removes key for the rest of the test. godotenv only fills keys
// that are absent, so an empty value is not enough.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	if err := os.Unsetenv(key); err != nil {
		t.Fatal(err)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, k := range []string{"PORT", "NAT_ENV", "DATABASE_URL", "AUTH_JWT_SECRET", "RIG_KEY_HASH", "CAMFOUR_SEED"} {
		t.Setenv(k, "")
	}

	cfg := loadConfig()
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if !cfg.IsDev {
		t.Error("expected dev mode without NAT_ENV")
	}
	if cfg.Seed != 0 {
		t.Errorf("Seed = %d, want 0", cfg.Seed)
	}
}

func TestLoadConfigDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	unsetEnv(t, "PORT")
	unsetEnv(t, "CAMFOUR_SEED")
	t.Setenv("NAT_ENV", "production")

	env := "PORT=9090\nCAMFOUR_SEED=42\nNAT_ENV=development\n"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := loadConfig()
	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want 9090 from .env", cfg.Port)
	}
	if cfg.Seed != 42 {
		t.Errorf("Seed = %d, want 42", cfg.Seed)
	}
	if cfg.IsDev {
		t.Error("environment should win over .env")
	}
}

func TestLoadConfigBadSeed(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CAMFOUR_SEED", "lots")

	if cfg := loadConfig(); cfg.Seed != 0 {
		t.Errorf("Seed = %d, want bad value ignored", cfg.Seed)
	}
}
