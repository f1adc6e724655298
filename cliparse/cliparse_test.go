// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseFlags_EnvVars(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://test")
	t.Setenv("DATABASE_TYPE", "postgres")
	t.Setenv("CORS_ORIGIN", "https://example.com")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "postgres" {
		t.Errorf("expected postgres, got %s", cfg.DatabaseType)
	}
	if cfg.AllowedOrigin != "https://example.com" {
		t.Errorf("expected origin from env, got %s", cfg.AllowedOrigin)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://env")

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "file:test.db", "-t", "sqlite"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.DatabaseURL != "file:test.db" {
		t.Errorf("CLI should override env: expected file:test.db, got %s", cfg.DatabaseURL)
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_TYPE", "")
	t.Setenv("CORS_ORIGIN", "")

	cfg, err := ParseFlags([]string{"-d", "file:test.db"})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 8000 {
		t.Errorf("expected default port 8000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("expected default sqlite, got %s", cfg.DatabaseType)
	}
	if cfg.AllowedOrigin != "*" {
		t.Errorf("expected default origin *, got %s", cfg.AllowedOrigin)
	}
}

func TestParseFlags_Errors(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	testCases := []struct {
		name string
		port string
		args []string
	}{
		{"missing database url", "", []string{}},
		{"invalid port", "abc", []string{"-d", "file:test.db"}},
		{"unsupported database type", "", []string{"-d", "x", "-t", "mysql"}},
		{"unknown flag", "", []string{"-zzz"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("PORT", tc.port)
			if _, err := ParseFlags(tc.args); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("SCHOOLPULSE_TEST_VALUE=from-file\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SCHOOLPULSE_TEST_VALUE", "")
	os.Unsetenv("SCHOOLPULSE_TEST_VALUE")

	LoadEnv(path)

	if got := os.Getenv("SCHOOLPULSE_TEST_VALUE"); got != "from-file" {
		t.Errorf("expected value from .env, got %q", got)
	}

	// Missing files are not fatal
	LoadEnv(filepath.Join(t.TempDir(), "missing.env"))
}
