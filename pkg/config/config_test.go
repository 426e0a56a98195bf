package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ENV", "")
	t.Setenv("UPLOAD_DIR", "")

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Errorf("Env = %q, want development", cfg.Env)
	}
	if cfg.UploadDir != "./uploads" {
		t.Errorf("UploadDir = %q, want ./uploads", cfg.UploadDir)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("POSTGRES_CONN_STR", "host=db user=app dbname=socially")
	t.Setenv("REVALIDATE_URL", "http://frontend/revalidate")

	cfg := Load()

	if cfg.Port != "9999" {
		t.Errorf("Port = %q, want 9999", cfg.Port)
	}
	if cfg.PostgresConnStr != "host=db user=app dbname=socially" {
		t.Errorf("PostgresConnStr = %q", cfg.PostgresConnStr)
	}
	if cfg.RevalidateURL != "http://frontend/revalidate" {
		t.Errorf("RevalidateURL = %q", cfg.RevalidateURL)
	}
}
