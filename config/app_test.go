package config

import (
	"testing"
	"time"
)

func TestNewConfig_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "COFFEE_HOT_URL", "BOOKS_LIMIT", "BOOKS_INITIAL_QUERY", "CATALOG_TTL", "CART_KEY", "FETCH_RPS"} {
		t.Setenv(k, "")
	}
	cfg := NewConfig()
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.HotURL != DefaultHotURL {
		t.Errorf("HotURL = %q, want %q", cfg.HotURL, DefaultHotURL)
	}
	if cfg.BooksLimit != 24 {
		t.Errorf("BooksLimit = %d, want 24", cfg.BooksLimit)
	}
	if cfg.BooksInitialQuery != "Dragon" {
		t.Errorf("BooksInitialQuery = %q, want Dragon", cfg.BooksInitialQuery)
	}
	if cfg.CatalogTTL != 5*time.Minute {
		t.Errorf("CatalogTTL = %s, want 5m", cfg.CatalogTTL)
	}
	if cfg.CartKey != "coffeeCart" {
		t.Errorf("CartKey = %q, want coffeeCart", cfg.CartKey)
	}
	if cfg.FetchRPS != 5 {
		t.Errorf("FetchRPS = %v, want 5", cfg.FetchRPS)
	}
}

func TestNewConfig_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("BOOKS_LIMIT", "10")
	t.Setenv("CATALOG_TTL", "30s")
	t.Setenv("DEBUG", "true")

	cfg := NewConfig()
	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Port)
	}
	if cfg.BooksLimit != 10 {
		t.Errorf("BooksLimit = %d, want 10", cfg.BooksLimit)
	}
	if cfg.CatalogTTL != 30*time.Second {
		t.Errorf("CatalogTTL = %s, want 30s", cfg.CatalogTTL)
	}
	if !cfg.Debug {
		t.Error("Debug = false, want true")
	}
}

func TestGetEnvInt_Invalid(t *testing.T) {
	t.Setenv("SOME_INT", "abc")
	if got := getEnvInt("SOME_INT", 7); got != 7 {
		t.Errorf("getEnvInt invalid = %d, want 7", got)
	}
}

func TestNewConfig_CronSchedules(t *testing.T) {
	t.Setenv("CATALOG_REFRESH_SCHEDULE", "@every 1m")
	cfg := NewConfig()
	if got := cfg.CronSchedules[CatalogRefreshJob]; got != "@every 1m" {
		t.Errorf("schedule = %q, want @every 1m", got)
	}
}
