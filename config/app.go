package config

import (
	"os"
	"sync"
	"time"

	"coffeebar.GO/service/books"
)

// AppConfig holds global application configuration
var AppConfig *Config
var once sync.Once

const (
	DefaultHotURL  = "https://api.sampleapis.com/coffee/hot"
	DefaultColdURL = "https://api.sampleapis.com/coffee/cold"
)

type Config struct {
	AppName string
	Port    string
	Env     string
	Debug   bool

	// Upstream catalogs
	HotURL            string
	ColdURL           string
	BooksURL          string
	BooksLimit        int
	BooksDefaultQuery string
	BooksInitialQuery string

	CatalogTTL             time.Duration
	CatalogRefreshSchedule string
	FetchTimeout           time.Duration
	FetchRPS               float64

	// Cart persistence
	CartKey       string
	StorageDriver string

	// CronSchedules overrides the schedule of registered cron jobs by name.
	CronSchedules map[string]string
}

// CatalogRefreshJob is the cron job that refetches the coffee catalog.
const CatalogRefreshJob = "catalog:refresh"


// NewConfig reads configuration from the environment without touching AppConfig.
func NewConfig() *Config {
	cfg := &Config{
		AppName: GetEnv("APP_NAME", "coffeebar"),
		Port:    GetEnv("PORT", "8080"),
		Env:     GetEnv("APP_ENV", "dev"),
		Debug:   os.Getenv("DEBUG") == "true",

		HotURL:            GetEnv("COFFEE_HOT_URL", DefaultHotURL),
		ColdURL:           GetEnv("COFFEE_COLD_URL", DefaultColdURL),
		BooksURL:          GetEnv("BOOKS_URL", books.DefaultBaseURL),
		BooksLimit:        getEnvInt("BOOKS_LIMIT", books.DefaultLimit),
		BooksDefaultQuery: GetEnv("BOOKS_DEFAULT_QUERY", books.DefaultQuery),
		BooksInitialQuery: GetEnv("BOOKS_INITIAL_QUERY", books.DefaultInitialQuery),

		CatalogTTL:             getEnvDuration("CATALOG_TTL", 5*time.Minute),
		CatalogRefreshSchedule: GetEnv("CATALOG_REFRESH_SCHEDULE", "@every 10m"),
		FetchTimeout:           getEnvDuration("FETCH_TIMEOUT", 15*time.Second),
		FetchRPS:               getEnvFloat("FETCH_RPS", 5),

		CartKey:       GetEnv("CART_KEY", "coffeeCart"),
		StorageDriver: GetEnv("STORAGE_DRIVER", "db"),
	}
	cfg.CronSchedules = map[string]string{
		CatalogRefreshJob: cfg.CatalogRefreshSchedule,
	}
	return cfg
}

// LoadAppConfig initializes the global AppConfig variable
func LoadAppConfig() *Config {
	once.Do(func() {
		AppConfig = NewConfig()
	})
	return AppConfig
}
