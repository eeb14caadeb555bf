package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr    string
	TLSCert string
	TLSKey  string

	// DatabaseURL enables the Postgres catalog and accounts.
	DatabaseURL string
	// CatalogFile is a .yaml or .xlsx catalog used when no database is set.
	CatalogFile string
	CatalogTTL  time.Duration

	TokenKey string

	RateLimit float64
	RateBurst int

	LogLevel  string
	LogFormat string
}

func Default() Config {
	return Config{
		Addr:       ":5000",
		CatalogTTL: 5 * time.Minute,
		RateLimit:  5,
		RateBurst:  10,
		LogLevel:   "info",
		LogFormat:  "text",
	}
}

// Load reads .env files (missing files are fine) and then the environment.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: %s: %w", f, err)
		}
	}
	return FromEnv(os.Getenv)
}

func FromEnv(getenv func(string) string) (Config, error) {
	c := Default()
	str := func(key string, dst *string) {
		if v := getenv(key); v != "" {
			*dst = v
		}
	}
	str("ADDR", &c.Addr)
	str("TLS_CERT", &c.TLSCert)
	str("TLS_KEY", &c.TLSKey)
	str("DATABASE_URL", &c.DatabaseURL)
	str("CATALOG_FILE", &c.CatalogFile)
	str("TOKEN_KEY", &c.TokenKey)
	str("LOG_LEVEL", &c.LogLevel)
	str("LOG_FORMAT", &c.LogFormat)

	if v := getenv("CATALOG_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: CATALOG_TTL: %w", err)
		}
		c.CatalogTTL = d
	}
	if v := getenv("RATE_LIMIT"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, fmt.Errorf("config: RATE_LIMIT: %w", err)
		}
		c.RateLimit = f
	}
	if v := getenv("RATE_BURST"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: RATE_BURST: %w", err)
		}
		c.RateBurst = n
	}
	return c, c.Validate()
}

func (c Config) Validate() error {
	if c.DatabaseURL == "" && c.CatalogFile == "" {
		return errors.New("config: either DATABASE_URL or CATALOG_FILE must be set")
	}
	if (c.TLSCert == "") != (c.TLSKey == "") {
		return errors.New("config: TLS_CERT and TLS_KEY must be set together")
	}
	if c.DatabaseURL != "" && c.TokenKey == "" {
		return errors.New("config: TOKEN_KEY is required when accounts are enabled")
	}
	return nil
}

// Accounts reports whether login and the /api/user routes are served.
func (c Config) Accounts() bool { return c.DatabaseURL != "" }

func (c Config) TLS() bool { return c.TLSCert != "" }
