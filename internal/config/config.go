package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type AppConfig struct {
	HTTPAddr        string
	SeedAccounts    string
	RedisAddr       string
	RedisPass       string
	RateLimitPerMin int
}

// Load reads the process environment. REDIS_ADDR is empty by default, which
// disables rate limiting; everything else has a working fallback.
func Load() AppConfig {
	return AppConfig{
		HTTPAddr:        getEnv("HTTP_ADDR", ":8080"),
		SeedAccounts:    getEnv("SEED_ACCOUNTS", "Alice:1000,Bob:500"),
		RedisAddr:       getEnv("REDIS_ADDR", ""),
		RedisPass:       getEnv("REDIS_PASS", ""),
		RateLimitPerMin: getEnvInt("RATE_LIMIT_PER_MIN", 100),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

// SeedAccount is one entry of the SEED_ACCOUNTS list.
type SeedAccount struct {
	ID      string
	Balance uint64
}

// ParseSeedAccounts parses a "Alice:1000,Bob:500" list into seed entries.
// Malformed entries and duplicate identifiers are errors, so a typo fails
// startup instead of silently seeding a wrong ledger. Empty entries from
// stray commas are ignored.
func ParseSeedAccounts(raw string) ([]SeedAccount, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	entries := strings.Split(raw, ",")
	seeds := make([]SeedAccount, 0, len(entries))
	seen := make(map[string]bool, len(entries))

	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		id, balStr, ok := strings.Cut(entry, ":")
		id = strings.TrimSpace(id)
		if !ok || id == "" {
			return nil, fmt.Errorf("malformed seed entry %q", entry)
		}

		bal, err := strconv.ParseUint(strings.TrimSpace(balStr), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("seed balance for %q: %w", id, err)
		}
		if seen[id] {
			return nil, fmt.Errorf("duplicate seed account %q", id)
		}

		seen[id] = true
		seeds = append(seeds, SeedAccount{ID: id, Balance: bal})
	}
	return seeds, nil
}
