// Package config provides centralized configuration loaded from environment
// variables. Shared by cmd/server and cmd/afconctl.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// --------------------------------------------------------------------------
// League registry
// --------------------------------------------------------------------------

// League is one configured (leagueID, season) pair with a human name.
type League struct {
	ID     int
	Season int
	Name   string
}

// Key returns the topic key string used in logs and debug output.
func (l League) Key() string {
	return fmt.Sprintf("%d:%d", l.ID, l.Season)
}

// DefaultLeagues is used when INIT_LEAGUES is unset. League 6 is the
// Africa Cup of Nations in the upstream provider's numbering.
var DefaultLeagues = []League{
	{ID: 6, Season: 2025, Name: "Africa Cup of Nations"},
}

// --------------------------------------------------------------------------
// Config is populated from environment variables.
// --------------------------------------------------------------------------

type Config struct {
	// Database
	DatabaseURL    string
	DBPoolMinConns int
	DBPoolMaxConns int
	DBPoolMaxLife  time.Duration

	// Cache
	RedisURL string

	// Upstream provider
	UpstreamBaseURL string
	UpstreamAPIKey  string
	UpstreamRPM     int // requests per minute budget

	// Listen addresses
	GRPCAddr string
	HTTPAddr string

	// Leagues initialized on startup
	Leagues  []League
	AutoInit bool

	// Live broadcaster
	PauseAFCONLive      bool
	SubscriberBuffer    int
	SubscriberDropLimit int // consecutive drops before eviction; 0 disables

	// Poll scheduler boundaries
	LivePoll    time.Duration
	NearPoll    time.Duration
	HourPoll    time.Duration
	SixHourPoll time.Duration
	FarPoll     time.Duration
	UnknownPoll time.Duration

	// Standings refresher
	StandingsLiveTTL time.Duration
	StandingsIdleTTL time.Duration

	// Retention
	RetentionInterval time.Duration // zero disables the sweep
	RetentionCutoff   time.Duration

	// Push notifications; empty disables them
	FCMCredentialsFile string

	Environment string // development, staging, production
	Debug       bool
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	dbURL := envOr("DATABASE_URL", "")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL must be set")
	}

	leagues, err := parseLeagues(os.Getenv("INIT_LEAGUES"))
	if err != nil {
		return nil, err
	}
	if len(leagues) == 0 {
		leagues = DefaultLeagues
	}

	return &Config{
		DatabaseURL:    dbURL,
		DBPoolMinConns: envInt("DB_POOL_MIN_CONNS", 2),
		DBPoolMaxConns: envInt("DB_POOL_MAX_CONNS", 10),
		DBPoolMaxLife:  time.Duration(envInt("DB_POOL_MAX_LIFE_MINUTES", 30)) * time.Minute,

		RedisURL: envOr("REDIS_URL", ""),

		UpstreamBaseURL: envOr("API_FOOTBALL_URL", "https://v3.football.api-sports.io"),
		UpstreamAPIKey:  envOr("API_FOOTBALL_KEY", ""),
		UpstreamRPM:     envInt("API_FOOTBALL_RPM", 60),

		GRPCAddr: envOr("GRPC_ADDR", "0.0.0.0:50051"),
		HTTPAddr: envOr("HTTP_ADDR", "0.0.0.0:8000"),

		Leagues:  leagues,
		AutoInit: envBool("AUTO_INIT", true),

		PauseAFCONLive:      envBool("PAUSE_AFCON_LIVE_MATCHES", false),
		SubscriberBuffer:    envInt("SUBSCRIBER_BUFFER", 64),
		SubscriberDropLimit: envInt("SUBSCRIBER_DROP_LIMIT", 32),

		LivePoll:    envDuration("POLL_LIVE", 15*time.Second),
		NearPoll:    envDuration("POLL_NEAR", 5*time.Minute),
		HourPoll:    envDuration("POLL_WITHIN_HOUR", 30*time.Minute),
		SixHourPoll: envDuration("POLL_WITHIN_SIX_HOURS", 3*time.Hour),
		FarPoll:     envDuration("POLL_FAR", 12*time.Hour),
		UnknownPoll: envDuration("POLL_UNKNOWN", 24*time.Hour),

		StandingsLiveTTL: envDuration("STANDINGS_LIVE_TTL", 5*time.Minute),
		StandingsIdleTTL: envDuration("STANDINGS_IDLE_TTL", time.Hour),

		RetentionInterval: envDuration("RETENTION_INTERVAL", 0),
		RetentionCutoff:   envDuration("RETENTION_CUTOFF", 90*24*time.Hour),

		FCMCredentialsFile: envOr("FIREBASE_CREDENTIALS_FILE", ""),

		Environment: envOr("ENVIRONMENT", "development"),
		Debug:       envBool("DEBUG", false),
	}, nil
}

// IsProduction returns true if running in production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// parseLeagues parses INIT_LEAGUES entries of the form
// "leagueID:season:humanName", comma-separated.
func parseLeagues(raw string) ([]League, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	var leagues []League
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, ":", 3)
		if len(parts) < 2 {
			return nil, fmt.Errorf("INIT_LEAGUES entry %q: want leagueID:season[:name]", entry)
		}
		id, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return nil, fmt.Errorf("INIT_LEAGUES entry %q: bad league ID: %w", entry, err)
		}
		season, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, fmt.Errorf("INIT_LEAGUES entry %q: bad season: %w", entry, err)
		}
		name := ""
		if len(parts) == 3 {
			name = strings.TrimSpace(parts[2])
		}
		leagues = append(leagues, League{ID: id, Season: season, Name: name})
	}
	return leagues, nil
}

// --------------------------------------------------------------------------
// Env helpers
// --------------------------------------------------------------------------

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
