package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseLeagues(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []League
		wantErr bool
	}{
		{name: "empty", raw: "", want: nil},
		{
			name: "single with name",
			raw:  "6:2025:Africa Cup of Nations",
			want: []League{{ID: 6, Season: 2025, Name: "Africa Cup of Nations"}},
		},
		{
			name: "multiple entries with spaces",
			raw:  "6:2025:AFCON, 39:2025:Premier League",
			want: []League{
				{ID: 6, Season: 2025, Name: "AFCON"},
				{ID: 39, Season: 2025, Name: "Premier League"},
			},
		},
		{
			name: "name optional",
			raw:  "6:2025",
			want: []League{{ID: 6, Season: 2025}},
		},
		{name: "missing season", raw: "6", wantErr: true},
		{name: "bad league id", raw: "abc:2025", wantErr: true},
		{name: "bad season", raw: "6:soon", wantErr: true},
		{
			name: "trailing comma tolerated",
			raw:  "6:2025:AFCON,",
			want: []League{{ID: 6, Season: 2025, Name: "AFCON"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseLeagues(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "DATABASE_URL")
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/afcon")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, DefaultLeagues, cfg.Leagues)
	require.True(t, cfg.AutoInit)
	require.False(t, cfg.PauseAFCONLive)
	require.Equal(t, 64, cfg.SubscriberBuffer)
	require.Equal(t, 32, cfg.SubscriberDropLimit)
	require.Equal(t, 15*time.Second, cfg.LivePoll)
	require.Equal(t, 24*time.Hour, cfg.UnknownPoll)
	require.Zero(t, cfg.RetentionInterval)
	require.False(t, cfg.IsProduction())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/afcon")
	t.Setenv("INIT_LEAGUES", "39:2024:Premier League")
	t.Setenv("PAUSE_AFCON_LIVE_MATCHES", "true")
	t.Setenv("POLL_LIVE", "5s")
	t.Setenv("SUBSCRIBER_BUFFER", "128")
	t.Setenv("ENVIRONMENT", "production")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, []League{{ID: 39, Season: 2024, Name: "Premier League"}}, cfg.Leagues)
	require.True(t, cfg.PauseAFCONLive)
	require.Equal(t, 5*time.Second, cfg.LivePoll)
	require.Equal(t, 128, cfg.SubscriberBuffer)
	require.True(t, cfg.IsProduction())
}

func TestLeagueKey(t *testing.T) {
	require.Equal(t, "6:2025", League{ID: 6, Season: 2025}.Key())
}
