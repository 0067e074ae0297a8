package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/kelmensah/afcon-data/internal/fixture"
)

// APIFootball is the HTTP client for the API-Football v3 provider.
type APIFootball struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	limiter    *rate.Limiter
	logger     *slog.Logger
}

var _ Client = (*APIFootball)(nil)

// NewAPIFootball creates a rate-limited API-Football client.
func NewAPIFootball(baseURL, apiKey string, requestsPerMinute int, logger *slog.Logger) *APIFootball {
	if logger == nil {
		logger = slog.Default()
	}
	rps := float64(requestsPerMinute) / 60.0
	return &APIFootball{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    baseURL,
		apiKey:     apiKey,
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
		logger:     logger,
	}
}

// envelope is the common API-Football response wrapper. The provider
// reports request-level problems inside a 200 body via `errors`.
type envelope struct {
	Errors   json.RawMessage `json:"errors"`
	Results  int             `json:"results"`
	Response json.RawMessage `json:"response"`
}

// get performs a rate-limited GET request to a provider endpoint.
func (c *APIFootball) get(ctx context.Context, path string, params url.Values) (*envelope, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("x-apisports-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("provider %s returned %d: %s", path, resp.StatusCode, truncate(body, 200))
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	// errors is {} or [] when clean, an object of messages otherwise.
	if len(env.Errors) > 2 {
		return nil, fmt.Errorf("provider %s rejected request: %s", path, truncate(env.Errors, 200))
	}
	return &env, nil
}

// --------------------------------------------------------------------------
// Wire shapes
// --------------------------------------------------------------------------

type wireFixture struct {
	Fixture struct {
		ID      int    `json:"id"`
		Date    string `json:"date"`
		Referee string `json:"referee"`
		Venue   struct {
			Name string `json:"name"`
		} `json:"venue"`
		Status struct {
			Long    string `json:"long"`
			Short   string `json:"short"`
			Elapsed *int   `json:"elapsed"`
			Extra   *int   `json:"extra"`
		} `json:"status"`
		Periods struct {
			First  *int64 `json:"first"`
			Second *int64 `json:"second"`
		} `json:"periods"`
	} `json:"fixture"`
	League struct {
		ID     int    `json:"id"`
		Name   string `json:"name"`
		Season int    `json:"season"`
	} `json:"league"`
	Teams struct {
		Home wireTeam `json:"home"`
		Away wireTeam `json:"away"`
	} `json:"teams"`
	Goals struct {
		Home *int `json:"home"`
		Away *int `json:"away"`
	} `json:"goals"`
	Score struct {
		Halftime struct {
			Home *int `json:"home"`
			Away *int `json:"away"`
		} `json:"halftime"`
		Fulltime struct {
			Home *int `json:"home"`
			Away *int `json:"away"`
		} `json:"fulltime"`
	} `json:"score"`
}

type wireTeam struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Logo   string `json:"logo"`
	Winner *bool  `json:"winner"`
}

type wireEvent struct {
	Time struct {
		Elapsed int  `json:"elapsed"`
		Extra   *int `json:"extra"`
	} `json:"time"`
	Team struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"team"`
	Player struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"player"`
	Assist struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"assist"`
	Type     string `json:"type"`
	Detail   string `json:"detail"`
	Comments string `json:"comments"`
}

type wireStandings struct {
	League struct {
		Standings [][]wireStandingRow `json:"standings"`
	} `json:"league"`
}

type wireStandingRow struct {
	Rank        int      `json:"rank"`
	Team        wireTeam `json:"team"`
	Points      int      `json:"points"`
	GoalsDiff   int      `json:"goalsDiff"`
	Group       string   `json:"group"`
	Form        string   `json:"form"`
	Description string   `json:"description"`
	All         struct {
		Played int `json:"played"`
		Win    int `json:"win"`
		Draw   int `json:"draw"`
		Lose   int `json:"lose"`
		Goals  struct {
			For     int `json:"for"`
			Against int `json:"against"`
		} `json:"goals"`
	} `json:"all"`
}

// --------------------------------------------------------------------------
// Client methods
// --------------------------------------------------------------------------

// FixturesForLeagueSeason implements Client.
func (c *APIFootball) FixturesForLeagueSeason(ctx context.Context, leagueID, season int) ([]fixture.Data, error) {
	params := url.Values{}
	params.Set("league", strconv.Itoa(leagueID))
	params.Set("season", strconv.Itoa(season))
	return c.fetchFixtures(ctx, params)
}

// LiveFixtures implements Client.
func (c *APIFootball) LiveFixtures(ctx context.Context, leagueID int) ([]fixture.Data, error) {
	params := url.Values{}
	params.Set("live", strconv.Itoa(leagueID))
	return c.fetchFixtures(ctx, params)
}

// FixtureByID implements Client.
func (c *APIFootball) FixtureByID(ctx context.Context, fixtureID int) (*fixture.Data, error) {
	params := url.Values{}
	params.Set("id", strconv.Itoa(fixtureID))
	fixtures, err := c.fetchFixtures(ctx, params)
	if err != nil {
		return nil, err
	}
	if len(fixtures) == 0 {
		return nil, fmt.Errorf("fixture %d not found upstream", fixtureID)
	}
	return &fixtures[0], nil
}

// FixtureEvents implements Client.
func (c *APIFootball) FixtureEvents(ctx context.Context, fixtureID int) ([]fixture.Event, error) {
	params := url.Values{}
	params.Set("fixture", strconv.Itoa(fixtureID))

	env, err := c.get(ctx, "/fixtures/events", params)
	if err != nil {
		return nil, err
	}

	var wire []wireEvent
	if err := json.Unmarshal(env.Response, &wire); err != nil {
		return nil, fmt.Errorf("decode events: %w", err)
	}

	events := make([]fixture.Event, 0, len(wire))
	for _, w := range wire {
		extra := 0
		if w.Time.Extra != nil {
			extra = *w.Time.Extra
		}
		events = append(events, fixture.Event{
			Elapsed:    w.Time.Elapsed,
			Extra:      extra,
			TeamID:     w.Team.ID,
			TeamName:   w.Team.Name,
			PlayerID:   w.Player.ID,
			PlayerName: w.Player.Name,
			AssistID:   w.Assist.ID,
			AssistName: w.Assist.Name,
			Kind:       fixture.EventKind(w.Type),
			Detail:     w.Detail,
			Comments:   w.Comments,
		})
	}
	return events, nil
}

// Standings implements Client.
func (c *APIFootball) Standings(ctx context.Context, leagueID, season int) ([]fixture.StandingGroup, error) {
	params := url.Values{}
	params.Set("league", strconv.Itoa(leagueID))
	params.Set("season", strconv.Itoa(season))

	env, err := c.get(ctx, "/standings", params)
	if err != nil {
		return nil, err
	}

	var wire []wireStandings
	if err := json.Unmarshal(env.Response, &wire); err != nil {
		return nil, fmt.Errorf("decode standings: %w", err)
	}
	if len(wire) == 0 {
		return nil, nil
	}

	var groups []fixture.StandingGroup
	for _, table := range wire[0].League.Standings {
		if len(table) == 0 {
			continue
		}
		group := fixture.StandingGroup{Name: table[0].Group}
		for _, w := range table {
			group.Rows = append(group.Rows, fixture.StandingRow{
				Rank:         w.Rank,
				Team:         fixture.Team{ID: w.Team.ID, Name: w.Team.Name, Logo: w.Team.Logo},
				Points:       w.Points,
				GoalsDiff:    w.GoalsDiff,
				Played:       w.All.Played,
				Win:          w.All.Win,
				Draw:         w.All.Draw,
				Lose:         w.All.Lose,
				GoalsFor:     w.All.Goals.For,
				GoalsAgainst: w.All.Goals.Against,
				Form:         w.Form,
				Description:  w.Description,
			})
		}
		groups = append(groups, group)
	}
	return groups, nil
}

func (c *APIFootball) fetchFixtures(ctx context.Context, params url.Values) ([]fixture.Data, error) {
	env, err := c.get(ctx, "/fixtures", params)
	if err != nil {
		return nil, err
	}

	var wire []wireFixture
	if err := json.Unmarshal(env.Response, &wire); err != nil {
		return nil, fmt.Errorf("decode fixtures: %w", err)
	}

	fixtures := make([]fixture.Data, 0, len(wire))
	for _, w := range wire {
		f, err := w.toDomain()
		if err != nil {
			c.logger.Warn("Skipping undecodable fixture", "fixture_id", w.Fixture.ID, "error", err)
			continue
		}
		fixtures = append(fixtures, f)
	}
	return fixtures, nil
}

func (w wireFixture) toDomain() (fixture.Data, error) {
	kickoff, err := time.Parse(time.RFC3339, w.Fixture.Date)
	if err != nil {
		return fixture.Data{}, fmt.Errorf("parse kickoff %q: %w", w.Fixture.Date, err)
	}

	f := fixture.Data{
		ID:          w.Fixture.ID,
		LeagueID:    w.League.ID,
		Season:      w.League.Season,
		Competition: w.League.Name,
		Kickoff:     kickoff.UTC(),
		StatusShort: fixture.ParseStatus(w.Fixture.Status.Short),
		StatusLong:  w.Fixture.Status.Long,
		Elapsed:     w.Fixture.Status.Elapsed,
		Extra:       w.Fixture.Status.Extra,
		Home:        fixture.Team(w.Teams.Home),
		Away:        fixture.Team(w.Teams.Away),
		HomeGoals:   w.Goals.Home,
		AwayGoals:   w.Goals.Away,
		HalftimeH:   w.Score.Halftime.Home,
		HalftimeA:   w.Score.Halftime.Away,
		FulltimeH:   w.Score.Fulltime.Home,
		FulltimeA:   w.Score.Fulltime.Away,
		Venue:       w.Fixture.Venue.Name,
		Referee:     w.Fixture.Referee,
	}
	if w.Fixture.Periods.First != nil {
		t := time.Unix(*w.Fixture.Periods.First, 0).UTC()
		f.PeriodFirst = &t
	}
	if w.Fixture.Periods.Second != nil {
		t := time.Unix(*w.Fixture.Periods.Second, 0).UTC()
		f.PeriodSecond = &t
	}
	return f, nil
}

// truncate returns a truncated string representation for error messages.
func truncate(b []byte, maxLen int) string {
	if len(b) <= maxLen {
		return string(b)
	}
	return string(b[:maxLen]) + "..."
}
