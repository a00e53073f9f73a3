package statsapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/riskibarqy/mlb-stats/internal/platform/cache"
	"github.com/riskibarqy/mlb-stats/internal/platform/logging"
	"github.com/riskibarqy/mlb-stats/internal/platform/resilience"
)

const (
	finalFeed = `{"gamePk":745927,"gameData":{"status":{"abstractGameState":"Final"}},"liveData":{"plays":{"allPlays":[]}}}`
	liveFeed  = `{"gamePk":745927,"gameData":{"status":{"abstractGameState":"Live"}},"liveData":{"plays":{"allPlays":[]}}}`
	teamDoc   = `{"teams":[{"id":147,"name":"New York Yankees"}]}`
)

type fakeAPI struct {
	mu     sync.Mutex
	hits   map[string]int
	agents []string
	query  string
	routes map[string]func(w http.ResponseWriter, hit int)
}

func newFakeAPI(t *testing.T) (*fakeAPI, *httptest.Server) {
	t.Helper()
	api := &fakeAPI{hits: map[string]int{}, routes: map[string]func(http.ResponseWriter, int){}}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		api.mu.Lock()
		api.hits[r.URL.Path]++
		hit := api.hits[r.URL.Path]
		api.agents = append(api.agents, r.Header.Get("User-Agent"))
		api.query = r.URL.RawQuery
		route := api.routes[r.URL.Path]
		api.mu.Unlock()

		if route == nil {
			http.NotFound(w, r)
			return
		}
		route(w, hit)
	}))
	t.Cleanup(srv.Close)
	return api, srv
}

func (a *fakeAPI) serve(path, body string) {
	a.routes[path] = func(w http.ResponseWriter, _ int) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}
}

func (a *fakeAPI) count(path string) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.hits[path]
}

func newTestClient(t *testing.T, baseURL string, withCache bool) (*Client, *cache.Store) {
	t.Helper()
	var store *cache.Store
	if withCache {
		store = cache.NewStore(t.TempDir(), logging.NewNop())
	}
	return NewClient(ClientConfig{
		BaseURL:     baseURL,
		Version:     "1.2.3",
		Timeout:     5 * time.Second,
		MaxRetries:  3,
		BackoffBase: time.Millisecond,
		BackoffMax:  5 * time.Millisecond,
		Cache:       store,
		Logger:      logging.NewNop(),
	}), store
}

func TestGameFeed_FinalGameServedFromCache(t *testing.T) {
	t.Parallel()

	api, srv := newFakeAPI(t)
	api.serve("/v1.1/game/745927/feed/live", finalFeed)
	client, store := newTestClient(t, srv.URL, true)

	for i := 0; i < 2; i++ {
		feed, err := client.GameFeed(context.Background(), 745927)
		if err != nil {
			t.Fatalf("fetch %d: %v", i, err)
		}
		if feed.GamePk != 745927 {
			t.Fatalf("unexpected gamePk: %d", feed.GamePk)
		}
	}

	if got := api.count("/v1.1/game/745927/feed/live"); got != 1 {
		t.Fatalf("expected one network fetch, got %d", got)
	}
	if !store.Exists(cache.KindGameFeed, "745927") {
		t.Fatalf("final feed should be cached")
	}
}

func TestGameFeed_LiveGameNotCached(t *testing.T) {
	t.Parallel()

	api, srv := newFakeAPI(t)
	api.serve("/v1.1/game/745927/feed/live", liveFeed)
	client, store := newTestClient(t, srv.URL, true)

	for i := 0; i < 2; i++ {
		if _, err := client.GameFeed(context.Background(), 745927); err != nil {
			t.Fatalf("fetch %d: %v", i, err)
		}
	}
	if got := api.count("/v1.1/game/745927/feed/live"); got != 2 {
		t.Fatalf("live feed must be refetched, got %d fetches", got)
	}
	if store.Exists(cache.KindGameFeed, "745927") {
		t.Fatalf("live feed must not be cached")
	}
}

func TestBoxscore_CachedOnlyAfterFinalFeed(t *testing.T) {
	t.Parallel()

	api, srv := newFakeAPI(t)
	api.serve("/v1/game/745927/boxscore", `{"teams":{"away":{"players":{}},"home":{"players":{}}}}`)
	api.serve("/v1.1/game/745927/feed/live", finalFeed)
	client, store := newTestClient(t, srv.URL, true)
	ctx := context.Background()

	if _, err := client.Boxscore(ctx, 745927); err != nil {
		t.Fatalf("boxscore before feed: %v", err)
	}
	if store.Exists(cache.KindBoxscore, "745927") {
		t.Fatalf("boxscore cached without knowing the game is final")
	}

	if _, err := client.GameFeed(ctx, 745927); err != nil {
		t.Fatalf("feed: %v", err)
	}
	if _, err := client.Boxscore(ctx, 745927); err != nil {
		t.Fatalf("boxscore after feed: %v", err)
	}
	if !store.Exists(cache.KindBoxscore, "745927") {
		t.Fatalf("boxscore should be cached once the feed is final")
	}
	if _, err := client.Boxscore(ctx, 745927); err != nil {
		t.Fatalf("boxscore from cache: %v", err)
	}
	if got := api.count("/v1/game/745927/boxscore"); got != 2 {
		t.Fatalf("expected two boxscore fetches, got %d", got)
	}
}

func TestTeam_AlwaysRefetched(t *testing.T) {
	t.Parallel()

	api, srv := newFakeAPI(t)
	api.serve("/v1/teams/147", teamDoc)
	client, _ := newTestClient(t, srv.URL, true)

	for i := 0; i < 2; i++ {
		team, err := client.Team(context.Background(), 147)
		if err != nil {
			t.Fatalf("fetch %d: %v", i, err)
		}
		if team.ID != 147 {
			t.Fatalf("unexpected team id: %d", team.ID)
		}
	}
	if got := api.count("/v1/teams/147"); got != 2 {
		t.Fatalf("team must not be cached, got %d fetches", got)
	}
}

func TestFetch_RetriesServerErrors(t *testing.T) {
	t.Parallel()

	api, srv := newFakeAPI(t)
	api.routes["/v1/teams/147"] = func(w http.ResponseWriter, hit int) {
		if hit < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(teamDoc))
	}
	client, _ := newTestClient(t, srv.URL, false)

	if _, err := client.Team(context.Background(), 147); err != nil {
		t.Fatalf("expected success after retries: %v", err)
	}
	if got := api.count("/v1/teams/147"); got != 3 {
		t.Fatalf("expected 3 attempts, got %d", got)
	}
}

func TestFetch_ExhaustedRetriesReturnTransient(t *testing.T) {
	t.Parallel()

	api, srv := newFakeAPI(t)
	api.routes["/v1/teams/147"] = func(w http.ResponseWriter, _ int) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	client, _ := newTestClient(t, srv.URL, false)

	_, err := client.Team(context.Background(), 147)
	if !errors.Is(err, ErrTransient) {
		t.Fatalf("expected transient error, got %v", err)
	}
	var statusErr *StatusError
	if !errors.As(err, &statusErr) || statusErr.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("expected wrapped status error, got %v", err)
	}
	if got := api.count("/v1/teams/147"); got != 4 {
		t.Fatalf("expected first attempt plus 3 retries, got %d", got)
	}
}

func TestFetch_ClientErrorIsTerminal(t *testing.T) {
	t.Parallel()

	api, srv := newFakeAPI(t)
	client, _ := newTestClient(t, srv.URL, false)

	_, err := client.Player(context.Background(), 1)
	var statusErr *StatusError
	if !errors.As(err, &statusErr) || statusErr.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 status error, got %v", err)
	}
	if errors.Is(err, ErrTransient) {
		t.Fatalf("404 must not be transient")
	}
	if got := api.count("/v1/people/1"); got != 1 {
		t.Fatalf("4xx must not be retried, got %d attempts", got)
	}
}

func TestFetch_CircuitOpensAfterTransientFailures(t *testing.T) {
	t.Parallel()

	api, srv := newFakeAPI(t)
	api.routes["/v1/teams/147"] = func(w http.ResponseWriter, _ int) {
		w.WriteHeader(http.StatusInternalServerError)
	}
	client := NewClient(ClientConfig{
		BaseURL:    srv.URL,
		MaxRetries: 0,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: 2,
			OpenTimeout:      time.Minute,
			HalfOpenMaxReq:   1,
		},
		Logger: logging.NewNop(),
	})

	for i := 0; i < 2; i++ {
		if _, err := client.Team(context.Background(), 147); !errors.Is(err, ErrTransient) {
			t.Fatalf("attempt %d: expected transient error, got %v", i, err)
		}
	}
	if _, err := client.Team(context.Background(), 147); !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected open circuit, got %v", err)
	}
	if got := api.count("/v1/teams/147"); got != 2 {
		t.Fatalf("open circuit must not reach the server, got %d requests", got)
	}
}

func TestFetch_SendsUserAgentAndQuery(t *testing.T) {
	t.Parallel()

	api, srv := newFakeAPI(t)
	api.routes["/v1/schedule"] = func(w http.ResponseWriter, _ int) {
		_, _ = w.Write([]byte(`{"dates":[{"date":"2024-07-01","games":[{"gamePk":745927},{"gamePk":745928}]}]}`))
	}
	client, _ := newTestClient(t, srv.URL+"/", false)

	day := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	schedule, err := client.Schedule(context.Background(), day, day)
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if got := schedule.GamePks(); len(got) != 2 {
		t.Fatalf("expected 2 game pks, got %v", got)
	}
	gotQuery := api.query
	if !strings.Contains(gotQuery, "startDate=2024-07-01") || !strings.Contains(gotQuery, "sportId=1") {
		t.Fatalf("unexpected query: %s", gotQuery)
	}
	if strings.Contains(gotQuery, "gameType") {
		t.Fatalf("schedule must include every game type, got query: %s", gotQuery)
	}
	if api.agents[0] != "mlb-stats-collector/1.2.3 (research project)" {
		t.Fatalf("unexpected user agent: %q", api.agents[0])
	}
}

func TestGameFeed_CorruptCacheIsRefetched(t *testing.T) {
	t.Parallel()

	api, srv := newFakeAPI(t)
	api.serve("/v1.1/game/745927/feed/live", finalFeed)
	client, store := newTestClient(t, srv.URL, true)

	dir := filepath.Join(store.Dir(), string(cache.KindGameFeed))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "745927.json"), []byte(`{"gamePk":`), 0o644); err != nil {
		t.Fatalf("seed corrupt cache: %v", err)
	}

	feed, err := client.GameFeed(context.Background(), 745927)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if feed.GamePk != 745927 {
		t.Fatalf("unexpected gamePk %d", feed.GamePk)
	}
	if got := api.count("/v1.1/game/745927/feed/live"); got != 1 {
		t.Fatalf("expected one refetch, got %d", got)
	}
}

func TestRaw_UnknownKind(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, "http://127.0.0.1:1", false)
	if _, err := client.Raw(context.Background(), cache.Kind("schedule"), 1); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}
