package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"nfl-picks-service/internal/config"
	"nfl-picks-service/internal/domain/pool"
	"nfl-picks-service/internal/metrics"
	"nfl-picks-service/internal/store"
	"nfl-picks-service/internal/testutil"
)

func memoryConfig() config.Config {
	return config.Config{
		Port:     "0",
		Provider: "fixture",
		Pool: config.PoolConfig{
			DatabaseURL:     ":memory:",
			Season:          2024,
			PicksURL:        "http://picks.test",
			DisplayTimezone: "UTC",
		},
	}
}

// useStore makes the server build on st instead of opening one from config.
func useStore(t *testing.T, st store.Store) {
	t.Helper()
	orig := openStore
	openStore = func(context.Context, config.PoolConfig) (store.Store, error) { return st, nil }
	t.Cleanup(func() { openStore = orig })
}

type closeCountingStore struct {
	*store.MemoryStore
	closeCalls int
	closeErr   error
}

func (s *closeCountingStore) Close() error {
	s.closeCalls++
	return s.closeErr
}

func TestServerServesHealthAndPicks(t *testing.T) {
	st := store.NewMemoryStore()
	useStore(t, st)
	pickID := testutil.SeedPooler(t, st, pool.Pooler{DiscordID: "42", Name: "Tester", FavoriteTeam: "PHI"}, 2024, 1)

	provider := &testutil.WeekProvider{Matches: testutil.SampleWeek()}
	srv, err := newServerWithMetrics(memoryConfig(), nil, provider, metrics.NewRecorder())
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	router := srv.Handler()

	rr := testutil.Serve(router, http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	rr = testutil.Serve(router, http.MethodGet, "/picks/42/"+strconv.FormatInt(pickID, 10), nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	if provider.Calls() != 1 {
		t.Fatalf("expected one schedule fetch, got %d", provider.Calls())
	}
	if rr.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected request id header from middleware")
	}
}

func TestServerProviderErrorRendersErrorPage(t *testing.T) {
	st := store.NewMemoryStore()
	useStore(t, st)
	pickID := testutil.SeedPooler(t, st, pool.Pooler{DiscordID: "42", Name: "Tester"}, 2024, 1)

	srv, err := newServerWithProvider(memoryConfig(), nil, testutil.ErrProvider{Err: context.DeadlineExceeded})
	if err != nil {
		t.Fatalf("new server: %v", err)
	}

	rr := testutil.Serve(srv.Handler(), http.MethodGet, "/picks/42/"+strconv.FormatInt(pickID, 10), nil)
	if rr.Code < http.StatusInternalServerError {
		t.Fatalf("expected a server error status, got %d", rr.Code)
	}
}

func TestAdminRoutesMountedOnlyWithToken(t *testing.T) {
	useStore(t, store.NewMemoryStore())

	srv, err := New(memoryConfig(), nil)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	rr := testutil.PostJSON(t, srv.Handler(), "/admin/poolers", "", pool.Pooler{DiscordID: "7", Name: "Seven"})
	testutil.AssertStatus(t, rr, http.StatusNotFound)

	cfg := memoryConfig()
	cfg.AdminToken = "secret"
	srv, err = New(cfg, nil)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	rr = testutil.PostJSON(t, srv.Handler(), "/admin/poolers", "secret", pool.Pooler{DiscordID: "7", Name: "Seven"})
	if rr.Code != http.StatusOK && rr.Code != http.StatusNoContent {
		t.Fatalf("expected pooler upsert to succeed, got %d", rr.Code)
	}
}

func TestNewOpensSQLiteStore(t *testing.T) {
	cfg := memoryConfig()
	cfg.Pool.DatabaseURL = filepath.Join(t.TempDir(), "picks.db")

	srv, err := New(cfg, nil)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	defer srv.store.Close()

	if _, ok := srv.store.(*store.SQLStore); !ok {
		t.Fatalf("expected sqlite store, got %T", srv.store)
	}
	if _, err := srv.store.LoadPickContext(context.Background(), "nobody", 1); !errors.Is(err, pool.ErrNotFound) {
		t.Fatalf("expected ErrNotFound from migrated store, got %v", err)
	}
}

func TestNewUsesMemoryStoreForMemoryURL(t *testing.T) {
	srv, err := New(memoryConfig(), nil)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	if _, ok := srv.store.(*store.MemoryStore); !ok {
		t.Fatalf("expected memory store, got %T", srv.store)
	}
}

func TestNewFailsWhenStoreCannotOpen(t *testing.T) {
	orig := openStore
	defer func() { openStore = orig }()
	openStore = func(context.Context, config.PoolConfig) (store.Store, error) {
		return nil, errors.New("disk full")
	}

	if _, err := New(memoryConfig(), nil); err == nil {
		t.Fatalf("expected store error")
	}
}

func TestDisplayLocation(t *testing.T) {
	if loc := displayLocation("", nil); loc.String() != "America/New_York" {
		t.Fatalf("expected default zone for empty name, got %s", loc)
	}
	if loc := displayLocation("Not/AZone", nil); loc != time.UTC {
		t.Fatalf("expected UTC fallback for unknown zone")
	}
	if loc := displayLocation("America/New_York", nil); loc.String() != "America/New_York" {
		t.Fatalf("expected New York, got %s", loc)
	}
}

func TestGracefulShutdownStopsServerAndClosesStore(t *testing.T) {
	st := &closeCountingStore{MemoryStore: store.NewMemoryStore()}
	httpSrv := &testutil.StubHTTPServer{}

	srv := newServerWithDeps(config.Config{}, nil, st, httpSrv)
	srv.gracefulShutdown()

	if httpSrv.ShutdownCalls != 1 {
		t.Fatalf("expected server Shutdown to be called once, got %d", httpSrv.ShutdownCalls)
	}
	if st.closeCalls != 1 {
		t.Fatalf("expected store Close to be called once, got %d", st.closeCalls)
	}
}

func TestGracefulShutdownContinuesWhenStoreCloseErrors(t *testing.T) {
	st := &closeCountingStore{MemoryStore: store.NewMemoryStore(), closeErr: errors.New("close failure")}
	httpSrv := &testutil.StubHTTPServer{ShutdownErr: errors.New("shutdown failure")}

	srv := newServerWithDeps(config.Config{}, nil, st, httpSrv)
	srv.gracefulShutdown()

	if httpSrv.ShutdownCalls != 1 || st.closeCalls != 1 {
		t.Fatalf("expected shutdown and close to run, got %d and %d", httpSrv.ShutdownCalls, st.closeCalls)
	}
}

func TestGracefulShutdownTimesOutLongRunningShutdown(t *testing.T) {
	blocking := &testutil.BlockingHTTPServer{
		AddrVal:    ":0",
		HandlerVal: http.NewServeMux(),
		Unblock:    make(chan struct{}),
	}

	original := shutdownTimeout
	shutdownTimeout = 5 * time.Millisecond
	defer func() { shutdownTimeout = original }()

	srv := newServerWithDeps(config.Config{}, nil, store.NewMemoryStore(), blocking)

	start := time.Now()
	srv.gracefulShutdown()
	elapsed := time.Since(start)

	if blocking.ShutdownCalls != 1 {
		t.Fatalf("expected server Shutdown to be called once, got %d", blocking.ShutdownCalls)
	}
	if elapsed > 200*time.Millisecond {
		t.Fatalf("shutdown took too long: %s", elapsed)
	}
}

func TestServerStartHandlesListenErrorAndStops(t *testing.T) {
	httpSrv := &testutil.StubHTTPServer{ListenErr: errors.New("listen failure")}
	srv := newServerWithDeps(config.Config{}, nil, store.NewMemoryStore(), httpSrv)

	stopCalled := make(chan struct{})
	srv.startServer(func() { close(stopCalled) })

	select {
	case <-stopCalled:
	case <-time.After(200 * time.Millisecond):
		t.Fatal("expected stop to be called on listen failure")
	}
}

func TestRunCancelsAndStopsComponents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	st := &closeCountingStore{MemoryStore: store.NewMemoryStore()}
	httpSrv := &testutil.StubHTTPServer{ListenErr: http.ErrServerClosed, HandlerVal: http.NewServeMux()}
	srv := newServerWithDeps(config.Config{}, nil, st, httpSrv)

	done := make(chan struct{})
	go func() {
		srv.Run(ctx, cancel)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("expected Run to return after cancellation")
	}
	if httpSrv.ShutdownCalls != 1 || st.closeCalls != 1 {
		t.Fatalf("expected shutdown and close after Run, got %d and %d", httpSrv.ShutdownCalls, st.closeCalls)
	}
}

func TestHandlerExposesRouter(t *testing.T) {
	mux := http.NewServeMux()
	srv := newServerWithDeps(config.Config{}, nil, nil, &testutil.StubHTTPServer{HandlerVal: mux})
	if srv.Handler() != mux {
		t.Fatalf("expected handler passthrough")
	}
	rr := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 from empty mux, got %d", rr.Code)
	}
}
