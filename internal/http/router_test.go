package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	appbracket "nfl-picks-service/internal/app/bracket"
	apppicks "nfl-picks-service/internal/app/picks"
	"nfl-picks-service/internal/app/schedule"
	"nfl-picks-service/internal/domain/teams"
	"nfl-picks-service/internal/http/handlers"
	"nfl-picks-service/internal/store"
	"nfl-picks-service/internal/testutil"
)

func newHandlers(ms *store.MemoryStore) *handlers.Handler {
	dir := teams.NewDirectory()
	sched := schedule.NewService(&testutil.WeekProvider{Matches: testutil.SampleWeek()})
	return handlers.NewHandler(
		apppicks.NewService(ms, sched, nil, nil),
		appbracket.NewService(ms, dir, nil, nil),
		nil,
		nil,
	)
}

func TestRouterRoutesKnownPaths(t *testing.T) {
	ms := store.NewMemoryStore()
	router := NewRouter(newHandlers(ms), nil)

	cases := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/picks/42/1", http.StatusNotFound},
		{http.MethodGet, "/playoffs/42/2024", http.StatusNotFound},
		{http.MethodPost, "/health", http.StatusMethodNotAllowed},
		{http.MethodDelete, "/picks/42/1", http.StatusMethodNotAllowed},
		{http.MethodGet, "/does-not-exist", http.StatusNotFound},
		{http.MethodPost, "/admin/poolers", http.StatusNotFound},
	}

	for _, tc := range cases {
		rr := testutil.ServeRequest(router, httptest.NewRequest(tc.method, tc.path, nil))
		if rr.Code != tc.want {
			t.Fatalf("%s %s expected status %d, got %d", tc.method, tc.path, tc.want, rr.Code)
		}
	}
}

func TestRouterMountsAdminWhenConfigured(t *testing.T) {
	ms := store.NewMemoryStore()
	admin := handlers.NewAdminHandler(ms, teams.NewDirectory(), "http://localhost:4000", "secret", nil)
	router := NewRouter(newHandlers(ms), admin)

	rr := testutil.PostJSON(t, router, "/admin/poolers", "", map[string]string{"discordId": "42", "name": "Jean"})
	testutil.AssertStatus(t, rr, http.StatusUnauthorized)

	rr = testutil.PostJSON(t, router, "/admin/poolers", "secret", map[string]string{"discordId": "42", "name": "Jean"})
	testutil.AssertStatus(t, rr, http.StatusOK)

	rr = testutil.Serve(router, http.MethodGet, "/playoffs/42/2024", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
}
