package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	domainbracket "nfl-picks-service/internal/domain/bracket"
	"nfl-picks-service/internal/domain/pool"
	"nfl-picks-service/internal/domain/teams"
	"nfl-picks-service/internal/providers"
	"nfl-picks-service/internal/testutil"
)

func TestWriteErrorIncludesRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	logger, _ := testutil.NewBufferLogger()

	req.Header.Set("X-Request-ID", "abc123")

	rr := testutil.ServeRequest(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusTeapot, "boom", logger)
	}), req)

	if rr.Code != http.StatusTeapot {
		t.Fatalf("expected status 418, got %d", rr.Code)
	}
	if got := rr.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("expected content type json, got %s", got)
	}
	body := rr.Body.String()
	if !bytes.Contains([]byte(body), []byte("abc123")) {
		t.Fatalf("expected requestId in body, got %s", body)
	}
}

func TestWriteJSONLogsEncodeError(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	rr := testutil.Serve(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, make(chan int), logger)
	}), http.MethodGet, "/encode-error", nil)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status written even on encode error, got %d", rr.Code)
	}
	if buf.Len() == 0 {
		t.Fatalf("expected logger to record encode error")
	}
}

func TestWriteErrorFallsBackToHeaderRequestID(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "header-id")
	writeError(rr, req, http.StatusTeapot, "boom", logger)
	if !bytes.Contains(rr.Body.Bytes(), []byte("header-id")) {
		t.Fatalf("expected header request id used when context missing")
	}
}

func TestStatusFor(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", fmt.Errorf("load: %w", pool.ErrNotFound), http.StatusNotFound},
		{"already submitted", fmt.Errorf("save: %w", pool.ErrAlreadySubmitted), http.StatusNotFound},
		{"bad request", fmt.Errorf("pick id: %w", errBadRequest), http.StatusBadRequest},
		{"unknown team", &teams.UnknownTeamError{Name: "Springfield Atoms"}, http.StatusBadRequest},
		{"bracket not ready", domainbracket.ErrNotReady, http.StatusBadRequest},
		{"network", &providers.NetworkError{Provider: "espn", StatusCode: 503}, http.StatusBadGateway},
		{"parse", &providers.ParseError{Provider: "thesportsdb", Err: errors.New("eof")}, http.StatusBadGateway},
		{"unavailable", providers.ErrProviderUnavailable, http.StatusBadGateway},
		{"other", errors.New("disk full"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := statusFor(tc.err); got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestRenderErrorLogsAndShowsGenericPage(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/picks/1/2", nil)

	renderError(rr, req, errors.New("disk full"), logger)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}
	if !bytes.Contains(rr.Body.Bytes(), []byte("Something went wrong")) {
		t.Fatal("expected generic error page")
	}
	if bytes.Contains(rr.Body.Bytes(), []byte("disk full")) {
		t.Fatal("expected cause kept out of the page")
	}
	if !bytes.Contains(buf.Bytes(), []byte("disk full")) {
		t.Fatal("expected cause logged")
	}
}
