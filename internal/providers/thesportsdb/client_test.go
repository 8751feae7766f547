package thesportsdb

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"nfl-picks-service/internal/providers"
)

const weekOneBody = `{
	"events": [
		{
			"idEvent": "2052480",
			"strHomeTeam": "Kansas City Chiefs",
			"strAwayTeam": "Baltimore Ravens",
			"dateEvent": "2024-09-06",
			"strTime": "00:20:00",
			"strTimestamp": "2024-09-06T00:20:00"
		},
		{
			"idEvent": "2052481",
			"strHomeTeam": "Washington Redskins",
			"strAwayTeam": "Springfield Atoms",
			"dateEvent": "2024-09-08",
			"strTime": "17:00:00"
		}
	]
}`

func stubClient(t *testing.T, status int, body string, capture func(*http.Request)) *Client {
	t.Helper()
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		if capture != nil {
			capture(req)
		}
		return &http.Response{
			StatusCode: status,
			Body:       io.NopCloser(strings.NewReader(body)),
			Header:     make(http.Header),
		}, nil
	})
	return NewClient(Config{
		BaseURL:    "http://example.com/api/",
		HTTPClient: &http.Client{Transport: rt},
	})
}

func TestFetchWeekHitsAPIAndMapsResponse(t *testing.T) {
	var captured *http.Request
	client := stubClient(t, http.StatusOK, weekOneBody, func(req *http.Request) { captured = req })

	items, err := client.FetchWeek(context.Background(), 2024, 1)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if captured.URL.Path != "/api/3/eventsround.php" {
		t.Fatalf("unexpected path %s", captured.URL.Path)
	}
	q := captured.URL.Query()
	if q.Get("id") != "4391" || q.Get("r") != "1" || q.Get("s") != "2024" {
		t.Fatalf("unexpected query %s", captured.URL.RawQuery)
	}

	if len(items) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(items))
	}
	first := items[0]
	if first.ID != "2052480" || first.Home.ShortName != "KC" || first.Away.ShortName != "BAL" {
		t.Fatalf("unexpected first match %+v", first)
	}
	if !first.Date.Equal(time.Date(2024, 9, 6, 0, 20, 0, 0, time.UTC)) {
		t.Fatalf("unexpected kickoff %s", first.Date)
	}

	second := items[1]
	if second.Home.ShortName != "WAS" {
		t.Fatalf("expected historical name to resolve, got %s", second.Home.ShortName)
	}
	if second.Away.ShortName != "Springfield Atoms" || second.Away.DisplayName != "Springfield Atoms" {
		t.Fatalf("expected unknown team kept raw, got %+v", second.Away)
	}
	if !second.Date.Equal(time.Date(2024, 9, 8, 17, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected date+time fallback, got %s", second.Date)
	}
}

func TestFetchWeekUsesPostseasonRounds(t *testing.T) {
	cases := map[int]string{19: "160", 20: "125", 21: "150", 22: "200"}
	for week, round := range cases {
		var got string
		client := stubClient(t, http.StatusOK, `{"events":null}`, func(req *http.Request) {
			got = req.URL.Query().Get("r")
		})
		if _, err := client.FetchWeek(context.Background(), 2024, week); err != nil {
			t.Fatalf("week %d: unexpected error %v", week, err)
		}
		if got != round {
			t.Fatalf("week %d: expected round %s, got %s", week, round, got)
		}
	}
}

func TestFetchWeekMissingEventsIsEmpty(t *testing.T) {
	for _, body := range []string{`{"events":null}`, `{}`, `{"events":[]}`} {
		client := stubClient(t, http.StatusOK, body, nil)
		items, err := client.FetchWeek(context.Background(), 2024, 3)
		if err != nil {
			t.Fatalf("%s: unexpected error %v", body, err)
		}
		if len(items) != 0 {
			t.Fatalf("%s: expected no matches, got %d", body, len(items))
		}
	}
}

func TestFetchWeekRejectsInvalidWeek(t *testing.T) {
	called := false
	client := stubClient(t, http.StatusOK, `{}`, func(*http.Request) { called = true })
	if _, err := client.FetchWeek(context.Background(), 2024, 23); !errors.Is(err, providers.ErrInvalidWeek) {
		t.Fatalf("expected ErrInvalidWeek, got %v", err)
	}
	if called {
		t.Fatal("expected no upstream request")
	}
}

func TestFetchWeekHandlesNon200(t *testing.T) {
	client := stubClient(t, http.StatusBadGateway, "boom", nil)
	_, err := client.FetchWeek(context.Background(), 2024, 1)
	if _, ok := providers.AsNetworkError(err); !ok {
		t.Fatalf("expected network error, got %v", err)
	}
}

func TestFetchWeekHandlesDecodeError(t *testing.T) {
	client := stubClient(t, http.StatusOK, "{bad json", nil)
	_, err := client.FetchWeek(context.Background(), 2024, 1)
	if _, ok := providers.AsParseError(err); !ok {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestFetchWeekHandlesTransportError(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return nil, errors.New("dial failed")
	})
	client := NewClient(Config{HTTPClient: &http.Client{Transport: rt}})
	_, err := client.FetchWeek(context.Background(), 2024, 1)
	if _, ok := providers.AsNetworkError(err); !ok {
		t.Fatalf("expected network error, got %v", err)
	}
}

type roundTripperFunc func(req *http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}
