package providers

import (
	"errors"
	"testing"
)

func TestResolveWeekRegularSeasonPassesThrough(t *testing.T) {
	for week := 1; week <= LastRegularWeek; week++ {
		got, err := ResolveWeek(week)
		if err != nil {
			t.Fatalf("week %d: unexpected error %v", week, err)
		}
		if got.SubSeasonIndex != week || got.SeasonType != SeasonTypeRegular {
			t.Fatalf("week %d: unexpected %+v", week, got)
		}
	}
}

func TestResolveWeekPostseason(t *testing.T) {
	cases := map[int]RemoteWeek{
		19: {1, 3},
		20: {2, 3},
		21: {3, 3},
		22: {5, 3},
	}
	for week, want := range cases {
		got, err := ResolveWeek(week)
		if err != nil {
			t.Fatalf("week %d: unexpected error %v", week, err)
		}
		if got != want {
			t.Fatalf("week %d: expected %+v, got %+v", week, want, got)
		}
		if !IsPostseason(week) {
			t.Fatalf("week %d: expected postseason", week)
		}
	}
}

func TestResolveWeekRejectsOutOfRange(t *testing.T) {
	for _, week := range []int{-1, 0, 23, 100} {
		if _, err := ResolveWeek(week); !errors.Is(err, ErrInvalidWeek) {
			t.Fatalf("week %d: expected ErrInvalidWeek, got %v", week, err)
		}
	}
	if IsPostseason(18) {
		t.Fatal("week 18 is regular season")
	}
}
