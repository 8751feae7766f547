package bracket

import (
	"reflect"
	"strings"
	"testing"

	"nfl-picks-service/internal/domain/teams"
)

func TestStateRoundTrip(t *testing.T) {
	w := readyWizard(t)
	raw, err := EncodeState(w.State())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := DecodeState(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	restored := Restore(decoded)
	if !reflect.DeepEqual(restored.State(), w.State()) {
		t.Fatalf("expected %+v, got %+v", w.State(), restored.State())
	}
	if !restored.CanSubmit() {
		t.Fatal("expected restored wizard to be submittable")
	}
}

func TestDecodeEmptyStateStartsFresh(t *testing.T) {
	s, err := DecodeState("")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	w := Restore(s)
	if w.Phase() != SelectingWinners || w.WinnerCount(teams.AFC) != 0 {
		t.Fatalf("expected fresh wizard, got %+v", w.State())
	}
}

func TestDecodeStateRejectsGarbage(t *testing.T) {
	if _, err := DecodeState("{"); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestRestoreKeepsWildcardsAfterBack(t *testing.T) {
	w := readyWizard(t)
	w.Back()
	restored := Restore(w.State())
	if restored.Phase() != SelectingWinners {
		t.Fatalf("expected winners phase, got %s", restored.Phase())
	}
	if got := restored.Wildcards(teams.NFC); !reflect.DeepEqual(got, nfcWildcards) {
		t.Fatalf("expected wildcards kept, got %v", got)
	}
}

func TestRestoreEnforcesRulesOnTamperedState(t *testing.T) {
	s := readyWizard(t).State()
	s.AFCWildcards = []string{"Baltimore Ravens", "Miami Dolphins", "Miami Dolphins", "New York Jets", "Tennessee Titans", "Cleveland Browns"}
	w := Restore(s)

	got := w.Wildcards(teams.AFC)
	want := []string{"Miami Dolphins", "New York Jets", "Tennessee Titans"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestRestoreCannotSkipToWildcardsWithoutWinners(t *testing.T) {
	s := State{Phase: SelectingWildcards, AFCWildcards: []string{"Miami Dolphins"}}
	w := Restore(s)
	if w.Phase() != SelectingWinners {
		t.Fatalf("expected winners phase, got %s", w.Phase())
	}
	if w.CanSubmit() {
		t.Fatal("expected submit disabled")
	}
}

func TestEncodeStateUsesFormKeys(t *testing.T) {
	raw, err := EncodeState(NewWizard().State())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	for _, key := range []string{`"phase":"winners"`, `"afcWinners":{}`, `"nfcWildcards":[]`} {
		if !strings.Contains(raw, key) {
			t.Fatalf("expected %s in %s", key, raw)
		}
	}
}
