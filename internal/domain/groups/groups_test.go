package groups

import "testing"

func TestTrainerRosterOrderAndCase(t *testing.T) {
	roster, ok := Trainer("ASH")
	if !ok {
		t.Fatalf("expected ash to be known")
	}
	if len(roster) != 10 || roster[0] != "pikachu" || roster[9] != "gengar" {
		t.Fatalf("unexpected roster %v", roster)
	}
}

func TestTrainerReturnsCopy(t *testing.T) {
	roster, _ := Trainer("misty")
	roster[0] = "missingno"
	again, _ := Trainer("misty")
	if again[0] != "starmie" {
		t.Fatalf("expected static table to be unaffected, got %s", again[0])
	}
}

func TestTrainerUnknown(t *testing.T) {
	if _, ok := Trainer("giovanni"); ok {
		t.Fatalf("did not expect giovanni to be known")
	}
}

func TestLookupRegion(t *testing.T) {
	r, ok := LookupRegion("Johto")
	if !ok {
		t.Fatalf("expected johto to be known")
	}
	if r.Pokedex != "original-johto" || r.Generation != "generation-ii" {
		t.Fatalf("unexpected region %+v", r)
	}
	if _, ok := LookupRegion("orre"); ok {
		t.Fatalf("did not expect orre to be known")
	}
}
