package aggregate

import "testing"

func TestTokenTallyTieGoesToFirstSeen(t *testing.T) {
	tally := NewTokenTally()
	tally.AddList("USDC AERO")
	tally.AddList("AERO  USDC")

	token, count := tally.MostCommon()
	if token != "USDC" || count != 2 {
		t.Fatalf("most common mismatch: %s=%d", token, count)
	}
}

func TestTokenTallyEmpty(t *testing.T) {
	tally := NewTokenTally()
	tally.AddList("   ")

	if token, count := tally.MostCommon(); token != "" || count != 0 {
		t.Fatalf("expected empty tally, got %s=%d", token, count)
	}
}
