package stats

import "testing"

func TestRecordKill(t *testing.T) {
	tr := New()
	tr.RecordKill(50)
	tr.RecordKill(50)
	if tr.Get(Score) != 100 || tr.Get(Kills) != 2 {
		t.Errorf("Expected score 100 and 2 kills, got %d and %d", tr.Get(Score), tr.Get(Kills))
	}
	if got := tr.Summary(); got != "Score: 100  Kills: 2" {
		t.Errorf("Unexpected summary %q", got)
	}
}

func TestAddAndReset(t *testing.T) {
	tr := New()
	if got := tr.Add(HealthPickups, 2); got != 2 {
		t.Errorf("Expected 2, got %d", got)
	}
	if got := tr.Add(Counter(99), 5); got != 0 {
		t.Errorf("Expected unknown counter to be ignored, got %d", got)
	}
	tr.Reset()
	if tr.Get(HealthPickups) != 0 {
		t.Errorf("Expected counters zeroed after reset")
	}
}

func TestCounterString(t *testing.T) {
	if DamageBlocked.String() != "damage_blocked" {
		t.Errorf("Expected damage_blocked, got %s", DamageBlocked)
	}
}
