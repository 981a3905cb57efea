package match

import "testing"

func TestStatusHelpers(t *testing.T) {
	t.Parallel()

	if NormalizeStatus("  ") != StatusScheduled {
		t.Fatalf("empty status should normalize to scheduled")
	}
	if !IsLiveStatus("in play") || !IsLiveStatus("Q3") {
		t.Fatalf("expected live statuses")
	}
	if IsLiveStatus("FT") {
		t.Fatalf("FT is not live")
	}
	if !IsFinishedStatus("finalizado") || !IsFinishedStatus("FT") {
		t.Fatalf("expected finished statuses")
	}
	if IsFinishedStatus("postponed") {
		t.Fatalf("postponed is not finished")
	}
}
