package services

import "testing"

func TestAverageOrDefault(t *testing.T) {
	if got := AverageOrDefault(nil); got != DefaultAwarenessScore {
		t.Errorf("nil aggregate: got %v, want %v", got, float64(DefaultAwarenessScore))
	}

	avg := 72.5
	if got := AverageOrDefault(&avg); got != 72.5 {
		t.Errorf("got %v, want 72.5", got)
	}
}

func TestRegions_Shape(t *testing.T) {
	svc := NewAnalyticsService(nil)

	regions := svc.Regions()
	if len(regions) != 5 {
		t.Fatalf("expected 5 regions, got %d", len(regions))
	}

	var total int
	for _, r := range regions {
		if r.Region == "" || r.Cases <= 0 {
			t.Errorf("malformed region entry: %+v", r)
		}
		total += r.Percentage
	}
	if total != 100 {
		t.Errorf("percentages sum to %d, want 100", total)
	}
}
