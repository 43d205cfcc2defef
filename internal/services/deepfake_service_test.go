package services

import (
	"context"
	"testing"
)

func TestStubVideoAnalyzer_Ranges(t *testing.T) {
	analyzer := &StubVideoAnalyzer{}

	for i := 0; i < 500; i++ {
		verdict, err := analyzer.Analyze(context.Background(), "uploads/sample.mp4")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if verdict.Confidence < 80 || verdict.Confidence > 99 {
			t.Fatalf("confidence %d outside [80,99]", verdict.Confidence)
		}
		ind := verdict.Indicators
		if ind.FaceInconsistencies < 5 || ind.FaceInconsistencies > 14 {
			t.Fatalf("face inconsistencies %d outside [5,14]", ind.FaceInconsistencies)
		}
		if ind.AudioMismatch < 10 || ind.AudioMismatch > 24 {
			t.Fatalf("audio mismatch %d outside [10,24]", ind.AudioMismatch)
		}
		if ind.TemporalAnomalies < 8 || ind.TemporalAnomalies > 19 {
			t.Fatalf("temporal anomalies %d outside [8,19]", ind.TemporalAnomalies)
		}
	}
}

func TestStubVideoAnalyzer_BothVerdictsOccur(t *testing.T) {
	analyzer := &StubVideoAnalyzer{}

	var deepfake, authentic bool
	for i := 0; i < 500 && !(deepfake && authentic); i++ {
		verdict, _ := analyzer.Analyze(context.Background(), "uploads/sample.mp4")
		if verdict.IsDeepfake {
			deepfake = true
		} else {
			authentic = true
		}
	}
	if !deepfake || !authentic {
		t.Errorf("expected both verdicts in 500 draws, got deepfake=%v authentic=%v", deepfake, authentic)
	}
}
