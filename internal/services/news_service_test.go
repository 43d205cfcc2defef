package services

import (
	"context"
	"errors"
	"testing"

	"github.com/truthlens/truthlens-backend/internal/dto"
	"github.com/truthlens/truthlens-backend/internal/models"
)

type stubClassifier struct {
	verdict    *Verdict
	err        error
	configured bool
	calls      int
}

func (c *stubClassifier) Configured() bool { return c.configured }

func (c *stubClassifier) Classify(_ context.Context, _, _, _ string) (*Verdict, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	v := *c.verdict
	return &v, nil
}

type stubSourceChecker struct {
	info *dto.SourceInfo
	err  error
}

func (s *stubSourceChecker) Configured() bool { return s.err == nil }

func (s *stubSourceChecker) Lookup(_ context.Context, _ string) (*dto.SourceInfo, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.info, nil
}

func newStubNewsService(baseline *Verdict, sources SourceChecker, classifier Classifier) *NewsService {
	return &NewsService{
		sources:    sources,
		classifier: classifier,
		fallback:   &stubClassifier{verdict: baseline},
	}
}

func TestClassify_SourceHitForcesVerifiedWithBonus(t *testing.T) {
	svc := newStubNewsService(
		&Verdict{IsReal: false, Confidence: 85},
		&stubSourceChecker{info: &dto.SourceInfo{Name: "Reuters", Category: "general"}},
		&stubClassifier{configured: false},
	)

	verdict, sourceInfo, _ := svc.classify(context.Background(), &dto.VerifyNewsRequest{URL: "http://reuters.com/a"}, "reuters.com")
	if !verdict.IsReal {
		t.Error("source hit must force a real verdict")
	}
	if verdict.Confidence != 95 {
		t.Errorf("expected baseline 85 + bonus 10 = 95, got %d", verdict.Confidence)
	}
	if sourceInfo == nil || sourceInfo.Name != "Reuters" {
		t.Errorf("expected Reuters source info, got %+v", sourceInfo)
	}
}

func TestClassify_BonusCappedAt99(t *testing.T) {
	svc := newStubNewsService(
		&Verdict{IsReal: true, Confidence: 95},
		&stubSourceChecker{info: &dto.SourceInfo{Name: "BBC News"}},
		&stubClassifier{configured: false},
	)

	verdict, _, _ := svc.classify(context.Background(), &dto.VerifyNewsRequest{URL: "http://bbc.co.uk/a"}, "bbc.co.uk")
	if verdict.Confidence != 99 {
		t.Errorf("expected cap at 99, got %d", verdict.Confidence)
	}
}

func TestClassify_ModelOverridesAfterBonus(t *testing.T) {
	model := &stubClassifier{
		configured: true,
		verdict:    &Verdict{IsReal: false, Confidence: 40, Raw: `{"isReal":false,"confidence":40}`},
	}
	svc := newStubNewsService(
		&Verdict{IsReal: true, Confidence: 85},
		&stubSourceChecker{info: &dto.SourceInfo{Name: "Reuters"}},
		model,
	)

	verdict, sourceInfo, aiAnalysis := svc.classify(context.Background(),
		&dto.VerifyNewsRequest{URL: "http://reuters.com/a", Headline: "h"}, "reuters.com")
	if verdict.IsReal || verdict.Confidence != 40 {
		t.Errorf("model verdict must override the source-bonus values, got real=%v confidence=%d", verdict.IsReal, verdict.Confidence)
	}
	if sourceInfo == nil {
		t.Error("source info must survive the model override")
	}
	if aiAnalysis == "" {
		t.Error("expected raw model response to be carried")
	}
}

func TestClassify_ModelFailureKeepsPriorValues(t *testing.T) {
	svc := newStubNewsService(
		&Verdict{IsReal: false, Confidence: 85},
		&stubSourceChecker{info: &dto.SourceInfo{Name: "Reuters"}},
		&stubClassifier{configured: true, err: errors.New("model timeout")},
	)

	verdict, _, aiAnalysis := svc.classify(context.Background(),
		&dto.VerifyNewsRequest{URL: "http://reuters.com/a", Headline: "h"}, "reuters.com")
	if !verdict.IsReal || verdict.Confidence != 95 {
		t.Errorf("expected the source-stage values to survive a model failure, got real=%v confidence=%d", verdict.IsReal, verdict.Confidence)
	}
	if aiAnalysis != "" {
		t.Error("no analysis should be attached when the model fails")
	}
}

func TestClassify_UnconfiguredStagesKeepBaseline(t *testing.T) {
	svc := newStubNewsService(
		&Verdict{IsReal: false, Confidence: 85},
		&stubSourceChecker{err: ErrUnconfigured},
		&stubClassifier{configured: false},
	)

	verdict, sourceInfo, _ := svc.classify(context.Background(), &dto.VerifyNewsRequest{URL: "http://a.com"}, "a.com")
	if verdict.IsReal || verdict.Confidence != 85 {
		t.Errorf("baseline verdict must pass through unchanged, got real=%v confidence=%d", verdict.IsReal, verdict.Confidence)
	}
	if sourceInfo != nil {
		t.Errorf("no source info expected, got %+v", sourceInfo)
	}
}

func TestClassify_ModelSkippedWithoutText(t *testing.T) {
	model := &stubClassifier{configured: true, verdict: &Verdict{IsReal: false, Confidence: 40}}
	svc := newStubNewsService(
		&Verdict{IsReal: true, Confidence: 85},
		&stubSourceChecker{err: ErrSourceUnknown},
		model,
	)

	svc.classify(context.Background(), &dto.VerifyNewsRequest{URL: "http://a.com"}, "a.com")
	if model.calls != 0 {
		t.Errorf("model must not run without headline or content, got %d calls", model.calls)
	}
}

func TestBuildIndicators_PrefersModelLists(t *testing.T) {
	verdict := &Verdict{
		IsReal: false,
		Indicators: models.NewsIndicators{
			Negative: []string{"Unnamed sources throughout"},
		},
	}

	got := buildIndicators(verdict, nil)
	if len(got.Negative) != 1 || got.Negative[0] != "Unnamed sources throughout" {
		t.Errorf("expected model-provided negative list, got %+v", got)
	}
	if got.Positive == nil {
		t.Error("positive list must be an empty slice, not nil")
	}
}

func TestBuildIndicators_CannedFallback(t *testing.T) {
	real := buildIndicators(&Verdict{IsReal: true}, &dto.SourceInfo{Name: "Reuters"})
	if len(real.Positive) != 3 {
		t.Fatalf("expected 3 positive indicators with source info, got %d", len(real.Positive))
	}
	if real.Positive[0] != "Source verified in News API database" {
		t.Errorf("unexpected first indicator %q", real.Positive[0])
	}

	realNoSource := buildIndicators(&Verdict{IsReal: true}, nil)
	if len(realNoSource.Positive) != 2 {
		t.Errorf("expected 2 positive indicators without source info, got %d", len(realNoSource.Positive))
	}

	fake := buildIndicators(&Verdict{IsReal: false}, nil)
	if len(fake.Negative) != 3 || len(fake.Positive) != 0 {
		t.Errorf("expected 3 negative and 0 positive indicators, got %+v", fake)
	}
}

func TestPickTopic_CategoryMapping(t *testing.T) {
	cases := []struct {
		category string
		want     string
	}{
		{"health", "Health"},
		{"technology", "Technology"},
		{"science", "Technology"},
		{"entertainment", "Entertainment"},
		{"sports", "Sports"},
		{"politics", "Politics"},
		{"general", "Politics"},
		{"business", "Other"},
	}
	for _, tc := range cases {
		got := pickTopic(&dto.SourceInfo{Category: tc.category})
		if got != tc.want {
			t.Errorf("pickTopic(%q) = %q, want %q", tc.category, got, tc.want)
		}
	}
}

func TestPickTopic_RandomFallback(t *testing.T) {
	for i := 0; i < 200; i++ {
		topic := pickTopic(nil)
		if topic == "Other" {
			t.Fatal("random fallback must not pick Other")
		}
		if !models.ValidTopic(topic) {
			t.Fatalf("random fallback produced unknown topic %q", topic)
		}
	}
}
