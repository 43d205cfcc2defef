package services

import (
	"errors"
	"testing"

	"github.com/truthlens/truthlens-backend/internal/dto"
	"github.com/truthlens/truthlens-backend/internal/models"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{models.ReportStatusPending, models.ReportStatusInvestigating, true},
		{models.ReportStatusInvestigating, models.ReportStatusConfirmedFake, true},
		{models.ReportStatusInvestigating, models.ReportStatusAuthentic, true},
		{models.ReportStatusPending, models.ReportStatusConfirmedFake, false},
		{models.ReportStatusPending, models.ReportStatusAuthentic, false},
		{models.ReportStatusConfirmedFake, models.ReportStatusPending, false},
		{models.ReportStatusAuthentic, models.ReportStatusInvestigating, false},
		{models.ReportStatusPending, models.ReportStatusPending, false},
	}
	for _, tc := range cases {
		if got := CanTransition(tc.from, tc.to); got != tc.want {
			t.Errorf("CanTransition(%q, %q) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

// Validation runs before any database access, so a nil handle is safe here.
func TestSubmit_Validation(t *testing.T) {
	svc := NewReportService(nil)

	_, err := svc.Submit(&dto.SubmitReportRequest{URL: "http://a.com"})
	if !errors.Is(err, ErrMissingReportField) {
		t.Fatalf("expected ErrMissingReportField, got %v", err)
	}

	_, err = svc.Submit(&dto.SubmitReportRequest{Type: "Fake News"})
	if !errors.Is(err, ErrMissingReportField) {
		t.Fatalf("expected ErrMissingReportField, got %v", err)
	}

	_, err = svc.Submit(&dto.SubmitReportRequest{Type: "Gossip", Content: "x"})
	if !errors.Is(err, ErrInvalidReportType) {
		t.Fatalf("expected ErrInvalidReportType, got %v", err)
	}
}

func TestReportEnums(t *testing.T) {
	for _, typ := range models.ReportTypes {
		if !models.ValidReportType(typ) {
			t.Errorf("declared type %q rejected", typ)
		}
	}
	if models.ValidReportStatus("Escalated") {
		t.Error("undeclared status accepted")
	}
	if models.ValidPriority("Urgent") {
		t.Error("undeclared priority accepted")
	}
}
