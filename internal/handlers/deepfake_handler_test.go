package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/truthlens/truthlens-backend/internal/dto"
	"github.com/truthlens/truthlens-backend/internal/models"
)

type mockDeepfakeService struct {
	analyzeFunc  func(ctx context.Context, videoURL, fileName string) (*dto.AnalyzeVideoResponse, error)
	analyzeCalls int
}

func (m *mockDeepfakeService) Analyze(ctx context.Context, videoURL, fileName string) (*dto.AnalyzeVideoResponse, error) {
	m.analyzeCalls++
	return m.analyzeFunc(ctx, videoURL, fileName)
}

func (m *mockDeepfakeService) Recent() ([]models.Deepfake, error) {
	return []models.Deepfake{}, nil
}

func (m *mockDeepfakeService) Timeline() ([]dto.TimelineBucket, error) {
	return []dto.TimelineBucket{}, nil
}

func newDeepfakeApp(svc DeepfakeService, uploadDir string) *fiber.App {
	app := fiber.New()
	h := NewDeepfakeHandler(svc, uploadDir)
	app.Post("/api/deepfake/analyze", h.Analyze)
	return app
}

func multipartVideo(t *testing.T, fieldName, fileName, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="`+fieldName+`"; filename="`+fileName+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatalf("failed to create part: %v", err)
	}
	part.Write(data)
	writer.Close()
	return body, writer.FormDataContentType()
}

func TestAnalyze_MissingVideoField(t *testing.T) {
	svc := &mockDeepfakeService{}
	app := newDeepfakeApp(svc, t.TempDir())

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	writer.WriteField("note", "no file here")
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/deepfake/analyze", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if svc.analyzeCalls != 0 {
		t.Errorf("analysis must not run without a video, got %d calls", svc.analyzeCalls)
	}
}

func TestAnalyze_RejectsNonVideoContentType(t *testing.T) {
	svc := &mockDeepfakeService{}
	app := newDeepfakeApp(svc, t.TempDir())

	body, contentType := multipartVideo(t, "video", "notes.txt", "text/plain", []byte("plain text"))
	req := httptest.NewRequest(http.MethodPost, "/api/deepfake/analyze", body)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}

	var errBody dto.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&errBody); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if errBody.Message != "Only video uploads are accepted" {
		t.Errorf("unexpected message %q", errBody.Message)
	}
	if svc.analyzeCalls != 0 {
		t.Errorf("analysis must not run for a rejected upload, got %d calls", svc.analyzeCalls)
	}
}

func TestValidateVideo_SizeLimit(t *testing.T) {
	oversized := &multipart.FileHeader{Filename: "big.mp4", Size: maxVideoSize + 1}
	oversized.Header = textproto.MIMEHeader{}
	oversized.Header.Set("Content-Type", "video/mp4")
	if msg := validateVideo(oversized); msg != "Video size must be less than 100MB" {
		t.Errorf("expected size rejection, got %q", msg)
	}

	atLimit := &multipart.FileHeader{Filename: "ok.mp4", Size: maxVideoSize}
	atLimit.Header = textproto.MIMEHeader{}
	atLimit.Header.Set("Content-Type", "video/mp4")
	if msg := validateVideo(atLimit); msg != "" {
		t.Errorf("file at the limit must pass, got %q", msg)
	}
}

func TestAnalyze_Success(t *testing.T) {
	svc := &mockDeepfakeService{
		analyzeFunc: func(ctx context.Context, videoURL, fileName string) (*dto.AnalyzeVideoResponse, error) {
			return &dto.AnalyzeVideoResponse{
				IsDeepfake:     true,
				Confidence:     91,
				Indicators:     models.DeepfakeIndicators{FaceInconsistencies: 9, AudioMismatch: 14, TemporalAnomalies: 11},
				Recommendation: "This video shows signs of manipulation. Report to authorities.",
			}, nil
		},
	}
	app := newDeepfakeApp(svc, t.TempDir())

	body, contentType := multipartVideo(t, "video", "clip.mp4", "video/mp4", []byte("fake video bytes"))
	req := httptest.NewRequest(http.MethodPost, "/api/deepfake/analyze", body)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if svc.analyzeCalls != 1 {
		t.Fatalf("expected one analysis call, got %d", svc.analyzeCalls)
	}

	var result dto.AnalyzeVideoResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if !result.IsDeepfake || result.Confidence != 91 {
		t.Errorf("unexpected result %+v", result)
	}
}
