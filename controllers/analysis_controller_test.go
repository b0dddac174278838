package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"reflect"
	"testing"

	"github.com/Guillo-bit/NutrIA/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type stubAnalyzer struct {
	result   *models.AnalysisResult
	err      error
	gotImage []byte
	gotMime  string
}

func (s *stubAnalyzer) AnalyzeImage(ctx context.Context, image []byte, mimeType string) (*models.AnalysisResult, error) {
	s.gotImage = image
	s.gotMime = mimeType
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func newTestRouter(svc FoodAnalyzer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	ctl := NewAnalysisController(svc, zap.NewNop())
	r.POST("/analyze-food", ctl.AnalyzeFood)
	return r
}

// multipartImage builds a multipart body with a single "file" part. An empty
// declaredType leaves the part's Content-Type header off entirely.
func multipartImage(t *testing.T, declaredType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="meal.jpg"`)
	if declaredType != "" {
		h.Set("Content-Type", declaredType)
	}
	part, err := w.CreatePart(h)
	if err != nil {
		t.Fatalf("CreatePart: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, w.FormDataContentType()
}

func decodeDetail(t *testing.T, body []byte) string {
	t.Helper()
	var resp struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("decode error body %q: %v", body, err)
	}
	return resp.Detail
}

func TestAnalyzeFoodMissingFile(t *testing.T) {
	r := newTestRouter(&stubAnalyzer{})

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	w.WriteField("note", "no file here")
	w.Close()

	req := httptest.NewRequest(http.MethodPost, "/analyze-food", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if got := decodeDetail(t, rec.Body.Bytes()); got != "No file uploaded" {
		t.Errorf("detail = %q, want %q", got, "No file uploaded")
	}
}

func TestAnalyzeFoodRejectsNonImage(t *testing.T) {
	testCases := []struct {
		name         string
		declaredType string
	}{
		{name: "text file", declaredType: "text/plain"},
		{name: "json file", declaredType: "application/json"},
		{name: "no declared type", declaredType: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRouter(&stubAnalyzer{})
			body, contentType := multipartImage(t, tc.declaredType, []byte("hello"))

			req := httptest.NewRequest(http.MethodPost, "/analyze-food", body)
			req.Header.Set("Content-Type", contentType)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			if got := decodeDetail(t, rec.Body.Bytes()); got != "File must be an image" {
				t.Errorf("detail = %q, want %q", got, "File must be an image")
			}
		})
	}
}

func TestAnalyzeFoodRejectsEmptyFile(t *testing.T) {
	r := newTestRouter(&stubAnalyzer{})
	body, contentType := multipartImage(t, "image/jpeg", nil)

	req := httptest.NewRequest(http.MethodPost, "/analyze-food", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if got := decodeDetail(t, rec.Body.Bytes()); got != "Empty image file" {
		t.Errorf("detail = %q, want %q", got, "Empty image file")
	}
}

func TestAnalyzeFoodPipelineError(t *testing.T) {
	svc := &stubAnalyzer{err: errors.New("gemini API error 429: quota exceeded")}
	r := newTestRouter(svc)
	body, contentType := multipartImage(t, "image/jpeg", []byte{0xff, 0xd8, 0xff})

	req := httptest.NewRequest(http.MethodPost, "/analyze-food", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	want := "Food detection failed: gemini API error 429: quota exceeded"
	if got := decodeDetail(t, rec.Body.Bytes()); got != want {
		t.Errorf("detail = %q, want %q", got, want)
	}
}

func TestAnalyzeFoodSuccess(t *testing.T) {
	wantResult := &models.AnalysisResult{
		Success: true,
		FoodsDetected: []models.FoodItem{
			{Name: "apple", Nutrition: models.NutritionFacts{Calories: 95, Sugar: 19}},
			{Name: "rice", Nutrition: models.NutritionFacts{Calories: 130, Carbs: 28}},
		},
		TotalNutrition: models.NutritionFacts{Calories: 225, Carbs: 28, Sugar: 19},
	}
	svc := &stubAnalyzer{result: wantResult}
	r := newTestRouter(svc)

	image := []byte{0x89, 0x50, 0x4e, 0x47}
	body, contentType := multipartImage(t, "image/png", image)

	req := httptest.NewRequest(http.MethodPost, "/analyze-food", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}

	var got models.AnalysisResult
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !reflect.DeepEqual(&got, wantResult) {
		t.Errorf("response = %+v, want %+v", got, wantResult)
	}

	if !reflect.DeepEqual(svc.gotImage, image) {
		t.Errorf("service received image %v, want %v", svc.gotImage, image)
	}
	if svc.gotMime != "image/png" {
		t.Errorf("service received mime %q, want image/png", svc.gotMime)
	}
}
