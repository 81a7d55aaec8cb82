package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/thinhdeeptry/report-service/internal/middleware"
	"github.com/thinhdeeptry/report-service/internal/report"
	"github.com/thinhdeeptry/report-service/pkg/log"
)

// stubUseCase serves canned responses for the handler tests.
type stubUseCase struct {
	report report.ReportOutput
	err    error
}

func (s *stubUseCase) Create(context.Context, report.CreateInput) (report.ReportOutput, error) {
	return s.report, s.err
}

func (s *stubUseCase) List(context.Context) ([]report.ReportOutput, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []report.ReportOutput{s.report}, nil
}

func (s *stubUseCase) GetByID(context.Context, report.GetInput) (report.ReportOutput, error) {
	return s.report, s.err
}

func (s *stubUseCase) Update(context.Context, report.UpdateInput) (report.ReportOutput, error) {
	return s.report, s.err
}

func (s *stubUseCase) Delete(context.Context, report.DeleteInput) error {
	return s.err
}

func (s *stubUseCase) AttachAnalysis(context.Context, report.AttachAnalysisInput) (report.ReportOutput, error) {
	return s.report, s.err
}

func (s *stubUseCase) Generate(context.Context, report.GenerateInput) (report.ReportOutput, error) {
	return s.report, s.err
}

func newTestRouter(uc report.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	l := log.NewNop()
	h := New(l, uc, nil)
	h.RegisterRoutes(r.Group("/reports"), middleware.New(l))
	return r
}

func sampleOutput() report.ReportOutput {
	return report.ReportOutput{
		ID:              "7bb4a6b8-9fbd-4f3a-b2fc-2bbd19f0a3f1",
		Title:           "Báo cáo tự động - 15/06/2025",
		Date:            time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		Data:            json.RawMessage(`{"schemaVersion":1,"courses":{"total":12,"active":10}}`),
		IsAutoGenerated: true,
		GeneratedBy:     "system",
		Status:          report.StatusCompleted,
	}
}

func decodeData(t *testing.T, body *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var envelope struct {
		ErrorCode int                    `json:"error_code"`
		Message   string                 `json:"message"`
		Data      map[string]interface{} `json:"data"`
	}
	if err := json.Unmarshal(body.Bytes(), &envelope); err != nil {
		t.Fatalf("response is not the standard envelope: %v", err)
	}
	return envelope.Data
}

func TestGenerateReport(t *testing.T) {
	t.Run("empty body generates as system", func(t *testing.T) {
		router := newTestRouter(&stubUseCase{report: sampleOutput()})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/reports/generate", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("status mismatch: got %d, want 201", w.Code)
		}

		data := decodeData(t, w.Body)
		if data["generatedBy"] != "system" {
			t.Errorf("generatedBy mismatch: got %v", data["generatedBy"])
		}
		if data["isAutoGenerated"] != true {
			t.Errorf("isAutoGenerated mismatch: got %v", data["isAutoGenerated"])
		}

		reportData, ok := data["data"].(map[string]interface{})
		if !ok {
			t.Fatalf("data.data is not an object: %v", data["data"])
		}
		courses, ok := reportData["courses"].(map[string]interface{})
		if !ok {
			t.Fatalf("data.data.courses is not an object: %v", reportData["courses"])
		}
		if courses["total"] != float64(12) {
			t.Errorf("courses.total mismatch: got %v, want 12", courses["total"])
		}
	})

	t.Run("upstream failure maps to 500", func(t *testing.T) {
		router := newTestRouter(&stubUseCase{err: report.ErrUpstreamFailed})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/reports/generate", bytes.NewBufferString(`{"userId":"u1"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Errorf("status mismatch: got %d, want 500", w.Code)
		}
	})
}

func TestCreateReport(t *testing.T) {
	t.Run("valid body creates", func(t *testing.T) {
		router := newTestRouter(&stubUseCase{report: sampleOutput()})

		body := `{"title":"June overview","date":"2025-06-15T00:00:00Z","data":{"note":"manual"}}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/reports", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("status mismatch: got %d, want 201", w.Code)
		}
	})

	t.Run("missing required fields is 400", func(t *testing.T) {
		router := newTestRouter(&stubUseCase{report: sampleOutput()})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/reports", bytes.NewBufferString(`{"title":"no date"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("status mismatch: got %d, want 400", w.Code)
		}
	})
}

func TestGetReport(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		router := newTestRouter(&stubUseCase{report: sampleOutput()})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/reports/7bb4a6b8-9fbd-4f3a-b2fc-2bbd19f0a3f1", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status mismatch: got %d, want 200", w.Code)
		}
		data := decodeData(t, w.Body)
		if data["id"] != "7bb4a6b8-9fbd-4f3a-b2fc-2bbd19f0a3f1" {
			t.Errorf("id mismatch: got %v", data["id"])
		}
	})

	t.Run("not found", func(t *testing.T) {
		router := newTestRouter(&stubUseCase{err: report.ErrReportNotFound})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/reports/7bb4a6b8-9fbd-4f3a-b2fc-2bbd19f0a3f1", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("status mismatch: got %d, want 404", w.Code)
		}
	})
}

func TestDeleteReport(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		router := newTestRouter(&stubUseCase{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/reports/7bb4a6b8-9fbd-4f3a-b2fc-2bbd19f0a3f1", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Errorf("status mismatch: got %d, want 204", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		router := newTestRouter(&stubUseCase{err: report.ErrReportNotFound})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/reports/7bb4a6b8-9fbd-4f3a-b2fc-2bbd19f0a3f1", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("status mismatch: got %d, want 404", w.Code)
		}
	})
}

func TestAttachAnalysis(t *testing.T) {
	t.Run("attaches payload", func(t *testing.T) {
		router := newTestRouter(&stubUseCase{report: sampleOutput()})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost,
			"/reports/7bb4a6b8-9fbd-4f3a-b2fc-2bbd19f0a3f1/analysis",
			bytes.NewBufferString(`{"insight":"growth"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("status mismatch: got %d, want 200", w.Code)
		}
	})

	t.Run("rejects invalid JSON", func(t *testing.T) {
		router := newTestRouter(&stubUseCase{report: sampleOutput()})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost,
			"/reports/7bb4a6b8-9fbd-4f3a-b2fc-2bbd19f0a3f1/analysis",
			bytes.NewBufferString(`{broken`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("status mismatch: got %d, want 400", w.Code)
		}
	})
}
