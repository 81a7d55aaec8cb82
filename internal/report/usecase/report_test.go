package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/thinhdeeptry/report-service/internal/model"
	"github.com/thinhdeeptry/report-service/internal/report"
	"github.com/thinhdeeptry/report-service/internal/report/repository"
	"github.com/thinhdeeptry/report-service/pkg/log"
	"github.com/thinhdeeptry/report-service/pkg/statsrv"
)

// memRepo is an in-memory PostgresRepository used by the usecase tests.
type memRepo struct {
	reports map[string]*model.Report
}

func newMemRepo() *memRepo {
	return &memRepo{reports: make(map[string]*model.Report)}
}

func (m *memRepo) CreateReport(_ context.Context, opts repository.CreateReportOptions) (*model.Report, error) {
	now := time.Now()
	rpt := &model.Report{
		ID:              opts.ID,
		Title:           opts.Title,
		Date:            opts.Date,
		Data:            opts.Data,
		IsAutoGenerated: opts.IsAutoGenerated,
		GeneratedBy:     opts.GeneratedBy,
		Status:          opts.Status,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	m.reports[rpt.ID] = rpt
	return rpt, nil
}

func (m *memRepo) GetReportByID(_ context.Context, id string) (*model.Report, error) {
	rpt, ok := m.reports[id]
	if !ok {
		return nil, repository.ErrReportNotFound
	}
	return rpt, nil
}

func (m *memRepo) ListReports(_ context.Context, _ repository.ListReportsOptions) ([]*model.Report, error) {
	out := make([]*model.Report, 0, len(m.reports))
	for _, rpt := range m.reports {
		out = append(out, rpt)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (m *memRepo) UpdateReport(_ context.Context, opts repository.UpdateReportOptions) (*model.Report, error) {
	rpt, ok := m.reports[opts.ID]
	if !ok {
		return nil, repository.ErrReportNotFound
	}
	if opts.Title != nil {
		rpt.Title = *opts.Title
	}
	if opts.Date != nil {
		rpt.Date = *opts.Date
	}
	if opts.Data != nil {
		rpt.Data = opts.Data
	}
	if opts.Status != nil {
		rpt.Status = *opts.Status
	}
	rpt.UpdatedAt = time.Now()
	return rpt, nil
}

func (m *memRepo) UpdateAnalysis(_ context.Context, opts repository.UpdateAnalysisOptions) (*model.Report, error) {
	rpt, ok := m.reports[opts.ID]
	if !ok {
		return nil, repository.ErrReportNotFound
	}
	rpt.AIAnalysis = opts.Analysis
	rpt.UpdatedAt = time.Now()
	return rpt, nil
}

func (m *memRepo) DeleteReport(_ context.Context, id string) error {
	if _, ok := m.reports[id]; !ok {
		return repository.ErrReportNotFound
	}
	delete(m.reports, id)
	return nil
}

// stubStats returns canned payloads, or an error for a given upstream.
type stubStats struct {
	payment    *statsrv.PaymentStats
	enrollment *statsrv.EnrollmentStats
	course     *statsrv.CourseStats

	paymentErr    error
	enrollmentErr error
	courseErr     error
}

func (s *stubStats) FetchPaymentStats(context.Context) (*statsrv.PaymentStats, error) {
	return s.payment, s.paymentErr
}

func (s *stubStats) FetchEnrollmentStats(context.Context) (*statsrv.EnrollmentStats, error) {
	return s.enrollment, s.enrollmentErr
}

func (s *stubStats) FetchCourseStats(context.Context) (*statsrv.CourseStats, error) {
	return s.course, s.courseErr
}

func healthyStats() *stubStats {
	return &stubStats{
		payment: &statsrv.PaymentStats{
			TotalRevenue: 50000,
			MonthlyRevenue: []statsrv.MonthlyEntry{
				{Month: "2025-01", Total: 5000},
			},
		},
		enrollment: &statsrv.EnrollmentStats{
			TotalEnrollments: 300,
			MonthlyEnrollments: []statsrv.MonthlyEntry{
				{Month: "2025-01", Total: 80},
			},
		},
		course: &statsrv.CourseStats{TotalCourses: 12, ActiveCourses: 10},
	}
}

// capturingProducer records published event payloads.
type capturingProducer struct {
	keys   [][]byte
	values [][]byte
}

func (p *capturingProducer) Publish(key, value []byte) error {
	p.keys = append(p.keys, key)
	p.values = append(p.values, value)
	return nil
}

func (p *capturingProducer) Close() error       { return nil }
func (p *capturingProducer) HealthCheck() error { return nil }

func newTestUseCase(repo repository.PostgresRepository, stats statsrv.IStats) report.UseCase {
	return New(repo, nil, stats, nil, log.NewNop(), Config{
		Rand: rand.New(rand.NewSource(1)),
	})
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults status and data", func(t *testing.T) {
		repo := newMemRepo()
		uc := newTestUseCase(repo, healthyStats())

		o, err := uc.Create(ctx, report.CreateInput{Title: "Quarterly overview"})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if o.Status != report.StatusPending {
			t.Errorf("status mismatch: got %s, want %s", o.Status, report.StatusPending)
		}
		if string(o.Data) != `{}` {
			t.Errorf("data mismatch: got %s, want {}", o.Data)
		}
		if o.Date.IsZero() {
			t.Error("date should default to now")
		}
		if _, err := uuid.Parse(o.ID); err != nil {
			t.Errorf("id is not a UUID: %s", o.ID)
		}
	})

	t.Run("requires title", func(t *testing.T) {
		uc := newTestUseCase(newMemRepo(), healthyStats())

		_, err := uc.Create(ctx, report.CreateInput{})
		if !errors.Is(err, report.ErrTitleRequired) {
			t.Errorf("error mismatch: got %v, want %v", err, report.ErrTitleRequired)
		}
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		uc := newTestUseCase(newMemRepo(), healthyStats())

		_, err := uc.Create(ctx, report.CreateInput{Title: "x", Status: "DONE"})
		if !errors.Is(err, report.ErrInvalidStatus) {
			t.Errorf("error mismatch: got %v, want %v", err, report.ErrInvalidStatus)
		}
	})
}

func TestGetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects malformed id", func(t *testing.T) {
		uc := newTestUseCase(newMemRepo(), healthyStats())

		_, err := uc.GetByID(ctx, report.GetInput{ID: "not-a-uuid"})
		if !errors.Is(err, report.ErrInvalidID) {
			t.Errorf("error mismatch: got %v, want %v", err, report.ErrInvalidID)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc := newTestUseCase(newMemRepo(), healthyStats())

		_, err := uc.GetByID(ctx, report.GetInput{ID: uuid.New().String()})
		if !errors.Is(err, report.ErrReportNotFound) {
			t.Errorf("error mismatch: got %v, want %v", err, report.ErrReportNotFound)
		}
	})

	t.Run("returns stored report", func(t *testing.T) {
		repo := newMemRepo()
		uc := newTestUseCase(repo, healthyStats())

		created, err := uc.Create(ctx, report.CreateInput{Title: "stored"})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		got, err := uc.GetByID(ctx, report.GetInput{ID: created.ID})
		if err != nil {
			t.Fatalf("GetByID failed: %v", err)
		}
		if got.Title != "stored" {
			t.Errorf("title mismatch: got %s, want stored", got.Title)
		}
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("applies partial update", func(t *testing.T) {
		repo := newMemRepo()
		uc := newTestUseCase(repo, healthyStats())

		created, _ := uc.Create(ctx, report.CreateInput{Title: "before"})

		title := "after"
		status := report.StatusCompleted
		got, err := uc.Update(ctx, report.UpdateInput{ID: created.ID, Title: &title, Status: &status})
		if err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if got.Title != "after" {
			t.Errorf("title mismatch: got %s, want after", got.Title)
		}
		if got.Status != report.StatusCompleted {
			t.Errorf("status mismatch: got %s, want %s", got.Status, report.StatusCompleted)
		}
		// Untouched fields survive
		if got.Date.IsZero() {
			t.Error("date should be preserved")
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc := newTestUseCase(newMemRepo(), healthyStats())

		title := "x"
		_, err := uc.Update(ctx, report.UpdateInput{ID: uuid.New().String(), Title: &title})
		if !errors.Is(err, report.ErrReportNotFound) {
			t.Errorf("error mismatch: got %v, want %v", err, report.ErrReportNotFound)
		}
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("removes report", func(t *testing.T) {
		repo := newMemRepo()
		uc := newTestUseCase(repo, healthyStats())

		created, _ := uc.Create(ctx, report.CreateInput{Title: "doomed"})

		if err := uc.Delete(ctx, report.DeleteInput{ID: created.ID}); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		_, err := uc.GetByID(ctx, report.GetInput{ID: created.ID})
		if !errors.Is(err, report.ErrReportNotFound) {
			t.Errorf("report should be gone: got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc := newTestUseCase(newMemRepo(), healthyStats())

		err := uc.Delete(ctx, report.DeleteInput{ID: uuid.New().String()})
		if !errors.Is(err, report.ErrReportNotFound) {
			t.Errorf("error mismatch: got %v, want %v", err, report.ErrReportNotFound)
		}
	})
}

func TestAttachAnalysis(t *testing.T) {
	ctx := context.Background()

	t.Run("sets analysis", func(t *testing.T) {
		repo := newMemRepo()
		uc := newTestUseCase(repo, healthyStats())

		created, _ := uc.Create(ctx, report.CreateInput{Title: "analyzed"})

		got, err := uc.AttachAnalysis(ctx, report.AttachAnalysisInput{
			ID:       created.ID,
			Analysis: json.RawMessage(`{"summary":"revenue up"}`),
		})
		if err != nil {
			t.Fatalf("AttachAnalysis failed: %v", err)
		}
		if string(got.AIAnalysis) != `{"summary":"revenue up"}` {
			t.Errorf("analysis mismatch: got %s", got.AIAnalysis)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc := newTestUseCase(newMemRepo(), healthyStats())

		_, err := uc.AttachAnalysis(ctx, report.AttachAnalysisInput{ID: uuid.New().String()})
		if !errors.Is(err, report.ErrReportNotFound) {
			t.Errorf("error mismatch: got %v, want %v", err, report.ErrReportNotFound)
		}
	})
}

func TestList(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo()
	uc := newTestUseCase(repo, healthyStats())

	older := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	if _, err := uc.Create(ctx, report.CreateInput{Title: "old", Date: older}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := uc.Create(ctx, report.CreateInput{Title: "new", Date: newer}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	os, err := uc.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(os) != 2 {
		t.Fatalf("length mismatch: got %d, want 2", len(os))
	}
	if os[0].Title != "new" || os[1].Title != "old" {
		t.Errorf("order mismatch: got %s, %s", os[0].Title, os[1].Title)
	}
}

func TestGenerate(t *testing.T) {
	ctx := context.Background()

	t.Run("persists completed auto-generated report", func(t *testing.T) {
		repo := newMemRepo()
		uc := newTestUseCase(repo, healthyStats())

		o, err := uc.Generate(ctx, report.GenerateInput{})
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}

		if !o.IsAutoGenerated {
			t.Error("report should be auto-generated")
		}
		if o.GeneratedBy != report.GeneratedBySystem {
			t.Errorf("generatedBy mismatch: got %s, want %s", o.GeneratedBy, report.GeneratedBySystem)
		}
		if o.Status != report.StatusCompleted {
			t.Errorf("status mismatch: got %s, want %s", o.Status, report.StatusCompleted)
		}

		data, err := model.DecodeData(o.Data)
		if err != nil {
			t.Fatalf("DecodeData failed: %v", err)
		}
		if data.Revenue.Total != 50000 {
			t.Errorf("revenue.total mismatch: got %v, want 50000", data.Revenue.Total)
		}
		if data.Courses.Total != 12 {
			t.Errorf("courses.total mismatch: got %v, want 12", data.Courses.Total)
		}
		if data.SchemaVersion != model.ReportDataSchemaVersion {
			t.Errorf("schemaVersion mismatch: got %d", data.SchemaVersion)
		}
	})

	t.Run("keeps caller user id", func(t *testing.T) {
		uc := newTestUseCase(newMemRepo(), healthyStats())

		o, err := uc.Generate(ctx, report.GenerateInput{UserID: "user-17"})
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if o.GeneratedBy != "user-17" {
			t.Errorf("generatedBy mismatch: got %s, want user-17", o.GeneratedBy)
		}
	})

	t.Run("fails atomically when one upstream fails", func(t *testing.T) {
		repo := newMemRepo()
		stats := healthyStats()
		stats.enrollmentErr = errors.New("boom")
		uc := newTestUseCase(repo, stats)

		_, err := uc.Generate(ctx, report.GenerateInput{})
		if !errors.Is(err, report.ErrUpstreamFailed) {
			t.Fatalf("error mismatch: got %v, want %v", err, report.ErrUpstreamFailed)
		}
		if len(repo.reports) != 0 {
			t.Errorf("no report should be persisted, found %d", len(repo.reports))
		}
	})

	t.Run("publishes generation event", func(t *testing.T) {
		repo := newMemRepo()
		producer := &capturingProducer{}
		uc := New(repo, nil, healthyStats(), producer, log.NewNop(), Config{
			Rand: rand.New(rand.NewSource(1)),
		})

		o, err := uc.Generate(ctx, report.GenerateInput{})
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if len(producer.values) != 1 {
			t.Fatalf("published event count mismatch: got %d, want 1", len(producer.values))
		}

		var evt map[string]interface{}
		if err := json.Unmarshal(producer.values[0], &evt); err != nil {
			t.Fatalf("event payload is not JSON: %v", err)
		}
		if evt["event"] != "report.generated" {
			t.Errorf("event name mismatch: got %v", evt["event"])
		}
		if evt["reportId"] != o.ID {
			t.Errorf("event reportId mismatch: got %v, want %s", evt["reportId"], o.ID)
		}
	})
}
