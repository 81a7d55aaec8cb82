package statsrv

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/thinhdeeptry/report-service/pkg/log"
)

func TestFetchPaymentStats(t *testing.T) {
	t.Run("parses upstream payload", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/payment/stats" {
				t.Errorf("path mismatch: got %s, want /payment/stats", r.URL.Path)
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"totalRevenue": 250000,
				"revenueLast30Days": 30000,
				"averageTransactionValue": 420.5,
				"failedTransactionsRate": 0.03,
				"paymentMethodsBreakdown": {"momo": 70, "card": 30},
				"monthlyRevenue": [{"month": "2025-05", "total": 20000}]
			}`))
		}))
		defer srv.Close()

		client := New(log.NewNop(), StatsConfig{PaymentBaseURL: srv.URL})

		stats, err := client.FetchPaymentStats(context.Background())
		if err != nil {
			t.Fatalf("FetchPaymentStats failed: %v", err)
		}
		if stats.TotalRevenue != 250000 {
			t.Errorf("totalRevenue mismatch: got %v, want 250000", stats.TotalRevenue)
		}
		if len(stats.MonthlyRevenue) != 1 || stats.MonthlyRevenue[0].Month != "2025-05" {
			t.Errorf("monthlyRevenue mismatch: got %+v", stats.MonthlyRevenue)
		}
	})

	t.Run("non-200 is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		client := New(log.NewNop(), StatsConfig{PaymentBaseURL: srv.URL})

		if _, err := client.FetchPaymentStats(context.Background()); err == nil {
			t.Fatal("expected error for 404 response")
		}
	})

	t.Run("malformed payload is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`not json`))
		}))
		defer srv.Close()

		client := New(log.NewNop(), StatsConfig{PaymentBaseURL: srv.URL})

		if _, err := client.FetchPaymentStats(context.Background()); err == nil {
			t.Fatal("expected error for malformed payload")
		}
	})
}

func TestFetchEnrollmentStats(t *testing.T) {
	t.Run("absent monthly series stays nil", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/enrollment/stats" {
				t.Errorf("path mismatch: got %s, want /enrollment/stats", r.URL.Path)
			}
			w.Write([]byte(`{"totalEnrollments": 812, "dropoutRate": 0.12}`))
		}))
		defer srv.Close()

		client := New(log.NewNop(), StatsConfig{EnrollmentBaseURL: srv.URL})

		stats, err := client.FetchEnrollmentStats(context.Background())
		if err != nil {
			t.Fatalf("FetchEnrollmentStats failed: %v", err)
		}
		if stats.TotalEnrollments != 812 {
			t.Errorf("totalEnrollments mismatch: got %v, want 812", stats.TotalEnrollments)
		}
		if stats.MonthlyEnrollments != nil {
			t.Errorf("monthlyEnrollments should be nil when absent: got %+v", stats.MonthlyEnrollments)
		}
	})
}

func TestFetchCourseStats(t *testing.T) {
	t.Run("uses configured path suffix", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/courses/get/stats" {
				t.Errorf("path mismatch: got %s, want /courses/get/stats", r.URL.Path)
			}
			w.Write([]byte(`{"totalCourses": 31, "activeCourses": 28}`))
		}))
		defer srv.Close()

		client := New(log.NewNop(), StatsConfig{
			CourseBaseURL:   srv.URL,
			CourseStatsPath: "/courses/get/stats",
		})

		stats, err := client.FetchCourseStats(context.Background())
		if err != nil {
			t.Fatalf("FetchCourseStats failed: %v", err)
		}
		if stats.TotalCourses != 31 || stats.ActiveCourses != 28 {
			t.Errorf("course stats mismatch: got %+v", stats)
		}
	})
}
