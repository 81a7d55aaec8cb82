package statsrv

import "time"

const (
	// DefaultTimeout is the per-request timeout for upstream stats calls.
	DefaultTimeout = 5 * time.Second
	// DefaultMaxRedirects bounds redirect following for upstream stats calls.
	DefaultMaxRedirects = 5
)

// Fallback hosts used when no base URL is configured.
const (
	DefaultPaymentBaseURL    = "https://payment.eduforge.io.vn"
	DefaultEnrollmentBaseURL = "https://enrollment.eduforge.io.vn"
	DefaultCourseBaseURL     = "https://courses.eduforge.io.vn"
)

// Default stats path suffixes per upstream.
const (
	DefaultPaymentStatsPath    = "/payment/stats"
	DefaultEnrollmentStatsPath = "/enrollment/stats"
	DefaultCourseStatsPath     = "/courses/stats"
)
