package report

import "errors"

// Domain errors
var (
	// ErrReportNotFound - Report không tồn tại
	ErrReportNotFound = errors.New("report: report not found")

	// ErrTitleRequired - Title bắt buộc
	ErrTitleRequired = errors.New("report: title is required")

	// ErrInvalidStatus - Status không hợp lệ
	ErrInvalidStatus = errors.New("report: invalid status")

	// ErrInvalidID - ID không phải UUID
	ErrInvalidID = errors.New("report: invalid report id")

	// ErrUpstreamFailed - Một upstream stats service thất bại
	ErrUpstreamFailed = errors.New("report: upstream stats fetch failed")

	// ErrGenerationFailed - Shaping hoặc persist thất bại
	ErrGenerationFailed = errors.New("report: report generation failed")
)
