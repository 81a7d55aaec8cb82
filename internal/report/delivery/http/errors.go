package http

import (
	"errors"

	"github.com/thinhdeeptry/report-service/internal/report"
	pkgErrors "github.com/thinhdeeptry/report-service/pkg/errors"
)

var (
	errInvalidBody      = pkgErrors.NewHTTPError(400, "Invalid request body")
	errReportNotFound   = pkgErrors.NewHTTPError(404, "Report not found")
	errTitleRequired    = pkgErrors.NewHTTPError(400, "Title is required")
	errInvalidStatus    = pkgErrors.NewHTTPError(400, "Invalid report status")
	errInvalidID        = pkgErrors.NewHTTPError(400, "Invalid report ID")
	errUpstreamFailed   = pkgErrors.NewHTTPError(500, "Failed to fetch statistics from upstream services")
	errGenerationFailed = pkgErrors.NewHTTPError(500, "Report generation failed")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, report.ErrReportNotFound):
		return errReportNotFound
	case errors.Is(err, report.ErrTitleRequired):
		return errTitleRequired
	case errors.Is(err, report.ErrInvalidStatus):
		return errInvalidStatus
	case errors.Is(err, report.ErrInvalidID):
		return errInvalidID
	case errors.Is(err, report.ErrUpstreamFailed):
		return errUpstreamFailed
	case errors.Is(err, report.ErrGenerationFailed):
		return errGenerationFailed
	default:
		panic(err)
	}
}
