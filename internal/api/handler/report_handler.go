package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vishwesh2904/timesheet-system/internal/core/ports"
)

// ReportHandler serves the server-computed dashboard aggregates.
type ReportHandler struct {
	service ports.ReportService
}

func NewReportHandler(service ports.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// My handles GET /api/reports/my (associate only).
//
// @Summary      Dashboard summary for the calling associate
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200   {object}  ports.AssociateReport
// @Failure      401   {object}  errorResponse
// @Router       /api/reports/my [get]
func (h *ReportHandler) My(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	report, err := h.service.MyReport(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, report)
}

// Overview handles GET /api/reports/overview (manager only).
//
// @Summary      Fleet-wide dashboard summary
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200   {object}  ports.ManagerReport
// @Failure      403   {object}  errorResponse
// @Router       /api/reports/overview [get]
func (h *ReportHandler) Overview(c echo.Context) error {
	report, err := h.service.Overview(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, report)
}
