package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vishwesh2904/timesheet-system/internal/api/metrics"
	"github.com/vishwesh2904/timesheet-system/internal/core/domain"
	"github.com/vishwesh2904/timesheet-system/internal/core/ports"
)

// TimesheetHandler handles HTTP requests for the timesheet engine.
type TimesheetHandler struct {
	service ports.TimesheetService
}

func NewTimesheetHandler(service ports.TimesheetService) *TimesheetHandler {
	return &TimesheetHandler{service: service}
}

// Save handles POST /api/timesheets/save (associate only).
//
// @Summary      Save the week's timesheet as a draft
// @Tags         timesheets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      saveTimesheetRequest  true  "Week start and the full entry set"
// @Success      200   {object}  saveTimesheetResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/timesheets/save [post]
func (h *TimesheetHandler) Save(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req saveTimesheetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input, err := toSaveInput(req, userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	view, err := h.service.Save(c.Request().Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrTimesheetSubmitted) {
			metrics.ConflictsTotal.WithLabelValues("save").Inc()
		}
		return err
	}

	metrics.SavesTotal.Inc()
	return c.JSON(http.StatusOK, saveTimesheetResponse{
		Message:   "timesheet saved as draft",
		Timesheet: toTimesheetResponse(view),
	})
}

// Submit handles POST /api/timesheets/submit (associate only).
//
// @Summary      Submit the week's timesheet
// @Tags         timesheets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      submitTimesheetRequest  true  "Week to submit"
// @Success      200   {object}  saveTimesheetResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/timesheets/submit [post]
func (h *TimesheetHandler) Submit(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req submitTimesheetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	weekStart, err := parseDate(req.WeekStart)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	view, err := h.service.Submit(c.Request().Context(), ports.SubmitTimesheetInput{
		UserID:    userID,
		WeekStart: weekStart,
	})
	if err != nil {
		if errors.Is(err, domain.ErrTimesheetSubmitted) {
			metrics.ConflictsTotal.WithLabelValues("submit").Inc()
		}
		return err
	}

	metrics.SubmitsTotal.Inc()
	metrics.WeeklyHoursAtSubmit.Observe(view.WeeklyTotal)
	return c.JSON(http.StatusOK, saveTimesheetResponse{
		Message:   "timesheet submitted successfully",
		Timesheet: toTimesheetResponse(view),
	})
}

// My handles GET /api/timesheets/my (associate only).
//
// @Summary      List the caller's timesheets with derived totals
// @Tags         timesheets
// @Produce      json
// @Security     BearerAuth
// @Success      200   {object}  listTimesheetsResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/timesheets/my [get]
func (h *TimesheetHandler) My(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	views, err := h.service.ListMine(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	sheets := make([]timesheetResponse, 0, len(views))
	for i := range views {
		sheets = append(sheets, toTimesheetResponse(&views[i]))
	}
	return c.JSON(http.StatusOK, listTimesheetsResponse{Timesheets: sheets})
}

// All handles GET /api/timesheets/all (manager only).
//
// @Summary      List every timesheet with user and task references resolved
// @Tags         timesheets
// @Produce      json
// @Security     BearerAuth
// @Success      200   {object}  listAllTimesheetsResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/timesheets/all [get]
func (h *TimesheetHandler) All(c echo.Context) error {
	details, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}

	sheets := make([]timesheetDetailResponse, 0, len(details))
	for _, d := range details {
		sheets = append(sheets, toTimesheetDetailResponse(d))
	}
	return c.JSON(http.StatusOK, listAllTimesheetsResponse{Timesheets: sheets})
}
