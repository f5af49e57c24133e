package handler

import (
	"errors"
	"net/http"

	"github.com/camphq/scheduling-service/internal/dto"
	"github.com/camphq/scheduling-service/internal/models"
	"github.com/camphq/scheduling-service/internal/service"
	"github.com/labstack/echo/v4"
)

type ScheduleHandler struct {
	svc service.ScheduleService
}

func NewScheduleHandler(svc service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{svc: svc}
}

func (h *ScheduleHandler) RegisterRoutes(e *echo.Echo) {
	camps := e.Group("/api/v1/camps")
	camps.POST("/:id/schedule", h.CreateSchedule)
	camps.GET("/:id/schedule", h.ListSchedules)
	camps.POST("/:id/exceptions", h.CreateException)
	camps.GET("/:id/exceptions", h.ListExceptions)
	camps.GET("/:id/effective-window", h.EffectiveWindow)
}

func (h *ScheduleHandler) CreateSchedule(c echo.Context) error {
	campID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req dto.CreateScheduleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	entry := &models.CampSchedule{
		CampID:    campID,
		DayOfWeek: req.DayOfWeek,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}
	if err := h.svc.CreateSchedule(c.Request().Context(), entry); err != nil {
		switch {
		case errors.Is(err, service.ErrCampNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrInvalidWindow):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}
	return c.JSON(http.StatusCreated, dto.ToScheduleResponse(entry))
}

func (h *ScheduleHandler) ListSchedules(c echo.Context) error {
	campID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	entries, err := h.svc.ListSchedules(c.Request().Context(), campID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.ScheduleResponse, len(entries))
	for i := range entries {
		resp[i] = dto.ToScheduleResponse(&entries[i])
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *ScheduleHandler) CreateException(c echo.Context) error {
	campID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req dto.CreateExceptionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
	}

	exc := &models.ScheduleException{
		CampID:        campID,
		ScheduleID:    req.ScheduleID,
		ExceptionDate: date,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		Status:        models.ExceptionStatus(req.Status),
		Reason:        req.Reason,
	}
	if err := h.svc.CreateException(c.Request().Context(), exc); err != nil {
		switch {
		case errors.Is(err, service.ErrCampNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrInvalidWindow):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}
	return c.JSON(http.StatusCreated, dto.ToExceptionResponse(exc))
}

func (h *ScheduleHandler) ListExceptions(c echo.Context) error {
	campID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	excs, err := h.svc.ListExceptions(c.Request().Context(), campID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.ExceptionResponse, len(excs))
	for i := range excs {
		resp[i] = dto.ToExceptionResponse(&excs[i])
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *ScheduleHandler) EffectiveWindow(c echo.Context) error {
	campID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	date, err := parseDate(c.QueryParam("date"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "date query parameter is required, expected YYYY-MM-DD")
	}

	window, err := h.svc.EffectiveWindow(c.Request().Context(), campID, date)
	if err != nil {
		if errors.Is(err, service.ErrNoSessionOnDate) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, dto.ToWindowResponse(window))
}
