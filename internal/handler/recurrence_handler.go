package handler

import (
	"errors"
	"net/http"

	"github.com/camphq/scheduling-service/internal/dto"
	"github.com/camphq/scheduling-service/internal/models"
	"github.com/camphq/scheduling-service/internal/service"
	"github.com/labstack/echo/v4"
	"gorm.io/datatypes"
)

type RecurrenceHandler struct {
	svc service.RecurrenceService
}

func NewRecurrenceHandler(svc service.RecurrenceService) *RecurrenceHandler {
	return &RecurrenceHandler{svc: svc}
}

func (h *RecurrenceHandler) RegisterRoutes(e *echo.Echo) {
	camps := e.Group("/api/v1/camps")
	camps.POST("/:id/patterns", h.CreatePattern)
	camps.GET("/:id/sessions", h.ListSessions)

	e.POST("/api/v1/patterns/:id/expand", h.ExpandPattern)
}

func (h *RecurrenceHandler) CreatePattern(c echo.Context) error {
	campID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req dto.CreatePatternRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid start_date, expected YYYY-MM-DD")
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid end_date, expected YYYY-MM-DD")
	}

	pattern := &models.RecurrencePattern{
		CampID:         campID,
		Label:          req.Label,
		PatternType:    models.PatternType(req.PatternType),
		RepeatInterval: models.RepeatInterval(req.RepeatInterval),
		StartDate:      startDate,
		EndDate:        endDate,
		DaysOfWeek:     datatypes.JSONSlice[int](req.DaysOfWeek),
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
	}
	if err := h.svc.CreatePattern(c.Request().Context(), pattern); err != nil {
		switch {
		case errors.Is(err, service.ErrCampNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrInvalidPattern), errors.Is(err, service.ErrInvalidWindow):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}
	return c.JSON(http.StatusCreated, dto.ToPatternResponse(pattern))
}

func (h *RecurrenceHandler) ExpandPattern(c echo.Context) error {
	patternID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	sessions, err := h.svc.ExpandPattern(c.Request().Context(), patternID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPatternNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrPatternAlreadyExpanded):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	resp := make([]dto.SessionResponse, len(sessions))
	for i := range sessions {
		resp[i] = dto.ToSessionResponse(&sessions[i])
	}
	return c.JSON(http.StatusCreated, resp)
}

func (h *RecurrenceHandler) ListSessions(c echo.Context) error {
	campID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	sessions, err := h.svc.ListSessions(c.Request().Context(), campID)
	if err != nil {
		if errors.Is(err, service.ErrCampNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.SessionResponse, len(sessions))
	for i := range sessions {
		resp[i] = dto.ToSessionResponse(&sessions[i])
	}
	return c.JSON(http.StatusOK, resp)
}
