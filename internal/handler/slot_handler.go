package handler

import (
	"errors"
	"net/http"

	"github.com/camphq/scheduling-service/internal/dto"
	"github.com/camphq/scheduling-service/internal/models"
	"github.com/camphq/scheduling-service/internal/service"
	"github.com/labstack/echo/v4"
)

type SlotHandler struct {
	svc service.SlotService
}

func NewSlotHandler(svc service.SlotService) *SlotHandler {
	return &SlotHandler{svc: svc}
}

func (h *SlotHandler) RegisterRoutes(e *echo.Echo) {
	camps := e.Group("/api/v1/camps")
	camps.POST("/:id/slots", h.CreateSlot)
	camps.GET("/:id/slots", h.ListSlots)

	slots := e.Group("/api/v1/slots")
	slots.GET("/:id", h.GetSlot)
	slots.PATCH("/:id", h.UpdateSlot)
	slots.DELETE("/:id", h.DeleteSlot)
}

func (h *SlotHandler) CreateSlot(c echo.Context) error {
	campID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req dto.CreateSlotRequest
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

	input := service.CreateSlotInput{
		CampID:       campID,
		CreatedBy:    req.CreatorID,
		Date:         date,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		MaxBookings:  req.MaxBookings,
		BufferBefore: req.BufferBefore,
		BufferAfter:  req.BufferAfter,
		Notes:        req.Notes,
	}
	if req.IsRecurring {
		if req.RecurrenceEndDate == "" {
			return echo.NewHTTPError(http.StatusBadRequest, "recurrence_end_date is required for recurring slots")
		}
		endDate, err := parseDate(req.RecurrenceEndDate)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid recurrence_end_date, expected YYYY-MM-DD")
		}
		input.Recurring = true
		input.RecurrenceRule = models.RepeatInterval(req.RecurrenceRule)
		input.RecurrenceEndDate = &endDate
	}

	slot, err := h.svc.CreateSlot(c.Request().Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCampNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrInvalidWindow), errors.Is(err, service.ErrInvalidCapacity):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusCreated, dto.ToSlotResponse(slot))
}

func (h *SlotHandler) ListSlots(c echo.Context) error {
	campID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	slots, err := h.svc.ListSlots(c.Request().Context(), campID)
	if err != nil {
		if errors.Is(err, service.ErrCampNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.SlotResponse, len(slots))
	for i := range slots {
		resp[i] = dto.ToSlotResponse(&slots[i])
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *SlotHandler) GetSlot(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	slot, err := h.svc.GetSlot(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrSlotNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, dto.ToSlotResponse(slot))
}

func (h *SlotHandler) UpdateSlot(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateSlotRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	slot, err := h.svc.UpdateSlot(c.Request().Context(), id, service.UpdateSlotInput{
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		MaxBookings:  req.MaxBookings,
		BufferBefore: req.BufferBefore,
		BufferAfter:  req.BufferAfter,
		Notes:        req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSlotNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrInvalidWindow),
			errors.Is(err, service.ErrInvalidCapacity),
			errors.Is(err, service.ErrCapacityBelowBookings):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}
	return c.JSON(http.StatusOK, dto.ToSlotResponse(slot))
}

func (h *SlotHandler) DeleteSlot(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.svc.DeleteSlot(c.Request().Context(), id); err != nil {
		switch {
		case errors.Is(err, service.ErrSlotNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrSlotHasBookings):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}
	return c.NoContent(http.StatusNoContent)
}
