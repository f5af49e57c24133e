package handler

import (
	"errors"
	"net/http"

	"github.com/camphq/scheduling-service/internal/dto"
	"github.com/camphq/scheduling-service/internal/models"
	"github.com/camphq/scheduling-service/internal/service"
	"github.com/labstack/echo/v4"
)

type BookingHandler struct {
	svc service.BookingService
}

func NewBookingHandler(svc service.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

func (h *BookingHandler) RegisterRoutes(e *echo.Echo) {
	slots := e.Group("/api/v1/slots")
	slots.POST("/:id/bookings", h.BookSlot)
	slots.GET("/:id/bookings", h.ListBookings)

	e.GET("/api/v1/bookings/:id", h.GetBooking)
	e.DELETE("/api/v1/bookings/:id", h.CancelBooking)
}

func (h *BookingHandler) BookSlot(c echo.Context) error {
	slotID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req dto.BookSlotRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	booking, err := h.svc.BookSlot(c.Request().Context(), service.BookSlotInput{
		SlotID:         slotID,
		ChildID:        req.ChildID,
		ParentID:       req.ParentID,
		RegistrationID: req.RegistrationID,
		Notes:          req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSlotNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrSlotNotAvailable),
			errors.Is(err, service.ErrSlotFull),
			errors.Is(err, service.ErrDuplicateBooking):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) CancelBooking(c echo.Context) error {
	bookingID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req dto.CancelBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	booking, err := h.svc.CancelBooking(c.Request().Context(), bookingID, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBookingNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrAlreadyCancelled):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) GetBooking(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	booking, err := h.svc.GetBooking(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrBookingNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) ListBookings(c echo.Context) error {
	slotID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var status *models.BookingStatus
	if s := c.QueryParam("status"); s != "" {
		bs := models.BookingStatus(s)
		status = &bs
	}

	bookings, err := h.svc.ListBookings(c.Request().Context(), slotID, status)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.BookingResponse, len(bookings))
	for i := range bookings {
		resp[i] = dto.ToBookingResponse(&bookings[i])
	}
	return c.JSON(http.StatusOK, resp)
}
