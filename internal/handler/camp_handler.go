package handler

import (
	"errors"
	"net/http"

	"github.com/camphq/scheduling-service/internal/dto"
	"github.com/camphq/scheduling-service/internal/models"
	"github.com/camphq/scheduling-service/internal/repository"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CampHandler struct {
	campRepo repository.CampRepository
}

func NewCampHandler(campRepo repository.CampRepository) *CampHandler {
	return &CampHandler{campRepo: campRepo}
}

func (h *CampHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/v1/camps", h.CreateCamp)
	e.GET("/api/v1/camps/:id", h.GetCamp)
}

func (h *CampHandler) CreateCamp(c echo.Context) error {
	var req dto.CreateCampRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	camp := &models.Camp{
		OrganizationID: req.OrganizationID,
		Name:           req.Name,
	}
	if err := h.campRepo.Create(c.Request().Context(), camp); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, dto.ToCampResponse(camp))
}

func (h *CampHandler) GetCamp(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	camp, err := h.campRepo.FindByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "camp not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, dto.ToCampResponse(camp))
}
