package main

import (
	"log"
	"net/http"

	"github.com/camphq/scheduling-service/config"
	"github.com/camphq/scheduling-service/internal/handler"
	custommw "github.com/camphq/scheduling-service/internal/middleware"
	"github.com/camphq/scheduling-service/internal/repository"
	"github.com/camphq/scheduling-service/internal/service"
	"github.com/camphq/scheduling-service/pkg/database"
	"github.com/camphq/scheduling-service/pkg/rabbitmq"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())

	publisher, err := rabbitmq.NewPublisher(cfg.RabbitURL)
	if err != nil {
		log.Printf("[RabbitMQ] unavailable, notifications disabled: %v", err)
	} else {
		defer publisher.Close()
	}

	campRepo := repository.NewCampRepository(db)
	slotRepo := repository.NewSlotRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)
	recurrenceRepo := repository.NewRecurrenceRepository(db)

	reconciler := service.NewReconciler(slotRepo, bookingRepo)

	slotService := service.NewSlotService(slotRepo, campRepo, reconciler)
	bookingService := service.NewBookingService(bookingRepo, slotRepo, publisher)
	scheduleService := service.NewScheduleService(scheduleRepo, campRepo)
	recurrenceService := service.NewRecurrenceService(recurrenceRepo, campRepo)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = custommw.ErrorHandler
	e.Validator = handler.NewValidator()

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Printf("[HTTP] %s %s -> %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	handler.NewCampHandler(campRepo).RegisterRoutes(e)
	handler.NewSlotHandler(slotService).RegisterRoutes(e)
	handler.NewBookingHandler(bookingService).RegisterRoutes(e)
	handler.NewScheduleHandler(scheduleService).RegisterRoutes(e)
	handler.NewRecurrenceHandler(recurrenceService).RegisterRoutes(e)

	log.Printf("[Server] listening on :%s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server stopped: %v", err)
	}
}
