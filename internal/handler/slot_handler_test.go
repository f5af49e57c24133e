package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/camphq/scheduling-service/internal/dto"
	"github.com/camphq/scheduling-service/internal/models"
	"github.com/camphq/scheduling-service/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mock SlotService ---

type mockSlotService struct {
	createFn func(ctx context.Context, input service.CreateSlotInput) (*models.AvailabilitySlot, error)
	getFn    func(ctx context.Context, id uint) (*models.AvailabilitySlot, error)
	listFn   func(ctx context.Context, campID uint) ([]models.AvailabilitySlot, error)
	updateFn func(ctx context.Context, id uint, patch service.UpdateSlotInput) (*models.AvailabilitySlot, error)
	deleteFn func(ctx context.Context, id uint) error
}

func (m *mockSlotService) CreateSlot(ctx context.Context, input service.CreateSlotInput) (*models.AvailabilitySlot, error) {
	return m.createFn(ctx, input)
}
func (m *mockSlotService) GetSlot(ctx context.Context, id uint) (*models.AvailabilitySlot, error) {
	return m.getFn(ctx, id)
}
func (m *mockSlotService) ListSlots(ctx context.Context, campID uint) ([]models.AvailabilitySlot, error) {
	return m.listFn(ctx, campID)
}
func (m *mockSlotService) UpdateSlot(ctx context.Context, id uint, patch service.UpdateSlotInput) (*models.AvailabilitySlot, error) {
	return m.updateFn(ctx, id, patch)
}
func (m *mockSlotService) DeleteSlot(ctx context.Context, id uint) error {
	return m.deleteFn(ctx, id)
}

// --- Tests ---

func TestCreateSlot_Handler_Success(t *testing.T) {
	svc := &mockSlotService{
		createFn: func(ctx context.Context, input service.CreateSlotInput) (*models.AvailabilitySlot, error) {
			assert.Equal(t, uint(1), input.CampID)
			assert.Equal(t, "09:00", input.StartTime)
			return &models.AvailabilitySlot{
				ID:              5,
				CampID:          input.CampID,
				CreatedBy:       input.CreatedBy,
				SlotDate:        input.Date,
				StartTime:       input.StartTime,
				EndTime:         input.EndTime,
				DurationMinutes: 60,
				MaxBookings:     input.MaxBookings,
				Status:          models.SlotAvailable,
			}, nil
		},
	}

	body := `{"date":"2024-07-15","start_time":"09:00","end_time":"10:00","max_bookings":5,"creator_id":1}`
	c, rec := newTestContext(t, http.MethodPost, "/api/v1/camps/1/slots", body)
	c.SetParamNames("id")
	c.SetParamValues("1")

	require.NoError(t, NewSlotHandler(svc).CreateSlot(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp dto.SlotResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, uint(5), resp.ID)
	assert.Equal(t, "2024-07-15", resp.SlotDate)
	assert.Equal(t, 5, resp.SeatsAvailable)
	assert.Equal(t, models.SlotAvailable, resp.Status)
}

func TestCreateSlot_Handler_RecurringRequiresEndDate(t *testing.T) {
	svc := &mockSlotService{
		createFn: func(ctx context.Context, input service.CreateSlotInput) (*models.AvailabilitySlot, error) {
			t.Fatal("service must not be called")
			return nil, nil
		},
	}

	body := `{"date":"2024-07-15","start_time":"09:00","end_time":"10:00","max_bookings":5,"creator_id":1,"is_recurring":true,"recurrence_rule":"weekly"}`
	c, _ := newTestContext(t, http.MethodPost, "/api/v1/camps/1/slots", body)
	c.SetParamNames("id")
	c.SetParamValues("1")

	err := NewSlotHandler(svc).CreateSlot(c)
	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestCreateSlot_Handler_BadDate(t *testing.T) {
	svc := &mockSlotService{
		createFn: func(ctx context.Context, input service.CreateSlotInput) (*models.AvailabilitySlot, error) {
			t.Fatal("service must not be called")
			return nil, nil
		},
	}

	body := `{"date":"15/07/2024","start_time":"09:00","end_time":"10:00","max_bookings":5,"creator_id":1}`
	c, _ := newTestContext(t, http.MethodPost, "/api/v1/camps/1/slots", body)
	c.SetParamNames("id")
	c.SetParamValues("1")

	err := NewSlotHandler(svc).CreateSlot(c)
	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestUpdateSlot_Handler_ErrorMapping(t *testing.T) {
	cases := []struct {
		name     string
		svcErr   error
		wantCode int
	}{
		{"not found", service.ErrSlotNotFound, http.StatusNotFound},
		{"invalid window", service.ErrInvalidWindow, http.StatusBadRequest},
		{"invalid capacity", service.ErrInvalidCapacity, http.StatusBadRequest},
		{"capacity below bookings", service.ErrCapacityBelowBookings, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mockSlotService{
				updateFn: func(ctx context.Context, id uint, patch service.UpdateSlotInput) (*models.AvailabilitySlot, error) {
					return nil, tc.svcErr
				},
			}

			c, _ := newTestContext(t, http.MethodPatch, "/api/v1/slots/1", `{"max_bookings":2}`)
			c.SetParamNames("id")
			c.SetParamValues("1")

			err := NewSlotHandler(svc).UpdateSlot(c)
			require.Error(t, err)
			he, ok := err.(*echo.HTTPError)
			require.True(t, ok)
			assert.Equal(t, tc.wantCode, he.Code)
		})
	}
}

func TestDeleteSlot_Handler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &mockSlotService{
			deleteFn: func(ctx context.Context, id uint) error { return nil },
		}

		c, rec := newTestContext(t, http.MethodDelete, "/api/v1/slots/1", "")
		c.SetParamNames("id")
		c.SetParamValues("1")

		require.NoError(t, NewSlotHandler(svc).DeleteSlot(c))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("has bookings", func(t *testing.T) {
		svc := &mockSlotService{
			deleteFn: func(ctx context.Context, id uint) error { return service.ErrSlotHasBookings },
		}

		c, _ := newTestContext(t, http.MethodDelete, "/api/v1/slots/1", "")
		c.SetParamNames("id")
		c.SetParamValues("1")

		err := NewSlotHandler(svc).DeleteSlot(c)
		require.Error(t, err)
		he, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusConflict, he.Code)
	})
}

func TestListSlots_Handler(t *testing.T) {
	svc := &mockSlotService{
		listFn: func(ctx context.Context, campID uint) ([]models.AvailabilitySlot, error) {
			return []models.AvailabilitySlot{
				{ID: 1, CampID: campID, SlotDate: time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC), StartTime: "09:00", EndTime: "10:00", MaxBookings: 5},
				{ID: 2, CampID: campID, SlotDate: time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC), StartTime: "13:00", EndTime: "14:00", MaxBookings: 5},
			}, nil
		},
	}

	c, rec := newTestContext(t, http.MethodGet, "/api/v1/camps/1/slots", "")
	c.SetParamNames("id")
	c.SetParamValues("1")

	require.NoError(t, NewSlotHandler(svc).ListSlots(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []dto.SlotResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "09:00", resp[0].StartTime)
}
