package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alanfo18/stcd/internal/httperr"
	"github.com/alanfo18/stcd/internal/httpresp"
	"github.com/alanfo18/stcd/internal/middleware"
	ucBooking "github.com/alanfo18/stcd/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	create   *ucBooking.CreateBooking
	update   *ucBooking.UpdateBooking
	complete *ucBooking.ChangeBookingStatus
	cancel   *ucBooking.ChangeBookingStatus
	list     *ucBooking.ListBookings
	delete   *ucBooking.DeleteBooking
}

func NewBookingHandler(
	create *ucBooking.CreateBooking,
	update *ucBooking.UpdateBooking,
	complete *ucBooking.ChangeBookingStatus,
	cancel *ucBooking.ChangeBookingStatus,
	list *ucBooking.ListBookings,
	del *ucBooking.DeleteBooking,
) *BookingHandler {
	return &BookingHandler{
		create:   create,
		update:   update,
		complete: complete,
		cancel:   cancel,
		list:     list,
		delete:   del,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	StaffID        uint   `json:"staff_id" binding:"required"`
	SpecialtyID    uint   `json:"specialty_id" binding:"required"`
	ServiceAddress string `json:"service_address"`
	StartDate      string `json:"start_date" binding:"required"`
	EndDate        string `json:"end_date" binding:"required"`
	DailyRate      int64  `json:"daily_rate"`
	TotalPrice     *int64 `json:"total_price"`
	Description    string `json:"description"`
	Notes          string `json:"notes"`
}

type UpdateBookingRequest struct {
	StaffID        *uint   `json:"staff_id"`
	SpecialtyID    *uint   `json:"specialty_id"`
	ServiceAddress *string `json:"service_address"`
	StartDate      *string `json:"start_date"`
	EndDate        *string `json:"end_date"`
	DailyRate      *int64  `json:"daily_rate"`
	Description    *string `json:"description"`
	Notes          *string `json:"notes"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if !bindJSON(c, &req) {
		return
	}

	booking, err := h.create.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		Actor:          middleware.Actor(c),
		StaffID:        req.StaffID,
		SpecialtyID:    req.SpecialtyID,
		ServiceAddress: req.ServiceAddress,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		DailyRate:      req.DailyRate,
		TotalPrice:     req.TotalPrice,
		Description:    req.Description,
		Notes:          req.Notes,
	})
	if err != nil {
		httperr.FromError(c, err, "failed_to_create_booking")
		return
	}

	httpresp.Created(c, booking)
}

// ======================================================
// QUERIES
// ======================================================

func (h *BookingHandler) List(c *gin.Context) {
	bookings, err := h.list.Execute(c.Request.Context(), middleware.Actor(c))
	if err != nil {
		httperr.FromError(c, err, "failed_to_list_bookings")
		return
	}
	httpresp.List(c, bookings)
}

func (h *BookingHandler) ListForStaff(c *gin.Context) {
	staffID, ok := paramID(c, "id")
	if !ok {
		return
	}

	bookings, err := h.list.ForStaff(c.Request.Context(), middleware.Actor(c), staffID)
	if err != nil {
		httperr.FromError(c, err, "failed_to_list_bookings")
		return
	}
	httpresp.List(c, bookings)
}

func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	booking, err := h.list.Get(c.Request.Context(), middleware.Actor(c), id)
	if err != nil {
		httperr.FromError(c, err, "failed_to_get_booking")
		return
	}
	httpresp.OK(c, booking)
}

// ======================================================
// UPDATE / STATUS / DELETE
// ======================================================

func (h *BookingHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req UpdateBookingRequest
	if !bindJSON(c, &req) {
		return
	}

	booking, err := h.update.Execute(c.Request.Context(), ucBooking.UpdateBookingInput{
		Actor:          middleware.Actor(c),
		ID:             id,
		StaffID:        req.StaffID,
		SpecialtyID:    req.SpecialtyID,
		ServiceAddress: req.ServiceAddress,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		DailyRate:      req.DailyRate,
		Description:    req.Description,
		Notes:          req.Notes,
	})
	if err != nil {
		httperr.FromError(c, err, "failed_to_update_booking")
		return
	}
	httpresp.OK(c, booking)
}

func (h *BookingHandler) Complete(c *gin.Context) {
	h.changeStatus(c, h.complete, "failed_to_complete_booking")
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	h.changeStatus(c, h.cancel, "failed_to_cancel_booking")
}

func (h *BookingHandler) changeStatus(c *gin.Context, uc *ucBooking.ChangeBookingStatus, fallback string) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	booking, err := uc.Execute(c.Request.Context(), middleware.Actor(c), id)
	if err != nil {
		httperr.FromError(c, err, fallback)
		return
	}
	httpresp.OK(c, booking)
}

func (h *BookingHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.delete.Execute(c.Request.Context(), middleware.Actor(c), id); err != nil {
		httperr.FromError(c, err, "failed_to_delete_booking")
		return
	}
	c.Status(http.StatusNoContent)
}
