package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alanfo18/stcd/internal/httperr"
	"github.com/alanfo18/stcd/internal/httpresp"
	"github.com/alanfo18/stcd/internal/middleware"
	ucStaff "github.com/alanfo18/stcd/internal/usecase/staff"
)

type StaffHandler struct {
	svc *ucStaff.Service
}

func NewStaffHandler(svc *ucStaff.Service) *StaffHandler {
	return &StaffHandler{svc: svc}
}

// --------- Requests ---------

type StaffRequest struct {
	Name       *string `json:"name"`
	Phone      *string `json:"phone"`
	Email      *string `json:"email"`
	Address    *string `json:"address"`
	City       *string `json:"city"`
	PostalCode *string `json:"postal_code"`
	DailyRate  *int64  `json:"daily_rate"`
	Active     *bool   `json:"active"`
	HiredAt    *string `json:"hired_at"`
}

func (r StaffRequest) input() ucStaff.StaffInput {
	return ucStaff.StaffInput{
		Name:       r.Name,
		Phone:      r.Phone,
		Email:      r.Email,
		Address:    r.Address,
		City:       r.City,
		PostalCode: r.PostalCode,
		DailyRate:  r.DailyRate,
		Active:     r.Active,
		HiredAt:    r.HiredAt,
	}
}

type CreateSpecialtyRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// --------- Staff ---------

func (h *StaffHandler) List(c *gin.Context) {
	activeOnly := c.Query("active") == "true"

	staff, err := h.svc.List(c.Request.Context(), middleware.Actor(c), activeOnly)
	if err != nil {
		httperr.FromError(c, err, "failed_to_list_staff")
		return
	}
	httpresp.List(c, staff)
}

func (h *StaffHandler) Create(c *gin.Context) {
	var req StaffRequest
	if !bindJSON(c, &req) {
		return
	}

	staff, err := h.svc.Create(c.Request.Context(), middleware.Actor(c), req.input())
	if err != nil {
		httperr.FromError(c, err, "failed_to_create_staff")
		return
	}
	httpresp.Created(c, staff)
}

func (h *StaffHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	staff, err := h.svc.Get(c.Request.Context(), middleware.Actor(c), id)
	if err != nil {
		httperr.FromError(c, err, "failed_to_get_staff")
		return
	}
	httpresp.OK(c, staff)
}

func (h *StaffHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req StaffRequest
	if !bindJSON(c, &req) {
		return
	}

	staff, err := h.svc.Update(c.Request.Context(), middleware.Actor(c), id, req.input())
	if err != nil {
		httperr.FromError(c, err, "failed_to_update_staff")
		return
	}
	httpresp.OK(c, staff)
}

func (h *StaffHandler) Deactivate(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	staff, err := h.svc.Deactivate(c.Request.Context(), middleware.Actor(c), id)
	if err != nil {
		httperr.FromError(c, err, "failed_to_deactivate_staff")
		return
	}
	httpresp.OK(c, staff)
}

func (h *StaffHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), middleware.Actor(c), id); err != nil {
		httperr.FromError(c, err, "failed_to_delete_staff")
		return
	}
	c.Status(http.StatusNoContent)
}

// --------- Specialties ---------

func (h *StaffHandler) ListSpecialties(c *gin.Context) {
	list, err := h.svc.ListSpecialties(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err, "failed_to_list_specialties")
		return
	}
	httpresp.List(c, list)
}

func (h *StaffHandler) CreateSpecialty(c *gin.Context) {
	var req CreateSpecialtyRequest
	if !bindJSON(c, &req) {
		return
	}

	sp, err := h.svc.CreateSpecialty(c.Request.Context(), middleware.Actor(c), req.Name, req.Description)
	if err != nil {
		httperr.FromError(c, err, "failed_to_create_specialty")
		return
	}
	httpresp.Created(c, sp)
}

func (h *StaffHandler) ListStaffSpecialties(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	list, err := h.svc.StaffSpecialties(c.Request.Context(), middleware.Actor(c), id)
	if err != nil {
		httperr.FromError(c, err, "failed_to_list_specialties")
		return
	}
	httpresp.List(c, list)
}

func (h *StaffHandler) LinkSpecialty(c *gin.Context) {
	staffID, ok := paramID(c, "id")
	if !ok {
		return
	}
	specialtyID, ok := paramID(c, "specialtyId")
	if !ok {
		return
	}

	if err := h.svc.LinkSpecialty(c.Request.Context(), middleware.Actor(c), staffID, specialtyID); err != nil {
		httperr.FromError(c, err, "failed_to_link_specialty")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *StaffHandler) UnlinkSpecialty(c *gin.Context) {
	staffID, ok := paramID(c, "id")
	if !ok {
		return
	}
	specialtyID, ok := paramID(c, "specialtyId")
	if !ok {
		return
	}

	if err := h.svc.UnlinkSpecialty(c.Request.Context(), middleware.Actor(c), staffID, specialtyID); err != nil {
		httperr.FromError(c, err, "failed_to_unlink_specialty")
		return
	}
	c.Status(http.StatusNoContent)
}
