package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/alanfo18/stcd/internal/httperr"
	"github.com/alanfo18/stcd/internal/httpresp"
	"github.com/alanfo18/stcd/internal/middleware"
	ucRating "github.com/alanfo18/stcd/internal/usecase/rating"
)

type RatingHandler struct {
	create *ucRating.CreateRating
	update *ucRating.UpdateRating
	list   *ucRating.ListRatings
}

func NewRatingHandler(
	create *ucRating.CreateRating,
	update *ucRating.UpdateRating,
	list *ucRating.ListRatings,
) *RatingHandler {
	return &RatingHandler{create: create, update: update, list: list}
}

type CreateRatingRequest struct {
	BookingID uint   `json:"booking_id" binding:"required"`
	Score     int    `json:"score"`
	Comment   string `json:"comment"`
}

type UpdateRatingRequest struct {
	Score   *int    `json:"score"`
	Comment *string `json:"comment"`
}

func (h *RatingHandler) Create(c *gin.Context) {
	var req CreateRatingRequest
	if !bindJSON(c, &req) {
		return
	}

	rating, err := h.create.Execute(c.Request.Context(), ucRating.CreateRatingInput{
		Actor:     middleware.Actor(c),
		BookingID: req.BookingID,
		Score:     req.Score,
		Comment:   req.Comment,
	})
	if err != nil {
		httperr.FromError(c, err, "failed_to_create_rating")
		return
	}
	httpresp.Created(c, rating)
}

func (h *RatingHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req UpdateRatingRequest
	if !bindJSON(c, &req) {
		return
	}

	rating, err := h.update.Execute(c.Request.Context(), middleware.Actor(c), id, req.Score, req.Comment)
	if err != nil {
		httperr.FromError(c, err, "failed_to_update_rating")
		return
	}
	httpresp.OK(c, rating)
}

func (h *RatingHandler) ListForStaff(c *gin.Context) {
	staffID, ok := paramID(c, "id")
	if !ok {
		return
	}

	ratings, err := h.list.ForStaff(c.Request.Context(), middleware.Actor(c), staffID)
	if err != nil {
		httperr.FromError(c, err, "failed_to_list_ratings")
		return
	}
	httpresp.List(c, ratings)
}

func (h *RatingHandler) Average(c *gin.Context) {
	staffID, ok := paramID(c, "id")
	if !ok {
		return
	}

	summary, err := h.list.Average(c.Request.Context(), middleware.Actor(c), staffID)
	if err != nil {
		httperr.FromError(c, err, "failed_to_average_ratings")
		return
	}
	httpresp.OK(c, summary)
}
