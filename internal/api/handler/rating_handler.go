package handler

import (
	"photoshare/internal/api/dto"
	"photoshare/internal/pkg/response"
	"photoshare/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type RatingHandler struct {
	ratingSvc service.RatingService
}

func NewRatingHandler(ratingSvc service.RatingService) *RatingHandler {
	return &RatingHandler{ratingSvc: ratingSvc}
}

func (h *RatingHandler) Add(c *gin.Context) {
	photoID, err := strconv.ParseUint(c.Param("photo_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	var req dto.AddRatingDTO
	if err = c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	userID := c.GetUint64("user_id")
	if err = h.ratingSvc.AddRating(c.Request.Context(), photoID, userID, req.Rating); err != nil {
		response.Error(c, err)
		return
	}
	h.average(c, photoID)
}

func (h *RatingHandler) Delete(c *gin.Context) {
	photoID, err := strconv.ParseUint(c.Param("photo_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")
	if err = h.ratingSvc.DeleteRating(c.Request.Context(), photoID, userID); err != nil {
		response.Error(c, err)
		return
	}
	h.average(c, photoID)
}

func (h *RatingHandler) GetAverage(c *gin.Context) {
	photoID, err := strconv.ParseUint(c.Param("photo_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	h.average(c, photoID)
}

func (h *RatingHandler) average(c *gin.Context, photoID uint64) {
	rating, err := h.ratingSvc.GetAverageRating(c.Request.Context(), photoID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.AverageRatingDTO{
		PhotoID: photoID,
		Rating:  rating,
	})
}
