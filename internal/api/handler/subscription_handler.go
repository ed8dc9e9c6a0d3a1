package handler

import (
	"photoshare/internal/api/dto"
	"photoshare/internal/pkg/response"
	"photoshare/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
)

type SubscriptionHandler struct {
	subscriptionSvc service.SubscriptionService
}

func NewSubscriptionHandler(subscriptionSvc service.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionSvc: subscriptionSvc}
}

func (h *SubscriptionHandler) Subscribe(c *gin.Context) {
	targetID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	subscriberID := c.GetUint64("user_id")
	if err = h.subscriptionSvc.Subscribe(c.Request.Context(), subscriberID, targetID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (h *SubscriptionHandler) Unsubscribe(c *gin.Context) {
	targetID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	subscriberID := c.GetUint64("user_id")
	if err = h.subscriptionSvc.Unsubscribe(c.Request.Context(), subscriberID, targetID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (h *SubscriptionHandler) GetSubscribers(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	limit, offset := pagination(c)
	users, err := h.subscriptionSvc.GetSubscribers(c.Request.Context(), userID, limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}
	userDTOs := make([]*dto.UserDTO, 0, len(users))
	_ = copier.Copy(&userDTOs, users)
	response.Success(c, userDTOs)
}

func (h *SubscriptionHandler) GetSubscriptions(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	limit, offset := pagination(c)
	users, err := h.subscriptionSvc.GetSubscriptions(c.Request.Context(), userID, limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}
	userDTOs := make([]*dto.UserDTO, 0, len(users))
	_ = copier.Copy(&userDTOs, users)
	response.Success(c, userDTOs)
}

func (h *SubscriptionHandler) IsSubscribed(c *gin.Context) {
	targetID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	subscriberID := c.GetUint64("user_id")
	subscribed, err := h.subscriptionSvc.IsSubscribed(c.Request.Context(), subscriberID, targetID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"subscribed": subscribed})
}
