package handler

import (
	"photoshare/internal/api/dto"
	"photoshare/internal/pkg/response"
	"photoshare/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ReactionHandler struct {
	reactionSvc service.ReactionService
}

func NewReactionHandler(reactionSvc service.ReactionService) *ReactionHandler {
	return &ReactionHandler{reactionSvc: reactionSvc}
}

// Toggle flips the caller's reaction on a photo. Repeating the same
// reaction removes it, a different reaction replaces the old one.
func (h *ReactionHandler) Toggle(c *gin.Context) {
	photoID, err := strconv.ParseUint(c.Param("photo_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	var req dto.ToggleReactionDTO
	if err = c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	userID := c.GetUint64("user_id")
	current, err := h.reactionSvc.Toggle(c.Request.Context(), photoID, userID, req.ReactionID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ReactionStateDTO{Current: current})
}

// GetState returns per-reaction counts for a photo plus the caller's own
// active reaction when authenticated.
func (h *ReactionHandler) GetState(c *gin.Context) {
	photoID, err := strconv.ParseUint(c.Param("photo_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	counts, err := h.reactionSvc.CountsForPhoto(c.Request.Context(), photoID)
	if err != nil {
		response.Error(c, err)
		return
	}

	state := dto.ReactionStateDTO{Counts: counts}
	if userID := c.GetUint64("user_id"); userID != 0 {
		current, err := h.reactionSvc.CurrentForUserAndPhoto(c.Request.Context(), photoID, userID)
		if err != nil {
			response.Error(c, err)
			return
		}
		state.Current = current
	}
	response.Success(c, state)
}

func (h *ReactionHandler) CreateReaction(c *gin.Context) {
	var req dto.CreateReactionDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	reaction, err := h.reactionSvc.CreateReaction(c.Request.Context(), req.Name)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ReactionItemDTO{ID: reaction.ID, Name: reaction.Name})
}

func (h *ReactionHandler) ListReactions(c *gin.Context) {
	reactions, err := h.reactionSvc.ListReactions(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	reactionDTOs := make([]*dto.ReactionItemDTO, 0, len(reactions))
	for _, r := range reactions {
		reactionDTOs = append(reactionDTOs, &dto.ReactionItemDTO{ID: r.ID, Name: r.Name})
	}
	response.Success(c, reactionDTOs)
}
