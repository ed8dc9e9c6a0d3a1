package handler

import (
	"photoshare/internal/api/dto"
	"photoshare/internal/pkg/response"
	"photoshare/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
)

type CommentHandler struct {
	commentSvc service.CommentService
}

func NewCommentHandler(commentSvc service.CommentService) *CommentHandler {
	return &CommentHandler{commentSvc: commentSvc}
}

func (h *CommentHandler) Create(c *gin.Context) {
	photoID, err := strconv.ParseUint(c.Param("photo_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	var req dto.CommentCreateDTO
	if err = c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	userID := c.GetUint64("user_id")
	comment, err := h.commentSvc.CreateComment(c.Request.Context(), userID, photoID, req.Content)
	if err != nil {
		response.Error(c, err)
		return
	}
	var commentDTO dto.CommentDTO
	_ = copier.Copy(&commentDTO, comment)
	response.Success(c, commentDTO)
}

func (h *CommentHandler) List(c *gin.Context) {
	photoID, err := strconv.ParseUint(c.Param("photo_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	limit, offset := pagination(c)
	comments, err := h.commentSvc.GetCommentsByPhoto(c.Request.Context(), photoID, limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}
	commentDTOs := make([]*dto.CommentDTO, 0, len(comments))
	_ = copier.Copy(&commentDTOs, comments)
	response.Success(c, commentDTOs)
}

func (h *CommentHandler) Delete(c *gin.Context) {
	commentID, err := strconv.ParseUint(c.Param("comment_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")
	isAdmin := c.GetBool("is_admin")
	if err = h.commentSvc.DeleteComment(c.Request.Context(), userID, isAdmin, commentID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
