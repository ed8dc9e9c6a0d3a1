package handler

import (
	"photoshare/internal/api/dto"
	"photoshare/internal/pkg/response"
	"photoshare/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
)

type PhotoHandler struct {
	photoSvc service.PhotoService
}

func NewPhotoHandler(photoSvc service.PhotoService) *PhotoHandler {
	return &PhotoHandler{photoSvc: photoSvc}
}

func (h *PhotoHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var description *string
	if desc := c.PostForm("description"); desc != "" {
		description = &desc
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, err)
		return
	}
	defer file.Close()

	ownerID := c.GetUint64("user_id")
	contentType := fileHeader.Header.Get("Content-Type")
	photo, err := h.photoSvc.UploadPhoto(c.Request.Context(), ownerID, fileHeader.Filename, file, fileHeader.Size, contentType, description)
	if err != nil {
		response.Error(c, err)
		return
	}

	var photoDTO dto.PhotoDTO
	_ = copier.Copy(&photoDTO, photo)
	response.Success(c, photoDTO)
}

func (h *PhotoHandler) GetPhoto(c *gin.Context) {
	photoID, err := strconv.ParseUint(c.Param("photo_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	photo, err := h.photoSvc.GetPhoto(c.Request.Context(), photoID)
	if err != nil {
		response.Error(c, err)
		return
	}
	var photoDTO dto.PhotoDTO
	_ = copier.Copy(&photoDTO, photo)
	response.Success(c, photoDTO)
}

func (h *PhotoHandler) ListByOwner(c *gin.Context) {
	ownerID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	limit, offset := pagination(c)
	photos, err := h.photoSvc.GetPhotosByOwner(c.Request.Context(), ownerID, limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}
	photoDTOs := make([]*dto.PhotoDTO, 0, len(photos))
	_ = copier.Copy(&photoDTOs, photos)
	response.Success(c, photoDTOs)
}

func (h *PhotoHandler) UpdateDescription(c *gin.Context) {
	photoID, err := strconv.ParseUint(c.Param("photo_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	var req dto.UpdatePhotoDTO
	if err = c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	userID := c.GetUint64("user_id")
	isAdmin := c.GetBool("is_admin")
	if err = h.photoSvc.UpdateDescription(c.Request.Context(), userID, isAdmin, photoID, req.Description); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (h *PhotoHandler) Delete(c *gin.Context) {
	photoID, err := strconv.ParseUint(c.Param("photo_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")
	isAdmin := c.GetBool("is_admin")
	if err = h.photoSvc.DeletePhoto(c.Request.Context(), userID, isAdmin, photoID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// pagination reads limit/offset query params with sane bounds.
func pagination(c *gin.Context) (int, int) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit <= 0 || limit > 100 {
		limit = 20
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}
	return limit, offset
}
