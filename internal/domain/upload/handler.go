package upload

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"greetingcard/internal/pkg/response"
)

// Handler handles HTTP requests for image uploads.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Upload accepts a multipart image under the "image" field, stores it and
// returns {id, url, filename}. Rejections: 400 for a missing file or a
// non-image, 413 for an oversize file, 500 for anything unexpected.
func (h *Handler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		response.Error(c, http.StatusBadRequest, ErrNoFile.Error())
		return
	}

	img, err := h.service.Save(c.Request.Context(), fileHeader)
	if err != nil {
		switch err {
		case ErrNoFile, ErrNotAnImage:
			response.Error(c, http.StatusBadRequest, err.Error())
		case ErrFileTooLarge:
			response.Error(c, http.StatusRequestEntityTooLarge, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "failed to upload image")
		}
		return
	}

	response.OK(c, http.StatusOK, gin.H{
		"id":       img.ID,
		"url":      h.service.URL(img),
		"filename": img.Filename,
	})
}

// GetByID returns upload metadata by ID.
func (h *Handler) GetByID(c *gin.Context) {
	img, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusNotFound, ErrImageNotFound.Error())
		return
	}
	response.OK(c, http.StatusOK, gin.H{
		"id":            img.ID,
		"url":           h.service.URL(img),
		"filename":      img.Filename,
		"original_name": img.OriginalName,
		"uploaded_at":   img.UploadedAt,
	})
}
