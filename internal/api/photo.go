package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mandhitown/backend/internal/middleware"
	"github.com/mandhitown/backend/internal/service"
	"github.com/mandhitown/backend/internal/store"
)

// PhotoHandler serves photo attachment and listing.
type PhotoHandler struct {
	photos *service.PhotoService
	auth   middleware.TokenValidator
}

func NewPhotoHandler(photos *service.PhotoService, auth middleware.TokenValidator) *PhotoHandler {
	return &PhotoHandler{photos: photos, auth: auth}
}

func (h *PhotoHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/reviews/:id/photos", middleware.AuthMiddleware(h.auth), h.AttachPhotos)
	router.GET("/restaurants/:id/photos", h.ListPhotos)
}

// AttachPhotos uploads photos for an existing review. The request must be a
// multipart submission with at least one file under "photos"; only the
// newly created records are returned.
func (h *PhotoHandler) AttachPhotos(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, store.ErrNotFound)
		return
	}

	if c.ContentType() != "multipart/form-data" {
		respondError(c, fmt.Errorf("%w: expected a multipart file upload", service.ErrValidation))
		return
	}
	form, err := c.MultipartForm()
	if err != nil {
		respondError(c, fmt.Errorf("%w: malformed multipart form", service.ErrValidation))
		return
	}
	attachments, err := formAttachments(form.File["photos"])
	if err != nil {
		respondError(c, fmt.Errorf("%w: unreadable file upload", service.ErrValidation))
		return
	}

	photos, err := h.photos.Attach(c.Request.Context(), id, c.GetString("identity"), attachments)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"photos": photos})
}

func (h *PhotoHandler) ListPhotos(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, store.ErrNotFound)
		return
	}

	photos, err := h.photos.ListByRestaurant(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, photos)
}
