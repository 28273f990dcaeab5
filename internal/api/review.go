package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mandhitown/backend/internal/middleware"
	"github.com/mandhitown/backend/internal/service"
	"github.com/mandhitown/backend/internal/store"
)

// ReviewHandler serves review listing and creation.
type ReviewHandler struct {
	reviews *service.ReviewService
	auth    middleware.TokenValidator
}

func NewReviewHandler(reviews *service.ReviewService, auth middleware.TokenValidator) *ReviewHandler {
	return &ReviewHandler{reviews: reviews, auth: auth}
}

func (h *ReviewHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/restaurants/:id/reviews", h.ListReviews)
	router.POST("/restaurants/:id/reviews", middleware.AuthMiddleware(h.auth), h.CreateReview)
}

func (h *ReviewHandler) ListReviews(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, store.ErrNotFound)
		return
	}

	reviews, err := h.reviews.ListByRestaurant(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// createReviewRequest is the JSON body for review creation. Rating is left
// untyped deliberately: clients send it as a number or a string, and the
// service parses and range-checks it either way.
type createReviewRequest struct {
	Rating  any    `json:"rating"`
	Comment string `json:"comment"`
}

// CreateReview accepts either a JSON body or a multipart submission with a
// "photos" file field. The caller identity comes from the validated
// session.
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, store.ErrNotFound)
		return
	}

	identity := c.GetString("identity")

	var (
		rating      string
		comment     string
		attachments []service.Attachment
	)
	if c.ContentType() == "multipart/form-data" {
		form, err := c.MultipartForm()
		if err != nil {
			respondError(c, fmt.Errorf("%w: malformed multipart form", service.ErrValidation))
			return
		}
		rating = c.PostForm("rating")
		comment = c.PostForm("comment")
		attachments, err = formAttachments(form.File["photos"])
		if err != nil {
			respondError(c, fmt.Errorf("%w: unreadable file upload", service.ErrValidation))
			return
		}
	} else {
		var req createReviewRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, fmt.Errorf("%w: invalid request body", service.ErrValidation))
			return
		}
		rating = ratingString(req.Rating)
		comment = req.Comment
	}

	review, photos, err := h.reviews.Create(c.Request.Context(), id, rating, comment, identity, attachments)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"review": review,
		"photos": photos,
	})
}

// ratingString renders a JSON rating value the way the service expects it:
// integral numbers without a fraction, everything else verbatim.
func ratingString(v any) string {
	switch n := v.(type) {
	case nil:
		return ""
	case float64:
		if n == float64(int(n)) {
			return strconv.Itoa(int(n))
		}
		return strconv.FormatFloat(n, 'f', -1, 64)
	case string:
		return strings.TrimSpace(n)
	default:
		return fmt.Sprint(v)
	}
}
