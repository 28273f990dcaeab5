package api

import (
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mandhitown/backend/internal/service"
)

// AccountHandler serves the password-less account endpoints. None of them
// require a session: accounts are simple named identities, not principals.
type AccountHandler struct {
	accounts *service.AccountService
}

func NewAccountHandler(accounts *service.AccountService) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

func (h *AccountHandler) RegisterRoutes(router *gin.RouterGroup) {
	accounts := router.Group("/accounts")
	{
		accounts.POST("", h.CreateAccount)
		accounts.GET("/:id", h.GetAccount)
		accounts.PATCH("/:id", h.UpdateAccount)
		accounts.GET("/:id/reviews", h.ListAccountReviews)
	}
}

type accountRequest struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

// CreateAccount accepts JSON with a name and optional avatar URL, or a
// multipart form with a "name" field and an "avatar" file.
func (h *AccountHandler) CreateAccount(c *gin.Context) {
	name, avatar, err := bindAccountRequest(c)
	if err != nil {
		respondError(c, err)
		return
	}

	account, err := h.accounts.Create(c.Request.Context(), name, avatar)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, account)
}

func (h *AccountHandler) GetAccount(c *gin.Context) {
	account, err := h.accounts.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, account)
}

// UpdateAccount patches only supplied, non-empty fields.
func (h *AccountHandler) UpdateAccount(c *gin.Context) {
	name, avatar, err := bindAccountRequest(c)
	if err != nil {
		respondError(c, err)
		return
	}

	account, err := h.accounts.Update(c.Request.Context(), c.Param("id"), name, avatar)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, account)
}

func (h *AccountHandler) ListAccountReviews(c *gin.Context) {
	reviews, err := h.accounts.ListReviews(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func bindAccountRequest(c *gin.Context) (string, service.AvatarSource, error) {
	if c.ContentType() == "multipart/form-data" {
		if _, err := c.MultipartForm(); err != nil {
			return "", service.AvatarSource{}, fmt.Errorf("%w: malformed multipart form", service.ErrValidation)
		}
		avatar := service.AvatarSource{URL: c.PostForm("avatar_url")}
		if fh, err := c.FormFile("avatar"); err == nil {
			files, err := formAttachments([]*multipart.FileHeader{fh})
			if err != nil {
				return "", service.AvatarSource{}, fmt.Errorf("%w: unreadable file upload", service.ErrValidation)
			}
			avatar.File = &files[0]
		}
		return c.PostForm("name"), avatar, nil
	}

	var req accountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return "", service.AvatarSource{}, fmt.Errorf("%w: invalid request body", service.ErrValidation)
	}
	return req.Name, service.AvatarSource{URL: req.AvatarURL}, nil
}
