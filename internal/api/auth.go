package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mandhitown/backend/internal/middleware"
	"github.com/mandhitown/backend/internal/service"
)

// AuthHandler serves the credential endpoints: signup, login, logout and
// the current-caller lookup.
type AuthHandler struct {
	auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/signup", h.Signup)
		auth.POST("/login", h.Login)
		auth.POST("/logout", middleware.AuthMiddleware(h.auth), h.Logout)
		auth.GET("/me", middleware.AuthMiddleware(h.auth), h.Me)
	}
}

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	token, user, err := h.auth.Signup(req.Email, req.Password, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      "Signup successful",
		"access_token": token,
		"user":         gin.H{"email": user.Email, "name": user.Name},
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	token, user, err := h.auth.Login(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Login successful",
		"access_token": token,
		"user":         gin.H{"email": user.Email, "name": user.Name},
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	tokenID := c.GetString("token_id")
	expiresAt, _ := c.Get("token_expires_at")
	exp, _ := expiresAt.(time.Time)

	if err := h.auth.Logout(c.Request.Context(), tokenID, exp); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to log out"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.auth.GetUser(c.GetString("identity"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"email":         user.Email,
		"name":          user.Name,
		"auth_provider": user.AuthProvider,
	})
}
