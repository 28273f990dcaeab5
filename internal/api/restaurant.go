package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mandhitown/backend/internal/service"
	"github.com/mandhitown/backend/internal/store"
)

// RestaurantHandler serves the public catalog endpoints.
type RestaurantHandler struct {
	catalog *service.CatalogService
}

func NewRestaurantHandler(catalog *service.CatalogService) *RestaurantHandler {
	return &RestaurantHandler{catalog: catalog}
}

func (h *RestaurantHandler) RegisterRoutes(router *gin.RouterGroup) {
	restaurants := router.Group("/restaurants")
	{
		restaurants.GET("", h.ListRestaurants)
		restaurants.GET("/:id", h.GetRestaurant)
		restaurants.GET("/search/:query", h.SearchRestaurants)
	}
}

func (h *RestaurantHandler) ListRestaurants(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.List())
}

func (h *RestaurantHandler) GetRestaurant(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, store.ErrNotFound)
		return
	}

	restaurant, err := h.catalog.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, restaurant)
}

func (h *RestaurantHandler) SearchRestaurants(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Search(c.Param("query")))
}
