package controllers

import (
	"net/http"

	"menuapi-backend/services"
	"menuapi-backend/validation"

	"github.com/gin-gonic/gin"
)

const (
	msgRestaurantNotFound  = "Restaurant not found."
	msgRestaurantsNotFound = "Restaurants not found."
)

type RestaurantController struct {
	Service *services.RestaurantService
}

func NewRestaurantController(service *services.RestaurantService) *RestaurantController {
	return &RestaurantController{Service: service}
}

// GetRestaurants lists active restaurants with their opening hours
func (rc *RestaurantController) GetRestaurants(c *gin.Context) {
	restaurants, err := rc.Service.List(c.Request.Context())
	if err != nil {
		respondWithServiceError(c, err, msgRestaurantsNotFound)
		return
	}
	c.JSON(http.StatusOK, restaurants)
}

func (rc *RestaurantController) GetRestaurant(c *gin.Context) {
	id, ok := idParam(c, msgRestaurantNotFound)
	if !ok {
		return
	}
	restaurant, err := rc.Service.Get(c.Request.Context(), id)
	if err != nil {
		respondWithServiceError(c, err, msgRestaurantNotFound)
		return
	}
	c.JSON(http.StatusOK, restaurant)
}

func (rc *RestaurantController) CreateRestaurant(c *gin.Context) {
	payload, ok := bindPayload(c)
	if !ok {
		return
	}
	restaurant, err := rc.Service.Create(c.Request.Context(), payload)
	if err != nil {
		respondWithServiceError(c, err, msgRestaurantNotFound)
		return
	}
	c.JSON(http.StatusCreated, restaurant)
}

// ReplaceRestaurant handles PUT
func (rc *RestaurantController) ReplaceRestaurant(c *gin.Context) {
	rc.update(c, validation.ModeReplace)
}

// UpdateRestaurant handles PATCH
func (rc *RestaurantController) UpdateRestaurant(c *gin.Context) {
	rc.update(c, validation.ModePatch)
}

func (rc *RestaurantController) update(c *gin.Context, mode validation.Mode) {
	id, ok := idParam(c, msgRestaurantNotFound)
	if !ok {
		return
	}
	payload, ok := bindPayload(c)
	if !ok {
		return
	}
	restaurant, err := rc.Service.Update(c.Request.Context(), id, mode, payload)
	if err != nil {
		respondWithServiceError(c, err, msgRestaurantNotFound)
		return
	}
	c.JSON(http.StatusOK, restaurant)
}

func (rc *RestaurantController) DeleteRestaurant(c *gin.Context) {
	id, ok := idParam(c, msgRestaurantNotFound)
	if !ok {
		return
	}
	if err := rc.Service.Delete(c.Request.Context(), id); err != nil {
		respondWithServiceError(c, err, msgRestaurantNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}
