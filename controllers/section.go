package controllers

import (
	"net/http"

	"menuapi-backend/services"
	"menuapi-backend/validation"

	"github.com/gin-gonic/gin"
)

const (
	msgSectionNotFound  = "Section not found."
	msgSectionsNotFound = "Sections not found."
)

type SectionController struct {
	Service *services.SectionService
}

func NewSectionController(service *services.SectionService) *SectionController {
	return &SectionController{Service: service}
}

// GetRestaurantSections handles GET /restaurants/:id/sections
func (sc *SectionController) GetRestaurantSections(c *gin.Context) {
	restaurantID, ok := idParam(c, msgSectionsNotFound)
	if !ok {
		return
	}
	sections, err := sc.Service.List(c.Request.Context(), restaurantID)
	if err != nil {
		respondWithServiceError(c, err, msgSectionsNotFound)
		return
	}
	c.JSON(http.StatusOK, sections)
}

// CreateSection handles POST /restaurants/:id/sections
func (sc *SectionController) CreateSection(c *gin.Context) {
	restaurantID, ok := idParam(c, msgRestaurantNotFound)
	if !ok {
		return
	}
	payload, ok := bindPayload(c)
	if !ok {
		return
	}
	section, err := sc.Service.Create(c.Request.Context(), restaurantID, payload)
	if err != nil {
		respondWithServiceError(c, err, msgRestaurantNotFound)
		return
	}
	c.JSON(http.StatusCreated, section)
}

func (sc *SectionController) GetSection(c *gin.Context) {
	id, ok := idParam(c, msgSectionNotFound)
	if !ok {
		return
	}
	section, err := sc.Service.Get(c.Request.Context(), id)
	if err != nil {
		respondWithServiceError(c, err, msgSectionNotFound)
		return
	}
	c.JSON(http.StatusOK, section)
}

func (sc *SectionController) ReplaceSection(c *gin.Context) {
	sc.update(c, validation.ModeReplace)
}

func (sc *SectionController) UpdateSection(c *gin.Context) {
	sc.update(c, validation.ModePatch)
}

func (sc *SectionController) update(c *gin.Context, mode validation.Mode) {
	id, ok := idParam(c, msgSectionNotFound)
	if !ok {
		return
	}
	payload, ok := bindPayload(c)
	if !ok {
		return
	}
	section, err := sc.Service.Update(c.Request.Context(), id, mode, payload)
	if err != nil {
		respondWithServiceError(c, err, msgSectionNotFound)
		return
	}
	c.JSON(http.StatusOK, section)
}

func (sc *SectionController) DeleteSection(c *gin.Context) {
	id, ok := idParam(c, msgSectionNotFound)
	if !ok {
		return
	}
	if err := sc.Service.Delete(c.Request.Context(), id); err != nil {
		respondWithServiceError(c, err, msgSectionNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}
