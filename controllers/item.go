package controllers

import (
	"net/http"

	"menuapi-backend/services"
	"menuapi-backend/validation"

	"github.com/gin-gonic/gin"
)

const (
	msgItemNotFound  = "Item not found."
	msgItemsNotFound = "Items not found."
)

type ItemController struct {
	Service *services.ItemService
}

func NewItemController(service *services.ItemService) *ItemController {
	return &ItemController{Service: service}
}

// GetSectionItems handles GET /sections/:id/items
func (ic *ItemController) GetSectionItems(c *gin.Context) {
	sectionID, ok := idParam(c, msgItemsNotFound)
	if !ok {
		return
	}
	items, err := ic.Service.List(c.Request.Context(), sectionID)
	if err != nil {
		respondWithServiceError(c, err, msgItemsNotFound)
		return
	}
	c.JSON(http.StatusOK, items)
}

// CreateItem handles POST /sections/:id/items
func (ic *ItemController) CreateItem(c *gin.Context) {
	sectionID, ok := idParam(c, msgSectionNotFound)
	if !ok {
		return
	}
	payload, ok := bindPayload(c)
	if !ok {
		return
	}
	item, err := ic.Service.Create(c.Request.Context(), sectionID, payload)
	if err != nil {
		respondWithServiceError(c, err, msgSectionNotFound)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (ic *ItemController) GetItem(c *gin.Context) {
	id, ok := idParam(c, msgItemNotFound)
	if !ok {
		return
	}
	item, err := ic.Service.Get(c.Request.Context(), id)
	if err != nil {
		respondWithServiceError(c, err, msgItemNotFound)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (ic *ItemController) ReplaceItem(c *gin.Context) {
	ic.update(c, validation.ModeReplace)
}

func (ic *ItemController) UpdateItem(c *gin.Context) {
	ic.update(c, validation.ModePatch)
}

func (ic *ItemController) update(c *gin.Context, mode validation.Mode) {
	id, ok := idParam(c, msgItemNotFound)
	if !ok {
		return
	}
	payload, ok := bindPayload(c)
	if !ok {
		return
	}
	item, err := ic.Service.Update(c.Request.Context(), id, mode, payload)
	if err != nil {
		respondWithServiceError(c, err, msgItemNotFound)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (ic *ItemController) DeleteItem(c *gin.Context) {
	id, ok := idParam(c, msgItemNotFound)
	if !ok {
		return
	}
	if err := ic.Service.Delete(c.Request.Context(), id); err != nil {
		respondWithServiceError(c, err, msgItemNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}
