package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bella-thehacker/Life-Line-Hospital-Mangement-System/activity"
	"github.com/bella-thehacker/Life-Line-Hospital-Mangement-System/middlewares"
	"github.com/bella-thehacker/Life-Line-Hospital-Mangement-System/models"
	"github.com/bella-thehacker/Life-Line-Hospital-Mangement-System/services"
	"github.com/bella-thehacker/Life-Line-Hospital-Mangement-System/utils"
)

type InventoryHandler struct {
	service *services.InventoryService
	feed    *activity.Log
}

func NewInventoryHandler(service *services.InventoryService, feed *activity.Log) *InventoryHandler {
	return &InventoryHandler{service: service, feed: feed}
}

// GetInventory returns stock records, optionally filtered by the q query
// parameter, together with the count/sum/low-stock summary for the filtered
// set.
func (h *InventoryHandler) GetInventory(c *gin.Context) {
	items, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		log.Printf("Inventory fetch failed: %v", err)
		middlewares.RespondJSON(c, gin.H{
			"items":   []models.InventoryItem{},
			"metrics": services.LevelSummary{},
			"error":   true,
		}, http.StatusOK)
		return
	}

	filtered := services.Search(items, c.Query("q"))
	middlewares.RespondJSON(c, gin.H{
		"items":   filtered,
		"metrics": services.SummarizeLevels(services.StockLevels(filtered)),
		"error":   false,
	}, http.StatusOK)
}

func (h *InventoryHandler) CreateInventoryItem(c *gin.Context) {
	var payload models.CreateInventoryItem
	if err := c.ShouldBindJSON(&payload); err != nil {
		middlewares.HttpError(c, err.Error(), http.StatusBadRequest, err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), payload)
	if err != nil {
		if utils.IsValidationError(err) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		middlewares.HttpError(c, "failed to create inventory item", http.StatusBadGateway, err)
		return
	}

	detail := fmt.Sprintf("%s (%s)", payload.Name, payload.SKU)
	if err := h.feed.Record(c.Request.Context(), "Stock Added", detail); err != nil {
		log.Printf("Failed to record activity: %v", err)
	}
	c.Data(http.StatusCreated, "application/json", created)
}
