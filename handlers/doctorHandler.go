package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bella-thehacker/Life-Line-Hospital-Mangement-System/activity"
	"github.com/bella-thehacker/Life-Line-Hospital-Mangement-System/middlewares"
	"github.com/bella-thehacker/Life-Line-Hospital-Mangement-System/models"
	"github.com/bella-thehacker/Life-Line-Hospital-Mangement-System/services"
	"github.com/bella-thehacker/Life-Line-Hospital-Mangement-System/utils"
)

type DoctorHandler struct {
	service *services.DoctorService
	feed    *activity.Log
}

func NewDoctorHandler(service *services.DoctorService, feed *activity.Log) *DoctorHandler {
	return &DoctorHandler{service: service, feed: feed}
}

// GetAllDoctors returns the normalized doctor list. A failed fetch yields an
// empty list with the error flag raised.
func (h *DoctorHandler) GetAllDoctors(c *gin.Context) {
	doctors, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		log.Printf("Doctor fetch failed: %v", err)
		middlewares.RespondJSON(c, gin.H{"doctors": []models.Doctor{}, "error": true}, http.StatusOK)
		return
	}
	middlewares.RespondJSON(c, gin.H{"doctors": doctors, "error": false}, http.StatusOK)
}

func (h *DoctorHandler) CreateDoctor(c *gin.Context) {
	var payload models.CreateDoctor
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
		middlewares.HttpError(c, "failed to create doctor", http.StatusBadGateway, err)
		return
	}

	if err := h.feed.Record(c.Request.Context(), "Doctor Added", payload.UserName); err != nil {
		log.Printf("Failed to record activity: %v", err)
	}
	c.Data(http.StatusCreated, "application/json", created)
}
