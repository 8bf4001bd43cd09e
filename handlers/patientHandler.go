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

type PatientHandler struct {
	service *services.PatientService
	feed    *activity.Log
}

func NewPatientHandler(service *services.PatientService, feed *activity.Log) *PatientHandler {
	return &PatientHandler{service: service, feed: feed}
}

// GetAllPatients returns the normalized patient list. A failed fetch yields
// an empty list with the error flag raised.
func (h *PatientHandler) GetAllPatients(c *gin.Context) {
	patients, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		log.Printf("Patient fetch failed: %v", err)
		middlewares.RespondJSON(c, gin.H{"patients": []models.Patient{}, "error": true}, http.StatusOK)
		return
	}
	middlewares.RespondJSON(c, gin.H{"patients": patients, "error": false}, http.StatusOK)
}

func (h *PatientHandler) CreatePatient(c *gin.Context) {
	var payload models.CreatePatient
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
		middlewares.HttpError(c, "failed to create patient", http.StatusBadGateway, err)
		return
	}

	detail := fmt.Sprintf("%s %s", payload.FirstName, payload.LastName)
	if err := h.feed.Record(c.Request.Context(), "Patient Registered", detail); err != nil {
		log.Printf("Failed to record activity: %v", err)
	}
	c.Data(http.StatusCreated, "application/json", created)
}
