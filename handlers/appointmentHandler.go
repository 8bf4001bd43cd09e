package handlers

import (
	"errors"
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

// AppointmentHandler serves the scheduling view and the appointment
// creation workflow.
type AppointmentHandler struct {
	store     *services.AppointmentStore
	scheduler *services.SchedulerService
	feed      *activity.Log
}

func NewAppointmentHandler(store *services.AppointmentStore, scheduler *services.SchedulerService, feed *activity.Log) *AppointmentHandler {
	return &AppointmentHandler{store: store, scheduler: scheduler, feed: feed}
}

// GetSchedule returns the grouped, filtered scheduling view. The list is
// fetched on first access and only refetched through an explicit refresh or
// a successful creation. A failed fetch yields an empty view with the error
// flag raised, never stale data.
func (h *AppointmentHandler) GetSchedule(c *gin.Context) {
	filter := c.DefaultQuery("status", services.FilterAll)

	appointments, fetchFailed, loaded := h.store.Snapshot()
	if !loaded {
		fetched, err := h.store.FetchAll(c.Request.Context())
		if err != nil {
			appointments, fetchFailed = nil, true
		} else {
			appointments, fetchFailed = fetched, false
		}
	}

	groups, err := services.Project(appointments, filter)
	if err != nil {
		if errors.Is(err, services.ErrInvalidFilter) {
			middlewares.HttpError(c, fmt.Sprintf("unknown status filter %q", filter), http.StatusBadRequest, err)
			return
		}
		middlewares.HttpError(c, "failed to build schedule", http.StatusInternalServerError, err)
		return
	}
	middlewares.RespondJSON(c, gin.H{"groups": groups, "error": fetchFailed}, http.StatusOK)
}

// RefreshSchedule discards the held appointment list and refetches it in
// full.
func (h *AppointmentHandler) RefreshSchedule(c *gin.Context) {
	if err := h.store.Invalidate(c.Request.Context()); err != nil {
		middlewares.HttpError(c, "failed to refresh appointments", http.StatusBadGateway, err)
		return
	}
	middlewares.RespondJSON(c, gin.H{"message": "Appointments refreshed"}, http.StatusOK)
}

// GetReferenceLists returns the patient/doctor selector options plus the
// appointment type catalogue. Partial failures leave the affected selector
// empty; the form stays usable.
func (h *AppointmentHandler) GetReferenceLists(c *gin.Context) {
	middlewares.RespondJSON(c, h.scheduler.LoadReferenceLists(c.Request.Context()), http.StatusOK)
}

// CreateAppointment runs the scheduling workflow. Validation failures
// return 422 before any record store call; submit failures return 502 and
// the client keeps its draft.
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var draft models.AppointmentDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		middlewares.HttpError(c, err.Error(), http.StatusBadRequest, err)
		return
	}

	created, err := h.scheduler.Schedule(c.Request.Context(), draft)
	if err != nil {
		if utils.IsValidationError(err) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		middlewares.HttpError(c, "failed to create appointment", http.StatusBadGateway, err)
		return
	}

	detail := fmt.Sprintf("patient %d on %s at %s", draft.Patient, draft.Date, draft.Time)
	if err := h.feed.Record(c.Request.Context(), "Appointment Scheduled", detail); err != nil {
		log.Printf("Failed to record activity: %v", err)
	}
	c.Data(http.StatusCreated, "application/json", created)
}
