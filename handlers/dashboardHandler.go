package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bella-thehacker/Life-Line-Hospital-Mangement-System/activity"
	"github.com/bella-thehacker/Life-Line-Hospital-Mangement-System/middlewares"
	"github.com/bella-thehacker/Life-Line-Hospital-Mangement-System/services"
)

type DashboardHandler struct {
	overview *services.OverviewService
	feed     *activity.Log
}

func NewDashboardHandler(overview *services.OverviewService, feed *activity.Log) *DashboardHandler {
	return &DashboardHandler{overview: overview, feed: feed}
}

// GetOverview returns the cross-collection aggregates for the dashboard
// landing page.
func (h *DashboardHandler) GetOverview(c *gin.Context) {
	middlewares.RespondJSON(c, h.overview.Build(c.Request.Context()), http.StatusOK)
}

// GetActivity returns the recent-activity feed, newest first.
func (h *DashboardHandler) GetActivity(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil {
		middlewares.HttpError(c, "invalid limit", http.StatusBadRequest, err)
		return
	}

	entries, err := h.feed.Recent(c.Request.Context(), limit)
	if err != nil {
		middlewares.HttpError(c, "failed to read activity feed", http.StatusInternalServerError, err)
		return
	}
	middlewares.RespondJSON(c, gin.H{"entries": entries}, http.StatusOK)
}
