package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/bella-thehacker/Life-Line-Hospital-Mangement-System/handlers"
)

func SetupDashboardRoutes(router *gin.Engine, appointmentHandler *handlers.AppointmentHandler, patientHandler *handlers.PatientHandler, doctorHandler *handlers.DoctorHandler, inventoryHandler *handlers.InventoryHandler, dashboardHandler *handlers.DashboardHandler) {
	api := router.Group("/api")

	api.GET("/schedule", appointmentHandler.GetSchedule)
	api.POST("/schedule/refresh", appointmentHandler.RefreshSchedule)
	api.GET("/schedule/reference-lists", appointmentHandler.GetReferenceLists)
	api.POST("/appointments", appointmentHandler.CreateAppointment)

	api.GET("/patients", patientHandler.GetAllPatients)
	api.POST("/patients", patientHandler.CreatePatient)

	api.GET("/doctors", doctorHandler.GetAllDoctors)
	api.POST("/doctors", doctorHandler.CreateDoctor)

	api.GET("/inventory", inventoryHandler.GetInventory)
	api.POST("/inventory", inventoryHandler.CreateInventoryItem)

	api.GET("/dashboard/overview", dashboardHandler.GetOverview)
	api.GET("/activity", dashboardHandler.GetActivity)
}
