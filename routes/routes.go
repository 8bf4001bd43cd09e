package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bella-thehacker/Life-Line-Hospital-Mangement-System/activity"
	"github.com/bella-thehacker/Life-Line-Hospital-Mangement-System/config"
	"github.com/bella-thehacker/Life-Line-Hospital-Mangement-System/controllers"
	"github.com/bella-thehacker/Life-Line-Hospital-Mangement-System/handlers"
	"github.com/bella-thehacker/Life-Line-Hospital-Mangement-System/middlewares"
	"github.com/bella-thehacker/Life-Line-Hospital-Mangement-System/repositories"
	"github.com/bella-thehacker/Life-Line-Hospital-Mangement-System/services"
)

// SetupRoutes initializes the routes and middleware for the server
func SetupRoutes(feed *activity.Log, config *config.AppConfig) http.Handler {
	// Set Gin to release mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.Default()

	// The bearer gate is optional; the record store enforces authorization
	// proper.
	if token := config.GetBearerToken(); token != "" {
		router.Use(middlewares.ValidateBearerToken(token))
	}

	router.Use(middlewares.CorsMiddleware(middlewares.DefaultCorsConfig()))

	router.Use(middlewares.NewRateLimiterMiddleware(middlewares.RateLimiterConfig{
		RequestsPerSecond: 15,
		Burst:             30,
	}))

	router.Use(middlewares.LoggingMiddleware())

	// One shared appointment store: every view reads the same list, and only
	// the store replaces it.
	patientRepo := repositories.NewPatientRepository()
	doctorRepo := repositories.NewDoctorRepository()
	appointmentRepo := repositories.NewAppointmentRepository()
	inventoryRepo := repositories.NewInventoryRepository()

	store := services.NewAppointmentStore(appointmentRepo)
	scheduler := services.NewSchedulerService(patientRepo, doctorRepo, appointmentRepo, store.Invalidate)
	overview := services.NewOverviewService(patientRepo, doctorRepo, appointmentRepo, inventoryRepo)

	appointmentHandler := handlers.NewAppointmentHandler(store, scheduler, feed)
	patientHandler := handlers.NewPatientHandler(services.NewPatientService(patientRepo), feed)
	doctorHandler := handlers.NewDoctorHandler(services.NewDoctorService(doctorRepo), feed)
	inventoryHandler := handlers.NewInventoryHandler(services.NewInventoryService(inventoryRepo), feed)
	dashboardHandler := handlers.NewDashboardHandler(overview, feed)

	controllers.SetupDashboardRoutes(router, appointmentHandler, patientHandler, doctorHandler, inventoryHandler, dashboardHandler)
	controllers.SetupRootRoute(router)

	return router
}
