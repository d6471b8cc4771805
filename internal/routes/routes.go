package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/glamsuite/salon-scheduler/internal/audit"
	"github.com/glamsuite/salon-scheduler/internal/cache"
	"github.com/glamsuite/salon-scheduler/internal/config"
	"github.com/glamsuite/salon-scheduler/internal/handlers"
	infraRepo "github.com/glamsuite/salon-scheduler/internal/infra/repository"
	"github.com/glamsuite/salon-scheduler/internal/infra/wizardstore"
	"github.com/glamsuite/salon-scheduler/internal/metrics"
	"github.com/glamsuite/salon-scheduler/internal/middleware"
	"github.com/glamsuite/salon-scheduler/internal/payments"
	ucAppointment "github.com/glamsuite/salon-scheduler/internal/usecase/appointment"
	ucBooking "github.com/glamsuite/salon-scheduler/internal/usecase/booking"
)

const catalogTTL = 5 * time.Minute

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.Metrics())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	wizardStore := wizardstore.New(rdb, cfg.WizardTTL)
	catalog := cache.NewCatalog(rdb, catalogTTL)
	gateway := payments.NewSimulatedGateway(cfg.AirtelConfirmDelay)

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	bookingFlow := ucBooking.NewFlow(
		appointmentRepo,
		wizardStore,
		gateway,
		auditDispatcher,
		log,
	)

	availabilityUC := ucAppointment.NewGetAvailability(appointmentRepo)

	createAppointmentUC := ucAppointment.NewCreateStaffAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	changeStatusUC := ucAppointment.NewChangeStatus(
		appointmentRepo,
		auditDispatcher,
	)

	cancelAppointmentUC := ucAppointment.NewCancelAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	rescheduleAppointmentUC := ucAppointment.NewRescheduleAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	confirmAppointmentUC := ucAppointment.NewConfirmAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	publicHandler := handlers.NewPublicHandler(db, catalog, bookingFlow, availabilityUC)

	appointmentHandler := handlers.NewAppointmentHandler(
		db,
		createAppointmentUC,
		changeStatusUC,
		cancelAppointmentUC,
		rescheduleAppointmentUC,
		confirmAppointmentUC,
	)

	salonHandler := handlers.NewSalonHandler(db)
	clientHandler := handlers.NewClientHandler(db)
	serviceHandler := handlers.NewServiceHandler(db, catalog)
	employeeHandler := handlers.NewEmployeeHandler(db)
	paymentHandler := handlers.NewPaymentHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// 📈 OPS
	// ======================================================
	metrics.Register()
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		publicAPI.Use(middleware.RateLimit(5, 10))
		{
			publicAPI.GET("/:slug", publicHandler.GetSalon)
			publicAPI.GET("/:slug/services", publicHandler.ListServices)
			publicAPI.GET("/:slug/stylists", publicHandler.ListStylists)
			publicAPI.GET("/:slug/availability", publicHandler.Availability)
			publicAPI.POST("/:slug/contact", publicHandler.CreateContactMessage)
			publicAPI.POST("/:slug/booking", publicHandler.StartWizard)
		}

		// ------------------------------
		// BOOKING WIZARD (session routes)
		// ------------------------------
		bookingAPI := api.Group("/booking")
		bookingAPI.Use(middleware.RateLimit(5, 10))
		{
			bookingAPI.GET("/:id", publicHandler.GetWizard)
			bookingAPI.PUT("/:id/contact", publicHandler.SubmitContact)
			bookingAPI.PUT("/:id/selection", publicHandler.SelectService)
			bookingAPI.PUT("/:id/schedule", publicHandler.Schedule)
			bookingAPI.PUT("/:id/payment", publicHandler.Pay)
			bookingAPI.POST("/:id/back", publicHandler.Back)
			bookingAPI.GET("/:id/receipt", publicHandler.Receipt)
		}

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me/salon", salonHandler.Get)
			secured.PATCH("/me/salon", salonHandler.Update)

			secured.GET("/me/clients", clientHandler.List)
			secured.POST("/me/clients", clientHandler.Create)
			secured.GET("/me/clients/:id", clientHandler.Get)
			secured.PATCH("/me/clients/:id", clientHandler.Update)
			secured.GET("/me/clients/:id/history", clientHandler.History)

			secured.GET("/me/services", serviceHandler.List)
			secured.POST("/me/services", serviceHandler.Create)
			secured.GET("/me/services/:id", serviceHandler.Get)
			secured.PATCH("/me/services/:id", serviceHandler.Update)

			secured.GET("/me/employees", employeeHandler.List)
			secured.GET("/me/employees/:id", employeeHandler.Get)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/me/appointments", appointmentHandler.Create)
			secured.GET("/me/appointments", appointmentHandler.List)
			secured.GET("/me/appointments/:id", appointmentHandler.Get)
			secured.GET("/me/calendar", appointmentHandler.ListByMonth)
			secured.PATCH("/me/appointments/:id/status", appointmentHandler.ChangeStatus)
			secured.PATCH("/me/appointments/:id/confirm", appointmentHandler.Confirm)
			secured.PATCH("/me/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.PATCH("/me/appointments/:id/reschedule", appointmentHandler.Reschedule)

			secured.GET("/me/payments", paymentHandler.List)
			secured.GET("/me/payments/:id", paymentHandler.Get)
			secured.PATCH("/me/payments/:id/confirm", paymentHandler.Confirm)

			secured.GET("/me/audit-logs", auditLogsHandler.List)

			// ------------------------------
			// 🔐 ADMIN
			// ------------------------------
			admin := secured.Group("/")
			admin.Use(middleware.RequireAdmin())
			{
				admin.POST("/me/employees", employeeHandler.Create)
				admin.PATCH("/me/employees/:id", employeeHandler.Update)
				admin.DELETE("/me/employees/:id", employeeHandler.Delete)
				admin.DELETE("/me/services/:id", serviceHandler.Delete)
				admin.DELETE("/me/clients/:id", clientHandler.Delete)
				admin.DELETE("/me/appointments/:id", appointmentHandler.Delete)
			}
		}
	}
}
