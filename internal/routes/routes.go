package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"clinic-app-server/internal/auth"
	"clinic-app-server/internal/config"
	"clinic-app-server/internal/handlers"
	"clinic-app-server/internal/middleware"
	"clinic-app-server/internal/store"
)

// SetupRoutes wires stores, handlers and route groups. Each group is
// gated on the capability it needs, not on role names.
func SetupRoutes(router *gin.Engine, db *gorm.DB, cfg *config.Config, log zerolog.Logger) {
	// Stores (explicit handle injection, no globals)
	userStore := store.NewUserStore(db, log)
	sessionStore := store.NewSessionStore(db, log)
	clinicStore := store.NewClinicStore(db, log)
	patientStore := store.NewPatientStore(db, log)
	appointmentStore := store.NewAppointmentStore(db, log, cfg.Booking.AllowOverlap)
	availabilityStore := store.NewAvailabilityStore(db, log)
	recordStore := store.NewMedicalRecordStore(db, log)
	prescriptionStore := store.NewPrescriptionStore(db, log)
	inventoryStore := store.NewInventoryStore(db, log)
	procedureStore := store.NewProcedureStore(db, log)

	// Handlers
	authHandler := handlers.NewAuthHandler(userStore, sessionStore, cfg, log)
	userHandler := handlers.NewUserHandler(userStore)
	clinicHandler := handlers.NewClinicHandler(clinicStore)
	patientHandler := handlers.NewPatientHandler(patientStore)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentStore)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityStore)
	recordHandler := handlers.NewMedicalRecordHandler(recordStore)
	prescriptionHandler := handlers.NewPrescriptionHandler(prescriptionStore)
	inventoryHandler := handlers.NewInventoryHandler(inventoryStore)
	billingHandler := handlers.NewBillingHandler(appointmentStore, procedureStore)

	// Public routes (no authentication required)
	public := router.Group("/api/v1")
	{
		public.POST("/auth/login", authHandler.Login)
	}

	// Authenticated routes
	private := router.Group("/api/v1")
	private.Use(middleware.AuthMiddleware(cfg, sessionStore))
	{
		authRoutes := private.Group("/auth")
		{
			authRoutes.POST("/logout", authHandler.Logout)
			authRoutes.GET("/profile", authHandler.GetProfile)
		}

		clinicRoutes := private.Group("/clinics")
		clinicRoutes.Use(middleware.RequirePermission(auth.PermManageClinics))
		{
			clinicRoutes.GET("", clinicHandler.ListClinics)
			clinicRoutes.POST("", clinicHandler.CreateClinic)
			clinicRoutes.PUT("/:id", clinicHandler.UpdateClinic)
		}

		userRoutes := private.Group("/users")
		{
			// Doctor picker is open to anyone who can see the schedule
			userRoutes.GET("/doctors", middleware.RequirePermission(auth.PermViewSchedule), userHandler.GetDoctors)

			adminRoutes := userRoutes.Group("")
			adminRoutes.Use(middleware.RequirePermission(auth.PermManageUsers))
			{
				adminRoutes.POST("", userHandler.CreateUser)
				adminRoutes.GET("", userHandler.GetUsers)
				adminRoutes.GET("/:id", userHandler.GetUserByID)
				adminRoutes.PUT("/:id", userHandler.UpdateUser)
				adminRoutes.DELETE("/:id", userHandler.DeleteUser)
			}
		}

		patientRoutes := private.Group("/patients")
		{
			patientRoutes.GET("", middleware.RequirePermission(auth.PermViewPatients), patientHandler.ListPatients)
			patientRoutes.GET("/search", middleware.RequirePermission(auth.PermViewPatients), patientHandler.SearchPatients)
			patientRoutes.GET("/:id", middleware.RequirePermission(auth.PermViewPatients), patientHandler.GetPatient)
			patientRoutes.POST("", middleware.RequirePermission(auth.PermManagePatients), patientHandler.CreatePatient)
			patientRoutes.PUT("/:id", middleware.RequirePermission(auth.PermManagePatients), patientHandler.UpdatePatient)
			patientRoutes.DELETE("/:id", middleware.RequirePermission(auth.PermManagePatients), patientHandler.DeletePatient)
		}

		appointmentRoutes := private.Group("/appointments")
		{
			appointmentRoutes.GET("", middleware.RequirePermission(auth.PermViewSchedule), appointmentHandler.ListAppointments)
			appointmentRoutes.GET("/:id", middleware.RequirePermission(auth.PermViewSchedule), appointmentHandler.GetAppointment)
			appointmentRoutes.POST("", middleware.RequirePermission(auth.PermScheduleAppointment), appointmentHandler.CreateAppointment)
			appointmentRoutes.PUT("/:id", middleware.RequirePermission(auth.PermScheduleAppointment), appointmentHandler.UpdateAppointment)
			appointmentRoutes.PATCH("/:id/status", middleware.RequirePermission(auth.PermCheckInPatients), appointmentHandler.UpdateAppointmentStatus)
			appointmentRoutes.DELETE("/:id", middleware.RequirePermission(auth.PermScheduleAppointment), appointmentHandler.DeleteAppointment)
		}

		availabilityRoutes := private.Group("/availability-exceptions")
		availabilityRoutes.Use(middleware.RequirePermission(auth.PermManageAvailability))
		{
			availabilityRoutes.GET("", availabilityHandler.ListExceptions)
			availabilityRoutes.POST("", availabilityHandler.BlockDates)
			availabilityRoutes.DELETE("", availabilityHandler.UnblockDates)
		}
		private.GET("/availability/check", middleware.RequirePermission(auth.PermViewSchedule), availabilityHandler.CheckAvailability)

		recordRoutes := private.Group("/medical-records")
		{
			recordRoutes.GET("/patient/:patientId", middleware.RequirePermission(auth.PermViewRecords), recordHandler.GetMedicalRecordsForPatient)
			recordRoutes.GET("/:id", middleware.RequirePermission(auth.PermViewRecords), recordHandler.GetMedicalRecord)
			recordRoutes.POST("", middleware.RequirePermission(auth.PermAttendPatients), recordHandler.CreateMedicalRecord)
			recordRoutes.PUT("/:id", middleware.RequirePermission(auth.PermAttendPatients), recordHandler.UpdateMedicalRecord)
			recordRoutes.PATCH("/:id/vitals", middleware.RequirePermission(auth.PermRecordTriage), recordHandler.UpdateVitals)
		}

		prescriptionRoutes := private.Group("/prescriptions")
		{
			prescriptionRoutes.GET("/patient/:patientId", middleware.RequirePermission(auth.PermViewRecords), prescriptionHandler.GetPrescriptionsForPatient)
			prescriptionRoutes.GET("/:id", middleware.RequirePermission(auth.PermViewRecords), prescriptionHandler.GetPrescription)
			prescriptionRoutes.POST("", middleware.RequirePermission(auth.PermAttendPatients), prescriptionHandler.CreatePrescription)
		}

		inventoryRoutes := private.Group("/inventory")
		inventoryRoutes.Use(middleware.RequirePermission(auth.PermManageInventory))
		{
			inventoryRoutes.GET("", inventoryHandler.ListItems)
			inventoryRoutes.POST("", inventoryHandler.CreateItem)
			inventoryRoutes.PUT("/:id", inventoryHandler.UpdateItem)
			inventoryRoutes.POST("/:id/movements", inventoryHandler.AddMovement)
			inventoryRoutes.GET("/:id/movements", inventoryHandler.ListMovements)
		}

		billingRoutes := private.Group("/billing")
		billingRoutes.Use(middleware.RequirePermission(auth.PermViewBilling))
		{
			billingRoutes.GET("/summary", billingHandler.GetSummary)
		}

		procedureRoutes := private.Group("/procedures")
		procedureRoutes.Use(middleware.RequirePermission(auth.PermManageProcedures))
		{
			procedureRoutes.GET("", billingHandler.ListProcedures)
			procedureRoutes.POST("", billingHandler.CreateProcedure)
		}
	}

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})
}
