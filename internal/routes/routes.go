package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Harika-001-tech/prenatal-app/internal/audit"
	"github.com/Harika-001-tech/prenatal-app/internal/config"
	domain "github.com/Harika-001-tech/prenatal-app/internal/domain/appointment"
	"github.com/Harika-001-tech/prenatal-app/internal/handlers"
	"github.com/Harika-001-tech/prenatal-app/internal/lock"
	"github.com/Harika-001-tech/prenatal-app/internal/logger"
	"github.com/Harika-001-tech/prenatal-app/internal/middleware"
	ucAppointment "github.com/Harika-001-tech/prenatal-app/internal/usecase/appointment"
	ucDoctor "github.com/Harika-001-tech/prenatal-app/internal/usecase/doctor"
)

// Deps are the long-lived collaborators built in main.
type Deps struct {
	Config   *config.Config
	Location *time.Location
	Log      zerolog.Logger

	Repo        domain.Repository
	Locker      lock.Locker
	Audit       *audit.Dispatcher
	AuditReader audit.Reader
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestLogger(logger.Module(d.Log, "http")))
	r.Use(middleware.CORSMiddleware(d.Config.CORSAllowedOrigins))

	// ======================================================
	// 🧠 USE CASES: APPOINTMENTS
	// ======================================================
	availabilityUC := ucAppointment.NewGetAvailability(d.Repo, d.Location)

	admission := ucAppointment.NewAdmission(
		d.Repo,
		availabilityUC,
		d.Locker,
		d.Config.LockTimeout,
	)

	bookAppointmentUC := ucAppointment.NewBookAppointment(
		admission,
		d.Audit,
		logger.Module(d.Log, "booking"),
	)

	rescheduleAppointmentUC := ucAppointment.NewRescheduleAppointment(
		admission,
		d.Audit,
		logger.Module(d.Log, "booking"),
	)

	cancelAppointmentUC := ucAppointment.NewCancelAppointment(
		d.Repo,
		d.Audit,
	)

	getAppointmentUC := ucAppointment.NewGetAppointment(d.Repo)

	listAppointmentsByDateUC := ucAppointment.NewListAppointmentsByDate(
		d.Repo,
		d.Location,
	)

	listAppointmentsByMonthUC := ucAppointment.NewListAppointmentsByMonth(
		d.Repo,
		d.Location,
	)

	// ======================================================
	// 🧠 USE CASES: DOCTORS
	// ======================================================
	registerDoctorUC := ucDoctor.NewRegisterDoctor(d.Repo, d.Audit)
	getDoctorUC := ucDoctor.NewGetDoctor(d.Repo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	appointmentHandler := handlers.NewAppointmentHandler(
		availabilityUC,
		bookAppointmentUC,
		getAppointmentUC,
		rescheduleAppointmentUC,
		cancelAppointmentUC,
		listAppointmentsByDateUC,
		listAppointmentsByMonthUC,
	)

	doctorHandler := handlers.NewDoctorHandler(registerDoctorUC, getDoctorUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.AuditReader, d.Location)
	healthHandler := handlers.NewHealthHandler(d.Repo)

	// ======================================================
	// ❤️ HEALTH
	// ======================================================
	r.GET("/health", healthHandler.Live)
	r.GET("/ready", healthHandler.Ready)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// DOCTORS
		// ------------------------------
		api.POST("/doctors", doctorHandler.Create)
		api.GET("/doctors/:id", doctorHandler.Get)
		api.GET("/doctors/:id/availability", appointmentHandler.Availability)
		api.GET("/doctors/:id/appointments", appointmentHandler.ListByDate)
		api.GET("/doctors/:id/appointments/month", appointmentHandler.ListByMonth)

		// ------------------------------
		// APPOINTMENTS
		// ------------------------------
		api.POST("/appointments", appointmentHandler.Create)
		api.GET("/appointments/:id", appointmentHandler.Get)
		api.PATCH("/appointments/:id", appointmentHandler.Reschedule)
		api.DELETE("/appointments/:id", appointmentHandler.Cancel)

		if d.AuditReader != nil {
			api.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
