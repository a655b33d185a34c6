package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rangeroper/healthcare-scheduler/internal/audit"
	"github.com/rangeroper/healthcare-scheduler/internal/clock"
	"github.com/rangeroper/healthcare-scheduler/internal/domain/records"
	"github.com/rangeroper/healthcare-scheduler/internal/handlers"
	"github.com/rangeroper/healthcare-scheduler/internal/infra/cache"
	"github.com/rangeroper/healthcare-scheduler/internal/middleware"
	ucAppointment "github.com/rangeroper/healthcare-scheduler/internal/usecase/appointment"
	ucReport "github.com/rangeroper/healthcare-scheduler/internal/usecase/report"
	"github.com/rangeroper/healthcare-scheduler/internal/validators"
)

type Deps struct {
	Store records.Store
	Cache cache.AvailabilityCache
	Audit *audit.Dispatcher
	Clock clock.Clock
	Log   *zap.Logger

	CORSOrigins     []string
	RateLimitPerMin int
}

// New builds an engine with the global middleware and every route.
func New(d Deps) (*gin.Engine, error) {
	if err := validators.RegisterGin(); err != nil {
		return nil, err
	}

	r := gin.New()

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(d.Log))
	r.Use(middleware.RequestLogger(d.Log))
	r.Use(middleware.CORSMiddleware(d.CORSOrigins))
	if d.RateLimitPerMin > 0 {
		r.Use(middleware.RateLimit(d.RateLimitPerMin, d.Log))
	}

	RegisterRoutes(r, d)
	return r, nil
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// USE CASES - APPOINTMENTS
	// ======================================================
	statusUC := ucAppointment.NewChangeAppointmentStatus(d.Store, d.Cache, d.Audit, d.Clock)
	listUC := ucAppointment.NewListAppointments(d.Store)

	appointmentUCs := handlers.AppointmentUseCases{
		Create:   ucAppointment.NewCreateAppointment(d.Store, d.Cache, d.Audit, d.Clock),
		Update:   ucAppointment.NewUpdateAppointment(d.Store, d.Cache, d.Audit, d.Clock),
		Status:   statusUC,
		Cancel:   ucAppointment.NewCancelAppointment(statusUC),
		Complete: ucAppointment.NewCompleteAppointment(statusUC),
		Delete:   ucAppointment.NewDeleteAppointment(d.Store, d.Cache, d.Audit),
		List:     listUC,
		Month:    ucAppointment.NewListAppointmentsByMonth(listUC),
	}

	// ======================================================
	// HANDLERS
	// ======================================================
	patientHandler := handlers.NewPatientHandler(d.Store, d.Audit, d.Clock, d.Log)
	providerHandler := handlers.NewProviderHandler(d.Store, d.Cache, d.Audit, d.Clock, d.Log)
	scheduleHandler := handlers.NewWorkingHoursHandler(d.Store, d.Cache, d.Audit, d.Log)
	typeHandler := handlers.NewAppointmentTypeHandler(d.Store, d.Audit, d.Log)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentUCs, d.Clock, d.Log)
	availabilityHandler := handlers.NewAvailabilityHandler(
		ucAppointment.NewGetAvailability(d.Store, d.Cache),
		ucAppointment.NewCheckSlot(d.Store),
		d.Clock,
		d.Log,
	)
	reportHandler := handlers.NewReportHandler(ucReport.NewSummary(listUC), d.Log)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.Store, d.Log)

	// ======================================================
	// HEALTH
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	// ======================================================
	// PATIENTS
	// ======================================================
	patients := api.Group("/patients")
	{
		patients.GET("", patientHandler.List)
		patients.POST("", patientHandler.Create)
		patients.GET("/:id", patientHandler.Get)
		patients.PUT("/:id", patientHandler.Update)
		patients.DELETE("/:id", patientHandler.Delete)
	}

	// ======================================================
	// PROVIDERS + AVAILABILITY
	// ======================================================
	providers := api.Group("/providers")
	{
		providers.GET("", providerHandler.List)
		providers.POST("", providerHandler.Create)
		providers.GET("/:id", providerHandler.Get)
		providers.PUT("/:id", providerHandler.Update)
		providers.DELETE("/:id", providerHandler.Delete)

		providers.GET("/:id/schedule", scheduleHandler.Get)
		providers.PUT("/:id/schedule", scheduleHandler.Update)
		providers.GET("/:id/availability", availabilityHandler.Slots)
		providers.GET("/:id/availability/check", availabilityHandler.Check)
	}

	// ======================================================
	// APPOINTMENT TYPES
	// ======================================================
	types := api.Group("/appointment-types")
	{
		types.GET("", typeHandler.List)
		types.POST("", typeHandler.Create)
		types.GET("/:id", typeHandler.Get)
	}

	// ======================================================
	// APPOINTMENTS
	// ======================================================
	appointments := api.Group("/appointments")
	{
		appointments.GET("", appointmentHandler.List)
		appointments.POST("", appointmentHandler.Create)
		appointments.GET("/calendar", appointmentHandler.Calendar)
		appointments.GET("/:id", appointmentHandler.Get)
		appointments.PUT("/:id", appointmentHandler.Update)
		appointments.DELETE("/:id", appointmentHandler.Delete)
		appointments.PATCH("/:id/status", appointmentHandler.ChangeStatus)
		appointments.PATCH("/:id/cancel", appointmentHandler.Cancel)
		appointments.PATCH("/:id/complete", appointmentHandler.Complete)
	}

	// ======================================================
	// REPORTS + AUDIT
	// ======================================================
	api.GET("/reports/summary", reportHandler.Summary)
	api.GET("/audit-logs", auditLogsHandler.List)
}
