package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rangeroper/healthcare-scheduler/internal/clock"
	"github.com/rangeroper/healthcare-scheduler/internal/domain/records"
	"github.com/rangeroper/healthcare-scheduler/internal/httpresp"
	"github.com/rangeroper/healthcare-scheduler/internal/models"
	apptuc "github.com/rangeroper/healthcare-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentUseCases struct {
	Create   *apptuc.CreateAppointment
	Update   *apptuc.UpdateAppointment
	Status   *apptuc.ChangeAppointmentStatus
	Cancel   *apptuc.CancelAppointment
	Complete *apptuc.CompleteAppointment
	Delete   *apptuc.DeleteAppointment
	List     *apptuc.ListAppointments
	Month    *apptuc.ListAppointmentsByMonth
}

type AppointmentHandler struct {
	uc    AppointmentUseCases
	clock clock.Clock
	log   *zap.Logger
}

func NewAppointmentHandler(uc AppointmentUseCases, clock clock.Clock, log *zap.Logger) *AppointmentHandler {
	return &AppointmentHandler{uc: uc, clock: clock, log: log}
}

// ======================================================
// REQUESTS
// ======================================================

type AppointmentRequest struct {
	PatientID         string                   `json:"patientId" binding:"required"`
	ProviderID        string                   `json:"providerId" binding:"required"`
	AppointmentTypeID string                   `json:"appointmentTypeId" binding:"required"`
	Date              string                   `json:"date" binding:"required"`
	Time              string                   `json:"time" binding:"required"`
	Status            models.AppointmentStatus `json:"status"`
	Notes             string                   `json:"notes"`
}

func (r AppointmentRequest) input() apptuc.AppointmentInput {
	return apptuc.AppointmentInput{
		PatientID:         r.PatientID,
		ProviderID:        r.ProviderID,
		AppointmentTypeID: r.AppointmentTypeID,
		Date:              r.Date,
		Time:              r.Time,
		Status:            r.Status,
		Notes:             r.Notes,
	}
}

type StatusRequest struct {
	Status string `json:"status" binding:"required,apptstatus"`
}

type appointmentQuery struct {
	ProviderID string `form:"providerId"`
	PatientID  string `form:"patientId"`
	Date       string `form:"date" binding:"omitempty,isodate"`
	From       string `form:"from" binding:"omitempty,isodate"`
	To         string `form:"to" binding:"omitempty,isodate"`
	Status     string `form:"status" binding:"omitempty,apptstatus"`
	Details    bool   `form:"details"`
}

type calendarQuery struct {
	ProviderID string `form:"providerId"`
	Year       int    `form:"year"`
	Month      int    `form:"month"`
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	var q appointmentQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, "invalid_request")
		return
	}

	f := records.AppointmentFilter{
		ProviderID: q.ProviderID,
		PatientID:  q.PatientID,
		Date:       optionalDate(q.Date),
		From:       optionalDate(q.From),
		To:         optionalDate(q.To),
		Status:     models.AppointmentStatus(q.Status),
	}

	ctx := c.Request.Context()
	if q.Details {
		details, err := h.uc.List.Details(ctx, f)
		if err != nil {
			respondError(c, h.log, err, "appointment_not_found")
			return
		}
		httpresp.List(c, details)
		return
	}

	aps, err := h.uc.List.Execute(ctx, f)
	if err != nil {
		respondError(c, h.log, err, "appointment_not_found")
		return
	}
	httpresp.List(c, aps)
}

// Calendar groups one month by day. Year and month default to today's.
func (h *AppointmentHandler) Calendar(c *gin.Context) {
	var q calendarQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, "invalid_request")
		return
	}

	today := clock.Today(h.clock)
	if q.Year == 0 {
		q.Year = today.Year()
	}
	if q.Month == 0 {
		q.Month = int(today.Month())
	}

	cal, err := h.uc.Month.Execute(c.Request.Context(), q.ProviderID, q.Year, q.Month)
	if err != nil {
		respondError(c, h.log, err, "appointment_not_found")
		return
	}
	httpresp.OK(c, cal)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	aps, err := h.uc.List.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err, "appointment_not_found")
		return
	}
	httpresp.OK(c, aps)
}

// ======================================================
// CREATE / UPDATE / DELETE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid_request")
		return
	}

	ap, err := h.uc.Create.Execute(c.Request.Context(), req.input())
	if err != nil {
		respondError(c, h.log, err, "appointment_not_found")
		return
	}
	httpresp.Created(c, ap)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid_request")
		return
	}

	ap, err := h.uc.Update.Execute(c.Request.Context(), c.Param("id"), req.input())
	if err != nil {
		respondError(c, h.log, err, "appointment_not_found")
		return
	}
	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	ap, err := h.uc.Delete.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err, "appointment_not_found")
		return
	}
	httpresp.OK(c, ap)
}

// ======================================================
// STATUS
// ======================================================

func (h *AppointmentHandler) ChangeStatus(c *gin.Context) {
	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid_status")
		return
	}

	ap, err := h.uc.Status.Execute(c.Request.Context(), c.Param("id"), models.AppointmentStatus(req.Status))
	if err != nil {
		respondError(c, h.log, err, "appointment_not_found")
		return
	}
	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	ap, err := h.uc.Cancel.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err, "appointment_not_found")
		return
	}
	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	ap, err := h.uc.Complete.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err, "appointment_not_found")
		return
	}
	httpresp.OK(c, ap)
}
