package handlers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rangeroper/healthcare-scheduler/internal/audit"
	"github.com/rangeroper/healthcare-scheduler/internal/clock"
	"github.com/rangeroper/healthcare-scheduler/internal/domain/records"
	"github.com/rangeroper/healthcare-scheduler/internal/httpresp"
	"github.com/rangeroper/healthcare-scheduler/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type PatientHandler struct {
	store records.Patients
	audit *audit.Dispatcher
	clock clock.Clock
	log   *zap.Logger
}

func NewPatientHandler(
	store records.Patients,
	audit *audit.Dispatcher,
	clock clock.Clock,
	log *zap.Logger,
) *PatientHandler {
	return &PatientHandler{store: store, audit: audit, clock: clock, log: log}
}

// ======================================================
// LIST / GET
// ======================================================

// List accepts ?query= to match name, email or phone, case-insensitively.
func (h *PatientHandler) List(c *gin.Context) {
	patients, err := h.store.ListPatients(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err, "patient_not_found")
		return
	}

	query := strings.ToLower(strings.TrimSpace(c.Query("query")))
	if query == "" {
		httpresp.List(c, patients)
		return
	}

	matched := make([]models.Patient, 0, len(patients))
	for _, p := range patients {
		info := p.PersonalInfo
		if strings.Contains(strings.ToLower(p.FullName()), query) ||
			strings.Contains(strings.ToLower(info.Email), query) ||
			strings.Contains(info.Phone, query) {
			matched = append(matched, p)
		}
	}
	httpresp.List(c, matched)
}

func (h *PatientHandler) Get(c *gin.Context) {
	p, err := h.store.GetPatient(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err, "patient_not_found")
		return
	}
	httpresp.OK(c, p)
}

// ======================================================
// CREATE
// ======================================================

func (h *PatientHandler) Create(c *gin.Context) {
	var p models.Patient
	if err := c.ShouldBindJSON(&p); err != nil {
		badRequest(c, "invalid_request")
		return
	}

	if p.ID == "" {
		p.ID = models.NewID(models.PrefixPatient)
	}
	if p.Status == "" {
		p.Status = "Active"
	}
	if p.RegistrationDate == "" {
		p.RegistrationDate = clock.Today(h.clock).Format(time.DateOnly)
	}

	if err := h.store.CreatePatient(c.Request.Context(), &p); err != nil {
		respondError(c, h.log, err, "patient_not_found")
		return
	}

	h.audit.Dispatch(audit.Event{Action: "patient_created", Entity: "patient", EntityID: p.ID})
	httpresp.Created(c, p)
}

// ======================================================
// UPDATE (full replace)
// ======================================================

func (h *PatientHandler) Update(c *gin.Context) {
	var p models.Patient
	if err := c.ShouldBindJSON(&p); err != nil {
		badRequest(c, "invalid_request")
		return
	}
	p.ID = c.Param("id")

	if err := h.store.UpdatePatient(c.Request.Context(), &p); err != nil {
		respondError(c, h.log, err, "patient_not_found")
		return
	}

	h.audit.Dispatch(audit.Event{Action: "patient_updated", Entity: "patient", EntityID: p.ID})
	httpresp.OK(c, p)
}

// ======================================================
// DELETE
// ======================================================

func (h *PatientHandler) Delete(c *gin.Context) {
	p, err := h.store.DeletePatient(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err, "patient_not_found")
		return
	}

	h.audit.Dispatch(audit.Event{Action: "patient_deleted", Entity: "patient", EntityID: p.ID})
	httpresp.OK(c, p)
}
