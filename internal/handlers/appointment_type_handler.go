package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rangeroper/healthcare-scheduler/internal/audit"
	"github.com/rangeroper/healthcare-scheduler/internal/domain/records"
	"github.com/rangeroper/healthcare-scheduler/internal/httpresp"
	"github.com/rangeroper/healthcare-scheduler/internal/models"
)

type AppointmentTypeHandler struct {
	store records.AppointmentTypes
	audit *audit.Dispatcher
	log   *zap.Logger
}

func NewAppointmentTypeHandler(
	store records.AppointmentTypes,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *AppointmentTypeHandler {
	return &AppointmentTypeHandler{store: store, audit: audit, log: log}
}

func (h *AppointmentTypeHandler) List(c *gin.Context) {
	types, err := h.store.ListAppointmentTypes(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err, "appointment_type_not_found")
		return
	}
	httpresp.List(c, types)
}

func (h *AppointmentTypeHandler) Get(c *gin.Context) {
	t, err := h.store.GetAppointmentType(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err, "appointment_type_not_found")
		return
	}
	httpresp.OK(c, t)
}

func (h *AppointmentTypeHandler) Create(c *gin.Context) {
	var t models.AppointmentType
	if err := c.ShouldBindJSON(&t); err != nil {
		badRequest(c, "invalid_request")
		return
	}
	if t.ID == "" {
		t.ID = models.NewID(models.PrefixAppointmentType)
	}

	if err := h.store.CreateAppointmentType(c.Request.Context(), &t); err != nil {
		respondError(c, h.log, err, "appointment_type_not_found")
		return
	}

	h.audit.Dispatch(audit.Event{Action: "appointment_type_created", Entity: "appointment_type", EntityID: t.ID})
	httpresp.Created(c, t)
}
