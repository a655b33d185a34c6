package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rangeroper/healthcare-scheduler/internal/clock"
	domain "github.com/rangeroper/healthcare-scheduler/internal/domain/appointment"
	"github.com/rangeroper/healthcare-scheduler/internal/httpresp"
	apptuc "github.com/rangeroper/healthcare-scheduler/internal/usecase/appointment"
)

type AvailabilityHandler struct {
	get   *apptuc.GetAvailability
	check *apptuc.CheckSlot
	clock clock.Clock
	log   *zap.Logger
}

func NewAvailabilityHandler(
	get *apptuc.GetAvailability,
	check *apptuc.CheckSlot,
	clock clock.Clock,
	log *zap.Logger,
) *AvailabilityHandler {
	return &AvailabilityHandler{get: get, check: check, clock: clock, log: log}
}

type AvailabilityResponse struct {
	ProviderID string   `json:"providerId"`
	Date       string   `json:"date"`
	Slots      []string `json:"slots"`
}

type SlotCheckResponse struct {
	ProviderID string `json:"providerId"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Available  bool   `json:"available"`
}

// input reads :id and ?date=, defaulting the date to today.
func (h *AvailabilityHandler) input(c *gin.Context) (domain.AvailabilityInput, bool) {
	in := domain.AvailabilityInput{ProviderID: c.Param("id"), Date: clock.Today(h.clock)}

	if s := c.Query("date"); s != "" {
		d, err := clock.ParseDate(s)
		if err != nil {
			badRequest(c, "invalid_date")
			return in, false
		}
		in.Date = d
	}
	return in, true
}

func (h *AvailabilityHandler) Slots(c *gin.Context) {
	in, ok := h.input(c)
	if !ok {
		return
	}

	slots, err := h.get.Execute(c.Request.Context(), in)
	if err != nil {
		respondError(c, h.log, err, "provider_not_found")
		return
	}

	httpresp.OK(c, AvailabilityResponse{
		ProviderID: in.ProviderID,
		Date:       in.Date.Format(time.DateOnly),
		Slots:      slots,
	})
}

func (h *AvailabilityHandler) Check(c *gin.Context) {
	in, ok := h.input(c)
	if !ok {
		return
	}
	slot := c.Query("time")

	available, err := h.check.Execute(c.Request.Context(), in, slot)
	if err != nil {
		respondError(c, h.log, err, "provider_not_found")
		return
	}

	httpresp.OK(c, SlotCheckResponse{
		ProviderID: in.ProviderID,
		Date:       in.Date.Format(time.DateOnly),
		Time:       slot,
		Available:  available,
	})
}
