package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rangeroper/healthcare-scheduler/internal/audit"
	domain "github.com/rangeroper/healthcare-scheduler/internal/domain/appointment"
	"github.com/rangeroper/healthcare-scheduler/internal/domain/records"
	"github.com/rangeroper/healthcare-scheduler/internal/httpresp"
	"github.com/rangeroper/healthcare-scheduler/internal/infra/cache"
	"github.com/rangeroper/healthcare-scheduler/internal/models"
)

// WorkingHoursHandler reads and replaces only the schedule of a provider.
type WorkingHoursHandler struct {
	store records.Providers
	cache cache.AvailabilityCache
	audit *audit.Dispatcher
	log   *zap.Logger
}

func NewWorkingHoursHandler(
	store records.Providers,
	cache cache.AvailabilityCache,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *WorkingHoursHandler {
	return &WorkingHoursHandler{store: store, cache: cache, audit: audit, log: log}
}

func (h *WorkingHoursHandler) Get(c *gin.Context) {
	p, err := h.store.GetProvider(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err, "provider_not_found")
		return
	}
	httpresp.OK(c, p.Schedule)
}

func (h *WorkingHoursHandler) Update(c *gin.Context) {
	var s models.Schedule
	if err := c.ShouldBindJSON(&s); err != nil {
		badRequest(c, "invalid_request")
		return
	}
	if _, err := domain.NewWorkingWindow(s); err != nil {
		respondError(c, h.log, err, "provider_not_found")
		return
	}

	ctx := c.Request.Context()
	p, err := h.store.GetProvider(ctx, c.Param("id"))
	if err != nil {
		respondError(c, h.log, err, "provider_not_found")
		return
	}

	p.Schedule = s
	if err := h.store.UpdateProvider(ctx, p); err != nil {
		respondError(c, h.log, err, "provider_not_found")
		return
	}
	h.cache.InvalidateProvider(ctx, p.ID)

	h.audit.Dispatch(audit.Event{
		Action:   "provider_schedule_updated",
		Entity:   "provider",
		EntityID: p.ID,
		Metadata: map[string]any{
			"workingDays":  s.WorkingDays,
			"workingHours": s.WorkingHours.Start + "-" + s.WorkingHours.End,
		},
	})
	httpresp.OK(c, s)
}
