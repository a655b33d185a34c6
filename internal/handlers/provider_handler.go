package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rangeroper/healthcare-scheduler/internal/audit"
	"github.com/rangeroper/healthcare-scheduler/internal/clock"
	domain "github.com/rangeroper/healthcare-scheduler/internal/domain/appointment"
	"github.com/rangeroper/healthcare-scheduler/internal/domain/records"
	"github.com/rangeroper/healthcare-scheduler/internal/httpresp"
	"github.com/rangeroper/healthcare-scheduler/internal/infra/cache"
	"github.com/rangeroper/healthcare-scheduler/internal/models"
)

type ProviderHandler struct {
	store records.Providers
	cache cache.AvailabilityCache
	audit *audit.Dispatcher
	clock clock.Clock
	log   *zap.Logger
}

func NewProviderHandler(
	store records.Providers,
	cache cache.AvailabilityCache,
	audit *audit.Dispatcher,
	clock clock.Clock,
	log *zap.Logger,
) *ProviderHandler {
	return &ProviderHandler{store: store, cache: cache, audit: audit, clock: clock, log: log}
}

func (h *ProviderHandler) List(c *gin.Context) {
	providers, err := h.store.ListProviders(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err, "provider_not_found")
		return
	}
	httpresp.List(c, providers)
}

func (h *ProviderHandler) Get(c *gin.Context) {
	p, err := h.store.GetProvider(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err, "provider_not_found")
		return
	}
	httpresp.OK(c, p)
}

// bind decodes a provider and rejects schedules availability could not use.
func (h *ProviderHandler) bind(c *gin.Context) (*models.Provider, bool) {
	var p models.Provider
	if err := c.ShouldBindJSON(&p); err != nil {
		badRequest(c, "invalid_request")
		return nil, false
	}
	if _, err := domain.NewWorkingWindow(p.Schedule); err != nil {
		respondError(c, h.log, err, "provider_not_found")
		return nil, false
	}
	return &p, true
}

func (h *ProviderHandler) Create(c *gin.Context) {
	p, ok := h.bind(c)
	if !ok {
		return
	}

	if p.ID == "" {
		p.ID = models.NewID(models.PrefixProvider)
	}
	if p.Status == "" {
		p.Status = "Active"
	}
	if p.HireDate == "" {
		p.HireDate = clock.Today(h.clock).Format(time.DateOnly)
	}

	if err := h.store.CreateProvider(c.Request.Context(), p); err != nil {
		respondError(c, h.log, err, "provider_not_found")
		return
	}

	h.audit.Dispatch(audit.Event{Action: "provider_created", Entity: "provider", EntityID: p.ID})
	httpresp.Created(c, p)
}

func (h *ProviderHandler) Update(c *gin.Context) {
	p, ok := h.bind(c)
	if !ok {
		return
	}
	p.ID = c.Param("id")

	ctx := c.Request.Context()
	if err := h.store.UpdateProvider(ctx, p); err != nil {
		respondError(c, h.log, err, "provider_not_found")
		return
	}
	h.cache.InvalidateProvider(ctx, p.ID)

	h.audit.Dispatch(audit.Event{Action: "provider_updated", Entity: "provider", EntityID: p.ID})
	httpresp.OK(c, p)
}

func (h *ProviderHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	p, err := h.store.DeleteProvider(ctx, c.Param("id"))
	if err != nil {
		respondError(c, h.log, err, "provider_not_found")
		return
	}
	h.cache.InvalidateProvider(ctx, p.ID)

	h.audit.Dispatch(audit.Event{Action: "provider_deleted", Entity: "provider", EntityID: p.ID})
	httpresp.OK(c, p)
}
