package appointment

import (
	"context"

	domain "github.com/rangeroper/healthcare-scheduler/internal/domain/appointment"
	"github.com/rangeroper/healthcare-scheduler/internal/infra/cache"
)

type GetAvailability struct {
	repo  Repository
	cache cache.AvailabilityCache
}

func NewGetAvailability(repo Repository, cache cache.AvailabilityCache) *GetAvailability {
	return &GetAvailability{repo: repo, cache: cache}
}

// Execute lists the open slots of a provider on one date.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]string, error) {

	provider, err := uc.repo.GetProvider(ctx, in.ProviderID)
	if err != nil {
		return nil, notFoundAs(err, "provider_not_found")
	}

	if slots, ok := uc.cache.Get(ctx, provider.ID, in.Date); ok {
		return slots, nil
	}

	existing, err := appointmentsOn(ctx, uc.repo, provider.ID, in.Date)
	if err != nil {
		return nil, err
	}

	slots, err := domain.ListAvailableSlots(*provider, in.Date, existing)
	if err != nil {
		return nil, err
	}

	uc.cache.Set(ctx, provider.ID, in.Date, slots)
	return slots, nil
}
