package appointment

import (
	"context"

	domain "github.com/rangeroper/healthcare-scheduler/internal/domain/appointment"
	"github.com/rangeroper/healthcare-scheduler/internal/httperr"
)

type CheckSlot struct {
	repo Repository
}

func NewCheckSlot(repo Repository) *CheckSlot {
	return &CheckSlot{repo: repo}
}

func (uc *CheckSlot) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
	slot string,
) (bool, error) {

	if _, err := domain.ParseTimeOfDay(slot); err != nil {
		return false, httperr.ErrBusinessf("invalid_time", "%v", err)
	}

	provider, err := uc.repo.GetProvider(ctx, in.ProviderID)
	if err != nil {
		return false, notFoundAs(err, "provider_not_found")
	}

	existing, err := appointmentsOn(ctx, uc.repo, provider.ID, in.Date)
	if err != nil {
		return false, err
	}

	return domain.IsSlotAvailable(*provider, in.Date, slot, existing)
}
