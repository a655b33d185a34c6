package report

import (
	"context"
	"sort"
	"time"

	"github.com/rangeroper/healthcare-scheduler/internal/domain/records"
	"github.com/rangeroper/healthcare-scheduler/internal/dto"
	"github.com/rangeroper/healthcare-scheduler/internal/models"
)

const topN = 5

// DetailsLister yields appointments joined with their references.
type DetailsLister interface {
	Details(ctx context.Context, f records.AppointmentFilter) ([]dto.AppointmentDetails, error)
}

type SummaryFilter struct {
	From       *time.Time
	To         *time.Time
	ProviderID string
}

type Summary struct {
	list DetailsLister
}

func NewSummary(list DetailsLister) *Summary {
	return &Summary{list: list}
}

func (uc *Summary) Execute(ctx context.Context, f SummaryFilter) (*dto.ReportSummary, error) {
	details, err := uc.list.Details(ctx, records.AppointmentFilter{
		ProviderID: f.ProviderID,
		From:       f.From,
		To:         f.To,
	})
	if err != nil {
		return nil, err
	}
	return Summarize(details), nil
}

// Summarize computes counts, revenue and rankings. Revenue only counts
// completed appointments.
func Summarize(details []dto.AppointmentDetails) *dto.ReportSummary {
	out := &dto.ReportSummary{TotalAppointments: len(details)}

	providers := newRanking()
	types := newRanking()

	for _, d := range details {
		var revenue float64

		switch d.Status {
		case models.StatusScheduled:
			out.Scheduled++
		case models.StatusCompleted:
			out.Completed++
			revenue = d.AppointmentType.Cost
			out.TotalRevenue += revenue
		case models.StatusCancelled:
			out.Cancelled++
		}

		providers.add(d.Provider.ID, d.Provider.DisplayName(), revenue)
		types.add(d.AppointmentType.ID, d.AppointmentType.Name, revenue)
	}

	if out.Completed > 0 {
		out.AverageValue = out.TotalRevenue / float64(out.Completed)
	}
	if out.TotalAppointments > 0 {
		total := float64(out.TotalAppointments)
		out.CancellationRate = float64(out.Cancelled) / total * 100
		out.CompletionRate = float64(out.Completed) / total * 100
	}

	out.TopProviders = providers.top(topN)
	out.TopAppointmentTypes = types.top(topN)
	return out
}

type ranking struct {
	order []string
	items map[string]*dto.RankedItem
}

func newRanking() *ranking {
	return &ranking{items: map[string]*dto.RankedItem{}}
}

func (r *ranking) add(id, name string, revenue float64) {
	it, ok := r.items[id]
	if !ok {
		it = &dto.RankedItem{ID: id, Name: name}
		r.items[id] = it
		r.order = append(r.order, id)
	}
	it.Count++
	it.Revenue += revenue
}

// top returns the n highest counts. Ties keep first-seen order.
func (r *ranking) top(n int) []dto.RankedItem {
	out := make([]dto.RankedItem, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.items[id])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
