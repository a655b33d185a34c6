package appointment

import (
	"context"
	"time"

	"github.com/rangeroper/healthcare-scheduler/internal/domain/records"
	"github.com/rangeroper/healthcare-scheduler/internal/dto"
	"github.com/rangeroper/healthcare-scheduler/internal/httperr"
)

type ListAppointmentsByMonth struct {
	list *ListAppointments
}

func NewListAppointmentsByMonth(list *ListAppointments) *ListAppointmentsByMonth {
	return &ListAppointmentsByMonth{list: list}
}

// Execute groups a month of appointments by day. Days without
// appointments are omitted. An empty providerID covers every provider.
func (uc *ListAppointmentsByMonth) Execute(
	ctx context.Context,
	providerID string,
	year int,
	month int,
) (*dto.CalendarMonth, error) {

	if month < 1 || month > 12 {
		return nil, httperr.ErrBusinessf("invalid_month", "month %d out of range", month)
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)

	details, err := uc.list.Details(ctx, records.AppointmentFilter{
		ProviderID: providerID,
		From:       &start,
		To:         &end,
	})
	if err != nil {
		return nil, err
	}

	out := &dto.CalendarMonth{Year: year, Month: month, Days: []dto.CalendarDay{}}
	for _, d := range details {
		item := d.ListItem()
		last := len(out.Days) - 1
		if last < 0 || out.Days[last].Date != item.Date {
			out.Days = append(out.Days, dto.CalendarDay{Date: item.Date})
			last++
		}
		out.Days[last].Appointments = append(out.Days[last].Appointments, item)
	}

	return out, nil
}
