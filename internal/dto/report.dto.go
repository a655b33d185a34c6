package dto

type RankedItem struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

type ReportSummary struct {
	TotalAppointments   int          `json:"totalAppointments"`
	Scheduled           int          `json:"scheduled"`
	Completed           int          `json:"completed"`
	Cancelled           int          `json:"cancelled"`
	TotalRevenue        float64      `json:"totalRevenue"`
	AverageValue        float64      `json:"averageValue"`
	CancellationRate    float64      `json:"cancellationRate"`
	CompletionRate      float64      `json:"completionRate"`
	TopProviders        []RankedItem `json:"topProviders"`
	TopAppointmentTypes []RankedItem `json:"topAppointmentTypes"`
}
