package models

type AppointmentType struct {
	ID          string  `json:"id" gorm:"primaryKey;size:64"`
	Name        string  `json:"name" binding:"required"`
	Duration    int     `json:"duration" binding:"gte=0"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Cost        float64 `json:"cost" binding:"gte=0"`
}
