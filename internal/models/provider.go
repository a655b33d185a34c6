package models

import "strings"

type ProviderPersonalInfo struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Title     string `json:"title"`
	Email     string `json:"email" binding:"omitempty,email"`
	Phone     string `json:"phone"`
}

type ProfessionalInfo struct {
	Specialty       string   `json:"specialty"`
	Credentials     []string `json:"credentials"`
	LicenseNumber   string   `json:"licenseNumber"`
	Department      string   `json:"department"`
	YearsExperience int      `json:"yearsExperience" binding:"gte=0"`
	Education       string   `json:"education"`
}

// TimeRange is a half-open [Start, End) interval of HH:MM wall-clock times.
type TimeRange struct {
	Start string `json:"start" binding:"omitempty,hhmm"`
	End   string `json:"end" binding:"omitempty,hhmm"`
}

type Schedule struct {
	WorkingDays  []string  `json:"workingDays" binding:"dive,weekday"`
	WorkingHours TimeRange `json:"workingHours"`
	LunchBreak   TimeRange `json:"lunchBreak"`
}

type Provider struct {
	ID               string               `json:"id" gorm:"primaryKey;size:64"`
	PersonalInfo     ProviderPersonalInfo `json:"personalInfo" gorm:"serializer:json"`
	ProfessionalInfo ProfessionalInfo     `json:"professionalInfo" gorm:"serializer:json"`
	Schedule         Schedule             `json:"schedule" gorm:"serializer:json"`
	Status           string               `json:"status"`
	HireDate         string               `json:"hireDate"`
}

// DisplayName renders "Title First Last", skipping an empty title.
func (p Provider) DisplayName() string {
	parts := []string{p.PersonalInfo.Title, p.PersonalInfo.FirstName, p.PersonalInfo.LastName}
	out := parts[:0]
	for _, s := range parts {
		if s != "" {
			out = append(out, s)
		}
	}
	return strings.Join(out, " ")
}
