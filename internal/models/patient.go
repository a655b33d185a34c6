package models

type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
}

type EmergencyContact struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	Phone        string `json:"phone"`
}

type PatientPersonalInfo struct {
	FirstName   string  `json:"firstName" binding:"required"`
	LastName    string  `json:"lastName" binding:"required"`
	Email       string  `json:"email" binding:"omitempty,email"`
	Phone       string  `json:"phone"`
	DateOfBirth string  `json:"dateOfBirth" binding:"omitempty,isodate"`
	Gender      string  `json:"gender"`
	Address     Address `json:"address"`
}

type PatientMedicalInfo struct {
	InsuranceProvider string           `json:"insuranceProvider"`
	InsuranceID       string           `json:"insuranceId"`
	EmergencyContact  EmergencyContact `json:"emergencyContact"`
	Allergies         []string         `json:"allergies"`
	Medications       []string         `json:"medications"`
	MedicalHistory    []string         `json:"medicalHistory"`
}

type Patient struct {
	ID               string              `json:"id" gorm:"primaryKey;size:64"`
	PersonalInfo     PatientPersonalInfo `json:"personalInfo" gorm:"serializer:json"`
	MedicalInfo      PatientMedicalInfo  `json:"medicalInfo" gorm:"serializer:json"`
	Status           string              `json:"status"`
	RegistrationDate string              `json:"registrationDate"`
}

func (p Patient) FullName() string {
	return p.PersonalInfo.FirstName + " " + p.PersonalInfo.LastName
}
