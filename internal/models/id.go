package models

import "github.com/google/uuid"

const (
	PrefixAppointment     = "APT"
	PrefixPatient         = "PAT"
	PrefixProvider        = "PROV"
	PrefixAppointmentType = "TYPE"
	PrefixAuditLog        = "AUD"
)

func NewID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}
