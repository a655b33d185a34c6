package models

import "time"

type AuditLog struct {
	ID        string         `json:"id" gorm:"primaryKey;size:64"`
	Action    string         `json:"action" gorm:"index;size:64"`
	Entity    string         `json:"entity" gorm:"index;size:64"`
	EntityID  string         `json:"entityId,omitempty" gorm:"size:64"`
	Metadata  map[string]any `json:"metadata,omitempty" gorm:"serializer:json"`
	CreatedAt time.Time      `json:"createdAt" gorm:"index"`
}
