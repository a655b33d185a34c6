package audit

import (
	"context"

	"go.uber.org/zap"

	"github.com/rangeroper/healthcare-scheduler/internal/clock"
	"github.com/rangeroper/healthcare-scheduler/internal/domain/records"
	"github.com/rangeroper/healthcare-scheduler/internal/models"
)

type Logger struct {
	store records.AuditLogs
	clock clock.Clock
	log   *zap.Logger
}

func New(store records.AuditLogs, c clock.Clock, log *zap.Logger) *Logger {
	return &Logger{store: store, clock: c, log: log}
}

func (l *Logger) Log(ctx context.Context, ev Event) error {
	entry := models.AuditLog{
		ID:        models.NewID(models.PrefixAuditLog),
		Action:    ev.Action,
		Entity:    ev.Entity,
		EntityID:  ev.EntityID,
		Metadata:  ev.Metadata,
		CreatedAt: l.clock.Now(),
	}

	l.log.Info("audit",
		zap.String("action", entry.Action),
		zap.String("entity", entry.Entity),
		zap.String("entity_id", entry.EntityID),
		zap.Any("metadata", entry.Metadata),
	)

	return l.store.AppendAuditLog(ctx, &entry)
}
