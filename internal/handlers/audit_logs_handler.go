package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rangeroper/healthcare-scheduler/internal/domain/records"
	"github.com/rangeroper/healthcare-scheduler/internal/httpresp"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	store records.AuditLogs
	log   *zap.Logger
}

func NewAuditLogsHandler(store records.AuditLogs, log *zap.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{store: store, log: log}
}

type auditQuery struct {
	Action string `form:"action"`
	Entity string `form:"entity"`
	From   string `form:"from" binding:"omitempty,isodate"`
	To     string `form:"to" binding:"omitempty,isodate"`
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
}

// List returns audit entries newest first, paginated.
func (h *AuditLogsHandler) List(c *gin.Context) {
	var q auditQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, "invalid_request")
		return
	}

	f := records.AuditFilter{
		Action: q.Action,
		Entity: q.Entity,
		From:   optionalDate(q.From),
		To:     optionalDate(q.To),
		Page:   q.Page,
		Limit:  q.Limit,
	}.Normalize()

	logs, total, err := h.store.ListAuditLogs(c.Request.Context(), f)
	if err != nil {
		respondError(c, h.log, err, "not_found")
		return
	}

	httpresp.Page(c, logs, total, f.Page, f.Limit)
}
