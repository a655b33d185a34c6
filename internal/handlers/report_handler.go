package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rangeroper/healthcare-scheduler/internal/httpresp"
	"github.com/rangeroper/healthcare-scheduler/internal/usecase/report"
)

type ReportHandler struct {
	summary *report.Summary
	log     *zap.Logger
}

func NewReportHandler(summary *report.Summary, log *zap.Logger) *ReportHandler {
	return &ReportHandler{summary: summary, log: log}
}

type summaryQuery struct {
	From       string `form:"from" binding:"omitempty,isodate"`
	To         string `form:"to" binding:"omitempty,isodate"`
	ProviderID string `form:"providerId"`
}

func (h *ReportHandler) Summary(c *gin.Context) {
	var q summaryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, "invalid_date")
		return
	}

	s, err := h.summary.Execute(c.Request.Context(), report.SummaryFilter{
		From:       optionalDate(q.From),
		To:         optionalDate(q.To),
		ProviderID: q.ProviderID,
	})
	if err != nil {
		respondError(c, h.log, err, "provider_not_found")
		return
	}
	httpresp.OK(c, s)
}
