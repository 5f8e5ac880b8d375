package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/alanfo18/stcd/internal/httperr"
	"github.com/alanfo18/stcd/internal/httpresp"
	"github.com/alanfo18/stcd/internal/middleware"
	ucReport "github.com/alanfo18/stcd/internal/usecase/report"
)

type ReportHandler struct {
	summary *ucReport.BuildSummary
}

func NewReportHandler(summary *ucReport.BuildSummary) *ReportHandler {
	return &ReportHandler{summary: summary}
}

func (h *ReportHandler) Summary(c *gin.Context) {
	s, err := h.summary.Execute(c.Request.Context(), middleware.Actor(c))
	if err != nil {
		httperr.FromError(c, err, "failed_to_build_report")
		return
	}
	httpresp.OK(c, s)
}
