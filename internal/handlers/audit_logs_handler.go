package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/alanfo18/stcd/internal/audit"
	"github.com/alanfo18/stcd/internal/httperr"
	"github.com/alanfo18/stcd/internal/httpresp"
	"github.com/alanfo18/stcd/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	reader audit.Reader
	tz     string
}

func NewAuditLogsHandler(reader audit.Reader, tz string) *AuditLogsHandler {
	return &AuditLogsHandler{reader: reader, tz: tz}
}

// List é restrito a admins pela rota.
func (h *AuditLogsHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	f := audit.Filter{
		Action:   c.Query("action"),
		Entity:   c.Query("entity"),
		Status:   c.Query("status"),
		Page:     page,
		PageSize: size,
	}

	// --------------------------------------------------
	// Filtros opcionais
	// --------------------------------------------------

	if v := c.Query("user_id"); v != "" {
		if id, err := strconv.ParseUint(v, 10, 64); err == nil {
			uid := uint(id)
			f.UserID = &uid
		}
	}

	if v := c.Query("from"); v != "" {
		if from, err := timezone.ParseDate(h.tz, v); err == nil {
			f.From = &from
		}
	}

	if v := c.Query("to"); v != "" {
		if to, err := timezone.ParseDate(h.tz, v); err == nil {
			end := to.Add(24 * time.Hour)
			f.To = &end
		}
	}

	logs, total, err := h.reader.ListAuditLogs(c.Request.Context(), f)
	if err != nil {
		httperr.Internal(c, "audit_list_failed", "Erro ao listar logs.")
		return
	}

	page, size = f.Bounds()
	httpresp.Page(c, logs, page, size, total)
}
