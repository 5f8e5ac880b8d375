package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/alanfo18/stcd/internal/domain"
	"github.com/alanfo18/stcd/internal/domain/notification"
	"github.com/alanfo18/stcd/internal/httperr"
	"github.com/alanfo18/stcd/internal/httpresp"
	"github.com/alanfo18/stcd/internal/middleware"
)

// ======================================================
// HANDLER
// ======================================================

type NotificationHandler struct {
	notes notification.Repository
	logs  notification.MessageLogRepository
}

func NewNotificationHandler(
	notes notification.Repository,
	logs notification.MessageLogRepository,
) *NotificationHandler {
	return &NotificationHandler{notes: notes, logs: logs}
}

func (h *NotificationHandler) List(c *gin.Context) {
	unreadOnly := c.Query("unread") == "true"

	list, err := h.notes.ListNotifications(c.Request.Context(), middleware.Actor(c).Scope(), unreadOnly)
	if err != nil {
		httperr.FromError(c, err, "failed_to_list_notifications")
		return
	}
	httpresp.List(c, list)
}

func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	n, err := h.notes.CountUnreadNotifications(c.Request.Context(), middleware.Actor(c).Scope())
	if err != nil {
		httperr.FromError(c, err, "failed_to_count_notifications")
		return
	}
	httpresp.OK(c, gin.H{"unread": n})
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	note, err := h.notes.GetNotification(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		httperr.FromError(c, httperr.ErrNotFound("notification_not_found"), "")
		return
	}
	if err != nil {
		httperr.FromError(c, err, "failed_to_get_notification")
		return
	}
	if !middleware.Actor(c).Scope().Owns(note.UserID) {
		httperr.FromError(c, httperr.ErrForbidden("forbidden"), "")
		return
	}

	if err := h.notes.MarkNotificationRead(ctx, id); err != nil {
		httperr.FromError(c, err, "failed_to_mark_notification")
		return
	}

	note.Read = true
	httpresp.OK(c, note)
}

// --------------------------------------------------
// Log de mensagens WhatsApp (admin)
// --------------------------------------------------

func (h *NotificationHandler) MessageLogs(c *gin.Context) {
	filter := notification.MessageLogFilter{Status: c.Query("status")}

	if v := c.Query("booking_id"); v != "" {
		if id, err := strconv.ParseUint(v, 10, 64); err == nil {
			bid := uint(id)
			filter.BookingID = &bid
		}
	}
	if v := c.Query("payment_id"); v != "" {
		if id, err := strconv.ParseUint(v, 10, 64); err == nil {
			pid := uint(id)
			filter.PaymentID = &pid
		}
	}
	if v, err := strconv.Atoi(c.Query("limit")); err == nil {
		filter.Limit = v
	}

	logs, err := h.logs.ListMessageLogs(c.Request.Context(), filter)
	if err != nil {
		httperr.FromError(c, err, "failed_to_list_message_logs")
		return
	}
	httpresp.List(c, logs)
}
