package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/alanfo18/stcd/internal/models"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

type Store interface {
	CreateAuditLog(ctx context.Context, l *models.AuditLog) error
}

type Filter struct {
	UserID   *uint
	Action   string
	Entity   string
	Status   string
	From     *time.Time
	To       *time.Time
	Page     int
	PageSize int
}

// Bounds devolve página e tamanho válidos: página ≥ 1, tamanho 1..100 (padrão 20).
func (f Filter) Bounds() (page, size int) {
	page, size = f.Page, f.PageSize
	if page < 1 {
		page = 1
	}
	if size <= 0 || size > 100 {
		size = 20
	}
	return page, size
}

type Reader interface {
	ListAuditLogs(ctx context.Context, f Filter) ([]models.AuditLog, int64, error)
}

type Logger struct {
	store Store
}

func New(store Store) *Logger {
	return &Logger{store: store}
}

func (l *Logger) Log(ctx context.Context, ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	entry := models.AuditLog{
		UserID:      ev.UserID,
		Action:      ev.Action,
		Entity:      ev.Entity,
		EntityID:    ev.EntityID,
		Description: ev.Description,
		Metadata:    metaJSON,
		IPAddress:   ev.IPAddress,
		UserAgent:   ev.UserAgent,
		Status:      StatusSuccess,
	}
	if ev.Err != nil {
		entry.Status = StatusError
		entry.ErrorMessage = ev.Err.Error()
	}

	return l.store.CreateAuditLog(ctx, &entry)
}
