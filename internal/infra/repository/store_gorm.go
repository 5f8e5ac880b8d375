package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/alanfo18/stcd/internal/access"
	"github.com/alanfo18/stcd/internal/audit"
	"github.com/alanfo18/stcd/internal/domain"
	"github.com/alanfo18/stcd/internal/domain/booking"
	"github.com/alanfo18/stcd/internal/domain/notification"
	"github.com/alanfo18/stcd/internal/domain/payment"
	"github.com/alanfo18/stcd/internal/domain/rating"
	"github.com/alanfo18/stcd/internal/domain/receipt"
	"github.com/alanfo18/stcd/internal/domain/report"
	"github.com/alanfo18/stcd/internal/domain/staff"
	"github.com/alanfo18/stcd/internal/domain/user"
)

// GormStore é o Domain Store sobre gorm (postgres em produção, sqlite em dev/testes).
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// translate converte o "não encontrado" do gorm para o erro do domínio.
func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}

func scoped(q *gorm.DB, scope access.Scope) *gorm.DB {
	if scope.All {
		return q
	}
	return q.Where("user_id = ?", scope.UserID)
}

func affected(res *gorm.DB) error {
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Compile-time check
var (
	_ booking.Repository                = (*GormStore)(nil)
	_ payment.Repository                = (*GormStore)(nil)
	_ staff.Repository                  = (*GormStore)(nil)
	_ rating.Repository                 = (*GormStore)(nil)
	_ user.Repository                   = (*GormStore)(nil)
	_ receipt.Repository                = (*GormStore)(nil)
	_ notification.Repository           = (*GormStore)(nil)
	_ notification.MessageLogRepository = (*GormStore)(nil)
	_ report.Repository                 = (*GormStore)(nil)
	_ audit.Store                       = (*GormStore)(nil)
	_ audit.Reader                      = (*GormStore)(nil)
)
