package repository

import (
	"context"

	"github.com/rs/zerolog/log"

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
	"github.com/alanfo18/stcd/internal/models"
)

// NoopStore atende quando não há banco configurado: leituras vêm vazias
// (ou domain.ErrNotFound) e escritas são descartadas com um aviso.
type NoopStore struct{}

func NewNoopStore() *NoopStore {
	return &NoopStore{}
}

func (NoopStore) dropped(op string) error {
	log.Warn().Str("op", op).Msg("database unavailable, write dropped")
	return nil
}

// -------- Staff / Specialty --------

func (s NoopStore) CreateStaff(context.Context, *models.StaffMember) error {
	return s.dropped("create_staff")
}
func (NoopStore) GetStaff(context.Context, uint) (*models.StaffMember, error) {
	return nil, domain.ErrNotFound
}
func (s NoopStore) UpdateStaff(context.Context, *models.StaffMember) error {
	return s.dropped("update_staff")
}
func (s NoopStore) DeleteStaff(context.Context, uint) error { return s.dropped("delete_staff") }
func (NoopStore) ListStaff(context.Context, access.Scope, bool) ([]models.StaffMember, error) {
	return []models.StaffMember{}, nil
}
func (NoopStore) ListSpecialties(context.Context) ([]models.Specialty, error) {
	return []models.Specialty{}, nil
}
func (NoopStore) GetSpecialty(context.Context, uint) (*models.Specialty, error) {
	return nil, domain.ErrNotFound
}
func (s NoopStore) CreateSpecialty(context.Context, *models.Specialty) error {
	return s.dropped("create_specialty")
}
func (s NoopStore) AddStaffSpecialty(context.Context, uint, uint) error {
	return s.dropped("add_staff_specialty")
}
func (s NoopStore) RemoveStaffSpecialty(context.Context, uint, uint) error {
	return s.dropped("remove_staff_specialty")
}
func (NoopStore) ListStaffSpecialties(context.Context, uint) ([]models.Specialty, error) {
	return []models.Specialty{}, nil
}

// -------- Booking --------

func (s NoopStore) CreateBooking(context.Context, *models.Booking) error {
	return s.dropped("create_booking")
}
func (NoopStore) GetBooking(context.Context, uint) (*models.Booking, error) {
	return nil, domain.ErrNotFound
}
func (s NoopStore) UpdateBooking(context.Context, *models.Booking) error {
	return s.dropped("update_booking")
}
func (s NoopStore) DeleteBooking(context.Context, uint) error { return s.dropped("delete_booking") }
func (NoopStore) ListBookings(context.Context, access.Scope) ([]models.Booking, error) {
	return []models.Booking{}, nil
}
func (NoopStore) ListBookingsForStaff(context.Context, access.Scope, uint) ([]models.Booking, error) {
	return []models.Booking{}, nil
}

// -------- Payment --------

func (s NoopStore) CreatePayment(context.Context, *models.Payment) error {
	return s.dropped("create_payment")
}
func (NoopStore) GetPayment(context.Context, uint) (*models.Payment, error) {
	return nil, domain.ErrNotFound
}
func (s NoopStore) UpdatePayment(context.Context, *models.Payment) error {
	return s.dropped("update_payment")
}
func (NoopStore) ListPayments(context.Context, access.Scope) ([]models.Payment, error) {
	return []models.Payment{}, nil
}
func (NoopStore) ListPaymentsForStaff(context.Context, access.Scope, uint) ([]models.Payment, error) {
	return []models.Payment{}, nil
}
func (s NoopStore) CreateProofFile(context.Context, *models.ProofFile) error {
	return s.dropped("create_proof_file")
}
func (NoopStore) ListProofFiles(context.Context, uint) ([]models.ProofFile, error) {
	return []models.ProofFile{}, nil
}

// -------- Rating --------

func (s NoopStore) CreateRating(context.Context, *models.Rating) error {
	return s.dropped("create_rating")
}
func (NoopStore) GetRating(context.Context, uint) (*models.Rating, error) {
	return nil, domain.ErrNotFound
}
func (s NoopStore) UpdateRating(context.Context, *models.Rating) error {
	return s.dropped("update_rating")
}
func (NoopStore) ListRatingsForStaff(context.Context, uint) ([]models.Rating, error) {
	return []models.Rating{}, nil
}
func (NoopStore) AverageScore(context.Context, uint) (float64, int64, error) { return 0, 0, nil }

// -------- User --------

func (s NoopStore) CreateUser(context.Context, *models.User) error { return s.dropped("create_user") }
func (NoopStore) GetUser(context.Context, uint) (*models.User, error) {
	return nil, domain.ErrNotFound
}
func (NoopStore) GetUserByEmail(context.Context, string) (*models.User, error) {
	return nil, domain.ErrNotFound
}
func (s NoopStore) UpdateUser(context.Context, *models.User) error { return s.dropped("update_user") }
func (NoopStore) ListUsers(context.Context) ([]models.User, error) { return []models.User{}, nil }
func (NoopStore) CountUsers(context.Context) (int64, error) { return 0, nil }

// -------- Receipt --------

func (s NoopStore) CreateReceipt(context.Context, *models.Receipt) error {
	return s.dropped("create_receipt")
}
func (NoopStore) GetReceipt(context.Context, uint) (*models.Receipt, error) {
	return nil, domain.ErrNotFound
}
func (NoopStore) GetReceiptByPayment(context.Context, uint) (*models.Receipt, error) {
	return nil, domain.ErrNotFound
}
func (s NoopStore) UpdateReceipt(context.Context, *models.Receipt) error {
	return s.dropped("update_receipt")
}
func (NoopStore) ListReceipts(context.Context, access.Scope) ([]models.Receipt, error) {
	return []models.Receipt{}, nil
}

// -------- Notification / message log --------

func (s NoopStore) CreateNotification(context.Context, *models.Notification) error {
	return s.dropped("create_notification")
}
func (NoopStore) GetNotification(context.Context, uint) (*models.Notification, error) {
	return nil, domain.ErrNotFound
}
func (NoopStore) ListNotifications(context.Context, access.Scope, bool) ([]models.Notification, error) {
	return []models.Notification{}, nil
}
func (s NoopStore) MarkNotificationRead(context.Context, uint) error {
	return s.dropped("mark_notification_read")
}
func (NoopStore) CountUnreadNotifications(context.Context, access.Scope) (int64, error) {
	return 0, nil
}
func (s NoopStore) CreateMessageLog(context.Context, *models.MessageLog) error {
	return s.dropped("create_message_log")
}
func (NoopStore) ListMessageLogs(context.Context, notification.MessageLogFilter) ([]models.MessageLog, error) {
	return []models.MessageLog{}, nil
}

// -------- Reports / audit --------

func (NoopStore) CountBookingsByStatus(context.Context, access.Scope) ([]report.StatusCount, error) {
	return []report.StatusCount{}, nil
}
func (NoopStore) SumPaymentsByStatus(context.Context, access.Scope) ([]report.AmountTotal, error) {
	return []report.AmountTotal{}, nil
}
func (NoopStore) SumPaymentsByMethod(context.Context, access.Scope) ([]report.AmountTotal, error) {
	return []report.AmountTotal{}, nil
}
func (s NoopStore) CreateAuditLog(context.Context, *models.AuditLog) error {
	return s.dropped("create_audit_log")
}
func (NoopStore) ListAuditLogs(context.Context, audit.Filter) ([]models.AuditLog, int64, error) {
	return []models.AuditLog{}, 0, nil
}

var (
	_ booking.Repository                = (*NoopStore)(nil)
	_ payment.Repository                = (*NoopStore)(nil)
	_ staff.Repository                  = (*NoopStore)(nil)
	_ rating.Repository                 = (*NoopStore)(nil)
	_ user.Repository                   = (*NoopStore)(nil)
	_ receipt.Repository                = (*NoopStore)(nil)
	_ notification.Repository           = (*NoopStore)(nil)
	_ notification.MessageLogRepository = (*NoopStore)(nil)
	_ report.Repository                 = (*NoopStore)(nil)
	_ audit.Store                       = (*NoopStore)(nil)
	_ audit.Reader                      = (*NoopStore)(nil)
)
