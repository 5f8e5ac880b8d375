package payment

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alanfo18/stcd/internal/access"
	"github.com/alanfo18/stcd/internal/audit"
	"github.com/alanfo18/stcd/internal/config"
	"github.com/alanfo18/stcd/internal/domain"
	"github.com/alanfo18/stcd/internal/domain/notification"
	domainpayment "github.com/alanfo18/stcd/internal/domain/payment"
	"github.com/alanfo18/stcd/internal/gateway"
	"github.com/alanfo18/stcd/internal/httperr"
	"github.com/alanfo18/stcd/internal/models"
	"github.com/alanfo18/stcd/internal/notify"
	"github.com/alanfo18/stcd/internal/storage"
	"github.com/alanfo18/stcd/internal/timezone"
	"github.com/alanfo18/stcd/internal/whatsapp"
)

// ---- stubs ----

type stubRepo struct {
	staff    map[uint]*models.StaffMember
	bookings map[uint]*models.Booking
	payments map[uint]*models.Payment
	proofs   []models.ProofFile
	nextID   uint
}

func newStubRepo() *stubRepo {
	return &stubRepo{
		staff: map[uint]*models.StaffMember{
			3: {ID: 3, UserID: 1, Name: "Maria", Phone: "5511999999999", DailyRate: 15000},
			4: {ID: 4, UserID: 2, Name: "Joana", Phone: "5511988887777", DailyRate: 12000},
		},
		bookings: map[uint]*models.Booking{
			7: {ID: 7, UserID: 1, StaffID: 3},
			8: {ID: 8, UserID: 2, StaffID: 4},
		},
		payments: map[uint]*models.Payment{},
	}
}

func (r *stubRepo) GetStaff(_ context.Context, id uint) (*models.StaffMember, error) {
	if s, ok := r.staff[id]; ok {
		return s, nil
	}
	return nil, domain.ErrNotFound
}

func (r *stubRepo) GetBooking(_ context.Context, id uint) (*models.Booking, error) {
	if b, ok := r.bookings[id]; ok {
		return b, nil
	}
	return nil, domain.ErrNotFound
}

func (r *stubRepo) CreatePayment(_ context.Context, p *models.Payment) error {
	r.nextID++
	p.ID = r.nextID
	cp := *p
	r.payments[p.ID] = &cp
	return nil
}

func (r *stubRepo) GetPayment(_ context.Context, id uint) (*models.Payment, error) {
	if p, ok := r.payments[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

func (r *stubRepo) UpdatePayment(_ context.Context, p *models.Payment) error {
	cp := *p
	r.payments[p.ID] = &cp
	return nil
}

func (r *stubRepo) ListPayments(_ context.Context, scope access.Scope) ([]models.Payment, error) {
	var out []models.Payment
	for _, p := range r.payments {
		if scope.Owns(p.UserID) {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubRepo) ListPaymentsForStaff(ctx context.Context, scope access.Scope, staffID uint) ([]models.Payment, error) {
	all, _ := r.ListPayments(ctx, scope)
	var out []models.Payment
	for _, p := range all {
		if p.StaffID == staffID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *stubRepo) CreateProofFile(_ context.Context, f *models.ProofFile) error {
	f.ID = uint(len(r.proofs) + 1)
	r.proofs = append(r.proofs, *f)
	return nil
}

func (r *stubRepo) ListProofFiles(_ context.Context, paymentID uint) ([]models.ProofFile, error) {
	var out []models.ProofFile
	for _, f := range r.proofs {
		if f.PaymentID == paymentID {
			out = append(out, f)
		}
	}
	return out, nil
}

type nopSink struct {
	mu      sync.Mutex
	actions []string
}

func (s *nopSink) Dispatch(ev audit.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.actions = append(s.actions, ev.Action)
}

type countingSender struct {
	sent []whatsapp.Message
}

func (s *countingSender) Send(_ context.Context, m whatsapp.Message) error {
	s.sent = append(s.sent, m)
	return nil
}

type memNotes struct {
	notes []models.Notification
}

func (m *memNotes) CreateMessageLog(context.Context, *models.MessageLog) error { return nil }
func (m *memNotes) ListMessageLogs(context.Context, notification.MessageLogFilter) ([]models.MessageLog, error) {
	return nil, nil
}
func (m *memNotes) CreateNotification(_ context.Context, n *models.Notification) error {
	m.notes = append(m.notes, *n)
	return nil
}
func (m *memNotes) GetNotification(context.Context, uint) (*models.Notification, error) {
	return nil, domain.ErrNotFound
}
func (m *memNotes) ListNotifications(context.Context, access.Scope, bool) ([]models.Notification, error) {
	return nil, nil
}
func (m *memNotes) MarkNotificationRead(context.Context, uint) error { return nil }
func (m *memNotes) CountUnreadNotifications(context.Context, access.Scope) (int64, error) {
	return 0, nil
}

type fakeUploader struct {
	keys []string
	err  error
}

func (u *fakeUploader) Upload(_ context.Context, in storage.UploadInput) (*storage.UploadResult, error) {
	if u.err != nil {
		return nil, u.err
	}
	u.keys = append(u.keys, in.Key)
	return &storage.UploadResult{URL: "https://cdn.example.com/" + in.Key}, nil
}

type fakeLookup struct {
	status string
	err    error
}

func (f fakeLookup) PaymentStatus(context.Context, string) (string, error) {
	return f.status, f.err
}

var (
	owner    = access.Actor{ID: 1, Role: models.RoleUser}
	stranger = access.Actor{ID: 2, Role: models.RoleUser}
)

func notifier(sender whatsapp.Sender) (*notify.Notifier, *memNotes) {
	store := &memNotes{}
	return notify.New(sender, store, store, config.WhatsAppConfig{CoordinatorPhone: "5567999583290"}, timezone.DefaultTimezone), store
}

func strptr(s string) *string { return &s }

func pixInput() CreatePaymentInput {
	return CreatePaymentInput{
		Actor:   owner,
		StaffID: 3,
		Amount:  45000,
		PaidAt:  "2024-03-12",
		Method:  "pix",
	}
}

// ---- create ----

func TestCreatePaymentWithoutStatusStoresPendingButNotifiesPaid(t *testing.T) {
	repo := newStubRepo()
	sender := &countingSender{}
	n, store := notifier(sender)
	uc := NewCreatePayment(repo, &nopSink{}, timezone.DefaultTimezone, false, n.PaymentHooks())

	p, err := uc.Execute(context.Background(), pixInput())
	require.NoError(t, err)

	assert.Equal(t, string(domainpayment.StatusPending), p.Status)
	assert.Equal(t, "2024-03-12", p.PaidAt.Format(timezone.DateLayout))

	// coordenador + diarista
	require.Len(t, sender.sent, 2)
	assert.Equal(t, "5567999583290", sender.sent[0].To)
	assert.Equal(t, whatsapp.PriorityNormal, sender.sent[0].Priority)
	assert.Equal(t, "5511999999999", sender.sent[1].To)
	assert.Equal(t, whatsapp.PriorityHigh, sender.sent[1].Priority)
	assert.True(t, strings.Contains(sender.sent[1].Body, "R$ 450,00"))
	assert.True(t, strings.Contains(sender.sent[1].Body, "PIX"))

	require.Len(t, store.notes, 1)
	assert.Equal(t, models.NotificationPaymentRegistered, store.notes[0].Kind)
}

func TestCreatePaymentRequirePaidSkipsImplicitNotification(t *testing.T) {
	repo := newStubRepo()
	sender := &countingSender{}
	n, _ := notifier(sender)
	uc := NewCreatePayment(repo, &nopSink{}, timezone.DefaultTimezone, true, n.PaymentHooks())

	_, err := uc.Execute(context.Background(), pixInput())
	require.NoError(t, err)
	assert.Empty(t, sender.sent)

	in := pixInput()
	in.Status = strptr("paid")
	p, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "paid", p.Status)
	assert.Len(t, sender.sent, 2)
}

func TestCreatePaymentPendingStatusDoesNotNotify(t *testing.T) {
	repo := newStubRepo()
	sender := &countingSender{}
	n, _ := notifier(sender)
	uc := NewCreatePayment(repo, &nopSink{}, timezone.DefaultTimezone, false, n.PaymentHooks())

	in := pixInput()
	in.Status = strptr("pending")
	_, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.Empty(t, sender.sent)
}

func TestCreatePaymentUnknownStaffStillSucceeds(t *testing.T) {
	repo := newStubRepo()
	sender := &countingSender{}
	n, store := notifier(sender)
	uc := NewCreatePayment(repo, &nopSink{}, timezone.DefaultTimezone, false, n.PaymentHooks())

	in := pixInput()
	in.StaffID = 99
	p, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.NotZero(t, p.ID)
	assert.Empty(t, sender.sent)
	require.Len(t, store.notes, 1)
}

func TestCreatePaymentValidation(t *testing.T) {
	repo := newStubRepo()
	uc := NewCreatePayment(repo, &nopSink{}, timezone.DefaultTimezone, false, nil)
	missing := uint(404)

	cases := map[string]func(*CreatePaymentInput){
		"invalid_amount":    func(in *CreatePaymentInput) { in.Amount = -1 },
		"invalid_method":    func(in *CreatePaymentInput) { in.Method = "cheque" },
		"invalid_status":    func(in *CreatePaymentInput) { in.Status = strptr("refunded") },
		"invalid_date":      func(in *CreatePaymentInput) { in.PaidAt = "12/03/2024" },
		"booking_not_found": func(in *CreatePaymentInput) { in.BookingID = &missing },
	}

	for code, mutate := range cases {
		in := pixInput()
		mutate(&in)
		_, err := uc.Execute(context.Background(), in)
		assert.True(t, httperr.IsBusiness(err, code), code)
	}
	assert.Empty(t, repo.payments)
}

func TestCreatePaymentRoundTrip(t *testing.T) {
	repo := newStubRepo()
	uc := NewCreatePayment(repo, &nopSink{}, timezone.DefaultTimezone, false, nil)
	booking := uint(7)

	in := pixInput()
	in.BookingID = &booking
	in.Method = "cash"
	in.Description = "  diárias de março "
	created, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	got, err := NewListPayments(repo).Get(context.Background(), owner, created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(45000), got.Amount)
	assert.Equal(t, "cash", got.Method)
	assert.Equal(t, "diárias de março", got.Description)
	require.NotNil(t, got.BookingID)
	assert.Equal(t, uint(7), *got.BookingID)
}

func TestCreatePaymentRejectsStaffOfAnotherUser(t *testing.T) {
	repo := newStubRepo()
	sender := &countingSender{}
	n, _ := notifier(sender)
	uc := NewCreatePayment(repo, &nopSink{}, timezone.DefaultTimezone, false, n.PaymentHooks())

	in := pixInput()
	in.StaffID = 4
	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "forbidden"))

	foreign := uint(8)
	in = pixInput()
	in.BookingID = &foreign
	_, err = uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "forbidden"))

	assert.Empty(t, repo.payments)
	assert.Empty(t, sender.sent)

	// admin registra para qualquer diarista
	in = pixInput()
	in.Actor = access.Actor{ID: 9, Role: models.RoleAdmin}
	in.StaffID = 4
	_, err = uc.Execute(context.Background(), in)
	require.NoError(t, err)
	require.NotEmpty(t, sender.sent)
	assert.Equal(t, "5511988887777", sender.sent[len(sender.sent)-1].To)
}

// ---- access ----

func TestPaymentOwnership(t *testing.T) {
	repo := newStubRepo()
	uc := NewCreatePayment(repo, &nopSink{}, timezone.DefaultTimezone, false, nil)
	p, err := uc.Execute(context.Background(), pixInput())
	require.NoError(t, err)

	list := NewListPayments(repo)

	_, err = list.Get(context.Background(), stranger, p.ID)
	assert.True(t, httperr.IsBusiness(err, "forbidden"))

	mine, err := list.Execute(context.Background(), stranger)
	require.NoError(t, err)
	assert.Empty(t, mine)

	admin := access.Actor{ID: 9, Role: models.RoleAdmin}
	all, err := list.ForStaff(context.Background(), admin, 3)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	_, err = list.Get(context.Background(), owner, 999)
	assert.True(t, httperr.IsBusiness(err, "payment_not_found"))
}

// ---- update ----

func TestUpdatePaymentToPaidRunsPaidHooks(t *testing.T) {
	repo := newStubRepo()
	sender := &countingSender{}
	n, _ := notifier(sender)

	status := "pending"
	created, err := NewCreatePayment(repo, &nopSink{}, timezone.DefaultTimezone, false, nil).
		Execute(context.Background(), CreatePaymentInput{Actor: owner, StaffID: 3, Amount: 15000, PaidAt: "2024-03-12", Method: "card", Status: &status})
	require.NoError(t, err)

	sink := &nopSink{}
	uc := NewUpdatePayment(repo, sink, timezone.DefaultTimezone, n.PaidHooks())

	amount := int64(20000)
	updated, err := uc.Execute(context.Background(), UpdatePaymentInput{Actor: owner, ID: created.ID, Amount: &amount, Status: strptr("paid")})
	require.NoError(t, err)
	assert.Equal(t, int64(20000), updated.Amount)
	assert.Equal(t, "paid", updated.Status)
	assert.Len(t, sender.sent, 2)
	assert.Contains(t, sink.actions, "payment_updated")

	// já pago: sem novo aviso
	_, err = uc.Execute(context.Background(), UpdatePaymentInput{Actor: owner, ID: created.ID, Description: strptr("ok")})
	require.NoError(t, err)
	assert.Len(t, sender.sent, 2)

	_, err = uc.Execute(context.Background(), UpdatePaymentInput{Actor: owner, ID: created.ID, Method: strptr("boleto")})
	assert.True(t, httperr.IsBusiness(err, "invalid_method"))

	_, err = uc.Execute(context.Background(), UpdatePaymentInput{Actor: stranger, ID: created.ID, Amount: &amount})
	assert.True(t, httperr.IsBusiness(err, "forbidden"))
}

func TestUpdatePaymentCannotPayCancelled(t *testing.T) {
	repo := newStubRepo()
	sender := &countingSender{}
	n, _ := notifier(sender)

	created, err := NewCreatePayment(repo, &nopSink{}, timezone.DefaultTimezone, false, nil).
		Execute(context.Background(), CreatePaymentInput{Actor: owner, StaffID: 3, Amount: 15000, PaidAt: "2024-03-12", Method: "pix", Status: strptr("cancelled")})
	require.NoError(t, err)

	uc := NewUpdatePayment(repo, &nopSink{}, timezone.DefaultTimezone, n.PaidHooks())
	_, err = uc.Execute(context.Background(), UpdatePaymentInput{Actor: owner, ID: created.ID, Status: strptr("paid")})
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	assert.Empty(t, sender.sent)

	stored, err := repo.GetPayment(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", stored.Status)

	// reabrir como pendente continua permitido
	_, err = uc.Execute(context.Background(), UpdatePaymentInput{Actor: owner, ID: created.ID, Status: strptr("pending")})
	require.NoError(t, err)
	_, err = uc.Execute(context.Background(), UpdatePaymentInput{Actor: owner, ID: created.ID, Status: strptr("paid")})
	require.NoError(t, err)
	assert.Len(t, sender.sent, 2)
}

// ---- proof ----

func TestUploadProofStoresFileAndSetsRef(t *testing.T) {
	repo := newStubRepo()
	p, err := NewCreatePayment(repo, &nopSink{}, timezone.DefaultTimezone, false, nil).Execute(context.Background(), pixInput())
	require.NoError(t, err)

	up := &fakeUploader{}
	uc := NewUploadProof(repo, up, &nopSink{})

	pdf := []byte("%PDF-1.4\n1 0 obj\n<<>>\nendobj\n")
	proof, err := uc.Execute(context.Background(), owner, p.ID, "../comprovante.pdf", pdf)
	require.NoError(t, err)

	require.Len(t, up.keys, 1)
	assert.True(t, strings.HasPrefix(up.keys[0], "payments/1/"))
	assert.True(t, strings.HasSuffix(up.keys[0], ".pdf"))
	assert.Equal(t, "comprovante.pdf", proof.FileName)
	assert.Equal(t, "application/pdf", proof.ContentType)

	stored, _ := repo.GetPayment(context.Background(), p.ID)
	assert.Equal(t, proof.URL, stored.ProofRef)

	files, err := NewListPayments(repo).Proofs(context.Background(), owner, p.ID)
	require.NoError(t, err)
	assert.Len(t, files, 1)

	_, err = uc.Execute(context.Background(), owner, p.ID, "a.txt", []byte("hello"))
	assert.True(t, httperr.IsBusiness(err, "invalid_file"))

	_, err = NewUploadProof(repo, storage.NoopUploader{}, &nopSink{}).Execute(context.Background(), owner, p.ID, "a.pdf", pdf)
	assert.True(t, httperr.IsBusiness(err, "storage_unavailable"))
}

// ---- reconcile ----

func TestReconcileMarksApprovedPaymentPaid(t *testing.T) {
	repo := newStubRepo()
	sender := &countingSender{}
	n, _ := notifier(sender)

	in := pixInput()
	in.Status = strptr("pending")
	in.ProofRef = "123456789"
	p, err := NewCreatePayment(repo, &nopSink{}, timezone.DefaultTimezone, false, nil).Execute(context.Background(), in)
	require.NoError(t, err)

	uc := NewReconcilePayment(repo, fakeLookup{status: gateway.StatusApproved}, &nopSink{}, n.PaidHooks())
	res, err := uc.Execute(context.Background(), owner, p.ID)
	require.NoError(t, err)
	assert.True(t, res.Changed)
	assert.Equal(t, "paid", res.Payment.Status)
	assert.Len(t, sender.sent, 2)

	// segunda conciliação não muda nada
	res, err = uc.Execute(context.Background(), owner, p.ID)
	require.NoError(t, err)
	assert.False(t, res.Changed)
	assert.Len(t, sender.sent, 2)
}

func TestReconcileErrors(t *testing.T) {
	repo := newStubRepo()
	p, err := NewCreatePayment(repo, &nopSink{}, timezone.DefaultTimezone, false, nil).Execute(context.Background(), pixInput())
	require.NoError(t, err)

	_, err = NewReconcilePayment(repo, fakeLookup{}, &nopSink{}, nil).Execute(context.Background(), owner, p.ID)
	assert.True(t, httperr.IsBusiness(err, "proof_ref_missing"))

	p.ProofRef = "abc"
	require.NoError(t, repo.UpdatePayment(context.Background(), p))

	cases := map[string]error{
		"gateway_unavailable": gateway.ErrUnavailable,
		"invalid_gateway_ref": gateway.ErrInvalidRef,
		"gateway_error":       errors.New("timeout"),
	}
	for code, gwErr := range cases {
		_, err := NewReconcilePayment(repo, fakeLookup{err: gwErr}, &nopSink{}, nil).Execute(context.Background(), owner, p.ID)
		assert.True(t, httperr.IsBusiness(err, code), code)
	}

	res, err := NewReconcilePayment(repo, fakeLookup{status: "rejected"}, &nopSink{}, nil).Execute(context.Background(), owner, p.ID)
	require.NoError(t, err)
	assert.False(t, res.Changed)
	assert.Equal(t, "rejected", res.GatewayStatus)
}
