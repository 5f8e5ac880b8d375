package booking

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alanfo18/stcd/internal/access"
	"github.com/alanfo18/stcd/internal/audit"
	"github.com/alanfo18/stcd/internal/config"
	"github.com/alanfo18/stcd/internal/domain"
	domainbooking "github.com/alanfo18/stcd/internal/domain/booking"
	"github.com/alanfo18/stcd/internal/domain/notification"
	"github.com/alanfo18/stcd/internal/httperr"
	"github.com/alanfo18/stcd/internal/models"
	"github.com/alanfo18/stcd/internal/notify"
	"github.com/alanfo18/stcd/internal/timezone"
	"github.com/alanfo18/stcd/internal/whatsapp"
)

// ---- stubs ----

type stubRepo struct {
	staff       map[uint]*models.StaffMember
	specialties map[uint]*models.Specialty
	bookings    map[uint]*models.Booking
	nextID      uint
	creates     int
}

func newStubRepo() *stubRepo {
	return &stubRepo{
		staff: map[uint]*models.StaffMember{
			3: {ID: 3, UserID: 1, Name: "Maria", Phone: "5511999999999", DailyRate: 15000},
			4: {ID: 4, UserID: 2, Name: "Joana", Phone: "5511988887777", DailyRate: 12000},
		},
		specialties: map[uint]*models.Specialty{2: {ID: 2, Name: "Limpeza"}},
		bookings:    map[uint]*models.Booking{},
	}
}

func (r *stubRepo) GetStaff(_ context.Context, id uint) (*models.StaffMember, error) {
	if s, ok := r.staff[id]; ok {
		return s, nil
	}
	return nil, domain.ErrNotFound
}

func (r *stubRepo) GetSpecialty(_ context.Context, id uint) (*models.Specialty, error) {
	if s, ok := r.specialties[id]; ok {
		return s, nil
	}
	return nil, domain.ErrNotFound
}

func (r *stubRepo) CreateBooking(_ context.Context, b *models.Booking) error {
	r.creates++
	r.nextID++
	b.ID = r.nextID
	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *stubRepo) GetBooking(_ context.Context, id uint) (*models.Booking, error) {
	if b, ok := r.bookings[id]; ok {
		cp := *b
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

func (r *stubRepo) UpdateBooking(_ context.Context, b *models.Booking) error {
	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *stubRepo) DeleteBooking(_ context.Context, id uint) error {
	if _, ok := r.bookings[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.bookings, id)
	return nil
}

func (r *stubRepo) ListBookings(_ context.Context, scope access.Scope) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if scope.Owns(b.UserID) {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *stubRepo) ListBookingsForStaff(ctx context.Context, scope access.Scope, staffID uint) ([]models.Booking, error) {
	all, _ := r.ListBookings(ctx, scope)
	var out []models.Booking
	for _, b := range all {
		if b.StaffID == staffID {
			out = append(out, b)
		}
	}
	return out, nil
}

type recordingSink struct {
	mu     sync.Mutex
	events []audit.Event
}

func (s *recordingSink) Dispatch(ev audit.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
}

type countingSender struct {
	sent []whatsapp.Message
	fail bool
}

func (s *countingSender) Send(_ context.Context, m whatsapp.Message) error {
	s.sent = append(s.sent, m)
	if s.fail {
		return errors.New("gateway down")
	}
	return nil
}

type memNotes struct {
	logs  []models.MessageLog
	notes []models.Notification
}

func (m *memNotes) CreateMessageLog(_ context.Context, l *models.MessageLog) error {
	m.logs = append(m.logs, *l)
	return nil
}
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

var owner = access.Actor{ID: 1, Role: models.RoleUser}

func newCreate(repo *stubRepo, sender whatsapp.Sender, sink audit.Sink, cc ...string) (*CreateBooking, *memNotes) {
	store := &memNotes{}
	n := notify.New(sender, store, store, config.WhatsAppConfig{CoordinatorPhone: "5567999583290", CCPhones: cc}, timezone.DefaultTimezone)
	return NewCreateBooking(repo, sink, timezone.DefaultTimezone, n.BookingHooks()), store
}

func mariaInput() CreateBookingInput {
	return CreateBookingInput{
		Actor:          owner,
		StaffID:        3,
		SpecialtyID:    2,
		ServiceAddress: "Rua das Flores, 100",
		StartDate:      "2024-03-10",
		EndDate:        "2024-03-12",
		DailyRate:      15000,
	}
}

// ---- create ----

func TestCreateBookingScenario(t *testing.T) {
	repo := newStubRepo()
	sender := &countingSender{}
	sink := &recordingSink{}
	uc, store := newCreate(repo, sender, sink, "5567999820888")

	b, err := uc.Execute(context.Background(), mariaInput())
	require.NoError(t, err)

	assert.NotZero(t, b.ID)
	require.NotNil(t, b.TotalPrice)
	assert.Equal(t, int64(45000), *b.TotalPrice)
	assert.Equal(t, string(domainbooking.StatusScheduled), b.Status)
	assert.Equal(t, "Maria", b.Staff.Name)

	// coordenador + 1 CC + diarista
	require.Len(t, sender.sent, 3)
	assert.Equal(t, "5567999583290", sender.sent[0].To)
	assert.Equal(t, whatsapp.PriorityHigh, sender.sent[0].Priority)
	assert.Equal(t, "5511999999999", sender.sent[2].To)
	assert.Equal(t, whatsapp.PriorityHigh, sender.sent[2].Priority)

	assert.Len(t, store.notes, 1)
	require.Len(t, sink.events, 1)
	assert.Equal(t, "booking_created", sink.events[0].Action)
}

func TestCreateBookingSucceedsWhenDispatcherFails(t *testing.T) {
	repo := newStubRepo()
	sender := &countingSender{fail: true}
	sink := &recordingSink{}
	uc, store := newCreate(repo, sender, sink)

	b, err := uc.Execute(context.Background(), mariaInput())
	require.NoError(t, err)
	assert.NotZero(t, b.ID)
	assert.Len(t, repo.bookings, 1)

	// uma tentativa por hook de envio
	assert.Len(t, sender.sent, 2)
	for _, l := range store.logs {
		assert.Equal(t, models.MessageStatusFailed, l.Status)
	}
	assert.Len(t, sink.events, 1)
}

func TestCreateBookingRejectsInvertedRange(t *testing.T) {
	repo := newStubRepo()
	uc, _ := newCreate(repo, &countingSender{}, &recordingSink{})

	in := mariaInput()
	in.StartDate, in.EndDate = "2024-03-12", "2024-03-10"

	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "invalid_date_range"))
	assert.Zero(t, repo.creates)
}

func TestCreateBookingValidation(t *testing.T) {
	cases := map[string]func(*CreateBookingInput){
		"invalid_address":     func(in *CreateBookingInput) { in.ServiceAddress = "  " },
		"invalid_daily_rate":  func(in *CreateBookingInput) { in.DailyRate = -1 },
		"invalid_date":        func(in *CreateBookingInput) { in.StartDate = "10/03/2024" },
		"staff_not_found":     func(in *CreateBookingInput) { in.StaffID = 99 },
		"specialty_not_found": func(in *CreateBookingInput) { in.SpecialtyID = 99 },
		"invalid_total": func(in *CreateBookingInput) {
			wrong := int64(30000)
			in.TotalPrice = &wrong
		},
	}

	for code, mutate := range cases {
		t.Run(code, func(t *testing.T) {
			repo := newStubRepo()
			sender := &countingSender{}
			uc, _ := newCreate(repo, sender, &recordingSink{})

			in := mariaInput()
			mutate(&in)

			_, err := uc.Execute(context.Background(), in)
			assert.True(t, httperr.IsBusiness(err, code), "got %v", err)
			assert.Zero(t, repo.creates)
			assert.Empty(t, sender.sent)
		})
	}
}

func TestCreateBookingAcceptsMatchingTotal(t *testing.T) {
	uc, _ := newCreate(newStubRepo(), &countingSender{}, &recordingSink{})

	in := mariaInput()
	total := int64(45000)
	in.TotalPrice = &total

	b, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, total, *b.TotalPrice)
}

func TestCreateBookingZeroRateSkipsMessages(t *testing.T) {
	sender := &countingSender{}
	uc, _ := newCreate(newStubRepo(), sender, &recordingSink{})

	in := mariaInput()
	in.DailyRate = 0

	b, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, int64(0), *b.TotalPrice)
	assert.Empty(t, sender.sent)
}

func TestBookingRejectsStaffOfAnotherUser(t *testing.T) {
	repo := newStubRepo()
	sender := &countingSender{}
	uc, _ := newCreate(repo, sender, &recordingSink{})

	in := mariaInput()
	in.StaffID = 4
	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "forbidden"))
	assert.Zero(t, repo.creates)
	assert.Empty(t, sender.sent)

	b, err := uc.Execute(context.Background(), mariaInput())
	require.NoError(t, err)

	update := NewUpdateBooking(repo, &recordingSink{}, timezone.DefaultTimezone)
	foreign := uint(4)
	_, err = update.Execute(context.Background(), UpdateBookingInput{Actor: owner, ID: b.ID, StaffID: &foreign})
	assert.True(t, httperr.IsBusiness(err, "forbidden"))

	stored, _ := repo.GetBooking(context.Background(), b.ID)
	assert.Equal(t, uint(3), stored.StaffID)

	// admin agenda com qualquer diarista
	in = mariaInput()
	in.Actor = access.Actor{ID: 9, Role: models.RoleAdmin}
	in.StaffID = 4
	_, err = uc.Execute(context.Background(), in)
	require.NoError(t, err)
}

// ---- list / access ----

func TestListBookingsRespectsOwnership(t *testing.T) {
	repo := newStubRepo()
	uc, _ := newCreate(repo, &countingSender{}, &recordingSink{})

	for _, actor := range []access.Actor{owner, owner, {ID: 2, Role: models.RoleUser}} {
		in := mariaInput()
		in.Actor = actor
		if actor.ID == 2 {
			in.StaffID = 4
		}
		_, err := uc.Execute(context.Background(), in)
		require.NoError(t, err)
	}

	list := NewListBookings(repo)

	mine, err := list.Execute(context.Background(), owner)
	require.NoError(t, err)
	assert.Len(t, mine, 2)
	for _, b := range mine {
		assert.Equal(t, owner.ID, b.UserID)
	}

	all, err := list.Execute(context.Background(), access.Actor{ID: 2, Role: models.RoleAdmin})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	_, err = list.Get(context.Background(), access.Actor{ID: 2, Role: models.RoleUser}, mine[0].ID)
	assert.True(t, httperr.IsBusiness(err, "forbidden"))

	_, err = list.Get(context.Background(), owner, 999)
	assert.True(t, httperr.IsBusiness(err, "booking_not_found"))
}

// ---- update / transitions / delete ----

func TestUpdateBookingRecomputesTotal(t *testing.T) {
	repo := newStubRepo()
	create, _ := newCreate(repo, &countingSender{}, &recordingSink{})
	b, err := create.Execute(context.Background(), mariaInput())
	require.NoError(t, err)

	uc := NewUpdateBooking(repo, &recordingSink{}, timezone.DefaultTimezone)

	end := "2024-03-14"
	updated, err := uc.Execute(context.Background(), UpdateBookingInput{Actor: owner, ID: b.ID, EndDate: &end})
	require.NoError(t, err)
	assert.Equal(t, int64(75000), *updated.TotalPrice)

	rate := int64(10000)
	updated, err = uc.Execute(context.Background(), UpdateBookingInput{Actor: owner, ID: b.ID, DailyRate: &rate})
	require.NoError(t, err)
	assert.Equal(t, int64(50000), *updated.TotalPrice)

	inverted := "2024-03-01"
	_, err = uc.Execute(context.Background(), UpdateBookingInput{Actor: owner, ID: b.ID, EndDate: &inverted})
	assert.True(t, httperr.IsBusiness(err, "invalid_date_range"))

	stored, _ := repo.GetBooking(context.Background(), b.ID)
	assert.Equal(t, "2024-03-14", stored.EndDate.Format(timezone.DateLayout))
}

func TestCompleteAndCancel(t *testing.T) {
	repo := newStubRepo()
	create, _ := newCreate(repo, &countingSender{}, &recordingSink{})
	b, err := create.Execute(context.Background(), mariaInput())
	require.NoError(t, err)

	sink := &recordingSink{}
	done, err := NewCompleteBooking(repo, sink).Execute(context.Background(), owner, b.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domainbooking.StatusCompleted), done.Status)
	assert.NotNil(t, done.CompletedAt)

	_, err = NewCancelBooking(repo, sink).Execute(context.Background(), owner, b.ID)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))

	notes := "nova"
	_, err = NewUpdateBooking(repo, sink, timezone.DefaultTimezone).
		Execute(context.Background(), UpdateBookingInput{Actor: owner, ID: b.ID, Notes: &notes})
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))

	require.Len(t, sink.events, 1)
	assert.Equal(t, "booking_completed", sink.events[0].Action)
}

func TestDeleteBooking(t *testing.T) {
	repo := newStubRepo()
	create, _ := newCreate(repo, &countingSender{}, &recordingSink{})
	b, err := create.Execute(context.Background(), mariaInput())
	require.NoError(t, err)

	uc := NewDeleteBooking(repo, &recordingSink{})

	err = uc.Execute(context.Background(), access.Actor{ID: 5, Role: models.RoleUser}, b.ID)
	assert.True(t, httperr.IsBusiness(err, "forbidden"))

	require.NoError(t, uc.Execute(context.Background(), owner, b.ID))
	assert.Empty(t, repo.bookings)
}
