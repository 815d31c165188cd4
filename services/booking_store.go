package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"yanails-backend/models"
)

const (
	defaultPaymentTimeout = 30 * time.Second
	currencyCLP           = "CLP"
)

type StoreOptions struct {
	Catalog        []models.Service
	Payments       PaymentGateway
	Notifications  *NotificationQueue
	Alerter        Alerter
	PaymentTimeout time.Duration
	Logger         zerolog.Logger
	// Now defaults to time.Now. "Today" for a new draft is taken from it.
	Now func() time.Time
}

// BookingStore owns the catalog, the confirmed bookings and the booking
// being drafted. It is the only writer of bookings and enforces that no
// two live bookings share a slot.
type BookingStore struct {
	mu sync.RWMutex

	services []models.Service
	byID     map[uuid.UUID]int

	bookings []models.Booking
	bySlot   map[models.Slot]uuid.UUID

	draft      *models.Draft
	processing bool
	profile    models.Profile

	payments PaymentGateway
	notes    *NotificationQueue
	alerter  Alerter
	timeout  time.Duration
	log      zerolog.Logger
	now      func() time.Time
}

func NewBookingStore(opts StoreOptions) (*BookingStore, error) {
	catalog := opts.Catalog
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	if err := ValidateCatalog(catalog); err != nil {
		return nil, err
	}

	s := &BookingStore{
		services: append([]models.Service(nil), catalog...),
		byID:     make(map[uuid.UUID]int, len(catalog)),
		bySlot:   make(map[models.Slot]uuid.UUID),
		payments: opts.Payments,
		notes:    opts.Notifications,
		alerter:  opts.Alerter,
		timeout:  opts.PaymentTimeout,
		log:      opts.Logger,
		now:      opts.Now,
	}
	for i, svc := range s.services {
		s.byID[svc.ID] = i
	}
	if s.payments == nil {
		s.payments = NewSimulatedGateway(0)
	}
	if s.notes == nil {
		s.notes = NewNotificationQueue(0)
	}
	if s.alerter == nil {
		s.alerter = NewLogAlerter(s.log)
	}
	if s.timeout <= 0 {
		s.timeout = defaultPaymentTimeout
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s, nil
}

func (s *BookingStore) Notifications() *NotificationQueue {
	return s.notes
}

// ----- catalog -----

func (s *BookingStore) Services() []models.Service {
	// catalog is never written after construction
	return append([]models.Service(nil), s.services...)
}

func (s *BookingStore) Service(id uuid.UUID) (models.Service, error) {
	i, ok := s.byID[id]
	if !ok {
		return models.Service{}, ErrServiceNotFound
	}
	return s.services[i], nil
}

// ----- profile -----

// Login records who is using the app. Nothing is verified.
func (s *BookingStore) Login(name, email string) models.Profile {
	s.mu.Lock()
	s.profile = models.Profile{Name: name, Email: email, LoggedInAt: s.now()}
	p := s.profile
	s.mu.Unlock()

	s.log.Info().Str("email", email).Msg("profile logged in")
	return p
}

func (s *BookingStore) Profile() models.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

// ----- queries -----

func (s *BookingStore) Bookings() []models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Booking{}, s.bookings...)
}

// BookingsOn lists the bookings held on date, in insertion order.
func (s *BookingStore) BookingsOn(date models.Date) []models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Booking{}
	for _, b := range s.bookings {
		if b.Date == date {
			out = append(out, b)
		}
	}
	return out
}

func (s *BookingStore) IsSlotTaken(date models.Date, t models.TimeOfDay) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, taken := s.bySlot[models.Slot{Date: date, Time: t}]
	return taken
}

// AvailableSlots reports every offered time on date with its taken flag.
func (s *BookingStore) AvailableSlots(date models.Date) []models.SlotAvailability {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.SlotAvailability, 0, len(models.OfferedTimes))
	for _, t := range models.OfferedTimes {
		_, taken := s.bySlot[models.Slot{Date: date, Time: t}]
		out = append(out, models.SlotAvailability{Time: t, Taken: taken})
	}
	return out
}

func (s *BookingStore) Draft() (models.Draft, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.draft == nil {
		return models.Draft{}, false
	}
	return *s.draft, true
}

func (s *BookingStore) Processing() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.processing
}

// Quote returns both payment options for the open draft.
func (s *BookingStore) Quote() (models.Quote, error) {
	d, ok := s.Draft()
	if !ok {
		return models.Quote{}, ErrNoActiveDraft
	}
	return d.Quote(), nil
}

// ----- draft commands -----

// OpenBooking starts a new draft for serviceID on today at the default
// time with a deposit payment. Any previous draft is discarded.
func (s *BookingStore) OpenBooking(serviceID uuid.UUID) (models.Draft, error) {
	svc, err := s.Service(serviceID)
	if err != nil {
		return models.Draft{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.processing {
		return models.Draft{}, ErrAlreadyProcessing
	}
	s.draft = &models.Draft{
		Service: svc,
		Date:    models.DateOf(s.now()),
		Time:    models.DefaultTime,
		Mode:    models.PaymentPartial,
	}
	return *s.draft, nil
}

// CloseBooking dismisses the draft. It cannot be dismissed mid-payment.
func (s *BookingStore) CloseBooking() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.processing {
		return ErrAlreadyProcessing
	}
	s.draft = nil
	return nil
}

func (s *BookingStore) SetDate(date models.Date) error {
	return s.editDraft(func(d *models.Draft) { d.Date = date })
}

func (s *BookingStore) SetTime(t models.TimeOfDay) error {
	return s.editDraft(func(d *models.Draft) { d.Time = t })
}

func (s *BookingStore) SetPaymentOption(full bool) error {
	return s.editDraft(func(d *models.Draft) { d.Mode = models.PaymentModeOf(full) })
}

// slot availability is not checked here; the sheet still shows taken
// slots and ConfirmAndPay is the gate
func (s *BookingStore) editDraft(fn func(*models.Draft)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.draft == nil {
		return ErrNoActiveDraft
	}
	if s.processing {
		return ErrAlreadyProcessing
	}
	fn(s.draft)
	return nil
}

// Today is the current date on the store's clock.
func (s *BookingStore) Today() models.Date {
	return models.DateOf(s.now())
}

// ----- confirm / cancel -----

// ConfirmAndPay charges the drafted booking and stores it. On success the
// draft is cleared. On any error the draft stays open for a retry and
// processing is always reset, including when ctx is cancelled mid-payment.
func (s *BookingStore) ConfirmAndPay(ctx context.Context) (models.Booking, error) {
	draft, err := s.beginConfirm()
	if err != nil {
		return models.Booking{}, err
	}
	// commit clears processing itself; every other exit, a gateway panic
	// included, goes through endConfirm
	committed := false
	defer func() {
		if !committed {
			s.endConfirm()
		}
	}()

	b := models.Booking{
		ID:         uuid.New(),
		Service:    draft.Service,
		Date:       draft.Date,
		Time:       draft.Time,
		Mode:       draft.Mode,
		PaidAmount: draft.Mode.Amount(draft.Service.Price),
	}

	receipt, err := s.charge(ctx, b)
	if err != nil {
		return models.Booking{}, err
	}

	b.CreatedAt = s.now()
	err = s.commit(b)
	committed = true
	if err != nil {
		// Only a second writer of bySlot can get here (the processing flag
		// keeps other confirms out); give the charge back.
		if rerr := s.payments.Refund(context.WithoutCancel(ctx), receipt); rerr != nil {
			s.log.Error().Err(rerr).Str("charge_id", receipt.ChargeID).Msg("refund failed")
		}
		s.notifyConflict(b.Time)
		return models.Booking{}, err
	}

	s.log.Info().
		Str("booking_id", b.ID.String()).
		Str("service", b.Service.Title).
		Str("slot", b.Slot().String()).
		Str("mode", string(b.Mode)).
		Int64("paid", b.PaidAmount).
		Msg("booking confirmed")

	s.notes.Push(models.NotificationSuccess, fmt.Sprintf("Reserva creada para %s", b.Service.Title))
	s.alert(ctx, fmt.Sprintf("Nueva reserva: %s el %s a las %s (pagado $%d)",
		b.Service.Title, b.Date, b.Time, b.PaidAmount))
	return b, nil
}

func (s *BookingStore) beginConfirm() (models.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.draft == nil {
		return models.Draft{}, ErrNoActiveDraft
	}
	draft := *s.draft
	if _, taken := s.bySlot[draft.Slot()]; taken {
		s.log.Warn().Str("slot", draft.Slot().String()).Msg("confirm rejected: slot taken")
		s.notifyConflict(draft.Time)
		return models.Draft{}, ErrSlotConflict
	}
	if s.processing {
		return models.Draft{}, ErrAlreadyProcessing
	}
	s.processing = true
	return draft, nil
}

func (s *BookingStore) endConfirm() {
	s.mu.Lock()
	s.processing = false
	s.mu.Unlock()
}

func (s *BookingStore) charge(ctx context.Context, b models.Booking) (Receipt, error) {
	payCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	receipt, err := s.payments.Charge(payCtx, ChargeRequest{
		Reference: b.ID,
		Amount:    b.PaidAmount,
		Currency:  currencyCLP,
		Title:     b.Service.Title,
	})
	if err == nil {
		return receipt, nil
	}

	switch {
	case ctx.Err() != nil:
		// caller walked away; nothing was stored
		s.log.Info().Err(ctx.Err()).Msg("confirm abandoned by caller")
		return Receipt{}, ctx.Err()
	case errors.Is(err, context.DeadlineExceeded):
		s.log.Warn().Dur("timeout", s.timeout).Msg("payment timed out")
		s.notes.Push(models.NotificationError, "El pago tardó demasiado. Intenta nuevamente.")
		return Receipt{}, ErrPaymentTimeout
	default:
		s.log.Error().Err(err).Msg("payment failed")
		s.notes.Push(models.NotificationError, "No se pudo procesar el pago.")
		return Receipt{}, fmt.Errorf("charge booking %s: %w", b.ID, err)
	}
}

// commit inserts b if its slot is still free, closes the draft and
// clears processing, all under one lock.
func (s *BookingStore) commit(b models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.processing = false

	if _, taken := s.bySlot[b.Slot()]; taken {
		return ErrSlotConflict
	}
	s.bySlot[b.Slot()] = b.ID
	s.bookings = append(s.bookings, b)
	s.draft = nil
	return nil
}

// Cancel removes the booking with id. Unknown ids are ignored.
func (s *BookingStore) Cancel(id uuid.UUID) {
	s.mu.Lock()
	var removed *models.Booking
	for i, b := range s.bookings {
		if b.ID == id {
			removed = &b
			s.bookings = append(s.bookings[:i], s.bookings[i+1:]...)
			delete(s.bySlot, b.Slot())
			break
		}
	}
	s.mu.Unlock()

	if removed == nil {
		return
	}
	s.log.Info().Str("booking_id", id.String()).Str("slot", removed.Slot().String()).Msg("booking cancelled")
	s.alert(context.Background(), fmt.Sprintf("Reserva cancelada: %s el %s a las %s",
		removed.Service.Title, removed.Date, removed.Time))
}

func (s *BookingStore) notifyConflict(t models.TimeOfDay) {
	s.notes.Push(models.NotificationError, fmt.Sprintf("Lo sentimos, esa hora (%s) ya fue tomada.", t.Label()))
}

// alert failures are logged and never fail the booking operation
func (s *BookingStore) alert(ctx context.Context, msg string) {
	if err := s.alerter.Alert(context.WithoutCancel(ctx), msg); err != nil {
		s.log.Warn().Err(err).Msg("staff alert failed")
	}
}
