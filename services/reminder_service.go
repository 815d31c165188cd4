// services/reminder_service.go
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"yanails-backend/models"
)

const DefaultReminderSchedule = "0 9 * * *"

// ReminderService reminds about the next day's appointments.
type ReminderService struct {
	store   *BookingStore
	alerter Alerter
	cron    *cron.Cron
	log     zerolog.Logger
}

func NewReminderService(store *BookingStore, alerter Alerter, logger zerolog.Logger) *ReminderService {
	if alerter == nil {
		alerter = NewLogAlerter(logger)
	}
	return &ReminderService{
		store:   store,
		alerter: alerter,
		cron:    cron.New(),
		log:     logger,
	}
}

// StartScheduler registers the daily job on schedule (standard 5-field cron).
func (s *ReminderService) StartScheduler(schedule string) error {
	if schedule == "" {
		schedule = DefaultReminderSchedule
	}
	if _, err := s.cron.AddFunc(schedule, func() {
		s.RunOnce(context.Background(), time.Now())
	}); err != nil {
		return fmt.Errorf("reminder schedule %q: %w", schedule, err)
	}

	s.cron.Start()
	s.log.Info().Str("schedule", schedule).Msg("reminder scheduler started")
	return nil
}

// Stop halts the scheduler and waits for a running job to finish.
func (s *ReminderService) Stop() {
	<-s.cron.Stop().Done()
}

// RunOnce sends a reminder for each booking on the day after now and
// returns how many were sent.
func (s *ReminderService) RunOnce(ctx context.Context, now time.Time) int {
	tomorrow := models.DateOf(now).AddDays(1)
	bookings := s.store.BookingsOn(tomorrow)

	sent := 0
	for _, b := range bookings {
		msg := fmt.Sprintf("Recordatorio: mañana %s a las %s tienes %s.", b.Date, b.Time, b.Service.Title)
		s.store.Notifications().Push(models.NotificationInfo, msg)

		if err := s.alerter.Alert(ctx, msg); err != nil {
			s.log.Error().Err(err).Str("booking_id", b.ID.String()).Msg("failed to send reminder")
			continue
		}
		sent++
	}

	s.log.Info().Str("date", tomorrow.String()).Int("bookings", len(bookings)).Int("sent", sent).Msg("daily reminders processed")
	return sent
}
