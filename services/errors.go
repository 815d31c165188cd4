package services

import "errors"

var (
	// ErrNoActiveDraft is returned when an operation needs an open booking sheet
	ErrNoActiveDraft = errors.New("no booking in progress")

	// ErrSlotConflict is returned when the chosen date and time are already booked
	ErrSlotConflict = errors.New("slot already taken")

	// ErrAlreadyProcessing is returned while a payment for the draft is in flight
	ErrAlreadyProcessing = errors.New("payment already in progress")

	// ErrPaymentTimeout is returned when the payment round-trip exceeds its deadline.
	// The draft stays open and the caller may retry.
	ErrPaymentTimeout = errors.New("payment timed out")

	ErrServiceNotFound = errors.New("service not found")
)
