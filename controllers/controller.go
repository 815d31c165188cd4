package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"yanails-backend/services"
	"yanails-backend/utils"
)

// Controller adapts the booking store to HTTP.
type Controller struct {
	store     *services.BookingStore
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func New(store *services.BookingStore, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *Controller {
	return &Controller{store: store, jwtSecret: jwtSecret, tokenTTL: tokenTTL, log: logger}
}

// respondStoreError maps booking store errors to HTTP statuses.
func respondStoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrServiceNotFound):
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
	case errors.Is(err, services.ErrNoActiveDraft):
		utils.RespondWithError(c, http.StatusPreconditionFailed, "No booking in progress")
	case errors.Is(err, services.ErrSlotConflict):
		utils.RespondWithError(c, http.StatusConflict, "Slot already taken")
	case errors.Is(err, services.ErrAlreadyProcessing):
		utils.RespondWithError(c, http.StatusConflict, "Payment already in progress")
	case errors.Is(err, services.ErrPaymentTimeout):
		utils.RespondWithError(c, http.StatusGatewayTimeout, "Payment timed out, please retry")
	case errors.Is(err, context.Canceled):
		// client went away; status is for the log only
		c.AbortWithStatus(499)
	default:
		utils.RespondWithError(c, http.StatusInternalServerError, "Internal error")
	}
}
