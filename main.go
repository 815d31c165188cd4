package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"yanails-backend/config"
	"yanails-backend/controllers"
	"yanails-backend/routes"
	"yanails-backend/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	logger := config.InitLogger(cfg.LogLevel, cfg.Env)
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	alerter := services.NewAlerter(services.TwilioConfig{
		AccountSID: cfg.TwilioAccountSID,
		AuthToken:  cfg.TwilioAuthToken,
		From:       cfg.TwilioPhoneNumber,
		To:         cfg.SalonAlertPhone,
	}, logger)

	store, err := services.NewBookingStore(services.StoreOptions{
		Payments:       services.NewSimulatedGateway(cfg.PaymentDelay),
		Notifications:  services.NewNotificationQueue(cfg.NotificationBuffer),
		Alerter:        alerter,
		PaymentTimeout: cfg.PaymentTimeout,
		Logger:         logger.With().Str("component", "booking_store").Logger(),
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to seed catalog")
	}
	logger.Info().Int("services", len(store.Services())).Msg("catalog loaded")

	reminders := services.NewReminderService(store, alerter, logger.With().Str("component", "reminders").Logger())
	if err := reminders.StartScheduler(cfg.ReminderSchedule); err != nil {
		logger.Fatal().Err(err).Msg("failed to start reminders")
	}

	appCtx, stopApp := context.WithCancel(context.Background())
	defer stopApp()

	ctl := controllers.New(store, cfg.JWTSecret, cfg.JWTTTL(), logger)
	r := routes.SetupRouter(appCtx, routes.RouterConfig{
		AllowedOrigins:  cfg.AllowedOrigins,
		JWTSecret:       cfg.JWTSecret,
		LoginRatePerSec: cfg.LoginRatePerSec,
		LoginBurst:      cfg.LoginBurst,
	}, ctl, logger)
	if cfg.IsDevelopment() {
		printRoutes(r)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}
	go func() {
		logger.Info().Str("port", cfg.Port).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch
	logger.Info().Msg("shutting down")

	reminders.Stop()
	stopApp()
	ctx, cancel := context.WithTimeout(context.Background(), cfg.PaymentTimeout+time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("http shutdown")
	}
}

func printRoutes(r *gin.Engine) {
	for _, route := range r.Routes() {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
