package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// Alerter tells salon staff about booking activity.
type Alerter interface {
	Alert(ctx context.Context, message string) error
}

// LogAlerter is used when no SMS channel is configured.
type LogAlerter struct {
	log zerolog.Logger
}

func NewLogAlerter(logger zerolog.Logger) *LogAlerter {
	return &LogAlerter{log: logger}
}

func (a *LogAlerter) Alert(_ context.Context, message string) error {
	a.log.Info().Str("channel", "log").Msg(message)
	return nil
}

type messageCreator interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

// TwilioAlerter sends alerts as SMS to the salon phone.
type TwilioAlerter struct {
	api  messageCreator
	from string
	to   string
	log  zerolog.Logger
}

type TwilioConfig struct {
	AccountSID string
	AuthToken  string
	From       string
	To         string
}

func (c TwilioConfig) Enabled() bool {
	return c.AccountSID != "" && c.AuthToken != "" && c.From != "" && c.To != ""
}

func NewTwilioAlerter(cfg TwilioConfig, logger zerolog.Logger) *TwilioAlerter {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})
	return &TwilioAlerter{api: client.Api, from: cfg.From, to: cfg.To, log: logger}
}

func (a *TwilioAlerter) Alert(ctx context.Context, message string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(a.to)
	params.SetFrom(a.from)
	params.SetBody(message)

	resp, err := a.api.CreateMessage(params)
	if err != nil {
		a.log.Error().Err(err).Str("to", a.to).Msg("sms alert failed")
		return err
	}
	if resp == nil || resp.Sid == nil {
		return errors.New("sms alert: no message sid returned")
	}
	a.log.Debug().Str("sid", *resp.Sid).Str("to", a.to).Msg("sms alert sent")
	return nil
}

// NewAlerter picks Twilio when it is fully configured, the log otherwise.
func NewAlerter(cfg TwilioConfig, logger zerolog.Logger) Alerter {
	if cfg.Enabled() {
		return NewTwilioAlerter(cfg, logger)
	}
	return NewLogAlerter(logger)
}
