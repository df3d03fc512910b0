package notification

import (
	"context"
	"fmt"

	"github.com/brinto-swe/event-management-system/internal/config"
	"github.com/brinto-swe/event-management-system/internal/domain"
	"github.com/brinto-swe/event-management-system/internal/metrics"
	"github.com/wb-go/wbf/logger"
	"github.com/wneessen/go-mail"
)

const channelEmail = "email"

// EmailNotifier sends plain-text mail over SMTP. With no host configured it
// only logs what it would have sent.
type EmailNotifier struct {
	cfg     config.SMTPConfig
	logger  logger.Logger
	metrics *metrics.Metrics
	deliver func(ctx context.Context, msg *mail.Msg) error
}

func NewEmailNotifier(cfg config.SMTPConfig, logger logger.Logger, m *metrics.Metrics) *EmailNotifier {
	n := &EmailNotifier{cfg: cfg, logger: logger, metrics: m}
	n.deliver = n.deliverSMTP
	if cfg.Host == "" {
		logger.Warn("smtp host is empty, email delivery disabled")
		n.deliver = nil
	}
	return n
}

func (n *EmailNotifier) SendActivation(ctx context.Context, user *domain.User, link string) error {
	subject := "Activate your EventMS account"
	body := fmt.Sprintf(
		"Hi %s,\n\nPlease activate your account:\n%s\n\nThanks.",
		user.DisplayName(), link,
	)
	return n.send(ctx, user.Email, subject, body)
}

// NotifyRSVPCreated never fails the caller; delivery problems are logged and counted.
func (n *EmailNotifier) NotifyRSVPCreated(ctx context.Context, user *domain.User, event *domain.Event) {
	subject := "RSVP Confirmed: " + event.Name
	body := fmt.Sprintf(
		"Hi %s,\n\nYou have successfully RSVP'd to '%s' on %s at %s.\nLocation: %s\n\nSee you there!",
		user.DisplayName(), event.Name, event.Date.Format(domain.DateLayout), event.Time, event.Location,
	)
	if err := n.send(ctx, user.Email, subject, body); err != nil {
		n.logger.Error("failed to send rsvp email",
			logger.String("user_id", user.ID),
			logger.String("event_id", event.ID),
			logger.String("error", err.Error()),
		)
	}
}

func (n *EmailNotifier) send(ctx context.Context, to, subject, body string) error {
	if n.deliver == nil {
		n.logger.Debug("email skipped (smtp disabled)",
			logger.String("to", to),
			logger.String("subject", subject),
		)
		return nil
	}

	msg := mail.NewMsg()
	if err := msg.From(n.cfg.From); err != nil {
		return fmt.Errorf("set sender: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("set recipient: %w", err)
	}
	msg.Subject(subject)
	msg.SetDate()
	msg.SetBodyString(mail.TypeTextPlain, body)

	ctx, cancel := context.WithTimeout(ctx, n.cfg.Timeout)
	defer cancel()

	if err := n.deliver(ctx, msg); err != nil {
		n.metrics.Failed(channelEmail)
		return fmt.Errorf("send email: %w", err)
	}
	n.metrics.Delivered(channelEmail)

	return nil
}

func (n *EmailNotifier) deliverSMTP(ctx context.Context, msg *mail.Msg) error {
	opts := []mail.Option{
		mail.WithPort(n.cfg.Port),
		mail.WithTimeout(n.cfg.Timeout),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if n.cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(n.cfg.Username),
			mail.WithPassword(n.cfg.Password),
		)
	}

	client, err := mail.NewClient(n.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	return client.DialAndSendWithContext(ctx, msg)
}
