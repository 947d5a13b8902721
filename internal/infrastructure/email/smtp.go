package email

import (
	"context"
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/subtrack-inc/subtrack/internal/application/subscription/dto"
	"github.com/subtrack-inc/subtrack/internal/shared/biztime"
	"github.com/subtrack-inc/subtrack/internal/shared/config"
	"github.com/subtrack-inc/subtrack/internal/shared/logger"
)

// SMTPReminderSender delivers renewal reminder emails over SMTP.
type SMTPReminderSender struct {
	cfg    config.NotificationConfig
	dialer *gomail.Dialer
	logger logger.Interface
}

func NewSMTPReminderSender(cfg config.NotificationConfig, log logger.Interface) *SMTPReminderSender {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)

	return &SMTPReminderSender{
		cfg:    cfg,
		dialer: dialer,
		logger: log,
	}
}

// SendRenewalReminder emails the configured recipient about an upcoming
// subscription renewal.
func (s *SMTPReminderSender) SendRenewalReminder(ctx context.Context, notification dto.PendingNotificationDTO) error {
	if s.cfg.Recipient == "" {
		return fmt.Errorf("no notification recipient configured")
	}

	sub := notification.Subscription
	subject := fmt.Sprintf("Upcoming renewal: %s", sub.Name)

	var timings []string
	for _, rule := range notification.Rules {
		timings = append(timings, rule.Timing)
	}

	renewalDate := biztime.FormatDate(sub.NextBillingDate)
	plainBody := fmt.Sprintf(`Your %s subscription renews on %s.

Provider: %s
Cost: %.2f %s
Reminder window: %s
`,
		sub.Name, renewalDate,
		sub.Provider.Name,
		sub.Cost.Amount, sub.Cost.Currency,
		strings.Join(timings, ", "),
	)

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Upcoming Renewal</h2>
			<p>Your <strong>%s</strong> subscription renews on <strong>%s</strong>.</p>
			<p>Provider: %s<br>Cost: %.2f %s</p>
		</body>
		</html>
	`,
		sub.Name, renewalDate,
		sub.Provider.Name,
		sub.Cost.Amount, sub.Cost.Currency,
	)

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.FromAddress, s.cfg.FromName))
	m.SetHeader("To", s.cfg.Recipient)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send reminder email: %w", err)
	}

	s.logger.Infow("reminder email sent",
		"subscription", sub.Name,
		"recipient", s.cfg.Recipient,
	)
	return nil
}
