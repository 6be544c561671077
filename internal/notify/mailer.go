package notify

import (
	"fmt"
	"log/slog"

	"github.com/gracechapel/church-backend/internal/models"
	"gopkg.in/gomail.v2"
)

// Notifier sends best-effort moderation alerts. Implementations must never
// return an error: delivery failure cannot be allowed to fail a submission.
type Notifier interface {
	SubmissionAlert(prayer *models.Prayer)
}

// SMTPNotifier emails the moderation team about each new submission.
type SMTPNotifier struct {
	dialer *gomail.Dialer
	from   string
	to     string
}

func NewSMTPNotifier(host string, port int, user, password, from, to string) *SMTPNotifier {
	return &SMTPNotifier{
		dialer: gomail.NewDialer(host, port, user, password),
		from:   from,
		to:     to,
	}
}

func (n *SMTPNotifier) SubmissionAlert(prayer *models.Prayer) {
	if n.to == "" {
		return
	}

	subject := "New prayer request (" + prayer.Status + ")"
	body := fmt.Sprintf(
		`<p>A new prayer request was submitted.</p>
<p><b>Status:</b> %s<br><b>Risk:</b> %d &middot; <b>Trust:</b> %d</p>
<blockquote>%s</blockquote>`,
		prayer.Status, prayer.RiskScore, prayer.TrustLevel, prayer.RequestText,
	)

	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", n.to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := n.dialer.DialAndSend(m); err != nil {
		slog.Error("moderation alert email failed", "prayer_id", prayer.ID, "error", err)
	}
}
