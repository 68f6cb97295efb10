package mailer

import (
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/SkriptSparrow/Catalog-AGT/config"
	"github.com/SkriptSparrow/Catalog-AGT/models"
)

// Mailer sends operator notifications over SMTP.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
	to     string
}

func New(cfg *config.Config) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:   cfg.OrderEmailFrom,
		to:     cfg.OrderEmailTo,
	}
}

// SendOrderNotification emails a plain-text order summary to the operator
// address. Callers treat a failure as non-fatal; the order is already
// committed by the time this runs.
func (m *Mailer) SendOrderNotification(order models.Order) error {
	var b strings.Builder
	fmt.Fprintf(&b, "New order %s\n\n", order.OrderNumber)
	fmt.Fprintf(&b, "Customer: %s\n", order.FullName)
	fmt.Fprintf(&b, "Phone: %s\n", order.Phone)
	fmt.Fprintf(&b, "Email: %s\n", order.Email)
	if order.CompanyName != "" {
		fmt.Fprintf(&b, "Company: %s\n", order.CompanyName)
	}
	b.WriteString("\nItems:\n")
	for _, item := range order.Items {
		fmt.Fprintf(&b, "  %s (art. %s) x%d = %s\n",
			item.ProductName, item.Article, item.Quantity, item.Sum.StringFixed(2))
	}
	fmt.Fprintf(&b, "\nTotal: %s\n", order.TotalSum.StringFixed(2))

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.to)
	msg.SetHeader("Subject", fmt.Sprintf("New order %s", order.OrderNumber))
	msg.SetBody("text/plain", b.String())

	return m.dialer.DialAndSend(msg)
}
