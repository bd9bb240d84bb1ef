package email

import (
	"fmt"
	"log"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/menuqr/menuqr/pkg/recommendations"
)

// Service handles email sending
type Service struct {
	fromEmail   string
	fromName    string
	sendGridKey string
	useSendGrid bool
}

// NewService creates a new email service.
// If sendGridAPIKey is provided, emails will be sent via SendGrid.
// Otherwise, emails are logged to console (development mode).
func NewService(fromEmail, fromName, sendGridAPIKey string) *Service {
	useSendGrid := sendGridAPIKey != ""
	if !useSendGrid {
		log.Printf("⚠️  Email service in console-only mode (set SENDGRID_API_KEY for production)")
	}

	return &Service{
		fromEmail:   fromEmail,
		fromName:    fromName,
		sendGridKey: sendGridAPIKey,
		useSendGrid: useSendGrid,
	}
}

// SendWeeklyDigest sends the recommendation performance digest to a
// business owner. Amounts are formatted in the business's currency.
func (s *Service) SendWeeklyDigest(toEmail, toName, businessName, currencyCode string, summary *recommendations.PerformanceSummary, topPairs []recommendations.PairPerformance) error {
	subject := fmt.Sprintf("%s: your recommendation performance this week", businessName)

	revenue := formatAmount(currencyCode, summary.Revenue)

	var rows strings.Builder
	for i, p := range topPairs {
		if i >= 5 {
			break
		}
		rows.WriteString(fmt.Sprintf(
			"<tr><td>%s + %s</td><td>%d</td><td>%s</td></tr>",
			p.ItemAName, p.ItemBName, p.TimesConverted,
			formatAmount(currencyCode, p.RevenueGenerated)))
	}

	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>Weekly recommendation digest for %s</h2>
			<p>Hi %s,</p>
			<p>Here is how "frequently bought together" suggestions performed over the last %d days:</p>
			<ul>
				<li>Impressions: %d</li>
				<li>Conversions: %d (%.1f%%)</li>
				<li>Attributed revenue: %s</li>
			</ul>
			<h3>Top performing pairs</h3>
			<table border="1" cellpadding="6">
				<tr><th>Pair</th><th>Conversions</th><th>Revenue</th></tr>
				%s
			</table>
			<p>Thanks,<br>The MenuQR Team</p>
		</body>
		</html>
	`, businessName, toName, summary.PeriodDays, summary.Impressions,
		summary.Conversions, summary.ConversionRate, revenue, rows.String())

	plainText := fmt.Sprintf(
		"Weekly digest for %s: %d impressions, %d conversions (%.1f%%), %s attributed revenue over %d days.",
		businessName, summary.Impressions, summary.Conversions,
		summary.ConversionRate, revenue, summary.PeriodDays)

	if s.useSendGrid {
		return s.sendViaSendGrid(toEmail, toName, subject, body, plainText)
	}

	log.Printf("📧 [console email] to=%s subject=%q\n%s", toEmail, subject, plainText)
	return nil
}

func (s *Service) sendViaSendGrid(toEmail, toName, subject, htmlBody, plainText string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(toName, toEmail)
	msg := mail.NewSingleEmail(from, subject, to, plainText, htmlBody)

	client := sendgrid.NewSendClient(s.sendGridKey)
	resp, err := client.Send(msg)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned status %d: %s", resp.StatusCode, resp.Body)
	}

	return nil
}

// formatAmount renders a money amount with its currency symbol.
// Unknown currency codes fall back to a plain two-decimal format.
func formatAmount(code string, amount float64) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return fmt.Sprintf("%.2f %s", amount, code)
	}
	p := message.NewPrinter(language.English)
	return p.Sprintf("%v", currency.Symbol(unit.Amount(amount)))
}
