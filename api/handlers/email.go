package handlers

import (
	"os"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

// sendEmail delivers a transactional email through sendgrid. The plain text
// part mirrors the subject; clients without HTML still see the decision.
func sendEmail(toName, toEmail, subject, htmlContent string) error {
	from := mail.NewEmail("VolunteerHub", "no-reply@volunteerhub.org")
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, subject, htmlContent)
	client := sendgrid.NewSendClient(os.Getenv("SENDGRID_API_KEY"))
	response, err := client.Send(message)
	if err != nil {
		return err
	}
	if response.StatusCode >= 400 {
		zap.S().Errorw("sendgrid returned error status", "status", response.StatusCode, "body", response.Body)
	}
	return nil
}
