package resend

import (
	"fmt"
	"strings"
	"time"
)

// ContactSubmission структурированная заявка с контактной формы
type ContactSubmission struct {
	Name      string
	Email     string
	Phone     string
	Service   string
	Message   string
	Timestamp time.Time
}

// emailRequest тело запроса к Resend API
type emailRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
	ReplyTo string `json:"reply_to"`
}

// emailResponse ответ Resend API
type emailResponse struct {
	ID string `json:"id"`
}

// buildHTML renders the notification email body
func buildHTML(sub ContactSubmission) string {
	var b strings.Builder

	b.WriteString("<h2>New Contact Form Submission</h2>\n")
	fmt.Fprintf(&b, "<p><strong>From:</strong> %s</p>\n", sub.Name)
	fmt.Fprintf(&b, "<p><strong>Email:</strong> %s</p>\n", sub.Email)
	if sub.Phone != "" {
		fmt.Fprintf(&b, "<p><strong>Phone:</strong> %s</p>\n", sub.Phone)
	}
	if sub.Service != "" {
		fmt.Fprintf(&b, "<p><strong>Service Interest:</strong> %s</p>\n", sub.Service)
	}
	b.WriteString("<p><strong>Message:</strong></p>\n")
	fmt.Fprintf(&b, "<p>%s</p>\n", strings.ReplaceAll(sub.Message, "\n", "<br>"))
	b.WriteString("<hr>\n")
	fmt.Fprintf(&b, "<p><small>Submitted on %s</small></p>", sub.Timestamp.Format("1/2/2006, 3:04:05 PM"))

	return b.String()
}
