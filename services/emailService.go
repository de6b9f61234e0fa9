package services

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/exiby/exiby_admin/entities"
	"github.com/exiby/exiby_admin/utils/templatevars"
	"github.com/pkg/errors"
)

// EmailService is used to send out emails
type EmailService interface {
	SendEmail(subject, htmlBody, plainTextBody, senderName, senderEmail, recipientName, recipientEmail string) error
	// SendTemplatePreview renders the template with sample values and sends it to recipientEmail
	SendTemplatePreview(template entities.EmailTemplate, samples map[string]string, recipientEmail string) error
}

// TemplatePreviewEmailData is the data model of the template preview email layout
type TemplatePreviewEmailData struct {
	TemplateName string
	Content      template.HTML
	SenderName   string
}

// BuildTemplatePreviewEmail renders the subject and HTML body of a test email for an email template
func BuildTemplatePreviewEmail(layout *template.Template, subjectPrefix, senderName string,
	emailTemplate entities.EmailTemplate, samples map[string]string) (string, string, error) {
	subject := templatevars.Substitute(emailTemplate.Subject, samples)
	subject = strings.TrimSpace(subjectPrefix + " " + subject)

	var body bytes.Buffer
	err := layout.Execute(&body, TemplatePreviewEmailData{
		TemplateName: emailTemplate.Name,
		Content:      template.HTML(templatevars.Preview(emailTemplate.Content, samples)),
		SenderName:   senderName,
	})
	if err != nil {
		return "", "", errors.Wrap(err, "could not construct email")
	}

	return subject, body.String(), nil
}
