package utils

import "net/smtp"

// SMTPClient sends a raw message to an SMTP server.
// It wraps smtp.SendMail so that delivery can be mocked in tests.
type SMTPClient interface {
	SendEmail(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTPClient returns an SMTPClient backed by net/smtp
func NewSMTPClient() SMTPClient {
	return smtpClient{}
}

type smtpClient struct{}

func (smtpClient) SendEmail(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
	return smtp.SendMail(addr, a, from, to, msg)
}
