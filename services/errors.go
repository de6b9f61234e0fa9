package services

import "errors"

var (
	// ErrInvalidID is the error returned by services when
	// the id provided in the call to the service is invalid
	ErrInvalidID = errors.New("id was invalid or not provided")
	// ErrNotFound is the error returned by services when
	// the requested object could not be found
	ErrNotFound = errors.New("requested object could not be found")
	// ErrInvalidCredentials is the error returned when
	// the email and password do not match the admin account
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidInput is the error returned when the backend
	// rejects the submitted data
	ErrInvalidInput = errors.New("submitted data was rejected")
	// ErrInvalidLegalDocumentKind is the error returned by ConfigurationService
	// for an unknown legal document
	ErrInvalidLegalDocumentKind = errors.New("legal document kind is invalid")
	// ErrSendgridRejectedRequest is the error returned by EmailService
	// when Sendgrid rejects an email request
	ErrSendgridRejectedRequest = errors.New("email request was rejected by Sendgrid")
)
