package models

import (
	"net/http"

	"github.com/exiby/exiby_admin/services"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// APIError is a struct to store a standard API error
type APIError Response

func (e *APIError) Error() string {
	return e.Err
}

// NewAPIError creates an APIError with given status and error message
func NewAPIError(status int, err string) APIError {
	return APIError{
		Status: status,
		Err:    err,
	}
}

// SendAPIError sends an error with given status and error message to the user
func SendAPIError(ctx *gin.Context, status int, err string) {
	ctx.JSON(status, NewAPIError(status, err))
	ctx.Abort()
}

// StatusForError picks the response status for an error returned by a service
func StatusForError(err error) int {
	switch errors.Cause(err) {
	case services.ErrNotFound:
		return http.StatusNotFound
	case services.ErrInvalidID, services.ErrInvalidInput, services.ErrInvalidLegalDocumentKind:
		return http.StatusBadRequest
	case services.ErrInvalidCredentials:
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}
