// Package errs defines the error envelope returned by the API.
//
// Every failure builds its own *HTTPError so no request can observe
// fields written by another one.
package errs

import "net/http"

const (
	MsgMissingParams = "Hacen falta parametros"
	MsgMissingQuery  = "faltan parametros"
	MsgInvalidNumber = "No es posible convertir el numero"
)

// HTTPError serialises to {"error": true, "codigo": <status>, "mensaje": <text>}.
type HTTPError struct {
	Failed  bool   `json:"error"`
	Code    int    `json:"codigo"`
	Message string `json:"mensaje"`

	cause error
}

func (e *HTTPError) Error() string {
	return e.Message
}

func (e *HTTPError) Unwrap() error {
	return e.cause
}

// Status is the HTTP status the envelope is sent with.
func (e *HTTPError) Status() int {
	return e.Code
}

func newHTTPError(status int, message string, cause error) *HTTPError {
	return &HTTPError{
		Failed:  true,
		Code:    status,
		Message: message,
		cause:   cause,
	}
}

// NewValidationError reports a missing or malformed request field.
func NewValidationError(message string) *HTTPError {
	return newHTTPError(http.StatusBadRequest, message, nil)
}

// NewPersistenceError passes the driver message through to the client.
func NewPersistenceError(err error) *HTTPError {
	return newHTTPError(http.StatusInternalServerError, err.Error(), err)
}

// NewStorageError reports a failed blob store operation.
func NewStorageError(err error) *HTTPError {
	return newHTTPError(http.StatusInternalServerError, err.Error(), err)
}

// NewInternalError hides the cause behind the generic status text.
func NewInternalError(err error) *HTTPError {
	return newHTTPError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError), err)
}
