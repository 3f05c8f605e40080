// Package apierror maps request failures onto the JSON error envelope
// shared by every endpoint: {"success": false, "error": <status>, "message": <text>}.
package apierror

import (
	"errors"
	"net/http"

	"github.com/saulo-duarte/trivia-api/internal/config"
)

var messages = map[int]string{
	http.StatusBadRequest:          "Bad Request",
	http.StatusNotFound:            "Not found",
	http.StatusMethodNotAllowed:    "Method Not Allowed",
	http.StatusUnprocessableEntity: "Unprocessable",
	http.StatusInternalServerError: "Internal Server Error",
}

type Error struct {
	Status int
	Err    error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return Message(e.Status)
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

type Envelope struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

func New(status int, err error) *Error {
	if _, ok := messages[status]; !ok {
		status = http.StatusInternalServerError
	}
	return &Error{Status: status, Err: err}
}

func NotFound(err error) *Error         { return New(http.StatusNotFound, err) }
func Unprocessable(err error) *Error    { return New(http.StatusUnprocessableEntity, err) }
func BadRequest(err error) *Error       { return New(http.StatusBadRequest, err) }
func MethodNotAllowed(err error) *Error { return New(http.StatusMethodNotAllowed, err) }
func Internal(err error) *Error         { return New(http.StatusInternalServerError, err) }

func Message(status int) string {
	if msg, ok := messages[status]; ok {
		return msg
	}
	return messages[http.StatusInternalServerError]
}

// StatusOf reports the status err will be rendered with.
func StatusOf(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return http.StatusInternalServerError
}

func Write(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusOf(err)

	log := config.WithContext(r.Context()).WithField("status", status)
	if status >= http.StatusInternalServerError {
		log.WithError(err).Error("Request failed")
	} else if err != nil {
		log.WithError(err).Warn("Request rejected")
	}

	config.JSON(w, status, Envelope{
		Success: false,
		Error:   status,
		Message: Message(status),
	})
}

func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	Write(w, r, NotFound(nil))
}

func MethodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	Write(w, r, MethodNotAllowed(nil))
}
