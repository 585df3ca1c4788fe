package backend

import (
	"encoding/json"
	"errors"
	"strings"
)

const genericUnreachableMsg = "cannot reach server"

var ErrUnauthorized = errors.New("unauthorized")

// APIError is a non-2xx backend response. Message prefers the server-provided
// message/error field, falling back to a generic string.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

func newAPIError(status int, body []byte) error {
	var envelope struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}

	message := ""
	if err := json.Unmarshal(body, &envelope); err == nil {
		if envelope.Message != "" {
			message = envelope.Message
		} else if envelope.Error != "" {
			message = envelope.Error
		}
	}
	if strings.TrimSpace(message) == "" {
		message = genericUnreachableMsg
	}

	return &APIError{Status: status, Message: message}
}
