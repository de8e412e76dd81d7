package menuapi

import (
	"context"
	"errors"
	"fmt"

	"menuview/internal/jsonutil"
)

// UnknownErrorMessage is shown when a failure carries no usable server message.
const UnknownErrorMessage = "unknown error"

// APIError is a non-2xx response. Message is the server's "message" (or
// "error") field and is empty when the body had neither.
type APIError struct {
	StatusCode int
	Message    string
	RequestID  string
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = UnknownErrorMessage
	}
	return fmt.Sprintf("menuapi: HTTP %d: %s", e.StatusCode, msg)
}

// parseError builds an APIError from a failed response body. Bodies that are
// not JSON objects, or lack a message, yield an APIError with an empty Message.
func parseError(status int, requestID string, body []byte) *APIError {
	e := &APIError{StatusCode: status, RequestID: requestID}
	var m map[string]interface{}
	if err := jsonutil.UnmarshalWithContext(body, &m, "error body"); err != nil {
		return e
	}
	e.Message = jsonutil.FirstString(m, "message", "error")
	return e
}

// Message converts any error from this package into the text a user sees.
// Server messages pass through verbatim; everything else is UnknownErrorMessage.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return UnknownErrorMessage
}

// IsCanceled reports whether err came from a canceled request. Those are
// superseded calls, not failures, and are neither logged nor traced as errors.
func IsCanceled(err error) bool {
	return errors.Is(err, context.Canceled)
}
