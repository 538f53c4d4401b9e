// internal/models/envelope.go
package models

import (
	"time"

	"github.com/google/uuid"

	apperrors "bizstart-workers/internal/common/errors"
)

// Result is the uniform envelope returned by every operation, over Zeebe and over HTTP.
// Exactly one of Data/Meta or Error is set.
type Result struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
	Error   *ErrorBody  `json:"error,omitempty"`

	cause error
}

type Meta struct {
	Source    string    `json:"source"`
	Timestamp time.Time `json:"timestamp"`
	Note      string    `json:"note,omitempty"`
	RequestID string    `json:"requestId"`
}

type ErrorBody struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion"`
}

func NewSuccess(data interface{}, source, note string) *Result {
	return &Result{
		Success: true,
		Data:    data,
		Meta: &Meta{
			Source:    source,
			Timestamp: time.Now().UTC(),
			Note:      note,
			RequestID: uuid.NewString(),
		},
	}
}

// NewFailure builds the failure envelope. Errors that are not StandardErrors surface as
// INTERNAL_ERROR.
func NewFailure(err error) *Result {
	stdErr := apperrors.Normalize(err)
	return &Result{
		Success: false,
		cause:   stdErr,
		Error: &ErrorBody{
			Code:       string(stdErr.Code),
			Message:    stdErr.Message,
			Suggestion: stdErr.Suggestion,
		},
	}
}

// Err returns the StandardError behind a failure envelope, or nil on success.
func (r *Result) Err() error {
	if r == nil || r.Success || r.cause == nil {
		return nil
	}
	return r.cause
}

// ErrorCode returns the failure code, or "" on success.
func (r *Result) ErrorCode() string {
	if r == nil || r.Error == nil {
		return ""
	}
	return r.Error.Code
}
