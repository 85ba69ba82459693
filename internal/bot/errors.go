package bot

import (
	"errors"
	"fmt"

	"github.com/aidar/localtime-bot/internal/domain"
)

// SendError is returned by a Sender when a reply could not be delivered.
// Retryable marks failures that may succeed later (network, rate limit,
// server side); everything else is permanent.
type SendError struct {
	Retryable bool
	Code      int
	Err       error
}

func (e *SendError) Error() string {
	class := "permanent"
	if e.Retryable {
		class = "retryable"
	}
	if e.Code != 0 {
		return fmt.Sprintf("%s (%s, code %d): %v", domain.ErrSendFailed, class, e.Code, e.Err)
	}
	return fmt.Sprintf("%s (%s): %v", domain.ErrSendFailed, class, e.Err)
}

func (e *SendError) Unwrap() []error {
	return []error{domain.ErrSendFailed, e.Err}
}

// IsRetryable reports whether err is a SendError marked retryable
func IsRetryable(err error) bool {
	var sendErr *SendError
	return errors.As(err, &sendErr) && sendErr.Retryable
}

// errorClass is used as a log field and metric label
func errorClass(err error) string {
	if IsRetryable(err) {
		return "retryable"
	}
	return "permanent"
}
