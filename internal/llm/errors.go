package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/api/googleapi"
)

// TransientError represents a provider failure that is eligible for one
// credential rotation plus retry: quota exhaustion, auth rejection, or a
// per-call timeout.
type TransientError struct {
	Message string
	Cause   error
}

func (e *TransientError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("transient provider error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("transient provider error: %s", e.Message)
}

func (e *TransientError) Unwrap() error {
	return e.Cause
}

// MalformedOutputError means the provider responded but the content fails
// the declared schema even after normalization. Never rendered verbatim.
type MalformedOutputError struct {
	Message string
	Cause   error
}

func (e *MalformedOutputError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("malformed model output: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("malformed model output: %s", e.Message)
}

func (e *MalformedOutputError) Unwrap() error {
	return e.Cause
}

// NoAudioError means the speech model returned no audio payload. Callers
// degrade to text-only results rather than failing the whole action.
type NoAudioError struct {
	Message string
}

func (e *NoAudioError) Error() string {
	return fmt.Sprintf("no audio in response: %s", e.Message)
}

// IsTransient classifies a provider error as credential-related or a
// timeout, making it eligible for rotation and retry.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case 401, 403, 429, 500, 503:
			return true
		}
	}

	// The genai SDK sometimes wraps quota failures without a typed code.
	msg := strings.ToLower(err.Error())
	for _, marker := range []string{"quota", "rate limit", "resource exhausted", "api key", "deadline exceeded"} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
