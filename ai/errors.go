package ai

import (
	"errors"
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

// Completion failures collapse into four kinds. Callers match with errors.Is
// and decide what to surface; no kind triggers an automatic retry here.
var (
	// ErrAuthentication means the credential is missing or rejected.
	ErrAuthentication = errors.New("authentication failed")

	// ErrRateLimit means the remote service throttled the request.
	ErrRateLimit = errors.New("rate limited by model service")

	// ErrTransient covers connectivity faults and remote 5xx conditions.
	ErrTransient = errors.New("transient network failure")

	// ErrModel covers every other remote-reported failure.
	ErrModel = errors.New("model request failed")
)

// translateError maps go-openai errors onto the closed error kinds,
// preserving the original message through wrapping.
func translateError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("%s: %w", apiErr.Message, kindForStatus(apiErr.HTTPStatusCode))
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return fmt.Errorf("%v: %w", reqErr.Err, kindForStatus(reqErr.HTTPStatusCode))
	}

	// Anything else is a transport-level fault (DNS, timeout, reset).
	return fmt.Errorf("%v: %w", err, ErrTransient)
}

func kindForStatus(status int) error {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return ErrAuthentication
	case status == http.StatusTooManyRequests:
		return ErrRateLimit
	case status >= http.StatusInternalServerError:
		return ErrTransient
	default:
		return ErrModel
	}
}
