package remote

import (
	"fmt"
	"net/http"

	"github.com/kit-start/kitstart/internal/repository"
)

// StatusError is a non-2xx API response.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api status %d: %s", e.Code, e.Message)
}

// Unwrap maps a 404 onto the shared not-found sentinel so callers can
// errors.Is against it without knowing the transport.
func (e *StatusError) Unwrap() error {
	if e.Code == http.StatusNotFound {
		return repository.ErrNotFound
	}
	return nil
}
