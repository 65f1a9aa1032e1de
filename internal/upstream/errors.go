package upstream

import "fmt"

// StatusError is returned when the upstream provider answers with a non-2xx
// status. The gateway logs it and replies with a generic operation message;
// the upstream status is never forwarded to the dashboard caller.
type StatusError struct {
	StatusCode int
	Status     string
}

// Error implements the error interface
func (e *StatusError) Error() string {
	return fmt.Sprintf("yahoo finance API error: %s", e.Status)
}
