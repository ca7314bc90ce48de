package booking

import (
	"errors"
	"fmt"
)

var (
	ErrEntityNotFound       = errors.New("listing not found")
	ErrNetworkFailure       = errors.New("marketplace unreachable")
	ErrSubmissionInProgress = errors.New("a booking submission is already in flight")
)

// RejectedError carries the booking collaborator's error payload
type RejectedError struct {
	Status  int
	Payload []byte
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("booking rejected: status=%d body=%s", e.Status, string(e.Payload))
}
