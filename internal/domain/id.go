package domain

import (
	"github.com/google/uuid"
)

// NewInvocationID generates a UUIDv7 string that tags the log records of one run.
func NewInvocationID() string {
	return uuid.Must(uuid.NewV7()).String()
}
