package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewID returns an application-assigned document id.
func NewID() string {
	return uuid.NewString()
}

// NewOrderID returns a human-readable order reference, e.g. "ORD-3FA85F64".
func NewOrderID() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "ORD-" + strings.ToUpper(hex[:8])
}
