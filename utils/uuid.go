package utils

import (
	"strings"

	"github.com/google/uuid"
)

func GenerateUUID() string {
	return uuid.New().String()
}

// GenerateOrderID returns an ORD-prefixed id, uppercased for receipts.
func GenerateOrderID() string {
	return "ORD-" + strings.ToUpper(uuid.New().String())
}
