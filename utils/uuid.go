package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateID returns a new unique identifier string
func GenerateID() string {
	return uuid.New().String()
}

// ShortID returns the first block of a fresh uuid, used to tag connections in logs
func ShortID() string {
	return strings.SplitN(uuid.New().String(), "-", 2)[0]
}
