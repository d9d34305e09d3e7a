package utils

import (
	"strconv"

	"github.com/google/uuid"
)

// ParseID parses a surrogate key taken from a path or query parameter.
func ParseID(value string) (int64, error) {
	return strconv.ParseInt(value, 10, 64)
}

func GenerateRequestID() string {
	return uuid.NewString()
}
