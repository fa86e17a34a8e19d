package utils

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// OptionalFloat parses values[key] as a float. A missing or blank key yields nil.
func OptionalFloat(values url.Values, key string) (*float64, error) {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("The %s must be a number.", key)
	}
	return &f, nil
}

// IntOr parses values[key] as an int, falling back to def when the key is absent.
func IntOr(values url.Values, key string, def int) (int, error) {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def, fmt.Errorf("The %s must be an integer.", key)
	}
	return n, nil
}

// ParseID parses a numeric path parameter.
func ParseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
