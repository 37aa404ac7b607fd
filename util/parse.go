package util

import (
	"strconv"
	"strings"
)

var sizeUnits = []struct {
	suffix string
	bytes  int64
}{
	{"GB", 1 << 30},
	{"MB", 1 << 20},
	{"KB", 1 << 10},
	{"B", 1},
}

// ParseSize converts a size limit like "10MB", "512kb" or "4096" into bytes.
// A bare number is taken as bytes. Anything unparseable falls back to
// defaultBytes so a bad config value degrades to the default limit instead
// of failing the request path.
func ParseSize(s string, defaultBytes int64) int64 {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return defaultBytes
	}

	var unit int64 = 1
	for _, u := range sizeUnits {
		if strings.HasSuffix(s, u.suffix) {
			unit = u.bytes
			s = strings.TrimSpace(strings.TrimSuffix(s, u.suffix))
			break
		}
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 0 {
		return defaultBytes
	}
	return n * unit
}

// MaskSecret masks a credential for log output, keeping at most
// visiblePrefix leading characters so operators can still tell an
// "Bearer ..." token from a "Basic ..." one. Values too short to mask
// safely are hidden entirely.
func MaskSecret(s string, visiblePrefix int) string {
	if visiblePrefix < 0 {
		visiblePrefix = 0
	}
	if len(s) <= visiblePrefix {
		return "***"
	}
	return s[:visiblePrefix] + "***"
}
