package utils

import "time"

// ParseTimePtr turns an RFC3339 string pointer from a read query into
// *time.Time in UTC. Nil, empty and malformed inputs all yield nil; the
// caller decides whether a missing timestamp matters.
func ParseTimePtr(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	parsed, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		return nil
	}
	utc := parsed.UTC()
	return &utc
}

// TimeOrZero dereferences p, substituting the zero time for nil.
func TimeOrZero(p *time.Time) time.Time {
	if p == nil {
		return time.Time{}
	}
	return *p
}
