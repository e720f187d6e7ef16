package characters

import "time"

// TimeProvider orders Redis cache entries for eviction
type TimeProvider interface {
	Now() time.Time
}

type RealTimeProvider struct{}

func (r *RealTimeProvider) Now() time.Time {
	return time.Now()
}
