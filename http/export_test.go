package http

import "time"

// SetNow overrides the clock used by the limiter.
func (l *ClientLimiter) SetNow(fn func() time.Time) { l.now = fn }
