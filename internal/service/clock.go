package service

import "time"

// Clock supplies the current time for date and created_at stamping.
type Clock func() time.Time

func (c Clock) now() time.Time {
	if c == nil {
		return time.Now()
	}
	return c()
}
