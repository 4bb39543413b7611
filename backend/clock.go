package backend

import (
	"context"
	"time"
)

// DefaultNowRefresh is how often the current time is re-read.
const DefaultNowRefresh = time.Minute

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to a Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads the wall clock.
var SystemClock Clock = ClockFunc(time.Now)

// FixedClock always reports t.
func FixedClock(t time.Time) Clock {
	return ClockFunc(func() time.Time { return t })
}

// NowStream returns a stream provider that emits clock.Now() immediately and then
// every interval until its context is cancelled. A non-positive interval emits once.
func NowStream(clock Clock, interval time.Duration) func(ctx context.Context) <-chan time.Time {
	return func(ctx context.Context) <-chan time.Time {
		out := make(chan time.Time)
		go func() {
			defer close(out)
			select {
			case out <- clock.Now():
			case <-ctx.Done():
				return
			}
			if interval <= 0 {
				<-ctx.Done()
				return
			}
			ticker := time.NewTicker(interval)
			defer ticker.Stop()
			for {
				select {
				case <-ticker.C:
					select {
					case out <- clock.Now():
					case <-ctx.Done():
						return
					}
				case <-ctx.Done():
					return
				}
			}
		}()
		return out
	}
}
