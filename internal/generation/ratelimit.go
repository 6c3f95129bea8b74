package generation

import "time"

const window = time.Minute

// RateLimiter is a sliding-window call throttle. It keeps the timestamps of
// recent calls and suspends the caller once the per-minute budget is spent.
// One instance serves one client; callers sharing an instance across
// goroutines must serialize access themselves.
type RateLimiter struct {
	callsPerMinute int
	calls          []time.Time

	now   func() time.Time
	sleep func(time.Duration)
}

func NewRateLimiter(callsPerMinute int) *RateLimiter {
	return &RateLimiter{
		callsPerMinute: callsPerMinute,
		now:            time.Now,
		sleep:          time.Sleep,
	}
}

func (r *RateLimiter) purge() {
	now := r.now()
	kept := r.calls[:0]
	for _, t := range r.calls {
		if now.Sub(t) < window {
			kept = append(kept, t)
		}
	}
	r.calls = kept
}

// WaitIfNeeded blocks until a call may proceed, then records it. The wait is
// not cancellable; it always runs to completion.
func (r *RateLimiter) WaitIfNeeded() {
	r.purge()
	if len(r.calls) >= r.callsPerMinute {
		// Wait until the oldest recorded call leaves the window.
		wait := window - r.now().Sub(r.calls[0])
		if wait > 0 {
			r.sleep(wait)
		}
		r.purge()
	}
	r.calls = append(r.calls, r.now())
}
