package devauth

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Throttle counts failed logins per email and requests per client IP in
// fixed windows. A non-positive limit disables that check.
type Throttle struct {
	failures *gocache.Cache
	requests *gocache.Cache

	maxFailures   int
	failureWindow time.Duration
	maxRequests   int
	requestWindow time.Duration
}

type ThrottleConfig struct {
	MaxFailures   int
	FailureWindow time.Duration
	MaxRequests   int
	RequestWindow time.Duration
}

func NewThrottle(cfg ThrottleConfig) *Throttle {
	return &Throttle{
		failures:      gocache.New(cfg.FailureWindow, time.Minute),
		requests:      gocache.New(cfg.RequestWindow, time.Minute),
		maxFailures:   cfg.MaxFailures,
		failureWindow: cfg.FailureWindow,
		maxRequests:   cfg.MaxRequests,
		requestWindow: cfg.RequestWindow,
	}
}

// AllowRequest counts one request from ip and reports whether it is within
// the limit, plus how long until the window resets.
func (t *Throttle) AllowRequest(ip string) (bool, time.Duration) {
	if t.maxRequests <= 0 || t.requestWindow <= 0 {
		return true, 0
	}
	n := hit(t.requests, ip, t.requestWindow)
	return n <= t.maxRequests, remaining(t.requests, ip)
}

// Locked reports whether email has used up its failures for the window.
func (t *Throttle) Locked(email string) (bool, time.Duration) {
	if t.maxFailures <= 0 {
		return false, 0
	}
	v, found := t.failures.Get(email)
	if !found {
		return false, 0
	}
	if n, _ := v.(int); n >= t.maxFailures {
		return true, remaining(t.failures, email)
	}
	return false, 0
}

// RecordFailure counts a failed attempt and reports whether email is now locked.
func (t *Throttle) RecordFailure(email string) bool {
	if t.maxFailures <= 0 || t.failureWindow <= 0 {
		return false
	}
	return hit(t.failures, email, t.failureWindow) >= t.maxFailures
}

func (t *Throttle) Reset(email string) {
	t.failures.Delete(email)
}

// hit starts a window on first use; later hits keep the original expiry.
func hit(c *gocache.Cache, key string, window time.Duration) int {
	if err := c.Add(key, 1, window); err == nil {
		return 1
	}
	n, err := c.IncrementInt(key, 1)
	if err != nil {
		// Expired between Add and IncrementInt.
		c.Set(key, 1, window)
		return 1
	}
	return n
}

func remaining(c *gocache.Cache, key string) time.Duration {
	_, exp, found := c.GetWithExpiration(key)
	if !found || exp.IsZero() {
		return 0
	}
	if d := time.Until(exp); d > 0 {
		return d
	}
	return 0
}
