package database

import "time"

type options struct {
	slowQueryThreshold time.Duration
}

func defaultOptions() options {
	return options{
		slowQueryThreshold: 200 * time.Millisecond,
	}
}

type Option func(*options)

// WithSlowQueryThreshold sets the duration after which a query is
// logged as a warning. Zero disables slow query warnings.
func WithSlowQueryThreshold(d time.Duration) Option {
	return func(o *options) {
		o.slowQueryThreshold = d
	}
}
