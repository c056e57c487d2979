package domain

// LimitResult is the outcome of counting one hit against a rate limit.
type LimitResult struct {
	Allowed bool
	Count   int64
}
