package codeforces

// Freshness describes where a Result's value came from.
type Freshness int

const (
	// Unknown means the fetch failed and nothing could be served.
	Unknown Freshness = iota
	// Fresh means the value was fetched or served within its TTL.
	Fresh
	// Stale means the value is older than its TTL because a refresh failed.
	Stale
)

func (f Freshness) String() string {
	switch f {
	case Fresh:
		return "fresh"
	case Stale:
		return "stale"
	default:
		return "unknown"
	}
}

// Result carries a judge dataset together with whether it is known at all.
// A Known result with an empty Value is a confirmed zero; an unknown one is not.
type Result[T any] struct {
	Value     T
	Freshness Freshness
	Err       error
}

// Known reports whether Value reflects judge data.
func (r Result[T]) Known() bool {
	return r.Freshness != Unknown
}

// Stale reports whether Value is past its TTL.
func (r Result[T]) Stale() bool {
	return r.Freshness == Stale
}

// KnownResult wraps a freshly obtained value.
func KnownResult[T any](v T) Result[T] {
	return Result[T]{Value: v, Freshness: Fresh}
}

// StaleResult wraps a value served after a failed refresh.
func StaleResult[T any](v T, err error) Result[T] {
	return Result[T]{Value: v, Freshness: Stale, Err: err}
}

// UnknownResult records a failed fetch.
func UnknownResult[T any](err error) Result[T] {
	return Result[T]{Freshness: Unknown, Err: err}
}
