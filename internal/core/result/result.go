// Package result models the outcome of a data fetch as an explicit state
// instead of loose loading/error flags.
package result

type Status string

const (
	StatusPending   Status = "pending"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// Result is Pending in its zero value.
type Result[T any] struct {
	status Status
	value  T
	err    error
}

func Succeeded[T any](value T) Result[T] {
	return Result[T]{status: StatusSucceeded, value: value}
}

func Failed[T any](err error) Result[T] {
	return Result[T]{status: StatusFailed, err: err}
}

func (r Result[T]) Status() Status {
	if r.status == "" {
		return StatusPending
	}
	return r.status
}

func (r Result[T]) IsPending() bool   { return r.Status() == StatusPending }
func (r Result[T]) IsSucceeded() bool { return r.status == StatusSucceeded }
func (r Result[T]) IsFailed() bool    { return r.status == StatusFailed }

// Value returns the fetched value, or the zero value unless Succeeded.
func (r Result[T]) Value() T {
	return r.value
}

func (r Result[T]) Err() error {
	return r.err
}

// Reason is the failure message, empty unless Failed.
func (r Result[T]) Reason() string {
	if r.err == nil {
		return ""
	}
	return r.err.Error()
}
