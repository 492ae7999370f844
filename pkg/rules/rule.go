package rules

import (
	"context"

	"github.com/dmitrymomot/formulate/pkg/async"
)

// Func is a synchronous check. It returns an empty string when the value passes.
type Func func(c Context, args ...string) string

// AsyncFunc is a deferred check that may block and may fail.
// A returned error means validity could not be determined.
type AsyncFunc func(ctx context.Context, c Context, args ...string) (string, error)

// Rule is a tagged validator capability holding exactly one of Func or AsyncFunc.
type Rule struct {
	sync  Func
	async AsyncFunc
}

// Sync wraps an immediate check.
func Sync(fn Func) Rule {
	return Rule{sync: fn}
}

// Async wraps a deferred check that runs on its own goroutine.
func Async(fn AsyncFunc) Rule {
	return Rule{async: fn}
}

// IsAsync reports whether the rule is a deferred check.
func (r Rule) IsAsync() bool {
	return r.async != nil
}

// IsZero reports whether the rule carries no implementation.
func (r Rule) IsZero() bool {
	return r.sync == nil && r.async == nil
}

// Run starts the check and returns a future of its message.
// Synchronous checks settle before Run returns; panics in either variant
// settle the future with async.ErrPanic.
func (r Rule) Run(ctx context.Context, c Context, args ...string) *async.Future[string] {
	if r.async != nil {
		return async.Async(ctx, c, func(ctx context.Context, c Context) (string, error) {
			return r.async(ctx, c, args...)
		})
	}
	if r.sync == nil {
		return async.Resolved("", ErrInvalidRule)
	}
	return async.Run(func() (string, error) {
		return r.sync(c, args...), nil
	})
}
