// Package async provides small generic helpers for running computations
// concurrently and joining their results.
//
// A Future represents the eventual result of a computation. Async starts a
// function on its own goroutine; Run and Resolved produce futures that are
// already settled, so synchronous and deferred work can be mixed in the same
// fan-out. WaitAll joins any number of futures and returns their results by
// position, not by completion time:
//
//	futures := []*async.Future[string]{
//	    async.Async(ctx, id, lookup),
//	    async.Run(func() (string, error) { return check(value), nil }),
//	}
//	results, err := async.WaitAll(futures...)
//
// Panics inside a task are recovered and reported as ErrPanic, wrapped with
// the recovered value.
package async
