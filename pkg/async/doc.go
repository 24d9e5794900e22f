// Package async provides a small generic Future type used to carry the eventual
// result of an asynchronous validator.
//
// A Future is obtained either by calling Async, which runs the supplied function
// in its own goroutine, or by calling Resolved, which returns a Future that is
// already complete. The latter lets synchronous validators be used wherever an
// asynchronous validator is expected without spawning goroutines.
//
// # Usage
//
//	future := async.Async(ctx, "john", func(ctx context.Context, name string) (bool, error) {
//	    return store.UsernameTaken(ctx, name)
//	})
//
//	taken, err := future.AwaitContext(ctx)
//
// # Error Handling
//
// Await returns the error produced by the callback. AwaitContext additionally
// returns the context error when the context ends first, and WaitAll stops at the
// first failing future.
package async
