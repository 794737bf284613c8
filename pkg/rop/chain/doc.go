// Package chain provides a fluent wrapper around Result[S, F]
// for building synchronous Railway-Oriented chains using solo primitives.
//
// A chain stops at the first failure: once a step fails, every later Then,
// ThenTry and Map is skipped and the failure is carried to the end. Use
// solo.Combine when all failures of independent steps are needed instead.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[S, F] or value
// - Then: switch to a new Result[U, F] via a function
// - ThenTry: call a function (U, error) and convert error to failure
// - Map: transform the successful value (S -> U)
// - Ensure/OnFailure: run side effects without changing the result
// - Filter/Recover: move between the success and failure track
// - Finally: collapse the chain into a final value via handlers
package chain
