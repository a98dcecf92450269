// Package sink contains ready-made destinations for caught errors.
//
// - Slice, Set: plain collections implementing catch.Appender
// - Journal: records every caught error with an id and a UTC timestamp
// - Errors: folds caught errors into one combined error
// - Log, LogLevel: handlers that write caught errors to an apex/log logger
// - Wrap: a total conversion that annotates an error with a message
//
// None of the destinations lock. Sharing one between goroutines needs
// external synchronization.
package sink
