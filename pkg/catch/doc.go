// Package catch splits the error off a fallible value and hands it to a
// destination chosen by the caller, leaving only the success part behind.
//
// Two outcome shapes are supported:
// - Either[T, E]: holds exactly one of a value or an error (Ok/Err)
// - Fine[T, E]: always holds a value, plus an optional side error (Clean/Tainted)
//
// Both implement Catcher, which offers the extraction operations:
// - Catch: call a handler with the error, if any
// - CatchItem: append the error, if any, to an Appender
// - CatchInto/CatchFineInto: append the error after a total Convert
//
// For Either the residue is an Option[T]; for Fine it is the bare T.
// A destination receives a value if and only if an error was present,
// and never more than one per call.
package catch
