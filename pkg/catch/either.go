package catch

// Either holds exactly one of a success value T or an error value E.
// The zero value is Ok with the zero T.
//
// An Either is meant to be consumed once: after one of the Catch operations
// the caller should keep only the returned residue.
type Either[T, E any] struct {
	value T
	err   E
	isErr bool
}

func Ok[T, E any](v T) Either[T, E] {
	return Either[T, E]{value: v}
}

func Err[T, E any](e E) Either[T, E] {
	return Either[T, E]{err: e, isErr: true}
}

// FromResult lifts the usual (T, error) pair into an Either.
// A nil err, including a typed nil pointer, map,
// slice or func, gives Ok.
func FromResult[T any](v T, err error) Either[T, error] {
	if isNil(err) {
		return Ok[T, error](v)
	}
	return Err[T](err)
}

func (o Either[T, E]) IsOk() bool {
	return !o.isErr
}

func (o Either[T, E]) IsErr() bool {
	return o.isErr
}

// Get inspects the outcome without routing anything.
// The bool reports whether the outcome is Ok.
func (o Either[T, E]) Get() (T, E, bool) {
	return o.value, o.err, !o.isErr
}

// Catch calls handler with the error, if any, and returns the value if any.
func (o Either[T, E]) Catch(handler func(E)) Option[T] {
	if !o.isErr {
		return Some(o.value)
	}
	handler(o.err)
	return None[T]()
}

// CatchItem appends the error, if any, to dst and returns the value if any.
func (o Either[T, E]) CatchItem(dst Appender[E]) Option[T] {
	if !o.isErr {
		return Some(o.value)
	}
	dst.Append(o.err)
	return None[T]()
}

// CatchInto appends conv(err), if there is an error, to dst.
func CatchInto[T, E, Item any](o Either[T, E], dst Appender[Item], conv Convert[E, Item]) Option[T] {
	return o.CatchItem(Into(dst, conv))
}
