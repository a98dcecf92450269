package catch

// Fine always holds a value T and may additionally carry one error E
// reporting that something went wrong while the value was produced.
// Whether it is tainted is tracked apart from E, so a zero E can be an error.
type Fine[T, E any] struct {
	value   T
	err     E
	tainted bool
}

func Clean[T, E any](v T) Fine[T, E] {
	return Fine[T, E]{value: v}
}

func Tainted[T, E any](v T, e E) Fine[T, E] {
	return Fine[T, E]{value: v, err: e, tainted: true}
}

// FineOf pairs a best-effort value with an optional error.
// A nil err, including a typed nil pointer, map,
// slice or func, gives a clean Fine.
func FineOf[T any](v T, err error) Fine[T, error] {
	if isNil(err) {
		return Clean[T, error](v)
	}
	return Tainted(v, err)
}

func (f Fine[T, E]) Value() T {
	return f.value
}

// Err returns the side error and whether there is one.
func (f Fine[T, E]) Err() (E, bool) {
	return f.err, f.tainted
}

func (f Fine[T, E]) IsClean() bool {
	return !f.tainted
}

// Catch calls handler with the side error, if any, then returns the value.
func (f Fine[T, E]) Catch(handler func(E)) T {
	if f.tainted {
		handler(f.err)
	}
	return f.value
}

// CatchItem appends the side error, if any, to dst, then returns the value.
func (f Fine[T, E]) CatchItem(dst Appender[E]) T {
	if f.tainted {
		dst.Append(f.err)
	}
	return f.value
}

// CatchFineInto appends conv(err), if f is tainted, to dst and returns the value.
func CatchFineInto[T, E, Item any](f Fine[T, E], dst Appender[Item], conv Convert[E, Item]) T {
	return f.CatchItem(Into(dst, conv))
}
