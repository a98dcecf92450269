package catch

import "reflect"

// Catcher is implemented by every outcome shape.
// OkOnly is what is left once the error has been routed:
// Option[T] for Either, T for Fine.
type Catcher[E, OkOnly any] interface {
	// Catch calls handler at most once, only when an error is present
	Catch(handler func(E)) OkOnly
	// CatchItem appends the error, when present, to dst
	CatchItem(dst Appender[E]) OkOnly
}

var (
	_ Catcher[error, Option[int]] = Either[int, error]{}
	_ Catcher[error, int]         = Fine[int, error]{}
)

// Appender accepts items one at a time.
type Appender[Item any] interface {
	Append(item Item)
}

// AppenderFunc adapts a function to Appender.
type AppenderFunc[Item any] func(item Item)

func (f AppenderFunc[Item]) Append(item Item) {
	f(item)
}

// Convert is a total mapping from E to Item: it must accept every E and
// cannot fail. Fallible conversions belong before the Catch call.
type Convert[E, Item any] func(E) Item

// Into returns an Appender of E that converts each item with conv and
// appends the result to dst.
func Into[E, Item any](dst Appender[Item], conv Convert[E, Item]) Appender[E] {
	return AppenderFunc[E](func(e E) {
		dst.Append(conv(e))
	})
}

// CatchIntoAs is the shape-agnostic form of CatchInto for generic code.
// When c is not an interface value already, type arguments may need to be
// spelled out.
func CatchIntoAs[E, Item, OkOnly any](c Catcher[E, OkOnly], dst Appender[Item], conv Convert[E, Item]) OkOnly {
	return c.CatchItem(Into(dst, conv))
}

// isNil also treats a nil pointer, map, slice, func, chan or interface
// stored in i as nil.
func isNil(i any) bool {
	if i == nil {
		return true
	}
	switch v := reflect.ValueOf(i); v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}
