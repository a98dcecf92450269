package catch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func catchAll[E, OkOnly any](dst Appender[E], outcomes ...Catcher[E, OkOnly]) []OkOnly {
	res := make([]OkOnly, 0, len(outcomes))
	for _, o := range outcomes {
		res = append(res, o.CatchItem(dst))
	}
	return res
}

func TestCatcher_Either(t *testing.T) {
	t.Parallel()

	dst := &sliceSink[string]{}
	res := catchAll[string, Option[int]](dst,
		Ok[int, string](1),
		Err[int]("a"),
		Ok[int, string](3),
		Err[int]("b"),
	)

	assert.Equal(t, []Option[int]{Some(1), None[int](), Some(3), None[int]()}, res)
	assert.Equal(t, []string{"a", "b"}, dst.items)
}

func TestCatcher_Fine(t *testing.T) {
	t.Parallel()

	dst := &sliceSink[string]{}
	res := catchAll[string, int](dst,
		Clean[int, string](1),
		Tainted(2, "a"),
		Tainted(3, "b"),
	)

	assert.Equal(t, []int{1, 2, 3}, res)
	assert.Equal(t, []string{"a", "b"}, dst.items)
}

func TestCatchIntoAs(t *testing.T) {
	t.Parallel()

	dst := &sliceSink[int]{}
	length := Convert[string, int](func(s string) int { return len(s) })

	o := CatchIntoAs[string, int, Option[bool]](Err[bool]("abc"), dst, length)
	assert.True(t, o.IsNone())

	v := CatchIntoAs[string, int, bool](Tainted(true, "ab"), dst, length)
	assert.True(t, v)

	assert.Equal(t, []int{3, 2}, dst.items)
}

func TestAppenderFunc(t *testing.T) {
	t.Parallel()

	var n int
	dst := AppenderFunc[string](func(string) { n++ })

	Err[int]("x").CatchItem(dst)
	Ok[int, string](1).CatchItem(dst)
	Tainted(1, "y").CatchItem(dst)

	assert.Equal(t, 2, n)
}

func TestInto(t *testing.T) {
	t.Parallel()

	dst := &sliceSink[string]{}
	into := Into[int, string](dst, func(i int) string { return string(rune('a' + i)) })

	into.Append(0)
	into.Append(2)

	assert.Equal(t, []string{"a", "c"}, dst.items)
}

func TestOption(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 5, Some(5).OrElse(9))
	assert.Equal(t, 9, None[int]().OrElse(9))
	assert.True(t, Some(0).IsSome())
	assert.True(t, None[string]().IsNone())

	v, ok := None[int]().Get()
	assert.Equal(t, 0, v)
	assert.False(t, ok)
}
