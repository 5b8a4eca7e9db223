package reactive_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/jmvillota/product-console/pkg/reactive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCell(t *testing.T) {
	t.Parallel()

	t.Run("get returns the current value", func(t *testing.T) {
		c := reactive.NewCell(42)
		assert.Equal(t, 42, c.Get())
		c.Set(7)
		assert.Equal(t, 7, c.Get())
	})

	t.Run("subscribe fires immediately with current value", func(t *testing.T) {
		scope := reactive.NewScope()
		defer scope.Close()

		c := reactive.NewCell("initial")
		var seen []string
		c.Subscribe(scope, func(v string) { seen = append(seen, v) })

		assert.Equal(t, []string{"initial"}, seen)
	})

	t.Run("set notifies subscribers synchronously", func(t *testing.T) {
		scope := reactive.NewScope()
		defer scope.Close()

		c := reactive.NewCell(0)
		var seen []int
		c.Subscribe(scope, func(v int) { seen = append(seen, v) })
		c.Set(1)
		c.Set(2)

		assert.Equal(t, []int{0, 1, 2}, seen)
	})

	t.Run("closed scope blocks late notifications", func(t *testing.T) {
		scope := reactive.NewScope()
		c := reactive.NewCell(0)
		var count int
		c.Subscribe(scope, func(int) { count++ })

		scope.Close()
		c.Set(1)
		c.Set(2)

		assert.Equal(t, 1, count, "only the initial notification should have run")
	})

	t.Run("unsubscribe stops notifications", func(t *testing.T) {
		scope := reactive.NewScope()
		defer scope.Close()

		c := reactive.NewCell(0)
		var count int
		unsubscribe := c.Subscribe(scope, func(int) { count++ })
		unsubscribe()
		c.Set(1)

		assert.Equal(t, 1, count)
	})
}

func TestScope(t *testing.T) {
	t.Parallel()

	t.Run("close runs cleanups once", func(t *testing.T) {
		scope := reactive.NewScope()
		var runs int
		scope.OnClose(func() { runs++ })

		scope.Close()
		scope.Close()

		assert.Equal(t, 1, runs)
		assert.True(t, scope.Closed())
	})

	t.Run("cleanup registered after close runs immediately", func(t *testing.T) {
		scope := reactive.NewScope()
		scope.Close()

		ran := false
		scope.OnClose(func() { ran = true })
		assert.True(t, ran)
	})
}

func TestDebouncer(t *testing.T) {
	t.Parallel()

	t.Run("dispatches only the latest value after the quiet window", func(t *testing.T) {
		d := new(atomic.Value)
		deb := reactive.NewDebouncer(20 * time.Millisecond)
		deb.Trigger("a", func(v string) { d.Store(v) })
		deb.Trigger("ab", func(v string) { d.Store(v) })
		deb.Trigger("abc", func(v string) { d.Store(v) })

		require.Eventually(t, func() bool {
			return d.Load() != nil
		}, time.Second, 5*time.Millisecond)
		assert.Equal(t, "abc", d.Load())
	})

	t.Run("suppresses duplicate consecutive values", func(t *testing.T) {
		var count atomic.Int32
		deb := reactive.NewDebouncer(10 * time.Millisecond)
		deb.Trigger("same", func(string) { count.Add(1) })
		require.Eventually(t, func() bool { return count.Load() == 1 }, time.Second, 5*time.Millisecond)

		deb.Trigger("same", func(string) { count.Add(1) })
		time.Sleep(50 * time.Millisecond)
		assert.Equal(t, int32(1), count.Load())
	})

	t.Run("distinct values both dispatch", func(t *testing.T) {
		var count atomic.Int32
		deb := reactive.NewDebouncer(10 * time.Millisecond)
		deb.Trigger("one", func(string) { count.Add(1) })
		require.Eventually(t, func() bool { return count.Load() == 1 }, time.Second, 5*time.Millisecond)

		deb.Trigger("two", func(string) { count.Add(1) })
		require.Eventually(t, func() bool { return count.Load() == 2 }, time.Second, 5*time.Millisecond)
	})

	t.Run("stop cancels the pending dispatch", func(t *testing.T) {
		var count atomic.Int32
		deb := reactive.NewDebouncer(20 * time.Millisecond)
		deb.Trigger("late", func(string) { count.Add(1) })
		deb.Stop()

		time.Sleep(60 * time.Millisecond)
		assert.Equal(t, int32(0), count.Load())
	})
}
