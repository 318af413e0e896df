package breaker_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"library-management/pkg/breaker"
)

func TestBreaker_Call(t *testing.T) {
	t.Parallel()

	ok := func() error { return nil }
	fail := func() error { return errors.New("broker down") }

	t.Run("trips open after enough failures", func(t *testing.T) {
		t.Parallel()
		b := breaker.New(10, time.Minute, 0.5, 2)

		for i := 0; i < 5; i++ {
			require.NoError(t, b.Call(ok))
		}
		for i := 0; i < 5; i++ {
			require.EqualError(t, b.Call(fail), "broker down")
		}
		// tail is now 50% failures, the breaker is open
		require.ErrorIs(t, b.Call(ok), breaker.ErrOpen)
	})

	t.Run("recovers through half-open after the cooldown", func(t *testing.T) {
		t.Parallel()
		b := breaker.New(4, 10*time.Millisecond, 0.5, 1)

		require.EqualError(t, b.Call(fail), "broker down")
		require.EqualError(t, b.Call(fail), "broker down")
		require.ErrorIs(t, b.Call(ok), breaker.ErrOpen)

		time.Sleep(20 * time.Millisecond)

		// probes succeed, the breaker closes again
		require.NoError(t, b.Call(ok))
		require.NoError(t, b.Call(ok))
		require.NoError(t, b.Call(ok))
	})

	t.Run("a failing probe reopens immediately", func(t *testing.T) {
		t.Parallel()
		b := breaker.New(4, 10*time.Millisecond, 0.5, 3)

		require.EqualError(t, b.Call(fail), "broker down")
		require.EqualError(t, b.Call(fail), "broker down")
		require.ErrorIs(t, b.Call(ok), breaker.ErrOpen)

		time.Sleep(20 * time.Millisecond)

		require.EqualError(t, b.Call(fail), "broker down")
		require.ErrorIs(t, b.Call(ok), breaker.ErrOpen)
	})
}
