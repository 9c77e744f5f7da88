package composables

import (
	"context"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/require"

	"github.com/claimdesk/claimdesk/pkg/configuration"
)

func TestWithAcquireDeadline(t *testing.T) {
	t.Run("zero timeout leaves the context unbounded", func(t *testing.T) {
		ctx, cancel := withAcquireDeadline(context.Background(), 0)
		defer cancel()
		_, ok := ctx.Deadline()
		require.False(t, ok)
	})

	t.Run("positive timeout sets a deadline", func(t *testing.T) {
		before := time.Now()
		ctx, cancel := withAcquireDeadline(context.Background(), 5*time.Second)
		defer cancel()

		deadline, ok := ctx.Deadline()
		require.True(t, ok)
		require.WithinRange(t, deadline, before, before.Add(6*time.Second))
	})

	t.Run("earlier caller deadline wins", func(t *testing.T) {
		parent, parentCancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer parentCancel()

		ctx, cancel := withAcquireDeadline(parent, time.Hour)
		defer cancel()

		deadline, ok := ctx.Deadline()
		require.True(t, ok)
		parentDeadline, _ := parent.Deadline()
		require.Equal(t, parentDeadline, deadline)
	})
}

func TestUseTx_PoolFallbackBoundsAcquisition(t *testing.T) {
	ctx := WithPool(context.Background(), nil)

	tx, err := UseTx(ctx)
	require.NoError(t, err)

	bound, ok := tx.(boundPool)
	require.True(t, ok, "pool fallback must go through the acquire-bounded executor")
	require.Equal(t, configuration.Use().Database.AcquireTimeout, bound.timeout)
	require.Positive(t, bound.timeout)
}

func TestErrRow_ScanReturnsAcquireError(t *testing.T) {
	cause := errors.New("pool saturated")
	require.ErrorIs(t, errRow{err: cause}.Scan(), cause)
}
