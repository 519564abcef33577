package component_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/onflow/flow-witness/module"
	"github.com/onflow/flow-witness/module/component"
	"github.com/onflow/flow-witness/module/irrecoverable"
	"github.com/onflow/flow-witness/utils/unittest"
)

func TestComponentManagerShutdown(t *testing.T) {
	mgr := component.NewComponentManagerBuilder().
		AddWorker(func(ctx irrecoverable.SignalerContext, ready component.ReadyFunc) {
			ready()
			<-ctx.Done()
		}).
		Build()

	parent, cancel := context.WithCancel(context.Background())
	ctx := irrecoverable.NewMockSignalerContext(t, parent)
	mgr.Start(ctx)

	unittest.RequireCloseBefore(t, mgr.Ready(), time.Second, "component not ready")
	cancel()
	unittest.RequireCloseBefore(t, mgr.ShutdownSignal(), time.Second, "no shutdown signal")
	unittest.RequireCloseBefore(t, mgr.Done(), time.Second, "component not done")
}

func TestComponentManagerThrow(t *testing.T) {
	expected := errors.New("fatal")
	mgr := component.NewComponentManagerBuilder().
		AddWorker(func(ctx irrecoverable.SignalerContext, ready component.ReadyFunc) {
			ready()
			ctx.Throw(expected)
		}).
		Build()

	ctx, errChan := irrecoverable.WithSignaler(context.Background())
	mgr.Start(ctx)

	select {
	case err := <-errChan:
		require.ErrorIs(t, err, expected)
	case <-time.After(time.Second):
		require.Fail(t, "error was not propagated")
	}
	unittest.RequireCloseBefore(t, mgr.Done(), time.Second, "component not done")
}

func TestComponentManagerStartTwice(t *testing.T) {
	mgr := component.NewComponentManagerBuilder().Build()
	ctx, cancel := irrecoverable.NewMockSignalerContextWithCancel(t, context.Background())
	defer cancel()

	mgr.Start(ctx)
	require.PanicsWithValue(t, module.ErrMultipleStartup, func() {
		mgr.Start(ctx)
	})
}
