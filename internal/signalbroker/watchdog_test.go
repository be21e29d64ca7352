package signalbroker

import (
	"context"
	"os"
	"sync"
	"syscall"
	"testing"
	"time"

	"github.com/prashantv/gostub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchCancelsOnFirstSignal(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	sigCh := make(chan os.Signal, 1)

	done := make(chan struct{})

	go func() {
		Watch(ctx, sigCh, cancel)
		close(done)
	}()

	sigCh <- syscall.SIGINT

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("context was not cancelled after first signal")
	}

	close(sigCh)
	<-done
}

func TestWatchForcesExitOnSecondSignal(t *testing.T) {
	var (
		mu       sync.Mutex
		exitCode int
		exited   bool
	)

	stubs := gostub.Stub(&exit, func(code int) {
		mu.Lock()
		defer mu.Unlock()
		exitCode = code
		exited = true
	})
	defer stubs.Reset()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 2)
	sigCh <- syscall.SIGINT
	sigCh <- syscall.SIGINT
	close(sigCh)

	Watch(ctx, sigCh, cancel)

	mu.Lock()
	defer mu.Unlock()
	require.True(t, exited)
	assert.Equal(t, forcedExitCode, exitCode)
}
