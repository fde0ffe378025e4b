package bootstrap

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	calls *[]string
	name  string
	err   error
}

func (r recorder) Stop() {
	*r.calls = append(*r.calls, r.name)
}

type serverRecorder recorder

func (r serverRecorder) Stop(ctx context.Context) error {
	*r.calls = append(*r.calls, r.name)
	return r.err
}

func TestGracefulShutdown_Order(t *testing.T) {
	var calls []string

	err := GracefulShutdown(context.Background(), ShutdownComponents{
		Server:     serverRecorder{calls: &calls, name: "server"},
		Scheduler:  recorder{calls: &calls, name: "scheduler"},
		WorkerPool: recorder{calls: &calls, name: "pool"},
	})

	assert.NoError(t, err)
	assert.Equal(t, []string{"server", "scheduler", "pool"}, calls)
}

func TestGracefulShutdown_ServerErrorStillStopsWorkers(t *testing.T) {
	var calls []string
	stopErr := errors.New("deadline exceeded")

	err := GracefulShutdown(context.Background(), ShutdownComponents{
		Server:     serverRecorder{calls: &calls, name: "server", err: stopErr},
		WorkerPool: recorder{calls: &calls, name: "pool"},
	})

	assert.ErrorIs(t, err, stopErr)
	assert.Equal(t, []string{"server", "pool"}, calls)
}

func TestGracefulShutdown_ManualTicksOnly(t *testing.T) {
	var calls []string

	err := GracefulShutdown(context.Background(), ShutdownComponents{
		Server: serverRecorder{calls: &calls, name: "server"},
	})

	assert.NoError(t, err)
	assert.Equal(t, []string{"server"}, calls)
}
