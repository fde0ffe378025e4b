package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/osse101/GildedRose_Go/internal/logger"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type testJob struct {
	executed *int32
	err      error
	done     chan string
}

func (j *testJob) Process(ctx context.Context) error {
	atomic.AddInt32(j.executed, 1)
	if j.done != nil {
		j.done <- logger.GetRequestID(ctx)
	}
	return j.err
}

func TestPool(t *testing.T) {
	var executed int32
	done := make(chan string, TestExpectedJobCount)
	pool := NewPool(TestWorkerCount, TestQueueSize)
	pool.Start()
	defer pool.Stop()

	job := &testJob{executed: &executed, done: done}
	require.True(t, pool.TryEnqueue(job))
	require.True(t, pool.TryEnqueue(job))

	ids := make(map[string]bool)
	for i := 0; i < TestExpectedJobCount; i++ {
		select {
		case id := <-done:
			assert.NotEmpty(t, id, "jobs run with a request ID")
			ids[id] = true
		case <-time.After(time.Second):
			t.Fatal("timeout waiting for jobs")
		}
	}

	assert.Equal(t, int32(TestExpectedJobCount), atomic.LoadInt32(&executed))
	assert.Len(t, ids, TestExpectedJobCount)
}

func TestPool_FailingJobDoesNotStopWorker(t *testing.T) {
	var executed int32
	done := make(chan string, 2)
	pool := NewPool(1, TestQueueSize)
	pool.Start()
	defer pool.Stop()

	require.True(t, pool.TryEnqueue(&testJob{executed: &executed, err: errors.New("boom"), done: done}))
	require.True(t, pool.TryEnqueue(&testJob{executed: &executed, done: done}))

	for i := 0; i < 2; i++ {
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("timeout waiting for jobs")
		}
	}
	assert.Equal(t, int32(2), atomic.LoadInt32(&executed))
}

func TestPool_TryEnqueue(t *testing.T) {
	var executed int32
	pool := NewPool(1, 1)

	// Not started: the single queue slot fills up
	assert.True(t, pool.TryEnqueue(&testJob{executed: &executed}))
	assert.False(t, pool.TryEnqueue(&testJob{executed: &executed}))

	pool.Stop()
	assert.False(t, pool.TryEnqueue(&testJob{executed: &executed}), "stopped pool refuses jobs")
}

func TestPool_StopIsIdempotent(t *testing.T) {
	var executed int32
	pool := NewPool(1, 1)
	pool.Start()
	pool.Stop()
	pool.Stop()

	assert.False(t, pool.TryEnqueue(&testJob{executed: &executed}))
	assert.Equal(t, int32(0), atomic.LoadInt32(&executed))
}
