package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/chestmenus/internal/testing/leaktest"
)

type testJob struct {
	executed *int32
}

func (j *testJob) Process(ctx context.Context) error {
	atomic.AddInt32(j.executed, 1)
	return nil
}

func TestPool(t *testing.T) {
	var executed int32
	pool := NewPool(TestWorkerCount, TestQueueSize)
	pool.Start()

	job := &testJob{executed: &executed}
	assert.True(t, pool.Enqueue(job))
	assert.True(t, pool.Enqueue(job))

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&executed) == TestExpectedJobCount
	}, TestWorkerProcessWaitTime*time.Millisecond*10, time.Millisecond)

	pool.Stop()
}

func TestPool_FailingJobKeepsWorkerAlive(t *testing.T) {
	var executed int32
	pool := NewPool(1, TestQueueSize)
	pool.Start()
	defer pool.Stop()

	pool.Enqueue(JobFunc(func(context.Context) error { return errors.New("boom") }))
	pool.Enqueue(&testJob{executed: &executed})

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&executed) == 1
	}, time.Second, time.Millisecond)
}

func TestPool_TryEnqueueWhenFull(t *testing.T) {
	pool := NewPool(1, 1)
	// not started: nothing drains the queue
	noop := JobFunc(func(context.Context) error { return nil })

	assert.True(t, pool.TryEnqueue(noop))
	assert.False(t, pool.TryEnqueue(noop))

	pool.Stop()
	assert.False(t, pool.TryEnqueue(noop))
	assert.False(t, pool.Enqueue(noop))
}

func TestPool_StopIsIdempotent(t *testing.T) {
	pool := NewPool(1, 1)
	pool.Start()
	pool.Stop()
	pool.Stop()
}

func TestPool_StopReleasesWorkers(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		p := NewPool(TestWorkerCount, TestQueueSize)
		p.Start()
		p.Stop()
	})
}
