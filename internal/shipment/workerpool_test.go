package shipment

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkerPool_AddTask(t *testing.T) {
	tests := []struct {
		name           string
		numTasks       int
		numWorkers     int
		expectedErrors int
	}{
		{
			name:       "All tasks succeed",
			numTasks:   10,
			numWorkers: 3,
		},
		{
			name:           "Some tasks fail",
			numTasks:       10,
			numWorkers:     3,
			expectedErrors: 4,
		},
		{
			name:       "Single worker drains the queue",
			numTasks:   5,
			numWorkers: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wp := NewWorkerPool(tt.numWorkers)
			defer wp.Close()

			var executed int32
			var failed int32
			var wg sync.WaitGroup

			for i := 0; i < tt.numTasks; i++ {
				wg.Add(1)
				shouldFail := i < tt.expectedErrors
				err := wp.AddTask(context.Background(), func() error {
					defer wg.Done()
					atomic.AddInt32(&executed, 1)
					if shouldFail {
						atomic.AddInt32(&failed, 1)
						return errors.New("task failed")
					}
					return nil
				})
				assert.NoError(t, err)
			}
			wg.Wait()

			assert.Equal(t, int32(tt.numTasks), atomic.LoadInt32(&executed))
			assert.Equal(t, int32(tt.expectedErrors), atomic.LoadInt32(&failed))
		})
	}
}

func TestWorkerPool_AddTaskCanceledContext(t *testing.T) {
	wp := NewWorkerPool(1)
	defer wp.Close()

	// saturate the queue so AddTask has to block
	block := make(chan struct{})
	defer close(block)
	for i := 0; i < 2; i++ {
		_ = wp.AddTask(context.Background(), func() error {
			<-block
			return nil
		})
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := wp.AddTask(ctx, func() error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}
