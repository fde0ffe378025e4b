package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/GildedRose_Go/internal/logger"
	"github.com/osse101/GildedRose_Go/internal/worker"
)

// Log messages
const (
	LogMsgJobScheduled = "Job scheduled"
	LogMsgTickSkipped  = "Worker queue full, skipping scheduled run"
)

type entry struct {
	interval time.Duration
	job      worker.Job
}

// Scheduler feeds jobs to a worker pool at fixed intervals
type Scheduler struct {
	workerPool *worker.Pool
	entries    []entry
	quit       chan struct{}
	wg         sync.WaitGroup
	startOnce  sync.Once
	stopOnce   sync.Once
}

// New creates a new scheduler
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		quit:       make(chan struct{}),
	}
}

// Schedule registers a job to run at a fixed interval once Start is called
func (s *Scheduler) Schedule(interval time.Duration, job worker.Job) {
	s.entries = append(s.entries, entry{interval: interval, job: job})
}

// Start launches one ticker per registered job
func (s *Scheduler) Start() {
	s.startOnce.Do(func() {
		log := logger.FromContext(context.Background())
		for _, e := range s.entries {
			s.wg.Add(1)
			go s.run(e)
			log.Info(LogMsgJobScheduled, "interval", e.interval)
		}
	})
}

func (s *Scheduler) run(e entry) {
	defer s.wg.Done()
	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			// A full queue means the previous run is still pending; drop this one
			// rather than letting runs pile up behind a slow job.
			if !s.workerPool.TryEnqueue(e.job) {
				logger.FromContext(context.Background()).Warn(LogMsgTickSkipped, "interval", e.interval)
			}
		case <-s.quit:
			return
		}
	}
}

// Stop stops all scheduled jobs. Safe to call more than once.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.quit)
		s.wg.Wait()
	})
}
