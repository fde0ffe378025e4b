package inventory

import "context"

// TickJob advances the shop by one day when processed by the worker pool
type TickJob struct {
	service Service
}

// NewTickJob creates a job that advances svc by one day per run
func NewTickJob(svc Service) *TickJob {
	return &TickJob{service: svc}
}

// Process advances the day
func (j *TickJob) Process(ctx context.Context) error {
	_, err := j.service.AdvanceDay(ctx)
	return err
}
