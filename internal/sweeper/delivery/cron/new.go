package cron

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"

	"hardware-inventory/internal/sweeper"
	"hardware-inventory/pkg/log"
)

// Scheduler runs the sweep on a cron schedule.
type Scheduler struct {
	l    log.Logger
	uc   sweeper.UseCase
	cron *cron.Cron
}

// New registers the sweep under spec, e.g. "@every 1h" or "0 3 * * *".
func New(l log.Logger, uc sweeper.UseCase, spec string) (*Scheduler, error) {
	s := &Scheduler{
		l:    l,
		uc:   uc,
		cron: cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
	}
	if _, err := s.cron.AddFunc(spec, s.run); err != nil {
		return nil, fmt.Errorf("invalid sweep schedule %q: %w", spec, err)
	}
	return s, nil
}

func (s *Scheduler) run() {
	ctx := log.WithRequestID(context.Background(), "sweeper")
	if _, err := s.uc.Sweep(ctx); err != nil {
		s.l.Errorf(ctx, "cron.Scheduler.run: %v", err)
	}
}

// Start runs the schedule in the background.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts the schedule and waits for a running sweep to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
