package scheduler

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"cityweather/internal/store"
)

// Scheduler periodically refreshes weather data for all registered cities.
type Scheduler struct {
	scheduler *gocron.Scheduler
	store     *store.WeatherStore
	interval  time.Duration
	timeout   time.Duration
}

// New creates a new Scheduler.
func New(st *store.WeatherStore, interval, timeout time.Duration) *Scheduler {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		store:     st,
		interval:  interval,
		timeout:   timeout,
	}
}

// Start schedules the periodic job and starts the underlying scheduler.
func (s *Scheduler) Start() error {
	if s.interval <= 0 {
		log.Println("scheduler: refresh disabled")
		return nil
	}

	minutes := int(s.interval.Minutes())
	if minutes <= 0 {
		minutes = 15
	}

	_, err := s.scheduler.Every(minutes).Minutes().Do(func() {
		names := s.store.ListNames()
		log.Printf("scheduler: refreshing %d cities", len(names))

		var wg sync.WaitGroup
		for _, name := range names {
			name := name
			wg.Add(1)
			go func() {
				defer wg.Done()

				ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
				defer cancel()

				s.store.Refresh(ctx, name)
			}()
		}
		wg.Wait()
		log.Println("scheduler: completed refresh job")
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
