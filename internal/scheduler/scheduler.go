// Package scheduler runs the periodic maintenance jobs: intoxication
// decay, the daily restock and the expired-offer sweep.
package scheduler

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/avolkov/barcounter/internal/common/clock"
	"github.com/avolkov/barcounter/internal/services/bar"
	"github.com/avolkov/barcounter/internal/services/offer"
)

const (
	defaultDecayInterval = time.Minute
	defaultDecayStep     = 1
	defaultSweepInterval = 10 * time.Minute
)

// Notifier cleans up the prompt message of a lapsed offer.
type Notifier interface {
	DeleteOfferPrompt(channelID, messageID string) error
}

// SchedulerError is a typed error for scheduler configuration
type SchedulerError string

// Error implements the error interface
func (e SchedulerError) Error() string {
	return string(e)
}

const (
	// ErrNilConfig is returned when a nil config is provided
	ErrNilConfig = SchedulerError("config cannot be nil")

	// ErrNilBarService is returned when no bar service is provided
	ErrNilBarService = SchedulerError("bar service cannot be nil")

	// ErrNilOfferService is returned when no offer service is provided
	ErrNilOfferService = SchedulerError("offer service cannot be nil")

	// ErrNilClock is returned when no clock is provided
	ErrNilClock = SchedulerError("clock cannot be nil")
)

// Config holds configuration for the maintenance scheduler
type Config struct {
	// BarService runs the decay and restock jobs
	BarService bar.Service

	// OfferService runs the expiry sweep
	OfferService offer.Service

	// Notifier deletes the prompt messages of swept offers; may be nil
	Notifier Notifier

	// Clock supplies the time for the restock alignment
	Clock clock.Clock

	// DecayInterval is how often the decay job runs; defaults to a minute
	DecayInterval time.Duration

	// DecayStep is how many points one decay pass removes; defaults to 1
	DecayStep int

	// SweepInterval is how often lapsed offers are swept; defaults to
	// ten minutes
	SweepInterval time.Duration
}

// Scheduler drives the three maintenance jobs on their own tickers.
type Scheduler struct {
	barService   bar.Service
	offerService offer.Service
	notifier     Notifier
	clock        clock.Clock

	decayInterval time.Duration
	decayStep     int
	sweepInterval time.Duration

	stopOnce sync.Once
	stop     chan struct{}
	wg       sync.WaitGroup
}

// New creates a new maintenance scheduler
func New(cfg *Config) (*Scheduler, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.BarService == nil {
		return nil, ErrNilBarService
	}
	if cfg.OfferService == nil {
		return nil, ErrNilOfferService
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	s := &Scheduler{
		barService:    cfg.BarService,
		offerService:  cfg.OfferService,
		notifier:      cfg.Notifier,
		clock:         cfg.Clock,
		decayInterval: cfg.DecayInterval,
		decayStep:     cfg.DecayStep,
		sweepInterval: cfg.SweepInterval,
		stop:          make(chan struct{}),
	}

	if s.decayInterval <= 0 {
		s.decayInterval = defaultDecayInterval
	}
	if s.decayStep <= 0 {
		s.decayStep = defaultDecayStep
	}
	if s.sweepInterval <= 0 {
		s.sweepInterval = defaultSweepInterval
	}

	return s, nil
}

// Start launches the job goroutines. They run until Stop is called or
// the context is cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	s.wg.Add(3)
	go s.runDecay(ctx)
	go s.runSweep(ctx)
	go s.runRestock(ctx)
}

// Stop halts the jobs and waits for them to finish
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
	s.wg.Wait()
}

func (s *Scheduler) runDecay(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.decayInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.decayOnce(ctx)
		case <-s.stop:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (s *Scheduler) runSweep(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweepOnce()
		case <-s.stop:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (s *Scheduler) runRestock(ctx context.Context) {
	defer s.wg.Done()

	// Align the first run to the next local midnight, then keep a daily
	// cadence from there
	timer := time.NewTimer(time.Until(nextMidnight(s.clock.Now())))
	defer timer.Stop()

	for {
		select {
		case <-timer.C:
			s.restockOnce(ctx)
			timer.Reset(time.Until(nextMidnight(s.clock.Now())))
		case <-s.stop:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (s *Scheduler) decayOnce(ctx context.Context) {
	err := s.barService.DecayTick(ctx, &bar.DecayTickInput{Step: s.decayStep})
	if err != nil {
		log.Printf("Decay job failed: %v", err)
	}
}

func (s *Scheduler) sweepOnce() {
	swept := s.offerService.Sweep()
	if len(swept.Expired) == 0 {
		return
	}

	log.Printf("Swept %d expired offers", len(swept.Expired))

	if s.notifier == nil {
		return
	}
	for _, o := range swept.Expired {
		if err := s.notifier.DeleteOfferPrompt(o.ChannelID, o.MessageID); err != nil {
			log.Printf("Failed to delete offer prompt %s: %v", o.MessageID, err)
		}
	}
}

func (s *Scheduler) restockOnce(ctx context.Context) {
	out, err := s.barService.RestockAllServers(ctx)
	if err != nil {
		log.Printf("Restock job failed: %v", err)
		return
	}
	log.Printf("Restocked %d drinks", out.Count)
}

// nextMidnight returns the first midnight after t in t's location.
func nextMidnight(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location()).AddDate(0, 0, 1)
}
