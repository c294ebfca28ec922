// Package offer keeps the process-wide registry of in-flight drink
// offers. Offers are transient and never persisted: a restart simply
// forgets them, and the prompt messages lapse on their own.
package offer

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/avolkov/barcounter/internal/common/clock"
	"github.com/avolkov/barcounter/internal/models"
	"github.com/avolkov/barcounter/internal/services/bar"
)

const defaultTTL = 10 * time.Minute

// Config holds configuration for the offer service
type Config struct {
	// BarService performs the consumption when an offer is accepted
	BarService bar.Service

	// Clock supplies the time for expiry decisions
	Clock clock.Clock

	// TTL is how long an offer stays open; defaults to ten minutes
	TTL time.Duration
}

// service implements the Service interface
type service struct {
	barService bar.Service
	clock      clock.Clock
	ttl        time.Duration

	mu     sync.Mutex
	offers map[string]*models.Offer
}

// New creates a new offer service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.BarService == nil {
		return nil, ErrNilBarService
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}

	return &service{
		barService: cfg.BarService,
		clock:      cfg.Clock,
		ttl:        ttl,
		offers:     make(map[string]*models.Offer),
	}, nil
}

// Create registers an offer keyed by its prompt message. A drink that is
// not on the menu is added with default attributes first; when that
// fails validation the offer is not registered.
func (s *service) Create(ctx context.Context, input *CreateInput) (*CreateOutput, error) {
	created := false
	_, err := s.barService.AddDrink(ctx, &bar.AddDrinkInput{
		GuildID:         input.GuildID,
		SuggestedLocale: input.SuggestedLocale,
		Name:            input.DrinkName,
		Intoxication:    bar.DefaultIntoxication,
		PortionSize:     bar.DefaultPortionSize,
		PortionsPerDay:  bar.DefaultPortionsPerDay,
	})
	switch {
	case err == nil:
		created = true
	case errors.Is(err, bar.ErrDrinkExists):
		// Already on the menu
	default:
		return nil, err
	}

	now := s.clock.Now()
	o := &models.Offer{
		MessageID:    input.MessageID,
		ChannelID:    input.ChannelID,
		GuildID:      input.GuildID,
		FromUserID:   input.FromUserID,
		TargetUserID: input.TargetUserID,
		DrinkName:    input.DrinkName,
		CreatedAt:    now,
		ExpiresAt:    now.Add(s.ttl),
	}

	s.mu.Lock()
	s.offers[o.MessageID] = o
	s.mu.Unlock()

	return &CreateOutput{Offer: o, DrinkCreated: created}, nil
}

// Resolve applies a consent signal. Signals from anyone but the target,
// signals on unknown messages and signals on lapsed offers resolve to
// none. The offer leaves the registry before the consumption runs, so a
// prompt resolves at most once.
func (s *service) Resolve(ctx context.Context, input *ResolveInput) (*ResolveOutput, error) {
	s.mu.Lock()
	o, ok := s.offers[input.MessageID]
	if !ok || o.TargetUserID != input.UserID || o.Expired(s.clock.Now()) {
		s.mu.Unlock()
		return &ResolveOutput{Resolution: ResolutionNone}, nil
	}
	delete(s.offers, input.MessageID)
	s.mu.Unlock()

	if input.Signal == SignalDecline {
		return &ResolveOutput{Resolution: ResolutionDeclined, Offer: o}, nil
	}

	consumed, err := s.barService.Consume(ctx, &bar.ConsumeInput{
		GuildID:         o.GuildID,
		SuggestedLocale: input.SuggestedLocale,
		UserID:          o.TargetUserID,
		DrinkName:       o.DrinkName,
	})
	if err != nil {
		return nil, err
	}

	return &ResolveOutput{
		Resolution: ResolutionAccepted,
		Offer:      o,
		Consume:    consumed,
	}, nil
}

// Pending returns the live offer behind a prompt message, if any
func (s *service) Pending(messageID string) (*models.Offer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.offers[messageID]
	if !ok || o.Expired(s.clock.Now()) {
		return nil, false
	}
	return o, true
}

// Sweep removes every lapsed offer. Deletions are staged during the scan
// and applied afterwards.
func (s *service) Sweep() *SweepOutput {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	var expired []*models.Offer
	for _, o := range s.offers {
		if o.Expired(now) {
			expired = append(expired, o)
		}
	}
	for _, o := range expired {
		delete(s.offers, o.MessageID)
	}

	return &SweepOutput{Expired: expired}
}
