package offer

import (
	"context"

	"github.com/avolkov/barcounter/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/avolkov/barcounter/internal/services/offer Service

// Service defines the interface for consent-gated drink offers
type Service interface {
	// Create registers an offer keyed by its prompt message, adding the
	// drink to the menu with default attributes when it is missing
	Create(ctx context.Context, input *CreateInput) (*CreateOutput, error)

	// Resolve applies a consent signal to the offer behind a prompt
	// message; an accepted offer consumes the drink for the target
	Resolve(ctx context.Context, input *ResolveInput) (*ResolveOutput, error)

	// Pending returns the live offer behind a prompt message, if any
	Pending(messageID string) (*models.Offer, bool)

	// Sweep removes every lapsed offer from the registry and returns them
	// so their prompt messages can be cleaned up
	Sweep() *SweepOutput
}
