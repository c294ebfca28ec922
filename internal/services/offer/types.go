package offer

import (
	"github.com/avolkov/barcounter/internal/models"
	"github.com/avolkov/barcounter/internal/services/bar"
)

// Signal is the consent reaction a member gave on an offer prompt
type Signal string

const (
	// SignalAccept means the target accepted the offered drink
	SignalAccept = Signal("accept")

	// SignalDecline means the target turned the offer down
	SignalDecline = Signal("decline")
)

// Resolution is what an offer signal resolved to
type Resolution string

const (
	// ResolutionNone means the signal changed nothing: unknown message,
	// wrong member, or a lapsed offer
	ResolutionNone = Resolution("none")

	// ResolutionAccepted means the target accepted and the drink was consumed
	ResolutionAccepted = Resolution("accepted")

	// ResolutionDeclined means the target declined the offer
	ResolutionDeclined = Resolution("declined")
)

// CreateInput contains parameters for registering an offer
type CreateInput struct {
	GuildID         string
	SuggestedLocale string

	// MessageID is the ID of the prompt message carrying the reactions
	MessageID string

	// ChannelID is the channel the prompt was sent to
	ChannelID string

	FromUserID   string
	TargetUserID string
	DrinkName    string
}

// CreateOutput contains the registered offer
type CreateOutput struct {
	Offer *models.Offer

	// DrinkCreated is true when the offered drink was not on the menu
	// and got registered with default attributes
	DrinkCreated bool
}

// ResolveInput contains parameters for resolving a consent signal
type ResolveInput struct {
	MessageID       string
	UserID          string
	Signal          Signal
	SuggestedLocale string
}

// ResolveOutput contains the result of a consent signal
type ResolveOutput struct {
	Resolution Resolution

	// Offer is the resolved offer; nil when Resolution is none
	Offer *models.Offer

	// Consume carries the consumption outcome when the offer was accepted
	Consume *bar.ConsumeOutput
}

// SweepOutput contains the offers removed by an expiry sweep
type SweepOutput struct {
	Expired []*models.Offer
}
