package models

import (
	"time"
)

// Offer is an in-flight drink proposal awaiting the target's consent.
// Offers are transient: they live only in the process-wide registry and
// are keyed by the Discord message ID of the prompt.
type Offer struct {
	// MessageID is the ID of the prompt message carrying the consent reactions
	MessageID string

	// ChannelID is the channel the prompt was sent to
	ChannelID string

	// GuildID is the guild the offer was made in
	GuildID string

	// FromUserID is the member who offered the drink
	FromUserID string

	// TargetUserID is the member who must accept or decline
	TargetUserID string

	// DrinkName is the name of the offered drink
	DrinkName string

	// CreatedAt is when the offer was registered
	CreatedAt time.Time

	// ExpiresAt is when the offer lapses if nobody reacts
	ExpiresAt time.Time
}

// Expired reports whether the offer has lapsed at the given time.
func (o *Offer) Expired(now time.Time) bool {
	return now.After(o.ExpiresAt)
}
