package bar

import "github.com/avolkov/barcounter/internal/models"

// Default attributes for drinks added without explicit values, matching
// the seed-menu style portions.
const (
	DefaultIntoxication   = 20
	DefaultPortionSize    = 200
	DefaultPortionsPerDay = 10
)

// EnsureServerInput contains parameters for resolving a guild's server
type EnsureServerInput struct {
	GuildID string

	// SuggestedLocale is the platform's preferred locale for the guild,
	// honored only when the server row is first created
	SuggestedLocale string
}

// EnsureServerOutput contains the resolved server
type EnsureServerOutput struct {
	Server *models.Server

	// Created is true when this call created the server row
	Created bool
}

// RemoveServerInput contains parameters for a cascading server removal
type RemoveServerInput struct {
	GuildID string
}

// ConsumeInput contains parameters for a consumption
type ConsumeInput struct {
	GuildID         string
	SuggestedLocale string
	UserID          string
	DrinkName       string
}

// ConsumeOutput contains the outcome of a consumption
type ConsumeOutput struct {
	// Outcome is the message category the consumption resolved to
	Outcome models.Outcome

	// LastPortion is true when this consumption emptied today's stock;
	// it accompanies any successful outcome
	LastPortion bool

	// Level is the intoxication level reached by this consumption,
	// before the overdose reset
	Level int

	// Server is the guild's server row, for locale resolution
	Server *models.Server

	// Drink is the drink row after the consumption
	Drink *models.Drink
}

// AddDrinkInput contains parameters for registering a drink
type AddDrinkInput struct {
	GuildID         string
	SuggestedLocale string
	Name            string
	Intoxication    int
	PortionSize     int
	PortionsPerDay  int
}

// AddDrinkOutput contains the registered drink
type AddDrinkOutput struct {
	Drink *models.Drink
}

// RemoveDrinkInput contains parameters for removing a drink
type RemoveDrinkInput struct {
	GuildID string
	Name    string
}

// ListDrinksInput contains parameters for listing a guild's menu
type ListDrinksInput struct {
	GuildID         string
	SuggestedLocale string
}

// ListDrinksOutput contains a guild's menu
type ListDrinksOutput struct {
	Server *models.Server
	Drinks []*models.Drink
}

// RestockInput contains parameters for restocking. An empty Name
// restocks the whole menu.
type RestockInput struct {
	GuildID string
	Name    string
}

// RestockOutput contains the number of drinks restocked
type RestockOutput struct {
	Count int
}

// SetLanguageInput contains parameters for switching a guild's locale
type SetLanguageInput struct {
	GuildID         string
	SuggestedLocale string
	Lang            string
}

// SetLanguageOutput contains the updated server
type SetLanguageOutput struct {
	Server *models.Server
}

// DecayTickInput contains parameters for one decay pass
type DecayTickInput struct {
	Step int
}

// RestockAllServersOutput contains the total drinks restocked
type RestockAllServersOutput struct {
	Count int
}
