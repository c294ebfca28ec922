package bar

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/avolkov/barcounter/internal/services/bar Service

// Service defines the interface for bar operations
type Service interface {
	// EnsureServer resolves the server row for a guild, creating it with a
	// resolved locale and the default menu on first contact
	EnsureServer(ctx context.Context, input *EnsureServerInput) (*EnsureServerOutput, error)

	// RemoveServer deletes a guild's server row with all its persons and drinks
	RemoveServer(ctx context.Context, input *RemoveServerInput) error

	// Consume performs a consumption: stock check, intoxication update,
	// outcome decision, atomic persistence
	Consume(ctx context.Context, input *ConsumeInput) (*ConsumeOutput, error)

	// AddDrink validates and registers a new drink on a guild's menu
	AddDrink(ctx context.Context, input *AddDrinkInput) (*AddDrinkOutput, error)

	// RemoveDrink removes a drink from a guild's menu
	RemoveDrink(ctx context.Context, input *RemoveDrinkInput) error

	// ListDrinks returns a guild's menu
	ListDrinks(ctx context.Context, input *ListDrinksInput) (*ListDrinksOutput, error)

	// Restock resets stock for one drink or the whole menu
	Restock(ctx context.Context, input *RestockInput) (*RestockOutput, error)

	// SetLanguage switches a guild's locale and reseeds its menu atomically
	SetLanguage(ctx context.Context, input *SetLanguageInput) (*SetLanguageOutput, error)

	// DecayTick lowers every person's intoxication by the decay step
	DecayTick(ctx context.Context, input *DecayTickInput) error

	// RestockAllServers resets stock on every server's menu
	RestockAllServers(ctx context.Context) (*RestockAllServersOutput, error)
}
