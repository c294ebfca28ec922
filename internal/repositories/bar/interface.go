package bar

import (
	"context"

	"github.com/avolkov/barcounter/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/avolkov/barcounter/internal/repositories/bar Repository

// Repository defines the interface for bar data persistence. One package
// covers Server, Person and Drink rows because several operations must
// persist rows of different kinds as a single atomic unit: a consumption
// saves its Person and Drink together, and a language change rewrites
// the Server row and the whole menu together.
type Repository interface {
	// SaveServer persists a server row and its guild index
	SaveServer(ctx context.Context, input *SaveServerInput) error

	// GetServerByGuild retrieves the server row for a guild
	GetServerByGuild(ctx context.Context, input *GetServerByGuildInput) (*models.Server, error)

	// ListServerIDs returns every known server ID
	ListServerIDs(ctx context.Context) ([]string, error)

	// DeleteServer removes a server and cascades to its persons and drinks
	DeleteServer(ctx context.Context, input *DeleteServerInput) error

	// GetPerson retrieves one member's row for a server
	GetPerson(ctx context.Context, input *GetPersonInput) (*models.Person, error)

	// SavePerson persists a person row
	SavePerson(ctx context.Context, input *SavePersonInput) error

	// SavePersons persists a batch of person rows in one round trip
	SavePersons(ctx context.Context, input *SavePersonsInput) error

	// ListPersons retrieves every person row of a server
	ListPersons(ctx context.Context, input *ListPersonsInput) (*ListPersonsOutput, error)

	// CreateDrink registers a new drink; the name must be free on the server
	CreateDrink(ctx context.Context, input *CreateDrinkInput) error

	// SaveDrink overwrites an existing drink row
	SaveDrink(ctx context.Context, input *SaveDrinkInput) error

	// GetDrink retrieves a drink by server and name
	GetDrink(ctx context.Context, input *GetDrinkInput) (*models.Drink, error)

	// DeleteDrink removes a drink from a server's menu
	DeleteDrink(ctx context.Context, input *DeleteDrinkInput) error

	// ListDrinks retrieves a server's menu sorted by name
	ListDrinks(ctx context.Context, input *ListDrinksInput) (*ListDrinksOutput, error)

	// CountDrinks returns the number of drinks on a server's menu
	CountDrinks(ctx context.Context, input *CountDrinksInput) (int, error)

	// SaveConsumption persists a person and a drink as one atomic unit
	SaveConsumption(ctx context.Context, input *SaveConsumptionInput) error

	// ReplaceDrinks atomically rewrites the server row and its whole menu
	ReplaceDrinks(ctx context.Context, input *ReplaceDrinksInput) error

	// RestockServer resets portions for one drink or the whole menu,
	// returning the number of rows affected
	RestockServer(ctx context.Context, input *RestockServerInput) (*RestockServerOutput, error)
}
