package bar

import "github.com/avolkov/barcounter/internal/models"

// SaveServerInput contains parameters for saving a server
type SaveServerInput struct {
	Server *models.Server
}

// GetServerByGuildInput contains parameters for retrieving a server by guild
type GetServerByGuildInput struct {
	GuildID string
}

// DeleteServerInput contains parameters for a cascading server delete
type DeleteServerInput struct {
	GuildID string
}

// GetPersonInput contains parameters for retrieving a person
type GetPersonInput struct {
	ServerID string
	UserID   string
}

// SavePersonInput contains parameters for saving a person
type SavePersonInput struct {
	Person *models.Person
}

// SavePersonsInput contains parameters for saving a batch of persons
type SavePersonsInput struct {
	Persons []*models.Person
}

// ListPersonsInput contains parameters for listing a server's persons
type ListPersonsInput struct {
	ServerID string
}

// ListPersonsOutput contains the result of listing a server's persons
type ListPersonsOutput struct {
	Persons []*models.Person
}

// CreateDrinkInput contains parameters for registering a new drink
type CreateDrinkInput struct {
	Drink *models.Drink
}

// SaveDrinkInput contains parameters for overwriting a drink
type SaveDrinkInput struct {
	Drink *models.Drink
}

// GetDrinkInput contains parameters for retrieving a drink
type GetDrinkInput struct {
	ServerID string
	Name     string
}

// DeleteDrinkInput contains parameters for removing a drink
type DeleteDrinkInput struct {
	ServerID string
	Name     string
}

// ListDrinksInput contains parameters for listing a server's menu
type ListDrinksInput struct {
	ServerID string
}

// ListDrinksOutput contains the result of listing a server's menu
type ListDrinksOutput struct {
	Drinks []*models.Drink
}

// CountDrinksInput contains parameters for counting a server's drinks
type CountDrinksInput struct {
	ServerID string
}

// SaveConsumptionInput contains the two rows a consumption mutates
type SaveConsumptionInput struct {
	Person *models.Person
	Drink  *models.Drink
}

// ReplaceDrinksInput contains the server row and its replacement menu
type ReplaceDrinksInput struct {
	Server *models.Server
	Drinks []*models.Drink
}

// RestockServerInput contains parameters for restocking. An empty Name
// restocks the whole menu.
type RestockServerInput struct {
	ServerID string
	Name     string
}

// RestockServerOutput contains the number of drinks restocked
type RestockServerOutput struct {
	Count int
}
