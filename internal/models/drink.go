package models

// Drink represents one entry on a server's menu with its daily stock
type Drink struct {
	// ID is the unique identifier for the drink record
	ID string

	// ServerID is the server whose menu carries this drink
	ServerID string

	// Name is the drink's name, unique per server
	Name string

	// Intoxication is how much one portion raises a person's level, 0-100
	Intoxication int

	// PortionSize is the size of one portion in milliliters
	PortionSize int

	// PortionsPerDay is the daily stock the drink restocks to
	PortionsPerDay int

	// PortionsLeft is the stock remaining today
	PortionsLeft int
}
