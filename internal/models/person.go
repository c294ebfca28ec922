package models

// Person tracks one guild member's standing at the bar
type Person struct {
	// ID is the unique identifier for the person record
	ID string

	// ServerID is the server this person belongs to
	ServerID string

	// UserID is the Discord user ID of the member
	UserID string

	// Intoxication is the member's current intoxication level, 0-100
	Intoxication int
}
