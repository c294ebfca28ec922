package models

// Server represents a Discord guild known to the bar
type Server struct {
	// ID is the unique identifier for the server record
	ID string

	// GuildID is the Discord guild this server belongs to
	GuildID string

	// Lang is the locale code used for every message sent to this guild
	Lang string
}
