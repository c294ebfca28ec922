// Package discord wires the bar to Discord: the /bar command group, the
// guild lifecycle events and the consent reactions on drink offers.
package discord

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/avolkov/barcounter/internal/locale"
	"github.com/avolkov/barcounter/internal/services/bar"
	"github.com/avolkov/barcounter/internal/services/jokes"
	"github.com/avolkov/barcounter/internal/services/offer"
	"github.com/bwmarrin/discordgo"
)

// BarmanRoleName is the guild role that gates menu management.
const BarmanRoleName = "barman"

// Bot represents the Discord bot instance
type Bot struct {
	session    *discordgo.Session
	commands   map[string]CommandHandler
	commandIDs map[string]string // Maps command name to command ID

	barService   bar.Service
	offerService offer.Service
	jokes        jokes.Provider
	catalogs     *locale.Catalogs

	// Serializes reaction handling so outcome messages keep their order
	reactionMu sync.Mutex

	config *Config
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// Bar service
	BarService bar.Service

	// Offer service
	OfferService offer.Service

	// Jokes provider; may be nil
	Jokes jokes.Provider

	// Locale catalogs
	Catalogs *locale.Catalogs
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.BarService == nil {
		return nil, errors.New("bar service cannot be nil")
	}

	if cfg.OfferService == nil {
		return nil, errors.New("offer service cannot be nil")
	}

	if cfg.Catalogs == nil {
		return nil, errors.New("catalogs cannot be nil")
	}

	// Create a new Discord session
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	// Reaction and voice state events need their intents declared
	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMessageReactions |
		discordgo.IntentsGuildVoiceStates

	bot := &Bot{
		session:      session,
		commands:     make(map[string]CommandHandler),
		commandIDs:   make(map[string]string),
		barService:   cfg.BarService,
		offerService: cfg.OfferService,
		jokes:        cfg.Jokes,
		catalogs:     cfg.Catalogs,
		config:       cfg,
	}

	// Register the event handlers
	session.AddHandler(bot.handleInteraction)
	session.AddHandler(bot.handleGuildCreate)
	session.AddHandler(bot.handleGuildDelete)
	session.AddHandler(bot.handleReactionAdd)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	// Open the websocket connection to Discord
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	// Register the bar command
	barCmd := NewBarCommand(b)
	if err := b.RegisterCommand(barCmd); err != nil {
		return fmt.Errorf("failed to register bar command: %w", err)
	}

	log.Println("Bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop gracefully shuts down the Discord connection
func (b *Bot) Stop() error {
	// Remove all commands
	appID := b.config.ApplicationID
	if appID == "" {
		appID = b.session.State.User.ID
	}

	guildID := ""
	if b.config.GuildID != "" {
		guildID = b.config.GuildID
	}

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, guildID, cmdID); err != nil {
			log.Printf("Failed to delete command %s (ID: %s): %v", cmdName, cmdID, err)
		} else {
			log.Printf("Successfully deleted command %s (ID: %s)", cmdName, cmdID)
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	// Register the command with Discord
	appID := b.config.ApplicationID
	if appID == "" {
		// Fall back to session user ID if application ID is not provided
		appID = b.session.State.User.ID
	}

	// If guild ID is provided, register command for that specific guild
	// Otherwise, register it globally
	guildID := ""
	if b.config.GuildID != "" {
		guildID = b.config.GuildID
		log.Printf("Registering command %s for guild %s", cmd.GetName(), guildID)
	} else {
		log.Printf("Registering command %s globally", cmd.GetName())
	}

	createdCmd, err := b.session.ApplicationCommandCreate(appID, guildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	// Store the command handler and its ID
	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	log.Printf("Registered command: %s with ID: %s", cmd.GetName(), createdCmd.ID)

	return nil
}

// DeleteOfferPrompt removes the prompt message of a lapsed offer. It
// also serves the scheduler's sweep job.
func (b *Bot) DeleteOfferPrompt(channelID, messageID string) error {
	return b.session.ChannelMessageDelete(channelID, messageID)
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	if h, ok := b.commands[i.ApplicationCommandData().Name]; ok {
		if err := h.Handle(s, i); err != nil {
			log.Printf("Error handling command %s: %v", i.ApplicationCommandData().Name, err)
		}
	}
}
