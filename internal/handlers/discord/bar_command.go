package discord

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/avolkov/barcounter/internal/locale"
	"github.com/avolkov/barcounter/internal/services/bar"
	"github.com/avolkov/barcounter/internal/services/offer"
	"github.com/bwmarrin/discordgo"
)

// BarCommand handles the /bar command
type BarCommand struct {
	BaseCommand
	bot *Bot
}

// NewBarCommand creates a new bar command handler
func NewBarCommand(bot *Bot) *BarCommand {
	return &BarCommand{
		BaseCommand: BaseCommand{
			Name:        "bar",
			Description: "Virtual bar commands",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "drink",
					Description: "Order a drink from the menu",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "name",
							Description: "Name of the drink",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "serve",
					Description: "Offer a drink to another member",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionUser,
							Name:        "user",
							Description: "Member to serve",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "drink",
							Description: "Name of the drink",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "menu",
					Description: "Show today's menu",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "add",
					Description: "Add a drink to the menu (barman only)",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "name",
							Description: "Name of the drink",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "intoxication",
							Description: "Intoxication points per portion (0-100)",
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "portion_size",
							Description: "Portion size in milliliters",
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "portions_per_day",
							Description: "Portions available per day",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "remove",
					Description: "Remove a drink from the menu (barman only)",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "name",
							Description: "Name of the drink",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "restock",
					Description: "Refill the barrels ahead of schedule (barman only)",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "name",
							Description: "Restock only this drink",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "lang",
					Description: "Show or set the bar's language",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "code",
							Description: "Language code, for example en_US",
						},
					},
				},
			},
		},
		bot: bot,
	}
}

// Handle processes a Discord interaction for the bar command
func (c *BarCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name {
		return nil
	}

	// Guild-only command; DMs carry no member
	if i.Member == nil || i.GuildID == "" {
		return nil
	}

	ctx := context.Background()
	lang := c.bot.serverLang(ctx, i.GuildID, suggestedLocale(i))
	sub := data.Options[0]
	opts := optionMap(sub.Options)

	var err error
	switch sub.Name {
	case "drink":
		err = c.handleDrink(ctx, s, i, lang, opts)
	case "serve":
		err = c.handleServe(ctx, s, i, lang, opts)
	case "menu":
		err = c.handleMenu(ctx, s, i, lang)
	case "add":
		err = c.handleAdd(ctx, s, i, lang, opts)
	case "remove":
		err = c.handleRemove(ctx, s, i, lang, opts)
	case "restock":
		err = c.handleRestock(ctx, s, i, lang, opts)
	case "lang":
		err = c.handleLang(ctx, s, i, lang, opts)
	default:
		err = errors.New("unknown subcommand")
	}

	return err
}

func optionMap(options []*discordgo.ApplicationCommandInteractionDataOption) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		m[opt.Name] = opt
	}
	return m
}

func intOption(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name string, fallback int) int {
	if opt, ok := opts[name]; ok {
		return int(opt.IntValue())
	}
	return fallback
}

// handleDrink handles the drink subcommand
func (c *BarCommand) handleDrink(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, lang string, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	drinkName := opts["name"].StringValue()
	userID := i.Member.User.ID

	out, err := c.bot.barService.Consume(ctx, &bar.ConsumeInput{
		GuildID:         i.GuildID,
		SuggestedLocale: suggestedLocale(i),
		UserID:          userID,
		DrinkName:       drinkName,
	})
	if err != nil {
		return RespondWithEphemeralMessage(s, i, c.bot.barErrorMessage(lang, err, drinkName))
	}

	return RespondWithMessage(s, i, c.bot.renderConsume(ctx, s, i.GuildID, userID, out))
}

// handleServe handles the serve subcommand. The interaction response is
// the offer prompt itself; its message ID keys the offer.
func (c *BarCommand) handleServe(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, lang string, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	target := opts["user"].UserValue(s)
	drinkName := opts["drink"].StringValue()
	fromID := i.Member.User.ID

	prompt := c.bot.text(lang, "drink_offer", mention(target.ID), mention(fromID), drinkName)
	if err := RespondWithMessage(s, i, prompt); err != nil {
		return err
	}

	msg, err := s.InteractionResponse(i.Interaction)
	if err != nil {
		return fmt.Errorf("failed to fetch offer prompt: %w", err)
	}

	for _, emoji := range []string{acceptEmoji, declineEmoji} {
		if err := s.MessageReactionAdd(msg.ChannelID, msg.ID, emoji); err != nil {
			log.Printf("Failed to add %s reaction to prompt %s: %v", emoji, msg.ID, err)
		}
	}

	_, err = c.bot.offerService.Create(ctx, &offer.CreateInput{
		GuildID:         i.GuildID,
		SuggestedLocale: suggestedLocale(i),
		MessageID:       msg.ID,
		ChannelID:       msg.ChannelID,
		FromUserID:      fromID,
		TargetUserID:    target.ID,
		DrinkName:       drinkName,
	})
	if err != nil {
		// The drink could not be put on the menu; withdraw the prompt
		if delErr := c.bot.DeleteOfferPrompt(msg.ChannelID, msg.ID); delErr != nil {
			log.Printf("Failed to delete aborted offer prompt %s: %v", msg.ID, delErr)
		}
		_, followErr := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
			Content: c.bot.barErrorMessage(lang, err, drinkName),
			Flags:   discordgo.MessageFlagsEphemeral,
		})
		return followErr
	}

	return nil
}

// handleMenu handles the menu subcommand
func (c *BarCommand) handleMenu(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, lang string) error {
	out, err := c.bot.barService.ListDrinks(ctx, &bar.ListDrinksInput{
		GuildID:         i.GuildID,
		SuggestedLocale: suggestedLocale(i),
	})
	if err != nil {
		return RespondWithEphemeralMessage(s, i, c.bot.barErrorMessage(lang, err, ""))
	}

	if len(out.Drinks) == 0 {
		return RespondWithMessage(s, i, c.bot.text(lang, "menu_empty"))
	}

	lines := []string{c.bot.text(lang, "menu_header")}
	for _, d := range out.Drinks {
		lines = append(lines, c.bot.text(lang, "drink_info", d.Name, d.PortionSize, d.PortionsLeft, d.PortionsPerDay))
	}

	return RespondWithMessage(s, i, strings.Join(lines, "\n"))
}

// handleAdd handles the add subcommand
func (c *BarCommand) handleAdd(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, lang string, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	if !c.bot.hasBarmanRole(s, i.GuildID, i.Member) {
		return RespondWithEphemeralMessage(s, i, c.bot.text(lang, "missing_role"))
	}

	name := opts["name"].StringValue()

	out, err := c.bot.barService.AddDrink(ctx, &bar.AddDrinkInput{
		GuildID:         i.GuildID,
		SuggestedLocale: suggestedLocale(i),
		Name:            name,
		Intoxication:    intOption(opts, "intoxication", bar.DefaultIntoxication),
		PortionSize:     intOption(opts, "portion_size", bar.DefaultPortionSize),
		PortionsPerDay:  intOption(opts, "portions_per_day", bar.DefaultPortionsPerDay),
	})
	if err != nil {
		return RespondWithEphemeralMessage(s, i, c.bot.barErrorMessage(lang, err, name))
	}

	return RespondWithMessage(s, i, c.bot.text(lang, "drink_added", out.Drink.Name))
}

// handleRemove handles the remove subcommand
func (c *BarCommand) handleRemove(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, lang string, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	if !c.bot.hasBarmanRole(s, i.GuildID, i.Member) {
		return RespondWithEphemeralMessage(s, i, c.bot.text(lang, "missing_role"))
	}

	name := opts["name"].StringValue()

	err := c.bot.barService.RemoveDrink(ctx, &bar.RemoveDrinkInput{
		GuildID: i.GuildID,
		Name:    name,
	})
	if err != nil {
		return RespondWithEphemeralMessage(s, i, c.bot.barErrorMessage(lang, err, name))
	}

	return RespondWithMessage(s, i, c.bot.text(lang, "drink_removed", name))
}

// handleRestock handles the restock subcommand
func (c *BarCommand) handleRestock(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, lang string, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	if !c.bot.hasBarmanRole(s, i.GuildID, i.Member) {
		return RespondWithEphemeralMessage(s, i, c.bot.text(lang, "missing_role"))
	}

	name := ""
	if opt, ok := opts["name"]; ok {
		name = opt.StringValue()
	}

	out, err := c.bot.barService.Restock(ctx, &bar.RestockInput{
		GuildID: i.GuildID,
		Name:    name,
	})
	if err != nil {
		return RespondWithEphemeralMessage(s, i, c.bot.barErrorMessage(lang, err, name))
	}

	return RespondWithMessage(s, i, c.bot.text(lang, "restocked", out.Count))
}

// handleLang handles the lang subcommand. Without a code it lists the
// available languages; with one it switches the bar over.
func (c *BarCommand) handleLang(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, lang string, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	opt, ok := opts["code"]
	if !ok {
		lines := []string{c.bot.text(lang, "lang_list")}
		for _, l := range c.bot.catalogs.Languages() {
			lines = append(lines, fmt.Sprintf("%s: %s", l.Code, l.Name))
		}
		return RespondWithMessage(s, i, strings.Join(lines, "\n"))
	}

	if i.Member.Permissions&discordgo.PermissionManageServer == 0 {
		return RespondWithEphemeralMessage(s, i, c.bot.text(lang, "missing_permissions"))
	}

	code := locale.Normalize(opt.StringValue())

	out, err := c.bot.barService.SetLanguage(ctx, &bar.SetLanguageInput{
		GuildID:         i.GuildID,
		SuggestedLocale: suggestedLocale(i),
		Lang:            code,
	})
	if err != nil {
		return RespondWithEphemeralMessage(s, i, c.bot.barErrorMessage(lang, err, code))
	}

	// Confirm in the freshly selected language
	return RespondWithMessage(s, i, c.bot.text(out.Server.Lang, "lang_selected"))
}
