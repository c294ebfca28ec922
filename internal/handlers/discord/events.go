package discord

import (
	"context"
	"log"

	"github.com/avolkov/barcounter/internal/services/bar"
	"github.com/avolkov/barcounter/internal/services/offer"
	"github.com/bwmarrin/discordgo"
)

const (
	acceptEmoji  = "✅" // white heavy check mark
	declineEmoji = "❌" // cross mark
)

// handleGuildCreate sets up a guild the moment the bot sees it: the
// server row with its locale and seed menu, and the barman role.
func (b *Bot) handleGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	ctx := context.Background()

	out, err := b.barService.EnsureServer(ctx, &bar.EnsureServerInput{
		GuildID:         g.ID,
		SuggestedLocale: g.PreferredLocale,
	})
	if err != nil {
		log.Printf("Failed to ensure server for guild %s: %v", g.ID, err)
		return
	}
	if out.Created {
		log.Printf("Opened the bar in guild %s (%s)", g.ID, out.Server.Lang)
	}

	b.ensureBarmanRole(s, g.Guild)
}

// handleGuildDelete drops a guild's data when the bot is removed from
// it. Outage events carry Unavailable and are not removals.
func (b *Bot) handleGuildDelete(s *discordgo.Session, g *discordgo.GuildDelete) {
	if g.Unavailable {
		return
	}

	err := b.barService.RemoveServer(context.Background(), &bar.RemoveServerInput{GuildID: g.ID})
	if err != nil {
		log.Printf("Failed to remove server for guild %s: %v", g.ID, err)
		return
	}
	log.Printf("Closed the bar in guild %s", g.ID)
}

// ensureBarmanRole creates the barman role when the guild has none
func (b *Bot) ensureBarmanRole(s *discordgo.Session, g *discordgo.Guild) {
	for _, role := range g.Roles {
		if role.Name == BarmanRoleName {
			return
		}
	}

	_, err := s.GuildRoleCreate(g.ID, &discordgo.RoleParams{Name: BarmanRoleName})
	if err != nil {
		log.Printf("Failed to create the %s role in guild %s: %v", BarmanRoleName, g.ID, err)
		return
	}
	log.Printf("Created the %s role in guild %s", BarmanRoleName, g.ID)
}

// hasBarmanRole reports whether the member carries the barman role
func (b *Bot) hasBarmanRole(s *discordgo.Session, guildID string, member *discordgo.Member) bool {
	if member == nil {
		return false
	}

	roles, err := s.GuildRoles(guildID)
	if err != nil {
		log.Printf("Failed to list roles for guild %s: %v", guildID, err)
		return false
	}

	barmanRoleID := ""
	for _, role := range roles {
		if role.Name == BarmanRoleName {
			barmanRoleID = role.ID
			break
		}
	}
	if barmanRoleID == "" {
		return false
	}

	for _, roleID := range member.Roles {
		if roleID == barmanRoleID {
			return true
		}
	}
	return false
}

// handleReactionAdd turns consent reactions on offer prompts into offer
// resolutions. Reactions from anyone but the target are ignored by the
// offer service.
func (b *Bot) handleReactionAdd(s *discordgo.Session, r *discordgo.MessageReactionAdd) {
	// The bot seeds the prompt with both reactions itself
	if r.UserID == s.State.User.ID {
		return
	}

	var signal offer.Signal
	switch r.Emoji.Name {
	case acceptEmoji:
		signal = offer.SignalAccept
	case declineEmoji:
		signal = offer.SignalDecline
	default:
		return
	}

	b.reactionMu.Lock()
	defer b.reactionMu.Unlock()

	ctx := context.Background()
	out, err := b.offerService.Resolve(ctx, &offer.ResolveInput{
		MessageID: r.MessageID,
		UserID:    r.UserID,
		Signal:    signal,
	})
	if err != nil {
		// The offer already left the registry, so the sweep will never
		// see this prompt again; surface the failure and clean up here
		log.Printf("Failed to resolve offer on message %s: %v", r.MessageID, err)
		lang := b.serverLang(ctx, r.GuildID, "")
		if _, sendErr := s.ChannelMessageSend(r.ChannelID, b.text(lang, "on_error")); sendErr != nil {
			log.Printf("Failed to send failure message: %v", sendErr)
		}
		if delErr := b.DeleteOfferPrompt(r.ChannelID, r.MessageID); delErr != nil {
			log.Printf("Failed to delete offer prompt %s: %v", r.MessageID, delErr)
		}
		return
	}

	switch out.Resolution {
	case offer.ResolutionAccepted:
		msg := b.renderConsume(ctx, s, r.GuildID, r.UserID, out.Consume)
		if _, err := s.ChannelMessageSend(r.ChannelID, msg); err != nil {
			log.Printf("Failed to send outcome message: %v", err)
		}
	case offer.ResolutionDeclined:
		lang := b.serverLang(ctx, r.GuildID, "")
		msg := b.text(lang, "offer_declined", mention(out.Offer.TargetUserID), out.Offer.DrinkName)
		if _, err := s.ChannelMessageSend(r.ChannelID, msg); err != nil {
			log.Printf("Failed to send decline message: %v", err)
		}
	default:
		return
	}

	// The prompt has served its purpose either way
	if err := b.DeleteOfferPrompt(r.ChannelID, r.MessageID); err != nil {
		log.Printf("Failed to delete offer prompt %s: %v", r.MessageID, err)
	}
}
