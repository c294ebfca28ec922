package discord

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/avolkov/barcounter/internal/models"
	"github.com/avolkov/barcounter/internal/services/bar"
	"github.com/bwmarrin/discordgo"
)

func mention(userID string) string {
	return fmt.Sprintf("<@%s>", userID)
}

// text resolves a message key for the locale and applies its arguments
func (b *Bot) text(lang, key string, args ...interface{}) string {
	msg, err := b.catalogs.Text(lang, key)
	if err != nil {
		log.Printf("Missing locale key %s for %s: %v", key, lang, err)
		return key
	}
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}

// serverLang resolves the locale of a guild, creating the server row on
// first contact
func (b *Bot) serverLang(ctx context.Context, guildID, suggested string) string {
	out, err := b.barService.EnsureServer(ctx, &bar.EnsureServerInput{
		GuildID:         guildID,
		SuggestedLocale: suggested,
	})
	if err != nil {
		log.Printf("Failed to resolve server for guild %s: %v", guildID, err)
		return b.catalogs.DefaultLang()
	}
	return out.Server.Lang
}

// suggestedLocale extracts Discord's preferred locale for the guild
func suggestedLocale(i *discordgo.InteractionCreate) string {
	if i.GuildLocale == nil {
		return ""
	}
	return string(*i.GuildLocale)
}

// barErrorMessage maps a bar service error to its localized message.
// Unexpected errors collapse to the generic failure line.
func (b *Bot) barErrorMessage(lang string, err error, drinkName string) string {
	switch {
	case errors.Is(err, bar.ErrDrinkNotFound):
		return b.text(lang, "unknown_drink", drinkName)
	case errors.Is(err, bar.ErrDrinkExists):
		return b.text(lang, "drink_exists", drinkName)
	case errors.Is(err, bar.ErrWrongIntoxication):
		return b.text(lang, "wrong_intoxication")
	case errors.Is(err, bar.ErrWrongPortionSize):
		return b.text(lang, "wrong_portion_size")
	case errors.Is(err, bar.ErrWrongPortionsPerDay):
		return b.text(lang, "wrong_portions_per_day")
	case errors.Is(err, bar.ErrNameTooLong):
		return b.text(lang, "name_too_long")
	case errors.Is(err, bar.ErrTooManyDrinks):
		return b.text(lang, "too_many_drinks")
	case errors.Is(err, bar.ErrUnknownLanguage):
		return b.text(lang, "incorrect_language")
	default:
		log.Printf("Unexpected bar error: %v", err)
		return b.text(lang, "on_error")
	}
}

// renderConsume builds the channel message for a consumption outcome.
// An overdose tries the voice disconnect first; the message degrades
// when the bot lacks the permission to move members.
func (b *Bot) renderConsume(ctx context.Context, s *discordgo.Session, guildID, userID string, out *bar.ConsumeOutput) string {
	lang := out.Server.Lang

	if out.Outcome == models.OutcomeDepleted {
		return b.text(lang, "no_portions_left", out.Drink.Name)
	}

	lines := []string{b.text(lang, "drink_consumed", mention(userID), out.Drink.Name)}

	if out.LastPortion {
		lines = append(lines, b.text(lang, "last_portion", out.Drink.Name))
	}

	switch out.Outcome {
	case models.OutcomePreOverdose:
		lines = append(lines, b.text(lang, "pre_overdrink"))
	case models.OutcomeOverdose:
		if err := s.GuildMemberMove(guildID, userID, nil); err != nil {
			log.Printf("Failed to disconnect %s from voice: %v", userID, err)
			lines = append(lines, b.text(lang, "overdrink_no_kick_message", mention(userID)))
		} else {
			lines = append(lines, b.text(lang, "overdrink_kick_message", mention(userID)))
		}
	default:
		if b.jokes != nil {
			if joke, ok := b.jokes.Joke(ctx, lang); ok {
				lines = append(lines, joke)
			}
		}
	}

	return strings.Join(lines, "\n")
}
