package discord

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/avolkov/barcounter/internal/locale"
	"github.com/avolkov/barcounter/internal/models"
	"github.com/avolkov/barcounter/internal/services/bar"
	barMocks "github.com/avolkov/barcounter/internal/services/bar/mocks"
	"github.com/avolkov/barcounter/internal/services/offer"
	offerMocks "github.com/avolkov/barcounter/internal/services/offer/mocks"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const handlerCatalogYAML = `
name: English
drink_consumed:
  - "%s enjoys a nice %s."
offer_declined: "%s declines the %s."
on_error: "Something went wrong behind the bar."
default_drinks:
  - name: beer
    intoxication: 10
    portion_size: 500
    portions_per_day: 10
`

type recordedRequest struct {
	method string
	path   string
	body   string
}

// fakeDiscordTransport captures the REST calls the handlers make and
// answers every one with an empty success payload
type fakeDiscordTransport struct {
	mu       sync.Mutex
	requests []recordedRequest
}

func (t *fakeDiscordTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	body := ""
	if req.Body != nil {
		data, _ := io.ReadAll(req.Body)
		body = string(data)
	}

	t.mu.Lock()
	t.requests = append(t.requests, recordedRequest{
		method: req.Method,
		path:   req.URL.Path,
		body:   body,
	})
	t.mu.Unlock()

	return &http.Response{
		StatusCode: http.StatusOK,
		Status:     "200 OK",
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader("{}")),
		Request:    req,
	}, nil
}

func (t *fakeDiscordTransport) recorded() []recordedRequest {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]recordedRequest(nil), t.requests...)
}

func messageContent(t *testing.T, body string) string {
	t.Helper()
	var payload struct {
		Content string `json:"content"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &payload))
	return payload.Content
}

func newTestBot(t *testing.T) (*Bot, *barMocks.MockService, *offerMocks.MockService, *fakeDiscordTransport) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockBar := barMocks.NewMockService(ctrl)
	mockOffer := offerMocks.NewMockService(ctrl)

	catalogs, err := locale.New(map[string][]byte{
		"en_US": []byte(handlerCatalogYAML),
	}, "en_US")
	require.NoError(t, err)

	bot, err := New(&Config{
		Token:        "test-token",
		BarService:   mockBar,
		OfferService: mockOffer,
		Catalogs:     catalogs,
	})
	require.NoError(t, err)

	transport := &fakeDiscordTransport{}
	bot.session.Client = &http.Client{Transport: transport}
	bot.session.State.User = &discordgo.User{ID: "bot-user-id"}

	return bot, mockBar, mockOffer, transport
}

func reactionEvent(emoji, userID string) *discordgo.MessageReactionAdd {
	return &discordgo.MessageReactionAdd{
		MessageReaction: &discordgo.MessageReaction{
			UserID:    userID,
			MessageID: "prompt-message-id",
			ChannelID: "channel-id",
			GuildID:   "guild-id",
			Emoji:     discordgo.Emoji{Name: emoji},
		},
	}
}

func TestReactionAcceptSendsOutcomeAndDeletesPrompt(t *testing.T) {
	bot, _, mockOffer, transport := newTestBot(t)

	mockOffer.EXPECT().
		Resolve(gomock.Any(), &offer.ResolveInput{
			MessageID: "prompt-message-id",
			UserID:    "target-user-id",
			Signal:    offer.SignalAccept,
		}).
		Return(&offer.ResolveOutput{
			Resolution: offer.ResolutionAccepted,
			Offer:      &models.Offer{TargetUserID: "target-user-id", DrinkName: "beer"},
			Consume: &bar.ConsumeOutput{
				Outcome: models.OutcomeConsumed,
				Level:   10,
				Server:  &models.Server{Lang: "en_US"},
				Drink:   &models.Drink{Name: "beer"},
			},
		}, nil)

	bot.handleReactionAdd(bot.session, reactionEvent(acceptEmoji, "target-user-id"))

	requests := transport.recorded()
	require.Len(t, requests, 2)

	assert.Equal(t, "POST", requests[0].method)
	assert.True(t, strings.HasSuffix(requests[0].path, "/channels/channel-id/messages"))
	assert.Contains(t, messageContent(t, requests[0].body), "beer")

	assert.Equal(t, "DELETE", requests[1].method)
	assert.True(t, strings.HasSuffix(requests[1].path, "/channels/channel-id/messages/prompt-message-id"))
}

func TestReactionAcceptFailureSurfacesErrorAndDeletesPrompt(t *testing.T) {
	bot, mockBar, mockOffer, transport := newTestBot(t)

	mockOffer.EXPECT().
		Resolve(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("consumption failed"))
	mockBar.EXPECT().
		EnsureServer(gomock.Any(), &bar.EnsureServerInput{GuildID: "guild-id"}).
		Return(&bar.EnsureServerOutput{Server: &models.Server{Lang: "en_US"}}, nil)

	bot.handleReactionAdd(bot.session, reactionEvent(acceptEmoji, "target-user-id"))

	requests := transport.recorded()
	require.Len(t, requests, 2)

	// The failure line reaches the channel
	assert.Equal(t, "POST", requests[0].method)
	assert.Equal(t, "Something went wrong behind the bar.", messageContent(t, requests[0].body))

	// And the orphaned prompt is cleaned up, since the sweep can no
	// longer see it
	assert.Equal(t, "DELETE", requests[1].method)
	assert.True(t, strings.HasSuffix(requests[1].path, "/channels/channel-id/messages/prompt-message-id"))
}

func TestReactionFromBotIsIgnored(t *testing.T) {
	bot, _, _, transport := newTestBot(t)

	// No Resolve expectation: the bot's own prompt seeding must not
	// count as consent
	bot.handleReactionAdd(bot.session, reactionEvent(acceptEmoji, "bot-user-id"))

	assert.Empty(t, transport.recorded())
}

func TestUnrelatedReactionIsIgnored(t *testing.T) {
	bot, _, _, transport := newTestBot(t)

	bot.handleReactionAdd(bot.session, reactionEvent("🍺", "target-user-id"))

	assert.Empty(t, transport.recorded())
}
