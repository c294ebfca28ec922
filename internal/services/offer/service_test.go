package offer

import (
	"context"
	"testing"
	"time"

	clockMocks "github.com/avolkov/barcounter/internal/common/clock/mocks"
	"github.com/avolkov/barcounter/internal/models"
	"github.com/avolkov/barcounter/internal/services/bar"
	barMocks "github.com/avolkov/barcounter/internal/services/bar/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OfferServiceTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockBar   *barMocks.MockService
	mockClock *clockMocks.MockClock
	service   Service
	ctx       context.Context

	// Test data
	testGuildID   string
	testChannelID string
	testMessageID string
	testFromID    string
	testTargetID  string

	now time.Time
}

func (s *OfferServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockBar = barMocks.NewMockService(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)

	s.ctx = context.Background()

	svc, err := New(&Config{
		BarService: s.mockBar,
		Clock:      s.mockClock,
		TTL:        10 * time.Minute,
	})
	s.Require().NoError(err)
	s.service = svc

	s.testGuildID = "test-guild-id"
	s.testChannelID = "test-channel-id"
	s.testMessageID = "test-message-id"
	s.testFromID = "from-user-id"
	s.testTargetID = "target-user-id"

	s.now = time.Date(2024, 6, 1, 20, 0, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().Return(s.now).AnyTimes()
}

func (s *OfferServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOfferServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OfferServiceTestSuite))
}

func (s *OfferServiceTestSuite) createOffer(drink string) *models.Offer {
	s.mockBar.EXPECT().
		AddDrink(s.ctx, gomock.Any()).
		Return(nil, bar.ErrDrinkExists)

	out, err := s.service.Create(s.ctx, &CreateInput{
		GuildID:      s.testGuildID,
		MessageID:    s.testMessageID,
		ChannelID:    s.testChannelID,
		FromUserID:   s.testFromID,
		TargetUserID: s.testTargetID,
		DrinkName:    drink,
	})
	s.Require().NoError(err)
	s.False(out.DrinkCreated)
	return out.Offer
}

func (s *OfferServiceTestSuite) TestCreateRegistersOffer() {
	o := s.createOffer("beer")
	s.Equal(s.now, o.CreatedAt)
	s.Equal(s.now.Add(10*time.Minute), o.ExpiresAt)

	pending, ok := s.service.Pending(s.testMessageID)
	s.True(ok)
	s.Equal("beer", pending.DrinkName)
}

func (s *OfferServiceTestSuite) TestCreateAddsMissingDrinkWithDefaults() {
	s.mockBar.EXPECT().
		AddDrink(s.ctx, &bar.AddDrinkInput{
			GuildID:        s.testGuildID,
			Name:           "mystery shot",
			Intoxication:   bar.DefaultIntoxication,
			PortionSize:    bar.DefaultPortionSize,
			PortionsPerDay: bar.DefaultPortionsPerDay,
		}).
		Return(&bar.AddDrinkOutput{}, nil)

	out, err := s.service.Create(s.ctx, &CreateInput{
		GuildID:      s.testGuildID,
		MessageID:    s.testMessageID,
		ChannelID:    s.testChannelID,
		FromUserID:   s.testFromID,
		TargetUserID: s.testTargetID,
		DrinkName:    "mystery shot",
	})
	s.Require().NoError(err)
	s.True(out.DrinkCreated)
}

func (s *OfferServiceTestSuite) TestCreateAbortsWhenMenuIsFull() {
	s.mockBar.EXPECT().
		AddDrink(s.ctx, gomock.Any()).
		Return(nil, bar.ErrTooManyDrinks)

	_, err := s.service.Create(s.ctx, &CreateInput{
		GuildID:      s.testGuildID,
		MessageID:    s.testMessageID,
		TargetUserID: s.testTargetID,
		DrinkName:    "one too many",
	})
	s.Require().ErrorIs(err, bar.ErrTooManyDrinks)

	_, ok := s.service.Pending(s.testMessageID)
	s.False(ok)
}

func (s *OfferServiceTestSuite) TestResolveAcceptConsumesForTarget() {
	s.createOffer("beer")
	s.mockBar.EXPECT().
		Consume(s.ctx, &bar.ConsumeInput{
			GuildID:   s.testGuildID,
			UserID:    s.testTargetID,
			DrinkName: "beer",
		}).
		Return(&bar.ConsumeOutput{Outcome: models.OutcomeConsumed, Level: 10}, nil)

	out, err := s.service.Resolve(s.ctx, &ResolveInput{
		MessageID: s.testMessageID,
		UserID:    s.testTargetID,
		Signal:    SignalAccept,
	})
	s.Require().NoError(err)
	s.Equal(ResolutionAccepted, out.Resolution)
	s.Equal(models.OutcomeConsumed, out.Consume.Outcome)

	_, ok := s.service.Pending(s.testMessageID)
	s.False(ok)
}

func (s *OfferServiceTestSuite) TestResolveDeclineDoesNotConsume() {
	s.createOffer("beer")
	// No Consume expectation

	out, err := s.service.Resolve(s.ctx, &ResolveInput{
		MessageID: s.testMessageID,
		UserID:    s.testTargetID,
		Signal:    SignalDecline,
	})
	s.Require().NoError(err)
	s.Equal(ResolutionDeclined, out.Resolution)
	s.Equal("beer", out.Offer.DrinkName)

	_, ok := s.service.Pending(s.testMessageID)
	s.False(ok)
}

func (s *OfferServiceTestSuite) TestResolveIgnoresNonTarget() {
	s.createOffer("beer")

	out, err := s.service.Resolve(s.ctx, &ResolveInput{
		MessageID: s.testMessageID,
		UserID:    "someone-else",
		Signal:    SignalAccept,
	})
	s.Require().NoError(err)
	s.Equal(ResolutionNone, out.Resolution)

	// The offer stays open for the real target
	_, ok := s.service.Pending(s.testMessageID)
	s.True(ok)
}

func (s *OfferServiceTestSuite) TestResolveIgnoresUnknownMessage() {
	out, err := s.service.Resolve(s.ctx, &ResolveInput{
		MessageID: "never-seen",
		UserID:    s.testTargetID,
		Signal:    SignalAccept,
	})
	s.Require().NoError(err)
	s.Equal(ResolutionNone, out.Resolution)
}

func (s *OfferServiceTestSuite) TestResolveIsExactlyOnce() {
	s.createOffer("beer")
	s.mockBar.EXPECT().
		Consume(s.ctx, gomock.Any()).
		Return(&bar.ConsumeOutput{Outcome: models.OutcomeConsumed}, nil)

	first, err := s.service.Resolve(s.ctx, &ResolveInput{
		MessageID: s.testMessageID,
		UserID:    s.testTargetID,
		Signal:    SignalAccept,
	})
	s.Require().NoError(err)
	s.Equal(ResolutionAccepted, first.Resolution)

	second, err := s.service.Resolve(s.ctx, &ResolveInput{
		MessageID: s.testMessageID,
		UserID:    s.testTargetID,
		Signal:    SignalAccept,
	})
	s.Require().NoError(err)
	s.Equal(ResolutionNone, second.Resolution)
}

func (s *OfferServiceTestSuite) TestExpiredOfferResolvesToNone() {
	mockCtrl := gomock.NewController(s.T())
	mockClock := clockMocks.NewMockClock(mockCtrl)
	mockBar := barMocks.NewMockService(mockCtrl)

	svc, err := New(&Config{BarService: mockBar, Clock: mockClock, TTL: 10 * time.Minute})
	s.Require().NoError(err)

	mockBar.EXPECT().AddDrink(gomock.Any(), gomock.Any()).Return(nil, bar.ErrDrinkExists)
	mockClock.EXPECT().Now().Return(s.now)
	_, err = svc.Create(s.ctx, &CreateInput{
		GuildID:      s.testGuildID,
		MessageID:    s.testMessageID,
		TargetUserID: s.testTargetID,
		DrinkName:    "beer",
	})
	s.Require().NoError(err)

	// Eleven minutes later the offer has lapsed
	mockClock.EXPECT().Now().Return(s.now.Add(11 * time.Minute)).AnyTimes()

	out, err := svc.Resolve(s.ctx, &ResolveInput{
		MessageID: s.testMessageID,
		UserID:    s.testTargetID,
		Signal:    SignalAccept,
	})
	s.Require().NoError(err)
	s.Equal(ResolutionNone, out.Resolution)

	// The sweep still collects it for prompt cleanup
	swept := svc.Sweep()
	s.Require().Len(swept.Expired, 1)
	s.Equal(s.testMessageID, swept.Expired[0].MessageID)

	s.Empty(svc.Sweep().Expired)
}

func (s *OfferServiceTestSuite) TestSweepKeepsLiveOffers() {
	s.createOffer("beer")

	swept := s.service.Sweep()
	s.Empty(swept.Expired)

	_, ok := s.service.Pending(s.testMessageID)
	s.True(ok)
}
