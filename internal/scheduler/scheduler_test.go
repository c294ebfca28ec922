package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/avolkov/barcounter/internal/common/clock"
	"github.com/avolkov/barcounter/internal/models"
	"github.com/avolkov/barcounter/internal/services/bar"
	barMocks "github.com/avolkov/barcounter/internal/services/bar/mocks"
	"github.com/avolkov/barcounter/internal/services/offer"
	offerMocks "github.com/avolkov/barcounter/internal/services/offer/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type recordingNotifier struct {
	deleted [][2]string
	err     error
}

func (n *recordingNotifier) DeleteOfferPrompt(channelID, messageID string) error {
	n.deleted = append(n.deleted, [2]string{channelID, messageID})
	return n.err
}

func newTestScheduler(t *testing.T, barSvc bar.Service, offerSvc offer.Service, notifier Notifier) *Scheduler {
	s, err := New(&Config{
		BarService:   barSvc,
		OfferService: offerSvc,
		Notifier:     notifier,
		Clock:        clock.New(),
	})
	require.NoError(t, err)
	return s
}

func TestDecayOncePassesStep(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockBar := barMocks.NewMockService(ctrl)
	mockOffer := offerMocks.NewMockService(ctrl)

	s := newTestScheduler(t, mockBar, mockOffer, nil)

	mockBar.EXPECT().
		DecayTick(gomock.Any(), &bar.DecayTickInput{Step: 1}).
		Return(nil)

	s.decayOnce(context.Background())
}

func TestSweepOnceDeletesPrompts(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockBar := barMocks.NewMockService(ctrl)
	mockOffer := offerMocks.NewMockService(ctrl)
	notifier := &recordingNotifier{}

	s := newTestScheduler(t, mockBar, mockOffer, notifier)

	mockOffer.EXPECT().Sweep().Return(&offer.SweepOutput{Expired: []*models.Offer{
		{MessageID: "m1", ChannelID: "c1"},
		{MessageID: "m2", ChannelID: "c2"},
	}})

	s.sweepOnce()

	require.Len(t, notifier.deleted, 2)
	assert.Equal(t, [2]string{"c1", "m1"}, notifier.deleted[0])
	assert.Equal(t, [2]string{"c2", "m2"}, notifier.deleted[1])
}

func TestSweepOnceWithNothingExpired(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockBar := barMocks.NewMockService(ctrl)
	mockOffer := offerMocks.NewMockService(ctrl)
	notifier := &recordingNotifier{}

	s := newTestScheduler(t, mockBar, mockOffer, notifier)

	mockOffer.EXPECT().Sweep().Return(&offer.SweepOutput{})

	s.sweepOnce()

	assert.Empty(t, notifier.deleted)
}

func TestRestockOnceSurvivesFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockBar := barMocks.NewMockService(ctrl)
	mockOffer := offerMocks.NewMockService(ctrl)

	s := newTestScheduler(t, mockBar, mockOffer, nil)

	mockBar.EXPECT().
		RestockAllServers(gomock.Any()).
		Return(nil, bar.ErrServerNotFound)

	// Must not panic; the job logs and moves on
	s.restockOnce(context.Background())
}

func TestNextMidnight(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Moscow")
	require.NoError(t, err)

	cases := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "mid-afternoon",
			in:   time.Date(2024, 6, 1, 15, 30, 0, 0, time.UTC),
			want: time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "exactly midnight rolls to the next day",
			in:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			want: time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "keeps the location",
			in:   time.Date(2024, 12, 31, 23, 59, 0, 0, loc),
			want: time.Date(2025, 1, 1, 0, 0, 0, 0, loc),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.True(t, tc.want.Equal(nextMidnight(tc.in)))
		})
	}
}

func TestStartStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockBar := barMocks.NewMockService(ctrl)
	mockOffer := offerMocks.NewMockService(ctrl)

	s, err := New(&Config{
		BarService:    mockBar,
		OfferService:  mockOffer,
		Clock:         clock.New(),
		DecayInterval: time.Hour,
		SweepInterval: time.Hour,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s.Start(ctx)
	s.Stop()
}
