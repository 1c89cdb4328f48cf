package jetstream

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	natsjs "github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mintbay/nft-marketplace/internal/adapter"
	"github.com/mintbay/nft-marketplace/internal/domain"
	"github.com/mintbay/nft-marketplace/internal/logger"
	"github.com/mintbay/nft-marketplace/internal/mocks"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: true}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func testConfig() Config {
	return Config{
		URL:            "nats://localhost:4222",
		StreamName:     "MARKETPLACE_EVENTS",
		MaxReconnects:  5,
		ReconnectWait:  time.Second,
		ConnectionName: "marketplace-test",
	}
}

func setupTestPublisher(t *testing.T) (*mocks.MockJetStream, *mocks.MockJSON, *publisher) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	js := mocks.NewMockJetStream(ctrl)
	jsonAdapter := mocks.NewMockJSON(ctrl)

	return js, jsonAdapter, &publisher{
		js:         js,
		streamName: "MARKETPLACE_EVENTS",
		json:       jsonAdapter,
	}
}

func TestNewPublisher(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	nc := mocks.NewMockNatsConn(ctrl)
	js := mocks.NewMockJetStream(ctrl)
	natsJS := mocks.NewMockNatsJetStream(ctrl)

	natsJS.EXPECT().
		Connect("nats://localhost:4222", gomock.Any()).
		Return(nc, js, nil)
	js.EXPECT().
		CreateOrUpdateStream(gomock.Any(), natsjs.StreamConfig{
			Name:     "MARKETPLACE_EVENTS",
			Subjects: []string{"marketplace.>"},
		}).
		Return(nil, nil)

	pub, err := NewPublisher(context.Background(), testConfig(), natsJS, adapter.NewJSON())
	require.NoError(t, err)
	assert.NotNil(t, pub)
}

func TestNewPublisher_ConnectError(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	natsJS := mocks.NewMockNatsJetStream(ctrl)
	natsJS.EXPECT().
		Connect(gomock.Any(), gomock.Any()).
		Return(nil, nil, errors.New("connection refused"))

	pub, err := NewPublisher(context.Background(), testConfig(), natsJS, adapter.NewJSON())
	assert.Error(t, err)
	assert.Nil(t, pub)
}

func TestNewPublisher_StreamError(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	nc := mocks.NewMockNatsConn(ctrl)
	js := mocks.NewMockJetStream(ctrl)
	natsJS := mocks.NewMockNatsJetStream(ctrl)

	natsJS.EXPECT().
		Connect(gomock.Any(), gomock.Any()).
		Return(nc, js, nil)
	js.EXPECT().
		CreateOrUpdateStream(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("no jetstream"))
	nc.EXPECT().Close()

	pub, err := NewPublisher(context.Background(), testConfig(), natsJS, adapter.NewJSON())
	assert.Error(t, err)
	assert.Nil(t, pub)
}

func TestPublishEvent(t *testing.T) {
	js, jsonAdapter, pub := setupTestPublisher(t)

	event := &domain.MarketplaceEvent{
		ID:   "01JX3YZ5K8QW9R2T4V6B8N0MCD",
		Type: domain.EventTypeListingCreated,
	}
	data, err := json.Marshal(event)
	require.NoError(t, err)

	jsonAdapter.EXPECT().Marshal(event).Return(data, nil)
	js.EXPECT().
		Publish(gomock.Any(), "marketplace.listing.created", data).
		Return(&natsjs.PubAck{Stream: "MARKETPLACE_EVENTS", Sequence: 1}, nil)

	assert.NoError(t, pub.PublishEvent(context.Background(), event))
}

func TestPublishEvent_MarshalError(t *testing.T) {
	_, jsonAdapter, pub := setupTestPublisher(t)

	event := &domain.MarketplaceEvent{Type: domain.EventTypeListingSold}
	jsonAdapter.EXPECT().Marshal(event).Return(nil, errors.New("marshal failed"))

	err := pub.PublishEvent(context.Background(), event)
	assert.ErrorContains(t, err, "failed to marshal event")
}

func TestPublishEvent_RetriesTransientFailure(t *testing.T) {
	js, jsonAdapter, pub := setupTestPublisher(t)

	event := &domain.MarketplaceEvent{Type: domain.EventTypeListingSold}
	jsonAdapter.EXPECT().Marshal(event).Return([]byte("{}"), nil)

	gomock.InOrder(
		js.EXPECT().
			Publish(gomock.Any(), "marketplace.listing.sold", gomock.Any()).
			Return(nil, errors.New("timeout")),
		js.EXPECT().
			Publish(gomock.Any(), "marketplace.listing.sold", gomock.Any()).
			Return(&natsjs.PubAck{}, nil),
	)

	assert.NoError(t, pub.PublishEvent(context.Background(), event))
}

func TestPublishEvent_ExhaustsRetries(t *testing.T) {
	js, jsonAdapter, pub := setupTestPublisher(t)

	event := &domain.MarketplaceEvent{Type: domain.EventTypeFeeUpdated}
	jsonAdapter.EXPECT().Marshal(event).Return([]byte("{}"), nil)

	js.EXPECT().
		Publish(gomock.Any(), "marketplace.fee.updated", gomock.Any()).
		Return(nil, errors.New("timeout")).
		Times(publishMaxRetries + 1)

	err := pub.PublishEvent(context.Background(), event)
	assert.ErrorContains(t, err, "failed to publish event")
}

func TestBuildSubject(t *testing.T) {
	tests := []struct {
		eventType domain.EventType
		subject   string
	}{
		{domain.EventTypeListingCreated, "marketplace.listing.created"},
		{domain.EventTypeListingSold, "marketplace.listing.sold"},
		{domain.EventTypeListingCancelled, "marketplace.listing.cancelled"},
		{domain.EventTypeFeeUpdated, "marketplace.fee.updated"},
		{domain.EventTypeFeesWithdrawn, "marketplace.fee.withdrawn"},
		{domain.EventTypeTokenMinted, "marketplace.token.minted"},
		{domain.EventTypeTokenTransferred, "marketplace.token.transferred"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.subject, buildSubject(tt.eventType))
	}
}

func TestClose(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	nc := mocks.NewMockNatsConn(ctrl)
	nc.EXPECT().Close()

	p := &publisher{nc: nc}
	p.Close()
}
