package jetstream

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/nats-io/nats.go"
	natsjs "github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/mintbay/nft-marketplace/internal/adapter"
	"github.com/mintbay/nft-marketplace/internal/domain"
	"github.com/mintbay/nft-marketplace/internal/logger"
	"github.com/mintbay/nft-marketplace/internal/messaging"
)

const publishMaxRetries = 3

// Config holds the configuration for NATS JetStream connection
type Config struct {
	URL            string
	StreamName     string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectionName string
}

type publisher struct {
	nc         adapter.NatsConn
	js         adapter.JetStream
	streamName string
	json       adapter.JSON
}

// NewPublisher creates a new NATS JetStream publisher and ensures the
// marketplace stream exists
func NewPublisher(ctx context.Context, cfg Config, natsJS adapter.NatsJetStream, jsonAdapter adapter.JSON) (messaging.Publisher, error) {
	opts := []nats.Option{
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error(err, zap.String("message", "Disconnected from NATS"))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}

	nc, js, err := natsJS.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	_, err = js.CreateOrUpdateStream(ctx, natsjs.StreamConfig{
		Name:     cfg.StreamName,
		Subjects: []string{"marketplace.>"},
	})
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to create stream: %w", err)
	}

	return &publisher{
		nc:         nc,
		js:         js,
		streamName: cfg.StreamName,
		json:       jsonAdapter,
	}, nil
}

// PublishEvent publishes a marketplace event to NATS JetStream, retrying
// transient failures with exponential backoff
func (p *publisher) PublishEvent(ctx context.Context, event *domain.MarketplaceEvent) error {
	logger.DebugCtx(ctx, "publishing event",
		zap.String("event_id", event.ID),
		zap.String("event_type", string(event.Type)))

	data, err := p.json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	subject := buildSubject(event.Type)

	operation := func() error {
		_, err := p.js.Publish(ctx, subject, data)
		return err
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), publishMaxRetries), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}

// buildSubject constructs the NATS subject for an event type.
// Format: marketplace.{entity}.{action}, e.g. marketplace.listing.created
func buildSubject(eventType domain.EventType) string {
	switch eventType {
	case domain.EventTypeListingCreated:
		return "marketplace.listing.created"
	case domain.EventTypeListingSold:
		return "marketplace.listing.sold"
	case domain.EventTypeListingCancelled:
		return "marketplace.listing.cancelled"
	case domain.EventTypeFeeUpdated:
		return "marketplace.fee.updated"
	case domain.EventTypeFeesWithdrawn:
		return "marketplace.fee.withdrawn"
	case domain.EventTypeTokenMinted:
		return "marketplace.token.minted"
	case domain.EventTypeTokenTransferred:
		return "marketplace.token.transferred"
	default:
		return "marketplace." + strings.ReplaceAll(string(eventType), "_", ".")
	}
}

// Close closes the NATS connection
func (p *publisher) Close() {
	if p.nc == nil {
		return
	}

	p.nc.Close()
}
