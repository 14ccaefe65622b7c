package events_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gobeer/internal/domain"
	"gobeer/internal/events"
	"gobeer/internal/pkg/logger"
)

func sampleBeer() domain.Beer {
	return domain.Beer{
		ID:        uuid.New(),
		Version:   1,
		BeerName:  "Mango Bobs",
		BeerStyle: domain.BeerStyleIPA,
		Upc:       337010000001,
		Price:     decimal.RequireFromString("12.95"),
	}
}

func TestKafkaPublisher_PublishSucceeds(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	beer := sampleBeer()

	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var payload map[string]interface{}
		if err := json.Unmarshal(val, &payload); err != nil {
			return err
		}
		if payload["beerId"] != beer.ID.String() || payload["price"] != "12.95" {
			return errors.New("payload inesperado")
		}
		return nil
	})

	pub := events.NewKafkaPublisherWithProducer(producer, "beers.events", logger.NewNop())
	err := pub.Publish(context.Background(), events.NewBeerCreatedEvent(beer, time.Now()))

	assert.NoError(t, err)
	assert.NoError(t, pub.Close())
}

func TestKafkaPublisher_SingleSendOnFailure(t *testing.T) {
	// Uma única tentativa: as retentativas são do producer, não do publisher.
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	pub := events.NewKafkaPublisherWithProducer(producer, "beers.events", logger.NewNop())

	err := pub.Publish(context.Background(), events.NewBeerUpdatedEvent(sampleBeer(), time.Now()))

	require.Error(t, err)
	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	assert.NoError(t, pub.Close())
}

func TestKafkaPublisher_CancelledContext(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	pub := events.NewKafkaPublisherWithProducer(producer, "beers.events", logger.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := pub.Publish(ctx, events.NewBeerCreatedEvent(sampleBeer(), time.Now()))

	assert.ErrorIs(t, err, context.Canceled)
	assert.NoError(t, pub.Close())
}

func TestEventTypesAndKeys(t *testing.T) {
	beer := sampleBeer()

	created := events.NewBeerCreatedEvent(beer, time.Now())
	updated := events.NewBeerUpdatedEvent(beer, time.Now())

	assert.Equal(t, events.TypeBeerCreated, created.EventType())
	assert.Equal(t, events.TypeBeerUpdated, updated.EventType())
	assert.Equal(t, beer.ID.String(), created.PartitionKey())
	assert.Equal(t, beer.ID.String(), updated.PartitionKey())
}

func TestLogPublisher_Publish(t *testing.T) {
	pub := events.NewLogPublisher(logger.NewNop())

	assert.NoError(t, pub.Publish(context.Background(), events.NewBeerCreatedEvent(sampleBeer(), time.Now())))
}
