package events

import (
	"context"
	"time"

	"github.com/google/uuid"

	"gobeer/internal/domain"
	"gobeer/internal/pkg/logger"
)

// Tipos de evento publicados no tópico de cervejas.
const (
	TypeBeerCreated = "BeerCreated"
	TypeBeerUpdated = "BeerUpdated"
)

// Event é um evento de domínio publicável.
type Event interface {
	EventType() string
	// PartitionKey mantém os eventos de uma mesma cerveja em ordem.
	PartitionKey() string
}

// Publisher define o contrato de publicação usado pela camada de serviço.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// BeerSnapshot é o estado da cerveja carregado no evento.
type BeerSnapshot struct {
	BeerID         uuid.UUID `json:"beerId"`
	Version        int64     `json:"version"`
	BeerName       string    `json:"beerName"`
	BeerStyle      string    `json:"beerStyle"`
	Upc            int64     `json:"upc"`
	Price          string    `json:"price"`
	QuantityOnHand int       `json:"quantityOnHand"`
	OccurredAt     time.Time `json:"occurredAt"`
}

func snapshot(beer domain.Beer, at time.Time) BeerSnapshot {
	return BeerSnapshot{
		BeerID:         beer.ID,
		Version:        beer.Version,
		BeerName:       beer.BeerName,
		BeerStyle:      string(beer.BeerStyle),
		Upc:            beer.Upc,
		Price:          beer.Price.String(),
		QuantityOnHand: beer.QuantityOnHand,
		OccurredAt:     at.UTC(),
	}
}

type BeerCreatedEvent struct {
	BeerSnapshot
}

func NewBeerCreatedEvent(beer domain.Beer, at time.Time) BeerCreatedEvent {
	return BeerCreatedEvent{BeerSnapshot: snapshot(beer, at)}
}

func (BeerCreatedEvent) EventType() string      { return TypeBeerCreated }
func (e BeerCreatedEvent) PartitionKey() string { return e.BeerID.String() }

type BeerUpdatedEvent struct {
	BeerSnapshot
}

func NewBeerUpdatedEvent(beer domain.Beer, at time.Time) BeerUpdatedEvent {
	return BeerUpdatedEvent{BeerSnapshot: snapshot(beer, at)}
}

func (BeerUpdatedEvent) EventType() string      { return TypeBeerUpdated }
func (e BeerUpdatedEvent) PartitionKey() string { return e.BeerID.String() }

// LogPublisher apenas registra os eventos no log.
// Usado quando KAFKA_BROKERS não está configurado.
type LogPublisher struct {
	logger logger.Logger
}

func NewLogPublisher(log logger.Logger) *LogPublisher {
	return &LogPublisher{logger: log}
}

func (p *LogPublisher) Publish(_ context.Context, event Event) error {
	p.logger.Info("Evento de domínio emitido.", map[string]interface{}{
		"event_type": event.EventType(),
		"key":        event.PartitionKey(),
	})
	return nil
}
