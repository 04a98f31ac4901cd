package gateway

import (
	"context"
	"fmt"

	"github.com/piresc/locations/internal/pkg/models"
	"github.com/piresc/locations/services/locations"
)

const (
	TopicLocationsImported = "locations.imported"
	TopicLocationGeocoded  = "locations.geocoded"
)

// Publisher is implemented by the NSQ producer
type Publisher interface {
	Publish(topic string, message interface{}) error
}

type locationGW struct {
	publisher Publisher
}

// NewLocationGW creates a new location gateway. A nil publisher drops events.
func NewLocationGW(publisher Publisher) locations.LocationGW {
	return &locationGW{
		publisher: publisher,
	}
}

// PublishLocationsImported announces a committed import batch
func (g *locationGW) PublishLocationsImported(ctx context.Context, event models.ImportEvent) error {
	return g.publish(TopicLocationsImported, event)
}

// PublishLocationGeocoded announces new coordinates for a location
func (g *locationGW) PublishLocationGeocoded(ctx context.Context, event models.GeocodeEvent) error {
	return g.publish(TopicLocationGeocoded, event)
}

func (g *locationGW) publish(topic string, event interface{}) error {
	if g.publisher == nil {
		return nil
	}
	if err := g.publisher.Publish(topic, event); err != nil {
		return fmt.Errorf("failed to publish %s: %w", topic, err)
	}
	return nil
}
