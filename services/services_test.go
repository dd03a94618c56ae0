package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"menuapi-backend/events"
	"menuapi-backend/models"
	"menuapi-backend/repository"

	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, e events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) topics() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.events))
	for i, e := range p.events {
		out[i] = e.Topic
	}
	return out
}

type fixture struct {
	store       *repository.Memory
	publisher   *recordingPublisher
	restaurants *RestaurantService
	sections    *SectionService
	items       *ItemService
}

func newFixture() *fixture {
	store := repository.NewMemory()
	pub := &recordingPublisher{}
	return &fixture{
		store:       store,
		publisher:   pub,
		restaurants: NewRestaurantService(store, pub),
		sections:    NewSectionService(store, pub),
		items:       NewItemService(store, pub),
	}
}

func restaurantPayload() map[string]any {
	return map[string]any{
		"name":        "Sabor do Sul",
		"kitchenType": "Gaucha",
		"city":        "Porto Alegre",
		"uf":          "RS",
		"contact":     "51999990000",
		"opening": []any{
			map[string]any{"day": "monday", "opensAt": "11:00", "closesAt": "15:00"},
			map[string]any{"day": "friday", "opensAt": "18:00", "closesAt": "23:30"},
		},
	}
}

// seed creates a restaurant with one section holding one item.
func (f *fixture) seed(t *testing.T) (*models.Restaurant, *models.Section, *models.Item) {
	t.Helper()
	ctx := context.Background()

	r, err := f.restaurants.Create(ctx, restaurantPayload())
	require.NoError(t, err)
	s, err := f.sections.Create(ctx, r.ID, map[string]any{"name": "Grelhados", "description": "Na brasa"})
	require.NoError(t, err)
	i, err := f.items.Create(ctx, s.ID, map[string]any{"name": "Picanha", "description": "400g", "price": 89.9})
	require.NoError(t, err)
	return r, s, i
}

var errBoom = errors.New("boom")
