package usecase

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/totegamma/logistics-backend/internal/domain"
)

var fixedNow = time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)

func testEffects(pub *mockPublisher, cache *mockCache) Effects {
	e := Effects{Now: func() time.Time { return fixedNow }}
	if pub != nil {
		e.Publisher = pub
	}
	if cache != nil {
		e.Cache = cache
	}
	return e
}

// --- ports

type mockPortRepo struct {
	ports map[string]domain.Port
}

func newMockPortRepo(ports ...domain.Port) *mockPortRepo {
	m := &mockPortRepo{ports: map[string]domain.Port{}}
	for _, p := range ports {
		m.ports[p.ID] = p
	}
	return m
}

func (m *mockPortRepo) List(ctx context.Context, page domain.Page) ([]domain.Port, int64, error) {
	var out []domain.Port
	for _, p := range m.ports {
		out = append(out, p)
	}
	return out, int64(len(out)), nil
}

func (m *mockPortRepo) Get(ctx context.Context, id string) (domain.Port, error) {
	p, ok := m.ports[id]
	if !ok {
		return domain.Port{}, domain.NotFound(domain.KindPort, id)
	}
	return p, nil
}

func (m *mockPortRepo) Exists(ctx context.Context, name, country, excludeID string) (bool, error) {
	for _, p := range m.ports {
		if p.ID != excludeID && p.Name == name && p.Country == country {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockPortRepo) Create(ctx context.Context, port domain.Port) (domain.Port, error) {
	m.ports[port.ID] = port
	return port, nil
}

func (m *mockPortRepo) Update(ctx context.Context, port domain.Port) (domain.Port, error) {
	m.ports[port.ID] = port
	return port, nil
}

// --- party tree

type mockPartyRepo struct {
	tree      domain.PartyTree
	parties   map[string]domain.Party
	locations map[string]domain.Location
	contacts  map[string]domain.Contact
	gets      int
}

func newMockPartyRepo(tree domain.PartyTree) *mockPartyRepo {
	return &mockPartyRepo{
		tree:      tree,
		parties:   map[string]domain.Party{},
		locations: map[string]domain.Location{},
		contacts:  map[string]domain.Contact{},
	}
}

func (m *mockPartyRepo) Resolve(ctx context.Context, kind domain.Kind, id string) (Node, error) {
	switch kind {
	case m.tree.Root:
		if p, ok := m.parties[id]; ok {
			return Node{Kind: kind, ID: p.ID}, nil
		}
	case m.tree.Location:
		if l, ok := m.locations[id]; ok {
			return Node{Kind: kind, ID: l.ID, ParentID: l.PartyID}, nil
		}
	case m.tree.Contact:
		if c, ok := m.contacts[id]; ok {
			return Node{Kind: kind, ID: c.ID, ParentID: c.LocationID}, nil
		}
	}
	return Node{}, domain.NotFound(kind, id)
}

func (m *mockPartyRepo) ListParties(ctx context.Context, page domain.Page) ([]domain.Party, int64, error) {
	var out []domain.Party
	for _, p := range m.parties {
		out = append(out, p)
	}
	return out, int64(len(out)), nil
}

func (m *mockPartyRepo) GetParty(ctx context.Context, id string) (domain.Party, error) {
	m.gets++
	p, ok := m.parties[id]
	if !ok {
		return domain.Party{}, domain.NotFound(m.tree.Root, id)
	}
	p.Locations, _ = m.ListLocations(ctx, id)
	return p, nil
}

func (m *mockPartyRepo) PartyExists(ctx context.Context, name, code, excludeID string) (bool, error) {
	for _, p := range m.parties {
		if p.ID != excludeID && p.Name == name && p.Code == code {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockPartyRepo) CreateParty(ctx context.Context, party domain.Party) (domain.Party, error) {
	m.parties[party.ID] = party
	return party, nil
}

func (m *mockPartyRepo) UpdateParty(ctx context.Context, party domain.Party) (domain.Party, error) {
	party.Locations = nil
	m.parties[party.ID] = party
	return m.GetParty(ctx, party.ID)
}

func (m *mockPartyRepo) ListLocations(ctx context.Context, partyID string) ([]domain.Location, error) {
	var out []domain.Location
	for _, l := range m.locations {
		if l.PartyID == partyID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (m *mockPartyRepo) GetLocation(ctx context.Context, id string) (domain.Location, error) {
	l, ok := m.locations[id]
	if !ok {
		return domain.Location{}, domain.NotFound(m.tree.Location, id)
	}
	return l, nil
}

func (m *mockPartyRepo) CreateLocation(ctx context.Context, location domain.Location) (domain.Location, error) {
	m.locations[location.ID] = location
	return location, nil
}

func (m *mockPartyRepo) UpdateLocation(ctx context.Context, location domain.Location) (domain.Location, error) {
	m.locations[location.ID] = location
	return location, nil
}

func (m *mockPartyRepo) ListContacts(ctx context.Context, locationID string) ([]domain.Contact, error) {
	var out []domain.Contact
	for _, c := range m.contacts {
		if c.LocationID == locationID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *mockPartyRepo) GetContact(ctx context.Context, id string) (domain.Contact, error) {
	c, ok := m.contacts[id]
	if !ok {
		return domain.Contact{}, domain.NotFound(m.tree.Contact, id)
	}
	return c, nil
}

func (m *mockPartyRepo) CreateContact(ctx context.Context, contact domain.Contact) (domain.Contact, error) {
	m.contacts[contact.ID] = contact
	return contact, nil
}

func (m *mockPartyRepo) UpdateContact(ctx context.Context, contact domain.Contact) (domain.Contact, error) {
	m.contacts[contact.ID] = contact
	return contact, nil
}

// --- side effects

type mockPublisher struct {
	events []domain.ChangeEvent
}

func (m *mockPublisher) Publish(ctx context.Context, event domain.ChangeEvent) error {
	m.events = append(m.events, event)
	return nil
}

type mockCache struct {
	mu      sync.Mutex
	items   map[string][]byte
	deleted []string
}

func newMockCache() *mockCache {
	return &mockCache{items: map[string][]byte{}}
}

func (m *mockCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.items[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}

func (m *mockCache) Set(ctx context.Context, key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = b
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	m.deleted = append(m.deleted, key)
	return nil
}
