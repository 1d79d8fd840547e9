package rest

import (
	"context"
	"sort"

	"github.com/totegamma/logistics-backend/internal/domain"
	"github.com/totegamma/logistics-backend/internal/usecase"
)

func window[T any](items []T, page domain.Page) []T {
	if !page.Enabled() {
		return items
	}
	start := min(page.Offset(), len(items))
	end := min(start+page.Size, len(items))
	return items[start:end]
}

type memPortRepo struct {
	ports map[string]domain.Port
}

func (m *memPortRepo) List(ctx context.Context, page domain.Page) ([]domain.Port, int64, error) {
	out := make([]domain.Port, 0, len(m.ports))
	for _, p := range m.ports {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return window(out, page), int64(len(out)), nil
}

func (m *memPortRepo) Get(ctx context.Context, id string) (domain.Port, error) {
	p, ok := m.ports[id]
	if !ok {
		return domain.Port{}, domain.NotFound(domain.KindPort, id)
	}
	return p, nil
}

func (m *memPortRepo) Exists(ctx context.Context, name, country, excludeID string) (bool, error) {
	for _, p := range m.ports {
		if p.ID != excludeID && p.Name == name && p.Country == country {
			return true, nil
		}
	}
	return false, nil
}

func (m *memPortRepo) Create(ctx context.Context, port domain.Port) (domain.Port, error) {
	m.ports[port.ID] = port
	return port, nil
}

func (m *memPortRepo) Update(ctx context.Context, port domain.Port) (domain.Port, error) {
	m.ports[port.ID] = port
	return port, nil
}

type memVesselRepo struct {
	vessels map[string]domain.Vessel
}

func (m *memVesselRepo) List(ctx context.Context, page domain.Page) ([]domain.Vessel, int64, error) {
	out := make([]domain.Vessel, 0, len(m.vessels))
	for _, v := range m.vessels {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return window(out, page), int64(len(out)), nil
}

func (m *memVesselRepo) Get(ctx context.Context, id string) (domain.Vessel, error) {
	v, ok := m.vessels[id]
	if !ok {
		return domain.Vessel{}, domain.NotFound(domain.KindVessel, id)
	}
	return v, nil
}

func (m *memVesselRepo) Exists(ctx context.Context, name, voyageNumber, excludeID string) (bool, error) {
	for _, v := range m.vessels {
		if v.ID != excludeID && v.Name == name && v.VoyageNumber == voyageNumber {
			return true, nil
		}
	}
	return false, nil
}

func (m *memVesselRepo) Create(ctx context.Context, vessel domain.Vessel) (domain.Vessel, error) {
	m.vessels[vessel.ID] = vessel
	return vessel, nil
}

func (m *memVesselRepo) Update(ctx context.Context, vessel domain.Vessel) (domain.Vessel, error) {
	m.vessels[vessel.ID] = vessel
	return vessel, nil
}

type memPartyRepo struct {
	tree      domain.PartyTree
	parties   map[string]domain.Party
	locations map[string]domain.Location
	contacts  map[string]domain.Contact
}

func newMemPartyRepo(tree domain.PartyTree) *memPartyRepo {
	return &memPartyRepo{
		tree:      tree,
		parties:   map[string]domain.Party{},
		locations: map[string]domain.Location{},
		contacts:  map[string]domain.Contact{},
	}
}

func (m *memPartyRepo) Resolve(ctx context.Context, kind domain.Kind, id string) (usecase.Node, error) {
	switch kind {
	case m.tree.Root:
		if p, ok := m.parties[id]; ok {
			return usecase.Node{Kind: kind, ID: p.ID}, nil
		}
	case m.tree.Location:
		if l, ok := m.locations[id]; ok {
			return usecase.Node{Kind: kind, ID: l.ID, ParentID: l.PartyID}, nil
		}
	case m.tree.Contact:
		if c, ok := m.contacts[id]; ok {
			return usecase.Node{Kind: kind, ID: c.ID, ParentID: c.LocationID}, nil
		}
	}
	return usecase.Node{}, domain.NotFound(kind, id)
}

func (m *memPartyRepo) ListParties(ctx context.Context, page domain.Page) ([]domain.Party, int64, error) {
	out := make([]domain.Party, 0, len(m.parties))
	for _, p := range m.parties {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return window(out, page), int64(len(out)), nil
}

func (m *memPartyRepo) GetParty(ctx context.Context, id string) (domain.Party, error) {
	p, ok := m.parties[id]
	if !ok {
		return domain.Party{}, domain.NotFound(m.tree.Root, id)
	}
	p.Locations, _ = m.ListLocations(ctx, id)
	for i := range p.Locations {
		p.Locations[i].Contacts, _ = m.ListContacts(ctx, p.Locations[i].ID)
	}
	return p, nil
}

func (m *memPartyRepo) PartyExists(ctx context.Context, name, code, excludeID string) (bool, error) {
	for _, p := range m.parties {
		if p.ID != excludeID && p.Name == name && p.Code == code {
			return true, nil
		}
	}
	return false, nil
}

func (m *memPartyRepo) CreateParty(ctx context.Context, party domain.Party) (domain.Party, error) {
	m.parties[party.ID] = party
	party.Locations = []domain.Location{}
	return party, nil
}

func (m *memPartyRepo) UpdateParty(ctx context.Context, party domain.Party) (domain.Party, error) {
	party.Locations = nil
	m.parties[party.ID] = party
	return m.GetParty(ctx, party.ID)
}

func (m *memPartyRepo) ListLocations(ctx context.Context, partyID string) ([]domain.Location, error) {
	out := []domain.Location{}
	for _, l := range m.locations {
		if l.PartyID == partyID {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AddressLine1 < out[j].AddressLine1 })
	return out, nil
}

func (m *memPartyRepo) GetLocation(ctx context.Context, id string) (domain.Location, error) {
	l, ok := m.locations[id]
	if !ok {
		return domain.Location{}, domain.NotFound(m.tree.Location, id)
	}
	return l, nil
}

func (m *memPartyRepo) CreateLocation(ctx context.Context, location domain.Location) (domain.Location, error) {
	m.locations[location.ID] = location
	return location, nil
}

func (m *memPartyRepo) UpdateLocation(ctx context.Context, location domain.Location) (domain.Location, error) {
	m.locations[location.ID] = location
	return location, nil
}

func (m *memPartyRepo) ListContacts(ctx context.Context, locationID string) ([]domain.Contact, error) {
	out := []domain.Contact{}
	for _, c := range m.contacts {
		if c.LocationID == locationID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ContactName < out[j].ContactName })
	return out, nil
}

func (m *memPartyRepo) GetContact(ctx context.Context, id string) (domain.Contact, error) {
	c, ok := m.contacts[id]
	if !ok {
		return domain.Contact{}, domain.NotFound(m.tree.Contact, id)
	}
	return c, nil
}

func (m *memPartyRepo) CreateContact(ctx context.Context, contact domain.Contact) (domain.Contact, error) {
	m.contacts[contact.ID] = contact
	return contact, nil
}

func (m *memPartyRepo) UpdateContact(ctx context.Context, contact domain.Contact) (domain.Contact, error) {
	m.contacts[contact.ID] = contact
	return contact, nil
}
