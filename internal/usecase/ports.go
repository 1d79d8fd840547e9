package usecase

import (
	"context"

	"github.com/totegamma/logistics-backend/internal/domain"
)

// PortRepository defines storage operations for ports.
// Lookups of absent ids return a domain.ErrNotFound-matching error.
type PortRepository interface {
	List(ctx context.Context, page domain.Page) ([]domain.Port, int64, error)
	Get(ctx context.Context, id string) (domain.Port, error)
	// Exists reports whether another port already uses the natural key.
	Exists(ctx context.Context, name, country, excludeID string) (bool, error)
	Create(ctx context.Context, port domain.Port) (domain.Port, error)
	Update(ctx context.Context, port domain.Port) (domain.Port, error)
}

// VesselRepository defines storage operations for vessels.
type VesselRepository interface {
	List(ctx context.Context, page domain.Page) ([]domain.Vessel, int64, error)
	Get(ctx context.Context, id string) (domain.Vessel, error)
	Exists(ctx context.Context, name, voyageNumber, excludeID string) (bool, error)
	Create(ctx context.Context, vessel domain.Vessel) (domain.Vessel, error)
	Update(ctx context.Context, vessel domain.Vessel) (domain.Vessel, error)
}

// PartyRepository defines storage operations for one party tree
// (customers or vendors with their locations and contacts).
type PartyRepository interface {
	NodeResolver

	ListParties(ctx context.Context, page domain.Page) ([]domain.Party, int64, error)
	// GetParty loads the party with its locations and their contacts.
	GetParty(ctx context.Context, id string) (domain.Party, error)
	PartyExists(ctx context.Context, name, code, excludeID string) (bool, error)
	CreateParty(ctx context.Context, party domain.Party) (domain.Party, error)
	UpdateParty(ctx context.Context, party domain.Party) (domain.Party, error)

	ListLocations(ctx context.Context, partyID string) ([]domain.Location, error)
	GetLocation(ctx context.Context, id string) (domain.Location, error)
	CreateLocation(ctx context.Context, location domain.Location) (domain.Location, error)
	UpdateLocation(ctx context.Context, location domain.Location) (domain.Location, error)

	ListContacts(ctx context.Context, locationID string) ([]domain.Contact, error)
	GetContact(ctx context.Context, id string) (domain.Contact, error)
	CreateContact(ctx context.Context, contact domain.Contact) (domain.Contact, error)
	UpdateContact(ctx context.Context, contact domain.Contact) (domain.Contact, error)
}

// EventPublisher announces successful writes to interested listeners.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.ChangeEvent) error
}

// DetailCache stores rendered detail reads of top-level records.
type DetailCache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, key string) error
}
