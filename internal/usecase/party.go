package usecase

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/totegamma/logistics-backend/internal/domain"
)

// PartyUsecase serves one Party -> Location -> Contact tree.
type PartyUsecase struct {
	tree    domain.PartyTree
	repo    PartyRepository
	chain   *ChainWalker
	effects Effects
}

func NewPartyUsecase(tree domain.PartyTree, repo PartyRepository, effects Effects) *PartyUsecase {
	return &PartyUsecase{
		tree:    tree,
		repo:    repo,
		chain:   NewChainWalker(repo),
		effects: effects,
	}
}

func (uc *PartyUsecase) Tree() domain.PartyTree {
	return uc.tree
}

func (uc *PartyUsecase) span(ctx context.Context, op string) (context.Context, trace.Span) {
	return tracer.Start(ctx, uc.tree.Root.Label+".Usecase."+op)
}

func (uc *PartyUsecase) changed(ctx context.Context, kind domain.Kind, op domain.ChangeOp, id, rootID string) {
	uc.effects.changed(ctx, uc.tree.Root, domain.ChangeEvent{
		Kind:   kind.Name,
		Op:     op,
		ID:     id,
		RootID: rootID,
	})
}

// ---- parties

func (uc *PartyUsecase) List(ctx context.Context, page domain.Page) ([]domain.Party, *domain.Pagination, error) {
	ctx, span := uc.span(ctx, "List")
	defer span.End()

	parties, total, err := uc.repo.ListParties(ctx, page)
	if err != nil {
		span.RecordError(err)
		return nil, nil, err
	}
	return parties, domain.Paginate(page, total), nil
}

func (uc *PartyUsecase) Get(ctx context.Context, id string) (domain.Party, error) {
	ctx, span := uc.span(ctx, "Get")
	defer span.End()

	var party domain.Party
	if uc.effects.cached(ctx, uc.tree.Root, id, &party) {
		return party, nil
	}

	party, err := uc.repo.GetParty(ctx, id)
	if err != nil {
		span.RecordError(err)
		return domain.Party{}, err
	}
	uc.effects.remember(ctx, uc.tree.Root, id, party)
	return party, nil
}

func (uc *PartyUsecase) Create(ctx context.Context, input domain.PartyCreate) (domain.Party, error) {
	ctx, span := uc.span(ctx, "Create")
	defer span.End()

	exists, err := uc.repo.PartyExists(ctx, input.Name, input.Code, "")
	if err != nil {
		span.RecordError(err)
		return domain.Party{}, err
	}
	if exists {
		return domain.Party{}, domain.AlreadyExists(uc.tree.Root, input.Name, input.Code)
	}

	party := domain.Party{
		ID:   uuid.NewString(),
		Name: input.Name,
		Code: input.Code,
		NPWP: input.NPWP,
	}
	party.Stamp(domain.ActorFrom(ctx), uc.effects.now())

	created, err := uc.repo.CreateParty(ctx, party)
	if err != nil {
		span.RecordError(err)
		return domain.Party{}, err
	}

	uc.changed(ctx, uc.tree.Root, domain.ChangeCreated, created.ID, created.ID)
	return created, nil
}

func (uc *PartyUsecase) Update(ctx context.Context, id string, input domain.PartyUpdate) (domain.Party, error) {
	ctx, span := uc.span(ctx, "Update")
	defer span.End()

	party, err := uc.repo.GetParty(ctx, id)
	if err != nil {
		span.RecordError(err)
		return domain.Party{}, err
	}

	input.Apply(&party)

	if input.TouchesKey() {
		exists, err := uc.repo.PartyExists(ctx, party.Name, party.Code, id)
		if err != nil {
			span.RecordError(err)
			return domain.Party{}, err
		}
		if exists {
			return domain.Party{}, domain.AlreadyExists(uc.tree.Root, party.Name, party.Code)
		}
	}

	party.Touch(domain.ActorFrom(ctx), uc.effects.now())

	updated, err := uc.repo.UpdateParty(ctx, party)
	if err != nil {
		span.RecordError(err)
		return domain.Party{}, err
	}

	uc.changed(ctx, uc.tree.Root, domain.ChangeUpdated, updated.ID, updated.ID)
	return updated, nil
}

// ---- locations

func (uc *PartyUsecase) ListLocations(ctx context.Context, partyID string) ([]domain.Location, error) {
	ctx, span := uc.span(ctx, "ListLocations")
	defer span.End()

	if _, err := uc.chain.Verify(ctx, uc.tree.Root, partyID); err != nil {
		span.RecordError(err)
		return nil, err
	}

	locations, err := uc.repo.ListLocations(ctx, partyID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return locations, nil
}

func (uc *PartyUsecase) GetLocation(ctx context.Context, partyID, locationID string) (domain.Location, error) {
	ctx, span := uc.span(ctx, "GetLocation")
	defer span.End()

	if _, err := uc.chain.Verify(ctx, uc.tree.Location, locationID, LocationChain(uc.tree, partyID)...); err != nil {
		span.RecordError(err)
		return domain.Location{}, err
	}

	location, err := uc.repo.GetLocation(ctx, locationID)
	if err != nil {
		span.RecordError(err)
		return domain.Location{}, err
	}
	return location, nil
}

func (uc *PartyUsecase) CreateLocation(ctx context.Context, partyID string, input domain.LocationCreate) (domain.Location, error) {
	ctx, span := uc.span(ctx, "CreateLocation")
	defer span.End()

	if _, err := uc.chain.Verify(ctx, uc.tree.Root, partyID); err != nil {
		span.RecordError(err)
		return domain.Location{}, err
	}

	location := domain.Location{
		ID:           uuid.NewString(),
		PartyID:      partyID,
		AddressLine1: input.AddressLine1,
		AddressLine2: input.AddressLine2,
		AddressLine3: input.AddressLine3,
		City:         input.City,
		Province:     input.Province,
		Country:      input.Country,
		PostalCode:   input.PostalCode,
	}
	location.Stamp(domain.ActorFrom(ctx), uc.effects.now())

	created, err := uc.repo.CreateLocation(ctx, location)
	if err != nil {
		span.RecordError(err)
		return domain.Location{}, err
	}

	uc.changed(ctx, uc.tree.Location, domain.ChangeCreated, created.ID, partyID)
	return created, nil
}

func (uc *PartyUsecase) UpdateLocation(ctx context.Context, partyID, locationID string, input domain.LocationUpdate) (domain.Location, error) {
	ctx, span := uc.span(ctx, "UpdateLocation")
	defer span.End()

	if _, err := uc.chain.Verify(ctx, uc.tree.Location, locationID, LocationChain(uc.tree, partyID)...); err != nil {
		span.RecordError(err)
		return domain.Location{}, err
	}

	location, err := uc.repo.GetLocation(ctx, locationID)
	if err != nil {
		span.RecordError(err)
		return domain.Location{}, err
	}

	input.Apply(&location)
	location.Touch(domain.ActorFrom(ctx), uc.effects.now())

	updated, err := uc.repo.UpdateLocation(ctx, location)
	if err != nil {
		span.RecordError(err)
		return domain.Location{}, err
	}

	uc.changed(ctx, uc.tree.Location, domain.ChangeUpdated, updated.ID, partyID)
	return updated, nil
}

// ---- contacts

func (uc *PartyUsecase) ListContacts(ctx context.Context, partyID, locationID string) ([]domain.Contact, error) {
	ctx, span := uc.span(ctx, "ListContacts")
	defer span.End()

	if _, err := uc.chain.Verify(ctx, uc.tree.Location, locationID, LocationChain(uc.tree, partyID)...); err != nil {
		span.RecordError(err)
		return nil, err
	}

	contacts, err := uc.repo.ListContacts(ctx, locationID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return contacts, nil
}

func (uc *PartyUsecase) GetContact(ctx context.Context, partyID, locationID, contactID string) (domain.Contact, error) {
	ctx, span := uc.span(ctx, "GetContact")
	defer span.End()

	if _, err := uc.chain.Verify(ctx, uc.tree.Contact, contactID, ContactChain(uc.tree, partyID, locationID)...); err != nil {
		span.RecordError(err)
		return domain.Contact{}, err
	}

	contact, err := uc.repo.GetContact(ctx, contactID)
	if err != nil {
		span.RecordError(err)
		return domain.Contact{}, err
	}
	return contact, nil
}

func (uc *PartyUsecase) CreateContact(ctx context.Context, partyID, locationID string, input domain.ContactCreate) (domain.Contact, error) {
	ctx, span := uc.span(ctx, "CreateContact")
	defer span.End()

	if _, err := uc.chain.Verify(ctx, uc.tree.Location, locationID, LocationChain(uc.tree, partyID)...); err != nil {
		span.RecordError(err)
		return domain.Contact{}, err
	}

	contact := domain.Contact{
		ID:          uuid.NewString(),
		LocationID:  locationID,
		ContactName: input.ContactName,
		PhoneNumber: input.PhoneNumber,
		Email:       input.Email,
	}
	contact.Stamp(domain.ActorFrom(ctx), uc.effects.now())

	created, err := uc.repo.CreateContact(ctx, contact)
	if err != nil {
		span.RecordError(err)
		return domain.Contact{}, err
	}

	uc.changed(ctx, uc.tree.Contact, domain.ChangeCreated, created.ID, partyID)
	return created, nil
}

func (uc *PartyUsecase) UpdateContact(ctx context.Context, partyID, locationID, contactID string, input domain.ContactUpdate) (domain.Contact, error) {
	ctx, span := uc.span(ctx, "UpdateContact")
	defer span.End()

	if _, err := uc.chain.Verify(ctx, uc.tree.Contact, contactID, ContactChain(uc.tree, partyID, locationID)...); err != nil {
		span.RecordError(err)
		return domain.Contact{}, err
	}

	contact, err := uc.repo.GetContact(ctx, contactID)
	if err != nil {
		span.RecordError(err)
		return domain.Contact{}, err
	}

	input.Apply(&contact)
	contact.Touch(domain.ActorFrom(ctx), uc.effects.now())

	updated, err := uc.repo.UpdateContact(ctx, contact)
	if err != nil {
		span.RecordError(err)
		return domain.Contact{}, err
	}

	uc.changed(ctx, uc.tree.Contact, domain.ChangeUpdated, updated.ID, partyID)
	return updated, nil
}
