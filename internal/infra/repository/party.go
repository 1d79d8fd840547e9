package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/totegamma/logistics-backend/internal/domain"
	"github.com/totegamma/logistics-backend/internal/infra/database/models"
	"github.com/totegamma/logistics-backend/internal/usecase"
)

// PartyRepository stores one party tree. Customers and vendors share the
// row shapes and live in separate tables.
type PartyRepository struct {
	db     *gorm.DB
	tree   domain.PartyTree
	tables models.TreeTables
}

func NewPartyRepository(db *gorm.DB, tree domain.PartyTree, tables models.TreeTables) *PartyRepository {
	return &PartyRepository{db: db, tree: tree, tables: tables}
}

func (r *PartyRepository) parties(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Table(r.tables.Parties)
}

func (r *PartyRepository) locations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Table(r.tables.Locations)
}

func (r *PartyRepository) contacts(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Table(r.tables.Contacts)
}

type nodeRow struct {
	ID       string
	ParentID string
}

// Resolve implements usecase.NodeResolver over the three tables of the tree.
func (r *PartyRepository) Resolve(ctx context.Context, kind domain.Kind, id string) (usecase.Node, error) {
	var q *gorm.DB
	switch kind {
	case r.tree.Root:
		q = r.parties(ctx).Select("id")
	case r.tree.Location:
		q = r.locations(ctx).Select("id, party_id AS parent_id")
	case r.tree.Contact:
		q = r.contacts(ctx).Select("id, location_id AS parent_id")
	default:
		return usecase.Node{}, domain.NotFound(kind, id)
	}

	var row nodeRow
	if err := q.Where("id = ?", id).Take(&row).Error; err != nil {
		return usecase.Node{}, translate(err, kind, id, [2]string{})
	}
	return usecase.Node{Kind: kind, ID: row.ID, ParentID: row.ParentID}, nil
}

// ---- parties

func (r *PartyRepository) ListParties(ctx context.Context, page domain.Page) ([]domain.Party, int64, error) {
	var total int64
	if err := r.parties(ctx).Count(&total).Error; err != nil {
		return nil, 0, translate(err, r.tree.Root, "list", [2]string{})
	}

	var rows []models.Party
	err := paginate(r.parties(ctx), page).
		Order("name ASC, code ASC").
		Find(&rows).Error
	if err != nil {
		return nil, 0, translate(err, r.tree.Root, "list", [2]string{})
	}

	parties := make([]domain.Party, 0, len(rows))
	for _, row := range rows {
		parties = append(parties, partyFromModel(row))
	}
	return parties, total, nil
}

func (r *PartyRepository) GetParty(ctx context.Context, id string) (domain.Party, error) {
	var row models.Party
	if err := r.parties(ctx).Where("id = ?", id).Take(&row).Error; err != nil {
		return domain.Party{}, translate(err, r.tree.Root, id, [2]string{})
	}
	party := partyFromModel(row)

	locations, err := r.ListLocations(ctx, id)
	if err != nil {
		return domain.Party{}, err
	}
	if len(locations) == 0 {
		party.Locations = locations
		return party, nil
	}

	ids := make([]string, 0, len(locations))
	for _, l := range locations {
		ids = append(ids, l.ID)
	}

	var contactRows []models.Contact
	err = r.contacts(ctx).
		Where("location_id IN ?", ids).
		Order("created_at ASC").
		Find(&contactRows).Error
	if err != nil {
		return domain.Party{}, translate(err, r.tree.Contact, id, [2]string{})
	}

	byLocation := make(map[string][]domain.Contact, len(locations))
	for _, c := range contactRows {
		byLocation[c.LocationID] = append(byLocation[c.LocationID], contactFromModel(c))
	}
	for i := range locations {
		locations[i].Contacts = byLocation[locations[i].ID]
		if locations[i].Contacts == nil {
			locations[i].Contacts = []domain.Contact{}
		}
	}
	party.Locations = locations
	return party, nil
}

func (r *PartyRepository) PartyExists(ctx context.Context, name, code, excludeID string) (bool, error) {
	q := r.parties(ctx).Where("name = ? AND code = ?", name, code)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, translate(err, r.tree.Root, name, [2]string{})
	}
	return count > 0, nil
}

func (r *PartyRepository) CreateParty(ctx context.Context, party domain.Party) (domain.Party, error) {
	row := partyToModel(party)
	if err := r.parties(ctx).Create(&row).Error; err != nil {
		return domain.Party{}, translate(err, r.tree.Root, party.ID, [2]string{party.Name, party.Code})
	}
	created := partyFromModel(row)
	created.Locations = []domain.Location{}
	return created, nil
}

func (r *PartyRepository) UpdateParty(ctx context.Context, party domain.Party) (domain.Party, error) {
	err := r.parties(ctx).
		Where("id = ?", party.ID).
		Updates(map[string]any{
			"name":       party.Name,
			"code":       party.Code,
			"npwp":       party.NPWP,
			"is_active":  party.IsActive,
			"updated_by": party.UpdatedBy,
			"updated_at": party.UpdatedAt,
		}).Error
	if err != nil {
		return domain.Party{}, translate(err, r.tree.Root, party.ID, [2]string{party.Name, party.Code})
	}
	return r.GetParty(ctx, party.ID)
}

// ---- locations

func (r *PartyRepository) ListLocations(ctx context.Context, partyID string) ([]domain.Location, error) {
	var rows []models.Location
	err := r.locations(ctx).
		Where("party_id = ?", partyID).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, translate(err, r.tree.Location, partyID, [2]string{})
	}

	locations := make([]domain.Location, 0, len(rows))
	for _, row := range rows {
		locations = append(locations, locationFromModel(row))
	}
	return locations, nil
}

func (r *PartyRepository) GetLocation(ctx context.Context, id string) (domain.Location, error) {
	var row models.Location
	if err := r.locations(ctx).Where("id = ?", id).Take(&row).Error; err != nil {
		return domain.Location{}, translate(err, r.tree.Location, id, [2]string{})
	}
	return locationFromModel(row), nil
}

func (r *PartyRepository) CreateLocation(ctx context.Context, location domain.Location) (domain.Location, error) {
	row := locationToModel(location)
	if err := r.locations(ctx).Create(&row).Error; err != nil {
		return domain.Location{}, translate(err, r.tree.Location, location.ID, [2]string{})
	}
	return locationFromModel(row), nil
}

func (r *PartyRepository) UpdateLocation(ctx context.Context, location domain.Location) (domain.Location, error) {
	err := r.locations(ctx).
		Where("id = ?", location.ID).
		Updates(map[string]any{
			"address_line1": location.AddressLine1,
			"address_line2": location.AddressLine2,
			"address_line3": location.AddressLine3,
			"city":          location.City,
			"province":      location.Province,
			"country":       location.Country,
			"postal_code":   location.PostalCode,
			"is_active":     location.IsActive,
			"updated_by":    location.UpdatedBy,
			"updated_at":    location.UpdatedAt,
		}).Error
	if err != nil {
		return domain.Location{}, translate(err, r.tree.Location, location.ID, [2]string{})
	}
	return r.GetLocation(ctx, location.ID)
}

// ---- contacts

func (r *PartyRepository) ListContacts(ctx context.Context, locationID string) ([]domain.Contact, error) {
	var rows []models.Contact
	err := r.contacts(ctx).
		Where("location_id = ?", locationID).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, translate(err, r.tree.Contact, locationID, [2]string{})
	}

	contacts := make([]domain.Contact, 0, len(rows))
	for _, row := range rows {
		contacts = append(contacts, contactFromModel(row))
	}
	return contacts, nil
}

func (r *PartyRepository) GetContact(ctx context.Context, id string) (domain.Contact, error) {
	var row models.Contact
	if err := r.contacts(ctx).Where("id = ?", id).Take(&row).Error; err != nil {
		return domain.Contact{}, translate(err, r.tree.Contact, id, [2]string{})
	}
	return contactFromModel(row), nil
}

func (r *PartyRepository) CreateContact(ctx context.Context, contact domain.Contact) (domain.Contact, error) {
	row := contactToModel(contact)
	if err := r.contacts(ctx).Create(&row).Error; err != nil {
		return domain.Contact{}, translate(err, r.tree.Contact, contact.ID, [2]string{})
	}
	return contactFromModel(row), nil
}

func (r *PartyRepository) UpdateContact(ctx context.Context, contact domain.Contact) (domain.Contact, error) {
	err := r.contacts(ctx).
		Where("id = ?", contact.ID).
		Updates(map[string]any{
			"contact_name": contact.ContactName,
			"phone_number": contact.PhoneNumber,
			"email":        contact.Email,
			"is_active":    contact.IsActive,
			"updated_by":   contact.UpdatedBy,
			"updated_at":   contact.UpdatedAt,
		}).Error
	if err != nil {
		return domain.Contact{}, translate(err, r.tree.Contact, contact.ID, [2]string{})
	}
	return r.GetContact(ctx, contact.ID)
}

// ---- mapping

func partyFromModel(m models.Party) domain.Party {
	return domain.Party{
		ID:    m.ID,
		Name:  m.Name,
		Code:  m.Code,
		NPWP:  m.Npwp,
		Audit: auditFromModel(m.Audit),
	}
}

func partyToModel(p domain.Party) models.Party {
	return models.Party{
		ID:    p.ID,
		Name:  p.Name,
		Code:  p.Code,
		Npwp:  p.NPWP,
		Audit: auditToModel(p.Audit),
	}
}

func locationFromModel(m models.Location) domain.Location {
	return domain.Location{
		ID:           m.ID,
		PartyID:      m.PartyID,
		AddressLine1: m.AddressLine1,
		AddressLine2: m.AddressLine2,
		AddressLine3: m.AddressLine3,
		City:         m.City,
		Province:     m.Province,
		Country:      m.Country,
		PostalCode:   m.PostalCode,
		Audit:        auditFromModel(m.Audit),
	}
}

func locationToModel(l domain.Location) models.Location {
	return models.Location{
		ID:           l.ID,
		PartyID:      l.PartyID,
		AddressLine1: l.AddressLine1,
		AddressLine2: l.AddressLine2,
		AddressLine3: l.AddressLine3,
		City:         l.City,
		Province:     l.Province,
		Country:      l.Country,
		PostalCode:   l.PostalCode,
		Audit:        auditToModel(l.Audit),
	}
}

func contactFromModel(m models.Contact) domain.Contact {
	return domain.Contact{
		ID:          m.ID,
		LocationID:  m.LocationID,
		ContactName: m.ContactName,
		PhoneNumber: m.PhoneNumber,
		Email:       m.Email,
		Audit:       auditFromModel(m.Audit),
	}
}

func contactToModel(c domain.Contact) models.Contact {
	return models.Contact{
		ID:          c.ID,
		LocationID:  c.LocationID,
		ContactName: c.ContactName,
		PhoneNumber: c.PhoneNumber,
		Email:       c.Email,
		Audit:       auditToModel(c.Audit),
	}
}
