package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/totegamma/logistics-backend/internal/domain"
	"github.com/totegamma/logistics-backend/internal/infra/database/models"
)

var (
	locationColumns = columns("id", "party_id", "address_line1", "address_line2", "address_line3",
		"city", "province", "country", "postal_code")
	contactColumns = columns("id", "location_id", "contact_name", "phone_number", "email")
)

func TestPartyRepositoryResolve(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPartyRepository(db, domain.VendorTree, models.VendorTables)

	mock.ExpectQuery(`SELECT id, party_id AS parent_id FROM "vendor_locations" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "parent_id"}).AddRow("L1", "V1"))
	mock.ExpectQuery(`SELECT id, location_id AS parent_id FROM "vendor_contacts" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "parent_id"}))

	node, err := repo.Resolve(context.Background(), domain.KindVendorLocation, "L1")
	require.NoError(t, err)
	assert.Equal(t, "V1", node.ParentID)
	assert.Equal(t, domain.KindVendorLocation, node.Kind)

	_, err = repo.Resolve(context.Background(), domain.KindVendorContact, "K9")
	require.Error(t, err)
	var appErr *domain.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VENDOR_CONTACT_NOT_FOUND_ERROR", appErr.Code)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPartyRepositoryResolveForeignKind(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPartyRepository(db, domain.CustomerTree, models.CustomerTables)

	_, err := repo.Resolve(context.Background(), domain.KindVendor, "V1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPartyRepositoryGetPartyLoadsTree(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPartyRepository(db, domain.CustomerTree, models.CustomerTables)

	mock.ExpectQuery(`SELECT \* FROM "customers" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(columns("id", "name", "code", "npwp")).
			AddRow("C1", "Acme", "ACM", nil, true, "alice", nil, created, created))
	mock.ExpectQuery(`SELECT \* FROM "customer_locations" WHERE party_id = \$1 ORDER BY created_at ASC`).
		WillReturnRows(sqlmock.NewRows(locationColumns).
			AddRow("L1", "C1", "Jl. Sudirman 1", nil, nil, "Jakarta", "DKI Jakarta", "ID", "10220", true, "alice", nil, created, created).
			AddRow("L2", "C1", "Jl. Thamrin 2", nil, nil, "Jakarta", "DKI Jakarta", "ID", nil, true, "alice", nil, created, created))
	mock.ExpectQuery(`SELECT \* FROM "customer_contacts" WHERE location_id IN \(.+\) ORDER BY created_at ASC`).
		WithArgs("L1", "L2").
		WillReturnRows(sqlmock.NewRows(contactColumns).
			AddRow("K1", "L1", "Budi", "+62 812 0000", nil, true, "alice", nil, created, created))

	party, err := repo.GetParty(context.Background(), "C1")
	require.NoError(t, err)
	assert.Equal(t, "Acme", party.Name)
	assert.Nil(t, party.NPWP)
	require.Len(t, party.Locations, 2)
	require.NotNil(t, party.Locations[0].PostalCode)
	assert.Equal(t, "10220", *party.Locations[0].PostalCode)
	require.Len(t, party.Locations[0].Contacts, 1)
	assert.Equal(t, "Budi", party.Locations[0].Contacts[0].ContactName)
	assert.NotNil(t, party.Locations[1].Contacts)
	assert.Empty(t, party.Locations[1].Contacts)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPartyRepositoryGetPartyWithoutLocations(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPartyRepository(db, domain.VendorTree, models.VendorTables)

	mock.ExpectQuery(`SELECT \* FROM "vendors"`).
		WillReturnRows(sqlmock.NewRows(columns("id", "name", "code", "npwp")).
			AddRow("V1", "Meratus", "MRT", "123", true, "alice", nil, created, created))
	mock.ExpectQuery(`SELECT \* FROM "vendor_locations"`).
		WillReturnRows(sqlmock.NewRows(locationColumns))

	party, err := repo.GetParty(context.Background(), "V1")
	require.NoError(t, err)
	require.NotNil(t, party.NPWP)
	assert.Equal(t, "123", *party.NPWP)
	assert.NotNil(t, party.Locations)
	assert.Empty(t, party.Locations)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPartyRepositoryPartyExists(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPartyRepository(db, domain.CustomerTree, models.CustomerTables)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "customers" WHERE name = \$1 AND code = \$2`).
		WithArgs("Acme", "ACM").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := repo.PartyExists(context.Background(), "Acme", "ACM", "")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, mock.ExpectationsWereMet())
}
